package genetics

import "math/rand"

// Source supplies uniform random draws in [0, 1). FrequencyDelta
// consumes exactly two draws per call.
type Source interface {
	Float64() float64
}

// NewSource returns a seeded Source backed by math/rand, so identical
// seeds reproduce identical trajectories.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}
