package sim

// Frequency bounds. The trajectory is never allowed to reach fixation
// or loss exactly; the stochastic drift term needs p(1-p) > 0.
const (
	MinFrequency     = 0.01
	MaxFrequency     = 0.99
	InitialFrequency = 0.5
)

// HistoryLimit bounds the retained trajectory; the oldest entries are
// evicted first.
const HistoryLimit = 100

// State is a point-in-time snapshot of a Driver. History is oldest-first
// and owned by the caller (the Driver hands out copies).
type State struct {
	Frequency  float64
	Generation int
	History    []float64
	Running    bool
}

// Clamp forces a frequency into [MinFrequency, MaxFrequency].
func Clamp(p float64) float64 {
	if p < MinFrequency {
		return MinFrequency
	}
	if p > MaxFrequency {
		return MaxFrequency
	}
	return p
}
