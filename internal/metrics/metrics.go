// Package metrics provides summary statistics computed over a
// simulated allele-frequency trajectory.
package metrics

import "github.com/san-kum/allelesim/internal/sim"

// Metric accumulates one statistic over a trajectory, one observation
// per committed generation.
type Metric interface {
	Name() string
	Observe(p float64, generation int)
	Value() float64
	Reset()
}

// Defaults returns the standard metric set for a batch run.
func Defaults() []Metric {
	return []Metric{
		NewMeanFrequency(),
		NewHeterozygosity(),
		NewBoundaryTime(0.05),
	}
}

// MeanFrequency tracks the trajectory average.
type MeanFrequency struct {
	sum     float64
	samples int
}

func NewMeanFrequency() *MeanFrequency { return &MeanFrequency{} }

func (m *MeanFrequency) Name() string { return "mean_frequency" }

func (m *MeanFrequency) Observe(p float64, generation int) {
	m.sum += p
	m.samples++
}

func (m *MeanFrequency) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.sum / float64(m.samples)
}

func (m *MeanFrequency) Reset() {
	m.sum = 0
	m.samples = 0
}

// Heterozygosity tracks mean expected heterozygosity 2p(1-p), the
// standard diversity measure at a biallelic locus.
type Heterozygosity struct {
	sum     float64
	samples int
}

func NewHeterozygosity() *Heterozygosity { return &Heterozygosity{} }

func (h *Heterozygosity) Name() string { return "heterozygosity" }

func (h *Heterozygosity) Observe(p float64, generation int) {
	h.sum += 2 * p * (1 - p)
	h.samples++
}

func (h *Heterozygosity) Value() float64 {
	if h.samples == 0 {
		return 0
	}
	return h.sum / float64(h.samples)
}

func (h *Heterozygosity) Reset() {
	h.sum = 0
	h.samples = 0
}

// BoundaryTime tracks the fraction of generations spent within margin
// of a clamp bound, a proxy for near-fixation or near-loss episodes.
type BoundaryTime struct {
	margin  float64
	near    int
	samples int
}

func NewBoundaryTime(margin float64) *BoundaryTime {
	return &BoundaryTime{margin: margin}
}

func (b *BoundaryTime) Name() string { return "boundary_time" }

func (b *BoundaryTime) Observe(p float64, generation int) {
	b.samples++
	if p <= sim.MinFrequency+b.margin || p >= sim.MaxFrequency-b.margin {
		b.near++
	}
}

func (b *BoundaryTime) Value() float64 {
	if b.samples == 0 {
		return 0
	}
	return float64(b.near) / float64(b.samples)
}

func (b *BoundaryTime) Reset() {
	b.near = 0
	b.samples = 0
}
