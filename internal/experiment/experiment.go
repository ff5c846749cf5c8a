// Package experiment runs headless batch simulations: a fixed number
// of generations under one parameter snapshot, with the full trajectory
// and summary metrics collected for export.
package experiment

import (
	"context"
	"fmt"

	"github.com/san-kum/allelesim/internal/genetics"
	"github.com/san-kum/allelesim/internal/metrics"
	"github.com/san-kum/allelesim/internal/sim"
)

type Config struct {
	Params      genetics.ForceParams
	Generations int
	Seed        int64
}

// Result holds a complete batch trajectory. Unlike the live driver's
// bounded history, batch runs keep every generation.
type Result struct {
	Frequencies []float64
	Final       float64
	Metrics     map[string]float64
}

// Run simulates cfg.Generations committed ticks from the initial
// frequency. Same seed, same trajectory.
func Run(ctx context.Context, cfg Config, ms []metrics.Metric) (*Result, error) {
	if cfg.Generations <= 0 {
		return nil, fmt.Errorf("generations must be positive, got %d", cfg.Generations)
	}

	params := cfg.Params.Clamped()
	src := genetics.NewSource(cfg.Seed)

	for _, m := range ms {
		m.Reset()
	}

	result := &Result{
		Frequencies: make([]float64, 0, cfg.Generations+1),
		Metrics:     make(map[string]float64),
	}

	p := sim.InitialFrequency
	result.Frequencies = append(result.Frequencies, p)

	for gen := 1; gen <= cfg.Generations; gen++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		p = sim.Clamp(p + genetics.FrequencyDelta(p, params, src))
		result.Frequencies = append(result.Frequencies, p)

		for _, m := range ms {
			m.Observe(p, gen)
		}
	}

	result.Final = p
	for _, m := range ms {
		result.Metrics[m.Name()] = m.Value()
	}
	return result, nil
}
