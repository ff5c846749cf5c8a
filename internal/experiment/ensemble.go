package experiment

import (
	"context"
	"sync"
)

// Ensemble runs the same configuration across sequentially-seeded
// replicates, one goroutine each. Replicate i uses seed cfg.Seed + i.
type Ensemble struct {
	cfg        Config
	replicates int
}

func NewEnsemble(cfg Config, replicates int) *Ensemble {
	return &Ensemble{cfg: cfg, replicates: replicates}
}

func (e *Ensemble) Run(ctx context.Context) ([]*Result, error) {
	results := make([]*Result, e.replicates)
	errs := make([]error, e.replicates)

	var wg sync.WaitGroup
	for i := 0; i < e.replicates; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			cfg := e.cfg
			cfg.Seed = e.cfg.Seed + int64(idx)

			// Metrics accumulate per replicate, so each run gets its
			// own set.
			results[idx], errs[idx] = Run(ctx, cfg, nil)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}

// MeanFinal averages the final frequency across replicate results.
func MeanFinal(results []*Result) float64 {
	if len(results) == 0 {
		return 0
	}
	sum := 0.0
	for _, r := range results {
		sum += r.Final
	}
	return sum / float64(len(results))
}
