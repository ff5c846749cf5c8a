package genetics

import (
	"math"
	"testing"
)

// fixedSource replays a canned draw sequence, wrapping at the end.
type fixedSource struct {
	draws []float64
	next  int
}

func (f *fixedSource) Float64() float64 {
	v := f.draws[f.next%len(f.draws)]
	f.next++
	return v
}

// midSource always draws 0.5, zeroing both stochastic terms.
func midSource() Source {
	return &fixedSource{draws: []float64{0.5}}
}

func TestFrequencyDeltaEquilibriumFixedPoint(t *testing.T) {
	// A population sitting at the migrant-pool frequency with every
	// other force neutralized must not move.
	for _, p := range []float64{0.01, 0.25, 0.5, 0.75, 0.99} {
		params := ForceParams{
			MutationRate:      50, // bias term zero at midpoint
			SelectionStrength: 50,
			GeneFlowRate:      p * 100,
			DriftStrength:     0,
			RecombinationRate: 0,
			PopulationSize:    50,
		}
		delta := FrequencyDelta(p, params, midSource())
		if math.Abs(delta) > 1e-12 {
			t.Errorf("p=%.2f: expected zero delta at equilibrium, got %g", p, delta)
		}
	}
}

func TestFrequencyDeltaSelectionOnly(t *testing.T) {
	params := ForceParams{
		MutationRate:      50,
		SelectionStrength: 100,
		DriftStrength:     0,
		RecombinationRate: 0,
		PopulationSize:    50,
	}

	p := 0.5
	params.GeneFlowRate = p * 100
	delta := FrequencyDelta(p, params, midSource())
	want := 0.5 * selectionScale * 0.5 * 0.5
	if math.Abs(delta-want) > 1e-12 {
		t.Errorf("selection-only delta at p=0.5: got %g, want %g", delta, want)
	}

	// Favored allele rises from any interior frequency.
	for _, p := range []float64{0.1, 0.3, 0.5, 0.7, 0.9} {
		params.GeneFlowRate = p * 100
		if d := FrequencyDelta(p, params, midSource()); d <= 0 {
			t.Errorf("p=%.1f: favored allele should rise, delta=%g", p, d)
		}
	}
}

func TestFrequencyDeltaSelectionVanishesAtBoundaries(t *testing.T) {
	params := ForceParams{SelectionStrength: 100, MutationRate: 50}
	for _, p := range []float64{0, 1} {
		params.GeneFlowRate = p * 100
		if d := FrequencyDelta(p, params, midSource()); math.Abs(d) > 1e-12 {
			t.Errorf("p=%v: selection term should vanish at boundary, delta=%g", p, d)
		}
	}
}

func TestFrequencyDeltaMutationBias(t *testing.T) {
	tests := []struct {
		rate float64
		want float64
	}{
		{0, -0.025},
		{50, 0},
		{100, 0.025},
	}
	for _, tt := range tests {
		params := ForceParams{MutationRate: tt.rate, SelectionStrength: 50, GeneFlowRate: 50, PopulationSize: 50}
		delta := FrequencyDelta(0.5, params, midSource())
		if math.Abs(delta-tt.want) > 1e-12 {
			t.Errorf("mutation=%v: got delta %g, want %g", tt.rate, delta, tt.want)
		}
	}
}

func TestFrequencyDeltaDriftScaling(t *testing.T) {
	// First draw high: drift pushes up. Doubling population size must
	// shrink the drift magnitude by sqrt(2).
	src := func() Source { return &fixedSource{draws: []float64{1.0, 0.5}} }

	base := ForceParams{MutationRate: 50, SelectionStrength: 50, GeneFlowRate: 50, DriftStrength: 100, PopulationSize: 50}
	small := FrequencyDelta(0.5, base, src())

	big := base
	big.PopulationSize = 100
	large := FrequencyDelta(0.5, big, src())

	if small <= 0 || large <= 0 {
		t.Fatalf("expected positive drift deltas, got %g and %g", small, large)
	}
	ratio := small / large
	if math.Abs(ratio-math.Sqrt(2)) > 1e-9 {
		t.Errorf("drift ratio for 2x population: got %g, want sqrt(2)", ratio)
	}
}

func TestFrequencyDeltaDriftShrinksNearBoundary(t *testing.T) {
	src := func() Source { return &fixedSource{draws: []float64{1.0, 0.5}} }
	params := ForceParams{MutationRate: 50, SelectionStrength: 50, DriftStrength: 100, PopulationSize: 50}

	params.GeneFlowRate = 50
	mid := FrequencyDelta(0.5, params, src())
	params.GeneFlowRate = 5
	edge := FrequencyDelta(0.05, params, src())

	if math.Abs(edge) >= math.Abs(mid) {
		t.Errorf("drift near boundary (%g) should be weaker than at p=0.5 (%g)", edge, mid)
	}
}

func TestFrequencyDeltaZeroPopulationGuard(t *testing.T) {
	params := ForceParams{MutationRate: 50, SelectionStrength: 50, GeneFlowRate: 50, DriftStrength: 100, PopulationSize: 0}
	delta := FrequencyDelta(0.5, params, &fixedSource{draws: []float64{1.0, 0.5}})

	if math.IsNaN(delta) || math.IsInf(delta, 0) {
		t.Fatalf("zero population produced non-finite delta: %v", delta)
	}
	// Floor of 1 on the 0..100 scale bounds the amplification at
	// sqrt(50) for a unit-scale drift draw.
	maxDrift := 0.5 * math.Sqrt(0.25) / math.Sqrt(MinPopulationSize/referencePopSize)
	if math.Abs(delta) > maxDrift+1e-9 {
		t.Errorf("guarded drift exceeds floor bound: %g > %g", delta, maxDrift)
	}
}

func TestFrequencyDeltaRecombinationZeroMeanPair(t *testing.T) {
	params := ForceParams{MutationRate: 50, SelectionStrength: 50, GeneFlowRate: 50, DriftStrength: 0, RecombinationRate: 100, PopulationSize: 50}

	up := FrequencyDelta(0.5, params, &fixedSource{draws: []float64{0.5, 1.0}})
	down := FrequencyDelta(0.5, params, &fixedSource{draws: []float64{0.5, 0.0}})

	if math.Abs(up+down) > 1e-12 {
		t.Errorf("symmetric draws should cancel: %g vs %g", up, down)
	}
	if math.Abs(up-recombinationScale*0.5) > 1e-12 {
		t.Errorf("recombination amplitude: got %g, want %g", up, recombinationScale*0.5)
	}
}

func TestFrequencyDeltaConsumesTwoDraws(t *testing.T) {
	src := &fixedSource{draws: []float64{0.1, 0.9, 0.3, 0.7}}
	FrequencyDelta(0.5, DefaultParams(), src)
	if src.next != 2 {
		t.Errorf("expected exactly 2 draws, got %d", src.next)
	}
}

func TestFrequencyDeltaSeededReproducibility(t *testing.T) {
	params := DefaultParams()
	params.DriftStrength = 80

	run := func(seed int64) []float64 {
		src := NewSource(seed)
		p := 0.5
		out := make([]float64, 0, 50)
		for i := 0; i < 50; i++ {
			d := FrequencyDelta(p, params, src)
			p += d
			out = append(out, d)
		}
		return out
	}

	a, b := run(7), run(7)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("step %d: same seed diverged: %g vs %g", i, a[i], b[i])
		}
	}
}
