package genetics

// ParamMax is the upper bound of every user-facing parameter scale.
const ParamMax = 100.0

// MinPopulationSize is the reserved floor for PopulationSize. The drift
// term divides by sqrt(PopulationSize/50); values at or near zero would
// blow the drift magnitude up, so anything below this floor is raised
// to it.
const MinPopulationSize = 1.0

// ForceParams is an immutable per-tick snapshot of the five force
// magnitudes plus the two population parameters. All fields live on a
// 0..100 scale.
type ForceParams struct {
	MutationRate      float64 `yaml:"mutation_rate" json:"mutation_rate"`
	SelectionStrength float64 `yaml:"selection_strength" json:"selection_strength"`
	GeneFlowRate      float64 `yaml:"gene_flow_rate" json:"gene_flow_rate"`
	DriftStrength     float64 `yaml:"drift_strength" json:"drift_strength"`
	RecombinationRate float64 `yaml:"recombination_rate" json:"recombination_rate"`
	PopulationSize    float64 `yaml:"population_size" json:"population_size"`
	ReplicationSpeed  float64 `yaml:"replication_speed" json:"replication_speed"`
}

// DefaultParams returns every force at the neutral midpoint of its
// scale.
func DefaultParams() ForceParams {
	return ForceParams{
		MutationRate:      50,
		SelectionStrength: 50,
		GeneFlowRate:      50,
		DriftStrength:     50,
		RecombinationRate: 50,
		PopulationSize:    50,
		ReplicationSpeed:  50,
	}
}

// Clamped returns a copy with every field forced into [0, ParamMax].
// Out-of-range slider or config input is normalized here rather than
// rejected, so re-parameterization can never stall the simulation.
func (p ForceParams) Clamped() ForceParams {
	p.MutationRate = clampParam(p.MutationRate)
	p.SelectionStrength = clampParam(p.SelectionStrength)
	p.GeneFlowRate = clampParam(p.GeneFlowRate)
	p.DriftStrength = clampParam(p.DriftStrength)
	p.RecombinationRate = clampParam(p.RecombinationRate)
	p.PopulationSize = clampParam(p.PopulationSize)
	p.ReplicationSpeed = clampParam(p.ReplicationSpeed)
	return p
}

func clampParam(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > ParamMax {
		return ParamMax
	}
	return v
}
