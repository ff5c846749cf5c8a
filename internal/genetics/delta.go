package genetics

import "math"

// Scale constants for the deterministic and stochastic terms. The
// population reference of 50 means drift at PopulationSize=50 carries
// unit scaling; larger populations shrink it, smaller ones amplify it.
const (
	mutationScale      = 0.05
	selectionScale     = 0.15
	geneFlowScale      = 0.08
	recombinationScale = 0.03
	referencePopSize   = 50.0
)

// FrequencyDelta computes the per-generation increment to allele
// frequency p under the five forces in params. The result is the sum
// of three deterministic terms (mutation bias, selection differential,
// migrant-pool pull) and two zero-mean stochastic terms (drift,
// recombination), each derived from exactly one force.
//
// The mutation term is a constant net bias independent of p, not a
// p-proportional one-way rate. That matches the model being reproduced;
// do not "correct" it.
//
// src must yield two independent uniforms per call: the first feeds
// drift, the second recombination.
func FrequencyDelta(p float64, params ForceParams, src Source) float64 {
	params = params.Clamped()

	mutation := (params.MutationRate/ParamMax - 0.5) * mutationScale
	selection := (params.SelectionStrength/ParamMax - 0.5) * selectionScale * p * (1 - p)
	geneFlow := (params.GeneFlowRate/ParamMax - p) * geneFlowScale

	popSize := params.PopulationSize
	if popSize < MinPopulationSize {
		popSize = MinPopulationSize
	}
	drift := (src.Float64() - 0.5) *
		(params.DriftStrength / ParamMax) *
		math.Sqrt(p*(1-p)) /
		math.Sqrt(popSize/referencePopSize)

	recombination := (params.RecombinationRate / ParamMax) * recombinationScale * (src.Float64() - 0.5)

	return mutation + selection + geneFlow + drift + recombination
}
