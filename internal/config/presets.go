package config

import (
	"sort"

	"github.com/san-kum/allelesim/internal/genetics"
)

// Preset is a named, read-only pathogen scenario. Applying one replaces
// the entire active parameter snapshot; nothing is merged field by
// field.
type Preset struct {
	Name        string
	Description string
	Forces      genetics.ForceParams
}

var presets = map[string]Preset{
	"influenza": {
		Name:        "influenza",
		Description: "seasonal flu: fast antigenic change, heavy reassortment, global mixing",
		Forces: genetics.ForceParams{
			MutationRate:      75,
			SelectionStrength: 60,
			GeneFlowRate:      80,
			DriftStrength:     30,
			RecombinationRate: 90,
			PopulationSize:    85,
			ReplicationSpeed:  70,
		},
	},
	"mrsa": {
		Name:        "mrsa",
		Description: "hospital staph: intense antibiotic selection in small, isolated wards",
		Forces: genetics.ForceParams{
			MutationRate:      40,
			SelectionStrength: 90,
			GeneFlowRate:      20,
			DriftStrength:     65,
			RecombinationRate: 35,
			PopulationSize:    25,
			ReplicationSpeed:  60,
		},
	},
	"hiv": {
		Name:        "hiv",
		Description: "within-host HIV: extreme mutation, strong drug selection, recombination between co-infecting strains",
		Forces: genetics.ForceParams{
			MutationRate:      95,
			SelectionStrength: 80,
			GeneFlowRate:      10,
			DriftStrength:     45,
			RecombinationRate: 70,
			PopulationSize:    55,
			ReplicationSpeed:  80,
		},
	},
	"tuberculosis": {
		Name:        "tuberculosis",
		Description: "slow-growing TB: low mutation, clonal (no recombination), long generations",
		Forces: genetics.ForceParams{
			MutationRate:      15,
			SelectionStrength: 70,
			GeneFlowRate:      30,
			DriftStrength:     40,
			RecombinationRate: 5,
			PopulationSize:    45,
			ReplicationSpeed:  20,
		},
	},
	"gonorrhea": {
		Name:        "gonorrhea",
		Description: "N. gonorrhoeae: natural transformation imports resistance from a large connected gene pool",
		Forces: genetics.ForceParams{
			MutationRate:      50,
			SelectionStrength: 75,
			GeneFlowRate:      85,
			DriftStrength:     25,
			RecombinationRate: 80,
			PopulationSize:    70,
			ReplicationSpeed:  55,
		},
	},
}

// GetPreset returns the named preset, or false when unknown.
func GetPreset(name string) (Preset, bool) {
	p, ok := presets[name]
	return p, ok
}

// ListPresets returns preset names in stable order.
func ListPresets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
