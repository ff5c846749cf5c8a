// Package export streams batch-run results as JSON or CSV. Nothing is
// persisted by the simulator itself; the CLI pipes these to stdout.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/san-kum/allelesim/internal/experiment"
	"github.com/san-kum/allelesim/internal/genetics"
)

type runData struct {
	Preset      string               `json:"preset,omitempty"`
	Forces      genetics.ForceParams `json:"forces"`
	Generations int                  `json:"generations"`
	Seed        int64                `json:"seed"`
	Final       float64              `json:"final_frequency"`
	Frequencies []float64            `json:"frequencies"`
	Metrics     map[string]float64   `json:"metrics"`
}

// WriteJSON emits the run setup, full trajectory, and metrics as
// indented JSON.
func WriteJSON(w io.Writer, preset string, cfg experiment.Config, result *experiment.Result) error {
	data := runData{
		Preset:      preset,
		Forces:      cfg.Params,
		Generations: cfg.Generations,
		Seed:        cfg.Seed,
		Final:       result.Final,
		Frequencies: result.Frequencies,
		Metrics:     result.Metrics,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// WriteCSV emits one generation per row: generation index, frequency.
func WriteCSV(w io.Writer, result *experiment.Result) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"generation", "frequency"}); err != nil {
		return err
	}
	for i, p := range result.Frequencies {
		row := []string{
			strconv.Itoa(i),
			strconv.FormatFloat(p, 'f', 6, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
