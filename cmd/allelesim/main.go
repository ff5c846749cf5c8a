package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/allelesim/internal/config"
	"github.com/san-kum/allelesim/internal/experiment"
	"github.com/san-kum/allelesim/internal/export"
	"github.com/san-kum/allelesim/internal/genetics"
	"github.com/san-kum/allelesim/internal/metrics"
	"github.com/san-kum/allelesim/internal/tui"
)

var (
	mutation      float64
	selection     float64
	geneFlow      float64
	drift         float64
	recombination float64
	population    float64
	speed         float64

	generations int
	seed        int64
	replicates  int
	preset      string
	configFile  string
	asJSON      bool
	asCSV       bool
)

// main registers commands and flags; with no subcommand it launches the
// interactive TUI. Exits with status 1 when a command fails.
func main() {
	rootCmd := &cobra.Command{
		Use:   "allelesim",
		Short: "interactive single-locus allele-frequency simulator",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run()
		},
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a headless batch simulation",
		RunE:  runBatch,
	}
	runCmd.Flags().Float64Var(&mutation, "mutation", 50, "mutation rate (0-100)")
	runCmd.Flags().Float64Var(&selection, "selection", 50, "selection strength (0-100)")
	runCmd.Flags().Float64Var(&geneFlow, "gene-flow", 50, "gene flow rate (0-100)")
	runCmd.Flags().Float64Var(&drift, "drift", 50, "drift strength (0-100)")
	runCmd.Flags().Float64Var(&recombination, "recombination", 50, "recombination rate (0-100)")
	runCmd.Flags().Float64Var(&population, "population", 50, "population size (0-100)")
	runCmd.Flags().Float64Var(&speed, "speed", 50, "replication speed (0-100, batch runs ignore cadence)")
	runCmd.Flags().IntVar(&generations, "generations", config.DefaultGenerations, "generations to simulate")
	runCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = time-seeded)")
	runCmd.Flags().IntVar(&replicates, "replicates", 1, "independent replicate runs (seeds increment)")
	runCmd.Flags().StringVar(&preset, "preset", "", "pathogen preset name")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().BoolVar(&asJSON, "json", false, "write trajectory as JSON to stdout")
	runCmd.Flags().BoolVar(&asCSV, "csv", false, "write trajectory as CSV to stdout")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list pathogen presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tMUT\tSEL\tFLOW\tDRIFT\tREC\tPOP\tSPEED\tDESCRIPTION")
			for _, name := range config.ListPresets() {
				p, _ := config.GetPreset(name)
				f := p.Forces
				fmt.Fprintf(w, "%s\t%.0f\t%.0f\t%.0f\t%.0f\t%.0f\t%.0f\t%.0f\t%s\n",
					p.Name, f.MutationRate, f.SelectionStrength, f.GeneFlowRate,
					f.DriftStrength, f.RecombinationRate, f.PopulationSize,
					f.ReplicationSpeed, p.Description)
			}
			return w.Flush()
		},
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive terminal mode",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run()
		},
	}

	rootCmd.AddCommand(runCmd, presetsCmd, tuiCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveParams layers preset, config file, and CLI flags; later
// sources win only for flags the user actually set.
func resolveParams(cmd *cobra.Command) (genetics.ForceParams, error) {
	params := genetics.DefaultParams()

	if preset != "" {
		p, ok := config.GetPreset(preset)
		if !ok {
			return params, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		params = p.Forces
	}

	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return params, fmt.Errorf("failed to load config: %w", err)
		}
		params = cfg.Forces
		if !cmd.Flags().Changed("generations") {
			generations = cfg.Generations
		}
		if cfg.Seed != 0 && !cmd.Flags().Changed("seed") {
			seed = cfg.Seed
		}
	}

	flagFields := []struct {
		name  string
		value float64
		field *float64
	}{
		{"mutation", mutation, &params.MutationRate},
		{"selection", selection, &params.SelectionStrength},
		{"gene-flow", geneFlow, &params.GeneFlowRate},
		{"drift", drift, &params.DriftStrength},
		{"recombination", recombination, &params.RecombinationRate},
		{"population", population, &params.PopulationSize},
		{"speed", speed, &params.ReplicationSpeed},
	}
	for _, f := range flagFields {
		if cmd.Flags().Changed(f.name) {
			*f.field = f.value
		}
	}

	return params.Clamped(), nil
}

func runBatch(cmd *cobra.Command, args []string) error {
	params, err := resolveParams(cmd)
	if err != nil {
		return err
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	cfg := experiment.Config{
		Params:      params,
		Generations: generations,
		Seed:        seed,
	}

	if replicates > 1 {
		return runEnsemble(cfg)
	}

	ms := metrics.Defaults()
	result, err := experiment.Run(context.Background(), cfg, ms)
	if err != nil {
		return err
	}

	switch {
	case asJSON:
		return export.WriteJSON(os.Stdout, preset, cfg, result)
	case asCSV:
		return export.WriteCSV(os.Stdout, result)
	}

	graph := asciigraph.Plot(result.Frequencies,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.LowerBound(0),
		asciigraph.UpperBound(1),
		asciigraph.Caption("resistant allele frequency"),
	)
	fmt.Println(graph)
	fmt.Println()
	fmt.Printf("generations: %d\n", generations)
	fmt.Printf("seed: %d\n", seed)
	fmt.Printf("final frequency: %.4f\n", result.Final)
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}
	return nil
}

func runEnsemble(cfg experiment.Config) error {
	ens := experiment.NewEnsemble(cfg, replicates)
	results, err := ens.Run(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("replicates: %d (seeds %d..%d)\n", replicates, cfg.Seed, cfg.Seed+int64(replicates)-1)
	fmt.Printf("mean final frequency: %.4f\n\n", experiment.MeanFinal(results))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SEED\tFINAL")
	for i, r := range results {
		fmt.Fprintf(w, "%d\t%.4f\n", cfg.Seed+int64(i), r.Final)
	}
	return w.Flush()
}
