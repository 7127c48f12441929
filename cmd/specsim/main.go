package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0-dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "specsim",
		Short: "Seeded spectral observation simulation and sampler plumbing",
		Long: `specsim simulates synthetic gamma-ray spectral observations and
consolidates posterior results from external nested-sampling runs.

It folds a spectral model through effective-area and energy-dispersion
responses, draws deterministic per-seed Poisson counts, and persists the
resulting on/off observations for later analysis.`,
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")
	rootCmd.PersistentFlags().String("root", ".", "Project root directory")

	rootCmd.AddCommand(
		newVersionCmd(),
		newSimulateCmd(),
		newRunsCmd(),
		newConfigCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
