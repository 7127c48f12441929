package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aterrel/specsim/internal/store"
)

func newRunsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "Inspect stored simulation runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			root, _ := cmd.Flags().GetString("root")
			jsonOut, _ := cmd.Flags().GetBool("json")

			runStore, err := store.NewSQLiteRunStore(root)
			if err != nil {
				return fmt.Errorf("opening store: %w", err)
			}
			defer runStore.Close()

			runs, err := runStore.ListRuns(context.Background())
			if err != nil {
				return fmt.Errorf("listing runs: %w", err)
			}

			if jsonOut {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]any{
					"runs":  runs,
					"count": len(runs),
				})
			}

			out := cmd.OutOrStdout()
			if len(runs) == 0 {
				fmt.Fprintln(out, "No runs stored. Run 'specsim simulate' first.")
				return nil
			}
			fmt.Fprintf(out, "%-28s %-22s %-8s %s\n", "RUN", "CREATED", "SEEDS", "SOURCE")
			for _, run := range runs {
				fmt.Fprintf(out, "%-28s %-22s %-8d %s\n",
					run.ID, run.CreatedAt.Format("2006-01-02 15:04:05"), len(run.Seeds), run.Source)
			}
			return nil
		},
	}

	cmd.AddCommand(newRunsShowCmd(), newRunsExportCmd())

	return cmd
}

func newRunsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <run-id>",
		Short: "Show one run and its per-seed totals",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, _ := cmd.Flags().GetString("root")
			jsonOut, _ := cmd.Flags().GetBool("json")

			runStore, err := store.NewSQLiteRunStore(root)
			if err != nil {
				return fmt.Errorf("opening store: %w", err)
			}
			defer runStore.Close()

			run, observations, err := runStore.GetRun(context.Background(), args[0])
			if err != nil {
				return err
			}

			if jsonOut {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]any{
					"run":          run,
					"observations": observations,
				})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Run:      %s\n", run.ID)
			fmt.Fprintf(out, "Created:  %s\n", run.CreatedAt.Format("2006-01-02 15:04:05"))
			fmt.Fprintf(out, "Livetime: %.0f s\n", run.Livetime)
			fmt.Fprintf(out, "Source:   %s\n", run.Source)
			if run.Background != "" {
				fmt.Fprintf(out, "Background: %s (alpha=%g)\n", run.Background, run.Alpha)
			}
			fmt.Fprintf(out, "\n%-10s %-22s %-10s %-10s\n", "POSITION", "SEED", "TOTAL ON", "TOTAL OFF")
			for _, obs := range observations {
				off := "-"
				if obs.OffCounts != nil {
					off = fmt.Sprintf("%d", obs.TotalOff)
				}
				fmt.Fprintf(out, "%-10d %-22d %-10d %-10s\n", obs.Position, obs.Seed, obs.TotalOn, off)
			}
			return nil
		},
	}
}

func newRunsExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <run-id>",
		Short: "Export a run's observations as JSONL to stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, _ := cmd.Flags().GetString("root")

			runStore, err := store.NewSQLiteRunStore(root)
			if err != nil {
				return fmt.Errorf("opening store: %w", err)
			}
			defer runStore.Close()

			return runStore.ExportObservations(context.Background(), args[0], cmd.OutOrStdout())
		},
	}
}
