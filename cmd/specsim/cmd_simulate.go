package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/aterrel/specsim/internal/config"
	"github.com/aterrel/specsim/internal/constants"
	"github.com/aterrel/specsim/internal/irf"
	"github.com/aterrel/specsim/internal/logging"
	"github.com/aterrel/specsim/internal/simulate"
	"github.com/aterrel/specsim/internal/spectral"
	"github.com/aterrel/specsim/internal/store"
)

func newSimulateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Draw seeded synthetic observations and persist them",
		Long: `Simulate folds the configured source model through the effective-area
and energy-dispersion responses, draws Poisson counts per seed, and
saves the resulting observations as a run in the local store.

The same seed always produces the same counts for a given configuration.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, _ := cmd.Flags().GetString("root")
			jsonOut, _ := cmd.Flags().GetBool("json")
			seedsFlag, _ := cmd.Flags().GetString("seeds")
			dryRun, _ := cmd.Flags().GetBool("dry-run")

			cfg, err := config.Load(root)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}

			seeds := cfg.Simulation.Seeds
			if seedsFlag != "" {
				seeds, err = parseSeeds(seedsFlag)
				if err != nil {
					return err
				}
			}
			if len(seeds) == 0 {
				return fmt.Errorf("no seeds configured; set simulation.seeds or pass --seeds")
			}

			logger := logging.NewLogger(cfg.Logging.Level, cmd.ErrOrStderr())
			trace := logging.NewTraceLogger(filepath.Join(root, constants.DataDirName), cfg.Logging.Level)
			defer trace.Close()

			sim, err := buildSimulator(cfg)
			if err != nil {
				return fmt.Errorf("building simulator: %w", err)
			}

			logger.Info("simulating", "seeds", len(seeds), "livetime_s", sim.Livetime)
			results, err := sim.SimulateBatch(seeds)
			if err != nil {
				return fmt.Errorf("simulation failed: %w", err)
			}

			run, records := buildRunRecords(cfg, sim, results)
			for _, rec := range records {
				trace.Log(map[string]any{
					"event":     "observation",
					"run_id":    run.ID,
					"seed":      rec.Seed,
					"total_on":  rec.TotalOn,
					"total_off": rec.TotalOff,
				})
			}

			if !dryRun {
				runStore, err := store.NewSQLiteRunStore(root)
				if err != nil {
					return fmt.Errorf("opening store: %w", err)
				}
				defer runStore.Close()

				if err := runStore.SaveRun(context.Background(), run, records); err != nil {
					return fmt.Errorf("saving run: %w", err)
				}
				logger.Info("run saved", "run_id", run.ID)
			}

			if jsonOut {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]any{
					"run_id":       run.ID,
					"saved":        !dryRun,
					"observations": records,
				})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Run %s (%d observations)\n\n", run.ID, len(records))
			fmt.Fprintf(out, "%-10s %-22s %-10s %-10s\n", "POSITION", "SEED", "TOTAL ON", "TOTAL OFF")
			for _, rec := range records {
				off := "-"
				if rec.OffCounts != nil {
					off = strconv.FormatInt(rec.TotalOff, 10)
				}
				fmt.Fprintf(out, "%-10d %-22d %-10d %-10s\n", rec.Position, rec.Seed, rec.TotalOn, off)
			}
			if dryRun {
				fmt.Fprintln(out, "\nDry run: nothing saved.")
			}
			return nil
		},
	}

	cmd.Flags().String("seeds", "", "Comma-separated seeds overriding the configured batch")
	cmd.Flags().Bool("dry-run", false, "Simulate without saving to the store")

	return cmd
}

// buildSimulator constructs the response chain and simulator from config.
func buildSimulator(cfg *config.Config) (*simulate.Simulator, error) {
	sim := cfg.Simulation

	trueAxis, err := irf.LogSpacedAxis(sim.EnergyMin, sim.EnergyMax, sim.TrueBins)
	if err != nil {
		return nil, fmt.Errorf("true-energy axis: %w", err)
	}
	recoAxis, err := irf.LogSpacedAxis(sim.RecoMin, sim.RecoMax, sim.RecoBins)
	if err != nil {
		return nil, fmt.Errorf("reco-energy axis: %w", err)
	}

	edisp, err := irf.GaussianEnergyDispersion(trueAxis, recoAxis, sim.EdispSigma, sim.EdispBias)
	if err != nil {
		return nil, fmt.Errorf("energy dispersion: %w", err)
	}

	simulator := &simulate.Simulator{
		Aeff:     irf.ParametricEffectiveArea(trueAxis),
		Edisp:    edisp,
		Source:   powerLawFromConfig(sim.Source),
		Livetime: sim.LivetimeHours * 3600,
	}
	if sim.Background != nil {
		simulator.Background = powerLawFromConfig(*sim.Background)
		simulator.Alpha = sim.Alpha
	}
	return simulator, nil
}

func powerLawFromConfig(pl config.PowerLawConfig) *spectral.PowerLaw {
	return &spectral.PowerLaw{
		Index:     pl.Index,
		Amplitude: pl.Amplitude,
		Reference: pl.Reference,
	}
}

// buildRunRecords converts a result set into a store run plus its
// observation records, minting a fresh run ID.
func buildRunRecords(cfg *config.Config, sim *simulate.Simulator, results *simulate.ResultSet) (*store.Run, []store.ObservationRecord) {
	run := &store.Run{
		ID:        newRunID(),
		CreatedAt: time.Now().UTC(),
		Livetime:  sim.Livetime,
		Source:    powerLawSummary(cfg.Simulation.Source),
		Seeds:     results.Seeds,
	}
	if cfg.Simulation.Background != nil {
		run.Background = powerLawSummary(*cfg.Simulation.Background)
		run.Alpha = cfg.Simulation.Alpha
	}

	records := make([]store.ObservationRecord, results.Len())
	for i := 0; i < results.Len(); i++ {
		obs := results.At(i)
		records[i] = store.ObservationRecord{
			RunID:     run.ID,
			Position:  i,
			Seed:      obs.Seed,
			OnCounts:  obs.OnCounts,
			OffCounts: obs.OffCounts,
			Alpha:     obs.Alpha,
			TotalOn:   obs.TotalOn(),
			TotalOff:  obs.TotalOff(),
		}
	}
	return run, records
}

func powerLawSummary(pl config.PowerLawConfig) string {
	return fmt.Sprintf("powerlaw(index=%g, amplitude=%g, reference=%g)", pl.Index, pl.Amplitude, pl.Reference)
}

// newRunID mints a timestamped run ID with a short random suffix.
func newRunID() string {
	suffix := make([]byte, 3)
	rand.Read(suffix)
	return fmt.Sprintf("run-%s-%s", time.Now().UTC().Format("20060102-150405"), hex.EncodeToString(suffix))
}

// parseSeeds parses a comma-separated seed list, e.g. "0,1,2,42".
func parseSeeds(s string) ([]uint64, error) {
	parts := strings.Split(s, ",")
	seeds := make([]uint64, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		seed, err := strconv.ParseUint(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid seed %q: %w", part, err)
		}
		seeds = append(seeds, seed)
	}
	if len(seeds) == 0 {
		return nil, fmt.Errorf("no seeds in %q", s)
	}
	return seeds, nil
}
