// Package config provides unified configuration loading for specsim.
// It supports loading from YAML files and environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/aterrel/specsim/internal/constants"
)

// Config contains all specsim configuration settings.
type Config struct {
	// Simulation contains the observation-simulation setup.
	Simulation SimulationConfig `json:"simulation" yaml:"simulation"`

	// Sampler contains options forwarded to the sampling engine.
	Sampler SamplerConfig `json:"sampler" yaml:"sampler"`

	// Logging contains settings for operational and trace logging.
	Logging LoggingConfig `json:"logging" yaml:"logging"`
}

// LoggingConfig configures specsim's logging behavior.
type LoggingConfig struct {
	// Level sets the log verbosity: "info" (default), "debug", or "trace".
	// "debug" enables run tracing to .specsim/trace.jsonl.
	// "trace" additionally includes per-bin content.
	Level string `json:"level" yaml:"level"`
}

// PowerLawConfig describes a power-law spectral model.
type PowerLawConfig struct {
	// Index is the spectral index.
	Index float64 `json:"index" yaml:"index"`

	// Amplitude is the differential flux at Reference, cm⁻²s⁻¹TeV⁻¹.
	Amplitude float64 `json:"amplitude" yaml:"amplitude"`

	// Reference is the reference energy in TeV.
	Reference float64 `json:"reference" yaml:"reference"`
}

// SimulationConfig configures the synthetic observation setup.
type SimulationConfig struct {
	// EnergyMin/EnergyMax bound the true-energy axis in TeV.
	EnergyMin float64 `json:"energy_min" yaml:"energy_min"`
	EnergyMax float64 `json:"energy_max" yaml:"energy_max"`

	// TrueBins and RecoBins set the axis granularities.
	TrueBins int `json:"true_bins" yaml:"true_bins"`
	RecoBins int `json:"reco_bins" yaml:"reco_bins"`

	// RecoMin/RecoMax bound the reconstructed-energy axis in TeV.
	RecoMin float64 `json:"reco_min" yaml:"reco_min"`
	RecoMax float64 `json:"reco_max" yaml:"reco_max"`

	// EdispSigma is the Gaussian migration width; EdispBias its offset.
	EdispSigma float64 `json:"edisp_sigma" yaml:"edisp_sigma"`
	EdispBias  float64 `json:"edisp_bias" yaml:"edisp_bias"`

	// LivetimeHours is the observation livetime in hours.
	LivetimeHours float64 `json:"livetime_hours" yaml:"livetime_hours"`

	// Source is the source spectral model.
	Source PowerLawConfig `json:"source" yaml:"source"`

	// Background, when present, enables off-region simulation.
	Background *PowerLawConfig `json:"background,omitempty" yaml:"background,omitempty"`

	// Alpha is the on/off exposure ratio. Required with Background.
	Alpha float64 `json:"alpha,omitempty" yaml:"alpha,omitempty"`

	// Seeds are the observation seeds for a batch run.
	Seeds []uint64 `json:"seeds" yaml:"seeds"`
}

// SamplerConfig configures the external sampling engine.
type SamplerConfig struct {
	// Backend names the engine, e.g. "ultranest". An unknown backend is
	// a fatal configuration error at run start.
	Backend string `json:"backend" yaml:"backend"`

	// LivePoints is the number of live points.
	LivePoints int `json:"live_points" yaml:"live_points"`

	// FracRemain is the termination fraction, in (0, 1].
	FracRemain float64 `json:"frac_remain" yaml:"frac_remain"`

	// LogDir is an opaque checkpoint directory forwarded to the engine.
	LogDir string `json:"log_dir,omitempty" yaml:"log_dir,omitempty"`

	// Resume is the engine's checkpoint-resume policy.
	Resume string `json:"resume" yaml:"resume"`

	// StepSampler enables the engine's step sampler with NSteps steps.
	StepSampler bool `json:"step_sampler" yaml:"step_sampler"`
	NSteps      int  `json:"nsteps" yaml:"nsteps"`
}

// Default returns a Config with sensible defaults: the reference
// power-law scenario over a 4-hour livetime, no background.
func Default() *Config {
	return &Config{
		Simulation: SimulationConfig{
			EnergyMin:     0.01,
			EnergyMax:     300,
			TrueBins:      108,
			RecoBins:      72,
			RecoMin:       0.01,
			RecoMax:       100,
			EdispSigma:    0.2,
			LivetimeHours: 4,
			Source: PowerLawConfig{
				Index:     2.3,
				Amplitude: 2.5e-12,
				Reference: 1.0,
			},
			Seeds: []uint64{0},
		},
		Sampler: SamplerConfig{
			Backend:    "ultranest",
			LivePoints: constants.DefaultLivePoints,
			FracRemain: constants.DefaultFracRemain,
			Resume:     constants.DefaultResumeMode,
			NSteps:     constants.DefaultNSteps,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from the default locations and environment variables.
// Order: defaults -> <root>/.specsim/config.yaml -> environment variables
func Load(projectRoot string) (*Config, error) {
	config := Default()

	configPath := filepath.Join(projectRoot, constants.DataDirName, "config.yaml")
	if _, statErr := os.Stat(configPath); statErr == nil {
		fileConfig, loadErr := LoadFromFile(configPath)
		if loadErr != nil {
			return nil, fmt.Errorf("loading config file: %w", loadErr)
		}
		config = fileConfig
	}

	applyEnvOverrides(config)

	return config, nil
}

// LoadFromFile loads configuration from a specific YAML file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return config, nil
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	sim := c.Simulation
	if sim.EnergyMin <= 0 || sim.EnergyMax <= sim.EnergyMin {
		return fmt.Errorf("invalid true-energy range [%v, %v]", sim.EnergyMin, sim.EnergyMax)
	}
	if sim.RecoMin <= 0 || sim.RecoMax <= sim.RecoMin {
		return fmt.Errorf("invalid reco-energy range [%v, %v]", sim.RecoMin, sim.RecoMax)
	}
	if sim.TrueBins < 1 || sim.RecoBins < 1 {
		return fmt.Errorf("bin counts must be positive, got %d true and %d reco", sim.TrueBins, sim.RecoBins)
	}
	if sim.EdispSigma <= 0 {
		return fmt.Errorf("edisp_sigma must be positive, got %v", sim.EdispSigma)
	}
	if sim.LivetimeHours <= 0 {
		return fmt.Errorf("livetime_hours must be positive, got %v", sim.LivetimeHours)
	}
	if sim.Background != nil && sim.Alpha <= 0 {
		return fmt.Errorf("background configured without a positive alpha")
	}
	if sim.Background == nil && sim.Alpha != 0 {
		return fmt.Errorf("alpha %v configured without a background model", sim.Alpha)
	}

	if c.Sampler.LivePoints <= 0 {
		return fmt.Errorf("live_points must be positive, got %d", c.Sampler.LivePoints)
	}
	if c.Sampler.FracRemain <= 0 || c.Sampler.FracRemain > 1 {
		return fmt.Errorf("frac_remain must be in (0, 1], got %v", c.Sampler.FracRemain)
	}

	validLevels := map[string]bool{"info": true, "debug": true, "trace": true}
	if c.Logging.Level != "" && !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s (valid: info, debug, trace, or empty for default)", c.Logging.Level)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(config *Config) {
	if v := os.Getenv("SPECSIM_LOG_LEVEL"); v != "" {
		config.Logging.Level = v
	}
	if v := os.Getenv("SPECSIM_SAMPLER_BACKEND"); v != "" {
		config.Sampler.Backend = v
	}
	if v := os.Getenv("SPECSIM_SAMPLER_LOG_DIR"); v != "" {
		config.Sampler.LogDir = v
	}
}
