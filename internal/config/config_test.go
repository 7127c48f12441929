package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	config := Default()

	// Simulation defaults: the reference scenario
	if config.Simulation.Source.Index != 2.3 {
		t.Errorf("expected source index 2.3, got %v", config.Simulation.Source.Index)
	}
	if config.Simulation.Source.Amplitude != 2.5e-12 {
		t.Errorf("expected source amplitude 2.5e-12, got %v", config.Simulation.Source.Amplitude)
	}
	if config.Simulation.LivetimeHours != 4 {
		t.Errorf("expected livetime 4h, got %v", config.Simulation.LivetimeHours)
	}
	if config.Simulation.Background != nil {
		t.Error("expected no background by default")
	}

	// Sampler defaults
	if config.Sampler.Backend != "ultranest" {
		t.Errorf("expected backend 'ultranest', got %q", config.Sampler.Backend)
	}
	if config.Sampler.LivePoints != 200 {
		t.Errorf("expected 200 live points, got %d", config.Sampler.LivePoints)
	}
	if config.Sampler.FracRemain != 0.5 {
		t.Errorf("expected frac_remain 0.5, got %v", config.Sampler.FracRemain)
	}
	if config.Sampler.Resume != "subfolder" {
		t.Errorf("expected resume 'subfolder', got %q", config.Sampler.Resume)
	}

	// Logging defaults
	if config.Logging.Level != "info" {
		t.Errorf("expected Logging.Level 'info', got %q", config.Logging.Level)
	}

	if err := config.Validate(); err != nil {
		t.Errorf("default config must validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
simulation:
  livetime_hours: 8
  background:
    index: 3
    amplitude: 3.0e-12
    reference: 1
  alpha: 0.3333
  seeds: [0, 1, 2, 3, 4]

sampler:
  backend: ultranest
  live_points: 400
  frac_remain: 0.1
  log_dir: chains/run1

logging:
  level: debug
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	config, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}

	if config.Simulation.LivetimeHours != 8 {
		t.Errorf("livetime_hours = %v, want 8", config.Simulation.LivetimeHours)
	}
	if config.Simulation.Background == nil || config.Simulation.Background.Index != 3 {
		t.Errorf("background not loaded: %+v", config.Simulation.Background)
	}
	if len(config.Simulation.Seeds) != 5 || config.Simulation.Seeds[4] != 4 {
		t.Errorf("seeds = %v", config.Simulation.Seeds)
	}
	if config.Sampler.LivePoints != 400 {
		t.Errorf("live_points = %d, want 400", config.Sampler.LivePoints)
	}
	if config.Sampler.LogDir != "chains/run1" {
		t.Errorf("log_dir = %q", config.Sampler.LogDir)
	}
	if config.Logging.Level != "debug" {
		t.Errorf("level = %q, want debug", config.Logging.Level)
	}

	// Unset fields keep their defaults.
	if config.Simulation.Source.Index != 2.3 {
		t.Errorf("source defaults lost: %+v", config.Simulation.Source)
	}
	if config.Sampler.Resume != "subfolder" {
		t.Errorf("resume default lost: %q", config.Sampler.Resume)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	config, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if config.Simulation.Source.Index != 2.3 {
		t.Errorf("expected defaults, got %+v", config.Simulation.Source)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("SPECSIM_LOG_LEVEL", "trace")
	t.Setenv("SPECSIM_SAMPLER_BACKEND", "zeusmc")

	config, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if config.Logging.Level != "trace" {
		t.Errorf("level = %q, want trace", config.Logging.Level)
	}
	if config.Sampler.Backend != "zeusmc" {
		t.Errorf("backend = %q, want zeusmc", config.Sampler.Backend)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"inverted energy range", func(c *Config) { c.Simulation.EnergyMax = c.Simulation.EnergyMin / 2 }},
		{"zero true bins", func(c *Config) { c.Simulation.TrueBins = 0 }},
		{"zero edisp sigma", func(c *Config) { c.Simulation.EdispSigma = 0 }},
		{"zero livetime", func(c *Config) { c.Simulation.LivetimeHours = 0 }},
		{"background without alpha", func(c *Config) { c.Simulation.Background = &PowerLawConfig{Index: 3} }},
		{"alpha without background", func(c *Config) { c.Simulation.Alpha = 0.5 }},
		{"zero live points", func(c *Config) { c.Sampler.LivePoints = 0 }},
		{"frac remain above one", func(c *Config) { c.Sampler.FracRemain = 2 }},
		{"bad log level", func(c *Config) { c.Logging.Level = "verbose" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := Default()
			tt.mutate(config)
			if err := config.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
