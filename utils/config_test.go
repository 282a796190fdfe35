package utils

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfigValidates(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestValidateRejectsBadSettings(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero rows", func(c *Config) { c.Rows = 0 }},
		{"negative cols", func(c *Config) { c.Cols = -3 }},
		{"zero tick", func(c *Config) { c.TickInterval = 0 }},
		{"negative density", func(c *Config) { c.RandomDensity = -0.5 }},
		{"density above one", func(c *Config) { c.RandomDensity = 1.5 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.mutate(&config)
			if err := config.Validate(); err == nil {
				t.Fatal("Validate should have rejected the config")
			}
		})
	}
}

func TestLoadConfigMissingFileKeepsDefaults(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "absent.json"), DefaultConfig())
	if err != nil {
		t.Fatalf("missing config file should not be an error: %v", err)
	}
	if config != DefaultConfig() {
		t.Errorf("config changed without a file: %+v", config)
	}
}

func TestLoadConfigOverlaysFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	body := `{"rows": 10, "cols": 20, "tick_interval": 50000000, "random_density": 0.5}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfig(path, DefaultConfig())
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if config.Rows != 10 || config.Cols != 20 {
		t.Errorf("dimensions not loaded: %dx%d", config.Rows, config.Cols)
	}
	if config.TickInterval != 50*time.Millisecond {
		t.Errorf("tick interval = %v, want 50ms", config.TickInterval)
	}
	if config.RandomDensity != 0.5 {
		t.Errorf("density = %v, want 0.5", config.RandomDensity)
	}
	if config.RunForever != DefaultConfig().RunForever {
		t.Error("unset file fields should keep their defaults")
	}
}

func TestLoadConfigMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path, DefaultConfig()); err == nil {
		t.Fatal("malformed config file should be an error")
	}
}

func TestBindFlagsOverrideDefaults(t *testing.T) {
	config := DefaultConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	config.Bind(fs)

	args := []string{"-rows", "12", "-cols", "34", "-tick", "75ms", "-density", "0.1", "-run-forever"}
	if err := fs.Parse(args); err != nil {
		t.Fatalf("flag parse failed: %v", err)
	}

	if config.Rows != 12 || config.Cols != 34 {
		t.Errorf("dimensions = %dx%d, want 12x34", config.Rows, config.Cols)
	}
	if config.TickInterval != 75*time.Millisecond {
		t.Errorf("tick = %v, want 75ms", config.TickInterval)
	}
	if config.RandomDensity != 0.1 {
		t.Errorf("density = %v, want 0.1", config.RandomDensity)
	}
	if !config.RunForever {
		t.Error("run-forever flag not applied")
	}
}
