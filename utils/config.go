package utils

import (
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Config holds the simulation settings. Values layer up from defaults,
// then an optional JSON config file, then command-line flags.
type Config struct {
	Rows          int           `json:"rows"`
	Cols          int           `json:"cols"`
	TickInterval  time.Duration `json:"tick_interval"`
	RandomDensity float64       `json:"random_density"`
	RandomSeed    int64         `json:"random_seed"`
	PatternFile   string        `json:"pattern_file"`
	RunForever    bool          `json:"run_forever"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Rows:          24,
		Cols:          60,
		TickInterval:  150 * time.Millisecond,
		RandomDensity: 0.25,
		RandomSeed:    0, // time-based
		RunForever:    false,
	}
}

// LoadConfig overlays settings from a JSON file onto config. A missing
// file is not an error; config comes back unchanged.
func LoadConfig(filename string, config Config) (Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Rows, "rows", c.Rows, "grid height in cells")
	fs.IntVar(&c.Cols, "cols", c.Cols, "grid width in cells")
	fs.DurationVar(&c.TickInterval, "tick", c.TickInterval, "delay between generations")
	fs.Float64Var(&c.RandomDensity, "density", c.RandomDensity, "probability a cell starts alive")
	fs.Int64Var(&c.RandomSeed, "seed", c.RandomSeed, "random seed, 0 means time-based")
	fs.StringVar(&c.PatternFile, "pattern", c.PatternFile, "seed pattern file (overrides -density)")
	fs.BoolVar(&c.RunForever, "run-forever", c.RunForever, "keep running after the board settles")
}

// Validate rejects settings the simulation cannot start with.
func (c Config) Validate() error {
	if c.Rows <= 0 || c.Cols <= 0 {
		return errors.Errorf("[Validate] grid dimensions must be positive, got %dx%d", c.Rows, c.Cols)
	}
	if c.TickInterval <= 0 {
		return errors.Errorf("[Validate] tick interval must be positive, got %v", c.TickInterval)
	}
	if c.RandomDensity < 0 || c.RandomDensity > 1 {
		return errors.Errorf("[Validate] density must be in [0,1], got %v", c.RandomDensity)
	}
	return nil
}
