// Package config loads the mvn tool configuration from YAML files and
// environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/katalvlaran/mvnormal/internal/logging"
	"gopkg.in/yaml.v3"
)

// DefaultSamples is the number of draws used when none is configured.
const DefaultSamples = 5000

// Config contains all mvn tool settings.
type Config struct {
	// Mean is the mean vector. Left untyped so that validation, not YAML
	// decoding, reports malformed parameters.
	Mean any `json:"mean" yaml:"mean"`

	// Cov is the covariance matrix, a list of rows.
	Cov any `json:"cov" yaml:"cov"`

	// Seed makes sampling reproducible when set.
	Seed *uint64 `json:"seed,omitempty" yaml:"seed,omitempty"`

	// Samples is the number of draws for sample, stats and plot.
	Samples int `json:"samples" yaml:"samples"`

	// Logging contains settings for operational logging.
	Logging LoggingConfig `json:"logging" yaml:"logging"`

	// Plot contains settings for the scatter plot.
	Plot PlotConfig `json:"plot" yaml:"plot"`
}

// LoggingConfig configures the tool's logging behavior.
type LoggingConfig struct {
	// Level sets the log verbosity: "info" (default), "debug", or "trace".
	Level string `json:"level" yaml:"level"`
}

// PlotConfig configures the scatter plot.
type PlotConfig struct {
	// Width is the side of the square canvas, e.g. "6in" or "15cm".
	Width string `json:"width" yaml:"width"`

	// X and Y are the dimensions drawn on the horizontal and vertical axes.
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// Default returns a Config with sensible defaults and no parameters.
func Default() *Config {
	return &Config{
		Samples: DefaultSamples,
		Logging: LoggingConfig{Level: "info"},
		Plot:    PlotConfig{Width: "6in", X: 0, Y: 1},
	}
}

// Load reads path (when non-empty) over the defaults and then applies
// environment overrides.
// Order: defaults -> path -> environment variables
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		var err error
		if cfg, err = LoadFromFile(path); err != nil {
			return nil, err
		}
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromFile loads configuration from a specific YAML file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return cfg, nil
}

// Validate checks the tool settings. Distribution parameters are validated
// separately by mvn.FromValues.
func (c *Config) Validate() error {
	if c.Samples <= 0 {
		return fmt.Errorf("samples must be positive, got %d", c.Samples)
	}
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("invalid log level: %s (valid: info, debug, trace, or empty for default)", c.Logging.Level)
	}
	if c.Plot.X < 0 || c.Plot.Y < 0 {
		return fmt.Errorf("plot axes must be non-negative, got x=%d y=%d", c.Plot.X, c.Plot.Y)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Unlike unknown log levels, malformed numbers are reported.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("MVN_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("MVN_SEED: %w", err)
		}
		cfg.Seed = &seed
	}

	if v := os.Getenv("MVN_SAMPLES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("MVN_SAMPLES: %w", err)
		}
		cfg.Samples = n
	}

	if v := os.Getenv("MVN_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}

	return nil
}
