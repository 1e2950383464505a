// Package config loads application settings from WINDPROF_* environment
// variables.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the terminal's settings. Command-line flags override the
// data and database paths.
type Config struct {
	// DataPath is the campaign CSV loaded when no database source is used.
	DataPath string `envconfig:"DATA_PATH" default:"data/wind-profile.csv"`
	// DBPath is the provisioned SQLite database.
	DBPath string `envconfig:"DB_PATH" default:"data/windprof.db"`
	// Resample is the aggregation interval for the time-series and heatmap
	// panes.
	Resample time.Duration `envconfig:"RESAMPLE" default:"24h"`
	// Alpha is the power-law exponent used for extrapolation when no fit
	// is available.
	Alpha float64 `envconfig:"ALPHA" default:"0.143"`
}

// Load reads configuration from the environment, applying defaults where
// unset.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("windprof", &cfg); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}

	if cfg.Resample <= 0 {
		return nil, fmt.Errorf("resample interval must be positive, got %s", cfg.Resample)
	}
	if cfg.Alpha <= 0 || cfg.Alpha >= 1 {
		return nil, fmt.Errorf("shear exponent must be in (0, 1), got %g", cfg.Alpha)
	}
	return &cfg, nil
}
