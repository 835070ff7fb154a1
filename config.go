package sixpack

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Default panel settings: a 3x2 grid of gauges sized for a small trainer
// with Cessna-172-ish speed limits.
const (
	DefaultWidth    = 960
	DefaultHeight   = 640
	DefaultColumns  = 3
	DefaultCellSize = 300.0
	DefaultInterval = 4.0
)

// Config enumerates every recognized panel option with its default.
// Unset numeric fields in a loaded file fall back to the defaults during
// Load; Validate rejects inconsistent values at construction time.
type Config struct {
	Title    string  `yaml:"title"`
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	Columns  int     `yaml:"columns"`
	CellSize float64 `yaml:"cell_size"`
	Limits   Limits  `yaml:"limits"`
	Demo     Demo    `yaml:"demo"`
}

// Demo configures the randomized demo driver started by Panel.StartDemo.
type Demo struct {
	// Interval is the base number of seconds between randomized target
	// updates; each parameter is staggered off this base.
	Interval float64 `yaml:"interval_sec"`
}

// DefaultConfig returns the full default configuration.
func DefaultConfig() *Config {
	return &Config{
		Title:    "sixpack",
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		Columns:  DefaultColumns,
		CellSize: DefaultCellSize,
		Limits: Limits{
			StallSpeed:       48,
			RotationSpeed:    55,
			ManeuverSpeed:    129,
			NeverExceedSpeed: 163,
			MaxRPM:           2700,
		},
		Demo: Demo{Interval: DefaultInterval},
	}
}

// Load parses a YAML config over the defaults and validates the result.
func Load(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("sixpack: parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile reads and parses a YAML config file.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Load(data)
}

// Validate reports the first inconsistency in the configuration.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("sixpack: config: window size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.Columns <= 0 {
		return fmt.Errorf("sixpack: config: columns must be positive, got %d", c.Columns)
	}
	if c.CellSize <= 0 {
		return fmt.Errorf("sixpack: config: cell_size must be positive, got %g", c.CellSize)
	}
	l := c.Limits
	if l.StallSpeed <= 0 {
		return fmt.Errorf("sixpack: config: stall_speed must be positive, got %g", l.StallSpeed)
	}
	if l.RotationSpeed <= l.StallSpeed {
		return fmt.Errorf("sixpack: config: rotation_speed %g must exceed stall_speed %g", l.RotationSpeed, l.StallSpeed)
	}
	if l.ManeuverSpeed <= l.RotationSpeed {
		return fmt.Errorf("sixpack: config: maneuver_speed %g must exceed rotation_speed %g", l.ManeuverSpeed, l.RotationSpeed)
	}
	if l.NeverExceedSpeed <= l.ManeuverSpeed {
		return fmt.Errorf("sixpack: config: never_exceed_speed %g must exceed maneuver_speed %g", l.NeverExceedSpeed, l.ManeuverSpeed)
	}
	if l.MaxRPM <= 0 {
		return fmt.Errorf("sixpack: config: max_rpm must be positive, got %g", l.MaxRPM)
	}
	if c.Demo.Interval <= 0 {
		return fmt.Errorf("sixpack: config: demo interval_sec must be positive, got %g", c.Demo.Interval)
	}
	return nil
}
