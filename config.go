package autologic

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the configuration for a scheduling run.
//
// The parity divisors control inter-heat balance: the size tolerance
// is ceil(total participants / HeatSizeParity), so a LARGER parity
// value enforces a TIGHTER balance. The same applies to novices.
type Config struct {
	// Name identifies the event (used in logs and export file names).
	Name string `yaml:"name"`

	// Heats is the number of heats to divide participants into.
	Heats int `yaml:"heats"`

	// Stations is the number of worker stations on course. It is also
	// the per-heat captain minimum. Zero disables station assignment.
	Stations int `yaml:"stations"`

	// HeatSizeParity divides the total participant count to produce
	// the allowed heat size deviation.
	HeatSizeParity int `yaml:"heatSizeParity"`

	// NoviceSizeParity divides the total novice count to produce the
	// allowed novice count deviation.
	NoviceSizeParity int `yaml:"noviceSizeParity"`

	// NoviceDenominator is the novice-to-instructor ratio: one
	// instructor is required per NoviceDenominator novices in the
	// complementary heat.
	NoviceDenominator int `yaml:"noviceDenominator"`

	// MaxIterations is the partitioner attempt budget before the run
	// reports exhaustion.
	MaxIterations int `yaml:"maxIterations"`

	// Seed seeds the category shuffle. Zero derives a deterministic
	// seed from the roster's participant IDs, so identical rosters
	// reproduce identical schedules.
	Seed int64 `yaml:"seed"`
}

// DefaultConfig returns a Config with sensible defaults.
//
// Returns:
//   - Config: Configuration with default values
func DefaultConfig() Config {
	return Config{
		Name:              "autologic-event",
		Heats:             3,
		Stations:          5,
		HeatSizeParity:    25,
		NoviceSizeParity:  10,
		NoviceDenominator: 3,
		MaxIterations:     10000,
	}
}

// SetDefaults fills in missing configuration values with defaults.
//
// Parameters:
//   - cfg: Config to apply defaults to (modified in place)
func SetDefaults(cfg *Config) {
	defaults := DefaultConfig()

	if cfg.Name == "" {
		cfg.Name = defaults.Name
	}
	if cfg.Heats == 0 {
		cfg.Heats = defaults.Heats
	}
	if cfg.HeatSizeParity == 0 {
		cfg.HeatSizeParity = defaults.HeatSizeParity
	}
	if cfg.NoviceSizeParity == 0 {
		cfg.NoviceSizeParity = defaults.NoviceSizeParity
	}
	if cfg.NoviceDenominator == 0 {
		cfg.NoviceDenominator = defaults.NoviceDenominator
	}
	if cfg.MaxIterations == 0 {
		cfg.MaxIterations = defaults.MaxIterations
	}
	// Note: Stations of 0 is valid (no station assignment) and Seed of
	// 0 means roster-derived, so neither receives a default.
}

// Validate checks configuration constraints and returns an error for
// invalid values.
//
// Returns:
//   - error: Validation error wrapping ErrInvalidConfig, nil if valid
func (cfg *Config) Validate() error {
	if cfg.Heats < 1 {
		return fmt.Errorf("%w: Heats must be >= 1, got %d", ErrInvalidConfig, cfg.Heats)
	}
	if cfg.Stations < 0 {
		return fmt.Errorf("%w: Stations must be >= 0, got %d", ErrInvalidConfig, cfg.Stations)
	}
	if cfg.HeatSizeParity < 1 {
		return fmt.Errorf("%w: HeatSizeParity must be >= 1, got %d", ErrInvalidConfig, cfg.HeatSizeParity)
	}
	if cfg.NoviceSizeParity < 1 {
		return fmt.Errorf("%w: NoviceSizeParity must be >= 1, got %d", ErrInvalidConfig, cfg.NoviceSizeParity)
	}
	if cfg.NoviceDenominator < 1 {
		return fmt.Errorf("%w: NoviceDenominator must be >= 1, got %d", ErrInvalidConfig, cfg.NoviceDenominator)
	}
	if cfg.MaxIterations < 1 {
		return fmt.Errorf("%w: MaxIterations must be >= 1, got %d", ErrInvalidConfig, cfg.MaxIterations)
	}

	return nil
}

// LoadConfig reads a YAML configuration file, applies defaults, and
// validates the result.
//
// Parameters:
//   - path: Path to the YAML configuration file
//
// Returns:
//   - Config: Parsed and validated configuration
//   - error: File, parse, or validation error
func LoadConfig(path string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	SetDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}
