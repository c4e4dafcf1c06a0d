package montecarlo

import (
	"fmt"
	"runtime"
	"time"

	"github.com/SanaBenHammouda/PI-With-Monte-Carlo/source"
)

// ProcessConfig configures worker processes for ModeProcess.
type ProcessConfig struct {
	// Binary is the executable started for each worker.
	// Empty means the current executable, which must call strategy.RunWorkerMain.
	Binary string `yaml:"binary"`

	// Args are extra arguments passed to each worker process.
	Args []string `yaml:"args"`

	// Env holds extra KEY=VALUE pairs added to each worker's environment.
	Env []string `yaml:"env"`
}

// Config holds estimator configuration.
type Config struct {
	// Workers is the concurrency degree used by callers that do not pass one
	// explicitly (the CLI and the benchmark harness).
	// Default: runtime.NumCPU().
	Workers int `yaml:"workers"`

	// MaxWorkers is the upper bound accepted for a concurrency degree.
	// Requests above it fail with ErrInvalidArgument.
	// Default: 1024.
	MaxWorkers int `yaml:"maxWorkers"`

	// Seed is the base seed from which every worker seed is derived.
	// Zero draws a fresh random base seed for each invocation; any other value
	// makes invocations with the same sample and worker counts reproducible.
	// The "lcg" source ignores it: its worker states are fixed by worker ID,
	// so Result.Seed only identifies the partition of such runs.
	Seed uint64 `yaml:"seed"`

	// Source names the point source built for each worker ("pcg" or "lcg").
	// Default: "pcg".
	Source string `yaml:"source"`

	// RunTimeout bounds a single invocation. Zero means no timeout.
	RunTimeout time.Duration `yaml:"runTimeout"`

	// Process controls worker processes.
	Process ProcessConfig `yaml:"process"`
}

// DefaultMaxWorkers is the default upper bound on the concurrency degree.
const DefaultMaxWorkers = 1024

// DefaultConfig returns a Config with sensible defaults.
//
// Returns:
//   - Config: Configuration with default values
func DefaultConfig() Config {
	return Config{
		Workers:    runtime.NumCPU(),
		MaxWorkers: DefaultMaxWorkers,
		Source:     source.NamePCG,
	}
}

// SetDefaults fills in missing configuration values with defaults.
//
// Parameters:
//   - cfg: Config to apply defaults to (modified in place)
func SetDefaults(cfg *Config) {
	defaults := DefaultConfig()

	if cfg.MaxWorkers == 0 {
		cfg.MaxWorkers = defaults.MaxWorkers
	}
	if cfg.Workers == 0 {
		cfg.Workers = min(defaults.Workers, cfg.MaxWorkers)
	}
	if cfg.Source == "" {
		cfg.Source = defaults.Source
	}
}

// Validate checks configuration constraints.
//
// Rules:
//   - MaxWorkers >= 1
//   - 1 <= Workers <= MaxWorkers
//   - Source names a registered seeded source
//   - RunTimeout >= 0
//
// Returns:
//   - error: Wraps ErrInvalidConfig, nil if valid
func (cfg *Config) Validate() error {
	if cfg.MaxWorkers < 1 {
		return fmt.Errorf("%w: MaxWorkers must be >= 1, got %d", ErrInvalidConfig, cfg.MaxWorkers)
	}

	if cfg.Workers < 1 || cfg.Workers > cfg.MaxWorkers {
		return fmt.Errorf("%w: Workers (%d) must be in [1, MaxWorkers=%d]", ErrInvalidConfig, cfg.Workers, cfg.MaxWorkers)
	}

	if _, err := source.ByName(cfg.Source); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if cfg.RunTimeout < 0 {
		return fmt.Errorf("%w: RunTimeout must be >= 0, got %v", ErrInvalidConfig, cfg.RunTimeout)
	}

	return nil
}

// ValidateWithWarnings logs warnings for legal but questionable values.
//
// NewEstimator calls it after Validate.
//
// Parameters:
//   - logger: Logger instance for warning output
func (cfg *Config) ValidateWithWarnings(logger Logger) {
	if cpus := runtime.NumCPU(); cfg.Workers > 4*cpus {
		logger.Warn(
			"Workers far exceeds available CPUs, parallel runs will be slower than sequential",
			"workers", cfg.Workers,
			"cpus", cpus,
		)
	}

	if cfg.Source == source.NameLCG {
		logger.Warn(
			"LCG point source selected, estimates are reproducible across languages but statistically weak",
			"source", cfg.Source,
		)
	}

	if cfg.Process.Binary == "" && len(cfg.Process.Args) > 0 {
		logger.Warn("Process.Args set without Process.Binary, arguments go to the current executable",
			"args", cfg.Process.Args)
	}
}

// TestConfig returns a small, reproducible configuration for tests.
//
// Example:
//
//	cfg := montecarlo.TestConfig()
//	est, err := montecarlo.NewEstimator(&cfg)
func TestConfig() Config {
	cfg := DefaultConfig()
	cfg.Workers = 4
	cfg.Seed = 42

	return cfg
}
