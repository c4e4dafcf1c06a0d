package bench

import (
	"context"
	"fmt"
	"time"

	"github.com/SanaBenHammouda/PI-With-Monte-Carlo/types"
)

// Runner performs one estimator invocation. *montecarlo.Estimator satisfies it.
type Runner interface {
	Run(ctx context.Context, n uint64, workers int, mode types.Mode) (types.Result, error)
}

// Config controls a comparison.
type Config struct {
	// Samples is the sample count of every run.
	Samples uint64 `yaml:"samples"`

	// MaxWorkers bounds the tested worker counts (2, 4, 8, ... <= MaxWorkers).
	MaxWorkers int `yaml:"max_workers"`

	// Runs is the number of repetitions per configuration.
	Runs int `yaml:"runs"`

	// Modes are the parallel modes compared against the sequential baseline.
	Modes []types.Mode `yaml:"modes"`
}

// DefaultConfig mirrors the classic comparison: 10M samples, up to 8 workers, 10 runs.
func DefaultConfig() Config {
	return Config{
		Samples:    10_000_000,
		MaxWorkers: 8,
		Runs:       10,
		Modes:      []types.Mode{types.ModeThreaded},
	}
}

// Validate checks the comparison settings.
func (c Config) Validate() error {
	if c.Samples == 0 {
		return fmt.Errorf("%w: samples must be >= 1", types.ErrInvalidConfig)
	}
	if c.Runs < 1 {
		return fmt.Errorf("%w: runs must be >= 1, got %d", types.ErrInvalidConfig, c.Runs)
	}
	if c.MaxWorkers < 2 {
		return fmt.Errorf("%w: max workers must be >= 2, got %d", types.ErrInvalidConfig, c.MaxWorkers)
	}
	for _, m := range c.Modes {
		if !m.IsParallel() {
			return fmt.Errorf("%w: %q is not a parallel mode", types.ErrInvalidConfig, m)
		}
	}

	return nil
}

// Progress describes a finished run.
type Progress struct {
	Done    int
	Total   int
	Mode    types.Mode
	Workers int
	Run     int
	Elapsed time.Duration
}

// ProgressFunc receives one Progress per finished run.
type ProgressFunc func(Progress)

// WorkerCounts returns the powers of two from 2 up to max.
func WorkerCounts(maxWorkers int) []int {
	var counts []int
	for w := 2; w <= maxWorkers; w *= 2 {
		counts = append(counts, w)
	}

	return counts
}

// TotalRuns is the number of invocations Compare performs for cfg.
func TotalRuns(cfg Config) int {
	return cfg.Runs * (1 + len(cfg.Modes)*len(WorkerCounts(cfg.MaxWorkers)))
}

// Compare runs the baseline and every parallel configuration.
//
// Parameters:
//   - ctx: Cancels the comparison between runs
//   - runner: Estimator performing the runs
//   - cfg: Comparison settings
//   - progress: Optional callback invoked after every run
//
// Returns:
//   - *Report: Summaries, speedups and efficiencies
//   - error: Invalid settings or the first failed run
func Compare(ctx context.Context, runner Runner, cfg Config, progress ProgressFunc) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if progress == nil {
		progress = func(Progress) {}
	}

	total := TotalRuns(cfg)
	done := 0
	series := func(mode types.Mode, workers int) (Series, error) {
		s := Series{Mode: mode, Workers: workers, Runs: cfg.Runs}
		for run := range cfg.Runs {
			if err := ctx.Err(); err != nil {
				return s, err
			}
			r, err := runner.Run(ctx, cfg.Samples, workers, mode)
			if err != nil {
				return s, fmt.Errorf("%s with %d workers, run %d: %w", mode, workers, run+1, err)
			}
			s.Times = append(s.Times, r.Duration.Seconds())
			s.Estimates = append(s.Estimates, r.Estimate)

			done++
			progress(Progress{Done: done, Total: total, Mode: mode, Workers: workers, Run: run + 1, Elapsed: r.Duration})
		}
		s.Time = Summarize(s.Times)
		s.Estimate = Summarize(s.Estimates)
		if s.Time.Mean > 0 {
			s.Throughput = float64(cfg.Samples) / s.Time.Mean
		}

		return s, nil
	}

	report := &Report{Samples: cfg.Samples, Runs: cfg.Runs, CreatedAt: time.Now().UTC()}

	baseline, err := series(types.ModeSequential, 1)
	if err != nil {
		return nil, err
	}
	baseline.Speedup = 1
	baseline.Efficiency = 1
	report.Baseline = baseline

	for _, mode := range cfg.Modes {
		for _, workers := range WorkerCounts(cfg.MaxWorkers) {
			s, err := series(mode, workers)
			if err != nil {
				return nil, err
			}
			if s.Time.Mean > 0 {
				s.Speedup = baseline.Time.Mean / s.Time.Mean
			}
			s.Efficiency = s.Speedup / float64(workers)
			report.Parallel = append(report.Parallel, s)
		}
	}

	return report, nil
}
