package config

import (
	"time"

	montecarlo "github.com/SanaBenHammouda/PI-With-Monte-Carlo"
	"github.com/SanaBenHammouda/PI-With-Monte-Carlo/bench"
	"github.com/SanaBenHammouda/PI-With-Monte-Carlo/internal/metrics"
)

// applyDefaults applies default values to configuration fields that are not set.
func applyDefaults(cfg *Config) {
	montecarlo.SetDefaults(&cfg.Estimator)

	// Benchmark defaults
	benchDefaults := bench.DefaultConfig()
	if cfg.Benchmark.Samples == 0 {
		cfg.Benchmark.Samples = benchDefaults.Samples
	}
	if cfg.Benchmark.MaxWorkers == 0 {
		cfg.Benchmark.MaxWorkers = benchDefaults.MaxWorkers
	}
	if cfg.Benchmark.Runs == 0 {
		cfg.Benchmark.Runs = benchDefaults.Runs
	}
	if len(cfg.Benchmark.Modes) == 0 {
		cfg.Benchmark.Modes = benchDefaults.Modes
	}

	// Charts defaults
	if cfg.Charts.Dir == "" {
		cfg.Charts.Dir = "results"
	}
	if cfg.Charts.HistogramBins == 0 {
		cfg.Charts.HistogramBins = 20
	}
	if cfg.Charts.ScatterPoints == 0 {
		cfg.Charts.ScatterPoints = 5000
	}

	// CPU defaults
	if cfg.CPU.Interval == 0 {
		cfg.CPU.Interval = 100 * time.Millisecond
	}
	if cfg.CPU.Samples == 0 {
		cfg.CPU.Samples = 50_000_000
	}
	if cfg.CPU.Workers == 0 {
		cfg.CPU.Workers = cfg.Estimator.Workers
	}

	// Metrics defaults
	if cfg.Metrics.Prometheus.Addr == "" {
		cfg.Metrics.Prometheus.Addr = ":9090"
	}
	if cfg.Metrics.Prometheus.Namespace == "" {
		cfg.Metrics.Prometheus.Namespace = metrics.DefaultNamespace
	}

	// Journal defaults
	if cfg.Journal.NATS.URL == "" {
		cfg.Journal.NATS.URL = "nats://127.0.0.1:4222"
	}

	// Logging defaults
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}
}
