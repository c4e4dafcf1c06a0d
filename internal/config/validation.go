package config

import (
	"errors"
	"fmt"

	"github.com/SanaBenHammouda/PI-With-Monte-Carlo/internal/logging"
)

// validateConfig validates the configuration for logical consistency.
func validateConfig(cfg *Config) error {
	if err := cfg.Estimator.Validate(); err != nil {
		return fmt.Errorf("estimator: %w", err)
	}

	if err := cfg.Benchmark.Validate(); err != nil {
		return fmt.Errorf("benchmark: %w", err)
	}
	if cfg.Benchmark.MaxWorkers > cfg.Estimator.MaxWorkers {
		return fmt.Errorf("benchmark max workers (%d) exceeds estimator max workers (%d)",
			cfg.Benchmark.MaxWorkers, cfg.Estimator.MaxWorkers)
	}

	// Validate charts
	if cfg.Charts.HistogramBins < 1 {
		return errors.New("histogram bins must be positive")
	}
	if cfg.Charts.ScatterPoints < 1 {
		return errors.New("scatter points must be positive")
	}

	// Validate cpu
	if cfg.CPU.Interval <= 0 {
		return errors.New("cpu sampling interval must be positive")
	}
	if cfg.CPU.Workers < 1 || cfg.CPU.Workers > cfg.Estimator.MaxWorkers {
		return fmt.Errorf("cpu workers (%d) must be in [1, %d]", cfg.CPU.Workers, cfg.Estimator.MaxWorkers)
	}

	// Validate metrics
	if cfg.Metrics.Prometheus.Enabled && cfg.Metrics.Prometheus.Addr == "" {
		return errors.New("prometheus address must be set when metrics are enabled")
	}

	// Validate journal
	if cfg.Journal.NATS.Enabled && cfg.Journal.NATS.URL == "" {
		return errors.New("nats url must be set when the kv journal is enabled")
	}
	if cfg.Journal.NATS.KV.TTL < 0 {
		return errors.New("kv journal ttl cannot be negative")
	}

	// Validate logging
	if _, err := logging.ParseLevel(cfg.Logging.Level); err != nil {
		return err
	}
	if cfg.Logging.Format != "text" && cfg.Logging.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be one of: text, json)", cfg.Logging.Format)
	}

	return nil
}
