// Package config loads the montepi command configuration.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	montecarlo "github.com/SanaBenHammouda/PI-With-Monte-Carlo"
	"github.com/SanaBenHammouda/PI-With-Monte-Carlo/bench"
	"github.com/SanaBenHammouda/PI-With-Monte-Carlo/journal"
)

// Config is the root configuration structure.
type Config struct {
	Estimator montecarlo.Config `yaml:"estimator"`
	Benchmark bench.Config      `yaml:"benchmark"`
	Charts    ChartsConfig      `yaml:"charts"`
	CPU       CPUConfig         `yaml:"cpu"`
	Metrics   MetricsConfig     `yaml:"metrics"`
	Journal   JournalConfig     `yaml:"journal"`
	Logging   LoggingConfig     `yaml:"logging"`
}

// ChartsConfig configures chart output.
type ChartsConfig struct {
	Dir           string `yaml:"dir"`            // "results"
	HistogramBins int    `yaml:"histogram_bins"` // 20
	ScatterPoints int    `yaml:"scatter_points"` // 5000
}

// CPUConfig configures the cpu command.
type CPUConfig struct {
	Interval time.Duration `yaml:"interval"` // e.g., "100ms"
	Samples  uint64        `yaml:"samples"`  // samples per strategy run
	Workers  int           `yaml:"workers"`  // 0 = estimator workers
}

// MetricsConfig configures metrics collection.
type MetricsConfig struct {
	Prometheus PrometheusConfig `yaml:"prometheus"`
}

// PrometheusConfig configures Prometheus metrics.
type PrometheusConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Addr      string `yaml:"addr"`      // ":9090"
	Namespace string `yaml:"namespace"` // "montepi"
}

// JournalConfig configures run journaling. Both backends may be enabled.
type JournalConfig struct {
	File string     `yaml:"file"` // empty disables the file journal
	NATS NATSConfig `yaml:"nats"`
}

// NATSConfig configures the JetStream KV journal.
type NATSConfig struct {
	Enabled bool             `yaml:"enabled"`
	URL     string           `yaml:"url"` // "nats://127.0.0.1:4222"
	KV      journal.KVConfig `yaml:"kv"`
}

// LoggingConfig configures the logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	var cfg Config
	applyDefaults(&cfg)

	return &cfg
}

// LoadConfig loads configuration from a YAML file.
//
// Parameters:
//   - path: Path to the YAML configuration file
//
// Returns:
//   - *Config: Loaded configuration with defaults applied
//   - error: Error if file cannot be read or parsed
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML configuration, applies defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
