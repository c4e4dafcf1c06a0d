package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/SanaBenHammouda/PI-With-Monte-Carlo/source"
	"github.com/SanaBenHammouda/PI-With-Monte-Carlo/types"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	require.NoError(t, validateConfig(cfg))
	require.Equal(t, "results", cfg.Charts.Dir)
	require.Equal(t, 20, cfg.Charts.HistogramBins)
	require.Equal(t, 100*time.Millisecond, cfg.CPU.Interval)
	require.Equal(t, cfg.Estimator.Workers, cfg.CPU.Workers)
	require.Equal(t, ":9090", cfg.Metrics.Prometheus.Addr)
	require.Equal(t, "montepi", cfg.Metrics.Prometheus.Namespace)
	require.Equal(t, uint64(10_000_000), cfg.Benchmark.Samples)
	require.Equal(t, []types.Mode{types.ModeThreaded}, cfg.Benchmark.Modes)
	require.Equal(t, source.NamePCG, cfg.Estimator.Source)
	require.Equal(t, "info", cfg.Logging.Level)
	require.Equal(t, "text", cfg.Logging.Format)
}

func TestParse(t *testing.T) {
	data := []byte(`
estimator:
  workers: 4
  maxWorkers: 64
  seed: 7
  source: lcg
  runTimeout: 30s
benchmark:
  samples: 1000000
  max_workers: 16
  runs: 3
  modes: [threaded, process]
charts:
  dir: out
cpu:
  interval: 250ms
  samples: 1000
metrics:
  prometheus:
    enabled: true
    addr: ":9100"
journal:
  file: out/runs.jsonl
  nats:
    enabled: true
    url: nats://example:4222
    kv:
      bucket: pi-runs
      ttl: 24h
logging:
  level: debug
  format: json
`)

	cfg, err := Parse(data)
	require.NoError(t, err)

	require.Equal(t, 4, cfg.Estimator.Workers)
	require.Equal(t, 64, cfg.Estimator.MaxWorkers)
	require.Equal(t, uint64(7), cfg.Estimator.Seed)
	require.Equal(t, source.NameLCG, cfg.Estimator.Source)
	require.Equal(t, 30*time.Second, cfg.Estimator.RunTimeout)

	require.Equal(t, uint64(1_000_000), cfg.Benchmark.Samples)
	require.Equal(t, 16, cfg.Benchmark.MaxWorkers)
	require.Equal(t, 3, cfg.Benchmark.Runs)
	require.Equal(t, []types.Mode{types.ModeThreaded, types.ModeProcess}, cfg.Benchmark.Modes)

	require.Equal(t, "out", cfg.Charts.Dir)
	require.Equal(t, 250*time.Millisecond, cfg.CPU.Interval)
	require.Equal(t, uint64(1000), cfg.CPU.Samples)
	require.Equal(t, 4, cfg.CPU.Workers)

	require.True(t, cfg.Metrics.Prometheus.Enabled)
	require.Equal(t, ":9100", cfg.Metrics.Prometheus.Addr)

	require.Equal(t, "out/runs.jsonl", cfg.Journal.File)
	require.True(t, cfg.Journal.NATS.Enabled)
	require.Equal(t, "nats://example:4222", cfg.Journal.NATS.URL)
	require.Equal(t, "pi-runs", cfg.Journal.NATS.KV.Bucket)
	require.Equal(t, 24*time.Hour, cfg.Journal.NATS.KV.TTL)

	require.Equal(t, "debug", cfg.Logging.Level)
	require.Equal(t, "json", cfg.Logging.Format)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"malformed", "estimator: [1, 2"},
		{"workers above max", "estimator: {workers: 8, maxWorkers: 4}"},
		{"unknown source", "estimator: {source: mersenne}"},
		{"sequential benchmark mode", "benchmark: {modes: [sequential]}"},
		{"benchmark beyond estimator bound", "estimator: {workers: 2, maxWorkers: 4}\nbenchmark: {max_workers: 8}"},
		{"negative interval", "cpu: {interval: -1s}"},
		{"negative bins", "charts: {histogram_bins: -3}"},
		{"bad level", "logging: {level: loud}"},
		{"bad format", "logging: {format: xml}"},
		{"negative ttl", "journal: {nats: {kv: {ttl: -1h}}}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "montepi.yaml")
	require.NoError(t, os.WriteFile(path, []byte("charts:\n  dir: charts\n"), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "charts", cfg.Charts.Dir)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
