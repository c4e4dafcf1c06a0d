package bench

import (
	"bytes"
	"context"
	"errors"
	"math"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SanaBenHammouda/PI-With-Monte-Carlo/types"
)

// fakeRunner reports a base duration divided by the worker count.
type fakeRunner struct {
	base   time.Duration
	calls  int
	failAt int
}

func (f *fakeRunner) Run(_ context.Context, n uint64, workers int, mode types.Mode) (types.Result, error) {
	f.calls++
	if f.failAt > 0 && f.calls == f.failAt {
		return types.Result{}, types.NewWorkerError(mode, 0, errors.New("boom"))
	}

	return types.Result{
		Mode:     mode,
		Workers:  workers,
		Samples:  n,
		Estimate: 3.14,
		Duration: f.base / time.Duration(workers),
	}, nil
}

func TestSummarize(t *testing.T) {
	s := Summarize([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	assert.InDelta(t, 5.0, s.Mean, 1e-12)
	assert.InDelta(t, math.Sqrt(32.0/7.0), s.StdDev, 1e-12)
	assert.InDelta(t, 2.0, s.Min, 0)
	assert.InDelta(t, 9.0, s.Max, 0)

	single := Summarize([]float64{1.5})
	assert.Zero(t, single.StdDev)
	assert.InDelta(t, 1.5, single.Mean, 0)

	assert.Equal(t, Stats{}, Summarize(nil))
}

func TestWorkerCounts(t *testing.T) {
	assert.Equal(t, []int{2, 4, 8}, WorkerCounts(8))
	assert.Equal(t, []int{2, 4, 8}, WorkerCounts(12))
	assert.Equal(t, []int{2}, WorkerCounts(3))
	assert.Empty(t, WorkerCounts(1))
}

func TestCompare(t *testing.T) {
	runner := &fakeRunner{base: 800 * time.Millisecond}
	cfg := Config{Samples: 1000, MaxWorkers: 8, Runs: 3, Modes: []types.Mode{types.ModeThreaded, types.ModeProcess}}

	var last Progress
	report, err := Compare(context.Background(), runner, cfg, func(p Progress) { last = p })
	require.NoError(t, err)

	require.Equal(t, TotalRuns(cfg), runner.calls)
	require.Equal(t, 21, last.Total)
	require.Equal(t, last.Total, last.Done)

	require.Equal(t, types.ModeSequential, report.Baseline.Mode)
	require.InDelta(t, 0.8, report.Baseline.Time.Mean, 1e-9)
	require.InDelta(t, 1.0, report.Baseline.Speedup, 0)
	require.Len(t, report.Parallel, 6)
	require.Equal(t, []types.Mode{types.ModeThreaded, types.ModeProcess}, report.Modes())

	for _, s := range report.Parallel {
		assert.Len(t, s.Times, 3)
		assert.InDelta(t, float64(s.Workers), s.Speedup, 1e-9, "%s x%d", s.Mode, s.Workers)
		assert.InDelta(t, 1.0, s.Efficiency, 1e-9)
		assert.InDelta(t, 3.14, s.Estimate.Mean, 1e-12)
		assert.InDelta(t, 1000/s.Time.Mean, s.Throughput, 1e-6)
	}
	require.Len(t, report.ForMode(types.ModeProcess), 3)
}

func TestCompare_Errors(t *testing.T) {
	_, err := Compare(context.Background(), &fakeRunner{}, Config{Samples: 10, MaxWorkers: 4, Runs: 0}, nil)
	require.ErrorIs(t, err, types.ErrInvalidConfig)

	_, err = Compare(context.Background(), &fakeRunner{}, Config{Samples: 10, MaxWorkers: 4, Runs: 1, Modes: []types.Mode{types.ModeSequential}}, nil)
	require.ErrorIs(t, err, types.ErrInvalidConfig)

	runner := &fakeRunner{base: time.Millisecond, failAt: 2}
	_, err = Compare(context.Background(), runner, Config{Samples: 10, MaxWorkers: 4, Runs: 2, Modes: []types.Mode{types.ModeThreaded}}, nil)
	require.ErrorIs(t, err, types.ErrWorkerFailure)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Compare(ctx, &fakeRunner{base: time.Millisecond}, DefaultConfig(), nil)
	require.ErrorIs(t, err, context.Canceled)
}

func TestReport_SaveLoadTable(t *testing.T) {
	report, err := Compare(context.Background(), &fakeRunner{base: 400 * time.Millisecond},
		Config{Samples: 100, MaxWorkers: 4, Runs: 2, Modes: []types.Mode{types.ModeThreaded}}, nil)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "results", "benchmark_results.json")
	require.NoError(t, report.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, report.Baseline, loaded.Baseline)
	require.Equal(t, report.Parallel, loaded.Parallel)

	var buf bytes.Buffer
	require.NoError(t, loaded.WriteTable(&buf))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	require.Contains(t, lines[0], "SPEEDUP")
	require.Contains(t, lines[1], "sequential")
	require.Contains(t, lines[3], "threaded x4")
	require.Contains(t, lines[3], "4.00x")

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}
