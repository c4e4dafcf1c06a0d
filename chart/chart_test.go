package chart

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"

	"github.com/SanaBenHammouda/PI-With-Monte-Carlo/bench"
	"github.com/SanaBenHammouda/PI-With-Monte-Carlo/cpumon"
	"github.com/SanaBenHammouda/PI-With-Monte-Carlo/source"
	"github.com/SanaBenHammouda/PI-With-Monte-Carlo/types"
)

func sampleReport() *bench.Report {
	baseline := bench.Series{
		Mode: types.ModeSequential, Workers: 1, Runs: 3,
		Times:     []float64{1.0, 1.1, 0.9},
		Estimates: []float64{3.1410, 3.1425, 3.1418},
		Speedup:   1, Efficiency: 1,
	}
	baseline.Time = bench.Summarize(baseline.Times)
	baseline.Estimate = bench.Summarize(baseline.Estimates)

	report := &bench.Report{Samples: 1_000_000, Runs: 3, Baseline: baseline}
	for _, mode := range []types.Mode{types.ModeThreaded, types.ModeProcess} {
		for _, w := range []int{2, 4} {
			s := bench.Series{
				Mode: mode, Workers: w, Runs: 3,
				Times:     []float64{1.0 / float64(w), 1.1 / float64(w), 0.9 / float64(w)},
				Estimates: []float64{3.1409, 3.1421, 3.1416},
			}
			s.Time = bench.Summarize(s.Times)
			s.Estimate = bench.Summarize(s.Estimates)
			s.Speedup = baseline.Time.Mean / s.Time.Mean
			s.Efficiency = s.Speedup / float64(w)
			report.Parallel = append(report.Parallel, s)
		}
	}

	return report
}

func requirePNG(t *testing.T, path string) {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Greater(t, len(data), 8)
	require.Equal(t, []byte("\x89PNG"), data[:4])
}

func TestRenderReport(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "charts")

	written, err := RenderReport(sampleReport(), dir)
	require.NoError(t, err)
	require.Len(t, written, 4)
	for _, path := range written {
		requirePNG(t, path)
	}
}

func TestBenchCharts_NoData(t *testing.T) {
	dir := t.TempDir()

	require.ErrorIs(t, ExecutionTime(nil, filepath.Join(dir, "a.png")), ErrNoData)
	require.ErrorIs(t, ExecutionTime(&bench.Report{}, filepath.Join(dir, "a.png")), ErrNoData)
	require.ErrorIs(t, Speedup(&bench.Report{}, filepath.Join(dir, "b.png")), ErrNoData)
	require.ErrorIs(t, Efficiency(nil, filepath.Join(dir, "c.png")), ErrNoData)
	require.ErrorIs(t, EstimateHistogram(&bench.Report{}, 10, filepath.Join(dir, "d.png")), ErrNoData)
}

func TestEstimateHistogram_SingleValue(t *testing.T) {
	report := &bench.Report{Baseline: bench.Series{Estimates: []float64{3.0}}}
	path := filepath.Join(t.TempDir(), "hist.png")

	require.NoError(t, EstimateHistogram(report, 5, path))
	requirePNG(t, path)
}

func TestRenderCPU(t *testing.T) {
	mk := func(pcts ...float64) cpumon.Report {
		var samples []cpumon.Sample
		for i, p := range pcts {
			samples = append(samples, cpumon.Sample{Offset: time.Duration(i+1) * 100 * time.Millisecond, Percent: p})
		}
		return cpumon.Report{Samples: samples, Stats: cpumon.Summarize(samples)}
	}
	runs := []CPURun{
		{Label: "sequential", Report: mk(12, 14, 13)},
		{Label: "threaded", Report: mk(80, 95, 90)},
		{Label: "process", Report: mk(70, 85, 88)},
	}

	written, err := RenderCPU(runs, t.TempDir())
	require.NoError(t, err)
	require.Len(t, written, 2)
	for _, path := range written {
		requirePNG(t, path)
	}
}

func TestCPUCharts_NoData(t *testing.T) {
	dir := t.TempDir()
	require.ErrorIs(t, CPUTimeline(nil, filepath.Join(dir, "t.png")), ErrNoData)
	require.ErrorIs(t, CPUTimeline([]CPURun{{Label: "empty"}}, filepath.Join(dir, "t.png")), ErrNoData)
	require.ErrorIs(t, CPUAverage(nil, filepath.Join(dir, "a.png")), ErrNoData)
}

func TestPoints(t *testing.T) {
	path := filepath.Join(t.TempDir(), "points.png")

	require.NoError(t, Points(source.Draw(source.NewPCG(7), 2000), path))
	requirePNG(t, path)

	require.ErrorIs(t, Points(nil, path), ErrNoData)
}

func TestPoints_AllInside(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inside.png")
	require.NoError(t, Points([]types.Point{{X: 0.1, Y: 0.1}, {X: 0.2, Y: 0.3}}, path))
	requirePNG(t, path)
}

func TestWritePointsPNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePointsPNG(&buf, source.Draw(source.NewLCG(1), 300), 5*vg.Centimeter))
	require.Equal(t, []byte("\x89PNG"), buf.Bytes()[:4])

	require.ErrorIs(t, WritePointsPNG(&buf, nil, PointsSize), ErrNoData)
}
