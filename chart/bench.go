package chart

import (
	"fmt"
	"math"
	"path/filepath"
	"strconv"

	"go-hep.org/x/hep/hbook"
	"go-hep.org/x/hep/hplot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/SanaBenHammouda/PI-With-Monte-Carlo/bench"
)

// ExecutionTime draws mean wall time per configuration as bars, one group
// per worker count and one bar color per mode. The sequential baseline is
// the first group.
func ExecutionTime(report *bench.Report, path string) error {
	if report == nil || len(report.Baseline.Times) == 0 {
		return ErrNoData
	}

	p := newPlot(fmt.Sprintf("Execution time (%d samples, %d runs)", report.Samples, report.Runs),
		"configuration", "mean time (s)")
	p.Add(plotter.NewGrid())

	modes := report.Modes()
	width := vg.Points(14)

	baseline, err := plotter.NewBarChart(plotter.Values{report.Baseline.Time.Mean}, width)
	if err != nil {
		return fmt.Errorf("baseline bars: %w", err)
	}
	baseline.Color = plotutil.Color(0)
	p.Add(baseline)
	p.Legend.Add("sequential", baseline)

	names := []string{"seq"}
	counts := bench.WorkerCounts(maxWorkers(report))
	for _, w := range counts {
		names = append(names, strconv.Itoa(w))
	}

	for i, mode := range modes {
		values := make(plotter.Values, len(counts)+1)
		for _, s := range report.ForMode(mode) {
			if idx := indexOf(counts, s.Workers); idx >= 0 {
				values[idx+1] = s.Time.Mean
			}
		}
		bars, err := plotter.NewBarChart(values, width)
		if err != nil {
			return fmt.Errorf("%s bars: %w", mode, err)
		}
		bars.Color = plotutil.Color(i + 1)
		bars.Offset = vg.Length(i+1) * width
		p.Add(bars)
		p.Legend.Add(string(mode), bars)
	}
	p.NominalX(names...)

	return save(p, path, Width, Height)
}

// Speedup draws measured speedup per mode against the ideal linear speedup.
func Speedup(report *bench.Report, path string) error {
	return perWorkerLines(report, path, "Speedup vs sequential", "speedup",
		func(s bench.Series) float64 { return s.Speedup },
		func(w int) float64 { return float64(w) }, "ideal")
}

// Efficiency draws parallel efficiency (speedup / workers) per mode against
// the ideal efficiency of 1.
func Efficiency(report *bench.Report, path string) error {
	return perWorkerLines(report, path, "Parallel efficiency", "efficiency",
		func(s bench.Series) float64 { return s.Efficiency },
		func(int) float64 { return 1 }, "ideal")
}

func perWorkerLines(report *bench.Report, path, title, yLabel string,
	value func(bench.Series) float64, ideal func(int) float64, idealLabel string,
) error {
	if report == nil || len(report.Parallel) == 0 {
		return ErrNoData
	}

	p := newPlot(title, "workers", yLabel)
	p.Add(plotter.NewGrid())

	counts := bench.WorkerCounts(maxWorkers(report))
	idealXYs := make(plotter.XYs, 0, len(counts)+1)
	idealXYs = append(idealXYs, plotter.XY{X: 1, Y: ideal(1)})
	for _, w := range counts {
		idealXYs = append(idealXYs, plotter.XY{X: float64(w), Y: ideal(w)})
	}
	idealLine, err := plotter.NewLine(idealXYs)
	if err != nil {
		return fmt.Errorf("ideal line: %w", err)
	}
	idealLine.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}
	idealLine.Color = plotutil.Color(0)
	p.Add(idealLine)
	p.Legend.Add(idealLabel, idealLine)

	for i, mode := range report.Modes() {
		series := report.ForMode(mode)
		xys := make(plotter.XYs, 0, len(series))
		for _, s := range series {
			xys = append(xys, plotter.XY{X: float64(s.Workers), Y: value(s)})
		}
		line, points, err := plotter.NewLinePoints(xys)
		if err != nil {
			return fmt.Errorf("%s line: %w", mode, err)
		}
		line.Color = plotutil.Color(i + 1)
		points.Color = plotutil.Color(i + 1)
		points.Shape = plotutil.Shape(i)
		p.Add(line, points)
		p.Legend.Add(string(mode), line, points)
	}
	p.Y.Min = 0

	return save(p, path, Width, Height)
}

// EstimateHistogram bins every estimate of the report and marks the true
// value of pi.
//
// Parameters:
//   - report: Benchmark report whose baseline and parallel estimates are binned
//   - bins: Number of histogram bins (20 if <= 0)
//   - path: Output PNG file
func EstimateHistogram(report *bench.Report, bins int, path string) error {
	if report == nil {
		return ErrNoData
	}
	estimates := append([]float64(nil), report.Baseline.Estimates...)
	for _, s := range report.Parallel {
		estimates = append(estimates, s.Estimates...)
	}
	if len(estimates) == 0 {
		return ErrNoData
	}
	if bins <= 0 {
		bins = 20
	}

	lo, hi := math.Pi, math.Pi
	for _, e := range estimates {
		lo = min(lo, e)
		hi = max(hi, e)
	}
	pad := max((hi-lo)*0.05, 1e-4)
	h := hbook.NewH1D(bins, lo-pad, hi+pad)
	for _, e := range estimates {
		h.Fill(e, 1)
	}

	p := hplot.New()
	p.Title.Text = fmt.Sprintf("Estimates of pi (%d runs)", len(estimates))
	p.X.Label.Text = "estimate"
	p.Y.Label.Text = "runs"

	hh := hplot.NewH1D(h)
	hh.LineStyle.Color = plotutil.Color(1)

	piLine, err := plotter.NewLine(plotter.XYs{{X: math.Pi, Y: 0}, {X: math.Pi, Y: float64(len(estimates))}})
	if err != nil {
		return fmt.Errorf("pi marker: %w", err)
	}
	piLine.Color = plotutil.Color(0)
	piLine.Dashes = []vg.Length{vg.Points(2), vg.Points(2)}

	p.Add(hh, piLine, hplot.NewGrid())
	p.Legend.Add("pi", piLine)

	return save(p.Plot, path, Width, Height)
}

// RenderReport writes the execution time, speedup, efficiency and estimate
// charts of report into dir and returns the written paths.
func RenderReport(report *bench.Report, dir string) ([]string, error) {
	steps := []struct {
		file string
		draw func(string) error
	}{
		{ExecutionTimeFile, func(p string) error { return ExecutionTime(report, p) }},
		{SpeedupFile, func(p string) error { return Speedup(report, p) }},
		{EfficiencyFile, func(p string) error { return Efficiency(report, p) }},
		{EstimatesFile, func(p string) error { return EstimateHistogram(report, 0, p) }},
	}

	var written []string
	for _, step := range steps {
		path := filepath.Join(dir, step.file)
		if err := step.draw(path); err != nil {
			return written, err
		}
		written = append(written, path)
	}

	return written, nil
}

func maxWorkers(report *bench.Report) int {
	m := 1
	for _, s := range report.Parallel {
		m = max(m, s.Workers)
	}

	return m
}

func indexOf(xs []int, x int) int {
	for i, v := range xs {
		if v == x {
			return i
		}
	}

	return -1
}
