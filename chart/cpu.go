package chart

import (
	"fmt"
	"path/filepath"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/SanaBenHammouda/PI-With-Monte-Carlo/cpumon"
)

// CPURun is the CPU report of one labeled workload, such as a strategy.
type CPURun struct {
	Label  string
	Report cpumon.Report
}

// CPUTimeline draws CPU utilization over time, one line per run.
func CPUTimeline(runs []CPURun, path string) error {
	p := newPlot("CPU utilization during execution", "time (s)", "CPU (%)")
	p.Add(plotter.NewGrid())

	drawn := 0
	for i, run := range runs {
		if len(run.Report.Samples) == 0 {
			continue
		}
		xys := make(plotter.XYs, len(run.Report.Samples))
		for j, s := range run.Report.Samples {
			xys[j] = plotter.XY{X: s.Offset.Seconds(), Y: s.Percent}
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return fmt.Errorf("%s timeline: %w", run.Label, err)
		}
		line.Color = plotutil.Color(i)
		line.Width = vg.Points(1.5)
		p.Add(line)
		p.Legend.Add(run.Label, line)
		drawn++
	}
	if drawn == 0 {
		return ErrNoData
	}
	p.Y.Min = 0
	p.Y.Max = 100

	return save(p, path, Width, Height)
}

// CPUAverage draws the average and peak CPU utilization of each run as bars.
func CPUAverage(runs []CPURun, path string) error {
	if len(runs) == 0 {
		return ErrNoData
	}

	avg := make(plotter.Values, len(runs))
	peak := make(plotter.Values, len(runs))
	names := make([]string, len(runs))
	for i, run := range runs {
		avg[i] = run.Report.Stats.Avg
		peak[i] = run.Report.Stats.Max
		names[i] = run.Label
	}

	p := newPlot("Average CPU utilization", "", "CPU (%)")
	p.Add(plotter.NewGrid())

	width := vg.Points(20)
	avgBars, err := plotter.NewBarChart(avg, width)
	if err != nil {
		return fmt.Errorf("average bars: %w", err)
	}
	avgBars.Color = plotutil.Color(0)
	avgBars.Offset = -width / 2

	peakBars, err := plotter.NewBarChart(peak, width)
	if err != nil {
		return fmt.Errorf("peak bars: %w", err)
	}
	peakBars.Color = plotutil.Color(1)
	peakBars.Offset = width / 2

	p.Add(avgBars, peakBars)
	p.Legend.Add("average", avgBars)
	p.Legend.Add("peak", peakBars)
	p.NominalX(names...)
	p.Y.Min = 0
	p.Y.Max = 100

	return save(p, path, Width, Height)
}

// RenderCPU writes the CPU timeline and average charts into dir.
func RenderCPU(runs []CPURun, dir string) ([]string, error) {
	timeline := filepath.Join(dir, CPUTimelineFile)
	if err := CPUTimeline(runs, timeline); err != nil {
		return nil, err
	}
	average := filepath.Join(dir, CPUAverageFile)
	if err := CPUAverage(runs, average); err != nil {
		return []string{timeline}, err
	}

	return []string{timeline, average}, nil
}
