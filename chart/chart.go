package chart

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

// ErrNoData is returned when there is nothing to plot.
var ErrNoData = errors.New("no data to plot")

// Default chart dimensions.
const (
	Width  = 16 * vg.Centimeter
	Height = 10 * vg.Centimeter
)

// File names written by RenderReport and RenderCPU.
const (
	ExecutionTimeFile = "execution_time.png"
	SpeedupFile       = "speedup.png"
	EfficiencyFile    = "efficiency.png"
	EstimatesFile     = "estimates.png"
	CPUTimelineFile   = "cpu_timeline.png"
	CPUAverageFile    = "cpu_average.png"
)

// save writes p to path, the format following the file extension.
// hplot plots are saved through their embedded *plot.Plot.
func save(p *plot.Plot, path string, w, h vg.Length) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create chart directory: %w", err)
		}
	}
	if err := p.Save(w, h, path); err != nil {
		return fmt.Errorf("save chart %s: %w", path, err)
	}

	return nil
}

func newPlot(title, xLabel, yLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.Legend.Top = true

	return p
}
