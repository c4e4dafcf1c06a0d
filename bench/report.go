package bench

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/SanaBenHammouda/PI-With-Monte-Carlo/types"
)

// DefaultReportPath is where the CLI saves benchmark reports.
const DefaultReportPath = "results/benchmark_results.json"

// Series is the outcome of one configuration (mode and worker count) repeated Runs times.
type Series struct {
	Mode    types.Mode `json:"mode"`
	Workers int        `json:"workers"`
	Runs    int        `json:"runs"`

	// Times are wall times in seconds, one per run.
	Times []float64 `json:"times"`

	// Estimates are the estimates of pi, one per run.
	Estimates []float64 `json:"estimates"`

	Time     Stats `json:"time"`
	Estimate Stats `json:"estimate"`

	// Speedup is baseline mean time / this series' mean time. The baseline has 1.
	Speedup float64 `json:"speedup"`

	// Efficiency is Speedup / Workers.
	Efficiency float64 `json:"efficiency"`

	// Throughput is samples per second at the mean time.
	Throughput float64 `json:"throughput"`
}

// Report is a complete comparison.
type Report struct {
	Samples   uint64    `json:"samples"`
	Runs      int       `json:"runs"`
	CreatedAt time.Time `json:"created_at"`
	Baseline  Series    `json:"baseline"`
	Parallel  []Series  `json:"parallel"`
}

// ForMode returns the parallel series of mode in worker-count order.
func (r *Report) ForMode(mode types.Mode) []Series {
	var out []Series
	for _, s := range r.Parallel {
		if s.Mode == mode {
			out = append(out, s)
		}
	}

	return out
}

// Modes returns the parallel modes present in the report, in first-seen order.
func (r *Report) Modes() []types.Mode {
	seen := make(map[types.Mode]bool)
	var modes []types.Mode
	for _, s := range r.Parallel {
		if !seen[s.Mode] {
			seen[s.Mode] = true
			modes = append(modes, s.Mode)
		}
	}

	return modes
}

// Save writes the report as indented JSON, creating parent directories.
func (r *Report) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create report directory: %w", err)
	}

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // report is not secret
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}

// Load reads a report saved by Save.
func Load(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read report: %w", err)
	}

	var r Report
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("decode report %s: %w", path, err)
	}

	return &r, nil
}

// WriteTable prints the summary table: configuration, mean time, speedup, efficiency.
func (r *Report) WriteTable(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "CONFIGURATION\tTIME (s)\tSTD (s)\tSPEEDUP\tEFFICIENCY\tESTIMATE\n")
	writeRow(tw, "sequential", r.Baseline)
	for _, s := range r.Parallel {
		writeRow(tw, fmt.Sprintf("%s x%d", s.Mode, s.Workers), s)
	}

	return tw.Flush()
}

func writeRow(w io.Writer, label string, s Series) {
	fmt.Fprintf(w, "%s\t%.4f\t%.4f\t%.2fx\t%.1f%%\t%.6f\n",
		label, s.Time.Mean, s.Time.StdDev, s.Speedup, s.Efficiency*100, s.Estimate.Mean)
}
