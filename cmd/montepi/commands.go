package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"sort"
	"time"

	"github.com/cheggaaa/pb/v3"

	"github.com/SanaBenHammouda/PI-With-Monte-Carlo/bench"
	"github.com/SanaBenHammouda/PI-With-Monte-Carlo/chart"
	"github.com/SanaBenHammouda/PI-With-Monte-Carlo/cpumon"
	"github.com/SanaBenHammouda/PI-With-Monte-Carlo/racedemo"
	"github.com/SanaBenHammouda/PI-With-Monte-Carlo/source"
	"github.com/SanaBenHammouda/PI-With-Monte-Carlo/types"
)

func (a *app) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.stderr)

	return fs
}

func runEstimate(ctx context.Context, a *app, args []string) error {
	fs := a.flagSet("estimate")
	modeName := fs.String("mode", string(types.ModeThreaded), "Strategy: sequential, threaded or process")
	samples := fs.Uint64("samples", 1_000_000, "Number of points to draw")
	workers := fs.Int("workers", a.cfg.Estimator.Workers, "Concurrency degree (ignored for sequential)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	mode, err := types.ParseMode(*modeName)
	if err != nil {
		return err
	}
	if mode == types.ModeSequential {
		*workers = 1
	}

	result, err := a.estimator.Run(ctx, *samples, *workers, mode)
	if err != nil {
		return err
	}

	a.printf("mode:        %s\n", result.Mode)
	a.printf("workers:     %d\n", result.Workers)
	a.printf("samples:     %d\n", result.Samples)
	a.printf("estimate:    %.6f\n", result.Estimate)
	a.printf("error:       %.6f\n", math.Abs(result.Estimate-math.Pi))
	a.printf("time:        %s\n", result.Duration.Round(time.Microsecond))
	a.printf("throughput:  %.0f samples/s\n", result.Throughput())

	return nil
}

func runCompare(ctx context.Context, a *app, args []string) error {
	cfg := a.cfg.Benchmark
	fs := a.flagSet("compare")
	fs.Uint64Var(&cfg.Samples, "samples", cfg.Samples, "Samples per run")
	fs.IntVar(&cfg.MaxWorkers, "max-workers", cfg.MaxWorkers, "Largest worker count tested")
	fs.IntVar(&cfg.Runs, "runs", cfg.Runs, "Runs per configuration")
	output := fs.String("output", filepath.Join(a.cfg.Charts.Dir, filepath.Base(bench.DefaultReportPath)), "Report path")
	noCharts := fs.Bool("no-charts", false, "Skip chart rendering")
	quiet := fs.Bool("quiet", false, "Hide the progress bar")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	bar := pb.New(bench.TotalRuns(cfg)).SetWriter(a.stderr)
	if *quiet {
		bar.SetWriter(io.Discard)
	}
	bar.Start()
	report, err := bench.Compare(ctx, a.estimator, cfg, func(bench.Progress) { bar.Increment() })
	bar.Finish()
	if err != nil {
		return err
	}

	if err := report.Save(*output); err != nil {
		return err
	}
	a.printf("report saved to %s\n\n", *output)
	if err := report.WriteTable(a.stdout); err != nil {
		return err
	}

	if *noCharts {
		return nil
	}

	return a.renderReport(report)
}

func runChart(_ context.Context, a *app, args []string) error {
	fs := a.flagSet("chart")
	input := fs.String("input", filepath.Join(a.cfg.Charts.Dir, filepath.Base(bench.DefaultReportPath)), "Saved report")
	if err := fs.Parse(args); err != nil {
		return err
	}

	report, err := bench.Load(*input)
	if err != nil {
		return err
	}

	return a.renderReport(report)
}

func (a *app) renderReport(report *bench.Report) error {
	written, err := chart.RenderReport(report, a.cfg.Charts.Dir)
	for _, path := range written {
		a.printf("chart written to %s\n", path)
	}

	return err
}

func runCPU(ctx context.Context, a *app, args []string) error {
	fs := a.flagSet("cpu")
	samples := fs.Uint64("samples", a.cfg.CPU.Samples, "Samples per strategy")
	workers := fs.Int("workers", a.cfg.CPU.Workers, "Concurrency degree of the parallel strategies")
	interval := fs.Duration("interval", a.cfg.CPU.Interval, "Sampling interval")
	if err := fs.Parse(args); err != nil {
		return err
	}

	runs := make([]chart.CPURun, 0, len(types.Modes()))
	for _, mode := range types.Modes() {
		w := *workers
		if mode == types.ModeSequential {
			w = 1
		}

		report, elapsed, err := cpumon.Measure(ctx, *interval, func(ctx context.Context) error {
			_, err := a.estimator.Run(ctx, *samples, w, mode)
			return err
		}, cpumon.WithLogger(a.logger))
		if err != nil {
			return fmt.Errorf("%s: %w", mode, err)
		}

		a.printf("%-10s time=%s avg=%.1f%% max=%.1f%% min=%.1f%% samples=%d\n",
			mode, elapsed.Round(time.Millisecond), report.Stats.Avg, report.Stats.Max, report.Stats.Min, report.Stats.Count)
		runs = append(runs, chart.CPURun{Label: string(mode), Report: report})
	}

	written, err := chart.RenderCPU(runs, a.cfg.Charts.Dir)
	for _, path := range written {
		a.printf("chart written to %s\n", path)
	}

	return err
}

func runScatter(_ context.Context, a *app, args []string) error {
	fs := a.flagSet("scatter")
	n := fs.Int("points", a.cfg.Charts.ScatterPoints, "Number of points to draw")
	seed := fs.Uint64("seed", a.cfg.Estimator.Seed, "Generator seed (0 picks one)")
	output := fs.String("output", filepath.Join(a.cfg.Charts.Dir, "points.png"), "Output file, - for stdout")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *n < 1 {
		return errors.New("points must be positive")
	}
	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	points := source.Draw(source.NewPCG(*seed), *n)
	if *output == "-" {
		return chart.WritePointsPNG(a.stdout, points, chart.PointsSize)
	}
	if err := chart.Points(points, *output); err != nil {
		return err
	}
	a.printf("estimate from %d points: %.6f\n", *n, types.Estimate(source.CountInside(points), uint64(*n)))
	a.printf("chart written to %s\n", *output)

	return nil
}

func runRace(_ context.Context, a *app, args []string) error {
	fs := a.flagSet("race")
	workers := fs.Int("workers", 8, "Goroutines incrementing the counter")
	increments := fs.Int("increments", 100_000, "Increments per goroutine")
	if err := fs.Parse(args); err != nil {
		return err
	}

	return racedemo.WriteOutcomes(a.stdout, racedemo.Demo(*workers, *increments))
}

func runHistory(ctx context.Context, a *app, args []string) error {
	fs := a.flagSet("history")
	limit := fs.Int("limit", 20, "Most recent entries to show (0 for all)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var entries []types.JournalEntry
	switch {
	case a.kvJournal != nil:
		e, err := a.kvJournal.Entries(ctx)
		if err != nil {
			return err
		}
		entries = e
	case a.fileJournal != nil:
		e, err := a.fileJournal.Entries(ctx)
		if err != nil {
			return err
		}
		entries = e
	default:
		return errors.New("no journal configured")
	}

	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Timestamp.Before(entries[j].Timestamp) })
	if *limit > 0 && len(entries) > *limit {
		entries = entries[len(entries)-*limit:]
	}

	for _, e := range entries {
		status := fmt.Sprintf("%.6f", e.Estimate)
		if e.Failed() {
			status = "failed: " + e.Error
		}
		a.printf("%s  %-20s %-10s workers=%-4d samples=%-10d %s\n",
			e.Timestamp.Format(time.RFC3339), e.RunID, e.Mode, e.Workers, e.Samples, status)
	}

	return nil
}
