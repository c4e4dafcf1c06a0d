// Command montepi estimates pi by Monte Carlo sampling and compares the
// sequential, threaded and process strategies.
//
// Usage:
//
//	montepi [-config file] [-metrics-addr addr] <command> [flags]
//
// Commands:
//
//	estimate  run one estimate
//	compare   benchmark every strategy and render charts
//	chart     render charts from a saved benchmark report
//	cpu       measure CPU utilization of each strategy
//	scatter   plot sampled points in the unit square
//	race      demonstrate lost updates on a shared counter
//	history   list journaled runs
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/SanaBenHammouda/PI-With-Monte-Carlo/internal/config"
	"github.com/SanaBenHammouda/PI-With-Monte-Carlo/strategy"
)

var errUsage = errors.New("usage error")

func main() {
	// Worker children of the process strategy never return from here.
	strategy.RunWorkerMain()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()

	if err != nil {
		if !errors.Is(err, errUsage) && !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "montepi:", err)
		}
		os.Exit(1)
	}
}

type command struct {
	name    string
	summary string
	run     func(ctx context.Context, a *app, args []string) error
}

func commands() []command {
	return []command{
		{"estimate", "run one estimate", runEstimate},
		{"compare", "benchmark every strategy and render charts", runCompare},
		{"chart", "render charts from a saved benchmark report", runChart},
		{"cpu", "measure CPU utilization of each strategy", runCPU},
		{"scatter", "plot sampled points in the unit square", runScatter},
		{"race", "demonstrate lost updates on a shared counter", runRace},
		{"history", "list journaled runs", runHistory},
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("montepi", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "Path to YAML configuration file")
	metricsAddr := fs.String("metrics-addr", "", "Serve Prometheus metrics on this address (overrides config)")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: montepi [-config file] [-metrics-addr addr] <command> [flags]")
		fmt.Fprintln(stderr, "\ncommands:")
		for _, c := range commands() {
			fmt.Fprintf(stderr, "  %-9s %s\n", c.name, c.summary)
		}
		fmt.Fprintln(stderr, "\nflags:")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return errUsage
	}

	name := fs.Arg(0)
	var cmd *command
	for _, c := range commands() {
		if c.name == name {
			cmd = &c
			break
		}
	}
	if cmd == nil {
		fmt.Fprintf(stderr, "unknown command %q\n", name)
		fs.Usage()

		return errUsage
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.LoadConfig(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if *metricsAddr != "" {
		cfg.Metrics.Prometheus.Enabled = true
		cfg.Metrics.Prometheus.Addr = *metricsAddr
	}

	a, err := newApp(ctx, cfg, stdout, stderr)
	if err != nil {
		return err
	}
	defer a.Close()

	return cmd.run(ctx, a, fs.Args()[1:])
}
