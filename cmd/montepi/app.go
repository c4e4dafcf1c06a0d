package main

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/nats-io/nats.go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	montecarlo "github.com/SanaBenHammouda/PI-With-Monte-Carlo"
	"github.com/SanaBenHammouda/PI-With-Monte-Carlo/internal/config"
	"github.com/SanaBenHammouda/PI-With-Monte-Carlo/internal/logging"
	"github.com/SanaBenHammouda/PI-With-Monte-Carlo/internal/metrics"
	"github.com/SanaBenHammouda/PI-With-Monte-Carlo/journal"
	"github.com/SanaBenHammouda/PI-With-Monte-Carlo/types"
)

// app holds the collaborators shared by every command.
type app struct {
	cfg    *config.Config
	stdout io.Writer
	stderr io.Writer
	logger *logging.SlogLogger

	metrics   types.MetricsCollector
	registry  *prometheus.Registry
	server    *metrics.Server
	stopServe context.CancelFunc
	serveWG   sync.WaitGroup

	fileJournal *journal.File
	kvJournal   *journal.KV
	nc          *nats.Conn

	estimator *montecarlo.Estimator
}

func newApp(ctx context.Context, cfg *config.Config, stdout, stderr io.Writer) (*app, error) {
	log, err := logging.New(cfg.Logging.Level, cfg.Logging.Format, stderr)
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, stdout: stdout, stderr: stderr, logger: log, metrics: metrics.NewNop()}

	if cfg.Metrics.Prometheus.Enabled {
		a.registry = prometheus.NewRegistry()
		a.registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		a.metrics = metrics.NewPrometheus(a.registry, cfg.Metrics.Prometheus.Namespace)
		a.server = metrics.NewServer(cfg.Metrics.Prometheus.Addr, a.registry, log)

		serveCtx, cancel := context.WithCancel(ctx)
		a.stopServe = cancel
		a.serveWG.Add(1)
		go func() {
			defer a.serveWG.Done()
			if err := a.server.Start(serveCtx); err != nil {
				log.Error("metrics server stopped", "error", err)
			}
		}()
	}

	var journals []types.Journal
	if cfg.Journal.File != "" {
		a.fileJournal = journal.NewFile(cfg.Journal.File)
		journals = append(journals, a.fileJournal)
	}
	if cfg.Journal.NATS.Enabled {
		nc, err := nats.Connect(cfg.Journal.NATS.URL, nats.Name("montepi"))
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("connect to nats: %w", err)
		}
		a.nc = nc
		kv, err := journal.NewKV(ctx, nc, cfg.Journal.NATS.KV)
		if err != nil {
			a.Close()
			return nil, err
		}
		a.kvJournal = kv
		journals = append(journals, kv)
	}

	opts := []montecarlo.Option{
		montecarlo.WithLogger(log),
		montecarlo.WithMetrics(a.metrics),
	}
	if multi := journal.NewMulti(journals...); multi.Len() > 0 {
		opts = append(opts, montecarlo.WithJournal(multi))
	}

	est, err := montecarlo.NewEstimator(&cfg.Estimator, opts...)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.estimator = est

	return a, nil
}

// Close stops the metrics server and drains the NATS connection.
func (a *app) Close() {
	if a.stopServe != nil {
		a.stopServe()
		a.serveWG.Wait()
	}
	if a.nc != nil {
		if err := a.nc.Drain(); err != nil {
			a.logger.Warn("nats drain failed", "error", err)
		}
	}
}

func (a *app) printf(format string, args ...any) {
	fmt.Fprintf(a.stdout, format, args...)
}
