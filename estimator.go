package montecarlo

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/SanaBenHammouda/PI-With-Monte-Carlo/internal/hooks"
	"github.com/SanaBenHammouda/PI-With-Monte-Carlo/internal/logger"
	"github.com/SanaBenHammouda/PI-With-Monte-Carlo/internal/metrics"
	"github.com/SanaBenHammouda/PI-With-Monte-Carlo/internal/seed"
	"github.com/SanaBenHammouda/PI-With-Monte-Carlo/strategy"
	"github.com/SanaBenHammouda/PI-With-Monte-Carlo/types"
)

// Estimator estimates pi by Monte Carlo sampling with a chosen execution strategy.
//
// An Estimator is safe for concurrent use. Every invocation derives its own
// worker seeds, partition and counters; nothing is shared between invocations
// except the configured collaborators (logger, metrics, hooks, journal).
type Estimator struct {
	cfg        Config
	strategies map[Mode]Strategy
	hooks      Hooks
	metrics    MetricsCollector
	logger     Logger
	journal    Journal
	sequence   atomic.Uint64

	// processIgnoresSource is set when a source factory was supplied but
	// ModeProcess runs the built-in strategy, which cannot carry it to children.
	processIgnoresSource bool
}

// NewEstimator creates an estimator.
//
// Parameters:
//   - cfg: Configuration, missing values are filled from DefaultConfig (nil uses defaults)
//   - opts: Optional dependencies (WithLogger, WithMetrics, WithHooks, WithJournal,
//     WithSourceFactory, WithStrategy)
//
// Returns:
//   - *Estimator: Ready-to-use estimator
//   - error: ErrInvalidConfig for invalid configuration,
//     ErrStrategyUnavailable if a built-in strategy cannot be created
//
// Example:
//
//	cfg := montecarlo.DefaultConfig()
//	est, err := montecarlo.NewEstimator(&cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	pi, err := est.EstimateParallel(ctx, 10_000_000, 8, montecarlo.ModeThreaded)
func NewEstimator(cfg *Config, opts ...Option) (*Estimator, error) {
	var c Config
	if cfg != nil {
		c = *cfg
	}
	SetDefaults(&c)
	if err := c.Validate(); err != nil {
		return nil, err
	}

	options := &estimatorOptions{}
	for _, opt := range opts {
		opt(options)
	}

	e := &Estimator{
		cfg:        c,
		strategies: make(map[Mode]Strategy, 3),
		hooks:      hooks.Fill(options.hooks),
		metrics:    options.metrics,
		logger:     logger.OrNop(options.logger),
		journal:    options.journal,
	}
	if e.metrics == nil {
		e.metrics = metrics.NewNop()
	}

	c.ValidateWithWarnings(e.logger)

	for _, s := range options.strategies {
		if s != nil {
			e.strategies[s.Mode()] = s
		}
	}

	stratOpts := []strategy.Option{
		strategy.WithSourceName(c.Source),
		strategy.WithLogger(e.logger),
		strategy.WithBinary(c.Process.Binary),
		strategy.WithArgs(c.Process.Args...),
		strategy.WithEnv(c.Process.Env...),
	}
	if options.sourceFactory != nil {
		stratOpts = append(stratOpts, strategy.WithSourceFactory(options.sourceFactory))
	}
	if _, custom := e.strategies[ModeProcess]; options.sourceFactory != nil && !custom {
		e.processIgnoresSource = true
	}
	for _, mode := range types.Modes() {
		if _, ok := e.strategies[mode]; ok {
			continue
		}
		s, err := strategy.New(mode, stratOpts...)
		if err != nil {
			return nil, fmt.Errorf("%s strategy: %w", mode, err)
		}
		e.strategies[mode] = s
	}

	return e, nil
}

// Config returns a copy of the effective configuration.
func (e *Estimator) Config() Config {
	return e.cfg
}

// EstimateSequential estimates pi with a single loop over n draws.
//
// Returns:
//   - float64: Estimate in [0, 4]
//   - error: ErrInvalidArgument if n == 0
func (e *Estimator) EstimateSequential(ctx context.Context, n uint64) (float64, error) {
	r, err := e.Run(ctx, n, 1, ModeSequential)
	if err != nil {
		return 0, err
	}

	return r.Estimate, nil
}

// EstimateParallel estimates pi with n draws split across workers.
//
// Parameters:
//   - ctx: Context for cancellation
//   - n: Total sample count (>= 1)
//   - workers: Concurrency degree in [1, MaxWorkers]
//   - mode: ModeThreaded or ModeProcess
//
// Returns:
//   - float64: Estimate in [0, 4]
//   - error: ErrInvalidArgument for bad arguments, ErrWorkerFailure if any worker fails
func (e *Estimator) EstimateParallel(ctx context.Context, n uint64, workers int, mode Mode) (float64, error) {
	if !mode.IsParallel() {
		return 0, fmt.Errorf("%w: mode %q is not a parallel mode", ErrInvalidArgument, mode)
	}

	r, err := e.Run(ctx, n, workers, mode)
	if err != nil {
		return 0, err
	}

	return r.Estimate, nil
}

// Run performs one invocation and returns the full result.
//
// The partition of n across workers is computed once; worker seeds are derived
// from the base seed (Config.Seed, or a fresh random seed when it is zero).
// On success OnWorkerDone runs once per partial, then OnRunComplete.
// On failure OnError runs and no estimate is produced.
//
// Returns:
//   - Result: Estimate, inside count, per-worker partials and timing
//   - error: ErrInvalidArgument or ErrWorkerFailure (a *WorkerError is in the chain)
func (e *Estimator) Run(ctx context.Context, n uint64, workers int, mode Mode) (Result, error) {
	if err := e.validateArgs(n, workers, mode); err != nil {
		return Result{}, err
	}
	strat, ok := e.strategies[mode]
	if !ok {
		return Result{}, fmt.Errorf("%w: %s", ErrStrategyUnavailable, mode)
	}

	if e.cfg.RunTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.cfg.RunTimeout)
		defer cancel()
	}

	base := e.cfg.Seed
	if base == 0 {
		base = seed.Random()
	}
	startedAt := time.Now()
	runID := seed.RunID(startedAt, base, e.sequence.Add(1))

	partition, err := types.NewPartition(n, workers)
	if err != nil {
		return Result{}, err
	}
	tasks := partition.Tasks(seed.Deriver(base))

	e.logger.Debug("run starting", "run_id", runID, "mode", mode, "workers", workers, "samples", n, "seed", base)

	partials, err := strat.Count(ctx, tasks)
	if err == nil {
		for _, p := range partials {
			e.metrics.RecordWorker(mode, p.Samples, p.Duration.Seconds())
			if hookErr := e.hooks.OnWorkerDone(ctx, p); hookErr != nil {
				e.logger.Warn("OnWorkerDone hook failed", "run_id", runID, "worker_id", p.WorkerID, "error", hookErr)
			}
		}
	}

	var inside uint64
	if err == nil {
		inside, err = types.Reduce(tasks, partials)
	}
	duration := time.Since(startedAt)

	if err != nil {
		e.fail(ctx, runID, startedAt, mode, workers, n, duration, err)
		return Result{}, err
	}

	result := Result{
		RunID:    runID,
		Mode:     mode,
		Workers:  workers,
		Samples:  n,
		Inside:   inside,
		Estimate: types.Estimate(inside, n),
		Seed:     base,
		Duration: duration,
		Partials: partials,
	}

	e.metrics.RecordRun(mode, workers, n, duration.Seconds(), true)
	e.metrics.RecordEstimate(mode, result.Estimate)
	e.logger.Info("run complete",
		"run_id", runID,
		"mode", mode,
		"workers", workers,
		"samples", n,
		"inside", inside,
		"estimate", result.Estimate,
		"duration", duration,
	)
	if hookErr := e.hooks.OnRunComplete(ctx, result); hookErr != nil {
		e.logger.Warn("OnRunComplete hook failed", "run_id", runID, "error", hookErr)
	}

	e.record(ctx, types.JournalEntry{
		RunID:     runID,
		Timestamp: startedAt.UTC(),
		Mode:      mode,
		Workers:   workers,
		Samples:   n,
		Inside:    inside,
		Estimate:  result.Estimate,
		Duration:  duration,
	})

	return result, nil
}

func (e *Estimator) validateArgs(n uint64, workers int, mode Mode) error {
	if n == 0 {
		return fmt.Errorf("%w: sample count must be >= 1", ErrInvalidArgument)
	}
	if !mode.Valid() {
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidArgument, mode)
	}
	if workers < 1 || workers > e.cfg.MaxWorkers {
		return fmt.Errorf("%w: worker count %d outside [1, %d]", ErrInvalidArgument, workers, e.cfg.MaxWorkers)
	}
	if mode == ModeSequential && workers != 1 {
		return fmt.Errorf("%w: sequential mode runs exactly one worker, got %d", ErrInvalidArgument, workers)
	}
	if mode == ModeProcess && e.processIgnoresSource {
		return fmt.Errorf("%w: a custom source factory cannot reach worker processes", ErrInvalidArgument)
	}

	return nil
}

func (e *Estimator) fail(ctx context.Context, runID string, startedAt time.Time, mode Mode,
	workers int, n uint64, duration time.Duration, err error,
) {
	var werr *types.WorkerError
	if errors.As(err, &werr) {
		e.metrics.RecordWorkerFailure(mode)
	}
	e.metrics.RecordRun(mode, workers, n, duration.Seconds(), false)
	e.logger.Error("run failed", "run_id", runID, "mode", mode, "workers", workers, "samples", n, "error", err)

	if hookErr := e.hooks.OnError(ctx, err); hookErr != nil {
		e.logger.Warn("OnError hook failed", "run_id", runID, "error", hookErr)
	}

	e.record(ctx, types.JournalEntry{
		RunID:     runID,
		Timestamp: startedAt.UTC(),
		Mode:      mode,
		Workers:   workers,
		Samples:   n,
		Duration:  duration,
		Error:     err.Error(),
	})
}

// record appends to the journal. The write outlives a cancelled run context.
func (e *Estimator) record(ctx context.Context, entry types.JournalEntry) {
	if e.journal == nil {
		return
	}

	err := e.journal.Append(context.WithoutCancel(ctx), entry)
	e.metrics.RecordJournalWrite(e.journal.Backend(), err == nil)
	if err != nil {
		e.logger.Warn("journal write failed", "run_id", entry.RunID, "backend", e.journal.Backend(), "error", err)
	}
}

var defaultEstimator = sync.OnceValues(func() (*Estimator, error) {
	cfg := DefaultConfig()
	return NewEstimator(&cfg)
})

// EstimateSequential estimates pi with a default estimator.
//
// Example:
//
//	pi, err := montecarlo.EstimateSequential(1_000_000)
func EstimateSequential(n uint64) (float64, error) {
	e, err := defaultEstimator()
	if err != nil {
		return 0, err
	}

	return e.EstimateSequential(context.Background(), n)
}

// EstimateParallel estimates pi with a default estimator.
//
// ModeProcess requires the program to call strategy.RunWorkerMain first thing in main.
func EstimateParallel(n uint64, workers int, mode Mode) (float64, error) {
	e, err := defaultEstimator()
	if err != nil {
		return 0, err
	}

	return e.EstimateParallel(context.Background(), n, workers, mode)
}
