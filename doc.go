// Package montecarlo estimates pi by Monte Carlo sampling of the unit square.
//
// A point (x, y) drawn uniformly from [0, 1) x [0, 1) falls inside the
// quarter circle when x² + y² <= 1, which happens with probability pi/4.
// Drawing N points and counting the k inside gives the estimate 4k/N.
//
// The same computation runs under three strategies:
//
//   - Sequential: one loop on the calling goroutine
//   - Threaded: one goroutine per share of the sample count
//   - Process: one child OS process per share
//
// Parallel strategies split N into a Partition (N/W per worker, remainder to
// the last), give every worker its own independently seeded point source and
// sum the per-worker counts once all have reported. Workers never share a
// counter. Any worker failure fails the whole invocation.
//
// # Quick Start
//
//	pi, err := montecarlo.EstimateParallel(10_000_000, 8, montecarlo.ModeThreaded)
//
// # Estimator
//
// An Estimator carries configuration and optional collaborators:
//
//	cfg := montecarlo.DefaultConfig()
//	cfg.Seed = 42
//
//	est, err := montecarlo.NewEstimator(&cfg,
//	    montecarlo.WithLogger(logger),
//	    montecarlo.WithMetrics(collector),
//	    montecarlo.WithJournal(journal.NewFile("runs.jsonl")),
//	)
//	result, err := est.Run(ctx, 10_000_000, 8, montecarlo.ModeProcess)
//
// # Process Strategy
//
// ModeProcess re-executes the current binary for each worker. Programs that
// use it must call strategy.RunWorkerMain at the very start of main so the
// child serves its task and exits:
//
//	func main() {
//	    strategy.RunWorkerMain()
//	    ...
//	}
//
// See the examples/ directory and cmd/montepi for complete programs.
package montecarlo
