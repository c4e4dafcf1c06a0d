package types

import "context"

// Hooks defines callbacks for estimator events.
//
// All hooks are optional and run synchronously on the goroutine that called
// the estimator. Hook errors are logged and never fail the invocation.
//
// Example:
//
//	var seen atomic.Uint64
//	hooks := &montecarlo.Hooks{
//	    OnWorkerDone: func(ctx context.Context, p montecarlo.PartialResult) error {
//	        seen.Add(p.Inside)
//	        return nil
//	    },
//	}
type Hooks struct {
	// OnWorkerDone is called once per partial result, after the strategy returns
	// and before reduction.
	OnWorkerDone func(ctx context.Context, partial PartialResult) error

	// OnRunComplete is called after a successful reduction.
	OnRunComplete func(ctx context.Context, result Result) error

	// OnError is called when an invocation fails.
	OnError func(ctx context.Context, err error) error
}
