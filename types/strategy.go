package types

import "context"

// Strategy executes a set of tasks and returns one partial result per task.
//
// Implementations must not share mutable state between workers, must block
// until every task has finished, and must fail the whole call if any worker
// fails. The order of the returned partials is unspecified.
type Strategy interface {
	// Mode identifies the strategy.
	Mode() Mode

	// Count runs the sampling loop for every task.
	//
	// Parameters:
	//   - ctx: Context for cancellation; cancelled contexts fail the call
	//   - tasks: Tasks derived from the invocation's Partition
	//
	// Returns:
	//   - []PartialResult: Exactly one result per task on success
	//   - error: A *WorkerError (wrapping ErrWorkerFailure) on failure
	Count(ctx context.Context, tasks []Task) ([]PartialResult, error)
}
