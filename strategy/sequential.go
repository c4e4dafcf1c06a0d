package strategy

import (
	"context"

	"github.com/SanaBenHammouda/PI-With-Monte-Carlo/types"
)

// Sequential runs every task, in order, on the calling goroutine.
//
// With a single task it is the plain sequential estimator: one loop over
// all N draws with one counter.
type Sequential struct {
	opts *strategyOptions
}

var _ types.Strategy = (*Sequential)(nil)

// NewSequential creates a sequential strategy.
//
// Parameters:
//   - opts: WithSourceFactory, WithSourceName, WithLogger
//
// Returns:
//   - *Sequential: Initialized strategy
//   - error: If the configured source name is unknown
//
// Example:
//
//	s, _ := strategy.NewSequential()
//	partials, err := s.Count(ctx, []types.Task{{WorkerID: 0, Samples: 1_000_000, Seed: 42}})
func NewSequential(opts ...Option) (*Sequential, error) {
	o, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}

	return &Sequential{opts: o}, nil
}

// Mode returns types.ModeSequential.
func (s *Sequential) Mode() types.Mode {
	return types.ModeSequential
}

// Count runs the sampling loop for each task in turn.
func (s *Sequential) Count(ctx context.Context, tasks []types.Task) ([]types.PartialResult, error) {
	if len(tasks) == 0 {
		return nil, ErrNoTasks
	}

	partials := make([]types.PartialResult, 0, len(tasks))
	for _, task := range tasks {
		p, err := runTask(ctx, s.opts.factory(task), task)
		if err != nil {
			return nil, types.NewWorkerError(s.Mode(), task.WorkerID, err)
		}
		partials = append(partials, p)
	}

	return partials, nil
}
