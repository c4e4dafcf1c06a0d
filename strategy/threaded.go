package strategy

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/SanaBenHammouda/PI-With-Monte-Carlo/types"
)

// Threaded runs one goroutine per task.
//
// Each worker owns its point source and its counter. The only shared
// resource is the buffered results channel, sized to the task count so that
// no worker ever blocks on hand-off. The first failing worker cancels the
// others.
type Threaded struct {
	opts *strategyOptions
}

var _ types.Strategy = (*Threaded)(nil)

// NewThreaded creates a threaded strategy.
//
// Parameters:
//   - opts: WithSourceFactory, WithSourceName, WithLogger
//
// Returns:
//   - *Threaded: Initialized strategy
//   - error: If the configured source name is unknown
func NewThreaded(opts ...Option) (*Threaded, error) {
	o, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}

	return &Threaded{opts: o}, nil
}

// Mode returns types.ModeThreaded.
func (s *Threaded) Mode() types.Mode {
	return types.ModeThreaded
}

// Count starts every worker, waits for all of them, and returns their partials.
func (s *Threaded) Count(ctx context.Context, tasks []types.Task) ([]types.PartialResult, error) {
	if len(tasks) == 0 {
		return nil, ErrNoTasks
	}

	results := make(chan types.PartialResult, len(tasks))
	g, gctx := errgroup.WithContext(ctx)

	for _, task := range tasks {
		src := s.opts.factory(task)
		g.Go(func() error {
			p, err := runTask(gctx, src, task)
			if err != nil {
				s.opts.logger.Debug("worker stopped", "mode", s.Mode(), "worker_id", task.WorkerID, "error", err)
				return types.NewWorkerError(s.Mode(), task.WorkerID, err)
			}
			results <- p

			return nil
		})
	}

	err := g.Wait()
	close(results)
	if err != nil {
		return nil, err
	}

	partials := make([]types.PartialResult, 0, len(tasks))
	for p := range results {
		partials = append(partials, p)
	}

	return partials, nil
}
