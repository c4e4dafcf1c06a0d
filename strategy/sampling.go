package strategy

import (
	"context"
	"time"

	"github.com/SanaBenHammouda/PI-With-Monte-Carlo/types"
)

// cancelCheckInterval is how many draws a worker makes between context checks.
const cancelCheckInterval = 1 << 16

// countInside draws n points from src and counts those inside the quarter circle.
func countInside(ctx context.Context, src types.PointSource, n uint64) (uint64, error) {
	var inside uint64
	for i := uint64(0); i < n; i++ {
		if i%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
		}
		x, y := src.Next()
		if x*x+y*y <= 1 {
			inside++
		}
	}

	return inside, nil
}

// runTask executes a single task against its source.
func runTask(ctx context.Context, src types.PointSource, task types.Task) (types.PartialResult, error) {
	start := time.Now()
	inside, err := countInside(ctx, src, task.Samples)
	if err != nil {
		return types.PartialResult{}, err
	}

	return types.PartialResult{
		WorkerID: task.WorkerID,
		Samples:  task.Samples,
		Inside:   inside,
		Duration: time.Since(start),
	}, nil
}
