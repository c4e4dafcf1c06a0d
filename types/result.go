package types

import (
	"fmt"
	"time"
)

// Task is the unit of work handed to a single worker.
//
// A Task crosses the process boundary in the process strategy, so it only
// carries plain values.
type Task struct {
	// WorkerID is the index of the worker within the invocation.
	WorkerID int `json:"worker_id"`

	// Samples is the number of points the worker draws.
	Samples uint64 `json:"samples"`

	// Seed initializes the worker's own point source.
	Seed uint64 `json:"seed"`
}

// PartialResult is one worker's count of points that passed the inclusion test.
type PartialResult struct {
	WorkerID int    `json:"worker_id"`
	Samples  uint64 `json:"samples"`
	Inside   uint64 `json:"inside"`

	// Duration is the wall time the worker spent sampling.
	Duration time.Duration `json:"duration"`
}

// Result is the reduced outcome of one estimator invocation.
type Result struct {
	RunID    string          `json:"run_id"`
	Mode     Mode            `json:"mode"`
	Workers  int             `json:"workers"`
	Samples  uint64          `json:"samples"`
	Inside   uint64          `json:"inside"`
	Estimate float64         `json:"estimate"`
	Seed     uint64          `json:"seed"`
	Duration time.Duration   `json:"duration"`
	Partials []PartialResult `json:"partials"`
}

// Throughput returns samples drawn per second of wall time.
func (r Result) Throughput() float64 {
	if r.Duration <= 0 {
		return 0
	}

	return float64(r.Samples) / r.Duration.Seconds()
}

// Estimate computes 4 * inside / samples.
//
// The function is pure and strategy-independent. The caller must guarantee
// samples >= 1.
func Estimate(inside, samples uint64) float64 {
	return 4.0 * float64(inside) / float64(samples)
}

// Reduce sums the partial results of an invocation.
//
// Every task must be matched by exactly one partial result with the same
// worker ID and sample count. A missing, duplicated, unknown or inconsistent
// partial fails the whole reduction instead of biasing the estimate.
//
// Parameters:
//   - tasks: Tasks that were dispatched
//   - partials: Partial results that were collected, in any order
//
// Returns:
//   - uint64: Total number of inside points
//   - error: ErrWorkerFailure describing the first inconsistency found
func Reduce(tasks []Task, partials []PartialResult) (uint64, error) {
	expected := make(map[int]uint64, len(tasks))
	for _, task := range tasks {
		expected[task.WorkerID] = task.Samples
	}

	seen := make(map[int]struct{}, len(partials))
	var inside uint64
	for _, p := range partials {
		samples, ok := expected[p.WorkerID]
		if !ok {
			return 0, fmt.Errorf("%w: unknown worker %d reported a result", ErrWorkerFailure, p.WorkerID)
		}
		if _, dup := seen[p.WorkerID]; dup {
			return 0, fmt.Errorf("%w: worker %d reported more than once", ErrWorkerFailure, p.WorkerID)
		}
		if p.Samples != samples {
			return 0, fmt.Errorf("%w: worker %d drew %d samples, expected %d",
				ErrWorkerFailure, p.WorkerID, p.Samples, samples)
		}
		if p.Inside > p.Samples {
			return 0, fmt.Errorf("%w: worker %d reported %d inside out of %d samples",
				ErrWorkerFailure, p.WorkerID, p.Inside, p.Samples)
		}
		seen[p.WorkerID] = struct{}{}
		inside += p.Inside
	}

	if len(seen) != len(expected) {
		for id := range expected {
			if _, ok := seen[id]; !ok {
				return 0, fmt.Errorf("%w: worker %d produced no result", ErrWorkerFailure, id)
			}
		}
	}

	return inside, nil
}
