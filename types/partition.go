package types

import "fmt"

// Partition holds the per-worker sample shares for one invocation.
//
// Entry i is the number of samples worker i draws. Every worker receives
// samples / workers, and the whole remainder goes to the last worker, so
// the entries always sum to the requested sample count.
type Partition []uint64

// NewPartition splits samples into workers shares.
//
// When samples < workers the leading shares are zero and the last worker
// draws every sample.
//
// Parameters:
//   - samples: Total number of samples (must be >= 1)
//   - workers: Number of workers (must be >= 1)
//
// Returns:
//   - Partition: Shares indexed by worker ID
//   - error: ErrInvalidArgument if either argument is zero
//
// Example:
//
//	p, _ := types.NewPartition(101, 4)
//	// p == Partition{25, 25, 25, 26}
func NewPartition(samples uint64, workers int) (Partition, error) {
	if samples == 0 {
		return nil, fmt.Errorf("%w: sample count must be >= 1", ErrInvalidArgument)
	}
	if workers < 1 {
		return nil, fmt.Errorf("%w: worker count must be >= 1, got %d", ErrInvalidArgument, workers)
	}

	base := samples / uint64(workers)
	remainder := samples % uint64(workers)

	p := make(Partition, workers)
	for i := range p {
		p[i] = base
	}
	p[workers-1] += remainder

	return p, nil
}

// Sum returns the total number of samples across all shares.
func (p Partition) Sum() uint64 {
	var total uint64
	for _, share := range p {
		total += share
	}

	return total
}

// Offsets returns the index of the first sample of each share when the
// shares are laid end to end over a single stream.
func (p Partition) Offsets() []uint64 {
	offsets := make([]uint64, len(p))
	var next uint64
	for i, share := range p {
		offsets[i] = next
		next += share
	}

	return offsets
}

// Tasks converts the partition into worker tasks.
//
// Parameters:
//   - seedFor: Returns the seed for a worker ID
//
// Returns:
//   - []Task: One task per share, WorkerID equal to the share index
func (p Partition) Tasks(seedFor func(workerID int) uint64) []Task {
	tasks := make([]Task, len(p))
	for i, share := range p {
		tasks[i] = Task{
			WorkerID: i,
			Samples:  share,
			Seed:     seedFor(i),
		}
	}

	return tasks
}
