package testutil

import (
	"testing"

	"github.com/SanaBenHammouda/PI-With-Monte-Carlo/types"
)

// AssertResultConsistent verifies that a result is the exact reduction of its
// partials: one partial per worker, shares following the partition of
// Samples over Workers, and Inside and Estimate derived from the partials.
//
// Parameters:
//   - t: testing handle
//   - result: Result returned by an estimator invocation
func AssertResultConsistent(t *testing.T, result types.Result) {
	t.Helper()

	partition, err := types.NewPartition(result.Samples, result.Workers)
	if err != nil {
		t.Fatalf("invalid result shape: %v", err)
	}
	if len(result.Partials) != result.Workers {
		t.Fatalf("partial count (%d) does not equal worker count (%d)", len(result.Partials), result.Workers)
	}

	seen := make(map[int]struct{}, len(result.Partials))
	var samples, inside uint64
	for _, p := range result.Partials {
		if p.WorkerID < 0 || p.WorkerID >= result.Workers {
			t.Fatalf("partial from unknown worker %d", p.WorkerID)
		}
		if _, dup := seen[p.WorkerID]; dup {
			t.Fatalf("duplicate partial for worker %d", p.WorkerID)
		}
		seen[p.WorkerID] = struct{}{}

		if p.Samples != partition[p.WorkerID] {
			t.Fatalf("worker %d drew %d samples, share is %d", p.WorkerID, p.Samples, partition[p.WorkerID])
		}
		if p.Inside > p.Samples {
			t.Fatalf("worker %d counted %d inside out of %d", p.WorkerID, p.Inside, p.Samples)
		}
		samples += p.Samples
		inside += p.Inside
	}

	if samples != result.Samples {
		t.Fatalf("sum of partial samples (%d) does not equal total (%d)", samples, result.Samples)
	}
	if inside != result.Inside {
		t.Fatalf("sum of partial inside counts (%d) does not equal result (%d)", inside, result.Inside)
	}
	if want := types.Estimate(inside, samples); result.Estimate != want {
		t.Fatalf("estimate %v does not equal 4*%d/%d = %v", result.Estimate, inside, samples, want)
	}
}
