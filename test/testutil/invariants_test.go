package testutil

import (
	"testing"

	"github.com/SanaBenHammouda/PI-With-Monte-Carlo/types"
)

func TestAssertResultConsistent(t *testing.T) {
	result := types.Result{
		Mode:     types.ModeThreaded,
		Workers:  4,
		Samples:  101,
		Inside:   80,
		Estimate: types.Estimate(80, 101),
		Partials: []types.PartialResult{
			{WorkerID: 3, Samples: 26, Inside: 20},
			{WorkerID: 0, Samples: 25, Inside: 20},
			{WorkerID: 2, Samples: 25, Inside: 21},
			{WorkerID: 1, Samples: 25, Inside: 19},
		},
	}
	AssertResultConsistent(t, result)
}
