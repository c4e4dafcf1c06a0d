package stress_test

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	montecarlo "github.com/SanaBenHammouda/PI-With-Monte-Carlo"
	"github.com/SanaBenHammouda/PI-With-Monte-Carlo/test/testutil"
)

// TestScale_Threaded runs the threaded strategy from 1 to the maximum worker
// count and checks that every run reduces exactly, converges, and leaves no
// goroutines behind.
func TestScale_Threaded(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping scale test in short mode")
	}

	requireStressEnabled(t)

	cfg := montecarlo.DefaultConfig()
	est, err := montecarlo.NewEstimator(&cfg)
	require.NoError(t, err)

	baseline := runtime.NumGoroutine()
	const samples = 50_000_000

	for _, workers := range []int{1, 2, 8, 64, 256, montecarlo.DefaultMaxWorkers} {
		t.Run(fmt.Sprintf("%dw", workers), func(t *testing.T) {
			ctx, cancel := context.WithTimeout(t.Context(), 5*time.Minute)
			defer cancel()

			result, err := est.Run(ctx, samples, workers, montecarlo.ModeThreaded)
			require.NoError(t, err)
			testutil.AssertResultConsistent(t, result)
			require.InDelta(t, math.Pi, result.Estimate, 0.005)

			t.Logf("BASELINE [%d workers]: Duration=%v Throughput=%.0f samples/s",
				workers, result.Duration, result.Throughput())
		})
	}

	require.Eventually(t, func() bool {
		return runtime.NumGoroutine() <= baseline+2
	}, 5*time.Second, 50*time.Millisecond, "worker goroutines should exit after each run")
}

// TestScale_ManySmallRuns hammers the estimator with concurrent tiny runs.
func TestScale_ManySmallRuns(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping scale test in short mode")
	}

	requireStressEnabled(t)

	cfg := montecarlo.TestConfig()
	est, err := montecarlo.NewEstimator(&cfg)
	require.NoError(t, err)

	errs := make(chan error, 64)
	for i := range 64 {
		go func() {
			for range 100 {
				r, err := est.Run(t.Context(), uint64(1000+i), 1+i%16, montecarlo.ModeThreaded)
				if err != nil {
					errs <- err
					return
				}
				if len(r.Partials) != 1+i%16 {
					errs <- fmt.Errorf("run with %d workers returned %d partials", 1+i%16, len(r.Partials))
					return
				}
			}
			errs <- nil
		}()
	}

	for range 64 {
		require.NoError(t, <-errs)
	}
}
