package hooks

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/SanaBenHammouda/PI-With-Monte-Carlo/types"
)

func TestNewNop(t *testing.T) {
	h := NewNop()
	ctx := context.Background()

	require.NoError(t, h.OnWorkerDone(ctx, types.PartialResult{WorkerID: 1, Samples: 10, Inside: 7}))
	require.NoError(t, h.OnRunComplete(ctx, types.Result{Estimate: 3.14}))
	require.NoError(t, h.OnError(ctx, errors.New("boom")))
}

func TestFill(t *testing.T) {
	t.Run("nil hooks", func(t *testing.T) {
		h := Fill(nil)
		require.NotNil(t, h.OnWorkerDone)
		require.NotNil(t, h.OnRunComplete)
		require.NotNil(t, h.OnError)
	})

	t.Run("keeps custom callbacks", func(t *testing.T) {
		var called bool
		h := Fill(&types.Hooks{
			OnRunComplete: func(context.Context, types.Result) error {
				called = true
				return nil
			},
		})

		require.NoError(t, h.OnRunComplete(context.Background(), types.Result{}))
		require.True(t, called)
		require.NoError(t, h.OnWorkerDone(context.Background(), types.PartialResult{}))
		require.NoError(t, h.OnError(context.Background(), nil))
	})
}
