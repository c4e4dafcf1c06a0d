package types

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSentinelErrors(t *testing.T) {
	t.Run("all errors are distinct", func(t *testing.T) {
		allErrors := []error{
			ErrInvalidArgument,
			ErrInvalidConfig,
			ErrWorkerFailure,
			ErrStrategyUnavailable,
			ErrJournalWrite,
			ErrJournalRead,
			ErrConnectivity,
			ErrNoKeysFound,
		}

		for i, a := range allErrors {
			for j, b := range allErrors {
				if i == j {
					continue
				}
				require.False(t, errors.Is(a, b), "%v should not match %v", a, b)
			}
		}
	})

	t.Run("wrapped errors keep identity", func(t *testing.T) {
		wrapped := fmt.Errorf("estimate failed: %w", ErrInvalidArgument)
		require.ErrorIs(t, wrapped, ErrInvalidArgument)
	})
}

func TestWorkerError(t *testing.T) {
	cause := context.Canceled
	err := NewWorkerError(ModeProcess, 3, cause)

	require.ErrorIs(t, err, ErrWorkerFailure)
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, "process worker 3 failed: context canceled", err.Error())

	var werr *WorkerError
	require.ErrorAs(t, fmt.Errorf("run: %w", err), &werr)
	require.Equal(t, 3, werr.WorkerID)
	require.Equal(t, ModeProcess, werr.Mode)
}

func TestIsNoKeysFoundError(t *testing.T) {
	require.False(t, IsNoKeysFoundError(nil))
	require.True(t, IsNoKeysFoundError(ErrNoKeysFound))
	require.True(t, IsNoKeysFoundError(errors.New("nats: no keys found")))
	require.True(t, IsNoKeysFoundError(fmt.Errorf("failed to list KV keys: %w", errors.New("nats: no keys found"))))
	require.False(t, IsNoKeysFoundError(errors.New("timeout")))
}
