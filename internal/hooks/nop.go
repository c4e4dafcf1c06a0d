// Package hooks provides the default no-op estimator hooks.
package hooks

import (
	"context"

	"github.com/SanaBenHammouda/PI-With-Monte-Carlo/types"
)

// NopHooks implements every hook as a no-op.
//
// The estimator fills unset hook fields from NopHooks, so it never checks
// for nil callbacks.
type NopHooks struct{}

var (
	_ func(context.Context, types.PartialResult) error = (*NopHooks)(nil).OnWorkerDone
	_ func(context.Context, types.Result) error        = (*NopHooks)(nil).OnRunComplete
	_ func(context.Context, error) error               = (*NopHooks)(nil).OnError
)

// NewNop creates hooks that do nothing.
func NewNop() types.Hooks {
	h := &NopHooks{}

	return types.Hooks{
		OnWorkerDone:  h.OnWorkerDone,
		OnRunComplete: h.OnRunComplete,
		OnError:       h.OnError,
	}
}

// Fill returns a copy of h where every nil callback is replaced by a no-op.
func Fill(h *types.Hooks) types.Hooks {
	nop := NewNop()
	if h == nil {
		return nop
	}

	out := *h
	if out.OnWorkerDone == nil {
		out.OnWorkerDone = nop.OnWorkerDone
	}
	if out.OnRunComplete == nil {
		out.OnRunComplete = nop.OnRunComplete
	}
	if out.OnError == nil {
		out.OnError = nop.OnError
	}

	return out
}

// OnWorkerDone is a no-op implementation.
func (h *NopHooks) OnWorkerDone(_ context.Context, _ types.PartialResult) error {
	return nil
}

// OnRunComplete is a no-op implementation.
func (h *NopHooks) OnRunComplete(_ context.Context, _ types.Result) error {
	return nil
}

// OnError is a no-op implementation.
func (h *NopHooks) OnError(_ context.Context, _ error) error {
	return nil
}
