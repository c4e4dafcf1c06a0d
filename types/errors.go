package types

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the montecarlo module.
//
// These errors provide type-safe error checking using errors.Is() and errors.As().
// All components should use these sentinel errors for known error conditions
// and wrap external errors with context using fmt.Errorf("%s: %w", msg, err).

// Estimator errors - Public API errors returned by the Estimator.
var (
	// ErrInvalidArgument is returned when a sample count or worker count is out of range,
	// or when a mode is unknown or not allowed for the called entry point.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrWorkerFailure is returned when any worker fails to produce its partial result.
	// The whole invocation fails; the missing contribution is never substituted.
	ErrWorkerFailure = errors.New("worker failure")

	// ErrStrategyUnavailable is returned when no strategy is registered for a mode.
	ErrStrategyUnavailable = errors.New("strategy unavailable")
)

// Journal errors - Run journal component errors.
var (
	// ErrJournalWrite is returned when a journal entry cannot be persisted.
	ErrJournalWrite = errors.New("failed to write journal entry")

	// ErrJournalRead is returned when journal entries cannot be read back.
	ErrJournalRead = errors.New("failed to read journal entries")
)

// Common errors - Shared errors used across multiple components.
var (
	// ErrConnectivity indicates a NATS connectivity issue.
	ErrConnectivity = errors.New("connectivity issue")

	// ErrNoKeysFound is returned when NATS KV returns no keys (expected condition).
	ErrNoKeysFound = errors.New("no keys found")
)

// WorkerError reports the failure of a single worker.
//
// It unwraps to both ErrWorkerFailure and the underlying cause, so callers
// can match either with errors.Is.
type WorkerError struct {
	WorkerID int
	Mode     Mode
	Err      error
}

func (e *WorkerError) Error() string {
	return fmt.Sprintf("%s worker %d failed: %v", e.Mode, e.WorkerID, e.Err)
}

// Unwrap returns ErrWorkerFailure and the cause.
func (e *WorkerError) Unwrap() []error {
	return []error{ErrWorkerFailure, e.Err}
}

// NewWorkerError wraps err as a failure of the given worker.
func NewWorkerError(mode Mode, workerID int, err error) *WorkerError {
	return &WorkerError{WorkerID: workerID, Mode: mode, Err: err}
}

// IsNoKeysFoundError checks if an error indicates that no keys were found in NATS KV.
//
// This function handles NATS-specific "no keys found" errors which may come as:
//   - Direct error: "nats: no keys found"
//   - Wrapped error: "failed to list KV keys: nats: no keys found"
//
// Parameters:
//   - err: The error to check
//
// Returns:
//   - bool: true if the error indicates no keys were found, false otherwise
func IsNoKeysFoundError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrNoKeysFound) {
		return true
	}

	return strings.Contains(err.Error(), "no keys found")
}
