package types

import (
	"context"
	"time"
)

// JournalEntry is the audit record written for each estimator invocation.
type JournalEntry struct {
	RunID     string        `json:"run_id"`
	Timestamp time.Time     `json:"timestamp"`
	Mode      Mode          `json:"mode"`
	Workers   int           `json:"workers"`
	Samples   uint64        `json:"samples"`
	Inside    uint64        `json:"inside"`
	Estimate  float64       `json:"estimate"`
	Duration  time.Duration `json:"duration"`
	Error     string        `json:"error,omitempty"`
}

// Failed reports whether the entry records a failed invocation.
func (e JournalEntry) Failed() bool {
	return e.Error != ""
}

// Journal persists one entry per estimator invocation.
//
// Implementations must be safe for concurrent use.
type Journal interface {
	// Backend names the storage backend ("file", "kv") for logs and metrics.
	Backend() string

	// Append stores the entry.
	Append(ctx context.Context, entry JournalEntry) error
}
