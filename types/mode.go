package types

import (
	"fmt"
	"strings"
)

// Mode identifies an execution strategy.
type Mode string

const (
	// ModeSequential runs every sample on the calling goroutine.
	ModeSequential Mode = "sequential"

	// ModeThreaded runs one goroutine per partition share inside the current process.
	ModeThreaded Mode = "threaded"

	// ModeProcess runs one child process per partition share.
	ModeProcess Mode = "process"
)

// Modes returns all known modes in their canonical order.
func Modes() []Mode {
	return []Mode{ModeSequential, ModeThreaded, ModeProcess}
}

// String returns the mode name.
func (m Mode) String() string {
	return string(m)
}

// IsParallel reports whether the mode fans work out to more than one worker.
func (m Mode) IsParallel() bool {
	return m == ModeThreaded || m == ModeProcess
}

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	switch m {
	case ModeSequential, ModeThreaded, ModeProcess:
		return true
	default:
		return false
	}
}

// ParseMode converts a user supplied name into a Mode.
//
// Accepted aliases follow the names used by the original benchmark scripts
// ("mono", "multi", "thread", "multiprocessing").
//
// Parameters:
//   - s: Mode name (case-insensitive)
//
// Returns:
//   - Mode: Parsed mode
//   - error: ErrInvalidArgument if the name is unknown
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sequential", "mono", "single":
		return ModeSequential, nil
	case "threaded", "thread", "threads", "multi":
		return ModeThreaded, nil
	case "process", "processes", "multiprocessing":
		return ModeProcess, nil
	default:
		return "", fmt.Errorf("%w: unknown mode %q", ErrInvalidArgument, s)
	}
}
