package montecarlo

import "github.com/SanaBenHammouda/PI-With-Monte-Carlo/types"

// Re-export types from the types package.
//
// Internal packages depend on types/ without importing the root package,
// which avoids import cycles while still giving users montecarlo.Result,
// montecarlo.Logger and so on.
type (
	Mode          = types.Mode
	Partition     = types.Partition
	Task          = types.Task
	PartialResult = types.PartialResult
	Result        = types.Result
	Point         = types.Point
	JournalEntry  = types.JournalEntry
	WorkerError   = types.WorkerError
)

// Re-export interfaces from the types package for convenience.
type (
	PointSource      = types.PointSource
	SourceFactory    = types.SourceFactory
	Strategy         = types.Strategy
	Journal          = types.Journal
	MetricsCollector = types.MetricsCollector
	Logger           = types.Logger
	Hooks            = types.Hooks
)

// Re-export Mode constants from the types package.
const (
	ModeSequential = types.ModeSequential
	ModeThreaded   = types.ModeThreaded
	ModeProcess    = types.ModeProcess
)

// NewPartition splits samples across workers; see types.NewPartition.
func NewPartition(samples uint64, workers int) (Partition, error) {
	return types.NewPartition(samples, workers)
}

// Estimate returns 4 * inside / samples; see types.Estimate.
func Estimate(inside, samples uint64) float64 {
	return types.Estimate(inside, samples)
}

// ParseMode resolves a mode name or alias; see types.ParseMode.
func ParseMode(s string) (Mode, error) {
	return types.ParseMode(s)
}
