package montecarlo

import "github.com/SanaBenHammouda/PI-With-Monte-Carlo/types"

// Sentinel errors returned by the Estimator.
//
// They are re-exported from the types package so callers only import the
// root package. Match them with errors.Is.
var (
	// ErrInvalidArgument is returned for a zero sample count, a worker count
	// outside [1, MaxWorkers], or a mode not allowed for the entry point.
	ErrInvalidArgument = types.ErrInvalidArgument

	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = types.ErrInvalidConfig

	// ErrWorkerFailure is returned when any worker fails to produce its partial result.
	ErrWorkerFailure = types.ErrWorkerFailure

	// ErrStrategyUnavailable is returned when a strategy cannot be built for a mode.
	ErrStrategyUnavailable = types.ErrStrategyUnavailable

	// ErrJournalWrite is returned by journals that fail to persist an entry.
	// The estimator logs it and never returns it.
	ErrJournalWrite = types.ErrJournalWrite
)
