package types

// MetricsCollector defines methods for recording operational metrics.
//
// Implementations should be non-blocking and handle failures gracefully.
// Worker metrics are recorded from the coordinator goroutine; run metrics
// are recorded once per invocation. Implementations must be thread-safe
// because one collector may serve concurrent invocations.
//
// This interface composes smaller, domain-focused interfaces for better modularity.
type MetricsCollector interface {
	RunMetrics
	WorkerMetrics
	JournalMetrics
}

// RunMetrics defines metrics for whole estimator invocations.
type RunMetrics interface {
	// RecordRun records a finished invocation.
	//
	// Parameters:
	//   - mode: Execution strategy
	//   - workers: Number of workers dispatched
	//   - samples: Total samples requested
	//   - duration: Wall time in seconds
	//   - success: false when the invocation failed
	RecordRun(mode Mode, workers int, samples uint64, duration float64, success bool)

	// RecordEstimate sets the most recent estimate for a mode (gauge metric).
	RecordEstimate(mode Mode, estimate float64)
}

// WorkerMetrics defines metrics for individual workers.
type WorkerMetrics interface {
	// RecordWorker records one worker's completion.
	//
	// Parameters:
	//   - mode: Execution strategy
	//   - samples: Samples drawn by the worker
	//   - duration: Worker wall time in seconds
	RecordWorker(mode Mode, samples uint64, duration float64)

	// RecordWorkerFailure records a worker that failed to deliver its partial result.
	RecordWorkerFailure(mode Mode)
}

// JournalMetrics defines metrics for the run journal.
type JournalMetrics interface {
	// RecordJournalWrite records a journal append attempt.
	//
	// Parameters:
	//   - backend: Journal backend ("file", "kv")
	//   - success: true if the entry was persisted
	RecordJournalWrite(backend string, success bool)
}
