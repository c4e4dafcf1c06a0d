// Package types provides core type definitions and interfaces for the montecarlo module.
//
// The types live in their own package so that the strategy, source, journal
// and internal packages can share them without importing the root package.
//
// Key types:
//   - Partition: Per-worker sample shares for one invocation
//   - Task / PartialResult: What a worker is asked to do and what it reports
//   - Result: The reduced outcome of one invocation
//   - Strategy: Execution strategy (sequential, threaded, process)
//   - PointSource: Stream of random points consumed by a worker
//   - Logger, MetricsCollector, Journal: Ambient collaborators
package types
