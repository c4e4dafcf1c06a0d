// Package metrics provides MetricsCollector implementations and the HTTP
// endpoint that exposes them.
package metrics

import "github.com/SanaBenHammouda/PI-With-Monte-Carlo/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. It is the estimator's default collector.
type NopMetrics struct{}

var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Example:
//
//	est := montecarlo.NewEstimator(&cfg, montecarlo.WithMetrics(metrics.NewNop()))
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// RecordRun discards the run metric.
func (n *NopMetrics) RecordRun(_ types.Mode, _ int, _ uint64, _ float64, _ bool) {}

// RecordEstimate discards the estimate metric.
func (n *NopMetrics) RecordEstimate(_ types.Mode, _ float64) {}

// RecordWorker discards the worker metric.
func (n *NopMetrics) RecordWorker(_ types.Mode, _ uint64, _ float64) {}

// RecordWorkerFailure discards the worker failure metric.
func (n *NopMetrics) RecordWorkerFailure(_ types.Mode) {}

// RecordJournalWrite discards the journal metric.
func (n *NopMetrics) RecordJournalWrite(_ string, _ bool) {}
