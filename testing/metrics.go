package testing

import (
	"github.com/puzpuzpuz/xsync/v4"

	"github.com/SanaBenHammouda/PI-With-Monte-Carlo/types"
)

// RecordingMetrics is a MetricsCollector that counts every call.
//
// Counters are keyed by event name and label, for example "run/threaded/success"
// or "journal/kv/failure". It is safe for concurrent use.
type RecordingMetrics struct {
	counts    *xsync.Map[string, *xsync.Counter]
	estimates *xsync.Map[types.Mode, float64]
}

var _ types.MetricsCollector = (*RecordingMetrics)(nil)

// NewRecordingMetrics creates an empty recorder.
func NewRecordingMetrics() *RecordingMetrics {
	return &RecordingMetrics{
		counts:    xsync.NewMap[string, *xsync.Counter](),
		estimates: xsync.NewMap[types.Mode, float64](),
	}
}

func (m *RecordingMetrics) inc(key string) {
	c, _ := m.counts.LoadOrStore(key, xsync.NewCounter())
	c.Inc()
}

func result(success bool) string {
	if success {
		return "success"
	}

	return "failure"
}

// Count returns how many times the event key was recorded.
func (m *RecordingMetrics) Count(key string) int {
	c, ok := m.counts.Load(key)
	if !ok {
		return 0
	}

	return int(c.Value())
}

// LastEstimate returns the most recent estimate recorded for mode.
func (m *RecordingMetrics) LastEstimate(mode types.Mode) (float64, bool) {
	return m.estimates.Load(mode)
}

// RecordRun counts "run/<mode>/<result>".
func (m *RecordingMetrics) RecordRun(mode types.Mode, _ int, _ uint64, _ float64, success bool) {
	m.inc("run/" + mode.String() + "/" + result(success))
}

// RecordEstimate stores the estimate for mode.
func (m *RecordingMetrics) RecordEstimate(mode types.Mode, estimate float64) {
	m.estimates.Store(mode, estimate)
}

// RecordWorker counts "worker/<mode>".
func (m *RecordingMetrics) RecordWorker(mode types.Mode, _ uint64, _ float64) {
	m.inc("worker/" + mode.String())
}

// RecordWorkerFailure counts "worker_failure/<mode>".
func (m *RecordingMetrics) RecordWorkerFailure(mode types.Mode) {
	m.inc("worker_failure/" + mode.String())
}

// RecordJournalWrite counts "journal/<backend>/<result>".
func (m *RecordingMetrics) RecordJournalWrite(backend string, success bool) {
	m.inc("journal/" + backend + "/" + result(success))
}
