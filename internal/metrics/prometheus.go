package metrics

import (
	"math"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/SanaBenHammouda/PI-With-Monte-Carlo/types"
)

// DefaultNamespace is the Prometheus namespace used when none is given.
const DefaultNamespace = "montepi"

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
//
// Metrics are created and registered lazily on first use, so constructing a
// collector that is never used leaves the registry untouched.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	runs           *prometheus.CounterVec
	runDuration    *prometheus.HistogramVec
	runSamples     *prometheus.CounterVec
	runWorkers     *prometheus.GaugeVec
	estimate       *prometheus.GaugeVec
	estimateError  *prometheus.GaugeVec
	workerSamples  *prometheus.CounterVec
	workerDuration *prometheus.HistogramVec
	workerFailures *prometheus.CounterVec
	journalWrites  *prometheus.CounterVec
}

var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer interface (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Prometheus metrics namespace (defaults to "montepi" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = DefaultNamespace
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		factory := promauto.With(p.reg)

		p.runs = factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "run",
			Name:      "total",
			Help:      "Total estimator invocations by mode and result (success, failure).",
		}, []string{"mode", "result"})

		p.runDuration = factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "run",
			Name:      "duration_seconds",
			Help:      "Wall time of estimator invocations in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2.5, 12), // 1ms .. ~60s
		}, []string{"mode"})

		p.runSamples = factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "run",
			Name:      "samples_total",
			Help:      "Total samples requested by successful invocations.",
		}, []string{"mode"})

		p.runWorkers = factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "run",
			Name:      "workers",
			Help:      "Worker count of the most recent invocation.",
		}, []string{"mode"})

		p.estimate = factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Name:      "estimate",
			Help:      "Most recent estimate of pi.",
		}, []string{"mode"})

		p.estimateError = factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Name:      "estimate_abs_error",
			Help:      "Absolute error of the most recent estimate against math.Pi.",
		}, []string{"mode"})

		p.workerSamples = factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "worker",
			Name:      "samples_total",
			Help:      "Total samples drawn by workers.",
		}, []string{"mode"})

		p.workerDuration = factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "worker",
			Name:      "duration_seconds",
			Help:      "Wall time of individual workers in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2.5, 12),
		}, []string{"mode"})

		p.workerFailures = factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "worker",
			Name:      "failures_total",
			Help:      "Total workers that failed to deliver a partial result.",
		}, []string{"mode"})

		p.journalWrites = factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "journal",
			Name:      "writes_total",
			Help:      "Journal append attempts by backend and result (success, failure).",
		}, []string{"backend", "result"})
	})
}

func resultLabel(success bool) string {
	if success {
		return "success"
	}

	return "failure"
}

// RecordRun records a finished invocation.
func (p *PrometheusCollector) RecordRun(mode types.Mode, workers int, samples uint64, duration float64, success bool) {
	p.ensureRegistered()
	m := mode.String()
	p.runs.WithLabelValues(m, resultLabel(success)).Inc()
	p.runDuration.WithLabelValues(m).Observe(duration)
	p.runWorkers.WithLabelValues(m).Set(float64(workers))
	if success {
		p.runSamples.WithLabelValues(m).Add(float64(samples))
	}
}

// RecordEstimate sets the most recent estimate and its error for mode.
func (p *PrometheusCollector) RecordEstimate(mode types.Mode, estimate float64) {
	p.ensureRegistered()
	p.estimate.WithLabelValues(mode.String()).Set(estimate)
	p.estimateError.WithLabelValues(mode.String()).Set(math.Abs(estimate - math.Pi))
}

// RecordWorker records one worker's completion.
func (p *PrometheusCollector) RecordWorker(mode types.Mode, samples uint64, duration float64) {
	p.ensureRegistered()
	p.workerSamples.WithLabelValues(mode.String()).Add(float64(samples))
	p.workerDuration.WithLabelValues(mode.String()).Observe(duration)
}

// RecordWorkerFailure increments the worker failure counter.
func (p *PrometheusCollector) RecordWorkerFailure(mode types.Mode) {
	p.ensureRegistered()
	p.workerFailures.WithLabelValues(mode.String()).Inc()
}

// RecordJournalWrite records a journal append attempt.
func (p *PrometheusCollector) RecordJournalWrite(backend string, success bool) {
	p.ensureRegistered()
	p.journalWrites.WithLabelValues(backend, resultLabel(success)).Inc()
}
