package metrics

import (
	"context"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SanaBenHammouda/PI-With-Monte-Carlo/types"
)

func TestPrometheusCollector_LazyRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	p := NewPrometheus(reg, "")

	families, err := reg.Gather()
	require.NoError(t, err)
	require.Empty(t, families)

	p.RecordWorkerFailure(types.ModeProcess)
	require.InDelta(t, 1, testutil.ToFloat64(p.workerFailures.WithLabelValues("process")), 0)

	count, err := testutil.GatherAndCount(reg, "montepi_worker_failures_total")
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestPrometheusCollector_Run(t *testing.T) {
	reg := prometheus.NewRegistry()
	p := NewPrometheus(reg, "test")

	p.RecordRun(types.ModeThreaded, 8, 1000, 0.5, true)
	p.RecordRun(types.ModeThreaded, 4, 1000, 0.1, false)

	assert.InDelta(t, 1, testutil.ToFloat64(p.runs.WithLabelValues("threaded", "success")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(p.runs.WithLabelValues("threaded", "failure")), 0)
	assert.InDelta(t, 1000, testutil.ToFloat64(p.runSamples.WithLabelValues("threaded")), 0)
	assert.InDelta(t, 4, testutil.ToFloat64(p.runWorkers.WithLabelValues("threaded")), 0)

	count, err := testutil.GatherAndCount(reg, "test_run_duration_seconds")
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestPrometheusCollector_Estimate(t *testing.T) {
	p := NewPrometheus(prometheus.NewRegistry(), "")

	p.RecordEstimate(types.ModeSequential, 3.0)

	assert.InDelta(t, 3.0, testutil.ToFloat64(p.estimate.WithLabelValues("sequential")), 0)
	assert.InDelta(t, math.Pi-3.0, testutil.ToFloat64(p.estimateError.WithLabelValues("sequential")), 1e-12)
}

func TestPrometheusCollector_WorkerAndJournal(t *testing.T) {
	p := NewPrometheus(prometheus.NewRegistry(), "")

	p.RecordWorker(types.ModeProcess, 250, 0.01)
	p.RecordWorker(types.ModeProcess, 250, 0.02)
	p.RecordJournalWrite("kv", true)
	p.RecordJournalWrite("file", false)

	assert.InDelta(t, 500, testutil.ToFloat64(p.workerSamples.WithLabelValues("process")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(p.journalWrites.WithLabelValues("kv", "success")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(p.journalWrites.WithLabelValues("file", "failure")), 0)
}

func TestServer_Handler(t *testing.T) {
	reg := prometheus.NewRegistry()
	p := NewPrometheus(reg, "")
	p.RecordEstimate(types.ModeThreaded, 3.14)

	srv := httptest.NewServer(NewServer(":0", reg, nil).Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, string(body), `montepi_estimate{mode="threaded"} 3.14`)

	resp, err = http.Get(srv.URL + "/health")
	require.NoError(t, err)
	body, err = io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	require.NoError(t, err)
	require.Equal(t, "OK\n", string(body))
}

func TestServer_StartStopsOnCancel(t *testing.T) {
	s := NewServer("127.0.0.1:0", prometheus.NewRegistry(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Start(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(15 * time.Second):
		t.Fatal("server did not stop")
	}
}
