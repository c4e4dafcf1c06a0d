// Package cpumon samples system CPU utilization while a workload runs.
package cpumon

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"

	"github.com/SanaBenHammouda/PI-With-Monte-Carlo/internal/logger"
	"github.com/SanaBenHammouda/PI-With-Monte-Carlo/types"
)

// DefaultInterval is the sampling interval used when none is given.
const DefaultInterval = 100 * time.Millisecond

// ErrAlreadyStarted is returned when Start is called on a running monitor.
var ErrAlreadyStarted = errors.New("cpu monitor already started")

// Sampler measures CPU utilization over interval and returns a percentage in [0, 100].
type Sampler func(ctx context.Context, interval time.Duration) (float64, error)

// SystemSampler measures whole-system CPU utilization with gopsutil.
func SystemSampler(ctx context.Context, interval time.Duration) (float64, error) {
	percents, err := cpu.PercentWithContext(ctx, interval, false)
	if err != nil {
		return 0, err
	}
	if len(percents) == 0 {
		return 0, errors.New("no cpu measurement returned")
	}

	return percents[0], nil
}

// Sample is one measurement.
type Sample struct {
	// Offset is the time since Start at which the measurement completed.
	Offset  time.Duration `json:"offset"`
	Percent float64       `json:"percent"`
}

// Stats summarizes a monitoring session.
type Stats struct {
	Avg      float64       `json:"avg"`
	Max      float64       `json:"max"`
	Min      float64       `json:"min"`
	Duration time.Duration `json:"duration"`
	Count    int           `json:"count"`
}

// Report holds every sample of a session and its summary.
type Report struct {
	Samples []Sample `json:"samples"`
	Stats   Stats    `json:"stats"`
}

// Option configures a Monitor.
type Option func(*Monitor)

// WithSampler replaces the gopsutil sampler.
func WithSampler(s Sampler) Option {
	return func(m *Monitor) {
		m.sampler = s
	}
}

// WithLogger sets the logger used for sampling errors.
func WithLogger(l types.Logger) Option {
	return func(m *Monitor) {
		m.logger = l
	}
}

// Monitor samples CPU utilization in a background goroutine.
type Monitor struct {
	interval time.Duration
	sampler  Sampler
	logger   types.Logger

	mu      sync.Mutex
	samples []Sample
	start   time.Time
	cancel  context.CancelFunc
	done    chan struct{}
}

// New creates a monitor sampling every interval (DefaultInterval if <= 0).
func New(interval time.Duration, opts ...Option) *Monitor {
	if interval <= 0 {
		interval = DefaultInterval
	}
	m := &Monitor{interval: interval, sampler: SystemSampler}
	for _, opt := range opts {
		opt(m)
	}
	m.logger = logger.OrNop(m.logger)

	return m
}

// Start begins sampling. Any samples from a previous session are discarded.
func (m *Monitor) Start(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.cancel != nil {
		return ErrAlreadyStarted
	}

	ctx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.samples = nil
	m.start = time.Now()
	m.done = make(chan struct{})

	go m.loop(ctx, m.start, m.done)

	return nil
}

func (m *Monitor) loop(ctx context.Context, start time.Time, done chan struct{}) {
	defer close(done)

	for ctx.Err() == nil {
		pct, err := m.sampler(ctx, m.interval)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			m.logger.Warn("cpu sample failed", "error", err)
			select {
			case <-ctx.Done():
				return
			case <-time.After(m.interval):
			}

			continue
		}

		m.mu.Lock()
		m.samples = append(m.samples, Sample{Offset: time.Since(start), Percent: pct})
		m.mu.Unlock()
	}
}

// Stop ends sampling and returns the session report.
//
// Stop on a monitor that was never started returns an empty report.
func (m *Monitor) Stop() Report {
	m.mu.Lock()
	cancel, done := m.cancel, m.done
	m.mu.Unlock()

	if cancel == nil {
		return Report{}
	}
	cancel()
	<-done

	m.mu.Lock()
	defer m.mu.Unlock()
	m.cancel = nil

	samples := make([]Sample, len(m.samples))
	copy(samples, m.samples)

	return Report{Samples: samples, Stats: Summarize(samples)}
}

// Summarize computes the statistics of a sample set.
func Summarize(samples []Sample) Stats {
	if len(samples) == 0 {
		return Stats{}
	}

	s := Stats{Min: samples[0].Percent, Max: samples[0].Percent, Count: len(samples)}
	var sum float64
	for _, smp := range samples {
		sum += smp.Percent
		s.Min = min(s.Min, smp.Percent)
		s.Max = max(s.Max, smp.Percent)
	}
	s.Avg = sum / float64(len(samples))
	s.Duration = samples[len(samples)-1].Offset

	return s
}

// Measure runs fn while monitoring CPU utilization.
//
// After fn returns, sampling continues for two more intervals so the tail of
// the workload is captured.
//
// Returns:
//   - Report: Samples and stats of the session
//   - time.Duration: Wall time of fn alone
//   - error: The error returned by fn
func Measure(ctx context.Context, interval time.Duration, fn func(ctx context.Context) error, opts ...Option) (Report, time.Duration, error) {
	m := New(interval, opts...)
	if err := m.Start(ctx); err != nil {
		return Report{}, 0, err
	}

	start := time.Now()
	err := fn(ctx)
	elapsed := time.Since(start)

	select {
	case <-ctx.Done():
	case <-time.After(2 * m.interval):
	}

	return m.Stop(), elapsed, err
}
