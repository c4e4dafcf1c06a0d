// Package racedemo shows why the estimator never shares a counter between
// workers.
//
// UnguardedCounter increments a plain integer from many goroutines and loses
// updates. MutexCounter and StripedCounter are the two correct
// alternatives. The estimator itself uses none of them: each worker owns its
// own count and the coordinator sums the partial results.
package racedemo

import (
	"fmt"
	"io"
	"runtime"
	"sync"
	"time"

	"github.com/puzpuzpuz/xsync/v4"
)

// Counter is incremented concurrently by Run.
type Counter interface {
	Inc()
	Value() int64
}

// UnguardedCounter is a plain read-modify-write counter.
//
// It is deliberately unsafe for concurrent use and exists only to be
// compared against the guarded counters. Running it under the race detector
// reports a data race.
type UnguardedCounter struct {
	n int64
}

// Inc performs a non-atomic increment, yielding between the read and the
// write so interleavings are frequent.
func (c *UnguardedCounter) Inc() {
	v := c.n
	runtime.Gosched()
	c.n = v + 1
}

func (c *UnguardedCounter) Value() int64 { return c.n }

// MutexCounter serializes every increment through a mutex.
type MutexCounter struct {
	mu sync.Mutex
	n  int64
}

func (c *MutexCounter) Inc() {
	c.mu.Lock()
	c.n++
	c.mu.Unlock()
}

func (c *MutexCounter) Value() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.n
}

// StripedCounter spreads increments over cache-line padded stripes.
type StripedCounter struct {
	c *xsync.Counter
}

// NewStripedCounter returns a zeroed striped counter.
func NewStripedCounter() *StripedCounter {
	return &StripedCounter{c: xsync.NewCounter()}
}

func (c *StripedCounter) Inc()         { c.c.Inc() }
func (c *StripedCounter) Value() int64 { return c.c.Value() }

// Outcome is the result of one demonstration run.
type Outcome struct {
	Name     string
	Expected int64
	Observed int64
	Elapsed  time.Duration
}

// Lost is the number of increments that did not reach the counter.
func (o Outcome) Lost() int64 {
	return o.Expected - o.Observed
}

// Run increments counter increments times from each of workers goroutines.
//
// Parameters:
//   - counter: Counter under test
//   - workers: Number of goroutines (at least 1)
//   - increments: Increments per goroutine
//
// Returns:
//   - Outcome: Expected and observed totals
func Run(counter Counter, workers, increments int) Outcome {
	workers = max(workers, 1)

	var wg sync.WaitGroup
	start := time.Now()
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range increments {
				counter.Inc()
			}
		}()
	}
	wg.Wait()

	return Outcome{
		Name:     fmt.Sprintf("%T", counter),
		Expected: int64(workers) * int64(increments),
		Observed: counter.Value(),
		Elapsed:  time.Since(start),
	}
}

// Demo runs the three counters with the same load and returns their outcomes
// in unguarded, mutex, striped order.
func Demo(workers, increments int) []Outcome {
	named := []struct {
		name string
		c    Counter
	}{
		{"unguarded", &UnguardedCounter{}},
		{"mutex", &MutexCounter{}},
		{"striped", NewStripedCounter()},
	}

	outcomes := make([]Outcome, 0, len(named))
	for _, n := range named {
		o := Run(n.c, workers, increments)
		o.Name = n.name
		outcomes = append(outcomes, o)
	}

	return outcomes
}

// WriteOutcomes prints one line per outcome.
func WriteOutcomes(w io.Writer, outcomes []Outcome) error {
	for _, o := range outcomes {
		status := "ok"
		if o.Lost() != 0 {
			status = "LOST UPDATES"
		}
		if _, err := fmt.Fprintf(w, "%-10s expected=%d observed=%d lost=%d elapsed=%s %s\n",
			o.Name, o.Expected, o.Observed, o.Lost(), o.Elapsed.Round(time.Microsecond), status); err != nil {
			return err
		}
	}

	return nil
}
