// Package testing provides test utilities for the montecarlo module.
//
// It follows the convention of net/http/httptest: helpers that other
// packages' tests import.
//
// Key utilities:
//   - StartEmbeddedNATS: Single in-process NATS server with JetStream, for
//     the KV journal
//   - NewJetStream: JetStream handle bound to a test connection
//   - NewTestLogger: Logger writing to t.Logf
//   - RecordingMetrics: MetricsCollector that counts calls for assertions
//
// Example usage:
//
//	import mctest "github.com/SanaBenHammouda/PI-With-Monte-Carlo/testing"
//
//	func TestJournal(t *testing.T) {
//	    _, nc := mctest.StartEmbeddedNATS(t)
//	    js := mctest.NewJetStream(t, nc)
//	    // ...
//	}
package testing
