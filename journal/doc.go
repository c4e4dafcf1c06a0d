// Package journal provides run journal backends.
//
// A journal keeps one audit entry per estimator invocation. The package
// includes:
//
//   - File: JSON lines appended to a local file
//   - KV: Entries stored in a NATS JetStream KeyValue bucket under run.<id>
//   - Multi: Fan-out to several journals
//
// The estimator treats journal failures as non-fatal: they are logged and
// counted, and the estimate is still returned.
package journal
