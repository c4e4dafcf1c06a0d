// Package testutil provides shared assertion helpers for integration and
// stress tests.
//
// Note: For NATS server setup, use the montecarlo testing package.
// This package is specifically for cross-package test scenarios.
package testutil
