// Package natsutil classifies NATS client errors.
package natsutil

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/SanaBenHammouda/PI-With-Monte-Carlo/types"
)

// IsConnectivityError reports whether err is caused by a lost or missing
// NATS connection (timeouts, refused connections, closed connections).
//
// Kept outside types/ so that package stays free of NATS imports.
func IsConnectivityError(err error) bool {
	if err == nil {
		return false
	}

	return errors.Is(err, types.ErrConnectivity) ||
		errors.Is(err, nats.ErrTimeout) ||
		errors.Is(err, nats.ErrNoServers) ||
		errors.Is(err, nats.ErrDisconnected) ||
		errors.Is(err, nats.ErrConnectionClosed) ||
		errors.Is(err, jetstream.ErrNoStreamResponse) ||
		errors.Is(err, jetstream.ErrJetStreamNotEnabled) ||
		strings.Contains(err.Error(), "connection refused") ||
		strings.Contains(err.Error(), "i/o timeout")
}

// Classify tags connectivity failures with types.ErrConnectivity so callers
// can match them with errors.Is. Other errors are returned unchanged.
func Classify(err error) error {
	if err == nil || errors.Is(err, types.ErrConnectivity) || !IsConnectivityError(err) {
		return err
	}

	return fmt.Errorf("%w: %w", types.ErrConnectivity, err)
}
