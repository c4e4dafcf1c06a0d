//go:build integration

package integration_test

import (
	"os"
	"testing"

	"github.com/SanaBenHammouda/PI-With-Monte-Carlo/strategy"
)

func TestMain(m *testing.M) {
	strategy.RunWorkerMain()
	os.Exit(m.Run())
}
