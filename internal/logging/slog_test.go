package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTextLogger(level slog.Level) (*SlogLogger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	handler := slog.NewTextHandler(buf, &slog.HandlerOptions{Level: level})

	return NewSlog(slog.New(handler)), buf
}

func TestSlogLogger_Levels(t *testing.T) {
	tests := []struct {
		name  string
		log   func(l *SlogLogger)
		level string
		attr  string
	}{
		{"debug", func(l *SlogLogger) { l.Debug("sampling", "worker_id", 2) }, "level=DEBUG", "worker_id=2"},
		{"info", func(l *SlogLogger) { l.Info("run complete", "mode", "threaded") }, "level=INFO", "mode=threaded"},
		{"warn", func(l *SlogLogger) { l.Warn("journal unavailable", "backend", "kv") }, "level=WARN", "backend=kv"},
		{"error", func(l *SlogLogger) { l.Error("worker failed", "error", "exit status 3") }, "level=ERROR", "error=\"exit status 3\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, buf := newTextLogger(slog.LevelDebug)
			tt.log(l)

			out := buf.String()
			assert.Contains(t, out, tt.level)
			assert.Contains(t, out, tt.attr)
		})
	}
}

func TestSlogLogger_LevelFiltering(t *testing.T) {
	l, buf := newTextLogger(slog.LevelWarn)

	l.Debug("debug message")
	l.Info("info message")
	assert.Empty(t, buf.String())

	l.Warn("warn message")
	l.Error("error message")
	assert.Contains(t, buf.String(), "warn message")
	assert.Contains(t, buf.String(), "error message")
}

func TestNewSlogDefault(t *testing.T) {
	require.NotNil(t, NewSlogDefault().logger)
}

func TestNew(t *testing.T) {
	t.Run("json format", func(t *testing.T) {
		buf := &bytes.Buffer{}
		l, err := New("debug", "json", buf)
		require.NoError(t, err)

		l.Debug("estimate", "value", 3.14)

		var rec map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
		assert.Equal(t, "estimate", rec["msg"])
		assert.Equal(t, "DEBUG", rec["level"])
		assert.InDelta(t, 3.14, rec["value"], 1e-9)
	})

	t.Run("text format filters below level", func(t *testing.T) {
		buf := &bytes.Buffer{}
		l, err := New("WARN", "text", buf)
		require.NoError(t, err)

		l.Info("hidden")
		l.Warn("shown")
		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "shown")
	})

	t.Run("rejects unknown values", func(t *testing.T) {
		_, err := New("verbose", "text", nil)
		require.Error(t, err)

		_, err = New("info", "xml", nil)
		require.Error(t, err)
	})
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"debug": slog.LevelDebug, "": slog.LevelInfo, "INFO": slog.LevelInfo,
		"warning": slog.LevelWarn, "error": slog.LevelError,
	} {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}
