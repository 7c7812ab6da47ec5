package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitLogger(t *testing.T) {
	original := Logger
	t.Cleanup(func() { Logger = original })

	tests := []struct {
		name     string
		level    string
		wantInfo bool
	}{
		{"default level", "", true},
		{"debug level", "debug", true},
		{"error level hides info", "error", false},
		{"unknown level falls back to info", "loud", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LOG_LEVEL", tt.level)

			require.NoError(t, InitLogger())
			require.NotNil(t, Logger)
			assert.Equal(t, tt.wantInfo, Logger.Unwrap().Core().Enabled(zapcore.InfoLevel))
		})
	}
}

func TestSafeLogger_WritesThrough(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := New(zap.New(core))

	logger.Debug("debug message")
	logger.Info("otp issued", zap.String("mobile", "98******10"))
	logger.Warn("warn message")
	logger.Error("error message")

	entries := logs.All()
	require.Len(t, entries, 4)
	assert.Equal(t, "otp issued", entries[1].Message)
	assert.Equal(t, "98******10", entries[1].ContextMap()["mobile"])
	assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)
}

func TestSafeLogger_With(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := New(zap.New(core)).With(zap.String("component", "otp"))

	logger.Info("hello")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "otp", logs.All()[0].ContextMap()["component"])
}

func TestSafeLogger_NilSafe(t *testing.T) {
	var nilLogger *SafeLogger
	empty := &SafeLogger{}

	for name, l := range map[string]*SafeLogger{"nil receiver": nilLogger, "nil zap logger": empty} {
		t.Run(name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				l.Debug("debug")
				l.Info("info")
				l.Warn("warn")
				l.Error("error")
				_ = l.With(zap.String("k", "v"))
			})
			assert.NotNil(t, l.Unwrap())
			assert.NoError(t, l.Sync())
		})
	}

	assert.Nil(t, nilLogger.With(zap.String("k", "v")))
	assert.Same(t, empty, empty.With(zap.String("k", "v")))
}

func TestGlobalLoggerStartsAsNop(t *testing.T) {
	require.NotNil(t, Logger)
	assert.NotPanics(t, func() {
		Logger.Info("before init")
	})
}
