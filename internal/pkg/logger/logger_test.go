package logger

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// resetLogger resets the global logger state for testing
func resetLogger() {
	baseLogger = zap.NewNop().Sugar()
	initBaseLoggerOnce = sync.Once{}
}

// observe swaps the base logger for an in-memory one and returns the captured entries.
func observe(t *testing.T) *observer.ObservedLogs {
	t.Helper()

	core, logs := observer.New(zapcore.DebugLevel)
	previous := baseLogger
	baseLogger = zap.New(core).Sugar()
	t.Cleanup(func() { baseLogger = previous })

	return logs
}

func spanContext(t *testing.T) trace.SpanContext {
	t.Helper()

	traceID, err := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	require.NoError(t, err)
	spanID, err := trace.SpanIDFromHex("00f067aa0ba902b7")
	require.NoError(t, err)

	return trace.NewSpanContext(trace.SpanContextConfig{TraceID: traceID, SpanID: spanID})
}

func TestInit(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		t.Run("successful initialization with "+level+" level", func(t *testing.T) {
			resetLogger()
			require.NoError(t, Init(level))
			assert.True(t, baseLogger.Desugar().Core().Enabled(zapcore.ErrorLevel))
		})
	}

	t.Run("error with invalid level", func(t *testing.T) {
		resetLogger()
		assert.Error(t, Init("invalid"))
		assert.False(t, baseLogger.Desugar().Core().Enabled(zapcore.FatalLevel), "logger should stay a no-op")
	})

	t.Run("init only once", func(t *testing.T) {
		resetLogger()

		require.NoError(t, Init("debug"))
		firstLogger := baseLogger

		require.NoError(t, Init("error"))
		assert.Same(t, firstLogger, baseLogger, "Init() should only initialize once")
	})
}

func TestUninitialized(t *testing.T) {
	resetLogger()

	assert.NotPanics(t, func() {
		Info(t.Context(), "dropped", "key", "value")
		_ = Sync()
	})
}

func TestDerive(t *testing.T) {
	t.Run("derived fields are attached to every entry", func(t *testing.T) {
		logs := observe(t)

		ctx := Derive(t.Context(), "stream", "livesync")
		Info(ctx, "archived", "height", 42)

		entries := logs.All()
		require.Len(t, entries, 1)
		assert.Equal(t, "archived", entries[0].Message)
		assert.Equal(t, map[string]any{"stream": "livesync", "height": int64(42)}, entries[0].ContextMap())
	})

	t.Run("derivations accumulate", func(t *testing.T) {
		logs := observe(t)

		ctx := Derive(Derive(t.Context(), "a", "1"), "b", "2")
		Warn(ctx, "nested")

		require.Equal(t, 1, logs.Len())
		assert.Equal(t, map[string]any{"a": "1", "b": "2"}, logs.All()[0].ContextMap())
	})

	t.Run("context stores a sugared logger", func(t *testing.T) {
		derivedCtx := Derive(t.Context())

		l, ok := derivedCtx.Value(ctxKey).(*zap.SugaredLogger)
		assert.True(t, ok)
		assert.NotNil(t, l)
	})
}

func TestTraceIntegration(t *testing.T) {
	t.Run("attaches trace and span ids of a valid span context", func(t *testing.T) {
		logs := observe(t)

		ctx := trace.ContextWithSpanContext(t.Context(), spanContext(t))
		Error(ctx, "with span")

		fields := logs.All()[0].ContextMap()
		assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", fields["trace_id"])
		assert.Equal(t, "00f067aa0ba902b7", fields["span_id"])
	})

	t.Run("skips invalid span contexts", func(t *testing.T) {
		logs := observe(t)

		traceID, _ := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
		ctx := trace.ContextWithSpanContext(t.Context(), trace.NewSpanContext(trace.SpanContextConfig{TraceID: traceID}))
		Info(ctx, "trace id only")

		assert.NotContains(t, logs.All()[0].ContextMap(), "trace_id")
	})

	t.Run("derived context keeps reporting the span", func(t *testing.T) {
		logs := observe(t)

		ctx := Derive(trace.ContextWithSpanContext(t.Context(), spanContext(t)), "derived", "value")
		Debug(ctx, "derived with span")

		fields := logs.All()[0].ContextMap()
		assert.Equal(t, "value", fields["derived"])
		assert.Equal(t, "00f067aa0ba902b7", fields["span_id"])
	})
}

func TestLevels(t *testing.T) {
	logs := observe(t)
	ctx := t.Context()

	Debug(ctx, "d")
	Info(ctx, "i")
	Warn(ctx, "w")
	Error(ctx, "e")

	var levels []zapcore.Level
	for _, entry := range logs.All() {
		levels = append(levels, entry.Level)
	}

	assert.Equal(t, []zapcore.Level{zapcore.DebugLevel, zapcore.InfoLevel, zapcore.WarnLevel, zapcore.ErrorLevel}, levels)
}

func TestPanic(t *testing.T) {
	observe(t)

	assert.Panics(t, func() {
		Panic(Derive(t.Context(), "context", "derived"), "panic message", "key", "value")
	}, "Panic() should panic")
}

func TestEdgeCases(t *testing.T) {
	observe(t)
	ctx := t.Context()

	assert.NotPanics(t, func() {
		Info(ctx, "test message", "key", nil)
		Info(ctx, "")
		Info(ctx, "test message", "key1", "value1", "key2")
		Info(ctx, "test message", "complex", map[string]any{"nested": map[string]string{"key": "value"}})
	})
}

func TestFatal(t *testing.T) {
	if os.Getenv("TEST_FATAL_SUBPROCESS") == "1" {
		_ = Init("debug")
		Fatal(Derive(context.Background(), "context", "derived"), "fatal error for test", "key", "value")
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestFatal")
	cmd.Env = append(os.Environ(), "TEST_FATAL_SUBPROCESS=1")

	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	err := cmd.Run()
	exitErr, ok := err.(*exec.ExitError)
	require.True(t, ok, "the subprocess should exit with a non-zero status")
	assert.Equal(t, 1, exitErr.ExitCode(), "logger.Fatal should terminate with exit code 1")
	assert.Contains(t, stdout.String(), `"level":"fatal"`)
	assert.Contains(t, stdout.String(), `"context":"derived"`)
}
