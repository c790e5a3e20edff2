package telemetry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.34.0"
)

func attrValue(res *sdkresource.Resource, key attribute.Key) (string, bool) {
	for _, attr := range res.Attributes() {
		if attr.Key == key {
			return attr.Value.AsString(), true
		}
	}

	return "", false
}

func TestNewResource(t *testing.T) {
	t.Run("sets service name and network", func(t *testing.T) {
		res, err := newResource("blockarchive", "polkadot")
		require.NoError(t, err)

		name, ok := attrValue(res, semconv.ServiceNameKey)
		require.True(t, ok, "Service name attribute not found in resource")
		assert.Equal(t, "blockarchive", name)

		network, ok := attrValue(res, NetworkKey)
		require.True(t, ok, "network attribute not found in resource")
		assert.Equal(t, "polkadot", network)
	})

	t.Run("omits an empty network", func(t *testing.T) {
		res, err := newResource("blockarchive", "")
		require.NoError(t, err)

		_, ok := attrValue(res, NetworkKey)
		assert.False(t, ok)
	})
}

func TestInit(t *testing.T) {
	originalMeterProvider := otel.GetMeterProvider()
	originalTracerProvider := otel.GetTracerProvider()
	t.Cleanup(func() {
		otel.SetMeterProvider(originalMeterProvider)
		otel.SetTracerProvider(originalTracerProvider)
	})

	shutdownFunc, err := Init(t.Context(), "test-service", "testnet", WithOTLP())
	if err != nil {
		// Exporter construction may fail in sandboxes without network access.
		t.Logf("Init() failed: %v", err)
		return
	}

	require.NotNil(t, shutdownFunc)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := shutdownFunc(shutdownCtx); err != nil {
		// Flushing to an absent collector times out.
		t.Logf("ShutdownFunc() returned error: %v", err)
	}
}

func TestInit_Prometheus(t *testing.T) {
	originalMeterProvider := otel.GetMeterProvider()
	t.Cleanup(func() { otel.SetMeterProvider(originalMeterProvider) })

	t.Run("global instruments are gathered from the registry", func(t *testing.T) {
		reg := prometheus.NewRegistry()

		shutdownFunc, err := Init(t.Context(), "test-service", "testnet", WithPrometheus(reg))
		require.NoError(t, err)
		defer func() { assert.NoError(t, shutdownFunc(context.Background())) }()

		counter, err := otel.Meter("telemetry_test").Int64Counter("blockarchive.blocks.archived", metric.WithUnit("{block}"))
		require.NoError(t, err)
		counter.Add(t.Context(), 3, metric.WithAttributes(attribute.String("stream", "backfill")))

		families, err := reg.Gather()
		require.NoError(t, err)

		var values []float64
		for _, mf := range families {
			if mf.GetName() != "blockarchive_blocks_archived_total" {
				continue
			}
			for _, m := range mf.GetMetric() {
				values = append(values, m.GetCounter().GetValue())
			}
		}
		assert.Equal(t, []float64{3}, values, "archived counter not exported")
	})

	t.Run("no exporter selected registers nothing", func(t *testing.T) {
		before := otel.GetMeterProvider()

		shutdownFunc, err := Init(t.Context(), "test-service", "testnet")
		require.NoError(t, err)
		assert.NoError(t, shutdownFunc(t.Context()))
		assert.Equal(t, before, otel.GetMeterProvider())
	})
}

func TestShutdownAll(t *testing.T) {
	t.Run("stops sdk providers", func(t *testing.T) {
		mp := sdkmetric.NewMeterProvider()
		tp := sdktrace.NewTracerProvider()

		ctx, cancel := context.WithTimeout(t.Context(), time.Second)
		defer cancel()

		assert.NoError(t, shutdownAll(mp.Shutdown, tp.Shutdown)(ctx))
	})

	t.Run("calls every function and joins errors", func(t *testing.T) {
		errA := errors.New("a")
		errB := errors.New("b")
		calls := 0

		fn := shutdownAll(
			func(context.Context) error { calls++; return errA },
			Noop,
			func(context.Context) error { calls++; return errB },
		)

		err := fn(t.Context())
		assert.ErrorIs(t, err, errA)
		assert.ErrorIs(t, err, errB)
		assert.Equal(t, 2, calls)
	})
}
