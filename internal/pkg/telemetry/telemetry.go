// Package telemetry provides helpers to initialize OpenTelemetry metrics and
// tracing. Metrics can be pushed with OTLP over gRPC and pulled from a
// Prometheus registry; traces are pushed with OTLP. It creates a unified
// Resource for the archiver, registers global providers, and exposes a
// ShutdownFunc to cleanly flush and stop all telemetry pipelines.
//
// OTLP exporter endpoints are configured through the standard
// OTEL_EXPORTER_OTLP_* environment variables.
package telemetry

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.34.0"
)

// NetworkKey identifies the archived network on every exported signal.
const NetworkKey = attribute.Key("blockarchive.network")

type config struct {
	otlp       bool
	registerer prometheus.Registerer
}

// Option selects the exporters Init wires.
type Option func(*config)

// WithOTLP pushes metrics and traces over OTLP gRPC.
func WithOTLP() Option {
	return func(c *config) {
		c.otlp = true
	}
}

// WithPrometheus exposes every metric on reg, to be served by a /metrics handler.
func WithPrometheus(reg prometheus.Registerer) Option {
	return func(c *config) {
		c.registerer = reg
	}
}

// metricReaders builds one reader per enabled metric exporter.
func metricReaders(ctx context.Context, cfg config) ([]sdkmetric.Reader, error) {
	var readers []sdkmetric.Reader

	if cfg.otlp {
		exporter, err := otlpmetricgrpc.New(ctx)
		if err != nil {
			return nil, err
		}
		readers = append(readers, sdkmetric.NewPeriodicReader(exporter))
	}

	if cfg.registerer != nil {
		exporter, err := otelprom.New(otelprom.WithRegisterer(cfg.registerer))
		if err != nil {
			return nil, err
		}
		readers = append(readers, exporter)
	}

	return readers, nil
}

// initMeterProvider sets up a MeterProvider feeding every reader with
// the given Resource. It also registers the provider as the global
// MeterProvider.
func initMeterProvider(res *sdkresource.Resource, readers []sdkmetric.Reader) *sdkmetric.MeterProvider {
	opts := []sdkmetric.Option{sdkmetric.WithResource(res)}
	for _, r := range readers {
		opts = append(opts, sdkmetric.WithReader(r))
	}

	mp := sdkmetric.NewMeterProvider(opts...)

	otel.SetMeterProvider(mp)
	return mp
}

// initTracerProvider sets up an OTLP gRPC TracerProvider using a
// batched exporter and the given Resource. It also registers the
// provider as the global TracerProvider.
func initTracerProvider(ctx context.Context, res *sdkresource.Resource) (*sdktrace.TracerProvider, error) {
	exporter, err := otlptracegrpc.New(ctx)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	return tp, nil
}

// newResource constructs an OpenTelemetry Resource by merging the default
// system resource with the service name and, when known, the archived network.
func newResource(serviceName, network string) (*sdkresource.Resource, error) {
	attrs := []attribute.KeyValue{semconv.ServiceName(serviceName)}
	if network != "" {
		attrs = append(attrs, NetworkKey.String(network))
	}

	return sdkresource.Merge(
		sdkresource.Default(),
		sdkresource.NewWithAttributes(semconv.SchemaURL, attrs...),
	)
}

// ShutdownFunc defines a callback to flush and stop all telemetry providers.
// Call this function at application shutdown to ensure all telemetry is sent.
type ShutdownFunc func(ctx context.Context) error

// Noop is the ShutdownFunc returned when telemetry export is disabled.
func Noop(context.Context) error { return nil }

// Init configures the exporters selected by opts and registers the providers
// globally. Without any option nothing is registered and Noop is returned.
// The returned ShutdownFunc flushes and stops every provider.
//
// When a provider fails to start, any provider already started is shut down
// before the error is returned.
func Init(ctx context.Context, serviceName, network string, opts ...Option) (ShutdownFunc, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	readers, err := metricReaders(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if len(readers) == 0 {
		return Noop, nil
	}

	res, err := newResource(serviceName, network)
	if err != nil {
		return nil, err
	}

	mp := initMeterProvider(res, readers)
	if !cfg.otlp {
		return mp.Shutdown, nil
	}

	tp, err := initTracerProvider(ctx, res)
	if err != nil {
		return nil, errors.Join(err, mp.Shutdown(ctx))
	}

	return shutdownAll(mp.Shutdown, tp.Shutdown), nil
}

// shutdownAll calls every shutdown function and joins their errors.
func shutdownAll(fns ...ShutdownFunc) ShutdownFunc {
	return func(ctx context.Context) error {
		errs := make([]error, 0, len(fns))
		for _, fn := range fns {
			errs = append(errs, fn(ctx))
		}

		return errors.Join(errs...)
	}
}
