package archiver

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/gabapcia/blockarchive/internal/archiver"

type metrics struct {
	archived     metric.Int64Counter
	failures     metric.Int64Counter
	duration     metric.Float64Histogram
	payloadBytes metric.Int64Histogram
}

// newMetrics registers the archiver instruments on the global MeterProvider.
// Instruments that fail to register fall back to no-ops.
func newMetrics() *metrics {
	meter := otel.Meter(instrumentationName)

	archived, err := meter.Int64Counter("blockarchive.blocks.archived",
		metric.WithDescription("Blocks archived and recorded"),
		metric.WithUnit("{block}"),
	)
	otel.Handle(err)

	failures, err := meter.Int64Counter("blockarchive.archive.failures",
		metric.WithDescription("Failed archive attempts"),
		metric.WithUnit("{attempt}"),
	)
	otel.Handle(err)

	duration, err := meter.Float64Histogram("blockarchive.archive.duration",
		metric.WithDescription("Time to fetch, pack, submit and record one block"),
		metric.WithUnit("s"),
	)
	otel.Handle(err)

	payloadBytes, err := meter.Int64Histogram("blockarchive.payload.size",
		metric.WithDescription("Size of the compressed archive payload"),
		metric.WithUnit("By"),
	)
	otel.Handle(err)

	return &metrics{
		archived:     archived,
		failures:     failures,
		duration:     duration,
		payloadBytes: payloadBytes,
	}
}

func streamAttr(kind StreamKind) metric.MeasurementOption {
	return metric.WithAttributes(attribute.String("stream", kind.String()))
}

func (m *metrics) recordArchived(ctx context.Context, kind StreamKind, started time.Time) {
	m.archived.Add(ctx, 1, streamAttr(kind))
	m.duration.Record(ctx, time.Since(started).Seconds(), streamAttr(kind))
}

func (m *metrics) recordPayload(ctx context.Context, kind StreamKind, size int) {
	m.payloadBytes.Record(ctx, int64(size), streamAttr(kind))
}

func (m *metrics) recordFailure(ctx context.Context, kind StreamKind, permanent bool) {
	m.failures.Add(ctx, 1, metric.WithAttributes(
		attribute.String("stream", kind.String()),
		attribute.Bool("permanent", permanent),
	))
}
