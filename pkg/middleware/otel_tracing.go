package middleware

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/hyp3rd/neurketa"
	"github.com/hyp3rd/neurketa/internal/telemetry/attrs"
	"github.com/hyp3rd/neurketa/pkg/series"
	"github.com/hyp3rd/neurketa/pkg/stat"
)

// OTelTracingMiddleware wraps neurketa.Service methods with OpenTelemetry spans.
type OTelTracingMiddleware[T series.Sample] struct {
	next   neurketa.Service[T]
	tracer trace.Tracer
	// static attributes applied to all spans
	commonAttrs []attribute.KeyValue
}

// OTelTracingOption allows configuring the tracing middleware.
type OTelTracingOption[T series.Sample] func(*OTelTracingMiddleware[T])

// WithCommonAttributes sets attributes applied to all spans.
func WithCommonAttributes[T series.Sample](attributes ...attribute.KeyValue) OTelTracingOption[T] {
	return func(m *OTelTracingMiddleware[T]) { m.commonAttrs = append(m.commonAttrs, attributes...) }
}

// NewOTelTracingMiddleware creates a tracing middleware.
func NewOTelTracingMiddleware[T series.Sample](next neurketa.Service[T], tracer trace.Tracer, opts ...OTelTracingOption[T]) neurketa.Service[T] {
	mw := &OTelTracingMiddleware[T]{next: next, tracer: tracer}
	for _, o := range opts {
		o(mw)
	}

	return mw
}

// Record implements Service.Record with tracing.
func (mw OTelTracingMiddleware[T]) Record(ctx context.Context, name string, sample T) error {
	ctx, span := mw.startSpan(
		ctx, "neurketa.Record",
		attribute.String(attrs.AttrStatName, name),
		attribute.Float64(attrs.AttrSampleValue, float64(sample)))
	defer span.End()

	err := mw.next.Record(ctx, name, sample)
	recordError(span, err)

	return err
}

// Names implements Service.Names with tracing.
func (mw OTelTracingMiddleware[T]) Names(ctx context.Context) []string {
	ctx, span := mw.startSpan(ctx, "neurketa.Names")
	defer span.End()

	names := mw.next.Names(ctx)
	span.SetAttributes(attribute.Int(attrs.AttrStatsCount, len(names)))

	return names
}

// Count implements Service.Count with tracing.
func (mw OTelTracingMiddleware[T]) Count(ctx context.Context) int {
	ctx, span := mw.startSpan(ctx, "neurketa.Count")
	defer span.End()

	return mw.next.Count(ctx)
}

// Summary implements Service.Summary with tracing.
func (mw OTelTracingMiddleware[T]) Summary(ctx context.Context, name string) (neurketa.Summary, error) {
	ctx, span := mw.startSpan(ctx, "neurketa.Summary", attribute.String(attrs.AttrStatName, name))
	defer span.End()

	summary, err := mw.next.Summary(ctx, name)
	span.SetAttributes(attribute.Int(attrs.AttrSampleCount, summary.Count))
	recordError(span, err)

	return summary, err
}

// Snapshot implements Service.Snapshot with tracing.
func (mw OTelTracingMiddleware[T]) Snapshot(ctx context.Context) (neurketa.Report, error) {
	ctx, span := mw.startSpan(ctx, "neurketa.Snapshot")
	defer span.End()

	report, err := mw.next.Snapshot(ctx)
	span.SetAttributes(attribute.Int(attrs.AttrStatsCount, len(report.Stats)))
	recordError(span, err)

	return report, err
}

// Series implements Service.Series with tracing.
func (mw OTelTracingMiddleware[T]) Series(ctx context.Context) (*stat.Series[string, T], error) {
	ctx, span := mw.startSpan(ctx, "neurketa.Series")
	defer span.End()

	s, err := mw.next.Series(ctx)
	recordError(span, err)

	return s, err
}

// Export implements Service.Export with tracing.
func (mw OTelTracingMiddleware[T]) Export(ctx context.Context) ([]byte, error) {
	ctx, span := mw.startSpan(ctx, "neurketa.Export")
	defer span.End()

	data, err := mw.next.Export(ctx)
	recordError(span, err)

	return data, err
}

func (mw OTelTracingMiddleware[T]) startSpan(ctx context.Context, name string, attributes ...attribute.KeyValue) (context.Context, trace.Span) {
	ctx, span := mw.tracer.Start(ctx, name, trace.WithSpanKind(trace.SpanKindInternal))
	if len(mw.commonAttrs) > 0 {
		span.SetAttributes(mw.commonAttrs...)
	}

	if len(attributes) > 0 {
		span.SetAttributes(attributes...)
	}

	return ctx, span
}

func recordError(span trace.Span, err error) {
	if err == nil {
		return
	}

	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
