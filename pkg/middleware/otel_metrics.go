package middleware

import (
	"context"
	"time"

	"github.com/hyp3rd/ewrap"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/hyp3rd/neurketa"
	"github.com/hyp3rd/neurketa/internal/telemetry/attrs"
	"github.com/hyp3rd/neurketa/pkg/series"
	"github.com/hyp3rd/neurketa/pkg/stat"
)

// OTelMetricsMiddleware emits OpenTelemetry metrics for service methods.
type OTelMetricsMiddleware[T series.Sample] struct {
	next  neurketa.Service[T]
	meter metric.Meter

	// instruments
	calls     metric.Int64Counter
	errors    metric.Int64Counter
	durations metric.Float64Histogram
}

// NewOTelMetricsMiddleware constructs a metrics middleware using the provided meter.
func NewOTelMetricsMiddleware[T series.Sample](next neurketa.Service[T], meter metric.Meter) (neurketa.Service[T], error) {
	calls, err := meter.Int64Counter("neurketa.calls")
	if err != nil {
		return nil, ewrap.Wrap(err, "create calls counter")
	}

	errs, err := meter.Int64Counter("neurketa.errors")
	if err != nil {
		return nil, ewrap.Wrap(err, "create errors counter")
	}

	durations, err := meter.Float64Histogram("neurketa.duration.ms")
	if err != nil {
		return nil, ewrap.Wrap(err, "create histogram")
	}

	return &OTelMetricsMiddleware[T]{next: next, meter: meter, calls: calls, errors: errs, durations: durations}, nil
}

// Record implements Service.Record with metrics.
func (mw *OTelMetricsMiddleware[T]) Record(ctx context.Context, name string, sample T) error {
	start := time.Now()
	err := mw.next.Record(ctx, name, sample)
	mw.rec(ctx, "Record", start, err, attribute.String(attrs.AttrStatName, name))

	return err
}

// Names implements Service.Names with metrics.
func (mw *OTelMetricsMiddleware[T]) Names(ctx context.Context) []string {
	start := time.Now()
	names := mw.next.Names(ctx)
	mw.rec(ctx, "Names", start, nil, attribute.Int(attrs.AttrStatsCount, len(names)))

	return names
}

// Count implements Service.Count with metrics.
func (mw *OTelMetricsMiddleware[T]) Count(ctx context.Context) int {
	start := time.Now()
	n := mw.next.Count(ctx)
	mw.rec(ctx, "Count", start, nil, attribute.Int(attrs.AttrStatsCount, n))

	return n
}

// Summary implements Service.Summary with metrics.
func (mw *OTelMetricsMiddleware[T]) Summary(ctx context.Context, name string) (neurketa.Summary, error) {
	start := time.Now()
	summary, err := mw.next.Summary(ctx, name)
	mw.rec(ctx, "Summary", start, err, attribute.String(attrs.AttrStatName, name), attribute.Int(attrs.AttrSampleCount, summary.Count))

	return summary, err
}

// Snapshot implements Service.Snapshot with metrics.
func (mw *OTelMetricsMiddleware[T]) Snapshot(ctx context.Context) (neurketa.Report, error) {
	start := time.Now()
	report, err := mw.next.Snapshot(ctx)
	mw.rec(ctx, "Snapshot", start, err, attribute.Int(attrs.AttrStatsCount, len(report.Stats)))

	return report, err
}

// Series implements Service.Series with metrics.
func (mw *OTelMetricsMiddleware[T]) Series(ctx context.Context) (*stat.Series[string, T], error) {
	start := time.Now()
	s, err := mw.next.Series(ctx)

	n := 0
	if s != nil {
		n = s.Len()
	}

	mw.rec(ctx, "Series", start, err, attribute.Int(attrs.AttrStatsCount, n))

	return s, err
}

// Export implements Service.Export with metrics.
func (mw *OTelMetricsMiddleware[T]) Export(ctx context.Context) ([]byte, error) {
	start := time.Now()
	data, err := mw.next.Export(ctx)
	mw.rec(ctx, "Export", start, err)

	return data, err
}

// rec records call count, errors and duration with attributes.
func (mw *OTelMetricsMiddleware[T]) rec(ctx context.Context, method string, start time.Time, err error, attributes ...attribute.KeyValue) {
	base := []attribute.KeyValue{attribute.String("method", method)}
	if len(attributes) > 0 {
		base = append(base, attributes...)
	}

	mw.calls.Add(ctx, 1, metric.WithAttributes(base...))

	if err != nil {
		mw.errors.Add(ctx, 1, metric.WithAttributes(base...))
	}

	mw.durations.Record(ctx, float64(time.Since(start).Microseconds())/1000, metric.WithAttributes(base...))
}
