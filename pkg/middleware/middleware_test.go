package middleware

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/longbridgeapp/assert"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	tracenoop "go.opentelemetry.io/otel/trace/noop"

	"github.com/hyp3rd/neurketa"
	"github.com/hyp3rd/neurketa/internal/sentinel"
)

type bufferLogger struct {
	lines []string
}

func (l *bufferLogger) Printf(format string, v ...any) {
	l.lines = append(l.lines, fmt.Sprintf(format, v...))
}

func (l *bufferLogger) contains(s string) bool {
	for _, line := range l.lines {
		if strings.Contains(line, s) {
			return true
		}
	}

	return false
}

// callCounter counts Add calls per "method" attribute.
type callCounter struct {
	metricnoop.Int64Counter

	calls map[string]int
}

func (c *callCounter) Add(_ context.Context, _ int64, options ...metric.AddOption) {
	attrs := metric.NewAddConfig(options).Attributes()
	method, _ := attrs.Value("method")
	c.calls[method.AsString()]++
}

type countingMeter struct {
	metricnoop.Meter

	counters map[string]*callCounter
}

func (m *countingMeter) Int64Counter(name string, _ ...metric.Int64CounterOption) (metric.Int64Counter, error) {
	c := &callCounter{calls: make(map[string]int)}
	m.counters[name] = c

	return c, nil
}

func newCollector(t *testing.T) *neurketa.Collector[float64] {
	t.Helper()

	c, err := neurketa.NewCollector[float64](neurketa.WithPercentiles[float64](0.5, 1))
	if err != nil {
		t.Fatalf("NewCollector error: %v", err)
	}

	return c
}

func exercise(t *testing.T, svc neurketa.Service[float64]) {
	t.Helper()

	ctx := context.Background()

	for _, v := range []float64{2, 4, 4, 4, 5, 5, 7, 9} {
		assert.Nil(t, svc.Record(ctx, "latency", v))
	}

	err := svc.Record(ctx, "latency", math.NaN())
	assert.True(t, errors.Is(err, sentinel.ErrUnorderableValue))

	assert.Equal(t, []string{"latency"}, svc.Names(ctx))
	assert.Equal(t, 1, svc.Count(ctx))

	summary, err := svc.Summary(ctx, "latency")
	assert.Nil(t, err)
	assert.Equal(t, 8, summary.Count)
	assert.Equal(t, 5.0, summary.Mean)

	_, err = svc.Summary(ctx, "missing")
	assert.True(t, errors.Is(err, sentinel.ErrStatNotFound))

	report, err := svc.Snapshot(ctx)
	assert.Nil(t, err)
	assert.Equal(t, 1, len(report.Stats))

	s, err := svc.Series(ctx)
	assert.Nil(t, err)
	assert.Equal(t, 1, s.Len())

	data, err := svc.Export(ctx)
	assert.Nil(t, err)
	assert.True(t, len(data) > 0)
}

func TestLoggingMiddleware(t *testing.T) {
	logger := &bufferLogger{}
	svc := NewLoggingMiddleware[float64](newCollector(t), logger)

	exercise(t, svc)

	assert.True(t, logger.contains("Record method called with name: latency"))
	assert.True(t, logger.contains("method Export took"))
	assert.True(t, logger.contains("Summary method failed"))
}

func TestOTelMiddlewares(t *testing.T) {
	metered, err := NewOTelMetricsMiddleware[float64](newCollector(t), metricnoop.NewMeterProvider().Meter("test"))
	assert.Nil(t, err)

	svc := NewOTelTracingMiddleware(metered, tracenoop.NewTracerProvider().Tracer("test"))

	exercise(t, svc)
}

func TestOTelMetricsMiddleware_CountsEveryMethod(t *testing.T) {
	meter := &countingMeter{counters: make(map[string]*callCounter)}

	svc, err := NewOTelMetricsMiddleware[float64](newCollector(t), meter)
	assert.Nil(t, err)

	exercise(t, svc)

	calls := meter.counters["neurketa.calls"].calls
	for _, method := range []string{"Record", "Names", "Count", "Summary", "Snapshot", "Series", "Export"} {
		assert.True(t, calls[method] > 0)
	}

	assert.Equal(t, 1, calls["Count"])
	// the NaN record and the missing summary
	assert.Equal(t, 1, meter.counters["neurketa.errors"].calls["Record"])
	assert.Equal(t, 1, meter.counters["neurketa.errors"].calls["Summary"])
}

func TestStatsCollectorMiddleware(t *testing.T) {
	latencies, err := neurketa.NewCollector[int64]()
	assert.Nil(t, err)

	svc := NewStatsCollectorMiddleware[float64](newCollector(t), latencies)

	exercise(t, svc)

	ctx := context.Background()

	record, err := latencies.Summary(ctx, "Record.duration")
	assert.Nil(t, err)
	// eight accepted samples and one rejected NaN
	assert.Equal(t, 9, record.Count)
	assert.True(t, record.Min >= 0)

	export, err := latencies.Summary(ctx, "Export.duration")
	assert.Nil(t, err)
	assert.Equal(t, 1, export.Count)
}

func TestApplyMiddleware(t *testing.T) {
	logger := &bufferLogger{}

	svc := neurketa.ApplyMiddleware[float64](newCollector(t),
		func(next neurketa.Service[float64]) neurketa.Service[float64] {
			return NewLoggingMiddleware(next, logger)
		},
		func(next neurketa.Service[float64]) neurketa.Service[float64] {
			return NewOTelTracingMiddleware(next, tracenoop.NewTracerProvider().Tracer("test"))
		},
	)

	exercise(t, svc)
	assert.True(t, logger.contains("Snapshot method invoked"))
}
