// Package middleware provides various middleware implementations for the neurketa service.
// This package includes stats middleware that records the latency of every service call.
package middleware

import (
	"context"
	"time"

	"github.com/hyp3rd/neurketa"
	"github.com/hyp3rd/neurketa/pkg/series"
	"github.com/hyp3rd/neurketa/pkg/stat"
)

// StatsCollectorMiddleware is a middleware that records the duration of every call,
// in nanoseconds, into its own collector under "<method>.duration".
// Must implement the neurketa.Service interface.
type StatsCollectorMiddleware[T series.Sample] struct {
	next      neurketa.Service[T]
	latencies neurketa.Service[int64]
}

// NewStatsCollectorMiddleware returns a new StatsCollectorMiddleware.
// The latencies collector must not be the wrapped service itself.
func NewStatsCollectorMiddleware[T series.Sample](next neurketa.Service[T], latencies neurketa.Service[int64]) neurketa.Service[T] {
	return &StatsCollectorMiddleware[T]{next: next, latencies: latencies}
}

// Record collects stats for the Record method.
func (mw StatsCollectorMiddleware[T]) Record(ctx context.Context, name string, sample T) error {
	defer mw.observe(ctx, "Record", time.Now())

	return mw.next.Record(ctx, name, sample)
}

// Names collects stats for the Names method.
func (mw StatsCollectorMiddleware[T]) Names(ctx context.Context) []string {
	defer mw.observe(ctx, "Names", time.Now())

	return mw.next.Names(ctx)
}

// Count collects stats for the Count method.
func (mw StatsCollectorMiddleware[T]) Count(ctx context.Context) int {
	defer mw.observe(ctx, "Count", time.Now())

	return mw.next.Count(ctx)
}

// Summary collects stats for the Summary method.
func (mw StatsCollectorMiddleware[T]) Summary(ctx context.Context, name string) (neurketa.Summary, error) {
	defer mw.observe(ctx, "Summary", time.Now())

	return mw.next.Summary(ctx, name)
}

// Snapshot collects stats for the Snapshot method.
func (mw StatsCollectorMiddleware[T]) Snapshot(ctx context.Context) (neurketa.Report, error) {
	defer mw.observe(ctx, "Snapshot", time.Now())

	return mw.next.Snapshot(ctx)
}

// Series collects stats for the Series method.
func (mw StatsCollectorMiddleware[T]) Series(ctx context.Context) (*stat.Series[string, T], error) {
	defer mw.observe(ctx, "Series", time.Now())

	return mw.next.Series(ctx)
}

// Export collects stats for the Export method.
func (mw StatsCollectorMiddleware[T]) Export(ctx context.Context) ([]byte, error) {
	defer mw.observe(ctx, "Export", time.Now())

	return mw.next.Export(ctx)
}

func (mw StatsCollectorMiddleware[T]) observe(ctx context.Context, method string, start time.Time) {
	// a duration is never NaN, so Record cannot fail here
	_ = mw.latencies.Record(ctx, method+".duration", time.Since(start).Nanoseconds())
}
