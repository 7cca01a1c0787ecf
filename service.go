package neurketa

import (
	"context"

	"github.com/hyp3rd/neurketa/pkg/series"
	"github.com/hyp3rd/neurketa/pkg/stat"
)

// Service is the service interface for the Collector.
// It enables middleware to be added to the service.
type Service[T series.Sample] interface {
	// Record adds a sample to the named statistic
	Record(ctx context.Context, name string, sample T) error
	// Names returns the statistic names in first-record order
	Names(ctx context.Context) []string
	// Count returns the number of statistics
	Count(ctx context.Context) int
	// Summary returns the summary of the named statistic
	Summary(ctx context.Context, name string) (Summary, error)
	// Snapshot summarizes every statistic
	Snapshot(ctx context.Context) (Report, error)
	// Series copies every statistic into a stat.Series keyed by name
	Series(ctx context.Context) (*stat.Series[string, T], error)
	// Export encodes a snapshot with the configured serializer
	Export(ctx context.Context) ([]byte, error)
}

// Middleware describes a service middleware.
type Middleware[T series.Sample] func(Service[T]) Service[T]

// ApplyMiddleware applies middlewares to a service.
func ApplyMiddleware[T series.Sample](svc Service[T], mw ...Middleware[T]) Service[T] {
	// Apply each middleware in the chain
	for _, m := range mw {
		svc = m(svc)
	}
	// Return the decorated service
	return svc
}

var _ Service[float64] = (*Collector[float64])(nil)
