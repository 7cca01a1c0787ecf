// Package middleware provides various middleware implementations for the neurketa service.
// This package includes logging middleware that wraps the neurketa service to provide
// execution time logging and method call tracing for debugging and monitoring purposes.
package middleware

import (
	"context"
	"time"

	"github.com/hyp3rd/neurketa"
	"github.com/hyp3rd/neurketa/pkg/series"
	"github.com/hyp3rd/neurketa/pkg/stat"
)

// Logger describes a logging interface allowing to implement different external, or custom logger.
// The standard library log.Logger, logrus and zap's SugaredLogger all satisfy it.
type Logger interface {
	Printf(format string, v ...any)
}

// LoggingMiddleware is a middleware that logs the time it takes to execute the next middleware.
// Must implement the neurketa.Service interface.
type LoggingMiddleware[T series.Sample] struct {
	next   neurketa.Service[T]
	logger Logger
}

// NewLoggingMiddleware returns a new LoggingMiddleware.
func NewLoggingMiddleware[T series.Sample](next neurketa.Service[T], logger Logger) neurketa.Service[T] {
	return &LoggingMiddleware[T]{next: next, logger: logger}
}

// Record logs the time it takes to execute the next middleware.
func (mw LoggingMiddleware[T]) Record(ctx context.Context, name string, sample T) error {
	defer func(begin time.Time) {
		mw.logger.Printf("method Record took: %s", time.Since(begin))
	}(time.Now())

	mw.logger.Printf("Record method called with name: %s sample: %v", name, sample)

	err := mw.next.Record(ctx, name, sample)
	if err != nil {
		mw.logger.Printf("Record method failed: %v", err)
	}

	return err
}

// Names logs the time it takes to execute the next middleware.
func (mw LoggingMiddleware[T]) Names(ctx context.Context) []string {
	defer func(begin time.Time) {
		mw.logger.Printf("method Names took: %s", time.Since(begin))
	}(time.Now())

	mw.logger.Printf("Names method invoked")

	return mw.next.Names(ctx)
}

// Count takes to execute the next middleware.
func (mw LoggingMiddleware[T]) Count(ctx context.Context) int {
	return mw.next.Count(ctx)
}

// Summary logs the time it takes to execute the next middleware.
func (mw LoggingMiddleware[T]) Summary(ctx context.Context, name string) (neurketa.Summary, error) {
	defer func(begin time.Time) {
		mw.logger.Printf("method Summary took: %s", time.Since(begin))
	}(time.Now())

	mw.logger.Printf("Summary method invoked with name: %s", name)

	summary, err := mw.next.Summary(ctx, name)
	if err != nil {
		mw.logger.Printf("Summary method failed: %v", err)
	}

	return summary, err
}

// Snapshot logs the time it takes to execute the next middleware.
func (mw LoggingMiddleware[T]) Snapshot(ctx context.Context) (neurketa.Report, error) {
	defer func(begin time.Time) {
		mw.logger.Printf("method Snapshot took: %s", time.Since(begin))
	}(time.Now())

	mw.logger.Printf("Snapshot method invoked")

	report, err := mw.next.Snapshot(ctx)
	if err != nil {
		mw.logger.Printf("Snapshot method failed: %v", err)
	}

	return report, err
}

// Series logs the time it takes to execute the next middleware.
func (mw LoggingMiddleware[T]) Series(ctx context.Context) (*stat.Series[string, T], error) {
	defer func(begin time.Time) {
		mw.logger.Printf("method Series took: %s", time.Since(begin))
	}(time.Now())

	mw.logger.Printf("Series method invoked")

	return mw.next.Series(ctx)
}

// Export logs the time it takes to execute the next middleware.
func (mw LoggingMiddleware[T]) Export(ctx context.Context) ([]byte, error) {
	defer func(begin time.Time) {
		mw.logger.Printf("method Export took: %s", time.Since(begin))
	}(time.Now())

	mw.logger.Printf("Export method invoked")

	data, err := mw.next.Export(ctx)
	if err != nil {
		mw.logger.Printf("Export method failed: %v", err)
	}

	return data, err
}
