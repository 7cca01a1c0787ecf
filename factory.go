package neurketa

import (
	"github.com/hyp3rd/ewrap"

	"github.com/hyp3rd/neurketa/internal/constants"
	"github.com/hyp3rd/neurketa/internal/sentinel"
	"github.com/hyp3rd/neurketa/pkg/series"
)

// CollectorConstructor builds a collector from a set of options.
type CollectorConstructor[T series.Sample] func(options ...Option[T]) (*Collector[T], error)

// CollectorRegistry manages collector constructors.
type CollectorRegistry[T series.Sample] struct {
	collectors map[string]CollectorConstructor[T]
}

// NewCollectorRegistry creates a new collector registry with the default collector pre-registered.
func NewCollectorRegistry[T series.Sample]() *CollectorRegistry[T] {
	registry := NewEmptyCollectorRegistry[T]()
	// Register the default collector
	registry.Register(constants.DefaultCollector, NewCollector[T])

	return registry
}

// NewEmptyCollectorRegistry creates a new collector registry without default collectors.
// This is useful for testing or when you want to register only specific collectors.
func NewEmptyCollectorRegistry[T series.Sample]() *CollectorRegistry[T] {
	return &CollectorRegistry[T]{
		collectors: make(map[string]CollectorConstructor[T]),
	}
}

// Register registers a new collector constructor with the given name.
func (r *CollectorRegistry[T]) Register(name string, createFunc CollectorConstructor[T]) {
	r.collectors[name] = createFunc
}

// New creates the collector registered under name.
func (r *CollectorRegistry[T]) New(name string, options ...Option[T]) (*Collector[T], error) {
	// Check the parameters.
	if name == "" {
		return nil, ewrap.Wrap(sentinel.ErrParamCannotBeEmpty, "name")
	}

	createFunc, ok := r.collectors[name]
	if !ok {
		return nil, ewrap.Wrap(sentinel.ErrCollectorNotFound, name)
	}

	return createFunc(options...)
}
