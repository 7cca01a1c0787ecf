package neurketa

import (
	"github.com/hyp3rd/neurketa/internal/libs/serializer"
	"github.com/hyp3rd/neurketa/pkg/series"
)

// Option is a function type that can be used to configure the `Collector` struct.
type Option[T series.Sample] func(*Collector[T])

// ApplyCollectorOptions applies the given options to the given collector.
func ApplyCollectorOptions[T series.Sample](c *Collector[T], options ...Option[T]) {
	for _, option := range options {
		option(c)
	}
}

// WithPercentiles is an option that sets the percentiles reported by `Summary`.
// Each percentile must be in [0, 1]; `NewCollector` rejects the others.
// Passing no percentile disables them.
func WithPercentiles[T series.Sample](percentiles ...float64) Option[T] {
	return func(c *Collector[T]) {
		c.percentiles = append([]float64(nil), percentiles...)
	}
}

// WithSerializer is an option that sets the name of the serializer `Export` encodes with.
// The name must be one of the following, unless registered with `WithSerializerRegistry`:
//   - "default" (JSON)
//   - "msgpack"
//   - "cbor"
func WithSerializer[T series.Sample](name string) Option[T] {
	return func(c *Collector[T]) {
		c.serializerName = name
	}
}

// WithSerializerRegistry is an option that replaces the registry serializers are looked up in.
func WithSerializerRegistry[T series.Sample](registry *serializer.Registry) Option[T] {
	return func(c *Collector[T]) {
		if registry != nil {
			c.serializers = registry
		}
	}
}
