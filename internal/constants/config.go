// Package constants defines default configuration values for the neurketa system.
// It provides the default collector and serializer names and the percentiles
// reported by a summary when none are configured.
package constants

const (
	// DefaultCollector is the name of the collector registered by default.
	DefaultCollector = "default"
	// DefaultSerializer is the name of the serializer used to encode reports
	// when none is configured (JSON).
	DefaultSerializer = "default"
	// MsgpackSerializer is the name of the msgpack report serializer.
	MsgpackSerializer = "msgpack"
	// CBORSerializer is the name of the CBOR report serializer.
	CBORSerializer = "cbor"
)

// DefaultPercentiles returns the percentiles included in a summary when
// the collector is not configured with its own set.
func DefaultPercentiles() []float64 {
	return []float64{0.5, 0.9, 0.99}
}
