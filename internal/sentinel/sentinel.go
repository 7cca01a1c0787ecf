// Package sentinel provides standardized error definitions for the neurketa system.
// This package centralizes all error types used across the neurketa components,
// ensuring consistent error handling and messaging throughout the application.
//
// The errors defined here cover various scenarios including:
// - Aggregate queries over series without enough samples
// - Percentile requests outside of the valid sample range
// - Samples that cannot be ordered (NaN)
// - Sums and counts that overflow narrow integer sample types
// - Lookup failures in the collector, serializer and collector registries
//
// All errors are created using the ewrap package to provide enhanced error
// wrapping and context capabilities.
package sentinel

import (
	"github.com/hyp3rd/ewrap"
)

var (
	// ErrEmptySeries is returned when an aggregate is requested on a series with zero samples.
	ErrEmptySeries = ewrap.New("empty series")

	// ErrInsufficientSamples is returned when the standard deviation is requested with fewer than two samples.
	ErrInsufficientSamples = ewrap.New("insufficient samples")

	// ErrIndexOutOfRange is returned when a percentile request falls outside of [0, 1].
	ErrIndexOutOfRange = ewrap.New("index out of range")

	// ErrUnorderableValue is returned when two samples cannot be compared during sorted insertion.
	ErrUnorderableValue = ewrap.New("unorderable value")

	// ErrSampleOverflow is returned when a sum or a sample count does not fit the sample type.
	ErrSampleOverflow = ewrap.New("sample overflow")

	// ErrNilValue is returned when a nil statistical value is pushed into a series.
	ErrNilValue = ewrap.New("nil value")

	// ErrNegativeDuration is returned when an event is built with a negative duration.
	ErrNegativeDuration = ewrap.New("duration cannot be negative")

	// ErrParamCannotBeEmpty is returned when a parameter cannot be empty.
	ErrParamCannotBeEmpty = ewrap.New("param cannot be empty")

	// ErrStatNotFound is returned when a named statistic is not found in the collector.
	ErrStatNotFound = ewrap.New("stat not found")

	// ErrSerializerNotFound is returned when a serializer is not found.
	ErrSerializerNotFound = ewrap.New("serializer not found")

	// ErrCollectorNotFound is returned when a collector constructor is not found.
	ErrCollectorNotFound = ewrap.New("collector not found")
)
