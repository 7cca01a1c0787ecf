// Package stat computes aggregates (mean, min, max, percentile, standard deviation)
// over sorted sample sets, either for a single Value or broadcast across every
// coordinate of a Series.
//
// Nothing in this package is safe for concurrent use; callers that share a Value
// or a Series between goroutines must guard it themselves.
package stat

import (
	"math"

	"github.com/hyp3rd/ewrap"

	"github.com/hyp3rd/neurketa/internal/sentinel"
	"github.com/hyp3rd/neurketa/pkg/series"
)

// Value is a statistical value obtained from a set of samples.
type Value[T series.Sample] struct {
	samples *series.Sorted[T]
}

// NewValue returns an empty Value.
func NewValue[T series.Sample]() *Value[T] {
	return &Value[T]{samples: series.New[T]()}
}

// FromSamples returns a Value holding vs.
func FromSamples[T series.Sample](vs ...T) (*Value[T], error) {
	samples, err := series.FromSlice(vs)
	if err != nil {
		return nil, err
	}

	return &Value[T]{samples: samples}, nil
}

// Push adds a sample, keeping the set sorted.
func (v *Value[T]) Push(sample T) error {
	return v.samples.Push(sample)
}

// Len returns the number of samples.
func (v *Value[T]) Len() int { return v.samples.Len() }

// Samples returns a sorted copy of the samples.
func (v *Value[T]) Samples() []T { return v.samples.Values() }

// Digest returns a hash of the sample multiset, see series.Sorted.Digest.
func (v *Value[T]) Digest() uint64 { return v.samples.Digest() }

// Mean returns the sum of the samples divided by their count.
// For integer sample types the division truncates. Narrow integer types fail with
// sentinel.ErrSampleOverflow when the count or the sum does not fit.
func (v *Value[T]) Mean() (T, error) {
	var zero T

	n := v.samples.Len()
	if n == 0 {
		return zero, ewrap.Wrap(sentinel.ErrEmptySeries, "mean")
	}

	count := T(n)
	if float64(count) != float64(n) {
		return zero, ewrap.Wrapf(sentinel.ErrSampleOverflow, "mean: count %d", n)
	}

	sum, wraps := zero, 0

	// integer addition wraps modulo the type size; the sum is exact when wraps nets to zero
	v.samples.All(func(_ int, x T) {
		next := sum + x

		switch {
		case x > 0 && next < sum:
			wraps++
		case x < 0 && next > sum:
			wraps--
		}

		sum = next
	})

	if wraps != 0 {
		return zero, ewrap.Wrapf(sentinel.ErrSampleOverflow, "mean: sum of %d samples", n)
	}

	return sum / count, nil
}

// Min returns the smallest sample.
func (v *Value[T]) Min() (T, error) {
	first, ok := v.samples.First()
	if !ok {
		return first, ewrap.Wrap(sentinel.ErrEmptySeries, "min")
	}

	return first, nil
}

// Max returns the largest sample.
func (v *Value[T]) Max() (T, error) {
	last, ok := v.samples.Last()
	if !ok {
		return last, ewrap.Wrap(sentinel.ErrEmptySeries, "max")
	}

	return last, nil
}

// Percentile returns the sample at index ceil(p*n) for p in [0, 1].
// The index is clamped to n-1, so Percentile(1) is the maximum.
func (v *Value[T]) Percentile(p float64) (T, error) {
	var zero T

	if math.IsNaN(p) || p < 0 || p > 1 {
		return zero, ewrap.Wrapf(sentinel.ErrIndexOutOfRange, "percentile %v", p)
	}

	n := v.samples.Len()
	if n == 0 {
		return zero, ewrap.Wrap(sentinel.ErrEmptySeries, "percentile")
	}

	idx := min(int(math.Ceil(p*float64(n))), n-1)

	return v.samples.At(idx), nil
}

// StdDev returns the sample standard deviation (Bessel's correction, n-1).
// Deviations from the mean are taken in float64, so narrow and unsigned sample
// types cannot wrap.
func (v *Value[T]) StdDev() (float64, error) {
	n := v.samples.Len()
	if n == 0 {
		return 0, ewrap.Wrap(sentinel.ErrEmptySeries, "stddev")
	}

	if n < 2 {
		return 0, ewrap.Wrapf(sentinel.ErrInsufficientSamples, "stddev needs 2 samples, have %d", n)
	}

	mean, err := v.Mean()
	if err != nil {
		return 0, err
	}

	var sumOfDiffSq float64

	v.samples.All(func(_ int, x T) {
		diff := float64(max(x, mean)) - float64(min(x, mean))
		sumOfDiffSq += diff * diff
	})

	return math.Sqrt(sumOfDiffSq / float64(n-1)), nil
}
