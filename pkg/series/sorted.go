// Package series provides the sorted sample container the statistics are
// computed over, together with the sorted-insert primitive it is built on.
package series

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
	"github.com/hyp3rd/ewrap"
	"golang.org/x/exp/constraints"

	"github.com/hyp3rd/neurketa/internal/sentinel"
)

// Sample is the set of numeric types a series can hold.
// Every Sample converts to float64, supports + - * between values and
// can be divided by a count converted to the same type.
type Sample interface {
	constraints.Integer | constraints.Float
}

// CompareFunc is a partial comparison: it returns -1, 0 or +1, or an error
// when the operands cannot be ordered.
type CompareFunc[T any] func(a, b T) (int, error)

// Compare orders two samples. NaN is unorderable against anything, itself included.
func Compare[T Sample](a, b T) (int, error) {
	if math.IsNaN(float64(a)) || math.IsNaN(float64(b)) {
		return 0, sentinel.ErrUnorderableValue
	}

	switch {
	case a < b:
		return -1, nil
	case a > b:
		return 1, nil
	default:
		return 0, nil
	}
}

// Insert places v into the ascending slice values using binary search and returns
// the resulting slice. Equal elements keep their relative order: v goes after the
// last element equal to it. On error values is returned unchanged.
func Insert[T any](values []T, v T, cmp CompareFunc[T]) ([]T, error) {
	// self comparison rejects incomparable values even when values is empty
	if _, err := cmp(v, v); err != nil {
		return values, err
	}

	lo, hi := 0, len(values)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)

		c, err := cmp(values[mid], v)
		if err != nil {
			return values, err
		}

		if c <= 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	var zero T

	values = append(values, zero)
	copy(values[lo+1:], values[lo:])
	values[lo] = v

	return values, nil
}

// Sorted is a series of samples kept in ascending order as values are pushed.
type Sorted[T Sample] struct {
	values []T // invariant: always sorted
}

// New returns an empty sorted series.
func New[T Sample]() *Sorted[T] {
	return &Sorted[T]{}
}

// FromSlice builds a sorted series by pushing every element of vs in order.
func FromSlice[T Sample](vs []T) (*Sorted[T], error) {
	s := &Sorted[T]{values: make([]T, 0, len(vs))}

	for i, v := range vs {
		err := s.Push(v)
		if err != nil {
			return nil, ewrap.Wrapf(err, "element %d", i)
		}
	}

	return s, nil
}

// Push inserts v at the position that keeps the series sorted.
func (s *Sorted[T]) Push(v T) error {
	values, err := Insert(s.values, v, Compare[T])
	if err != nil {
		return ewrap.Wrap(err, "push")
	}

	s.values = values

	return nil
}

// Len returns the number of samples.
func (s *Sorted[T]) Len() int { return len(s.values) }

// At returns the i-th smallest sample. It panics when i is out of range, like a slice index.
func (s *Sorted[T]) At(i int) T { return s.values[i] }

// First returns the smallest sample and false when the series is empty.
func (s *Sorted[T]) First() (T, bool) {
	if len(s.values) == 0 {
		var zero T

		return zero, false
	}

	return s.values[0], true
}

// Last returns the largest sample and false when the series is empty.
func (s *Sorted[T]) Last() (T, bool) {
	if len(s.values) == 0 {
		var zero T

		return zero, false
	}

	return s.values[len(s.values)-1], true
}

// Values returns a copy of the sorted samples.
func (s *Sorted[T]) Values() []T {
	out := make([]T, len(s.values))
	copy(out, s.values)

	return out
}

// All calls fn for every sample in ascending order.
func (s *Sorted[T]) All(fn func(i int, v T)) {
	for i, v := range s.values {
		fn(i, v)
	}
}

// Digest returns the xxhash64 of the sorted samples. Series holding the same
// multiset have the same digest regardless of the order values were pushed in.
func (s *Sorted[T]) Digest() uint64 {
	h := xxhash.New()
	buf := make([]byte, 0, 8)

	for _, v := range s.values {
		buf = binary.LittleEndian.AppendUint64(buf[:0], math.Float64bits(float64(v)))
		_, _ = h.Write(buf)
	}

	return h.Sum64()
}
