package stat

import (
	"github.com/hyp3rd/ewrap"

	"github.com/hyp3rd/neurketa/internal/sentinel"
	"github.com/hyp3rd/neurketa/pkg/series"
)

// Entry is one coordinate of a Series.
type Entry[X any, T series.Sample] struct {
	Order      int // 1-based push order
	Coordinate X
	Value      *Value[T]
}

// Point is an aggregate computed for one coordinate.
type Point[X any, V any] struct {
	Coordinate X
	Value      V
}

// Series maps coordinates to statistical values, keeping push order.
// Coordinates need not be unique: a repeated coordinate is an independent entry.
type Series[X any, T series.Sample] struct {
	entries []Entry[X, T]
}

// NewSeries returns an empty Series.
func NewSeries[X any, T series.Sample]() *Series[X, T] {
	return &Series[X, T]{}
}

// Push appends value under coordinate x. The value should be fully populated:
// the series offers no way to mutate it afterwards.
func (s *Series[X, T]) Push(x X, value *Value[T]) error {
	if value == nil {
		return ewrap.Wrap(sentinel.ErrNilValue, "push")
	}

	order := 1
	if len(s.entries) > 0 {
		order = s.entries[len(s.entries)-1].Order + 1
	}

	s.entries = append(s.entries, Entry[X, T]{Order: order, Coordinate: x, Value: value})

	return nil
}

// Len returns the number of entries.
func (s *Series[X, T]) Len() int { return len(s.entries) }

// Entries returns a copy of the entries in push order.
func (s *Series[X, T]) Entries() []Entry[X, T] {
	out := make([]Entry[X, T], len(s.entries))
	copy(out, s.entries)

	return out
}

// Mean returns the mean of every entry.
func (s *Series[X, T]) Mean() ([]Point[X, T], error) {
	return broadcast(s, (*Value[T]).Mean)
}

// Min returns the minimum of every entry.
func (s *Series[X, T]) Min() ([]Point[X, T], error) {
	return broadcast(s, (*Value[T]).Min)
}

// Max returns the maximum of every entry.
func (s *Series[X, T]) Max() ([]Point[X, T], error) {
	return broadcast(s, (*Value[T]).Max)
}

// Percentile returns the p-th percentile of every entry.
func (s *Series[X, T]) Percentile(p float64) ([]Point[X, T], error) {
	return broadcast(s, func(v *Value[T]) (T, error) { return v.Percentile(p) })
}

// StdDev returns the standard deviation of every entry.
func (s *Series[X, T]) StdDev() ([]Point[X, float64], error) {
	return broadcast(s, (*Value[T]).StdDev)
}

// broadcast applies fn to every entry in push order and stops at the first error.
func broadcast[X any, T series.Sample, V any](s *Series[X, T], fn func(*Value[T]) (V, error)) ([]Point[X, V], error) {
	points := make([]Point[X, V], 0, len(s.entries))

	for _, e := range s.entries {
		res, err := fn(e.Value)
		if err != nil {
			return nil, ewrap.Wrapf(err, "entry %d", e.Order)
		}

		points = append(points, Point[X, V]{Coordinate: e.Coordinate, Value: res})
	}

	return points, nil
}
