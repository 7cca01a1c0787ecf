package stat

import (
	"errors"
	"math"
	"testing"

	"github.com/longbridgeapp/assert"

	"github.com/hyp3rd/neurketa/internal/sentinel"
)

type bucket struct {
	category string
	run      int
}

func coordinates[X any, V any](points []Point[X, V]) []X {
	out := make([]X, 0, len(points))
	for _, p := range points {
		out = append(out, p.Coordinate)
	}

	return out
}

func newRunSeries(t *testing.T) *Series[int, float64] {
	t.Helper()

	s := NewSeries[int, float64]()
	// coordinates pushed out of numeric order
	assert.Nil(t, s.Push(30, mustValue(t, 1.0, 2.0, 3.0)))
	assert.Nil(t, s.Push(10, mustValue(t, 10.0, 20.0, 30.0, 40.0)))
	assert.Nil(t, s.Push(20, mustValue(t, 2.0, 4.0, 4.0, 4.0, 5.0, 5.0, 7.0, 9.0)))

	return s
}

func TestSeries_OrderNumbers(t *testing.T) {
	s := newRunSeries(t)

	entries := s.Entries()
	assert.Equal(t, 3, len(entries))

	for i, e := range entries {
		assert.Equal(t, i+1, e.Order)
	}
}

func TestSeries_BroadcastKeepsPushOrder(t *testing.T) {
	s := newRunSeries(t)
	want := []int{30, 10, 20}

	means, err := s.Mean()
	assert.Nil(t, err)
	assert.Equal(t, want, coordinates(means))
	assert.Equal(t, 2.0, means[0].Value)
	assert.Equal(t, 25.0, means[1].Value)
	assert.Equal(t, 5.0, means[2].Value)

	mins, err := s.Min()
	assert.Nil(t, err)
	assert.Equal(t, want, coordinates(mins))
	assert.Equal(t, []float64{1, 10, 2}, []float64{mins[0].Value, mins[1].Value, mins[2].Value})

	maxs, err := s.Max()
	assert.Nil(t, err)
	assert.Equal(t, want, coordinates(maxs))
	assert.Equal(t, []float64{3, 40, 9}, []float64{maxs[0].Value, maxs[1].Value, maxs[2].Value})

	medians, err := s.Percentile(0.5)
	assert.Nil(t, err)
	assert.Equal(t, want, coordinates(medians))
	assert.Equal(t, 30.0, medians[1].Value)

	tops, err := s.Percentile(1)
	assert.Nil(t, err)
	assert.Equal(t, []float64{3, 40, 9}, []float64{tops[0].Value, tops[1].Value, tops[2].Value})

	sds, err := s.StdDev()
	assert.Nil(t, err)
	assert.Equal(t, want, coordinates(sds))
	assert.Equal(t, 1.0, sds[0].Value)
	assert.True(t, math.Abs(sds[2].Value-2.138089935) < tolerance)
}

func TestSeries_RepeatedCoordinates(t *testing.T) {
	s := NewSeries[bucket, int]()

	assert.Nil(t, s.Push(bucket{category: "parse", run: 1}, mustValue(t, 1, 2, 3)))
	assert.Nil(t, s.Push(bucket{category: "parse", run: 1}, mustValue(t, 7, 9)))

	maxs, err := s.Max()
	assert.Nil(t, err)
	assert.Equal(t, 2, len(maxs))
	assert.Equal(t, 3, maxs[0].Value)
	assert.Equal(t, 9, maxs[1].Value)
}

func TestSeries_FailFast(t *testing.T) {
	s := NewSeries[string, float64]()

	assert.Nil(t, s.Push("ok", mustValue(t, 1.0, 2.0)))
	assert.Nil(t, s.Push("single", mustValue(t, 5.0)))
	assert.Nil(t, s.Push("empty", NewValue[float64]()))

	tests := []struct {
		name    string
		query   func() error
		wantErr error
	}{
		{
			name:    "mean hits empty entry",
			query:   func() error { _, err := s.Mean(); return err },
			wantErr: sentinel.ErrEmptySeries,
		},
		{
			name:    "min hits empty entry",
			query:   func() error { _, err := s.Min(); return err },
			wantErr: sentinel.ErrEmptySeries,
		},
		{
			name:    "max hits empty entry",
			query:   func() error { _, err := s.Max(); return err },
			wantErr: sentinel.ErrEmptySeries,
		},
		{
			name:    "stddev stops at the single sample entry first",
			query:   func() error { _, err := s.StdDev(); return err },
			wantErr: sentinel.ErrInsufficientSamples,
		},
		{
			name:    "percentile out of range",
			query:   func() error { _, err := s.Percentile(2); return err },
			wantErr: sentinel.ErrIndexOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.query()
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestSeries_PushNil(t *testing.T) {
	s := NewSeries[string, int]()

	err := s.Push("x", nil)
	assert.True(t, errors.Is(err, sentinel.ErrNilValue))
	assert.Equal(t, 0, s.Len())
}

func TestSeries_Empty(t *testing.T) {
	s := NewSeries[string, int]()

	means, err := s.Mean()
	assert.Nil(t, err)
	assert.Equal(t, 0, len(means))
}
