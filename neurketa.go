// Copyright 2023 F. All rights reserved.
// Use of this source code is governed by a Mozilla Public License 2.0
// license that can be found in the LICENSE file.

// Package neurketa collects numeric samples under named statistics and summarizes
// them (count, min, max, mean, standard deviation, percentiles).
//
// The aggregation itself lives in pkg/stat; a Collector adds naming, locking and
// report encoding on top of it so it can be shared by a host application.
package neurketa

import (
	"context"
	"errors"
	"math"
	"strings"
	"sync"

	"github.com/hyp3rd/ewrap"

	"github.com/hyp3rd/neurketa/internal/constants"
	"github.com/hyp3rd/neurketa/internal/libs/serializer"
	"github.com/hyp3rd/neurketa/internal/sentinel"
	"github.com/hyp3rd/neurketa/pkg/series"
	"github.com/hyp3rd/neurketa/pkg/stat"
)

// Collector records samples under named statistics.
// It is safe for concurrent use: a single RWMutex guards every statistic.
type Collector[T series.Sample] struct {
	mu             sync.RWMutex              // mutex to protect concurrent access to the stats
	stats          map[string]*stat.Value[T] // samples per statistic name
	names          []string                  // statistic names in first-record order
	percentiles    []float64                 // percentiles reported by Summary
	serializerName string                    // serializer used by Export
	serializers    *serializer.Registry      // registry the serializer is looked up in
}

// NewCollector creates a collector configured by the given options.
// Percentiles outside [0, 1] are rejected with sentinel.ErrIndexOutOfRange.
func NewCollector[T series.Sample](options ...Option[T]) (*Collector[T], error) {
	c := &Collector[T]{
		stats:          make(map[string]*stat.Value[T]),
		percentiles:    constants.DefaultPercentiles(),
		serializerName: constants.DefaultSerializer,
		serializers:    serializer.NewSerializerRegistry(),
	}

	ApplyCollectorOptions(c, options...)

	for _, p := range c.percentiles {
		if math.IsNaN(p) || p < 0 || p > 1 {
			return nil, ewrap.Wrapf(sentinel.ErrIndexOutOfRange, "percentile %v", p)
		}
	}

	if strings.TrimSpace(c.serializerName) == "" {
		return nil, ewrap.Wrap(sentinel.ErrParamCannotBeEmpty, "serializer")
	}

	return c, nil
}

// Record adds sample to the statistic called name, creating it on first use.
// A sample that cannot be ordered (NaN) is rejected and does not create the statistic.
func (c *Collector[T]) Record(_ context.Context, name string, sample T) error {
	if strings.TrimSpace(name) == "" {
		return ewrap.Wrap(sentinel.ErrParamCannotBeEmpty, "name")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	value, ok := c.stats[name]
	if !ok {
		value = stat.NewValue[T]()
	}

	err := value.Push(sample)
	if err != nil {
		return ewrap.Wrap(err, name)
	}

	if !ok {
		c.stats[name] = value
		c.names = append(c.names, name)
	}

	return nil
}

// Names returns the statistic names in the order they were first recorded.
func (c *Collector[T]) Names(_ context.Context) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]string, len(c.names))
	copy(out, c.names)

	return out
}

// Count returns the number of statistics.
func (c *Collector[T]) Count(_ context.Context) int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.names)
}

// Summary returns the summary of the statistic called name.
func (c *Collector[T]) Summary(_ context.Context, name string) (Summary, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	value, ok := c.stats[name]
	if !ok {
		return Summary{}, ewrap.Wrap(sentinel.ErrStatNotFound, name)
	}

	return Summarize(name, value, c.percentiles)
}

// Snapshot summarizes every statistic, in first-record order.
func (c *Collector[T]) Snapshot(_ context.Context) (Report, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	report := Report{Stats: make([]Summary, 0, len(c.names))}

	for _, name := range c.names {
		summary, err := Summarize(name, c.stats[name], c.percentiles)
		if err != nil {
			return Report{}, err
		}

		report.Stats = append(report.Stats, summary)
	}

	return report, nil
}

// Series copies every statistic into a stat.Series keyed by name, in first-record order.
// The copy is detached from the collector and can be queried without locking.
func (c *Collector[T]) Series(_ context.Context) (*stat.Series[string, T], error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := stat.NewSeries[string, T]()

	for _, name := range c.names {
		value, err := stat.FromSamples(c.stats[name].Samples()...)
		if err != nil {
			return nil, ewrap.Wrap(err, name)
		}

		err = out.Push(name, value)
		if err != nil {
			return nil, err
		}
	}

	return out, nil
}

// Export encodes a snapshot with the configured serializer.
func (c *Collector[T]) Export(ctx context.Context) ([]byte, error) {
	report, err := c.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	s, err := c.serializers.New(c.serializerName)
	if err != nil {
		return nil, err
	}

	return report.Encode(s)
}

// Summarize computes the summary of value. The standard deviation is left at zero
// for a single-sample value instead of failing the whole summary.
func Summarize[T series.Sample](name string, value *stat.Value[T], percentiles []float64) (Summary, error) {
	lo, err := value.Min()
	if err != nil {
		return Summary{}, ewrap.Wrap(err, name)
	}

	hi, err := value.Max()
	if err != nil {
		return Summary{}, ewrap.Wrap(err, name)
	}

	mean, err := value.Mean()
	if err != nil {
		return Summary{}, ewrap.Wrap(err, name)
	}

	stddev, err := value.StdDev()
	if err != nil && !errors.Is(err, sentinel.ErrInsufficientSamples) {
		return Summary{}, ewrap.Wrap(err, name)
	}

	summary := Summary{
		Name:        name,
		Count:       value.Len(),
		Min:         float64(lo),
		Max:         float64(hi),
		Mean:        float64(mean),
		StdDev:      stddev,
		Percentiles: make([]Quantile, 0, len(percentiles)),
		Digest:      value.Digest(),
	}

	for _, p := range percentiles {
		v, err := value.Percentile(p)
		if err != nil {
			return Summary{}, ewrap.Wrap(err, name)
		}

		summary.Percentiles = append(summary.Percentiles, Quantile{P: p, Value: float64(v)})
	}

	return summary, nil
}
