// Package timeseries models a run as an ordered sequence of timed events.
// A Series only carries durations, nesting depths and labels; drawing it and
// aggregating it are left to other packages.
package timeseries

import (
	"time"

	"github.com/hyp3rd/ewrap"

	"github.com/hyp3rd/neurketa/internal/sentinel"
	"github.com/hyp3rd/neurketa/pkg/stat"
)

// Event is a single timed step of a run.
type Event struct {
	Duration time.Duration `json:"duration" msgpack:"duration" codec:"duration"`
	Depth    int           `json:"depth"    msgpack:"depth"    codec:"depth"`
	Label    string        `json:"label"    msgpack:"label"    codec:"label"`
}

// Mark is a point in time reached by a run, used to derive an Event from an origin.
type Mark struct {
	At    time.Time
	Depth int
	Label string
}

// Series is an ordered sequence of events.
type Series struct {
	events []Event
}

// New returns a Series holding events in the given order.
func New(events ...Event) (*Series, error) {
	for i, e := range events {
		if e.Duration < 0 {
			return nil, ewrap.Wrapf(sentinel.ErrNegativeDuration, "event %d (%s)", i, e.Label)
		}
	}

	out := make([]Event, len(events))
	copy(out, events)

	return &Series{events: out}, nil
}

// FromMarks builds a Series whose event durations are measured from origin to each mark.
func FromMarks(origin time.Time, marks ...Mark) (*Series, error) {
	events := make([]Event, 0, len(marks))
	for _, m := range marks {
		events = append(events, Event{Duration: m.At.Sub(origin), Depth: m.Depth, Label: m.Label})
	}

	return New(events...)
}

// Len returns the number of events.
func (s *Series) Len() int { return len(s.events) }

// Events returns a copy of the events.
func (s *Series) Events() []Event {
	out := make([]Event, len(s.events))
	copy(out, s.events)

	return out
}

// Total returns the sum of every event duration.
func (s *Series) Total() time.Duration {
	var total time.Duration
	for _, e := range s.events {
		total += e.Duration
	}

	return total
}

// Durations returns the event durations, in seconds, as a statistical value.
func (s *Series) Durations() (*stat.Value[float64], error) {
	v := stat.NewValue[float64]()

	for _, e := range s.events {
		err := v.Push(e.Duration.Seconds())
		if err != nil {
			return nil, ewrap.Wrap(err, e.Label)
		}
	}

	return v, nil
}

// ByDepth groups event durations, in seconds, by nesting depth. Depths appear in
// the order they are first met.
func (s *Series) ByDepth() (*stat.Series[int, float64], error) {
	g := stat.NewGrouper[int, float64]()

	for _, e := range s.events {
		err := g.Add(e.Depth, e.Duration.Seconds())
		if err != nil {
			return nil, ewrap.Wrap(err, e.Label)
		}
	}

	return g.Series(), nil
}
