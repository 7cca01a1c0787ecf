package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/hyp3rd/ewrap"

	"github.com/hyp3rd/neurketa"
	"github.com/hyp3rd/neurketa/pkg/middleware"
	"github.com/hyp3rd/neurketa/pkg/stat"
	"github.com/hyp3rd/neurketa/pkg/timeseries"
)

// category identifies a measured step across runs.
type category struct {
	Label string
	Depth int
}

func main() {
	logger := log.New(os.Stderr, "neurketa ", log.LstdFlags)

	err := run(context.Background(), logger)
	if err != nil {
		logger.Printf("failed: %v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *log.Logger) error {
	runs := [][]timeseries.Event{
		{
			{Duration: 3400 * time.Millisecond, Label: "first"},
			{Duration: 1200 * time.Millisecond, Label: "second"},
			{Duration: 4200 * time.Millisecond, Label: "last"},
		},
		{
			{Duration: 3100 * time.Millisecond, Label: "first"},
			{Duration: 1500 * time.Millisecond, Depth: 1, Label: "second"},
			{Duration: 3900 * time.Millisecond, Label: "last"},
		},
		{
			{Duration: 3600 * time.Millisecond, Label: "first"},
			{Duration: 1100 * time.Millisecond, Depth: 1, Label: "second"},
			{Duration: 4800 * time.Millisecond, Label: "last"},
		},
	}

	collector, err := neurketa.NewCollector(neurketa.WithPercentiles[float64](0.5, 0.9, 1))
	if err != nil {
		return err
	}

	svc := middleware.NewLoggingMiddleware[float64](collector, logger)

	for i, events := range runs {
		ts, err := timeseries.New(events...)
		if err != nil {
			return ewrap.Wrapf(err, "run %d", i)
		}

		logger.Printf("run %d: %d events, total %s", i, ts.Len(), ts.Total())

		for _, e := range ts.Events() {
			err = svc.Record(ctx, e.Label, e.Duration.Seconds())
			if err != nil {
				return err
			}
		}
	}

	byCategory, err := categories(runs)
	if err != nil {
		return err
	}

	means, err := byCategory.Mean()
	if err != nil {
		return err
	}

	maxs, err := byCategory.Max()
	if err != nil {
		return err
	}

	for i, m := range means {
		fmt.Fprintf(os.Stdout, "%-8s depth=%d mean=%.3fs max=%.3fs\n", m.Coordinate.Label, m.Coordinate.Depth, m.Value, maxs[i].Value)
	}

	report, err := svc.Export(ctx)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(os.Stdout, string(report))

	return err
}

// categories groups event durations of every run by label and depth, in first-seen order.
func categories(runs [][]timeseries.Event) (*stat.Series[category, float64], error) {
	g := stat.NewGrouper[category, float64]()

	for _, events := range runs {
		for _, e := range events {
			err := g.Add(category{Label: e.Label, Depth: e.Depth}, e.Duration.Seconds())
			if err != nil {
				return nil, ewrap.Wrap(err, e.Label)
			}
		}
	}

	return g.Series(), nil
}
