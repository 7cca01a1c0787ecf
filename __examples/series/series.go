package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/hyp3rd/neurketa/internal/sentinel"
	"github.com/hyp3rd/neurketa/pkg/stat"
)

func main() {
	// One statistical value per input size, pushed in run order.
	sizes := stat.NewSeries[int, int64]()

	runs := map[int][]int64{
		1000: {120, 131, 118, 125},
		10:   {3, 4, 3},
		100:  {19, 22, 21, 20, 18},
	}

	for _, size := range []int{1000, 10, 100} {
		v, err := stat.FromSamples(runs[size]...)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)

			return
		}

		_ = sizes.Push(size, v)
	}

	medians, err := sizes.Percentile(0.5)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)

		return
	}

	for _, p := range medians {
		fmt.Fprintf(os.Stdout, "size=%d median=%dus\n", p.Coordinate, p.Value)
	}

	// A single-sample entry makes the stddev broadcast fail on that entry.
	single, _ := stat.FromSamples[int64](7)
	_ = sizes.Push(5, single)

	_, err = sizes.StdDev()
	if errors.Is(err, sentinel.ErrInsufficientSamples) {
		fmt.Fprintln(os.Stdout, "stddev needs at least two samples per entry:", err)
	}
}
