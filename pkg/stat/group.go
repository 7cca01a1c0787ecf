package stat

import (
	"github.com/hyp3rd/neurketa/pkg/series"
)

// Grouper accumulates samples into one Value per key and turns them into a Series
// whose coordinates follow the order keys were first added in.
type Grouper[K comparable, T series.Sample] struct {
	values map[K]*Value[T]
	order  []K
}

// NewGrouper returns an empty Grouper.
func NewGrouper[K comparable, T series.Sample]() *Grouper[K, T] {
	return &Grouper[K, T]{values: make(map[K]*Value[T])}
}

// Add pushes sample into the value of key. A rejected sample does not create the key.
func (g *Grouper[K, T]) Add(key K, sample T) error {
	v, ok := g.values[key]
	if !ok {
		v = NewValue[T]()
	}

	err := v.Push(sample)
	if err != nil {
		return err
	}

	if !ok {
		g.values[key] = v
		g.order = append(g.order, key)
	}

	return nil
}

// Len returns the number of keys.
func (g *Grouper[K, T]) Len() int { return len(g.order) }

// Series returns the grouped values keyed in first-added order. The values are
// shared with the Grouper.
func (g *Grouper[K, T]) Series() *Series[K, T] {
	out := NewSeries[K, T]()

	for _, key := range g.order {
		// values are never nil
		_ = out.Push(key, g.values[key])
	}

	return out
}
