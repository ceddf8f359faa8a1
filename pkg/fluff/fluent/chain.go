package fluent

import (
	"context"
	"iter"
	"slices"

	"github.com/ib-77/fluff/pkg/fluff"
	"github.com/ib-77/fluff/pkg/fluff/seq"
)

type Chain[T any] struct {
	seq iter.Seq[T]
}

// Start wraps source; a nil source becomes an empty chain
func Start[T any](source iter.Seq[T]) Chain[T] {
	return Chain[T]{seq: seq.Safe(source)}
}

func FromValues[T any](values ...T) Chain[T] {
	return Start(seq.FromValues(values...))
}

// FromChan starts a single-pass chain reading ch until it closes or ctx is done
func FromChan[T any](ctx context.Context, ch <-chan T) Chain[T] {
	return Start(seq.FromChan(ctx, ch))
}

// Seq returns the underlying sequence
func (c Chain[T]) Seq() iter.Seq[T] {
	return seq.Safe(c.seq)
}

func (c Chain[T]) Do(action func(T)) Chain[T] {
	return Chain[T]{seq: seq.Do(c.Seq(), action)}
}

func (c Chain[T]) Prepend(value T) Chain[T] {
	return Chain[T]{seq: seq.Prepend(c.Seq(), value)}
}

func (c Chain[T]) Append(value T) Chain[T] {
	return Chain[T]{seq: seq.Append(c.Seq(), value)}
}

// Map lazily transforms every element
func Map[T, U any](c Chain[T], mapper func(T) U) Chain[U] {
	fluff.MustNotBeNil("mapper", mapper)

	source := c.Seq()
	return Chain[U]{seq: func(yield func(U) bool) {
		for v := range source {
			if !yield(mapper(v)) {
				return
			}
		}
	}}
}

func (c Chain[T]) Collect() []T {
	return slices.Collect(c.Seq())
}

func (c Chain[T]) ForEach(action func(T)) {
	seq.ForEach(c.Seq(), action)
}

func (c Chain[T]) TryForEach(action func(T) error) error {
	return seq.TryForEach(c.Seq(), action)
}

func (c Chain[T]) None() bool {
	return seq.None(c.Seq())
}

func (c Chain[T]) NoneFunc(predicate func(T) bool) bool {
	return seq.NoneFunc(c.Seq(), predicate)
}

func (c Chain[T]) Require(count int) bool {
	return seq.Require(c.Seq(), count)
}

func (c Chain[T]) RequireFunc(count int, predicate func(T) bool) bool {
	return seq.RequireFunc(c.Seq(), count, predicate)
}

func (c Chain[T]) First(comparer fluff.Comparer[T], value T) (T, error) {
	return seq.First(c.Seq(), comparer, value)
}

func (c Chain[T]) FirstOrDefault(comparer fluff.Comparer[T], value T) T {
	return seq.FirstOrDefault(c.Seq(), comparer, value)
}

func (c Chain[T]) FirstOrDefaultFunc(comparer fluff.Comparer[T], value T, factory func() T) T {
	return seq.FirstOrDefaultFunc(c.Seq(), comparer, value, factory)
}

func (c Chain[T]) Distribute(actions ...func(T)) {
	seq.Distribute(c.Seq(), actions...)
}

func (c Chain[T]) DistributeWithOverflow(overflow func(T), actions ...func(T)) {
	seq.DistributeWithOverflow(c.Seq(), overflow, actions...)
}
