package seq

import (
	"context"
	"iter"
	"slices"

	"github.com/ib-77/fluff/pkg/fluff"
)

// FromValues returns a restartable sequence over values
func FromValues[T any](values ...T) iter.Seq[T] {
	return slices.Values(values)
}

// FromChan returns a single-pass sequence reading ch until it is closed or
// ctx is done. Ranging it a second time continues where the first stopped.
func FromChan[T any](ctx context.Context, ch <-chan T) iter.Seq[T] {
	fluff.MustNotBeNil("ch", ch)

	return func(yield func(T) bool) {
		for {
			if ctx.Err() != nil {
				return
			}

			select {
			case v, ok := <-ch:
				if !ok {
					return
				}
				if !yield(v) {
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}
}

// ToChan ranges source in a new goroutine and sends every element to the
// returned channel, which is closed when source ends or ctx is done.
func ToChan[T any](ctx context.Context, source iter.Seq[T]) <-chan T {
	fluff.MustNotBeNil("source", source)

	out := make(chan T)

	go func() {
		defer close(out)

		if ctx.Err() != nil {
			return
		}

		for v := range source {
			select {
			case out <- v:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

// FromChanMany drains source into a slice, stopping early when ctx is done
func FromChanMany[T any](ctx context.Context, source <-chan T) []T {
	return slices.Collect(FromChan(ctx, source))
}
