package seq

import (
	"iter"

	"github.com/ib-77/fluff/pkg/fluff"
)

// Do runs action on each element as it is pulled, then yields it unchanged.
// Nothing happens until the returned sequence is ranged.
func Do[T any](source iter.Seq[T], action func(T)) iter.Seq[T] {
	fluff.MustNotBeNil("source", source)
	fluff.MustNotBeNil("action", action)

	return func(yield func(T) bool) {
		for v := range source {
			action(v)

			if !yield(v) {
				return
			}
		}
	}
}

// Prepend lazily yields value, then every element of source
func Prepend[T any](source iter.Seq[T], value T) iter.Seq[T] {
	fluff.MustNotBeNil("source", source)

	return func(yield func(T) bool) {
		if !yield(value) {
			return
		}

		for v := range source {
			if !yield(v) {
				return
			}
		}
	}
}

// Append lazily yields every element of source, then value
func Append[T any](source iter.Seq[T], value T) iter.Seq[T] {
	fluff.MustNotBeNil("source", source)

	return func(yield func(T) bool) {
		for v := range source {
			if !yield(v) {
				return
			}
		}

		yield(value)
	}
}
