package seq

import (
	"iter"

	"github.com/ib-77/fluff/pkg/fluff"
)

// ForEach calls action for every element, in order
func ForEach[T any](source iter.Seq[T], action func(T)) {
	fluff.MustNotBeNil("source", source)
	fluff.MustNotBeNil("action", action)

	for v := range source {
		action(v)
	}
}

// TryForEach stops at the first error returned by action and returns it as is
func TryForEach[T any](source iter.Seq[T], action func(T) error) error {
	fluff.MustNotBeNil("source", source)
	fluff.MustNotBeNil("action", action)

	for v := range source {
		if err := action(v); err != nil {
			return err
		}
	}
	return nil
}

// None reports whether source yields no element
func None[T any](source iter.Seq[T]) bool {
	fluff.MustNotBeNil("source", source)

	for range source {
		return false
	}
	return true
}

// NoneFunc reports whether no element matches predicate
func NoneFunc[T any](source iter.Seq[T], predicate func(T) bool) bool {
	fluff.MustNotBeNil("source", source)
	fluff.MustNotBeNil("predicate", predicate)

	for v := range source {
		if predicate(v) {
			return false
		}
	}
	return true
}

// First returns the first element e with comparer.Equal(e, value).
// A nil comparer means structural equality.
func First[T any](source iter.Seq[T], comparer fluff.Comparer[T], value T) (T, error) {
	if v, ok := first(source, comparer, value); ok {
		return v, nil
	}

	var zero T
	return zero, fluff.NotFound("no element matches %v", value)
}

// FirstOrDefault is First returning the zero T when nothing matches
func FirstOrDefault[T any](source iter.Seq[T], comparer fluff.Comparer[T], value T) T {
	v, _ := first(source, comparer, value)
	return v
}

// FirstOrDefaultFunc calls factory only when nothing matches
func FirstOrDefaultFunc[T any](source iter.Seq[T], comparer fluff.Comparer[T], value T, factory func() T) T {
	fluff.MustNotBeNil("factory", factory)

	if v, ok := first(source, comparer, value); ok {
		return v
	}
	return factory()
}

func first[T any](source iter.Seq[T], comparer fluff.Comparer[T], value T) (T, bool) {
	fluff.MustNotBeNil("source", source)

	for v := range source {
		if fluff.Equals(v, value, comparer) {
			return v, true
		}
	}

	var zero T
	return zero, false
}

// Safe returns an empty sequence for a nil source
func Safe[T any](source iter.Seq[T]) iter.Seq[T] {
	if source == nil {
		return Empty[T]()
	}
	return source
}

// Empty returns a sequence that yields nothing
func Empty[T any]() iter.Seq[T] {
	return func(yield func(T) bool) {}
}

// Require reports whether source yields at least count elements. It stops
// pulling once count is reached. An empty source never satisfies Require,
// not even for count <= 0.
func Require[T any](source iter.Seq[T], count int) bool {
	fluff.MustNotBeNil("source", source)

	i := 0
	for range source {
		i++
		if i >= count {
			return true
		}
	}
	return false
}

// RequireFunc is Require counting only the elements matching predicate
func RequireFunc[T any](source iter.Seq[T], count int, predicate func(T) bool) bool {
	fluff.MustNotBeNil("source", source)
	fluff.MustNotBeNil("predicate", predicate)

	i := 0
	for v := range source {
		if predicate(v) {
			i++
		}
		if i >= count {
			return true
		}
	}
	return false
}
