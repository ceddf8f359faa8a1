package object

import (
	"github.com/ib-77/fluff/pkg/fluff"
)

// IsNullOrDefault reports whether source is nil or equal to the zero value of T
func IsNullOrDefault[T any](source T, comparers ...fluff.Comparer[T]) bool {
	if fluff.IsNil(source) {
		return true
	}

	if c := fluff.Pick(comparers); c != nil {
		var zero T
		return c.Equal(source, zero)
	}
	return fluff.IsZero(source)
}

// Default returns fallback when source is absent, otherwise source
func Default[T any](source T, fallback T, comparers ...fluff.Comparer[T]) T {
	if IsNullOrDefault(source, comparers...) {
		return fallback
	}
	return source
}

// DefaultFunc calls factory only when source is absent
func DefaultFunc[T any](source T, factory func() T, comparers ...fluff.Comparer[T]) T {
	fluff.MustNotBeNil("factory", factory)

	if IsNullOrDefault(source, comparers...) {
		return factory()
	}
	return source
}

// SelectOrDefault returns selector(source), or the zero R when source is absent
func SelectOrDefault[T, R any](source T, selector func(T) R, comparers ...fluff.Comparer[T]) R {
	fluff.MustNotBeNil("selector", selector)

	if IsNullOrDefault(source, comparers...) {
		var zero R
		return zero
	}
	return selector(source)
}

// SelectOrDefaultValue returns selector(source), or fallback when source is absent
func SelectOrDefaultValue[T, R any](source T, selector func(T) R, fallback R,
	comparers ...fluff.Comparer[T]) R {
	fluff.MustNotBeNil("selector", selector)

	if IsNullOrDefault(source, comparers...) {
		return fallback
	}
	return selector(source)
}

// SelectOrDefaultFunc is SelectOrDefaultValue with a lazily built fallback
func SelectOrDefaultFunc[T, R any](source T, selector func(T) R, factory func() R,
	comparers ...fluff.Comparer[T]) R {
	fluff.MustNotBeNil("selector", selector)
	fluff.MustNotBeNil("factory", factory)

	if IsNullOrDefault(source, comparers...) {
		return factory()
	}
	return selector(source)
}

// Maybe calls action with source only when source is present
func Maybe[T any](source T, action func(T), comparers ...fluff.Comparer[T]) {
	fluff.MustNotBeNil("action", action)

	if !IsNullOrDefault(source, comparers...) {
		action(source)
	}
}

// As casts source to R. On failure it returns the zero R and false, so a
// failed cast to a pointer or interface type yields nil.
func As[R any](source any) (R, bool) {
	r, ok := source.(R)
	return r, ok
}

// MaybeAs runs action with source cast to R when the cast succeeds and the
// result is present. It always returns source unchanged, so calls chain:
//
//	object.MaybeAs(object.MaybeAs(v, onReader), onCloser)
func MaybeAs[T, R any](source T, action func(R)) T {
	fluff.MustNotBeNil("action", action)

	if r, ok := As[R](any(source)); ok {
		Maybe(r, action)
	}
	return source
}
