package fluff

import "hash/maphash"

// Comparer defines equality and hashing for T, overriding structural equality
type Comparer[T any] interface {
	// Equal reports whether a and b are equal
	Equal(a, b T) bool
	// Hash returns a hash consistent with Equal
	Hash(v T) uint64
}

// ComparerFunc adapts a pair of closures to Comparer. EqualFunc is required;
// a nil HashFunc hashes everything to zero, which is valid but degenerate.
type ComparerFunc[T any] struct {
	EqualFunc func(a, b T) bool
	HashFunc  func(v T) uint64
}

func (c ComparerFunc[T]) Equal(a, b T) bool {
	MustNotBeNil("EqualFunc", c.EqualFunc)
	return c.EqualFunc(a, b)
}

func (c ComparerFunc[T]) Hash(v T) uint64 {
	if c.HashFunc == nil {
		return 0
	}
	return c.HashFunc(v)
}

// EqualFunc builds a Comparer from an equality function only
func EqualFunc[T any](equal func(a, b T) bool) Comparer[T] {
	MustNotBeNil("equal", equal)
	return ComparerFunc[T]{EqualFunc: equal}
}

type defaultComparer[T comparable] struct {
	seed maphash.Seed
}

// DefaultComparer compares with == and hashes with maphash
func DefaultComparer[T comparable]() Comparer[T] {
	return defaultComparer[T]{seed: maphash.MakeSeed()}
}

func (c defaultComparer[T]) Equal(a, b T) bool {
	return a == b
}

func (c defaultComparer[T]) Hash(v T) uint64 {
	return maphash.Comparable(c.seed, v)
}

// Pick returns the first non-nil comparer, or nil when there is none.
// It backs the optional trailing comparers ...Comparer[T] parameters.
func Pick[T any](comparers []Comparer[T]) Comparer[T] {
	for _, c := range comparers {
		if !IsNil(c) {
			return c
		}
	}
	return nil
}

// Equals compares left and right with the first non-nil comparer, falling
// back to structural equality.
func Equals[T any](left, right T, comparers ...Comparer[T]) bool {
	if c := Pick(comparers); c != nil {
		return c.Equal(left, right)
	}
	return StructuralEqual(left, right)
}
