package seq

import (
	"iter"

	"github.com/ib-77/fluff/pkg/fluff"
	"github.com/ib-77/fluff/pkg/fluff/object"
)

type Pair[K, V any] struct {
	Key   K
	Value V
}

// Pairs turns a key/value sequence into a sequence of Pair
func Pairs[K, V any](source iter.Seq2[K, V]) iter.Seq[Pair[K, V]] {
	fluff.MustNotBeNil("source", source)

	return func(yield func(Pair[K, V]) bool) {
		for k, v := range source {
			if !yield(Pair[K, V]{Key: k, Value: v}) {
				return
			}
		}
	}
}

// ValueOrDefault returns the value of the first pair whose key equals key,
// or the zero V when there is none.
func ValueOrDefault[K, V any](source iter.Seq2[K, V], key K, comparers ...fluff.Comparer[K]) V {
	comparer := fluff.Pick(comparers)
	byKey := fluff.EqualFunc(func(a, b Pair[K, V]) bool {
		return fluff.Equals(a.Key, b.Key, comparer)
	})

	found := FirstOrDefault(Pairs(source), byKey, Pair[K, V]{Key: key})

	return object.SelectOrDefault(found, func(p Pair[K, V]) V {
		return p.Value
	})
}
