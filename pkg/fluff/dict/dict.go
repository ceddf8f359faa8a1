// Package dict provides safe map accessors.
package dict

import (
	"github.com/ib-77/fluff/pkg/fluff"
	"github.com/ib-77/fluff/pkg/fluff/object"
)

// GetOrDefault returns m[key], or the zero V when key is absent. A nil map is
// treated as empty.
func GetOrDefault[M ~map[K]V, K comparable, V any](m M, key K) V {
	return m[key]
}

// GetOrDefaultValue returns fallback when key is absent. A stored zero value
// counts as present.
func GetOrDefaultValue[M ~map[K]V, K comparable, V any](m M, key K, fallback V) V {
	if v, ok := m[key]; ok {
		return v
	}
	return fallback
}

// SelectOrDefaultKey projects the value stored under key with selector, or
// returns fallback when the key is missing or its value is null/default.
func SelectOrDefaultKey[M ~map[K]V, K comparable, V, R any](m M, key K, selector func(V) R, fallback R,
	comparers ...fluff.Comparer[V]) R {
	fluff.MustNotBeNil("selector", selector)

	return object.SelectOrDefaultValue(m[key], selector, fallback, comparers...)
}
