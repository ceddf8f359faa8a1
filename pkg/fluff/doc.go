// Package fluff holds the pieces shared by the helper packages: the Comparer
// capability, structural equality and the error taxonomy.
//
// The helpers themselves live in subpackages:
// - object: null/default aware combinators (Default, SelectOrDefault, Maybe, As)
// - seq: combinators over iter.Seq (ForEach, None, First, Do, Prepend, Distribute)
// - fluent: a Chain[T] wrapper to call seq helpers in a fluent style
// - lock: double-checked locking keyed on object identity
// - dict, str: small map and string accessors
package fluff
