// Package object provides null/default aware combinators over a single value.
//
// A value is absent when it is nil (interface, pointer, map, slice, channel,
// function) or equal to the zero value of its type. Equality uses the first
// non-nil comparer passed in, otherwise structural equality.
//
// Key operations:
// - IsNullOrDefault: the presence predicate everything else builds on
// - Default/DefaultFunc: substitute a fallback for an absent value
// - SelectOrDefault/SelectOrDefaultValue/SelectOrDefaultFunc: project a present value
// - Maybe: run an action only for a present value
// - As/MaybeAs: comma-ok casts, chainable as a type switch
package object
