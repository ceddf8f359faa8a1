// Package seq provides combinators over iter.Seq.
//
// Eager operations (ForEach, None, First, Require, Distribute) consume the
// source in the calling goroutine and stop as soon as the answer is known.
// Lazy operations (Do, Prepend, Append) return a new iter.Seq that only does
// work as the consumer pulls elements. No operation ranges a source more than
// once, so single-pass sources such as FromChan are safe to use.
//
// Nil callbacks panic with fluff.ErrInvalidArgument before the source is touched.
package seq
