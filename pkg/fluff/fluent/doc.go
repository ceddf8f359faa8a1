// Package fluent provides a Chain[T] wrapper around iter.Seq so the seq
// helpers read left to right:
//
//	fluent.FromValues(1, 2, 3).
//		Do(log).
//		Prepend(0).
//		ForEach(send)
//
// Key operations:
// - Start/FromValues/FromChan: begin a chain
// - Do/Prepend/Append: lazy steps returning a new Chain
// - ForEach/None/Require/First/Distribute: terminal steps from package seq
// - Map: change the element type (a function, since methods cannot add type parameters)
//
// A Chain holds no state besides its sequence; it ranges the sequence once
// per terminal call.
package fluent
