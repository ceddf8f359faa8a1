package seq

import (
	"iter"
	"strconv"

	"github.com/ib-77/fluff/pkg/fluff"
)

// Distribute calls actions[i](e) for the i-th element e. Once the actions run
// out it stops pulling from source, so with no actions nothing is consumed.
func Distribute[T any](source iter.Seq[T], actions ...func(T)) {
	fluff.MustNotBeNil("source", source)
	mustActions(actions)

	if len(actions) == 0 {
		return
	}

	i := 0
	for v := range source {
		actions[i](v)

		i++
		if i == len(actions) {
			return
		}
	}
}

// DistributeWithOverflow is Distribute, except that elements left over once
// the actions run out are all passed to overflow.
func DistributeWithOverflow[T any](source iter.Seq[T], overflow func(T), actions ...func(T)) {
	fluff.MustNotBeNil("source", source)
	fluff.MustNotBeNil("overflow", overflow)
	mustActions(actions)

	i := 0
	for v := range source {
		if i < len(actions) {
			actions[i](v)
			i++
			continue
		}

		overflow(v)
	}
}

func mustActions[T any](actions []func(T)) {
	for i, a := range actions {
		fluff.MustNotBeNil("actions["+strconv.Itoa(i)+"]", a)
	}
}
