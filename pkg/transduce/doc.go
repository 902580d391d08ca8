/*
Package transduce provides composable data-transformation steps that are
independent of their input source, their output destination, and the
execution context that drives them.

A transformation step is expressed as a Transducer: a function from one
reducing function to another. The same transducer value can drive an
eager collection build (Into), a strict fold (Transduce), a lazy
pull-based sequence (pkg/streaming/sequence), or a concurrent bounded
channel (pkg/streaming/channel), without change.

Core Concepts:

Reducing functions bundle three operations: Init produces the starting
accumulator, Step folds one input into it, and Complete runs exactly
once at the end of a run to flush pending state.

	sum := transduce.NewReducer[int](
		func() interface{} { return 0 },
		func(acc interface{}, v int) interface{} { return acc.(int) + v },
		nil,
	)

Transducers wrap reducing functions. Compose builds a single transducer
from several; the first-listed transducer is the first to see raw input:

	xf := transduce.Compose(
		transduce.Filter(func(n int) bool { return n%2 == 1 }),
		transduce.Map(func(n int) int { return n + 1 }),
	)

	total := transduce.Transduce(xf, sum, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9})
	// total == 30

Early Termination:

A Step may return a *Reduced wrapping the accumulator, meaning "stop
feeding input". Every context honors the signal and still calls
Complete exactly once on the unwrapped accumulator. Take is built on
this protocol:

	first3 := transduce.Into(transduce.Take[int](3), []int{1, 2, 3, 4, 5})
	// first3 == []int{1, 2, 3}

Stateful Transducers:

Dedupe and PartitionBy carry private per-run state (previous-value
memory, a pending run buffer). The state is allocated when the
transducer is applied to a reducing function, so each constructed
pipeline is independent. Sharing one applied pipeline across concurrent
goroutines requires external synchronization; the channel context does
this with its own put serialization.

Contract Discipline:

Calling Step after Complete, or Complete twice, is a programming error.
Stateful reducers panic when they detect it; the violation is never
silently absorbed.
*/
package transduce
