/*
Package goxf provides composable transformation pipelines (transducers) for
Go, decoupled from the contexts that execute them.

Core (pkg/transduce):
  - Reducer: the step contract every reduction is built on
  - Transducer: reducer-to-reducer transformers (Map, Filter, Take,
    Dedupe, PartitionBy) composed with Compose
  - Into / Transduce: eager execution over slices
  - Reduced: early termination that any transducer can request

Execution Contexts (pkg/streaming):
  - sequence: Lazy pull-based transformation over incremental sources
  - channel: Bounded channels that transform on put, with backpressure
    strategies and multi-channel Select

Sinks (pkg/sinks):
  - Lines: buffered line-oriented writing to any io.Writer
  - RedisList: ordered delivery into a Redis list

Example usage:

	import (
		"github.com/vnykmshr/goxf/pkg/streaming/channel"
		"github.com/vnykmshr/goxf/pkg/transduce"
	)

	xf := transduce.Compose(
		transduce.Filter(func(n int) bool { return n > 0 }),
		transduce.Map(func(n int) int { return n * n }),
	)

	// Same pipeline, three contexts:
	squares := transduce.Into(xf, inputs)            // eager
	seq := sequence.New(xf, sequence.FromSlice(inputs)) // lazy
	ch := channel.NewTransforming[int, int](64, xf)     // concurrent
*/
package goxf
