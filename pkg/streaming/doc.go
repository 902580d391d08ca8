/*
Package streaming offers execution contexts that drive transducer pipelines
over data arriving incrementally, beyond the eager slice helpers in
pkg/transduce.

This package provides two streaming components:

  - sequence: Lazy pull-based sequences that transform values on demand
  - channel: Bounded, backpressure-aware channels that transform on put

Basic usage:

	// Lazy: nothing is pulled until Next is called
	seq := sequence.New(xf, sequence.FromSlice(data))
	defer seq.Close()
	v, ok, err := seq.Next(ctx)

	// Concurrent: producers transform, consumers take finished outputs
	ch := channel.NewTransforming[int, int](64, xf)
	defer ch.Close()

Both contexts honor the same pipeline semantics: stateful transducers flush
on completion, and a reduced value from the pipeline ends the context early.
*/
package streaming
