/*
Package channel provides bounded, backpressure-aware channels with a
transducer pipeline attached at construction.

A transducing channel goes beyond Go's built-in channels: every value put in
is transformed through a pipeline on the producer's goroutine, the buffer
holds the post-transform outputs, and backpressure is configurable when
producers outrun consumers.

Core Features:

Key Components:
  - Channel: bounded FIFO with an attached transducer pipeline
  - ReadChannel: the consumer surface, shared across input types for Select
  - Select: wait on several channels at once with a timeout
  - Multiple backpressure strategies (Block, Drop, DropOldest, Error)
  - Comprehensive statistics and optional Prometheus metrics

Transformation on Put:

The pipeline runs synchronously inside Put, so transformation cost lands on
the producer and the consumer only ever sees finished outputs. A single put
may buffer zero outputs (filtered out), one, or several (a stateful flush):

	xf := transduce.Compose(
		transduce.Filter(func(n int) bool { return n%2 == 0 }),
		transduce.Map(func(n int) int { return n * n }),
	)
	ch := NewTransforming[int, int](16, xf)

	ch.Put(ctx, 3) // filtered out, buffers nothing
	ch.Put(ctx, 4) // buffers 16

Puts are serialized by the channel's own mutex, so one stateful pipeline
shared by many producers is safe; outputs are buffered in put order.

Early Termination:

When the pipeline returns a reduced accumulator (for example a Take
transducer that has seen enough), the channel completes the pipeline and
closes itself. Subsequent puts fail with ErrClosed and takers drain the
buffer before seeing ErrClosed:

	ch := NewTransforming[int, int](16, transduce.Take[int](2))
	ch.Put(ctx, 1)
	ch.Put(ctx, 2) // pipeline done, channel closes itself
	ch.Put(ctx, 3) // ErrClosed

Backpressure Strategies:

Block (the default) blocks the producer until space is available. Drop
discards the newest output when the buffer is full, DropOldest evicts the
oldest buffered output, and Error returns ErrFull:

	config := Config{
		Capacity: 10,
		Strategy: DropOldest,
		OnDrop: func(value interface{}) {
			log.Printf("dropped: %v", value)
		},
	}
	ch := NewWithConfig[int, int](config, transduce.Identity[int]())

Zero Capacity:

A capacity of zero makes every put a synchronous hand-off: the put completes
only when a taker is waiting for the value, like an unbuffered Go channel.

Closing:

Close completes the attached pipeline exactly once. A pending stateful flush
(for example an open PartitionBy group) is appended to the buffer even if
that momentarily exceeds capacity, then all blocked producers and consumers
are woken. Take returns ErrClosed only after the buffer has drained, so
ErrClosed doubles as the end-of-data signal:

	for {
		v, err := ch.Take(ctx)
		if err != nil {
			break // closed and drained
		}
		process(v)
	}

Select:

Select waits on several channels of the same output type and returns the
first available value with its source. When several channels are ready the
lowest index in the slice wins; after the timeout with no value it returns
ErrTimeout:

	v, src, err := Select(ctx, []ReadChannel[int]{a, b}, 100*time.Millisecond)
	switch {
	case err == nil:
		fmt.Println("got", v, "from", src)
	case errors.Is(err, ErrTimeout):
		// nothing ready in time
	case errors.Is(err, ErrClosed):
		// src is closed and drained; drop it from the slice
	}

Statistics:

	stats := ch.Stats()
	fmt.Printf("Puts: %d\n", stats.PutCount)
	fmt.Printf("Outputs: %d\n", stats.OutputCount)
	fmt.Printf("Takes: %d\n", stats.TakeCount)
	fmt.Printf("Dropped: %d\n", stats.DroppedCount)
	fmt.Printf("Utilization: %.1f%%\n", stats.BufferUtilization*100)

Thread Safety:

All operations are safe for concurrent use from multiple goroutines. Puts
are serialized to protect the pipeline state; takes and selects contend only
on the buffer lock.
*/
package channel
