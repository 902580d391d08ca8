/*
Package sinks provides reducers that deliver pipeline outputs to external
destinations.

A sink is an ordinary reducer, so it plugs in wherever a reduction bottoms
out: pass it to transduce.Transduce, attach transducers in front of it with
Compose, and let early termination stop the reduction when the destination
fails.

Lines writes each value as one line to an io.Writer through a buffered
writer, flushing on Complete:

	var buf bytes.Buffer
	xf := transduce.Map(strings.ToUpper)
	transduce.Transduce(xf, sinks.Lines(&buf), []string{"a", "b"})
	// buf now holds "A\nB\n"

RedisList appends each value to a Redis list, in step order:

	sink := sinks.RedisList(sinks.RedisListConfig{
		Client: client,
		Key:    "events",
	})
	transduce.Transduce(xf, sink, events)

Error Handling:

Sinks stop the reduction on delivery failure by returning a reduced
accumulator, so a broken destination does not consume the rest of the
input. The error itself is reported through the OnError callback and the
sink's Err method:

	sink := sinks.LinesWithConfig(w, sinks.LinesConfig{
		OnError: func(err error) { log.Printf("sink: %v", err) },
	})
	result := transduce.Transduce(xf, sink, inputs)
	if err := sink.Err(); err != nil {
		// delivery failed partway; result counts delivered items
	}

The accumulator carried by both sinks is the int64 count of delivered
items.
*/
package sinks
