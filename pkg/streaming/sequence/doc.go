/*
Package sequence provides the lazy, pull-based execution context for
transducers.

A Sequence realizes its outputs one pull at a time: each Next call
advances the underlying Source only far enough to produce the next
transformed output, or to detect that the input is exhausted or that
the pipeline terminated early. This makes infinite sources practical
when paired with an early-terminating transducer:

	naturals := 0
	src := sequence.Generate(func() int { naturals++; return naturals })
	seq := sequence.New(transduce.Take[int](3), src)

	for {
		v, ok, err := seq.Next(ctx)
		if err != nil || !ok {
			break
		}
		fmt.Println(v) // 1, 2, 3 - the 4th input is never generated
	}

Sequences are single-threaded and cooperative: the consumer drives all
advancement and no background goroutine runs. Re-invoking New with the
same transducer and a fresh source yields a fresh, independent sequence;
a begun sequence is not restartable.

When the source is exhausted or the pipeline signals termination, the
pipeline's Complete runs exactly once. A stateful transducer such as
transduce.PartitionBy uses that moment to flush its pending run, so the
final group is still delivered lazily through Next.
*/
package sequence
