package transduce

// Transducer transforms a reducing function over Out values into a
// reducing function over In values, independent of what produces the
// input, what accumulates the output, and how the run is scheduled.
//
// The produced Reducer's Init and Complete delegate to the wrapped
// Reducer unchanged, except that a stateful transducer flushes its
// pending state in Complete before delegating. Its Step consumes one In
// and may call the wrapped Step zero, one, or many times, and may
// short-circuit by returning a *Reduced.
type Transducer[In, Out any] func(Reducer[Out]) Reducer[In]

// Identity returns the identity transducer: its Step passes every input
// through unchanged. It is the identity element of Compose.
func Identity[T any]() Transducer[T, T] {
	return func(rf Reducer[T]) Reducer[T] { return rf }
}

// Compose combines transducers of a uniform element type into one.
// Applied to a final reducing function rf, Compose(a, b, c)(rf) is
// a(b(c(rf))): the first-listed transducer is the first to see raw
// input and the last-listed sits adjacent to rf. Composition is
// associative, with Identity as the identity element.
func Compose[T any](xfs ...Transducer[T, T]) Transducer[T, T] {
	return func(rf Reducer[T]) Reducer[T] {
		for i := len(xfs) - 1; i >= 0; i-- {
			rf = xfs[i](rf)
		}
		return rf
	}
}

// Compose2 combines two transducers whose element types differ.
// Data flows through outer first, then inner.
func Compose2[A, B, C any](outer Transducer[A, B], inner Transducer[B, C]) Transducer[A, C] {
	return func(rf Reducer[C]) Reducer[A] {
		return outer(inner(rf))
	}
}

// Compose3 combines three transducers whose element types differ.
func Compose3[A, B, C, D any](first Transducer[A, B], second Transducer[B, C], third Transducer[C, D]) Transducer[A, D] {
	return Compose2(first, Compose2(second, third))
}
