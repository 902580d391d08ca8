package transduce

// mapReducer applies a function to each input before forwarding it.
type mapReducer[In, Out any] struct {
	f  func(In) Out
	rf Reducer[Out]
}

func (m *mapReducer[In, Out]) Init() interface{} {
	return m.rf.Init()
}

func (m *mapReducer[In, Out]) Step(acc interface{}, value In) interface{} {
	return m.rf.Step(acc, m.f(value))
}

func (m *mapReducer[In, Out]) Complete(acc interface{}) interface{} {
	return m.rf.Complete(acc)
}

// Map returns a transducer that applies f to every input.
func Map[In, Out any](f func(In) Out) Transducer[In, Out] {
	return func(rf Reducer[Out]) Reducer[In] {
		return &mapReducer[In, Out]{f: f, rf: rf}
	}
}

// filterReducer forwards inputs that match a predicate and drops the rest.
type filterReducer[T any] struct {
	predicate func(T) bool
	rf        Reducer[T]
}

func (f *filterReducer[T]) Init() interface{} {
	return f.rf.Init()
}

func (f *filterReducer[T]) Step(acc interface{}, value T) interface{} {
	if !f.predicate(value) {
		return acc
	}
	return f.rf.Step(acc, value)
}

func (f *filterReducer[T]) Complete(acc interface{}) interface{} {
	return f.rf.Complete(acc)
}

// Filter returns a transducer that keeps inputs matching the predicate.
func Filter[T any](predicate func(T) bool) Transducer[T, T] {
	return func(rf Reducer[T]) Reducer[T] {
		return &filterReducer[T]{predicate: predicate, rf: rf}
	}
}

// takeReducer forwards the first n inputs, then terminates the run.
// The countdown lives on the instance, freshly allocated each time the
// transducer is applied to a reducing function.
type takeReducer[T any] struct {
	remaining int
	rf        Reducer[T]
}

func (t *takeReducer[T]) Init() interface{} {
	return t.rf.Init()
}

func (t *takeReducer[T]) Step(acc interface{}, value T) interface{} {
	if t.remaining <= 0 {
		return ensureReduced(acc)
	}
	t.remaining--
	result := t.rf.Step(acc, value)
	if t.remaining == 0 {
		// Terminate on the nth input rather than waiting to see the
		// (n+1)th, so an infinite source is never forced past n.
		return ensureReduced(result)
	}
	return result
}

func (t *takeReducer[T]) Complete(acc interface{}) interface{} {
	return t.rf.Complete(acc)
}

// Take returns a transducer that forwards the first n inputs and then
// signals early termination.
func Take[T any](n int) Transducer[T, T] {
	return func(rf Reducer[T]) Reducer[T] {
		return &takeReducer[T]{remaining: n, rf: rf}
	}
}
