package transduce

// optional is an explicit has-value wrapper used by stateful transducers
// in place of a distinguished sentinel, so that no legitimate input value
// can collide with "no value yet".
type optional[T any] struct {
	value T
	ok    bool
}

// dedupeReducer drops inputs equal to the previous input.
type dedupeReducer[T any] struct {
	eq        func(a, b T) bool
	prev      optional[T]
	completed bool
	rf        Reducer[T]
}

func (d *dedupeReducer[T]) Init() interface{} {
	return d.rf.Init()
}

func (d *dedupeReducer[T]) Step(acc interface{}, value T) interface{} {
	if d.completed {
		panic("transduce: Step called after Complete")
	}
	if d.prev.ok && d.eq(d.prev.value, value) {
		return acc
	}
	d.prev = optional[T]{value: value, ok: true}
	return d.rf.Step(acc, value)
}

func (d *dedupeReducer[T]) Complete(acc interface{}) interface{} {
	if d.completed {
		panic("transduce: Complete called twice")
	}
	d.completed = true
	// No pending output: previous-value memory needs no flush.
	return d.rf.Complete(acc)
}

// Dedupe returns a transducer that drops consecutive duplicate inputs.
func Dedupe[T comparable]() Transducer[T, T] {
	return DedupeFunc[T](func(a, b T) bool { return a == b })
}

// DedupeFunc is Dedupe with a caller-supplied equality function, for
// element types that are not comparable or need looser equality.
func DedupeFunc[T any](eq func(a, b T) bool) Transducer[T, T] {
	return func(rf Reducer[T]) Reducer[T] {
		return &dedupeReducer[T]{eq: eq, rf: rf}
	}
}

// partitionByReducer groups consecutive inputs whose key is equal,
// forwarding each completed run as one []T.
type partitionByReducer[T any, K comparable] struct {
	key       func(T) K
	buffer    []T
	current   optional[K]
	completed bool
	rf        Reducer[[]T]
}

func (p *partitionByReducer[T, K]) Init() interface{} {
	return p.rf.Init()
}

func (p *partitionByReducer[T, K]) Step(acc interface{}, value T) interface{} {
	if p.completed {
		panic("transduce: Step called after Complete")
	}

	k := p.key(value)
	if len(p.buffer) == 0 || (p.current.ok && k == p.current.value) {
		p.buffer = append(p.buffer, value)
		p.current = optional[K]{value: k, ok: true}
		return acc
	}

	// Key changed: flush the pending run. The buffer is cleared before
	// the flushing call so a reentrant downstream cannot observe stale
	// state.
	group := p.buffer
	p.buffer = nil
	result := p.rf.Step(acc, group)
	if IsReduced(result) {
		// The pipeline is shutting down: do not start a new run for
		// the triggering element.
		return result
	}

	p.buffer = append(p.buffer, value)
	p.current = optional[K]{value: k, ok: true}
	return result
}

func (p *partitionByReducer[T, K]) Complete(acc interface{}) interface{} {
	if p.completed {
		panic("transduce: Complete called twice")
	}
	p.completed = true

	if len(p.buffer) > 0 {
		group := p.buffer
		p.buffer = nil
		result := p.rf.Step(acc, group)
		acc = Unreduced(result)
	}
	return p.rf.Complete(acc)
}

// PartitionBy returns a transducer that groups consecutive inputs with
// equal keys into slices. The pending run is flushed when the key
// changes and, via Complete, at the end of input. The group state is
// freshly allocated each time the transducer is applied to a reducing
// function; sharing one applied pipeline across concurrent runs
// requires external synchronization.
func PartitionBy[T any, K comparable](key func(T) K) Transducer[T, []T] {
	return func(rf Reducer[[]T]) Reducer[T] {
		return &partitionByReducer[T, K]{key: key, rf: rf}
	}
}
