package transduce

// Reducer is the three-operation contract every accumulation step satisfies.
//
// Init produces the starting accumulator. Step folds one input value into
// the accumulator and may return a *Reduced wrapping the accumulator to
// signal early termination. Complete is called exactly once per run, after
// the last Step call, to flush any pending state and produce the final
// value; implementations that wrap another Reducer must delegate to the
// wrapped Complete.
//
// The accumulator is deliberately untyped: a transducer built from
// Reducers works with any accumulator the final reducing function chooses.
//
// Calling Step after Complete, or Complete twice, is a contract violation,
// not a recoverable condition; stateful implementations panic when they
// can detect it.
type Reducer[T any] interface {
	// Init returns the neutral starting accumulator.
	Init() interface{}

	// Step folds value into acc and returns the new accumulator,
	// or a *Reduced wrapping it to request early termination.
	Step(acc interface{}, value T) interface{}

	// Complete flushes pending state and produces the final accumulator.
	Complete(acc interface{}) interface{}
}

// reducerFunc adapts plain functions to the Reducer interface.
type reducerFunc[T any] struct {
	init     func() interface{}
	step     func(acc interface{}, value T) interface{}
	complete func(acc interface{}) interface{}
}

// NewReducer builds a Reducer from the given functions. init may be nil
// when the caller always supplies an explicit initial accumulator;
// complete may be nil when completion is the identity.
func NewReducer[T any](
	init func() interface{},
	step func(acc interface{}, value T) interface{},
	complete func(acc interface{}) interface{},
) Reducer[T] {
	return &reducerFunc[T]{init: init, step: step, complete: complete}
}

func (r *reducerFunc[T]) Init() interface{} {
	if r.init == nil {
		return nil
	}
	return r.init()
}

func (r *reducerFunc[T]) Step(acc interface{}, value T) interface{} {
	return r.step(acc, value)
}

func (r *reducerFunc[T]) Complete(acc interface{}) interface{} {
	if r.complete == nil {
		return acc
	}
	return r.complete(acc)
}

// Append returns a reducer that collects values into a []T in arrival
// order. Init returns an empty slice and Complete is the identity.
func Append[T any]() Reducer[T] {
	return NewReducer[T](
		func() interface{} { return []T{} },
		func(acc interface{}, value T) interface{} {
			return append(acc.([]T), value)
		},
		nil,
	)
}

// Count returns a reducer that counts values.
func Count[T any]() Reducer[T] {
	return NewReducer[T](
		func() interface{} { return int64(0) },
		func(acc interface{}, _ T) interface{} {
			return acc.(int64) + 1
		},
		nil,
	)
}
