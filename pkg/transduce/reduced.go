package transduce

// Reduced wraps an accumulator to signal that a reduction must stop.
// It is the only mechanism by which a downstream consumer tells an
// upstream producer to stop supplying input.
//
// Any code that observes a *Reduced result must stop feeding input to
// the pipeline, propagate a *Reduced of its own accumulator if it is
// nested inside another transducer, and still arrange for Complete to
// run exactly once on the unwrapped accumulator.
type Reduced struct {
	value interface{}
}

// NewReduced wraps acc as a termination signal.
func NewReduced(acc interface{}) *Reduced {
	return &Reduced{value: acc}
}

// Unwrap returns the wrapped accumulator.
func (r *Reduced) Unwrap() interface{} {
	return r.value
}

// IsReduced reports whether v is a termination signal.
func IsReduced(v interface{}) bool {
	_, ok := v.(*Reduced)
	return ok
}

// Unreduced returns the wrapped accumulator if v is a termination
// signal and v itself otherwise. It is total: safe on any value.
func Unreduced(v interface{}) interface{} {
	if r, ok := v.(*Reduced); ok {
		return r.value
	}
	return v
}

// ensureReduced wraps v unless it is already a termination signal.
// Double-wrapping would make an inner Unreduced produce a *Reduced,
// which every driver treats as a plain accumulator.
func ensureReduced(v interface{}) *Reduced {
	if r, ok := v.(*Reduced); ok {
		return r
	}
	return NewReduced(v)
}
