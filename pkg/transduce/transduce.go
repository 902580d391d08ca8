package transduce

// Transduce applies xf to rf and folds inputs strictly, starting from
// rf's own Init. The fold stops immediately when a Step returns a
// *Reduced; Complete then runs exactly once on the unwrapped
// accumulator and its result is returned.
func Transduce[In, Out any](xf Transducer[In, Out], rf Reducer[Out], inputs []In) interface{} {
	f := xf(rf)
	return fold(f, f.Init(), inputs)
}

// TransduceWithInit is Transduce with an explicit initial accumulator
// in place of rf.Init().
func TransduceWithInit[In, Out any](xf Transducer[In, Out], rf Reducer[Out], init interface{}, inputs []In) interface{} {
	return fold(xf(rf), init, inputs)
}

// Into eagerly collects the transformed inputs into a slice, consuming
// the whole input unless the pipeline terminates early.
func Into[In, Out any](xf Transducer[In, Out], inputs []In) []Out {
	return Transduce(xf, Append[Out](), inputs).([]Out)
}

// fold drives a single strict reduction over a slice.
func fold[In any](f Reducer[In], acc interface{}, inputs []In) interface{} {
	for _, value := range inputs {
		acc = f.Step(acc, value)
		if IsReduced(acc) {
			acc = Unreduced(acc)
			break
		}
	}
	return f.Complete(acc)
}
