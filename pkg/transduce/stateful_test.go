package transduce

import (
	"strings"
	"testing"

	"github.com/vnykmshr/goxf/internal/testutil"
)

// observingReducer wraps another reducer and records call counts, for
// verifying the run discipline of stateful transducers.
type observingReducer[T any] struct {
	inner     Reducer[T]
	steps     int
	completes int
}

func (o *observingReducer[T]) Init() interface{} { return o.inner.Init() }

func (o *observingReducer[T]) Step(acc interface{}, value T) interface{} {
	o.steps++
	return o.inner.Step(acc, value)
}

func (o *observingReducer[T]) Complete(acc interface{}) interface{} {
	o.completes++
	return o.inner.Complete(acc)
}

func TestDedupe(t *testing.T) {
	got := Into(Dedupe[int](), []int{1, 1, 1, 2, 2, 3, 1, 1})
	testutil.AssertDeepEqual(t, got, []int{1, 2, 3, 1})
}

func TestDedupeEmpty(t *testing.T) {
	got := Into(Dedupe[int](), []int{})
	testutil.AssertDeepEqual(t, got, []int{})
}

func TestDedupeFunc(t *testing.T) {
	// Case-insensitive equality.
	got := Into(DedupeFunc(strings.EqualFold), []string{"A", "a", "b", "B", "a"})
	testutil.AssertDeepEqual(t, got, []string{"A", "b", "a"})
}

func TestDedupeFreshStatePerRun(t *testing.T) {
	xf := Dedupe[int]()
	testutil.AssertDeepEqual(t, Into(xf, []int{1, 1, 2}), []int{1, 2})
	// A second run must not remember the previous run's trailing value.
	testutil.AssertDeepEqual(t, Into(xf, []int{2, 2, 3}), []int{2, 3})
}

func TestPartitionByParity(t *testing.T) {
	got := Into(PartitionBy(func(n int) int { return n % 2 }), []int{1, 1, 2, 2, 1})
	testutil.AssertDeepEqual(t, got, [][]int{{1, 1}, {2, 2}, {1}})
}

func TestPartitionByEmpty(t *testing.T) {
	got := Into(PartitionBy(func(n int) int { return n }), []int{})
	testutil.AssertDeepEqual(t, got, [][]int{})
}

func TestPartitionBySingleRun(t *testing.T) {
	// One run, flushed only at Complete.
	got := Into(PartitionBy(func(n int) int { return 0 }), []int{1, 2, 3})
	testutil.AssertDeepEqual(t, got, [][]int{{1, 2, 3}})
}

func TestPartitionByFlushOnComplete(t *testing.T) {
	obs := &observingReducer[[]int]{inner: Append[[]int]()}
	xf := PartitionBy(func(n int) int { return n })
	f := xf(obs)

	acc := f.Init()
	for _, v := range []int{1, 1, 2} {
		acc = f.Step(acc, v)
	}
	// Only the key change has flushed so far.
	testutil.AssertEqual(t, obs.steps, 1)

	final := f.Complete(acc)
	testutil.AssertEqual(t, obs.steps, 2)
	testutil.AssertEqual(t, obs.completes, 1)
	testutil.AssertDeepEqual(t, final, [][]int{{1, 1}, {2}})
}

func TestPartitionByReducedDuringFlush(t *testing.T) {
	// Downstream terminates on the first group. The wrapper must return
	// the signal immediately and must not buffer the triggering element.
	xf := Compose2(
		PartitionBy(func(n int) int { return n }),
		Take[[]int](1),
	)

	got := Into(xf, []int{1, 1, 2, 2, 3})
	testutil.AssertDeepEqual(t, got, [][]int{{1, 1}})
}

func TestPartitionByReducedDuringCompleteFlush(t *testing.T) {
	// Termination raised by the Complete-time flush still yields a full
	// result and exactly one downstream Complete.
	obs := &observingReducer[[]int]{inner: Append[[]int]()}
	take := Take[[]int](1)
	f := PartitionBy(func(n int) int { return n })(take(obs))

	acc := f.Init()
	acc = f.Step(acc, 5)
	acc = f.Step(acc, 5)
	final := f.Complete(acc)

	testutil.AssertEqual(t, obs.completes, 1)
	testutil.AssertDeepEqual(t, final, [][]int{{5, 5}})
}

func TestFlushOnceOnExhaustion(t *testing.T) {
	obs := &observingReducer[[]int]{inner: Append[[]int]()}
	result := Transduce(PartitionBy(func(n int) int { return n % 2 }), obs, []int{1, 1, 2, 2, 1})

	testutil.AssertEqual(t, obs.completes, 1)
	testutil.AssertDeepEqual(t, result, [][]int{{1, 1}, {2, 2}, {1}})
}

func TestFlushOnceOnEarlyTermination(t *testing.T) {
	obs := &observingReducer[[]int]{inner: Append[[]int]()}
	xf := Compose2(PartitionBy(func(n int) int { return n }), Take[[]int](2))
	result := Transduce(xf, obs, []int{1, 1, 2, 3, 3, 4})

	testutil.AssertEqual(t, obs.completes, 1)
	testutil.AssertDeepEqual(t, result, [][]int{{1, 1}, {2}})
}

func TestStepAfterCompletePanics(t *testing.T) {
	f := Dedupe[int]()(Append[int]())
	acc := f.Init()
	acc = f.Step(acc, 1)
	f.Complete(acc)

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on Step after Complete")
		}
	}()
	f.Step(acc, 2)
}

func TestDoubleCompletePanics(t *testing.T) {
	f := PartitionBy(func(n int) int { return n })(Append[[]int]())
	acc := f.Complete(f.Init())

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on double Complete")
		}
	}()
	f.Complete(acc)
}
