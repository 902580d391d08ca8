package transduce

import (
	"strconv"
	"testing"

	"github.com/vnykmshr/goxf/internal/testutil"
)

func TestMap(t *testing.T) {
	got := Into(Map(func(n int) int { return n * 2 }), []int{1, 2, 3})
	testutil.AssertDeepEqual(t, got, []int{2, 4, 6})
}

func TestMapTypeChanging(t *testing.T) {
	got := Into(Map(strconv.Itoa), []int{7, 8, 9})
	testutil.AssertDeepEqual(t, got, []string{"7", "8", "9"})
}

func TestFilter(t *testing.T) {
	got := Into(Filter(func(n int) bool { return n%2 == 0 }), digits())
	testutil.AssertDeepEqual(t, got, []int{0, 2, 4, 6, 8})
}

func TestFilterAll(t *testing.T) {
	got := Into(Filter(func(int) bool { return false }), digits())
	testutil.AssertDeepEqual(t, got, []int{})
}

func TestTake(t *testing.T) {
	got := Into(Take[int](3), digits())
	testutil.AssertDeepEqual(t, got, []int{0, 1, 2})
}

func TestTakeZero(t *testing.T) {
	got := Into(Take[int](0), digits())
	testutil.AssertDeepEqual(t, got, []int{})
}

func TestTakeMoreThanInput(t *testing.T) {
	got := Into(Take[int](100), []int{1, 2})
	testutil.AssertDeepEqual(t, got, []int{1, 2})
}

func TestTakeStopsConsumingInput(t *testing.T) {
	// Count how many raw inputs the pipeline actually sees: the nth
	// forwarded input must carry the termination signal, so the
	// (n+1)th is never consumed.
	seen := 0
	counted := Map(func(n int) int {
		seen++
		return n
	})

	got := Into(Compose(counted, Take[int](3)), digits())
	testutil.AssertDeepEqual(t, got, []int{0, 1, 2})
	testutil.AssertEqual(t, seen, 3)
}

func TestTakeFreshStatePerRun(t *testing.T) {
	// The same constructed transducer value drives two runs; each run
	// gets fresh countdown state.
	xf := Take[int](2)
	testutil.AssertDeepEqual(t, Into(xf, digits()), []int{0, 1})
	testutil.AssertDeepEqual(t, Into(xf, digits()), []int{0, 1})
}
