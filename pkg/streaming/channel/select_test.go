package channel

import (
	"context"
	"testing"
	"time"

	"github.com/vnykmshr/goxf/internal/testutil"
	"github.com/vnykmshr/goxf/pkg/transduce"
)

func TestSelectFirstAvailable(t *testing.T) {
	a := New[int](4)
	b := New[int](4)
	defer a.Close()
	defer b.Close()

	ctx := context.Background()
	testutil.AssertNoError(t, b.Put(ctx, 7))

	val, src, err := Select(ctx, []ReadChannel[int]{a, b}, time.Second)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, val, 7)
	if src != ReadChannel[int](b) {
		t.Fatal("expected value to come from channel b")
	}
}

func TestSelectLowestIndexWins(t *testing.T) {
	a := New[int](4)
	b := New[int](4)
	defer a.Close()
	defer b.Close()

	ctx := context.Background()
	testutil.AssertNoError(t, a.Put(ctx, 1))
	testutil.AssertNoError(t, b.Put(ctx, 2))

	val, src, err := Select(ctx, []ReadChannel[int]{a, b}, time.Second)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, val, 1)
	if src != ReadChannel[int](a) {
		t.Fatal("expected the lowest-index channel to win the tie")
	}
}

func TestSelectTimeout(t *testing.T) {
	a := New[int](4)
	b := New[int](4)
	defer a.Close()
	defer b.Close()

	start := time.Now()
	_, src, err := Select(context.Background(), []ReadChannel[int]{a, b}, 50*time.Millisecond)
	testutil.AssertEqual(t, err, ErrTimeout)
	if src != nil {
		t.Fatal("timeout should not name a source channel")
	}
	if elapsed := time.Since(start); elapsed < 50*time.Millisecond {
		t.Fatalf("select returned before the timeout: %v", elapsed)
	}
}

func TestSelectWakesOnPut(t *testing.T) {
	ch := New[string](4)
	defer ch.Close()

	type result struct {
		val string
		err error
	}
	results := make(chan result, 1)
	go func() {
		v, _, err := Select(context.Background(), []ReadChannel[string]{ch}, time.Second)
		results <- result{v, err}
	}()

	time.Sleep(20 * time.Millisecond)
	testutil.AssertNoError(t, ch.Put(context.Background(), "wake"))

	r := <-results
	testutil.AssertNoError(t, r.err)
	testutil.AssertEqual(t, r.val, "wake")
}

func TestSelectClosedChannelIsReady(t *testing.T) {
	a := New[int](4)
	b := New[int](4)
	defer a.Close()

	testutil.AssertNoError(t, b.Close())

	_, src, err := Select(context.Background(), []ReadChannel[int]{a, b}, time.Second)
	testutil.AssertEqual(t, err, ErrClosed)
	if src != ReadChannel[int](b) {
		t.Fatal("expected the closed channel to be reported as the source")
	}
}

func TestSelectContextCanceled(t *testing.T) {
	ch := New[int](4)
	defer ch.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := Select(ctx, []ReadChannel[int]{ch}, time.Second)
	testutil.AssertEqual(t, err, context.Canceled)
}

func TestSelectAcrossInputTypes(t *testing.T) {
	// Two channels with different input types share the output type, so
	// one select can cover both.
	words := NewTransforming[string, int](4, transduce.Map(func(s string) int { return len(s) }))
	numbers := New[int](4)
	defer words.Close()
	defer numbers.Close()

	ctx := context.Background()
	testutil.AssertNoError(t, words.Put(ctx, "four"))

	val, src, err := Select(ctx, []ReadChannel[int]{words, numbers}, time.Second)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, val, 4)
	if src != ReadChannel[int](words) {
		t.Fatal("expected value to come from the transforming channel")
	}
}

func TestSelectWaiterCleanup(t *testing.T) {
	ch := New[int](4).(*transducingChannel[int, int])
	defer ch.Close()

	ctx := context.Background()
	testutil.AssertNoError(t, ch.Put(ctx, 1))

	_, _, err := Select(ctx, []ReadChannel[int]{ch}, time.Second)
	testutil.AssertNoError(t, err)

	ch.mu.Lock()
	remaining := len(ch.waiters)
	ch.mu.Unlock()
	testutil.AssertEqual(t, remaining, 0)
}
