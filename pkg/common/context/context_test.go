package context

import (
	"context"
	"testing"
	"time"
)

func TestIsCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	if IsCanceled(ctx) {
		t.Error("context should not be canceled yet")
	}

	cancel()

	if !IsCanceled(ctx) {
		t.Error("context should be canceled")
	}
}

func TestIsTimedOut(t *testing.T) {
	ctx, cancel := WithTimeoutOrCancel(context.Background(), time.Millisecond)
	defer cancel()

	<-ctx.Done()

	if !IsTimedOut(ctx) {
		t.Error("context should be timed out")
	}

	canceled, cancelNow := context.WithCancel(context.Background())
	cancelNow()
	if IsTimedOut(canceled) {
		t.Error("canceled context should not report a timeout")
	}
}

func TestWithDeadlineOrCancel(t *testing.T) {
	deadline := time.Now().Add(time.Millisecond)
	ctx, cancel := WithDeadlineOrCancel(context.Background(), deadline)
	defer cancel()

	got, ok := ctx.Deadline()
	if !ok {
		t.Fatal("context should carry a deadline")
	}
	if !got.Equal(deadline) {
		t.Errorf("deadline = %v, want %v", got, deadline)
	}

	<-ctx.Done()
	if !IsCanceled(ctx) {
		t.Error("context should be canceled after the deadline")
	}
}

func TestWithTimeoutOrCancelParentCancel(t *testing.T) {
	parent, cancelParent := context.WithCancel(context.Background())
	ctx, cancel := WithTimeoutOrCancel(parent, time.Hour)
	defer cancel()

	cancelParent()

	if !IsCanceled(ctx) {
		t.Error("child context should follow parent cancellation")
	}
	if IsTimedOut(ctx) {
		t.Error("parent cancellation is not a timeout")
	}
}
