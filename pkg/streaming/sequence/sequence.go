package sequence

import (
	"context"
	"fmt"
	"sync/atomic"

	commonctx "github.com/vnykmshr/goxf/pkg/common/context"
	gxerrors "github.com/vnykmshr/goxf/pkg/common/errors"
	"github.com/vnykmshr/goxf/pkg/transduce"
)

// ErrSequenceClosed is returned when attempting to operate on a closed sequence.
var ErrSequenceClosed = fmt.Errorf("sequence: %w", gxerrors.ErrClosed)

// Sequence is a lazily realized, pull-based sequence of transformed
// outputs. Each pull advances the underlying source only far enough to
// produce the next output or to detect exhaustion or early termination.
//
// A Sequence is single-threaded and consumer-driven: no background
// goroutine runs on its behalf. Once begun, a sequence is not
// restartable, but calling New again with the same transducer and a
// fresh source yields a fresh, independent sequence.
type Sequence[Out any] interface {
	// Next returns the next output and true, or the zero value and
	// false once the sequence is exhausted.
	Next(ctx context.Context) (Out, bool, error)

	// ToSlice realizes all remaining outputs eagerly and closes the
	// sequence. Only valid for finite sequences.
	ToSlice(ctx context.Context) ([]Out, error)

	// Close closes the sequence and its source.
	Close() error

	// IsClosed returns true if the sequence is closed.
	IsClosed() bool
}

// sequence is the default implementation of Sequence.
type sequence[In, Out any] struct {
	source    Source[In]
	f         transduce.Reducer[In]
	acc       interface{}
	pending   []Out
	exhausted bool
	completed bool
	closed    int32 // atomic
}

// New creates a Sequence that pulls inputs from source through xf.
// Transducer state is freshly allocated here, so every call produces an
// independent sequence even from the same transducer value.
func New[In, Out any](xf transduce.Transducer[In, Out], source Source[In]) Sequence[Out] {
	s := &sequence[In, Out]{source: source}

	// The pipeline's final reducing function parks each output on the
	// sequence's pending list; the accumulator itself carries nothing.
	rf := transduce.NewReducer[Out](
		nil,
		func(acc interface{}, value Out) interface{} {
			s.pending = append(s.pending, value)
			return acc
		},
		nil,
	)

	s.f = xf(rf)
	s.acc = s.f.Init()
	return s
}

// Next implements Sequence.
func (s *sequence[In, Out]) Next(ctx context.Context) (Out, bool, error) {
	var zero Out

	if s.IsClosed() {
		return zero, false, ErrSequenceClosed
	}

	for {
		if len(s.pending) > 0 {
			out := s.pending[0]
			s.pending = s.pending[:copy(s.pending, s.pending[1:])]
			return out, true, nil
		}

		if s.exhausted {
			return zero, false, nil
		}

		if commonctx.IsCanceled(ctx) {
			return zero, false, ctx.Err()
		}

		value, hasMore, err := s.source.Next(ctx)
		if err != nil {
			return zero, false, err
		}

		if !hasMore {
			s.finish()
			continue
		}

		s.acc = s.f.Step(s.acc, value)
		if transduce.IsReduced(s.acc) {
			s.acc = transduce.Unreduced(s.acc)
			s.finish()
		}
	}
}

// finish completes the pipeline exactly once, which may flush buffered
// state (for example a pending partition) onto the pending list, and
// stops all further source consumption.
func (s *sequence[In, Out]) finish() {
	if !s.completed {
		s.completed = true
		s.acc = s.f.Complete(s.acc)
	}
	s.exhausted = true
}

// ToSlice implements Sequence.
func (s *sequence[In, Out]) ToSlice(ctx context.Context) ([]Out, error) {
	defer func() { _ = s.Close() }()

	result := []Out{}
	for {
		out, ok, err := s.Next(ctx)
		if err != nil {
			return nil, err
		}
		if !ok {
			return result, nil
		}
		result = append(result, out)
	}
}

// Close implements Sequence.
func (s *sequence[In, Out]) Close() error {
	if !atomic.CompareAndSwapInt32(&s.closed, 0, 1) {
		return nil // Already closed
	}

	if s.source != nil {
		return s.source.Close()
	}

	return nil
}

// IsClosed implements Sequence.
func (s *sequence[In, Out]) IsClosed() bool {
	return atomic.LoadInt32(&s.closed) != 0
}
