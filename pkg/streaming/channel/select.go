package channel

import (
	"context"
	"fmt"
	"time"

	gxerrors "github.com/vnykmshr/goxf/pkg/common/errors"
	"github.com/vnykmshr/goxf/pkg/metrics"
)

// ErrTimeout is returned by Select when the timeout elapses before any
// channel has a value available.
var ErrTimeout = fmt.Errorf("select: %w", gxerrors.ErrTimeout)

// SelectConfig configures a Select call.
type SelectConfig struct {
	// Timeout bounds the wait. Zero or negative means wait indefinitely.
	Timeout time.Duration

	// Metrics records select outcomes. Nil disables metrics.
	Metrics *metrics.Registry
}

// Select waits on several channels at once and returns the first available
// value together with the channel it came from.
//
// Channels are polled in slice order, so when several are ready the lowest
// index wins; that tie-break is deterministic, not fair. A channel that is
// closed and drained counts as ready: Select returns ErrClosed with the
// source channel set, letting the caller drop it from the slice. When the
// timeout elapses with no value, Select returns ErrTimeout with a nil
// source.
func Select[T any](ctx context.Context, channels []ReadChannel[T], timeout time.Duration) (T, ReadChannel[T], error) {
	return SelectWithConfig(ctx, channels, SelectConfig{Timeout: timeout})
}

// SelectWithConfig is Select with explicit configuration.
func SelectWithConfig[T any](ctx context.Context, channels []ReadChannel[T], config SelectConfig) (T, ReadChannel[T], error) {
	var zero T

	// One buffered signal channel registered with every source: an enqueue
	// or close anywhere nudges it, and the buffer means a notification
	// arriving between the poll and the wait is not lost.
	signal := make(chan struct{}, 1)
	for _, c := range channels {
		c.addWaiter(signal)
	}
	defer func() {
		for _, c := range channels {
			c.removeWaiter(signal)
		}
	}()

	var timeoutC <-chan time.Time
	if config.Timeout > 0 {
		timer := time.NewTimer(config.Timeout)
		defer timer.Stop()
		timeoutC = timer.C
	}

	for {
		for _, c := range channels {
			value, ok, err := c.TryTake()
			if err != nil {
				recordSelectOutcome(config.Metrics, "closed")
				return zero, c, err
			}
			if ok {
				recordSelectOutcome(config.Metrics, "value")
				return value, c, nil
			}
		}

		select {
		case <-signal:
		case <-timeoutC:
			recordSelectOutcome(config.Metrics, "timeout")
			return zero, nil, ErrTimeout
		case <-ctx.Done():
			recordSelectOutcome(config.Metrics, "canceled")
			return zero, nil, ctx.Err()
		}
	}
}

func recordSelectOutcome(registry *metrics.Registry, outcome string) {
	if registry != nil {
		registry.SelectResolved.WithLabelValues(outcome).Inc()
	}
}
