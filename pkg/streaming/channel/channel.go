package channel

import (
	"context"
	"fmt"
	"sync"
	"time"

	gxerrors "github.com/vnykmshr/goxf/pkg/common/errors"
	"github.com/vnykmshr/goxf/pkg/common/validation"
	"github.com/vnykmshr/goxf/pkg/metrics"
	"github.com/vnykmshr/goxf/pkg/transduce"
)

// BackpressureStrategy defines how a put is handled when the buffer is full.
type BackpressureStrategy int

const (
	// Block strategy blocks the producer until space is available.
	Block BackpressureStrategy = iota

	// Drop strategy drops the newest output when the buffer is full.
	Drop

	// DropOldest strategy drops the oldest buffered output when the buffer is full.
	DropOldest

	// Error strategy returns ErrFull when the buffer is full.
	Error
)

// String returns the strategy name used in metrics labels.
func (s BackpressureStrategy) String() string {
	switch s {
	case Block:
		return "block"
	case Drop:
		return "drop"
	case DropOldest:
		return "drop_oldest"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// ErrFull is returned when the buffer is full and the strategy is Error.
var ErrFull = fmt.Errorf("channel: %w", gxerrors.ErrFull)

// ErrClosed is returned when operating on a closed channel. For takers it is
// the end-of-data signal: Take returns it only after the buffer has drained.
var ErrClosed = fmt.Errorf("channel: %w", gxerrors.ErrClosed)

// ReadChannel is the consumer end of a channel. It is the surface Select
// operates on, so channels with different input types but the same output
// type can be selected over together.
type ReadChannel[Out any] interface {
	// Take removes and returns the oldest buffered output, blocking while
	// the buffer is empty. Returns ErrClosed once the channel is closed
	// and drained.
	Take(ctx context.Context) (Out, error)

	// TryTake attempts to take a value without blocking. Returns
	// (zero, false, nil) when the buffer is empty but the channel is open,
	// and (zero, false, ErrClosed) once closed and drained.
	TryTake() (Out, bool, error)

	// Len returns the current number of buffered outputs.
	Len() int

	// IsClosed returns true if the channel is closed.
	IsClosed() bool

	addWaiter(w chan struct{})
	removeWaiter(w chan struct{})
}

// Channel is a bounded FIFO buffer with a transducer pipeline attached at
// construction. Every value put in passes through the pipeline on the
// producer's goroutine; the buffer holds post-transform outputs.
type Channel[In, Out any] interface {
	ReadChannel[Out]

	// Put transforms a value through the pipeline and enqueues the outputs,
	// applying the configured backpressure strategy when the buffer is full.
	// Returns ErrClosed if the channel is closed, including while blocked.
	Put(ctx context.Context, value In) error

	// TryPut is like Put but never blocks. With the Block or Error strategy
	// a full buffer yields ErrFull; outputs already produced by the
	// pipeline for this value are then discarded, so prefer Put when the
	// pipeline is stateful.
	TryPut(value In) error

	// Close completes the attached pipeline exactly once, flushing any
	// pending stateful output into the buffer, then wakes all blocked
	// producers and consumers. Idempotent.
	Close() error

	// Cap returns the configured buffer capacity.
	Cap() int

	// Stats returns channel statistics.
	Stats() Stats
}

// Stats holds statistics about channel activity.
type Stats struct {
	// PutCount is the total number of input values accepted.
	PutCount int64

	// OutputCount is the total number of post-transform outputs enqueued.
	OutputCount int64

	// TakeCount is the total number of values taken.
	TakeCount int64

	// DroppedCount is the total number of outputs dropped under backpressure.
	DroppedCount int64

	// BlockedPuts is the number of puts that had to block.
	BlockedPuts int64

	// BufferUtilization is the current buffer utilization (0.0 to 1.0).
	BufferUtilization float64

	// LastPutTime is the timestamp of the last accepted put.
	LastPutTime time.Time

	// LastTakeTime is the timestamp of the last take.
	LastTakeTime time.Time
}

// Config holds configuration for a transducing channel.
type Config struct {
	// Capacity is the buffer capacity. Zero means synchronous hand-off:
	// a put completes only when a taker is waiting.
	Capacity int

	// Strategy defines how backpressure is handled.
	Strategy BackpressureStrategy

	// OnDrop is called with each dropped output (Drop/DropOldest strategies).
	OnDrop func(value interface{})

	// OnBlock is called when a put has to block (Block strategy).
	OnBlock func()

	// PutTimeout bounds blocking puts (0 = no timeout).
	PutTimeout time.Duration

	// TakeTimeout bounds blocking takes (0 = no timeout).
	TakeTimeout time.Duration

	// Name identifies this channel in metrics. Metrics are skipped when empty.
	Name string

	// Metrics is the registry to record into. Nil disables metrics.
	Metrics *metrics.Registry
}

// DefaultConfig returns a default configuration.
func DefaultConfig() Config {
	return Config{
		Capacity: 64,
		Strategy: Block,
	}
}

// transducingChannel implements Channel.
type transducingChannel[In, Out any] struct {
	config Config

	// putMu serializes the whole transform-and-enqueue step so a stateful
	// pipeline shared by many producers sees puts one at a time.
	putMu sync.Mutex

	mu       sync.Mutex
	buffer   []Out
	pipeline transduce.Reducer[In]
	acc      interface{}
	outbox   []Out
	closed   bool

	takersWaiting int

	notFull  *sync.Cond
	notEmpty *sync.Cond

	// waiters are Select signal channels, notified on enqueue and close.
	waiters []chan struct{}

	stats   Stats
	statsMu sync.RWMutex
}

// New creates an identity channel: values come out exactly as they went in.
func New[T any](capacity int) Channel[T, T] {
	return NewTransforming[T, T](capacity, transduce.Identity[T]())
}

// NewTransforming creates a channel with the given transducer pipeline
// attached. The pipeline runs on producer goroutines during Put.
func NewTransforming[In, Out any](capacity int, xf transduce.Transducer[In, Out]) Channel[In, Out] {
	config := DefaultConfig()
	config.Capacity = capacity
	return NewWithConfig[In, Out](config, xf)
}

// NewWithConfig creates a channel with the specified configuration.
// A negative capacity is treated as zero.
func NewWithConfig[In, Out any](config Config, xf transduce.Transducer[In, Out]) Channel[In, Out] {
	if config.Capacity < 0 {
		config.Capacity = 0
	}

	ch := &transducingChannel[In, Out]{config: config}
	ch.notFull = sync.NewCond(&ch.mu)
	ch.notEmpty = sync.NewCond(&ch.mu)

	// The pipeline bottoms out in a reducer that feeds the channel's
	// outbox; Put moves outbox contents into the buffer.
	sink := transduce.NewReducer[Out](nil, func(acc interface{}, value Out) interface{} {
		ch.outbox = append(ch.outbox, value)
		return acc
	}, nil)
	ch.pipeline = xf(sink)
	ch.acc = ch.pipeline.Init()

	if ch.metricsEnabled() {
		config.Metrics.ChannelBufferSize.WithLabelValues(config.Name).Set(float64(config.Capacity))
	}

	return ch
}

// NewWithConfigSafe is like NewWithConfig but validates the configuration
// instead of coercing it.
func NewWithConfigSafe[In, Out any](config Config, xf transduce.Transducer[In, Out]) (Channel[In, Out], error) {
	if err := validation.ValidateNonNegative("channel", "capacity", config.Capacity); err != nil {
		return nil, err
	}
	if xf == nil {
		return nil, validation.ValidateNotNil("channel", "transducer", nil)
	}
	return NewWithConfig[In, Out](config, xf), nil
}

// Put implements Channel.Put.
func (ch *transducingChannel[In, Out]) Put(ctx context.Context, value In) error {
	if ch.config.PutTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, ch.config.PutTimeout)
		defer cancel()
	}

	ch.putMu.Lock()
	defer ch.putMu.Unlock()

	ch.mu.Lock()
	defer ch.mu.Unlock()

	if ch.closed {
		return ErrClosed
	}

	outs, terminated := ch.stepLocked(value)

	if terminated {
		// The pipeline asked to stop: flush its outputs and close. The
		// close-flush may overfill the buffer; takers drain it normally.
		ch.enqueueAllLocked(outs)
		ch.closeLocked()
		return nil
	}

	for _, out := range outs {
		var err error
		switch ch.config.Strategy {
		case Drop:
			err = ch.dropPutLocked(out)
		case DropOldest:
			err = ch.dropOldestPutLocked(out)
		case Error:
			err = ch.errorPutLocked(out)
		default:
			err = ch.blockingPutLocked(ctx, out)
		}
		if err != nil {
			return err
		}
	}

	ch.updateStats(func(s *Stats) {
		s.PutCount++
		s.LastPutTime = time.Now()
	})
	if ch.metricsEnabled() {
		ch.config.Metrics.ChannelPuts.WithLabelValues(ch.config.Name).Inc()
		ch.config.Metrics.PipelineSteps.WithLabelValues("channel", ch.config.Name).Inc()
	}

	return nil
}

// TryPut implements Channel.TryPut.
func (ch *transducingChannel[In, Out]) TryPut(value In) error {
	ch.putMu.Lock()
	defer ch.putMu.Unlock()

	ch.mu.Lock()
	defer ch.mu.Unlock()

	if ch.closed {
		return ErrClosed
	}

	outs, terminated := ch.stepLocked(value)

	if terminated {
		ch.enqueueAllLocked(outs)
		ch.closeLocked()
		return nil
	}

	for _, out := range outs {
		if ch.hasRoomLocked() {
			ch.enqueueLocked(out)
			continue
		}
		switch ch.config.Strategy {
		case Drop:
			ch.recordDropLocked(out)
		case DropOldest:
			dropped := ch.dequeueLocked()
			ch.recordDropLocked(dropped)
			ch.enqueueLocked(out)
		default:
			return ErrFull
		}
	}

	ch.updateStats(func(s *Stats) {
		s.PutCount++
		s.LastPutTime = time.Now()
	})
	if ch.metricsEnabled() {
		ch.config.Metrics.ChannelPuts.WithLabelValues(ch.config.Name).Inc()
		ch.config.Metrics.PipelineSteps.WithLabelValues("channel", ch.config.Name).Inc()
	}

	return nil
}

// Take implements ReadChannel.Take.
func (ch *transducingChannel[In, Out]) Take(ctx context.Context) (Out, error) {
	var zero Out

	if ch.config.TakeTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, ch.config.TakeTimeout)
		defer cancel()
	}

	ch.mu.Lock()
	defer ch.mu.Unlock()

	ch.takersWaiting++
	// A zero-capacity producer may be waiting for a taker to show up.
	ch.notFull.Broadcast()

	for len(ch.buffer) == 0 && !ch.closed {
		select {
		case <-ctx.Done():
			ch.takersWaiting--
			return zero, ctx.Err()
		default:
		}
		ch.notEmpty.Wait()
	}
	ch.takersWaiting--

	if len(ch.buffer) == 0 {
		return zero, ErrClosed
	}

	value := ch.dequeueLocked()
	ch.notFull.Signal()

	ch.updateStats(func(s *Stats) {
		s.TakeCount++
		s.LastTakeTime = time.Now()
	})
	if ch.metricsEnabled() {
		ch.config.Metrics.ChannelTakes.WithLabelValues(ch.config.Name).Inc()
	}

	return value, nil
}

// TryTake implements ReadChannel.TryTake.
func (ch *transducingChannel[In, Out]) TryTake() (Out, bool, error) {
	var zero Out

	ch.mu.Lock()
	defer ch.mu.Unlock()

	if len(ch.buffer) == 0 {
		if ch.closed {
			return zero, false, ErrClosed
		}
		return zero, false, nil
	}

	value := ch.dequeueLocked()
	ch.notFull.Signal()

	ch.updateStats(func(s *Stats) {
		s.TakeCount++
		s.LastTakeTime = time.Now()
	})
	if ch.metricsEnabled() {
		ch.config.Metrics.ChannelTakes.WithLabelValues(ch.config.Name).Inc()
	}

	return value, true, nil
}

// Close implements Channel.Close.
func (ch *transducingChannel[In, Out]) Close() error {
	ch.mu.Lock()
	defer ch.mu.Unlock()

	if ch.closed {
		return nil
	}
	ch.closeLocked()
	return nil
}

// IsClosed implements ReadChannel.IsClosed.
func (ch *transducingChannel[In, Out]) IsClosed() bool {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	return ch.closed
}

// Len implements ReadChannel.Len.
func (ch *transducingChannel[In, Out]) Len() int {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	return len(ch.buffer)
}

// Cap implements Channel.Cap.
func (ch *transducingChannel[In, Out]) Cap() int {
	return ch.config.Capacity
}

// Stats implements Channel.Stats.
func (ch *transducingChannel[In, Out]) Stats() Stats {
	ch.statsMu.RLock()
	stats := ch.stats
	ch.statsMu.RUnlock()

	ch.mu.Lock()
	if ch.config.Capacity > 0 {
		stats.BufferUtilization = float64(len(ch.buffer)) / float64(ch.config.Capacity)
	}
	ch.mu.Unlock()

	return stats
}

// stepLocked runs one value through the pipeline and collects the outputs
// it produced. Reports whether the pipeline returned a reduced accumulator.
func (ch *transducingChannel[In, Out]) stepLocked(value In) ([]Out, bool) {
	acc := ch.pipeline.Step(ch.acc, value)
	terminated := transduce.IsReduced(acc)
	ch.acc = transduce.Unreduced(acc)

	if terminated && ch.metricsEnabled() {
		ch.config.Metrics.PipelineTerminations.WithLabelValues("channel", ch.config.Name).Inc()
	}

	outs := ch.outbox
	ch.outbox = nil
	return outs, terminated
}

// closeLocked completes the pipeline exactly once, appends the completion
// flush to the buffer regardless of capacity, and wakes everyone.
func (ch *transducingChannel[In, Out]) closeLocked() {
	ch.acc = ch.pipeline.Complete(ch.acc)
	flushed := ch.outbox
	ch.outbox = nil
	ch.enqueueAllLocked(flushed)

	ch.closed = true
	ch.notFull.Broadcast()
	ch.notEmpty.Broadcast()
	ch.notifyWaitersLocked()

	if ch.metricsEnabled() {
		ch.config.Metrics.PipelineCompletions.WithLabelValues("channel", ch.config.Name).Inc()
	}
}

// hasRoomLocked reports whether one more output fits. At zero capacity a
// value only "fits" when a taker is waiting for it (synchronous hand-off).
func (ch *transducingChannel[In, Out]) hasRoomLocked() bool {
	if ch.config.Capacity == 0 {
		return ch.takersWaiting > len(ch.buffer)
	}
	return len(ch.buffer) < ch.config.Capacity
}

// blockingPutLocked enqueues one output with the Block strategy.
func (ch *transducingChannel[In, Out]) blockingPutLocked(ctx context.Context, out Out) error {
	for !ch.hasRoomLocked() && !ch.closed {
		if ch.config.OnBlock != nil {
			ch.config.OnBlock()
		}
		ch.updateStats(func(s *Stats) { s.BlockedPuts++ })
		if ch.metricsEnabled() {
			ch.config.Metrics.ChannelBlockedPuts.WithLabelValues(ch.config.Name).Inc()
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		ch.notFull.Wait()
	}

	if ch.closed {
		return ErrClosed
	}

	ch.enqueueLocked(out)
	return nil
}

// dropPutLocked enqueues one output with the Drop strategy.
func (ch *transducingChannel[In, Out]) dropPutLocked(out Out) error {
	if !ch.hasRoomLocked() {
		ch.recordDropLocked(out)
		return nil
	}
	ch.enqueueLocked(out)
	return nil
}

// dropOldestPutLocked enqueues one output with the DropOldest strategy.
func (ch *transducingChannel[In, Out]) dropOldestPutLocked(out Out) error {
	if !ch.hasRoomLocked() && len(ch.buffer) > 0 {
		dropped := ch.dequeueLocked()
		ch.recordDropLocked(dropped)
	}
	if ch.hasRoomLocked() {
		ch.enqueueLocked(out)
		return nil
	}
	// Zero capacity with no taker waiting: nothing older to evict.
	ch.recordDropLocked(out)
	return nil
}

// errorPutLocked enqueues one output with the Error strategy.
func (ch *transducingChannel[In, Out]) errorPutLocked(out Out) error {
	if !ch.hasRoomLocked() {
		return ErrFull
	}
	ch.enqueueLocked(out)
	return nil
}

// enqueueLocked appends one output and wakes one taker and any selectors.
func (ch *transducingChannel[In, Out]) enqueueLocked(out Out) {
	ch.buffer = append(ch.buffer, out)
	ch.notEmpty.Signal()
	ch.notifyWaitersLocked()

	ch.updateStats(func(s *Stats) { s.OutputCount++ })
	if ch.metricsEnabled() {
		ch.config.Metrics.PipelineOutputs.WithLabelValues("channel", ch.config.Name).Inc()
		ch.config.Metrics.ChannelBufferUsage.WithLabelValues(ch.config.Name).Set(float64(len(ch.buffer)))
	}
}

// enqueueAllLocked appends outputs without regard to capacity. Only used on
// the close path, where blocking the closer would deadlock.
func (ch *transducingChannel[In, Out]) enqueueAllLocked(outs []Out) {
	for _, out := range outs {
		ch.enqueueLocked(out)
	}
}

// dequeueLocked removes and returns the oldest buffered output.
func (ch *transducingChannel[In, Out]) dequeueLocked() Out {
	value := ch.buffer[0]
	var zero Out
	ch.buffer[0] = zero
	ch.buffer = ch.buffer[1:]

	if ch.metricsEnabled() {
		ch.config.Metrics.ChannelBufferUsage.WithLabelValues(ch.config.Name).Set(float64(len(ch.buffer)))
	}
	return value
}

// recordDropLocked counts a dropped output and runs the OnDrop callback.
func (ch *transducingChannel[In, Out]) recordDropLocked(out Out) {
	ch.updateStats(func(s *Stats) { s.DroppedCount++ })
	if ch.metricsEnabled() {
		ch.config.Metrics.ChannelDrops.WithLabelValues(ch.config.Strategy.String(), ch.config.Name).Inc()
	}
	if ch.config.OnDrop != nil {
		ch.config.OnDrop(out)
	}
}

// addWaiter registers a Select signal channel.
func (ch *transducingChannel[In, Out]) addWaiter(w chan struct{}) {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	ch.waiters = append(ch.waiters, w)
}

// removeWaiter unregisters a Select signal channel.
func (ch *transducingChannel[In, Out]) removeWaiter(w chan struct{}) {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	for i, existing := range ch.waiters {
		if existing == w {
			ch.waiters = append(ch.waiters[:i], ch.waiters[i+1:]...)
			return
		}
	}
}

// notifyWaitersLocked nudges every registered selector without blocking.
func (ch *transducingChannel[In, Out]) notifyWaitersLocked() {
	for _, w := range ch.waiters {
		select {
		case w <- struct{}{}:
		default:
		}
	}
}

// updateStats safely updates statistics.
func (ch *transducingChannel[In, Out]) updateStats(updater func(*Stats)) {
	ch.statsMu.Lock()
	defer ch.statsMu.Unlock()
	updater(&ch.stats)
}

// metricsEnabled reports whether this channel records metrics.
func (ch *transducingChannel[In, Out]) metricsEnabled() bool {
	return ch.config.Metrics != nil && ch.config.Name != ""
}
