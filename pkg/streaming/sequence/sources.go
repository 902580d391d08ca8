package sequence

import "context"

// Source represents a data source for sequences.
type Source[T any] interface {
	// Next returns the next element and true, or zero value and false if no more elements.
	Next(ctx context.Context) (T, bool, error)
	// Close closes the source and releases resources.
	Close() error
}

// FromSlice creates a Source backed by a slice.
func FromSlice[T any](slice []T) Source[T] {
	return &sliceSource[T]{slice: slice}
}

// FromChannel creates a Source backed by a Go channel. The source is
// exhausted when the channel is closed.
func FromChannel[T any](ch <-chan T) Source[T] {
	return &channelSource[T]{ch: ch}
}

// Generate creates an infinite Source from a generator function. Pair
// it with an early-terminating transducer such as Take.
func Generate[T any](generator func() T) Source[T] {
	return &generatorSource[T]{generator: generator}
}

// Empty creates a Source with no elements.
func Empty[T any]() Source[T] {
	return &emptySource[T]{}
}

// sliceSource implements Source for slices.
type sliceSource[T any] struct {
	slice []T
	index int
}

func (s *sliceSource[T]) Next(ctx context.Context) (T, bool, error) {
	var zero T

	if s.index >= len(s.slice) {
		return zero, false, nil
	}

	select {
	case <-ctx.Done():
		return zero, false, ctx.Err()
	default:
	}

	value := s.slice[s.index]
	s.index++
	return value, true, nil
}

func (s *sliceSource[T]) Close() error {
	return nil
}

// channelSource implements Source for channels.
type channelSource[T any] struct {
	ch <-chan T
}

func (s *channelSource[T]) Next(ctx context.Context) (T, bool, error) {
	var zero T

	select {
	case value, ok := <-s.ch:
		if !ok {
			return zero, false, nil
		}
		return value, true, nil
	case <-ctx.Done():
		return zero, false, ctx.Err()
	}
}

func (s *channelSource[T]) Close() error {
	return nil
}

// generatorSource implements Source for generator functions.
type generatorSource[T any] struct {
	generator func() T
}

func (s *generatorSource[T]) Next(ctx context.Context) (T, bool, error) {
	select {
	case <-ctx.Done():
		var zero T
		return zero, false, ctx.Err()
	default:
		return s.generator(), true, nil
	}
}

func (s *generatorSource[T]) Close() error {
	return nil
}

// emptySource implements Source for empty sequences.
type emptySource[T any] struct{}

func (s *emptySource[T]) Next(_ context.Context) (T, bool, error) {
	var zero T
	return zero, false, nil
}

func (s *emptySource[T]) Close() error {
	return nil
}
