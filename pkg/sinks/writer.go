package sinks

import (
	"bufio"
	"io"
	"sync"

	gxerrors "github.com/vnykmshr/goxf/pkg/common/errors"
	"github.com/vnykmshr/goxf/pkg/metrics"
	"github.com/vnykmshr/goxf/pkg/transduce"
)

// Sink is a reducer that delivers values to an external destination and
// reports delivery failures.
type Sink[T any] interface {
	transduce.Reducer[T]

	// Err returns the first delivery error, or nil. A sink that errored
	// has stopped the reduction it was driving.
	Err() error
}

// LinesConfig holds configuration for the Lines sink.
type LinesConfig struct {
	// BufferSize is the size of the write buffer in bytes. Default: 4096.
	BufferSize int

	// OnError is called once with the first write or flush error.
	OnError func(error)

	// Name identifies this sink in metrics. Metrics are skipped when empty.
	Name string

	// Metrics is the registry to record into. Nil disables metrics.
	Metrics *metrics.Registry
}

// linesSink implements Sink[string] over a buffered writer.
type linesSink struct {
	config LinesConfig
	bw     *bufio.Writer

	mu  sync.Mutex
	err error
}

// Lines returns a sink that writes each value as one line to w, flushing
// the buffer on Complete. The accumulator is the int64 count of lines
// delivered.
func Lines(w io.Writer) Sink[string] {
	return LinesWithConfig(w, LinesConfig{})
}

// LinesWithConfig is Lines with explicit configuration.
func LinesWithConfig(w io.Writer, config LinesConfig) Sink[string] {
	if config.BufferSize <= 0 {
		config.BufferSize = 4096
	}
	return &linesSink{
		config: config,
		bw:     bufio.NewWriterSize(w, config.BufferSize),
	}
}

func (s *linesSink) Init() interface{} {
	return int64(0)
}

func (s *linesSink) Step(acc interface{}, value string) interface{} {
	if _, err := s.bw.WriteString(value); err != nil {
		return s.fail(acc, "write", err)
	}
	if err := s.bw.WriteByte('\n'); err != nil {
		return s.fail(acc, "write", err)
	}

	if s.metricsEnabled() {
		s.config.Metrics.SinkItems.WithLabelValues("lines", s.config.Name).Inc()
	}
	return acc.(int64) + 1
}

func (s *linesSink) Complete(acc interface{}) interface{} {
	if err := s.bw.Flush(); err != nil {
		s.record("flush", err)
		return acc
	}
	if s.metricsEnabled() {
		s.config.Metrics.SinkFlushes.WithLabelValues("lines", s.config.Name).Inc()
	}
	return acc
}

// Err implements Sink.Err.
func (s *linesSink) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// fail records the error and stops the reduction.
func (s *linesSink) fail(acc interface{}, op string, err error) interface{} {
	s.record(op, err)
	return transduce.NewReduced(acc)
}

func (s *linesSink) record(op string, err error) {
	wrapped := gxerrors.NewOperationError("sinks", op, err)

	s.mu.Lock()
	first := s.err == nil
	if first {
		s.err = wrapped
	}
	s.mu.Unlock()

	if s.metricsEnabled() {
		s.config.Metrics.SinkErrors.WithLabelValues("lines", s.config.Name).Inc()
	}
	if first && s.config.OnError != nil {
		s.config.OnError(wrapped)
	}
}

func (s *linesSink) metricsEnabled() bool {
	return s.config.Metrics != nil && s.config.Name != ""
}
