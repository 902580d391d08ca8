package sinks

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	commonctx "github.com/vnykmshr/goxf/pkg/common/context"
	gxerrors "github.com/vnykmshr/goxf/pkg/common/errors"
	"github.com/vnykmshr/goxf/pkg/common/validation"
	"github.com/vnykmshr/goxf/pkg/metrics"
	"github.com/vnykmshr/goxf/pkg/transduce"
)

// RedisListConfig holds configuration for the RedisList sink.
type RedisListConfig struct {
	// Client is the Redis client to write through.
	Client redis.UniversalClient

	// Key is the Redis list key values are appended to.
	Key string

	// Timeout bounds each Redis command. Default: 1 second.
	Timeout time.Duration

	// TTL, when positive, is applied to the list key after the first append.
	TTL time.Duration

	// OnError is called once with the first delivery error.
	OnError func(error)

	// Name identifies this sink in metrics. Metrics are skipped when empty.
	Name string

	// Metrics is the registry to record into. Nil disables metrics.
	Metrics *metrics.Registry
}

// redisListSink implements Sink[string] over a Redis list.
type redisListSink struct {
	config RedisListConfig

	mu      sync.Mutex
	err     error
	expired bool
}

// RedisList returns a sink that appends each value to a Redis list with
// RPUSH, preserving step order. The accumulator is the int64 count of
// values delivered.
func RedisList(config RedisListConfig) (Sink[string], error) {
	if config.Client == nil {
		return nil, validation.ValidateNotNil("sinks", "client", nil)
	}
	if err := validation.ValidateNotEmpty("sinks", "key", config.Key); err != nil {
		return nil, err
	}
	if config.Timeout <= 0 {
		config.Timeout = time.Second
	}
	return &redisListSink{config: config}, nil
}

func (s *redisListSink) Init() interface{} {
	return int64(0)
}

func (s *redisListSink) Step(acc interface{}, value string) interface{} {
	ctx, cancel := commonctx.WithTimeoutOrCancel(context.Background(), s.config.Timeout)
	defer cancel()

	if err := s.config.Client.RPush(ctx, s.config.Key, value).Err(); err != nil {
		return s.fail(acc, "rpush", err)
	}

	if s.config.TTL > 0 && !s.expired {
		if err := s.config.Client.Expire(ctx, s.config.Key, s.config.TTL).Err(); err != nil {
			return s.fail(acc, "expire", err)
		}
		s.expired = true
	}

	if s.metricsEnabled() {
		s.config.Metrics.SinkItems.WithLabelValues("redis_list", s.config.Name).Inc()
	}
	return acc.(int64) + 1
}

func (s *redisListSink) Complete(acc interface{}) interface{} {
	return acc
}

// Err implements Sink.Err.
func (s *redisListSink) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// fail records the error and stops the reduction.
func (s *redisListSink) fail(acc interface{}, op string, err error) interface{} {
	wrapped := gxerrors.NewOperationError("sinks", op, err).
		WithContext("key=" + s.config.Key)

	s.mu.Lock()
	first := s.err == nil
	if first {
		s.err = wrapped
	}
	s.mu.Unlock()

	if s.metricsEnabled() {
		s.config.Metrics.SinkErrors.WithLabelValues("redis_list", s.config.Name).Inc()
	}
	if first && s.config.OnError != nil {
		s.config.OnError(wrapped)
	}

	return transduce.NewReduced(acc)
}

func (s *redisListSink) metricsEnabled() bool {
	return s.config.Metrics != nil && s.config.Name != ""
}
