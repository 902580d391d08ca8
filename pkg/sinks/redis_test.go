package sinks

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vnykmshr/goxf/internal/testutil"
	gxerrors "github.com/vnykmshr/goxf/pkg/common/errors"
	"github.com/vnykmshr/goxf/pkg/transduce"
)

func TestRedisListConfigValidation(t *testing.T) {
	_, err := RedisList(RedisListConfig{Key: "events"})
	testutil.AssertError(t, err)
	testutil.AssertEqual(t, gxerrors.IsValidationError(err), true)

	client := redis.NewClient(&redis.Options{})
	defer client.Close()

	_, err = RedisList(RedisListConfig{Client: client})
	testutil.AssertError(t, err)
	testutil.AssertEqual(t, gxerrors.IsValidationError(err), true)
}

// newTestClient connects to the Redis instance named by GOXF_REDIS_ADDR,
// skipping the test when none is configured.
func newTestClient(t *testing.T) redis.UniversalClient {
	addr := os.Getenv("GOXF_REDIS_ADDR")
	if addr == "" {
		t.Skip("GOXF_REDIS_ADDR not set; skipping Redis sink test")
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { client.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Fatalf("redis at %s not reachable: %v", addr, err)
	}

	return client
}

func TestRedisListAppends(t *testing.T) {
	client := newTestClient(t)
	key := fmt.Sprintf("goxf:test:sink:%d", time.Now().UnixNano())
	t.Cleanup(func() { client.Del(context.Background(), key) })

	sink, err := RedisList(RedisListConfig{Client: client, Key: key})
	testutil.AssertNoError(t, err)

	xf := transduce.Filter(func(s string) bool { return s != "skip" })
	result := transduce.Transduce(xf, sink, []string{"a", "skip", "b", "c"})

	testutil.AssertEqual(t, result.(int64), int64(3))
	testutil.AssertNoError(t, sink.Err())

	values, err := client.LRange(context.Background(), key, 0, -1).Result()
	testutil.AssertNoError(t, err)
	testutil.AssertDeepEqual(t, values, []string{"a", "b", "c"})
}

func TestRedisListStopsOnError(t *testing.T) {
	// A client pointed at nothing fails fast and must stop the reduction.
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	tracker := testutil.NewCallbackTracker()
	sink, err := RedisList(RedisListConfig{
		Client:  client,
		Key:     "goxf:test:unreachable",
		Timeout: 200 * time.Millisecond,
		OnError: func(err error) { tracker.Mark(err) },
	})
	testutil.AssertNoError(t, err)

	stepped := 0
	counting := transduce.Map(func(s string) string {
		stepped++
		return s
	})
	result := transduce.Transduce(counting, sink, []string{"one", "two", "three"})

	testutil.AssertEqual(t, stepped, 1)
	testutil.AssertEqual(t, result.(int64), int64(0))
	testutil.AssertError(t, sink.Err())
	tracker.AssertCallCount(t, 1)
}
