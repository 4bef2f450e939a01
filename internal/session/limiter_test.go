package session

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLimiter(t *testing.T) {
	ctx := context.Background()
	l := NewMemoryLimiter(2, time.Minute)

	for i := 0; i < 2; i++ {
		ok, err := l.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.True(t, ok)
	}
	ok, err := l.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = l.Allow(ctx, "10.0.0.2")
	require.NoError(t, err)
	assert.True(t, ok, "keys are counted separately")

	l.now = func() time.Time { return time.Now().Add(2 * time.Minute) }
	ok, err = l.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, ok, "window resets")
}

func TestNewLimiterWithoutRedis(t *testing.T) {
	_, ok := NewLimiter(nil, 5, time.Minute).(*MemoryLimiter)
	assert.True(t, ok)
}

// txRecorder answers transactions in place of a Redis server
type txRecorder struct {
	counts map[string]int64
	txs    [][]string
}

func (r *txRecorder) DialHook(next redis.DialHook) redis.DialHook { return next }

func (r *txRecorder) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		return fmt.Errorf("unexpected command outside a transaction: %s", cmd.Name())
	}
}

func (r *txRecorder) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		var names []string
		for _, cmd := range cmds {
			names = append(names, cmd.Name())
			switch c := cmd.(type) {
			case *redis.IntCmd:
				key := c.Args()[1].(string)
				r.counts[key]++
				c.SetVal(r.counts[key])
			case *redis.BoolCmd:
				c.SetVal(true)
			}
		}
		r.txs = append(r.txs, names)
		return nil
	}
}

func TestRedisLimiterSetsWindowOnEveryHit(t *testing.T) {
	ctx := context.Background()
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"})
	t.Cleanup(func() { client.Close() })
	rec := &txRecorder{counts: map[string]int64{}}
	client.AddHook(rec)

	l := NewLimiter(client, 2, time.Minute)
	for i := 0; i < 2; i++ {
		ok, err := l.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.True(t, ok)
	}
	ok, err := l.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.Len(t, rec.txs, 3)
	for _, tx := range rec.txs {
		assert.Equal(t, []string{"multi", "incr", "expire", "exec"}, tx)
	}
	assert.Equal(t, int64(3), rec.counts["unichip:ratelimit:10.0.0.1"])
}
