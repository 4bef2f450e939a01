package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const limitKeyPrefix = "unichip:ratelimit:"

// Limiter counts attempts per key within a fixed window
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// NewLimiter returns a Redis-backed limiter when client is set, and an
// in-process limiter otherwise.
func NewLimiter(client *redis.Client, limit int, window time.Duration) Limiter {
	if client == nil {
		return NewMemoryLimiter(limit, window)
	}
	return &RedisLimiter{client: client, limit: limit, window: window}
}

// RedisLimiter shares attempt counters across API instances
type RedisLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	k := limitKeyPrefix + key
	var incr *redis.IntCmd
	// INCR and EXPIRE NX run as one transaction: no counter outlives its window.
	_, err := l.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, k)
		pipe.ExpireNX(ctx, k, l.window)
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to count attempt: %w", err)
	}
	return incr.Val() <= int64(l.limit), nil
}

type attemptWindow struct {
	count int
	reset time.Time
}

// MemoryLimiter is the single-process fallback
type MemoryLimiter struct {
	mu     sync.Mutex
	limit  int
	window time.Duration
	hits   map[string]*attemptWindow
	now    func() time.Time
}

// NewMemoryLimiter creates an in-memory limiter
func NewMemoryLimiter(limit int, window time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		limit:  limit,
		window: window,
		hits:   make(map[string]*attemptWindow),
		now:    time.Now,
	}
}

func (l *MemoryLimiter) Allow(ctx context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	for k, w := range l.hits {
		if !now.Before(w.reset) {
			delete(l.hits, k)
		}
	}

	w, ok := l.hits[key]
	if !ok {
		w = &attemptWindow{reset: now.Add(l.window)}
		l.hits[key] = w
	}
	w.count++
	return w.count <= l.limit, nil
}
