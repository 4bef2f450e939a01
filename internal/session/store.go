package session

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "unichip:session:revoked:"

// RevocationStore remembers logged-out session ids until their token would
// have expired anyway.
type RevocationStore interface {
	Revoke(ctx context.Context, sessionID string, until time.Time) error
	IsRevoked(ctx context.Context, sessionID string) (bool, error)
}

// Connect opens the shared Redis client. It returns nil when redisURL is
// empty or unreachable; callers then fall back to in-process state.
func Connect(ctx context.Context, redisURL string) *redis.Client {
	if redisURL == "" {
		log.Println("[SESSION] REDIS_URL not set, using in-memory session state")
		return nil
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("[SESSION] Invalid REDIS_URL, using in-memory session state: %v", err)
		return nil
	}
	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Printf("[SESSION] Failed to connect to Redis, using in-memory session state: %v", err)
		client.Close()
		return nil
	}

	log.Printf("[SESSION] Redis connected (addr=%s)", opts.Addr)
	return client
}

// NewStore returns a Redis-backed store when client is set, and an
// in-process store otherwise.
func NewStore(client *redis.Client) RevocationStore {
	if client == nil {
		return NewMemoryStore()
	}
	return NewRedisStore(client)
}

// RedisStore keeps revocations in Redis so every API instance sees a logout
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore wraps an existing client
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Revoke(ctx context.Context, sessionID string, until time.Time) error {
	ttl := time.Until(until)
	if ttl <= 0 {
		return nil
	}
	if err := s.client.Set(ctx, keyPrefix+sessionID, "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	return nil
}

func (s *RedisStore) IsRevoked(ctx context.Context, sessionID string) (bool, error) {
	n, err := s.client.Exists(ctx, keyPrefix+sessionID).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check session: %w", err)
	}
	return n > 0, nil
}

// MemoryStore is the single-process fallback
type MemoryStore struct {
	mu      sync.Mutex
	revoked map[string]time.Time
	now     func() time.Time
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		revoked: make(map[string]time.Time),
		now:     time.Now,
	}
}

func (s *MemoryStore) Revoke(ctx context.Context, sessionID string, until time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cleanupLocked()
	if until.After(s.now()) {
		s.revoked[sessionID] = until
	}
	return nil
}

func (s *MemoryStore) IsRevoked(ctx context.Context, sessionID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	until, ok := s.revoked[sessionID]
	if !ok {
		return false, nil
	}
	if !until.After(s.now()) {
		delete(s.revoked, sessionID)
		return false, nil
	}
	return true, nil
}

// cleanupLocked drops entries whose token has expired on its own
func (s *MemoryStore) cleanupLocked() {
	now := s.now()
	for id, until := range s.revoked {
		if !until.After(now) {
			delete(s.revoked, id)
		}
	}
}
