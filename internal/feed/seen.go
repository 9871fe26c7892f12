package feed

import (
	"context"
	"sync"

	"github.com/redis/go-redis/v9"
)

// SeenStore records which one-time alerts have already been shown. It backs
// the duplicate-toast suppression only; feed correctness never depends on it.
type SeenStore interface {
	Has(ctx context.Context, key string) (bool, error)
	Set(ctx context.Context, key string) error
}

const seenKeyPrefix = "medicare:seen_alert:"

type RedisSeenStore struct {
	client *redis.Client
}

func NewRedisSeenStore(client *redis.Client) *RedisSeenStore {
	return &RedisSeenStore{client: client}
}

func (s *RedisSeenStore) Has(ctx context.Context, key string) (bool, error) {
	n, err := s.client.Exists(ctx, seenKeyPrefix+key).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *RedisSeenStore) Set(ctx context.Context, key string) error {
	return s.client.Set(ctx, seenKeyPrefix+key, "1", 0).Err()
}

// MemorySeenStore is an in-process SeenStore for tests.
type MemorySeenStore struct {
	mu   sync.Mutex
	keys map[string]bool
}

func NewMemorySeenStore() *MemorySeenStore {
	return &MemorySeenStore{keys: make(map[string]bool)}
}

func (s *MemorySeenStore) Has(_ context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.keys[key], nil
}

func (s *MemorySeenStore) Set(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.keys[key] = true
	return nil
}

var (
	_ SeenStore = (*RedisSeenStore)(nil)
	_ SeenStore = (*MemorySeenStore)(nil)
)
