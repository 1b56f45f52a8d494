package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const defaultPrefix = "backoffice:session:"

// KVStore keeps the persisted session in Redis. Entries never expire; the
// session lives until it is cleared.
// Key format: <prefix><key>
type KVStore struct {
	client *redis.Client
	prefix string
}

// NewKVStore wraps client. An empty prefix selects the default.
func NewKVStore(client *redis.Client, prefix string) *KVStore {
	if prefix == "" {
		prefix = defaultPrefix
	}
	return &KVStore{client: client, prefix: prefix}
}

func (s *KVStore) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := s.client.Get(ctx, s.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return v, true, nil
}

func (s *KVStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, s.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (s *KVStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}

// Ping reports whether Redis is reachable.
func (s *KVStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *KVStore) key(k string) string {
	return s.prefix + k
}
