package persistence

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mercora/storefront/pkg/redis"
)

// RedisStore mirrors state slices into namespaced redis keys.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore wraps the shared redis client.
func NewRedisStore(client *redis.Client) (*RedisStore, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client is required")
	}
	return &RedisStore{client: client}, nil
}

// Save serializes the value and writes it under the slice's snapshot key.
func (s *RedisStore) Save(ctx context.Context, slice string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode slice %s: %w", slice, err)
	}
	if err := s.client.Set(ctx, s.client.SnapshotKey(slice), string(payload), 0); err != nil {
		return fmt.Errorf("write slice %s: %w", slice, err)
	}
	return nil
}

// Load reads and decodes the snapshot for the slice.
func (s *RedisStore) Load(ctx context.Context, slice string, dest any) error {
	payload, err := s.client.Get(ctx, s.client.SnapshotKey(slice))
	if err != nil {
		if redis.IsNil(err) {
			return ErrNotFound
		}
		return fmt.Errorf("read slice %s: %w", slice, err)
	}
	if err := json.Unmarshal([]byte(payload), dest); err != nil {
		return fmt.Errorf("decode slice %s: %w", slice, err)
	}
	return nil
}

// Ping verifies the backing connection.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx)
}
