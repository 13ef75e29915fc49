package storage

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "cryptopay:"

// RedisBackend stores each collection as a single string key. The whole
// payload is replaced on save, matching the file backend's semantics.
type RedisBackend struct {
	client *redis.Client
}

func NewRedisBackend(client *redis.Client) *RedisBackend {
	return &RedisBackend{client: client}
}

func (b *RedisBackend) Load(ctx context.Context, collection string) ([]byte, bool, error) {
	data, err := b.client.Get(ctx, redisKeyPrefix+collection).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read collection %s: %w", collection, err)
	}
	return data, true, nil
}

func (b *RedisBackend) Save(ctx context.Context, collection string, data []byte) error {
	if err := b.client.Set(ctx, redisKeyPrefix+collection, data, 0).Err(); err != nil {
		return fmt.Errorf("write collection %s: %w", collection, err)
	}
	return nil
}
