package blob

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/davantedent/clinic-scheduler/internal/store"
)

// RedisBlob keeps the collection under a single redis key, with the TTL
// refreshed on every write.
type RedisBlob struct {
	client *redis.Client
	key    string
}

func NewRedisBlob(client *redis.Client, key string) *RedisBlob {
	return &RedisBlob{client: client, key: key}
}

func (b *RedisBlob) Get(ctx context.Context) (string, error) {
	val, err := b.client.Get(ctx, b.key).Result()
	if err == redis.Nil {
		return "", store.ErrNoData
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (b *RedisBlob) Set(ctx context.Context, value string, ttl time.Duration) error {
	return b.client.Set(ctx, b.key, value, ttl).Err()
}
