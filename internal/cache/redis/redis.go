package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisDefinitionCache struct {
	client redis.UniversalClient
}

func NewRedisDefinitionCache(ctx context.Context, addr string) (*RedisDefinitionCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}

	return &RedisDefinitionCache{client: client}, nil
}

func buildDefinitionKey(word string) string {
	return "dictionary:{" + word + "}"
}

func (c *RedisDefinitionCache) GetDefinition(ctx context.Context, word string) ([]byte, bool, error) {
	data, err := c.client.Get(ctx, buildDefinitionKey(word)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func (c *RedisDefinitionCache) SetDefinition(ctx context.Context, word string, data []byte, ttl time.Duration) error {
	return c.client.Set(ctx, buildDefinitionKey(word), data, ttl).Err()
}

func (c *RedisDefinitionCache) Close() error {
	return c.client.Close()
}
