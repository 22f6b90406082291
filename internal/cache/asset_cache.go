package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// AssetCache handles Redis caching of resolved report assets
type AssetCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}

type assetCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewAssetCache creates a new asset cache
func NewAssetCache(client *redis.Client, ttl time.Duration) AssetCache {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &assetCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *assetCache) key(assetKey string) string {
	return fmt.Sprintf("asset:%s", assetKey)
}

func (c *assetCache) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := c.client.Get(ctx, c.key(key)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (c *assetCache) Set(ctx context.Context, key string, data []byte) error {
	return c.client.Set(ctx, c.key(key), data, c.ttl).Err()
}

func (c *assetCache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, c.key(key)).Err()
}
