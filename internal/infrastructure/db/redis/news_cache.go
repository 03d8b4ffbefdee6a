package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/wunif/site-api/internal/core/domain"
)

const (
	newsListKey = "news:list"
	newsListTTL = 5 * time.Minute
)

// NewsCache caches the public news list in Redis. The SPA re-fetches the list
// after every mutation, so reads vastly outnumber writes; mutations call
// Invalidate to keep the cache coherent.
type NewsCache struct {
	client *redis.Client
}

// NewNewsCache creates a NewsCache wrapping the given Redis client.
func NewNewsCache(client *redis.Client) *NewsCache {
	return &NewsCache{client: client}
}

// GetList returns the cached list, or (nil, nil) on a miss.
func (c *NewsCache) GetList(ctx context.Context) ([]*domain.NewsPost, error) {
	raw, err := c.client.Get(ctx, newsListKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("news cache get: %w", err)
	}

	var posts []*domain.NewsPost
	if err := json.Unmarshal(raw, &posts); err != nil {
		return nil, fmt.Errorf("news cache decode: %w", err)
	}
	return posts, nil
}

// SetList stores the list with a TTL so stale entries age out even if an
// invalidation is ever missed.
func (c *NewsCache) SetList(ctx context.Context, posts []*domain.NewsPost) error {
	raw, err := json.Marshal(posts)
	if err != nil {
		return fmt.Errorf("news cache encode: %w", err)
	}
	return c.client.Set(ctx, newsListKey, raw, newsListTTL).Err()
}

// Invalidate drops the cached list.
func (c *NewsCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, newsListKey).Err()
}
