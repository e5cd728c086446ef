package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const categoriesKey = "trivia:categories"

// ErrMiss is returned when the cache holds no value for a key
var ErrMiss = errors.New("cache miss")

// CategoryCache stores the category id to type mapping in Redis
type CategoryCache struct {
	redis *redis.Client
	ttl   time.Duration
}

// NewCategoryCache creates a new category cache
func NewCategoryCache(client *redis.Client, ttl time.Duration) *CategoryCache {
	return &CategoryCache{redis: client, ttl: ttl}
}

// Get returns the cached mapping or ErrMiss
func (c *CategoryCache) Get(ctx context.Context) (map[int]string, error) {
	data, err := c.redis.Get(ctx, categoriesKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrMiss
		}
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}

	var categories map[int]string
	if err := json.Unmarshal(data, &categories); err != nil {
		return nil, fmt.Errorf("failed to unmarshal categories: %w", err)
	}
	return categories, nil
}

// Set stores the mapping until the TTL expires
func (c *CategoryCache) Set(ctx context.Context, categories map[int]string) error {
	data, err := json.Marshal(categories)
	if err != nil {
		return fmt.Errorf("failed to marshal categories: %w", err)
	}
	return c.redis.Set(ctx, categoriesKey, data, c.ttl).Err()
}
