// Package cache implements the recommendation cache on redis and in memory.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dindin-invest/backend/internal/application/adapter"
	"github.com/dindin-invest/backend/internal/domain/entity"
)

// RedisRecommendationCache stores bundles as JSON strings in redis.
type RedisRecommendationCache struct {
	client *redis.Client
}

// NewRedisRecommendationCache creates a cache backed by the given client.
func NewRedisRecommendationCache(client *redis.Client) adapter.RecommendationCache {
	return &RedisRecommendationCache{client: client}
}

// NewRedisClient parses a redis URL and applies the optional password and db overrides.
func NewRedisClient(url, password string, db int) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	if password != "" {
		opts.Password = password
	}
	if db > 0 {
		opts.DB = db
	}
	return redis.NewClient(opts), nil
}

// Get returns the cached bundle for key.
func (c *RedisRecommendationCache) Get(ctx context.Context, key string) (*entity.RecommendationBundle, bool, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read cache: %w", err)
	}

	var bundle entity.RecommendationBundle
	if err := json.Unmarshal(raw, &bundle); err != nil {
		return nil, false, fmt.Errorf("failed to decode cached bundle: %w", err)
	}
	return &bundle, true, nil
}

// Set stores the bundle under key with the given ttl.
func (c *RedisRecommendationCache) Set(ctx context.Context, key string, bundle *entity.RecommendationBundle, ttl time.Duration) error {
	raw, err := json.Marshal(bundle)
	if err != nil {
		return fmt.Errorf("failed to encode bundle: %w", err)
	}
	if err := c.client.Set(ctx, key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("failed to write cache: %w", err)
	}
	return nil
}
