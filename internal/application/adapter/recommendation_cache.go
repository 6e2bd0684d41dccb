// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/dindin-invest/backend/internal/domain/entity"
)

// RecommendationCache defines the interface for caching generated recommendations.
type RecommendationCache interface {
	// Get returns the cached bundle for key. The boolean is false on a miss.
	Get(ctx context.Context, key string) (*entity.RecommendationBundle, bool, error)

	// Set stores a bundle under key for the given ttl.
	Set(ctx context.Context, key string, bundle *entity.RecommendationBundle, ttl time.Duration) error
}
