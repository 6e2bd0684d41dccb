package cache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/dindin-invest/backend/internal/application/adapter"
	"github.com/dindin-invest/backend/internal/domain/entity"
)

// DefaultMemoryCacheSize bounds the in-process cache when no size is configured.
const DefaultMemoryCacheSize = 1000

type memoryEntry struct {
	bundle    entity.RecommendationBundle
	expiresAt time.Time
}

// MemoryRecommendationCache keeps bundles in a bounded in-process LRU. Used when
// no redis is configured. The LRU drops entries older than its ttl on its own;
// a shorter ttl passed to Set is honoured on read.
type MemoryRecommendationCache struct {
	entries *expirable.LRU[string, memoryEntry]
	now     func() time.Time
}

// NewMemoryRecommendationCache creates an empty in-process cache holding at most
// size bundles for ttl. A ttl <= 0 keeps entries until they are evicted.
func NewMemoryRecommendationCache(size int, ttl time.Duration) adapter.RecommendationCache {
	return newMemoryCache(size, ttl, time.Now)
}

func newMemoryCache(size int, ttl time.Duration, now func() time.Time) *MemoryRecommendationCache {
	if size <= 0 {
		size = DefaultMemoryCacheSize
	}
	if ttl < 0 {
		ttl = 0
	}
	return &MemoryRecommendationCache{
		entries: expirable.NewLRU[string, memoryEntry](size, nil, ttl),
		now:     now,
	}
}

// Get returns a copy of the cached bundle.
func (c *MemoryRecommendationCache) Get(_ context.Context, key string) (*entity.RecommendationBundle, bool, error) {
	entry, ok := c.entries.Get(key)
	if !ok {
		return nil, false, nil
	}
	if !entry.expiresAt.IsZero() && !c.now().Before(entry.expiresAt) {
		return nil, false, nil
	}

	bundle := cloneBundle(entry.bundle)
	return &bundle, true, nil
}

// Set stores a copy of the bundle. A ttl <= 0 never expires on read.
func (c *MemoryRecommendationCache) Set(_ context.Context, key string, bundle *entity.RecommendationBundle, ttl time.Duration) error {
	entry := memoryEntry{bundle: cloneBundle(*bundle)}
	if ttl > 0 {
		entry.expiresAt = c.now().Add(ttl)
	}
	c.entries.Add(key, entry)
	return nil
}

// Len reports how many bundles are held.
func (c *MemoryRecommendationCache) Len() int {
	return c.entries.Len()
}

func cloneBundle(b entity.RecommendationBundle) entity.RecommendationBundle {
	b.DomesticSuggestions = append([]entity.InvestmentSuggestion(nil), b.DomesticSuggestions...)
	b.InternationalSuggestions = append([]entity.InvestmentSuggestion(nil), b.InternationalSuggestions...)
	b.Warnings = append([]string(nil), b.Warnings...)
	return b
}
