package cache

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/dindin-invest/backend/internal/domain/entity"
)

func sampleBundle() *entity.RecommendationBundle {
	return &entity.RecommendationBundle{
		DomesticSuggestions: []entity.InvestmentSuggestion{
			{Name: "Tesouro Selic", AllocationPercent: 100, RiskLevel: entity.RiskLevelLow, Region: entity.RegionDomestic},
		},
		InternationalSuggestions: []entity.InvestmentSuggestion{
			{Name: "IVVB11", AllocationPercent: 100, RiskLevel: entity.RiskLevelMedium, Region: entity.RegionInternational},
		},
		Summary:  "Resumo",
		Warnings: []string{"Cuidado"},
	}
}

func TestRedisRecommendationCache(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	defer client.Close()

	c := NewRedisRecommendationCache(client)
	ctx := context.Background()

	if _, ok, err := c.Get(ctx, "missing"); ok || err != nil {
		t.Fatalf("expected a clean miss, got ok=%v err=%v", ok, err)
	}

	if err := c.Set(ctx, "recommendation:abc", sampleBundle(), time.Hour); err != nil {
		t.Fatalf("unexpected set error: %v", err)
	}
	if ttl := server.TTL("recommendation:abc"); ttl != time.Hour {
		t.Errorf("expected ttl of one hour, got %v", ttl)
	}

	got, ok, err := c.Get(ctx, "recommendation:abc")
	if err != nil || !ok {
		t.Fatalf("expected a hit, got ok=%v err=%v", ok, err)
	}
	if got.Summary != "Resumo" || got.DomesticSuggestions[0].Name != "Tesouro Selic" {
		t.Errorf("unexpected bundle %+v", got)
	}
	if got.InternationalSuggestions[0].RiskLevel != entity.RiskLevelMedium {
		t.Errorf("risk level lost in round trip: %q", got.InternationalSuggestions[0].RiskLevel)
	}

	server.FastForward(2 * time.Hour)
	if _, ok, _ := c.Get(ctx, "recommendation:abc"); ok {
		t.Error("expected the entry to expire")
	}
}

func TestRedisRecommendationCache_CorruptEntry(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	defer client.Close()

	if err := server.Set("recommendation:bad", "{not json"); err != nil {
		t.Fatalf("failed to seed: %v", err)
	}

	_, ok, err := NewRedisRecommendationCache(client).Get(context.Background(), "recommendation:bad")
	if ok || err == nil {
		t.Errorf("expected decode error, got ok=%v err=%v", ok, err)
	}
}

func TestNewRedisClient(t *testing.T) {
	client, err := NewRedisClient("redis://localhost:6379/2", "secret", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer client.Close()

	opts := client.Options()
	if opts.DB != 2 || opts.Password != "secret" {
		t.Errorf("unexpected options db=%d password=%q", opts.DB, opts.Password)
	}

	if _, err := NewRedisClient("not-a-url", "", 0); err == nil {
		t.Error("expected error for invalid url")
	}
}

func TestMemoryRecommendationCache(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	c := newMemoryCache(10, 0, func() time.Time { return now })
	ctx := context.Background()

	bundle := sampleBundle()
	if err := c.Set(ctx, "k", bundle, time.Minute); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bundle.DomesticSuggestions[0].Name = "changed"

	got, ok, _ := c.Get(ctx, "k")
	if !ok {
		t.Fatal("expected a hit")
	}
	if got.DomesticSuggestions[0].Name != "Tesouro Selic" {
		t.Error("cache should hold its own copy")
	}

	got.Warnings[0] = "mutated"
	again, _, _ := c.Get(ctx, "k")
	if again.Warnings[0] != "Cuidado" {
		t.Error("returned bundle should not alias the cached one")
	}

	now = now.Add(time.Minute)
	if _, ok, _ := c.Get(ctx, "k"); ok {
		t.Error("expected the entry to expire at its ttl")
	}

	if err := c.Set(ctx, "forever", sampleBundle(), 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	now = now.Add(24 * time.Hour)
	if _, ok, _ := c.Get(ctx, "forever"); !ok {
		t.Error("entry without ttl should not expire")
	}
}

func TestMemoryRecommendationCache_Bounded(t *testing.T) {
	c := newMemoryCache(2, time.Hour, time.Now)
	ctx := context.Background()

	for _, key := range []string{"a", "b", "c"} {
		if err := c.Set(ctx, key, sampleBundle(), time.Hour); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if c.Len() != 2 {
		t.Errorf("expected 2 entries, got %d", c.Len())
	}
	if _, ok, _ := c.Get(ctx, "a"); ok {
		t.Error("expected the least recently used entry to be evicted")
	}
	if _, ok, _ := c.Get(ctx, "c"); !ok {
		t.Error("expected the newest entry to be kept")
	}
}

func TestMemoryRecommendationCache_SweepsExpired(t *testing.T) {
	c := newMemoryCache(10, 20*time.Millisecond, time.Now)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_ = c.Set(ctx, fmt.Sprintf("profile-%d", i), sampleBundle(), 20*time.Millisecond)
	}

	deadline := time.Now().Add(2 * time.Second)
	for c.Len() > 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if c.Len() != 0 {
		t.Errorf("expected expired entries to be swept without reads, %d left", c.Len())
	}
}

func TestMemoryRecommendationCache_RefreshAfterExpiry(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	var mu sync.Mutex
	clock := func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return now
	}
	c := newMemoryCache(10, 0, clock)
	ctx := context.Background()

	_ = c.Set(ctx, "k", sampleBundle(), time.Minute)
	mu.Lock()
	now = now.Add(2 * time.Minute)
	mu.Unlock()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _, _ = c.Get(ctx, "k")
		}()
		go func() {
			defer wg.Done()
			_ = c.Set(ctx, "k", sampleBundle(), time.Minute)
		}()
	}
	wg.Wait()

	if _, ok, _ := c.Get(ctx, "k"); !ok {
		t.Error("a refreshed entry must survive concurrent reads of the stale one")
	}
}
