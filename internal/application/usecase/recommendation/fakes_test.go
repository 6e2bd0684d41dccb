package recommendation

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/dindin-invest/backend/internal/application/adapter"
	"github.com/dindin-invest/backend/internal/domain/entity"
)

type fakeAdvisor struct {
	available bool
	bundle    *entity.RecommendationBundle
	err       error
	delay     time.Duration
	calls     int
	lastReq   *adapter.PortfolioRequest
}

func (f *fakeAdvisor) RecommendPortfolio(ctx context.Context, req *adapter.PortfolioRequest) (*entity.RecommendationBundle, error) {
	f.calls++
	f.lastReq = req
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return f.bundle, f.err
}

func (f *fakeAdvisor) Chat(context.Context, string) (string, error) {
	return "", errors.New("not implemented")
}

func (f *fakeAdvisor) ExplainTopic(context.Context, string) (*entity.TopicExplanation, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeAdvisor) IsAvailable() bool {
	return f.available
}

type fakeCache struct {
	mu     sync.Mutex
	items  map[string]*entity.RecommendationBundle
	ttls   map[string]time.Duration
	getErr error
}

func newFakeCache() *fakeCache {
	return &fakeCache{
		items: make(map[string]*entity.RecommendationBundle),
		ttls:  make(map[string]time.Duration),
	}
}

func (c *fakeCache) Get(_ context.Context, key string) (*entity.RecommendationBundle, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	b, ok := c.items[key]
	return b, ok, nil
}

func (c *fakeCache) Set(_ context.Context, key string, bundle *entity.RecommendationBundle, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = bundle
	c.ttls[key] = ttl
	return nil
}

func suggestions(region entity.Region, allocations ...float64) []entity.InvestmentSuggestion {
	out := make([]entity.InvestmentSuggestion, 0, len(allocations))
	for i, a := range allocations {
		out = append(out, entity.InvestmentSuggestion{
			Name:              string(region) + " " + string(rune('A'+i)),
			AllocationPercent: a,
			RiskLevel:         entity.RiskLevelMedium,
			Rationale:         "gerado",
			Region:            region,
		})
	}
	return out
}

func validAdvisorBundle() *entity.RecommendationBundle {
	return &entity.RecommendationBundle{
		DomesticSuggestions:      suggestions(entity.RegionDomestic, 20, 20, 20, 20, 20),
		InternationalSuggestions: suggestions(entity.RegionInternational, 30, 20, 20, 15, 15),
		Summary:                  "Resumo gerado",
		Warnings:                 []string{"Aviso gerado"},
	}
}
