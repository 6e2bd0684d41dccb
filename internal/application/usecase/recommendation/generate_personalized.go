// Package recommendation contains the investment recommendation use cases.
package recommendation

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/dindin-invest/backend/internal/application/adapter"
	"github.com/dindin-invest/backend/internal/application/usecase/advisor"
	"github.com/dindin-invest/backend/internal/domain/entity"
	domainerror "github.com/dindin-invest/backend/internal/domain/error"
	selector "github.com/dindin-invest/backend/internal/domain/recommendation"
)

const (
	// DefaultAdvisorTimeout bounds a single advisor call.
	DefaultAdvisorTimeout = 30 * time.Second

	// DefaultCacheTTL is how long a generated bundle is served from cache.
	DefaultCacheTTL = 6 * time.Hour

	// allocationTolerance is the accepted distance from 100 for advisor allocations.
	allocationTolerance = 1.0

	cacheKeyPrefix = "recommendation:"
)

// GeneratePersonalizedInput represents the input for personalized recommendations.
type GeneratePersonalizedInput struct {
	Profile entity.FinancialProfile
}

// GeneratePersonalizedOutput represents the output of personalized recommendations.
type GeneratePersonalizedOutput struct {
	Bundle         *entity.RecommendationBundle
	Source         entity.RecommendationSource
	Classification selector.Classification
	FallbackReason *advisor.ProcessingError
}

// GeneratePersonalizedUseCase asks the advisor for a portfolio and falls back to
// the deterministic selector when it cannot be used.
type GeneratePersonalizedUseCase struct {
	advisorService adapter.AdvisorService
	cache          adapter.RecommendationCache
	cacheTTL       time.Duration
	timeout        time.Duration
}

// NewGeneratePersonalizedUseCase creates a new GeneratePersonalizedUseCase instance.
func NewGeneratePersonalizedUseCase(
	advisorService adapter.AdvisorService,
	cache adapter.RecommendationCache,
	cacheTTL time.Duration,
	timeout time.Duration,
) *GeneratePersonalizedUseCase {
	if cacheTTL <= 0 {
		cacheTTL = DefaultCacheTTL
	}
	if timeout <= 0 {
		timeout = DefaultAdvisorTimeout
	}
	return &GeneratePersonalizedUseCase{
		advisorService: advisorService,
		cache:          cache,
		cacheTTL:       cacheTTL,
		timeout:        timeout,
	}
}

// Execute produces the recommendation bundle for a profile.
func (uc *GeneratePersonalizedUseCase) Execute(ctx context.Context, input GeneratePersonalizedInput) (*GeneratePersonalizedOutput, error) {
	// Invalid profiles fail before any advisor call
	if err := selector.ValidateProfile(input.Profile); err != nil {
		return nil, err
	}

	classification := selector.Classify(input.Profile)
	key := CacheKey(input.Profile)

	if uc.cache != nil {
		cached, ok, err := uc.cache.Get(ctx, key)
		if err != nil {
			slog.WarnContext(ctx, "recommendation cache lookup failed", "error", err)
		}
		if ok {
			return &GeneratePersonalizedOutput{
				Bundle:         cached,
				Source:         entity.RecommendationSourceCache,
				Classification: classification,
			}, nil
		}
	}

	bundle, err := uc.askAdvisor(ctx, &adapter.PortfolioRequest{
		Profile:           input.Profile,
		IncomeLevel:       classification.IncomeLevel,
		RiskCapacity:      classification.RiskCapacity,
		AvailableToInvest: classification.AvailableToInvest,
	})
	if err == nil {
		if uc.cache != nil {
			if cacheErr := uc.cache.Set(ctx, key, bundle, uc.cacheTTL); cacheErr != nil {
				slog.WarnContext(ctx, "failed to cache recommendation", "error", cacheErr)
			}
		}
		return &GeneratePersonalizedOutput{
			Bundle:         bundle,
			Source:         entity.RecommendationSourceAI,
			Classification: classification,
		}, nil
	}

	reason := advisor.Classify(err)
	slog.WarnContext(ctx, "advisor recommendation failed, using fallback",
		"code", reason.Code,
		"retryable", reason.Retryable,
		"error", err,
	)

	fallback, err := selector.GenerateRecommendations(input.Profile)
	if err != nil {
		return nil, err
	}

	return &GeneratePersonalizedOutput{
		Bundle:         &fallback,
		Source:         entity.RecommendationSourceFallback,
		Classification: classification,
		FallbackReason: reason,
	}, nil
}

func (uc *GeneratePersonalizedUseCase) askAdvisor(ctx context.Context, req *adapter.PortfolioRequest) (*entity.RecommendationBundle, error) {
	if uc.advisorService == nil || !uc.advisorService.IsAvailable() {
		return nil, advisor.ErrAdvisorUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	bundle, err := uc.advisorService.RecommendPortfolio(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := ValidateAdvisorBundle(bundle); err != nil {
		return nil, err
	}
	return bundle, nil
}

// ValidateAdvisorBundle checks that a generated bundle has the same shape as the
// selector output.
func ValidateAdvisorBundle(bundle *entity.RecommendationBundle) error {
	if bundle == nil {
		return invalidOutput("advisor returned no recommendations")
	}

	regions := []struct {
		name        string
		suggestions []entity.InvestmentSuggestion
	}{
		{"domestic", bundle.DomesticSuggestions},
		{"international", bundle.InternationalSuggestions},
	}

	for _, r := range regions {
		if len(r.suggestions) != selector.SuggestionsPerRegion {
			return invalidOutput(fmt.Sprintf("expected %d %s suggestions, got %d", selector.SuggestionsPerRegion, r.name, len(r.suggestions)))
		}
		if sum := selector.SumAllocation(r.suggestions); math.Abs(sum-100) > allocationTolerance {
			return invalidOutput(fmt.Sprintf("%s allocation sums to %.2f", r.name, sum))
		}
		for _, s := range r.suggestions {
			if s.Name == "" {
				return invalidOutput(fmt.Sprintf("%s suggestion without name", r.name))
			}
			if !s.RiskLevel.IsValid() {
				return invalidOutput(fmt.Sprintf("%s suggestion %q has invalid risk level %q", r.name, s.Name, s.RiskLevel))
			}
		}
	}

	return nil
}

func invalidOutput(message string) error {
	return domainerror.NewRecommendationError(
		domainerror.ErrCodeInvalidAdvisorOutput,
		message,
		domainerror.ErrInvalidAdvisorOutput,
	)
}

// CacheKey derives the cache key of a profile.
func CacheKey(p entity.FinancialProfile) string {
	normalized := fmt.Sprintf("%s|%d|%.2f|%.2f|%.2f",
		p.RiskProfile, p.Age, p.MonthlyIncome, p.MonthlyEssentialExpenses, p.MonthlyDiscretionaryExpenses)
	sum := sha256.Sum256([]byte(normalized))
	return cacheKeyPrefix + hex.EncodeToString(sum[:])
}
