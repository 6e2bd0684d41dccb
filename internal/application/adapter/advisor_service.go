// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/dindin-invest/backend/internal/domain/entity"
)

// PortfolioRequest carries a validated profile and its derived buckets to the advisor.
type PortfolioRequest struct {
	Profile           entity.FinancialProfile
	IncomeLevel       entity.IncomeLevel
	RiskCapacity      entity.RiskCapacity
	AvailableToInvest float64
}

// AdvisorService defines the interface for generated financial advice.
type AdvisorService interface {
	// RecommendPortfolio asks for domestic and international suggestions for a profile.
	RecommendPortfolio(ctx context.Context, request *PortfolioRequest) (*entity.RecommendationBundle, error)

	// Chat answers a free-text question from the user.
	Chat(ctx context.Context, message string) (string, error)

	// ExplainTopic produces a didactic explanation of a financial topic.
	ExplainTopic(ctx context.Context, topic string) (*entity.TopicExplanation, error)

	// IsAvailable checks if the advisor is properly configured.
	IsAvailable() bool
}
