package dto

import (
	"github.com/dindin-invest/backend/internal/application/usecase/recommendation"
	"github.com/dindin-invest/backend/internal/domain/entity"
	"github.com/dindin-invest/backend/internal/domain/money"
)

// PersonalizedRecommendationRequest represents the investor profile sent for recommendations.
type PersonalizedRecommendationRequest struct {
	MonthlyIncome                float64 `json:"monthly_income"`
	MonthlyEssentialExpenses     float64 `json:"monthly_essential_expenses"`
	MonthlyDiscretionaryExpenses float64 `json:"monthly_discretionary_expenses"`
	RiskProfile                  string  `json:"risk_profile" binding:"required"`
	Age                          int     `json:"age"`
}

// ToProfile converts the request to a domain FinancialProfile.
func (r PersonalizedRecommendationRequest) ToProfile() entity.FinancialProfile {
	return entity.FinancialProfile{
		MonthlyIncome:                r.MonthlyIncome,
		MonthlyEssentialExpenses:     r.MonthlyEssentialExpenses,
		MonthlyDiscretionaryExpenses: r.MonthlyDiscretionaryExpenses,
		RiskProfile:                  entity.RiskProfile(r.RiskProfile),
		Age:                          r.Age,
	}
}

// InvestmentSuggestionResponse represents a single suggestion.
type InvestmentSuggestionResponse struct {
	Name               string  `json:"name"`
	Allocation         float64 `json:"allocation"`
	ExpectedReturn     string  `json:"expected_return"`
	Risk               string  `json:"risk"`
	RiskLabel          string  `json:"risk_label"`
	Rationale          string  `json:"rationale"`
	ConceptExplanation string  `json:"concept_explanation"`
	PracticalSteps     string  `json:"practical_steps"`
	MinimumAmount      float64 `json:"minimum_amount"`
	RecommendedHorizon string  `json:"recommended_horizon"`
	Region             string  `json:"region"`
}

// ProfileAnalysisResponse summarises how a profile was classified.
type ProfileAnalysisResponse struct {
	IncomeLevel       string  `json:"income_level"`
	RiskCapacity      string  `json:"risk_capacity"`
	AvailableToInvest float64 `json:"available_to_invest"`
}

// PersonalizedRecommendationResponse represents a recommendation bundle.
type PersonalizedRecommendationResponse struct {
	DomesticRecommendations      []InvestmentSuggestionResponse `json:"domestic_recommendations"`
	InternationalRecommendations []InvestmentSuggestionResponse `json:"international_recommendations"`
	Summary                      string                         `json:"summary"`
	Warnings                     []string                       `json:"warnings"`
	ProfileAnalysis              ProfileAnalysisResponse        `json:"profile_analysis"`
	Source                       string                         `json:"source"`
	FallbackReason               *FallbackReasonResponse        `json:"fallback_reason,omitempty"`
}

func toSuggestionResponses(items []entity.InvestmentSuggestion) []InvestmentSuggestionResponse {
	out := make([]InvestmentSuggestionResponse, len(items))
	for i, s := range items {
		out[i] = InvestmentSuggestionResponse{
			Name:               s.Name,
			Allocation:         s.AllocationPercent,
			ExpectedReturn:     s.ExpectedReturnDescription,
			Risk:               string(s.RiskLevel),
			RiskLabel:          s.RiskLevel.Label(),
			Rationale:          s.Rationale,
			ConceptExplanation: s.ConceptExplanation,
			PracticalSteps:     s.PracticalSteps,
			MinimumAmount:      money.RoundCents(s.MinimumAmount),
			RecommendedHorizon: s.RecommendedHorizon,
			Region:             string(s.Region),
		}
	}
	return out
}

// ToPersonalizedRecommendationResponse converts the use case output to the response DTO.
func ToPersonalizedRecommendationResponse(out *recommendation.GeneratePersonalizedOutput) PersonalizedRecommendationResponse {
	warnings := out.Bundle.Warnings
	if warnings == nil {
		warnings = []string{}
	}
	return PersonalizedRecommendationResponse{
		DomesticRecommendations:      toSuggestionResponses(out.Bundle.DomesticSuggestions),
		InternationalRecommendations: toSuggestionResponses(out.Bundle.InternationalSuggestions),
		Summary:                      out.Bundle.Summary,
		Warnings:                     warnings,
		ProfileAnalysis: ProfileAnalysisResponse{
			IncomeLevel:       string(out.Classification.IncomeLevel),
			RiskCapacity:      string(out.Classification.RiskCapacity),
			AvailableToInvest: money.RoundCents(out.Classification.AvailableToInvest),
		},
		Source:         string(out.Source),
		FallbackReason: ToFallbackReasonResponse(out.FallbackReason),
	}
}

// InvestmentRecommendationRequest represents the quick allocation request.
type InvestmentRecommendationRequest struct {
	RiskProfile         string  `json:"risk_profile" binding:"required"`
	Amount              float64 `json:"amount"`
	TimeHorizon         int     `json:"time_horizon"`
	MonthlyContribution float64 `json:"monthly_contribution"`
}

// ToInput converts the request to the use case input.
func (r InvestmentRecommendationRequest) ToInput() recommendation.SuggestAllocationInput {
	return recommendation.SuggestAllocationInput{
		RiskProfile:         entity.RiskProfile(r.RiskProfile),
		Amount:              r.Amount,
		Years:               r.TimeHorizon,
		MonthlyContribution: r.MonthlyContribution,
	}
}

// AllocationSliceResponse represents one asset class share.
type AllocationSliceResponse struct {
	Name       string  `json:"name"`
	Percentage float64 `json:"percentage"`
}

// InvestmentRecommendationResponse represents the allocation plan.
type InvestmentRecommendationResponse struct {
	RiskProfile    string                    `json:"risk_profile"`
	Allocation     []AllocationSliceResponse `json:"allocation"`
	ExpectedReturn float64                   `json:"expected_return"`
	RiskLevel      string                    `json:"risk_level"`
	Recommendation string                    `json:"recommendation"`
	ProjectedValue float64                   `json:"projected_value"`
	TotalInvested  float64                   `json:"total_invested"`
	TotalGains     float64                   `json:"total_gains"`
}

// ToInvestmentRecommendationResponse converts an allocation plan to the response DTO.
func ToInvestmentRecommendationResponse(plan entity.AllocationPlan) InvestmentRecommendationResponse {
	slices := make([]AllocationSliceResponse, len(plan.Allocation))
	for i, s := range plan.Allocation {
		slices[i] = AllocationSliceResponse{Name: s.Name, Percentage: s.Percent}
	}
	return InvestmentRecommendationResponse{
		RiskProfile:    string(plan.RiskProfile),
		Allocation:     slices,
		ExpectedReturn: plan.ExpectedReturn,
		RiskLevel:      string(plan.RiskLevel),
		Recommendation: plan.Recommendation,
		ProjectedValue: money.RoundCents(plan.ProjectedValue),
		TotalInvested:  money.RoundCents(plan.TotalInvested),
		TotalGains:     money.RoundCents(plan.TotalGains),
	}
}

// InvestorProfileResponse represents a static profile description.
type InvestorProfileResponse struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	ExpectedReturn  string   `json:"expected_return"`
	RiskLevel       string   `json:"risk_level"`
	TimeHorizon     string   `json:"time_horizon"`
	Characteristics []string `json:"characteristics"`
	Investments     []string `json:"investments"`
}

// InvestorProfileListResponse lists the profile descriptions.
type InvestorProfileListResponse struct {
	Profiles []InvestorProfileResponse `json:"profiles"`
}

// ToInvestorProfileListResponse converts the descriptions to the response DTO.
func ToInvestorProfileListResponse(profiles []entity.InvestorProfileDescription) InvestorProfileListResponse {
	out := make([]InvestorProfileResponse, len(profiles))
	for i, p := range profiles {
		out[i] = InvestorProfileResponse{
			ID:              string(p.RiskProfile),
			Name:            p.Name,
			Description:     p.Description,
			ExpectedReturn:  p.ExpectedReturn,
			RiskLevel:       string(p.RiskLevel),
			TimeHorizon:     p.TimeHorizon,
			Characteristics: p.Characteristics,
			Investments:     p.Investments,
		}
	}
	return InvestorProfileListResponse{Profiles: out}
}
