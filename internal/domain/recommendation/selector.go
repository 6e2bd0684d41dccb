package recommendation

import (
	"fmt"

	"github.com/dindin-invest/backend/internal/domain/entity"
	"github.com/dindin-invest/backend/internal/domain/money"
)

// SuggestionsPerRegion is the size of every domestic and international list.
const SuggestionsPerRegion = 5

// narrative carries the caller data substituted into catalog texts.
type narrative struct {
	Age           int
	IncomeLevel   string
	Available     string
	AvailableRaw  float64
	MonthlyIncome string
}

type template struct {
	Name           string
	Allocation     float64
	ExpectedReturn string
	Risk           entity.RiskLevel
	Rationale      func(n narrative) string
	Concept        string
	Steps          string
	MinimumAmount  float64
	Horizon        string
}

type catalog struct {
	Domestic      []template
	International []template
	Summary       func(n narrative) string
	Warnings      func(n narrative) []string
}

// catalogFor returns the fixed templates of a risk profile.
func catalogFor(profile entity.RiskProfile) catalog {
	switch profile {
	case entity.RiskProfileModerate:
		return moderateCatalog
	case entity.RiskProfileAggressive:
		return aggressiveCatalog
	default:
		return conservativeCatalog
	}
}

// GenerateRecommendations builds the suggestion bundle for a profile.
func GenerateRecommendations(p entity.FinancialProfile) (entity.RecommendationBundle, error) {
	if err := ValidateProfile(p); err != nil {
		return entity.RecommendationBundle{}, err
	}

	c := Classify(p)
	n := narrative{
		Age:           p.Age,
		IncomeLevel:   c.IncomeLevel.Label(),
		Available:     money.FormatBRL(c.AvailableToInvest),
		AvailableRaw:  c.AvailableToInvest,
		MonthlyIncome: money.FormatBRL(p.MonthlyIncome),
	}

	cat := catalogFor(p.RiskProfile)
	warnings := append(cat.Warnings(n), capacityWarning(p.Age, c.RiskCapacity, p.RiskProfile))

	return entity.RecommendationBundle{
		DomesticSuggestions:      render(cat.Domestic, entity.RegionDomestic, n),
		InternationalSuggestions: render(cat.International, entity.RegionInternational, n),
		Summary:                  cat.Summary(n),
		Warnings:                 warnings,
	}, nil
}

func render(templates []template, region entity.Region, n narrative) []entity.InvestmentSuggestion {
	out := make([]entity.InvestmentSuggestion, 0, len(templates))
	for _, t := range templates {
		out = append(out, entity.InvestmentSuggestion{
			Name:                      t.Name,
			AllocationPercent:         t.Allocation,
			ExpectedReturnDescription: t.ExpectedReturn,
			RiskLevel:                 t.Risk,
			Rationale:                 t.Rationale(n),
			ConceptExplanation:        t.Concept,
			PracticalSteps:            t.Steps,
			MinimumAmount:             t.MinimumAmount,
			RecommendedHorizon:        t.Horizon,
			Region:                    region,
		})
	}
	return out
}

func capacityWarning(age int, capacity entity.RiskCapacity, profile entity.RiskProfile) string {
	switch {
	case capacity == entity.RiskCapacityLow && profile == entity.RiskProfileAggressive:
		return fmt.Sprintf("Aos %d anos sua capacidade de absorver perdas é %s: reduza a parcela especulativa conforme a aposentadoria se aproxima", age, capacity.Label())
	case capacity == entity.RiskCapacityHigh && profile == entity.RiskProfileConservative:
		return fmt.Sprintf("Aos %d anos sua capacidade de risco é %s: considere aumentar aos poucos a renda variável para o longo prazo", age, capacity.Label())
	default:
		return fmt.Sprintf("Aos %d anos sua capacidade de risco é %s: revise a alocação a cada mudança de fase da vida", age, capacity.Label())
	}
}

// SumAllocation adds up the allocation of a suggestion list.
func SumAllocation(suggestions []entity.InvestmentSuggestion) float64 {
	total := 0.0
	for _, s := range suggestions {
		total += s.AllocationPercent
	}
	return total
}
