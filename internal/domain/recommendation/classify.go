// Package recommendation selects investment suggestions for a financial profile.
//
// The selector is deterministic and performs no I/O. It is the fallback used
// whenever generated advice is not available, so it must always produce a
// complete bundle for a valid profile.
package recommendation

import (
	"math"

	"github.com/dindin-invest/backend/internal/domain/entity"
	domainerror "github.com/dindin-invest/backend/internal/domain/error"
)

const (
	lowIncomeThreshold    = 3000
	mediumIncomeThreshold = 8000

	highCapacityAgeLimit   = 35
	mediumCapacityAgeLimit = 50
)

// Classification holds the buckets derived from a profile.
type Classification struct {
	IncomeLevel       entity.IncomeLevel
	RiskCapacity      entity.RiskCapacity
	AvailableToInvest float64
}

// Classify derives the income level, risk capacity and available amount of a profile.
func Classify(p entity.FinancialProfile) Classification {
	return Classification{
		IncomeLevel:       ClassifyIncome(p.MonthlyIncome),
		RiskCapacity:      ClassifyRiskCapacity(p.Age),
		AvailableToInvest: p.AvailableToInvest(),
	}
}

// ClassifyIncome buckets a monthly income in reais.
func ClassifyIncome(monthlyIncome float64) entity.IncomeLevel {
	switch {
	case monthlyIncome < lowIncomeThreshold:
		return entity.IncomeLevelLow
	case monthlyIncome < mediumIncomeThreshold:
		return entity.IncomeLevelMedium
	default:
		return entity.IncomeLevelHigh
	}
}

// ClassifyRiskCapacity buckets how much volatility an investor can take by age.
func ClassifyRiskCapacity(age int) entity.RiskCapacity {
	switch {
	case age < highCapacityAgeLimit:
		return entity.RiskCapacityHigh
	case age < mediumCapacityAgeLimit:
		return entity.RiskCapacityMedium
	default:
		return entity.RiskCapacityLow
	}
}

// ValidateProfile checks that a profile can receive recommendations.
func ValidateProfile(p entity.FinancialProfile) error {
	if !p.RiskProfile.IsValid() {
		return domainerror.NewRecommendationError(
			domainerror.ErrCodeInvalidRiskProfile,
			"risk profile must be conservative, moderate or aggressive",
			domainerror.ErrInvalidFinancialProfile,
		)
	}
	if p.Age <= 0 {
		return domainerror.NewRecommendationError(
			domainerror.ErrCodeInvalidInvestorAge,
			"age must be greater than zero",
			domainerror.ErrInvalidFinancialProfile,
		)
	}
	for _, v := range []float64{p.MonthlyIncome, p.MonthlyEssentialExpenses, p.MonthlyDiscretionaryExpenses} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return domainerror.NewRecommendationError(
				domainerror.ErrCodeNegativeBudget,
				"income and expenses must be zero or positive",
				domainerror.ErrInvalidFinancialProfile,
			)
		}
	}
	if p.AvailableToInvest() <= 0 {
		return domainerror.NewRecommendationError(
			domainerror.ErrCodeNoAvailableToInvest,
			"income must be greater than expenses to invest",
			domainerror.ErrInvalidFinancialProfile,
		)
	}
	return nil
}
