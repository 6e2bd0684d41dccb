package projection

import (
	"math"

	"github.com/dindin-invest/backend/internal/domain/entity"
	domainerror "github.com/dindin-invest/backend/internal/domain/error"
)

const (
	// WithdrawalRate is the sustainable yearly withdrawal used to size the retirement capital.
	WithdrawalRate = 0.04
	// AssumedAnnualReturn is the yearly growth applied to savings and to the contribution schedule.
	AssumedAnnualReturn = 0.10
)

// ProjectRetirementNeed computes how much capital is needed to retire and the
// level monthly contribution that closes the gap left by current savings.
func ProjectRetirementNeed(in entity.RetirementInput) (entity.RetirementResult, error) {
	if err := validateRetirementInput(in); err != nil {
		return entity.RetirementResult{}, err
	}

	years := in.RetirementAge - in.CurrentAge
	totalNeeded := in.DesiredMonthlyIncome * 12 / WithdrawalRate
	futureSavings := in.CurrentSavings * math.Pow(1+AssumedAnnualReturn, float64(years))
	stillNeeded := math.Max(0, totalNeeded-futureSavings)

	return entity.RetirementResult{
		YearsToRetirement:           years,
		TotalNeeded:                 totalNeeded,
		FutureValueOfCurrentSavings: futureSavings,
		MonthlyContributionNeeded:   levelMonthlyPayment(stillNeeded, AssumedAnnualReturn/12, years*12),
	}, nil
}

// levelMonthlyPayment solves the future value of an annuity for the payment.
// With no months left the whole target is due at once.
func levelMonthlyPayment(target, rate float64, months int) float64 {
	if target <= 0 {
		return 0
	}
	if months <= 0 {
		return target
	}
	if rate == 0 {
		return target / float64(months)
	}
	return target * rate / (math.Pow(1+rate, float64(months)) - 1)
}

func validateRetirementInput(in entity.RetirementInput) error {
	if in.CurrentAge < 0 || in.RetirementAge <= in.CurrentAge {
		return domainerror.NewProjectionError(
			domainerror.ErrCodeInvalidAges,
			"retirement age must be greater than current age",
			domainerror.ErrInvalidInput,
		)
	}
	if in.RetirementAge-in.CurrentAge > MaxYears {
		return domainerror.NewProjectionError(
			domainerror.ErrCodeInvalidHorizon,
			"retirement horizon must not exceed 100 years",
			domainerror.ErrInvalidInput,
		)
	}
	if !isFinite(in.DesiredMonthlyIncome) || in.DesiredMonthlyIncome < 0 {
		return domainerror.NewProjectionError(
			domainerror.ErrCodeNegativeAmount,
			"desired monthly income must be zero or positive",
			domainerror.ErrInvalidInput,
		)
	}
	if !isFinite(in.CurrentSavings) || in.CurrentSavings < 0 {
		return domainerror.NewProjectionError(
			domainerror.ErrCodeNegativeAmount,
			"current savings must be zero or positive",
			domainerror.ErrInvalidInput,
		)
	}
	return nil
}
