// Package projection implements the deterministic growth calculators.
//
// Every function in this package is pure: no I/O, no shared state, safe for
// concurrent use. Rounding is left to the presentation layer.
package projection

import (
	"math"

	"github.com/dindin-invest/backend/internal/domain/entity"
	domainerror "github.com/dindin-invest/backend/internal/domain/error"
)

// MaxYears bounds every projection horizon.
const MaxYears = 100

// ProjectCompoundGrowth projects a lump sum plus a fixed monthly contribution.
//
// Each month the contribution is added first and the whole balance then grows
// by the monthly rate, so a deposit earns interest in the month it is made.
func ProjectCompoundGrowth(in entity.ProjectionInput) (entity.ProjectionResult, error) {
	if err := validateProjectionInput(in); err != nil {
		return entity.ProjectionResult{}, err
	}

	months := in.Years * 12
	finalAmount := growMonths(in.InitialAmount, in.MonthlyContribution, monthlyRate(in.AnnualRatePercent), months)
	totalInvested := in.InitialAmount + in.MonthlyContribution*float64(months)

	return entity.ProjectionResult{
		TotalInvested: totalInvested,
		TotalInterest: finalAmount - totalInvested,
		FinalAmount:   finalAmount,
	}, nil
}

// ProjectGrowthSeries returns the balance at the end of each year, from year 0
// (the initial amount) to in.Years. The last point equals the FinalAmount of
// ProjectCompoundGrowth for the same input.
func ProjectGrowthSeries(in entity.ProjectionInput) ([]entity.YearlyBalance, error) {
	if err := validateProjectionInput(in); err != nil {
		return nil, err
	}

	rate := monthlyRate(in.AnnualRatePercent)
	series := make([]entity.YearlyBalance, 0, in.Years+1)
	series = append(series, entity.YearlyBalance{Year: 0, Balance: in.InitialAmount})

	balance := in.InitialAmount
	for year := 1; year <= in.Years; year++ {
		balance = growMonths(balance, in.MonthlyContribution, rate, 12)
		series = append(series, entity.YearlyBalance{Year: year, Balance: balance})
	}

	return series, nil
}

func monthlyRate(annualRatePercent float64) float64 {
	return annualRatePercent / 100 / 12
}

// growMonths runs the add-then-grow loop.
func growMonths(balance, contribution, rate float64, months int) float64 {
	for m := 0; m < months; m++ {
		balance = (balance + contribution) * (1 + rate)
	}
	return balance
}

func validateProjectionInput(in entity.ProjectionInput) error {
	if !isFinite(in.InitialAmount) || in.InitialAmount < 0 {
		return domainerror.NewProjectionError(
			domainerror.ErrCodeNegativeAmount,
			"initial amount must be zero or positive",
			domainerror.ErrInvalidInput,
		)
	}
	if !isFinite(in.MonthlyContribution) || in.MonthlyContribution < 0 {
		return domainerror.NewProjectionError(
			domainerror.ErrCodeNegativeAmount,
			"monthly contribution must be zero or positive",
			domainerror.ErrInvalidInput,
		)
	}
	if !isFinite(in.AnnualRatePercent) {
		return domainerror.NewProjectionError(
			domainerror.ErrCodeInvalidRate,
			"annual rate must be a finite number",
			domainerror.ErrInvalidInput,
		)
	}
	if in.Years < 0 || in.Years > MaxYears {
		return domainerror.NewProjectionError(
			domainerror.ErrCodeInvalidHorizon,
			"years must be between 0 and 100",
			domainerror.ErrInvalidInput,
		)
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
