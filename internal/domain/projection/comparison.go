package projection

import (
	"math"
	"sort"

	"github.com/dindin-invest/backend/internal/domain/entity"
	domainerror "github.com/dindin-invest/backend/internal/domain/error"
)

const (
	flatTaxRate = 0.15
)

// CompareInvestments simulates holding amount in each selected product for the
// given number of years and returns the results ordered by net final amount,
// best first. An empty selection compares DefaultComparisonProducts.
func CompareInvestments(amount float64, years int, productIDs []string) ([]entity.ComparisonResult, error) {
	if !isFinite(amount) || amount <= 0 {
		return nil, domainerror.NewProjectionError(
			domainerror.ErrCodeInvalidAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidInput,
		)
	}
	if years < 1 || years > MaxYears {
		return nil, domainerror.NewProjectionError(
			domainerror.ErrCodeInvalidHorizon,
			"period must be between 1 and 100 years",
			domainerror.ErrInvalidInput,
		)
	}

	if len(productIDs) == 0 {
		productIDs = DefaultComparisonProducts
	}

	seen := make(map[string]bool, len(productIDs))
	results := make([]entity.ComparisonResult, 0, len(productIDs))
	for _, id := range productIDs {
		if seen[id] {
			continue
		}
		seen[id] = true

		product, ok := FindProduct(id)
		if !ok {
			return nil, domainerror.NewProjectionError(
				domainerror.ErrCodeUnknownProduct,
				"unknown product: "+id,
				domainerror.ErrUnknownProduct,
			)
		}
		results = append(results, simulateProduct(product, amount, years))
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].FinalAmount > results[j].FinalAmount
	})

	return results, nil
}

func simulateProduct(product entity.InvestmentProduct, amount float64, years int) entity.ComparisonResult {
	gross := amount * math.Pow(1+product.AnnualRate/1200, float64(12*years))
	profit := gross - amount

	tax := profit * taxRate(product.Taxation, years)
	fee := gross * product.AnnualFeePercent / 100
	netProfit := profit - tax - fee
	final := amount + netProfit

	return entity.ComparisonResult{
		Product:               product,
		GrossAmount:           gross,
		TaxAmount:             tax,
		FeeAmount:             fee,
		FinalAmount:           final,
		NetProfit:             netProfit,
		EffectiveAnnualReturn: (math.Pow(final/amount, 1/float64(years)) - 1) * 100,
	}
}

// taxRate returns the income tax over profit for the holding period.
func taxRate(taxation entity.Taxation, years int) float64 {
	switch taxation {
	case entity.TaxationRegressive:
		return regressiveTaxRate(years)
	case entity.TaxationFlat:
		return flatTaxRate
	default:
		return 0
	}
}

func regressiveTaxRate(years int) float64 {
	switch {
	case years >= 2:
		return 0.15
	case years >= 1:
		return 0.175
	default:
		return 0.20
	}
}
