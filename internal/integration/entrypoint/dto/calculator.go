package dto

import (
	"github.com/dindin-invest/backend/internal/application/usecase/calculator"
	"github.com/dindin-invest/backend/internal/domain/entity"
	"github.com/dindin-invest/backend/internal/domain/money"
)

// CompoundInterestRequest represents the request body for a compound growth projection.
type CompoundInterestRequest struct {
	InitialAmount       float64 `json:"initial_amount"`
	MonthlyContribution float64 `json:"monthly_contribution"`
	AnnualRate          float64 `json:"annual_rate"`
	Years               int     `json:"years"`
}

// YearlyBalanceResponse is one point of the growth chart.
type YearlyBalanceResponse struct {
	Year    int     `json:"year"`
	Balance float64 `json:"balance"`
}

// CompoundInterestResponse represents the projection result.
type CompoundInterestResponse struct {
	FinalAmount     float64                 `json:"final_amount"`
	TotalInvested   float64                 `json:"total_invested"`
	TotalInterest   float64                 `json:"total_interest"`
	YearlyBreakdown []YearlyBalanceResponse `json:"yearly_breakdown"`
}

// ToInput converts the request to the use case input.
func (r CompoundInterestRequest) ToInput() calculator.CompoundInterestInput {
	return calculator.CompoundInterestInput{
		InitialAmount:       r.InitialAmount,
		MonthlyContribution: r.MonthlyContribution,
		AnnualRatePercent:   r.AnnualRate,
		Years:               r.Years,
	}
}

// ToCompoundInterestResponse converts the use case output to the response DTO.
func ToCompoundInterestResponse(out *calculator.CompoundInterestOutput) CompoundInterestResponse {
	series := make([]YearlyBalanceResponse, len(out.Series))
	for i, p := range out.Series {
		series[i] = YearlyBalanceResponse{Year: p.Year, Balance: money.RoundCents(p.Balance)}
	}
	// Interest is derived from the rounded totals so final == invested + interest holds in cents.
	return CompoundInterestResponse{
		FinalAmount:     money.RoundCents(out.Result.FinalAmount),
		TotalInvested:   money.RoundCents(out.Result.TotalInvested),
		TotalInterest:   money.CentsDiff(out.Result.FinalAmount, out.Result.TotalInvested),
		YearlyBreakdown: series,
	}
}

// RetirementRequest represents the request body for a retirement analysis.
type RetirementRequest struct {
	CurrentAge           int     `json:"current_age"`
	RetirementAge        int     `json:"retirement_age" binding:"required"`
	DesiredMonthlyIncome float64 `json:"desired_monthly_income"`
	CurrentSavings       float64 `json:"current_savings"`
}

// RetirementResponse represents the retirement analysis.
type RetirementResponse struct {
	YearsToRetirement           int     `json:"years_to_retirement"`
	TotalNeeded                 float64 `json:"total_needed"`
	FutureValueOfCurrentSavings float64 `json:"future_value_of_current_savings"`
	MonthlyContributionNeeded   float64 `json:"monthly_contribution_needed"`
}

// ToInput converts the request to the use case input.
func (r RetirementRequest) ToInput() calculator.RetirementInput {
	return calculator.RetirementInput{
		CurrentAge:           r.CurrentAge,
		RetirementAge:        r.RetirementAge,
		DesiredMonthlyIncome: r.DesiredMonthlyIncome,
		CurrentSavings:       r.CurrentSavings,
	}
}

// ToRetirementResponse converts a retirement result to the response DTO.
func ToRetirementResponse(r entity.RetirementResult) RetirementResponse {
	return RetirementResponse{
		YearsToRetirement:           r.YearsToRetirement,
		TotalNeeded:                 money.RoundCents(r.TotalNeeded),
		FutureValueOfCurrentSavings: money.RoundCents(r.FutureValueOfCurrentSavings),
		MonthlyContributionNeeded:   money.RoundCents(r.MonthlyContributionNeeded),
	}
}

// CompareInvestmentsRequest represents the request body for a product comparison.
type CompareInvestmentsRequest struct {
	Amount   float64  `json:"amount"`
	Years    int      `json:"years"`
	Products []string `json:"products,omitempty"`
}

// ProductResponse represents a catalog entry.
type ProductResponse struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	AnnualRate       float64 `json:"annual_rate"`
	RiskLevel        string  `json:"risk_level"`
	MinimumAmount    float64 `json:"minimum_amount"`
	Liquidity        string  `json:"liquidity"`
	Taxation         string  `json:"taxation"`
	AnnualFeePercent float64 `json:"annual_fee_percent"`
	Description      string  `json:"description"`
}

// ProductListResponse represents the comparator catalog.
type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
}

// ComparisonResultResponse represents the simulated outcome of one product.
type ComparisonResultResponse struct {
	Product               ProductResponse `json:"product"`
	GrossAmount           float64         `json:"gross_amount"`
	TaxAmount             float64         `json:"tax_amount"`
	FeeAmount             float64         `json:"fee_amount"`
	FinalAmount           float64         `json:"final_amount"`
	NetProfit             float64         `json:"net_profit"`
	EffectiveAnnualReturn float64         `json:"effective_annual_return"`
}

// CompareInvestmentsResponse lists results sorted by final amount.
type CompareInvestmentsResponse struct {
	Results []ComparisonResultResponse `json:"results"`
}

// ToInput converts the request to the use case input.
func (r CompareInvestmentsRequest) ToInput() calculator.CompareInvestmentsInput {
	return calculator.CompareInvestmentsInput{
		Amount:     r.Amount,
		Years:      r.Years,
		ProductIDs: r.Products,
	}
}

// ToProductResponse converts a catalog product to the response DTO.
func ToProductResponse(p entity.InvestmentProduct) ProductResponse {
	return ProductResponse{
		ID:               p.ID,
		Name:             p.Name,
		AnnualRate:       p.AnnualRate,
		RiskLevel:        string(p.RiskLevel),
		MinimumAmount:    p.MinimumAmount,
		Liquidity:        p.Liquidity,
		Taxation:         string(p.Taxation),
		AnnualFeePercent: p.AnnualFeePercent,
		Description:      p.Description,
	}
}

// ToProductListResponse converts the catalog to the response DTO.
func ToProductListResponse(products []entity.InvestmentProduct) ProductListResponse {
	out := make([]ProductResponse, len(products))
	for i, p := range products {
		out[i] = ToProductResponse(p)
	}
	return ProductListResponse{Products: out}
}

// ToCompareInvestmentsResponse converts comparison results to the response DTO.
func ToCompareInvestmentsResponse(results []entity.ComparisonResult) CompareInvestmentsResponse {
	out := make([]ComparisonResultResponse, len(results))
	for i, r := range results {
		out[i] = ComparisonResultResponse{
			Product:               ToProductResponse(r.Product),
			GrossAmount:           money.RoundCents(r.GrossAmount),
			TaxAmount:             money.RoundCents(r.TaxAmount),
			FeeAmount:             money.RoundCents(r.FeeAmount),
			FinalAmount:           money.RoundCents(r.FinalAmount),
			NetProfit:             money.RoundCents(r.NetProfit),
			EffectiveAnnualReturn: money.Round(r.EffectiveAnnualReturn, 4),
		}
	}
	return CompareInvestmentsResponse{Results: out}
}
