package entity

// Taxation describes how the income tax applies to an investment's profit.
type Taxation string

const (
	// TaxationExempt means the profit is not taxed.
	TaxationExempt Taxation = "exempt"
	// TaxationRegressive follows the fixed-income table that decreases with the holding period.
	TaxationRegressive Taxation = "regressive"
	// TaxationFlat applies a fixed rate over the profit.
	TaxationFlat Taxation = "flat"
)

// InvestmentProduct is an entry of the comparator catalog.
type InvestmentProduct struct {
	ID               string
	Name             string
	AnnualRate       float64
	RiskLevel        RiskLevel
	MinimumAmount    float64
	Liquidity        string
	Taxation         Taxation
	AnnualFeePercent float64
	Description      string
}

// ComparisonResult is the simulated outcome of holding a product for a period.
type ComparisonResult struct {
	Product               InvestmentProduct
	GrossAmount           float64
	TaxAmount             float64
	FeeAmount             float64
	FinalAmount           float64
	NetProfit             float64
	EffectiveAnnualReturn float64
}
