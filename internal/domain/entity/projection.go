package entity

// ProjectionInput holds the parameters of a compound growth projection.
type ProjectionInput struct {
	InitialAmount       float64
	MonthlyContribution float64
	AnnualRatePercent   float64
	Years               int
}

// ProjectionResult is the outcome of a compound growth projection.
// FinalAmount always equals TotalInvested + TotalInterest.
type ProjectionResult struct {
	TotalInvested float64
	TotalInterest float64
	FinalAmount   float64
}

// YearlyBalance is the projected balance at the end of a given year.
type YearlyBalance struct {
	Year    int
	Balance float64
}

// RetirementInput holds the parameters of a retirement funding analysis.
type RetirementInput struct {
	CurrentAge           int
	RetirementAge        int
	DesiredMonthlyIncome float64
	CurrentSavings       float64
}

// RetirementResult is the outcome of a retirement funding analysis.
type RetirementResult struct {
	YearsToRetirement           int
	TotalNeeded                 float64
	FutureValueOfCurrentSavings float64
	MonthlyContributionNeeded   float64
}
