package entity

// FinancialProfile describes the monthly budget and preferences of an investor.
type FinancialProfile struct {
	MonthlyIncome                float64
	MonthlyEssentialExpenses     float64
	MonthlyDiscretionaryExpenses float64
	RiskProfile                  RiskProfile
	Age                          int
}

// AvailableToInvest returns what is left of the income after all expenses.
func (p FinancialProfile) AvailableToInvest() float64 {
	return p.MonthlyIncome - p.MonthlyEssentialExpenses - p.MonthlyDiscretionaryExpenses
}

// InvestmentSuggestion is a single recommended investment inside a bundle.
type InvestmentSuggestion struct {
	Name                      string
	AllocationPercent         float64
	ExpectedReturnDescription string
	RiskLevel                 RiskLevel
	Rationale                 string
	ConceptExplanation        string
	PracticalSteps            string
	MinimumAmount             float64
	RecommendedHorizon        string
	Region                    Region
}

// RecommendationBundle groups the domestic and international suggestions for a profile.
type RecommendationBundle struct {
	DomesticSuggestions      []InvestmentSuggestion
	InternationalSuggestions []InvestmentSuggestion
	Summary                  string
	Warnings                 []string
}

// RecommendationSource tells where a bundle came from.
type RecommendationSource string

const (
	RecommendationSourceAI       RecommendationSource = "ai"
	RecommendationSourceCache    RecommendationSource = "cache"
	RecommendationSourceFallback RecommendationSource = "fallback"
)

// AllocationSlice is one asset class share inside an allocation plan.
type AllocationSlice struct {
	Name    string
	Percent float64
}

// AllocationPlan is the quick allocation recommendation for a profile.
type AllocationPlan struct {
	RiskProfile    RiskProfile
	Allocation     []AllocationSlice
	ExpectedReturn float64
	RiskLevel      RiskLevel
	Recommendation string
	ProjectedValue float64
	TotalInvested  float64
	TotalGains     float64
}

// InvestorProfileDescription is the static presentation of a risk profile.
type InvestorProfileDescription struct {
	RiskProfile     RiskProfile
	Name            string
	Description     string
	ExpectedReturn  string
	RiskLevel       RiskLevel
	TimeHorizon     string
	Characteristics []string
	Investments     []string
}
