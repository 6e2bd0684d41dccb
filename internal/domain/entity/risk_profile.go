// Package entity defines the core business entities for the domain layer.
package entity

// RiskProfile represents the investor's tolerance to risk.
type RiskProfile string

const (
	RiskProfileConservative RiskProfile = "conservative"
	RiskProfileModerate     RiskProfile = "moderate"
	RiskProfileAggressive   RiskProfile = "aggressive"
)

// IsValid reports whether the profile is one of the known values.
func (p RiskProfile) IsValid() bool {
	switch p {
	case RiskProfileConservative, RiskProfileModerate, RiskProfileAggressive:
		return true
	}
	return false
}

// Label returns the Portuguese display name of the profile.
func (p RiskProfile) Label() string {
	switch p {
	case RiskProfileConservative:
		return "Conservador"
	case RiskProfileModerate:
		return "Moderado"
	case RiskProfileAggressive:
		return "Agressivo"
	default:
		return string(p)
	}
}

// RiskLevel represents how risky a single investment is.
type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "low"
	RiskLevelMedium RiskLevel = "medium"
	RiskLevelHigh   RiskLevel = "high"
)

// IsValid reports whether the level is one of the known values.
func (l RiskLevel) IsValid() bool {
	switch l {
	case RiskLevelLow, RiskLevelMedium, RiskLevelHigh:
		return true
	}
	return false
}

// Label returns the Portuguese display name of the level.
func (l RiskLevel) Label() string {
	switch l {
	case RiskLevelLow:
		return "Baixo"
	case RiskLevelMedium:
		return "Médio"
	case RiskLevelHigh:
		return "Alto"
	default:
		return string(l)
	}
}

// ParseRiskLevel accepts both the canonical values and the Portuguese labels.
func ParseRiskLevel(value string) (RiskLevel, bool) {
	switch value {
	case "low", "Low", "Baixo", "baixo":
		return RiskLevelLow, true
	case "medium", "Medium", "Médio", "médio", "Medio", "medio":
		return RiskLevelMedium, true
	case "high", "High", "Alto", "alto":
		return RiskLevelHigh, true
	}
	return "", false
}

// Region tells whether a suggestion is a Brazilian or a foreign investment.
type Region string

const (
	RegionDomestic      Region = "domestic"
	RegionInternational Region = "international"
)

// IncomeLevel is the monthly income bucket used to personalise narratives.
type IncomeLevel string

const (
	IncomeLevelLow    IncomeLevel = "low"
	IncomeLevelMedium IncomeLevel = "medium"
	IncomeLevelHigh   IncomeLevel = "high"
)

// Label returns the Portuguese adjective used inside recommendation texts.
func (l IncomeLevel) Label() string {
	switch l {
	case IncomeLevelLow:
		return "baixa"
	case IncomeLevelMedium:
		return "média"
	case IncomeLevelHigh:
		return "alta"
	default:
		return string(l)
	}
}

// RiskCapacity is how much volatility the investor can absorb given their age.
type RiskCapacity string

const (
	RiskCapacityHigh   RiskCapacity = "high"
	RiskCapacityMedium RiskCapacity = "medium"
	RiskCapacityLow    RiskCapacity = "low"
)

// Label returns the Portuguese adjective for the capacity.
func (c RiskCapacity) Label() string {
	switch c {
	case RiskCapacityHigh:
		return "alta"
	case RiskCapacityMedium:
		return "média"
	case RiskCapacityLow:
		return "baixa"
	default:
		return string(c)
	}
}
