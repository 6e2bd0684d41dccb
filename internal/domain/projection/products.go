package projection

import "github.com/dindin-invest/backend/internal/domain/entity"

// DefaultComparisonProducts are compared when the caller selects none.
var DefaultComparisonProducts = []string{"cdb", "acoes", "fiis"}

var productCatalog = []entity.InvestmentProduct{
	{
		ID:          "poupanca",
		Name:        "Poupança",
		AnnualRate:  6.8,
		RiskLevel:   entity.RiskLevelLow,
		Liquidity:   "Diária",
		Taxation:    entity.TaxationExempt,
		Description: "Investimento mais tradicional, garantido pelo FGC",
	},
	{
		ID:            "cdb",
		Name:          "CDB",
		AnnualRate:    13.75,
		RiskLevel:     entity.RiskLevelLow,
		MinimumAmount: 100,
		Liquidity:     "Diária ou no vencimento",
		Taxation:      entity.TaxationRegressive,
		Description:   "Certificado de Depósito Bancário, garantido pelo FGC",
	},
	{
		ID:               "tesouro_selic",
		Name:             "Tesouro Selic",
		AnnualRate:       13.65,
		RiskLevel:        entity.RiskLevelLow,
		MinimumAmount:    30,
		Liquidity:        "Diária",
		Taxation:         entity.TaxationRegressive,
		AnnualFeePercent: 0.1,
		Description:      "Título público pós-fixado atrelado à Selic",
	},
	{
		ID:            "lci",
		Name:          "LCI",
		AnnualRate:    12.5,
		RiskLevel:     entity.RiskLevelLow,
		MinimumAmount: 1000,
		Liquidity:     "90 dias",
		Taxation:      entity.TaxationExempt,
		Description:   "Letra de Crédito Imobiliário, isenta de IR",
	},
	{
		ID:          "acoes",
		Name:        "Ações",
		AnnualRate:  15.5,
		RiskLevel:   entity.RiskLevelHigh,
		Liquidity:   "D+2",
		Taxation:    entity.TaxationFlat,
		Description: "Participação em empresas listadas na bolsa",
	},
	{
		ID:          "fiis",
		Name:        "Fundos Imobiliários",
		AnnualRate:  12.8,
		RiskLevel:   entity.RiskLevelMedium,
		Liquidity:   "D+2",
		Taxation:    entity.TaxationExempt,
		Description: "Fundos que investem em imóveis, com rendimentos mensais isentos",
	},
	{
		ID:               "bitcoin",
		Name:             "Bitcoin",
		AnnualRate:       25,
		RiskLevel:        entity.RiskLevelHigh,
		MinimumAmount:    50,
		Liquidity:        "24/7",
		Taxation:         entity.TaxationFlat,
		AnnualFeePercent: 0.5,
		Description:      "Criptomoeda descentralizada de alta volatilidade",
	},
}

// Products returns a copy of the comparator catalog in display order.
func Products() []entity.InvestmentProduct {
	out := make([]entity.InvestmentProduct, len(productCatalog))
	copy(out, productCatalog)
	return out
}

// FindProduct looks a product up by ID.
func FindProduct(id string) (entity.InvestmentProduct, bool) {
	for _, p := range productCatalog {
		if p.ID == id {
			return p, true
		}
	}
	return entity.InvestmentProduct{}, false
}
