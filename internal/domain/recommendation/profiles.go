package recommendation

import "github.com/dindin-invest/backend/internal/domain/entity"

// Profiles describes each investor profile in display order.
func Profiles() []entity.InvestorProfileDescription {
	return []entity.InvestorProfileDescription{
		{
			RiskProfile:    entity.RiskProfileConservative,
			Name:           entity.RiskProfileConservative.Label(),
			Description:    "Ideal para quem prioriza a segurança e preservação do capital.",
			ExpectedReturn: "8-12% a.a.",
			RiskLevel:      entity.RiskLevelLow,
			TimeHorizon:    "Curto/Médio",
			Characteristics: []string{
				"Baixo risco de perda do capital",
				"Retornos previsíveis",
				"Liquidez diária na maioria dos produtos",
				"Proteção contra a inflação",
			},
			Investments: []string{
				"Poupança (6-8% a.a.)",
				"CDB (10-12% a.a.)",
				"Tesouro Direto (11% a.a.)",
				"LCI/LCA (9-11% a.a.)",
			},
		},
		{
			RiskProfile:    entity.RiskProfileModerate,
			Name:           entity.RiskProfileModerate.Label(),
			Description:    "Equilibra segurança e rentabilidade, aceitando algum risco.",
			ExpectedReturn: "12-18% a.a.",
			RiskLevel:      entity.RiskLevelMedium,
			TimeHorizon:    "Médio/Longo",
			Characteristics: []string{
				"Risco controlado",
				"Diversificação de ativos",
				"Retornos superiores à renda fixa",
				"Horizonte de médio a longo prazo",
			},
			Investments: []string{
				"Fundos DI (12-14% a.a.)",
				"Fundos Multimercado (15-18% a.a.)",
				"Ações Blue Chips (12-20% a.a.)",
				"FIIs (10-15% a.a.)",
			},
		},
		{
			RiskProfile:    entity.RiskProfileAggressive,
			Name:           entity.RiskProfileAggressive.Label(),
			Description:    "Busca máxima rentabilidade, aceitando alta volatilidade.",
			ExpectedReturn: "18-30% a.a.",
			RiskLevel:      entity.RiskLevelHigh,
			TimeHorizon:    "Longo",
			Characteristics: []string{
				"Alto potencial de retorno",
				"Alta volatilidade",
				"Necessário conhecimento avançado",
				"Horizonte de longo prazo obrigatório",
			},
			Investments: []string{
				"Ações Growth (15-30% a.a.)",
				"Criptomoedas (20-50% a.a.)",
				"ETFs Internacionais (10-25% a.a.)",
				"Opções e Derivativos",
			},
		},
	}
}
