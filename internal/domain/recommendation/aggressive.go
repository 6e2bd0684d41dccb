package recommendation

import (
	"fmt"

	"github.com/dindin-invest/backend/internal/domain/entity"
)

var aggressiveCatalog = catalog{
	Domestic: []template{
		{
			Name:           "Small Caps Growth (SMLL11)",
			Allocation:     30,
			ExpectedReturn: "20-35% a.a.",
			Risk:           entity.RiskLevelHigh,
			Rationale: func(n narrative) string {
				return fmt.Sprintf("Para %d anos com perfil agressivo, small caps oferecem potencial de crescimento excepcional no longo prazo.", n.Age)
			},
			Concept:       "Empresas pequenas com potencial de crescimento acelerado. Maior volatilidade mas retornos superiores historicamente.",
			Steps:         "SMLL11 replica índice de small caps. Invista via home broker com aportes mensais para reduzir volatilidade de timing.",
			MinimumAmount: 1000,
			Horizon:       "10+ anos",
		},
		{
			Name:           "Ações Growth Selecionadas",
			Allocation:     25,
			ExpectedReturn: "18-28% a.a.",
			Risk:           entity.RiskLevelHigh,
			Rationale: func(n narrative) string {
				return fmt.Sprintf("Stock picking em empresas com crescimento superior. Adequado para renda %s e tolerância a risco.", n.IncomeLevel)
			},
			Concept:       "Ações de empresas com crescimento de receita/lucro superior à média do mercado. Foco em inovação e expansão.",
			Steps:         "Magazine Luiza (MGLU3), Locaweb (LWSA3), Méliuz (CASH3). Estude fundamentals antes de investir.",
			MinimumAmount: 2000,
			Horizon:       "7+ anos",
		},
		{
			Name:           "Fundos de Ações Long & Short",
			Allocation:     20,
			ExpectedReturn: "16-25% a.a.",
			Risk:           entity.RiskLevelHigh,
			Rationale: func(n narrative) string {
				return fmt.Sprintf("Gestão ativa sofisticada para capturar alpha em mercados voláteis. Ideal para investidores experientes com %d anos.", n.Age)
			},
			Concept:       "Fundos que podem comprar (long) e vender (short) ações, gerando retorno independente da direção do mercado.",
			Steps:         "Verde, Kapitalo, Garde oferecem estratégias long & short. Analise track record e estratégia do gestor.",
			MinimumAmount: 10000,
			Horizon:       "5+ anos",
		},
		{
			Name:           "Crypto via ETFs (QETH11, QBTC11)",
			Allocation:     15,
			ExpectedReturn: "50-100% a.a. (alta volatilidade)",
			Risk:           entity.RiskLevelHigh,
			Rationale: func(n narrative) string {
				return fmt.Sprintf("Para %d anos, exposição controlada a criptomoedas oferece potencial de crescimento exponencial.", n.Age)
			},
			Concept:       "ETFs que replicam Bitcoin e Ethereum. Exposição regulada a criptomoedas sem necessidade de carteiras digitais.",
			Steps:         "QBTC11 (Bitcoin) e QETH11 (Ethereum) via home broker. Limite a 5-10% da carteira total.",
			MinimumAmount: 500,
			Horizon:       "5-10 anos",
		},
		{
			Name:           "BDRs de Growth Stocks",
			Allocation:     10,
			ExpectedReturn: "15-30% a.a.",
			Risk:           entity.RiskLevelHigh,
			Rationale: func(n narrative) string {
				return fmt.Sprintf("Acesso a empresas americanas de crescimento via bolsa brasileira. Conveniente para renda %s.", n.IncomeLevel)
			},
			Concept:       "Brazilian Depositary Receipts replicam ações estrangeiras na bolsa brasileira. Tributação como ações nacionais.",
			Steps:         "Tesla (TSLA34), Apple (AAPL34), Microsoft (MSFT34) via home broker brasileiro. IOF 0,38% na compra.",
			MinimumAmount: 1000,
			Horizon:       "5+ anos",
		},
	},
	International: []template{
		{
			Name:           "NASDAQ ETF (QQQ)",
			Allocation:     35,
			ExpectedReturn: "12-20% a.a. + variação cambial",
			Risk:           entity.RiskLevelHigh,
			Rationale: func(n narrative) string {
				return fmt.Sprintf("Exposição pura a empresas de tecnologia americanas. Para %d anos, essencial capturar inovação global.", n.Age)
			},
			Concept:       "QQQ replica as 100 maiores empresas não-financeiras do NASDAQ. Concentração em tecnologia e inovação.",
			Steps:         "Compre via Avenue, Passfolio ou Interactive Brokers. Dollar-cost averaging para reduzir volatilidade.",
			MinimumAmount: 2000,
			Horizon:       "10+ anos",
		},
		{
			Name:           "Individual Growth Stocks",
			Allocation:     25,
			ExpectedReturn: "20-40% a.a. + variação cambial",
			Risk:           entity.RiskLevelHigh,
			Rationale: func(n narrative) string {
				return fmt.Sprintf("Stock picking internacional para renda %s. Potencial de retornos excepcionais com empresas disruptivas.", n.IncomeLevel)
			},
			Concept:       "Seleção individual de ações com potencial de crescimento superior. Requer pesquisa fundamental profunda.",
			Steps:         "Tesla (TSLA), Nvidia (NVDA), Netflix (NFLX), Amazon (AMZN). Diversifique entre 8-12 empresas.",
			MinimumAmount: 5000,
			Horizon:       "7+ anos",
		},
		{
			Name:           "Emerging Markets ETF (VWO)",
			Allocation:     15,
			ExpectedReturn: "10-25% a.a. + variação cambial",
			Risk:           entity.RiskLevelHigh,
			Rationale: func(n narrative) string {
				return fmt.Sprintf("Mercados emergentes oferecem crescimento superior com volatilidade alta. Adequado para %d anos.", n.Age)
			},
			Concept:       "Exposição a China, Índia, Taiwan e outros emergentes com potencial de crescimento acima da média mundial.",
			Steps:         "VWO via corretoras internacionais. Considere também ETFs específicos de países (FXI para China).",
			MinimumAmount: 3000,
			Horizon:       "10+ anos",
		},
		{
			Name:           "Innovation ETFs (ARKK, ICLN)",
			Allocation:     15,
			ExpectedReturn: "15-35% a.a. + variação cambial",
			Risk:           entity.RiskLevelHigh,
			Rationale: func(n narrative) string {
				return fmt.Sprintf("ETFs focados em inovação e disrupção. Para perfil agressivo de %d anos buscando crescimento exponencial.", n.Age)
			},
			Concept:       "Fundos temáticos que investem em empresas de setores disruptivos como energia limpa, genomics, space exploration.",
			Steps:         "ARKK (inovação), ICLN (energia limpa), ARKQ (automação) via corretoras internacionais.",
			MinimumAmount: 4000,
			Horizon:       "10+ anos",
		},
		{
			Name:           "Cryptocurrency Direct",
			Allocation:     10,
			ExpectedReturn: "30-200% a.a. (extrema volatilidade)",
			Risk:           entity.RiskLevelHigh,
			Rationale: func(n narrative) string {
				return fmt.Sprintf("Para %d anos com tolerância máxima a risco, exposição direta a crypto oferece potencial transformador.", n.Age)
			},
			Concept:       "Investimento direto em Bitcoin, Ethereum e outras criptomoedas através de exchanges regulamentadas.",
			Steps:         "Binance, Coinbase, Kraken para compra direta. Use dollar-cost averaging e limite a 5% da carteira total.",
			MinimumAmount: 1000,
			Horizon:       "5-15 anos",
		},
	},
	Summary: func(n narrative) string {
		return fmt.Sprintf("Estratégia agressiva para %d anos com renda %s. Foco em crescimento máximo com 80%% em renda variável. Diversificação global em empresas de crescimento e setores disruptivos. Rentabilidade esperada: 18-25%% a.a. com alta volatilidade.", n.Age, n.IncomeLevel)
	},
	Warnings: func(n narrative) []string {
		return []string{
			"Alta volatilidade: prepare-se para oscilações de 30-50% em crises",
			"Nunca invista mais de 10% em criptomoedas ou ativos especulativos",
			"Mantenha disciplina em bear markets - são oportunidades de acumulação",
			fmt.Sprintf("Com %s/mês disponível, mantenha aportes constantes independente do mercado", n.Available),
		}
	},
}
