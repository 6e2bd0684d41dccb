package recommendation

import (
	"fmt"

	"github.com/dindin-invest/backend/internal/domain/entity"
)

var moderateCatalog = catalog{
	Domestic: []template{
		{
			Name:           "Tesouro IPCA+ 2035",
			Allocation:     20,
			ExpectedReturn: "6,2% + IPCA a.a.",
			Risk:           entity.RiskLevelLow,
			Rationale: func(n narrative) string {
				return fmt.Sprintf("Proteção contra inflação essencial para %d anos. Garante poder de compra real ao longo do tempo.", n.Age)
			},
			Concept:       "Título híbrido que paga taxa fixa + variação da inflação (IPCA). Protege contra perda do poder de compra.",
			Steps:         "Ideal para objetivos de longo prazo. Compre direto no Tesouro Direto ou via sua corretora. Melhor manter até o vencimento.",
			MinimumAmount: 200,
			Horizon:       "10+ anos",
		},
		{
			Name:           "Ações Blue Chips (ITUB4, VALE3, PETR4)",
			Allocation:     25,
			ExpectedReturn: "16-22% a.a.",
			Risk:           entity.RiskLevelMedium,
			Rationale: func(n narrative) string {
				return fmt.Sprintf("Para renda %s e %d anos, ações de empresas consolidadas oferecem crescimento com risco controlado.", n.IncomeLevel, n.Age)
			},
			Concept:       "Blue chips são ações de empresas grandes, estáveis e com histórico consistente de lucros e dividendos.",
			Steps:         "Compre via home broker. Foque em empresas que você entende o negócio. ITUB4 (banco), VALE3 (mineração), PETR4 (petróleo).",
			MinimumAmount: 1000,
			Horizon:       "5+ anos",
		},
		{
			Name:           "Fundos Imobiliários Diversificados",
			Allocation:     20,
			ExpectedReturn: "12-15% a.a.",
			Risk:           entity.RiskLevelMedium,
			Rationale: func(n narrative) string {
				return fmt.Sprintf("FIIs oferecem renda passiva mensal isenta de IR. Adequado para complementar sua renda de %s.", n.MonthlyIncome)
			},
			Concept:       "Fundos que investem em imóveis comerciais e distribuem aluguéis. Dividendos mensais isentos de IR para pessoa física.",
			Steps:         "Diversifique entre tipos: HGLG11 (hospitais), XPML11 (logística), MXRF11 (multimercado). Compre via corretora.",
			MinimumAmount: 1500,
			Horizon:       "5+ anos",
		},
		{
			Name:           "Fundos Multimercado Long & Short",
			Allocation:     15,
			ExpectedReturn: "14-18% a.a.",
			Risk:           entity.RiskLevelMedium,
			Rationale: func(n narrative) string {
				return fmt.Sprintf("Gestão ativa para capturar oportunidades em diferentes cenários. Adequado para renda %s com tolerância a volatilidade.", n.IncomeLevel)
			},
			Concept:       "Fundos que podem comprar e vender ativos a descoberto, gerando alpha independente da direção do mercado.",
			Steps:         "Verde AM, Kapitalo, ARX oferecem bons fundos multimercado. Analise histórico de performance e volatilidade.",
			MinimumAmount: 5000,
			Horizon:       "3-7 anos",
		},
		{
			Name:           "Debêntures Incentivadas",
			Allocation:     20,
			ExpectedReturn: "IPCA + 5-7% a.a.",
			Risk:           entity.RiskLevelMedium,
			Rationale: func(n narrative) string {
				return fmt.Sprintf("Isenção de IR e rentabilidade atrativa. Para %d anos, oferece risco creditício controlado com benefício fiscal.", n.Age)
			},
			Concept:       "Títulos de dívida de empresas para projetos de infraestrutura. Isentos de IR, oferecendo rentabilidade líquida superior.",
			Steps:         "Disponível via XP, Rico, BTG. Verifique rating da empresa emissora e diversifique entre diferentes emissores.",
			MinimumAmount: 1000,
			Horizon:       "4-8 anos",
		},
	},
	International: []template{
		{
			Name:           "S&P 500 ETF (IVVB11 ou direto)",
			Allocation:     30,
			ExpectedReturn: "10-12% a.a. + variação cambial",
			Risk:           entity.RiskLevelMedium,
			Rationale: func(n narrative) string {
				return fmt.Sprintf("Exposição às 500 maiores empresas americanas. Essencial para %d anos construir patrimônio internacional.", n.Age)
			},
			Concept:       "Índice que replica as 500 maiores empresas dos EUA por capitalização. Diversificação automática nos melhores negócios do mundo.",
			Steps:         "IVVB11 no Brasil (mais caro) ou VTI/SPY direto via Avenue/Passfolio (mais barato). Dollar-cost averaging mensal.",
			MinimumAmount: 1000,
			Horizon:       "10+ anos",
		},
		{
			Name:           "ETF Mercados Emergentes (VWO)",
			Allocation:     20,
			ExpectedReturn: "8-15% a.a. + variação cambial",
			Risk:           entity.RiskLevelHigh,
			Rationale: func(n narrative) string {
				return fmt.Sprintf("Diversificação em países emergentes com potencial de crescimento superior. Adequado para %d anos.", n.Age)
			},
			Concept:       "VWO investe em ações de países emergentes (China, Índia, Taiwan, etc). Maior potencial de crescimento mas maior volatilidade.",
			Steps:         "Compre via corretoras internacionais. Considere como satélite da carteira, não como core holding.",
			MinimumAmount: 2000,
			Horizon:       "7+ anos",
		},
		{
			Name:           "REITs Diversificados (VNQ)",
			Allocation:     15,
			ExpectedReturn: "9-13% a.a. + variação cambial",
			Risk:           entity.RiskLevelMedium,
			Rationale: func(narrative) string {
				return "Setor imobiliário americano oferece diversificação e renda passiva internacional para complementar FIIs brasileiros."
			},
			Concept:       "VNQ investe em REITs de todos os setores imobiliários americanos. Distribui dividendos trimestrais.",
			Steps:         "Via Avenue, Passfolio ou Interactive Brokers. Complementa bem os FIIs brasileiros com exposição cambial.",
			MinimumAmount: 3000,
			Horizon:       "5+ anos",
		},
		{
			Name:           "Bonds Corporativos High Grade",
			Allocation:     20,
			ExpectedReturn: "5-7% a.a. + variação cambial",
			Risk:           entity.RiskLevelLow,
			Rationale: func(narrative) string {
				return "Títulos de empresas americanas com rating AAA/AA. Estabilidade internacional para balancear ações na carteira."
			},
			Concept:       "Debêntures de empresas americanas com excelente rating de crédito. Menor risco que ações, maior retorno que títulos governamentais.",
			Steps:         "ETFs como LQD ou TLT oferecem exposição diversificada. Disponível via corretoras internacionais.",
			MinimumAmount: 4000,
			Horizon:       "3-7 anos",
		},
		{
			Name:           "Growth Stocks Selecionadas",
			Allocation:     15,
			ExpectedReturn: "15-25% a.a. + variação cambial",
			Risk:           entity.RiskLevelHigh,
			Rationale: func(n narrative) string {
				return fmt.Sprintf("Para %d anos, exposição a empresas de crescimento oferece potencial de valorização superior no longo prazo.", n.Age)
			},
			Concept:       "Ações de empresas com crescimento acelerado de receita/lucro. Maior volatilidade mas potencial de retorno superior.",
			Steps:         "Foque em setores que você entende: tecnologia (MSFT, GOOGL), saúde (JNJ, PFE), consumo (AMZN, TSLA).",
			MinimumAmount: 5000,
			Horizon:       "10+ anos",
		},
	},
	Summary: func(n narrative) string {
		return fmt.Sprintf("Estratégia moderada para %d anos com renda %s. Balanceamento entre renda fixa (40%%) e variável (60%%) para crescimento sustentável. Diversificação global reduz dependência do mercado brasileiro. Rentabilidade esperada: 14-18%% a.a.", n.Age, n.IncomeLevel)
	},
	Warnings: func(n narrative) []string {
		return []string{
			"Volatilidade moderada: prepare-se para oscilações de 15-25% em períodos de crise",
			"Rebalanceie trimestralmente vendendo o que subiu e comprando o que caiu",
			"Mantenha disciplina em aportes mensais independente do cenário do mercado",
			fmt.Sprintf("Com disponível de %s/mês, priorize consistência nos aportes", n.Available),
		}
	},
}
