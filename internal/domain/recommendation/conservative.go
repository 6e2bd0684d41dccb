package recommendation

import (
	"fmt"

	"github.com/dindin-invest/backend/internal/domain/entity"
)

var conservativeCatalog = catalog{
	Domestic: []template{
		{
			Name:           "Tesouro Selic 2026",
			Allocation:     25,
			ExpectedReturn: "13,75% a.a.",
			Risk:           entity.RiskLevelLow,
			Rationale: func(n narrative) string {
				return fmt.Sprintf("Com renda %s e perfil conservador, este é o investimento mais seguro do país. Ideal para sua reserva de emergência com liquidez diária.", n.IncomeLevel)
			},
			Concept:       "O Tesouro Selic acompanha a taxa básica de juros da economia (Selic). É um título pós-fixado, ou seja, seu rendimento varia conforme a Selic.",
			Steps:         "Acesse o site oficial do Tesouro Direto ou sua corretora. Invista a partir de R$ 30. A liquidez é diária com IOF apenas nos primeiros 30 dias.",
			MinimumAmount: 100,
			Horizon:       "Qualquer prazo",
		},
		{
			Name:           "CDB Banco Inter 105% CDI",
			Allocation:     20,
			ExpectedReturn: "14,43% a.a.",
			Risk:           entity.RiskLevelLow,
			Rationale: func(n narrative) string {
				return fmt.Sprintf("Para sua situação de renda %s, bancos médios oferecem melhores taxas que grandes bancos. Protegido pelo FGC até R$ 250 mil.", n.IncomeLevel)
			},
			Concept:       "CDB é um empréstimo que você faz ao banco. O banco usa seu dinheiro para emprestar a outros clientes e divide os juros com você.",
			Steps:         "Abra conta no Banco Inter pelo app. Procure CDBs com rentabilidade acima de 100% do CDI. Escolha liquidez diária se precisar do dinheiro.",
			MinimumAmount: 500,
			Horizon:       "1-3 anos",
		},
		{
			Name:           "LCI Santander 95% CDI",
			Allocation:     20,
			ExpectedReturn: "13,05% a.a. (isento IR)",
			Risk:           entity.RiskLevelLow,
			Rationale: func(n narrative) string {
				return fmt.Sprintf("Sendo isento de Imposto de Renda, oferece rentabilidade líquida superior para seu perfil conservador. Adequado para %d anos.", n.Age)
			},
			Concept:       "LCI financia o setor imobiliário. É isenta de IR para pessoa física, aumentando sua rentabilidade líquida comparada a outros investimentos.",
			Steps:         "Procure em bancos tradicionais como Santander, Bradesco ou Itaú. Cuidado com carência (período mínimo de permanência).",
			MinimumAmount: 1000,
			Horizon:       "2-5 anos",
		},
		{
			Name:           "Fundos DI Premium",
			Allocation:     15,
			ExpectedReturn: "12,8% a.a.",
			Risk:           entity.RiskLevelLow,
			Rationale: func(n narrative) string {
				pace := "começar gradualmente"
				if n.AvailableRaw > 3000 {
					pace = "seu patrimônio atual"
				}
				return fmt.Sprintf("Para diversificar seus investimentos de renda fixa com gestão profissional. Com %s por mês, adequado para %s.", n.Available, pace)
			},
			Concept:       "Fundos DI investem em títulos de renda fixa que acompanham o CDI. Têm gestão profissional e diversificação automática.",
			Steps:         "XP, Rico ou BTG oferecem bons fundos DI. Verifique taxa de administração (máximo 1% a.a.) e histórico de performance.",
			MinimumAmount: 1000,
			Horizon:       "1-2 anos",
		},
		{
			Name:           "FIDC de Direitos Creditórios",
			Allocation:     20,
			ExpectedReturn: "15,2% a.a.",
			Risk:           entity.RiskLevelMedium,
			Rationale: func(n narrative) string {
				return fmt.Sprintf("Como você tem %d anos e renda %s, pode assumir um pouco mais de risco para melhor rentabilidade.", n.Age, n.IncomeLevel)
			},
			Concept:       "FIDCs investem em direitos creditórios de empresas (duplicatas, notas promissórias). Oferecem rentabilidade superior à renda fixa tradicional.",
			Steps:         "Disponível em corretoras como XP e Rico. Verifique o rating das empresas devedoras e diversificação do portfólio do fundo.",
			MinimumAmount: 2500,
			Horizon:       "2-4 anos",
		},
	},
	International: []template{
		{
			Name:           "Treasury Bills Americanos (via ETF)",
			Allocation:     25,
			ExpectedReturn: "5,2% a.a. + variação cambial",
			Risk:           entity.RiskLevelLow,
			Rationale: func(narrative) string {
				return "Diversificação cambial essencial mesmo para conservadores. Protege contra desvalorização do real e crises locais."
			},
			Concept:       "Treasury Bills são títulos do governo americano de curtíssimo prazo. Considerados os ativos mais seguros do mundo.",
			Steps:         "Invista através do ETF BIUS11 na bolsa brasileira ou diretamente via Avenue/Passfolio com câmbio otimizado.",
			MinimumAmount: 1000,
			Horizon:       "6 meses - 2 anos",
		},
		{
			Name:           "ETF Renda Fixa Global BNDX",
			Allocation:     20,
			ExpectedReturn: "4,8% a.a. + variação cambial",
			Risk:           entity.RiskLevelLow,
			Rationale: func(n narrative) string {
				return fmt.Sprintf("Exposição a títulos governamentais de países desenvolvidos. Ideal para renda %s buscando estabilidade internacional.", n.IncomeLevel)
			},
			Concept:       "BNDX investe em títulos de governos desenvolvidos (Europa, Japão, Canadá) excluindo EUA. Oferece diversificação geográfica.",
			Steps:         "Compre através de corretoras internacionais como Avenue, Passfolio ou Inter Invest. Taxa de custódia baixa (0,05% a.a.).",
			MinimumAmount: 2000,
			Horizon:       "3-7 anos",
		},
		{
			Name:           "Certificados de Depósito Americanos",
			Allocation:     15,
			ExpectedReturn: "5,5% a.a. + variação cambial",
			Risk:           entity.RiskLevelLow,
			Rationale: func(narrative) string {
				return "CDs americanos oferecem segurança similar aos brasileiros mas com diversificação cambial importante para sua carteira."
			},
			Concept:       "Equivalente aos CDBs brasileiros, mas emitidos por bancos americanos. Protegidos pelo FDIC até US$ 250 mil.",
			Steps:         "Disponível via Avenue, Stake ou Interactive Brokers. Compare taxas entre bancos americanos de diferentes portes.",
			MinimumAmount: 5000,
			Horizon:       "1-3 anos",
		},
		{
			Name:           "Fundos de Renda Fixa Europa",
			Allocation:     20,
			ExpectedReturn: "3,2% a.a. + variação cambial",
			Risk:           entity.RiskLevelLow,
			Rationale: func(n narrative) string {
				return fmt.Sprintf("Diversificação para mercados europeus estáveis. Adequado para %d anos com foco em preservação de capital.", n.Age)
			},
			Concept:       "Fundos que investem em títulos governamentais e corporativos europeus de alta qualidade. Oferecem estabilidade e diversificação.",
			Steps:         "Acesse via plataformas como XP Internacional ou diretamente por corretoras europeias licenciadas no Brasil.",
			MinimumAmount: 3000,
			Horizon:       "2-5 anos",
		},
		{
			Name:           "REITs Conservadores Americanos",
			Allocation:     20,
			ExpectedReturn: "8,5% a.a. + variação cambial",
			Risk:           entity.RiskLevelMedium,
			Rationale: func(narrative) string {
				return "REITs de setores defensivos (saúde, educação) oferecem renda passiva internacional com risco controlado para seu perfil."
			},
			Concept:       "REITs são fundos imobiliários americanos que distribuem pelo menos 90% dos lucros como dividendos. Setores defensivos têm menor volatilidade.",
			Steps:         "Foque em REITs de healthcare (VTR, HCP) ou storage (PSA, EXR) via Avenue ou Interactive Brokers.",
			MinimumAmount: 4000,
			Horizon:       "5-10 anos",
		},
	},
	Summary: func(n narrative) string {
		return fmt.Sprintf("Estratégia conservadora personalizada para %d anos e renda %s. Foco em preservação de capital com rentabilidade real positiva. Diversificação entre Brasil (60%%) e exterior (40%%) reduz riscos sistêmicos. Rentabilidade esperada: 11-14%% a.a. com baixa volatilidade.", n.Age, n.IncomeLevel)
	},
	Warnings: func(n narrative) []string {
		budget := "seu orçamento"
		if n.AvailableRaw < 1000 {
			budget = "valor inicial baixo"
		}
		return []string{
			fmt.Sprintf("Com %s (%s/mês), comece pelos investimentos de menor valor mínimo", budget, n.Available),
			"Mantenha 6 meses de gastos em Tesouro Selic antes de investir em outros ativos",
			"Evite investimentos sem garantia do FGC/FDIC acima dos limites de cobertura",
			"Rebalanceie a carteira semestralmente para manter as proporções ideais",
		}
	},
}
