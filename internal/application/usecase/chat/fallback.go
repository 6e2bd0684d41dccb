package chat

import "github.com/dindin-invest/backend/internal/domain/textmatch"

type cannedAnswer struct {
	keywords []string
	answer   string
}

// cannedAnswers are checked in order; the first keyword hit wins.
var cannedAnswers = []cannedAnswer{
	{
		keywords: []string{"bitcoin", "cripto"},
		answer:   "Bitcoin é uma criptomoeda descentralizada que funciona através de blockchain. É considerado um ativo de alto risco, mas com potencial de grandes retornos. Para investidores iniciantes, recomendo começar com uma pequena parcela da carteira (máximo 5%). Volatilidade média de ±60% ao ano.",
	},
	{
		keywords: []string{"renda fixa", "renda variável"},
		answer:   "Renda Fixa oferece retornos previsíveis e menor risco (CDB 13%, Tesouro 11%), enquanto Renda Variável tem potencial de maiores ganhos mas com volatilidade (IBOVESPA 21% em 2023). A proporção ideal depende do seu perfil de risco e prazo de investimento.",
	},
	{
		keywords: []string{"diversificar", "diversificação", "carteira"},
		answer:   "Diversificação é essencial para reduzir riscos. Para perfil moderado recomendo: 35% renda fixa, 40% ações nacionais, 15% FIIs, 10% criptomoedas. Rebalanceie trimestralmente e mantenha reserva de emergência separada.",
	},
	{
		keywords: []string{"perfil", "conservador", "agressivo"},
		answer:   "Conservador (8-12% a.a.): Foca em segurança com CDB, Tesouro. Moderado (14-18% a.a.): Equilibra renda fixa e ações. Agressivo (18-30% a.a.): Prioriza crescimento com ações e crypto. Considere idade, objetivos e tolerância a perdas.",
	},
	{
		keywords: []string{"cdb"},
		answer:   "CDB (Certificado de Depósito Bancário) rende cerca de 13% a.a. atualmente, com segurança do FGC até R$ 250 mil por banco. Ideal para reserva de emergência e perfis conservadores. Liquidez varia conforme o produto escolhido.",
	},
	{
		keywords: []string{"tesouro direto"},
		answer:   "Tesouro Direto são títulos públicos do governo federal, considerados os investimentos mais seguros do país. Tesouro IPCA+ oferece 6,2% + inflação. Aplicação mínima R$ 30, ideal para objetivos de longo prazo.",
	},
	{
		keywords: []string{"risco"},
		answer:   "Principais riscos: Mercado (volatilidade), Crédito (calote), Liquidez (dificuldade de venda), Inflação (perda do poder de compra). Criptomoedas têm risco máximo. Diversificação é a melhor proteção.",
	},
	{
		keywords: []string{"calcular", "retorno", "rendimento"},
		answer:   "Para calcular retornos use nossa calculadora de juros compostos! Exemplo: R$ 10.000 iniciais + R$ 500/mês a 12% a.a. por 10 anos chegam a cerca de R$ 149.000 (R$ 70.000 investidos + R$ 79.000 de juros).",
	},
}

const defaultAnswer = "Ótima pergunta! Baseado em dados reais do mercado brasileiro, posso ajudar com estratégias personalizadas. Use nossas calculadoras para simular cenários específicos para sua situação financeira. Em que posso ajudar mais?"

// FallbackResponse answers a message from the fixed keyword table.
func FallbackResponse(message string) string {
	for _, c := range cannedAnswers {
		if textmatch.ContainsAny(message, c.keywords...) {
			return c.answer
		}
	}
	return defaultAnswer
}
