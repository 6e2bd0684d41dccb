package adapters

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dindin-invest/backend/internal/application/adapter"
	"github.com/dindin-invest/backend/internal/domain/entity"
	"github.com/dindin-invest/backend/internal/domain/money"
)

const (
	portfolioSystemPrompt = "Voce e um especialista em educacao financeira brasileira com 15 anos de experiencia. Suas recomendacoes sao praticas, didaticas e personalizadas para cada situacao financeira especifica."

	chatSystemPrompt = "Voce e DinDin, o assistente financeiro educativo do Brasil. Explica conceitos complexos em linguagem simples, com gentileza e exemplos em reais. Conhece todos os produtos do mercado brasileiro."
)

// buildPortfolioPrompt creates the recommendation prompt for a profile.
func buildPortfolioPrompt(req *adapter.PortfolioRequest) string {
	p := req.Profile
	var sb strings.Builder

	sb.WriteString("Como especialista em educacao financeira brasileira, analise este perfil e gere recomendacoes personalizadas.\n\n")
	sb.WriteString("PERFIL DO USUARIO:\n")
	sb.WriteString(fmt.Sprintf("- Renda mensal: %s (renda %s)\n", money.FormatBRL(p.MonthlyIncome), req.IncomeLevel.Label()))
	sb.WriteString(fmt.Sprintf("- Gastos essenciais: %s\n", money.FormatBRL(p.MonthlyEssentialExpenses)))
	sb.WriteString(fmt.Sprintf("- Gastos com lazer: %s\n", money.FormatBRL(p.MonthlyDiscretionaryExpenses)))
	sb.WriteString(fmt.Sprintf("- Disponivel para investir: %s por mes\n", money.FormatBRL(req.AvailableToInvest)))
	sb.WriteString(fmt.Sprintf("- Idade: %d anos (capacidade de risco %s)\n", p.Age, req.RiskCapacity.Label()))
	sb.WriteString(fmt.Sprintf("- Perfil: %s\n", p.RiskProfile.Label()))

	sb.WriteString(`
INSTRUCOES OBRIGATORIAS:
1. Gere EXATAMENTE 10 recomendacoes: 5 investimentos nacionais (Brasil) e 5 internacionais (exterior).
2. As alocacoes de cada grupo devem somar exatamente 100.
3. Para cada investimento inclua nome especifico, porcentagem da carteira, retorno esperado anual,
   nivel de risco (Baixo, Medio ou Alto), justificativa personalizada com os dados acima,
   como funciona na teoria, como investir na pratica, valor minimo em reais e prazo recomendado.
4. Adapte as escolhas ao perfil de risco, a idade e a sobra mensal. Explique por que cada
   investimento faz sentido para ESTA pessoa, com linguagem simples e exemplos em reais.

Responda em JSON com este formato:
{
  "domestic": [
    {
      "name": "string",
      "allocation": number,
      "expected_return": "string",
      "risk": "Baixo|Medio|Alto",
      "rationale": "string",
      "concept": "string",
      "practical_steps": "string",
      "minimum_amount": number,
      "horizon": "string"
    }
  ],
  "international": [ mesmo formato ],
  "summary": "string - resumo da estrategia",
  "warnings": ["string"]
}

FORMATO DE RESPOSTA: Retorne apenas o objeto JSON, sem texto adicional.
`)

	return sb.String()
}

// buildExplainPrompt creates the educational explanation prompt for a topic.
func buildExplainPrompt(topic string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Como especialista em educacao financeira, explique de forma didatica e pratica o tema: %q\n", topic))
	sb.WriteString(`
INSTRUCOES:
1. Use linguagem simples e didatica
2. Inclua exemplos praticos com valores em reais
3. Explique conceitos complexos com analogias
4. Seja especifico sobre como implementar na pratica
5. Inclua alertas e dicas importantes

Responda em JSON:
{
  "title": "string",
  "explanation": "string",
  "practical_example": "string",
  "tips": ["string"],
  "warnings": ["string"]
}

FORMATO DE RESPOSTA: Retorne apenas o objeto JSON, sem texto adicional.
`)

	return sb.String()
}

// buildChatPrompt creates the chat prompt for a user question.
func buildChatPrompt(message string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Responda a pergunta do usuario: %q\n", message))
	sb.WriteString(`
Use sempre esta estrutura:
- RESPOSTA SIMPLES: 1-2 frases diretas
- EXEMPLO PRATICO: um exemplo concreto com valores em reais
- COMO FAZER: 3 passos praticos
- ATENCAO: 1-2 alertas importantes
- PROXIMO PASSO: uma acao que a pessoa pode fazer hoje

Evite jargoes; quando usar um termo tecnico, explique entre parenteses. Seja breve.
`)

	return sb.String()
}

type suggestionPayload struct {
	Name           string  `json:"name"`
	Allocation     float64 `json:"allocation"`
	ExpectedReturn string  `json:"expected_return"`
	Risk           string  `json:"risk"`
	Rationale      string  `json:"rationale"`
	Concept        string  `json:"concept"`
	PracticalSteps string  `json:"practical_steps"`
	MinimumAmount  float64 `json:"minimum_amount"`
	Horizon        string  `json:"horizon"`
}

type portfolioPayload struct {
	Domestic      []suggestionPayload `json:"domestic"`
	International []suggestionPayload `json:"international"`
	Summary       string              `json:"summary"`
	Warnings      []string            `json:"warnings"`
}

type explanationPayload struct {
	Title            string   `json:"title"`
	Explanation      string   `json:"explanation"`
	PracticalExample string   `json:"practical_example"`
	Tips             []string `json:"tips"`
	Warnings         []string `json:"warnings"`
}

// cleanJSON removes markdown code fences around a JSON answer.
func cleanJSON(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}

// decodePortfolio parses an advisor answer into a bundle. Shape checks are left
// to the caller.
func decodePortfolio(text string) (*entity.RecommendationBundle, error) {
	var payload portfolioPayload
	if err := json.Unmarshal([]byte(cleanJSON(text)), &payload); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	return &entity.RecommendationBundle{
		DomesticSuggestions:      toSuggestions(payload.Domestic, entity.RegionDomestic),
		InternationalSuggestions: toSuggestions(payload.International, entity.RegionInternational),
		Summary:                  payload.Summary,
		Warnings:                 payload.Warnings,
	}, nil
}

func toSuggestions(items []suggestionPayload, region entity.Region) []entity.InvestmentSuggestion {
	out := make([]entity.InvestmentSuggestion, 0, len(items))
	for _, it := range items {
		risk, ok := entity.ParseRiskLevel(it.Risk)
		if !ok {
			// Kept raw so validation rejects the bundle
			risk = entity.RiskLevel(it.Risk)
		}
		out = append(out, entity.InvestmentSuggestion{
			Name:                      strings.TrimSpace(it.Name),
			AllocationPercent:         it.Allocation,
			ExpectedReturnDescription: it.ExpectedReturn,
			RiskLevel:                 risk,
			Rationale:                 it.Rationale,
			ConceptExplanation:        it.Concept,
			PracticalSteps:            it.PracticalSteps,
			MinimumAmount:             it.MinimumAmount,
			RecommendedHorizon:        it.Horizon,
			Region:                    region,
		})
	}
	return out
}

func decodeExplanation(text string) (*entity.TopicExplanation, error) {
	var payload explanationPayload
	if err := json.Unmarshal([]byte(cleanJSON(text)), &payload); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	return &entity.TopicExplanation{
		Title:            payload.Title,
		Explanation:      payload.Explanation,
		PracticalExample: payload.PracticalExample,
		Tips:             payload.Tips,
		Warnings:         payload.Warnings,
	}, nil
}
