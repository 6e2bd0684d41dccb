package recommendation

import (
	"github.com/dindin-invest/backend/internal/domain/entity"
	domainerror "github.com/dindin-invest/backend/internal/domain/error"
)

type allocationTemplate struct {
	expectedReturn float64
	risk           entity.RiskLevel
	recommendation string
	slices         []entity.AllocationSlice
}

var allocationTemplates = map[entity.RiskProfile]allocationTemplate{
	entity.RiskProfileConservative: {
		expectedReturn: 10,
		risk:           entity.RiskLevelLow,
		recommendation: "Para seu perfil conservador, recomendamos focar em renda fixa com liquidez e segurança. O CDB e Tesouro Direto são ideais para preservar o capital com rentabilidade superior à poupança.",
		slices: []entity.AllocationSlice{
			{Name: "Poupança/CDB", Percent: 40},
			{Name: "Tesouro Direto", Percent: 30},
			{Name: "LCI/LCA", Percent: 20},
			{Name: "Fundos DI", Percent: 10},
		},
	},
	entity.RiskProfileModerate: {
		expectedReturn: 14,
		risk:           entity.RiskLevelMedium,
		recommendation: "Seu perfil moderado permite uma boa diversificação entre renda fixa e variável. Mantenha uma base sólida em renda fixa e diversifique em ações de empresas consolidadas.",
		slices: []entity.AllocationSlice{
			{Name: "Renda Fixa", Percent: 50},
			{Name: "Ações Blue Chips", Percent: 25},
			{Name: "FIIs", Percent: 15},
			{Name: "Fundos Multimercado", Percent: 10},
		},
	},
	entity.RiskProfileAggressive: {
		expectedReturn: 18,
		risk:           entity.RiskLevelHigh,
		recommendation: "Como investidor agressivo, você pode explorar ativos de maior risco e retorno. Foque em ações de crescimento e diversifique internacionalmente, mantendo apenas uma pequena reserva em renda fixa.",
		slices: []entity.AllocationSlice{
			{Name: "Ações Growth", Percent: 40},
			{Name: "Ações Value", Percent: 20},
			{Name: "FIIs", Percent: 15},
			{Name: "ETFs Internacionais", Percent: 15},
			{Name: "Criptomoedas", Percent: 5},
			{Name: "Renda Fixa", Percent: 5},
		},
	},
}

// AllocationFor returns the fixed allocation of a risk profile. The projected
// fields of the plan are left zero; callers fill them from the compound engine
// using ExpectedReturn as the annual rate.
func AllocationFor(profile entity.RiskProfile) (entity.AllocationPlan, error) {
	t, ok := allocationTemplates[profile]
	if !ok {
		return entity.AllocationPlan{}, domainerror.NewRecommendationError(
			domainerror.ErrCodeInvalidRiskProfile,
			"risk profile must be conservative, moderate or aggressive",
			domainerror.ErrInvalidFinancialProfile,
		)
	}

	slices := make([]entity.AllocationSlice, len(t.slices))
	copy(slices, t.slices)

	return entity.AllocationPlan{
		RiskProfile:    profile,
		Allocation:     slices,
		ExpectedReturn: t.expectedReturn,
		RiskLevel:      t.risk,
		Recommendation: t.recommendation,
	}, nil
}
