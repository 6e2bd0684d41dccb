package recommendation

import (
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/dindin-invest/backend/internal/domain/entity"
	domainerror "github.com/dindin-invest/backend/internal/domain/error"
)

func profileFor(risk entity.RiskProfile) entity.FinancialProfile {
	return entity.FinancialProfile{
		MonthlyIncome:                3000,
		MonthlyEssentialExpenses:     2000,
		MonthlyDiscretionaryExpenses: 500,
		RiskProfile:                  risk,
		Age:                          35,
	}
}

func TestGenerateRecommendations_AllProfiles(t *testing.T) {
	profiles := []entity.RiskProfile{
		entity.RiskProfileConservative,
		entity.RiskProfileModerate,
		entity.RiskProfileAggressive,
	}

	for _, risk := range profiles {
		t.Run(string(risk), func(t *testing.T) {
			bundle, err := GenerateRecommendations(profileFor(risk))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(bundle.DomesticSuggestions) != SuggestionsPerRegion {
				t.Errorf("expected %d domestic suggestions, got %d", SuggestionsPerRegion, len(bundle.DomesticSuggestions))
			}
			if len(bundle.InternationalSuggestions) != SuggestionsPerRegion {
				t.Errorf("expected %d international suggestions, got %d", SuggestionsPerRegion, len(bundle.InternationalSuggestions))
			}
			if sum := SumAllocation(bundle.DomesticSuggestions); math.Abs(sum-100) > 1e-9 {
				t.Errorf("domestic allocation sums to %v", sum)
			}
			if sum := SumAllocation(bundle.InternationalSuggestions); math.Abs(sum-100) > 1e-9 {
				t.Errorf("international allocation sums to %v", sum)
			}
			if bundle.Summary == "" {
				t.Error("expected a summary")
			}
			if len(bundle.Warnings) < 2 {
				t.Errorf("expected branch and caller warnings, got %v", bundle.Warnings)
			}

			for _, s := range append(bundle.DomesticSuggestions, bundle.InternationalSuggestions...) {
				if s.Name == "" || s.Rationale == "" || s.ConceptExplanation == "" || s.PracticalSteps == "" {
					t.Errorf("incomplete suggestion: %+v", s)
				}
				if !s.RiskLevel.IsValid() {
					t.Errorf("suggestion %q has invalid risk level %q", s.Name, s.RiskLevel)
				}
			}
			for _, s := range bundle.DomesticSuggestions {
				if s.Region != entity.RegionDomestic {
					t.Errorf("suggestion %q should be domestic", s.Name)
				}
			}
			for _, s := range bundle.InternationalSuggestions {
				if s.Region != entity.RegionInternational {
					t.Errorf("suggestion %q should be international", s.Name)
				}
			}
		})
	}
}

func TestGenerateRecommendations_ConservativeBudget(t *testing.T) {
	bundle, err := GenerateRecommendations(profileFor(entity.RiskProfileConservative))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(bundle.Warnings[0], "R$ 500,00") {
		t.Errorf("first warning should mention the available amount, got %q", bundle.Warnings[0])
	}
	if !strings.Contains(bundle.Warnings[0], "valor inicial baixo") {
		t.Errorf("first warning should flag a low budget, got %q", bundle.Warnings[0])
	}
	if !strings.Contains(bundle.Warnings[len(bundle.Warnings)-1], "35 anos") {
		t.Errorf("last warning should mention the age, got %q", bundle.Warnings[len(bundle.Warnings)-1])
	}
	if !strings.Contains(bundle.Summary, "35 anos") || !strings.Contains(bundle.Summary, "renda média") {
		t.Errorf("summary should carry age and income level, got %q", bundle.Summary)
	}
}

func TestGenerateRecommendations_RationaleUsesCallerData(t *testing.T) {
	p := profileFor(entity.RiskProfileModerate)
	p.Age = 42

	bundle, err := GenerateRecommendations(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	found := false
	for _, s := range bundle.DomesticSuggestions {
		if strings.Contains(s.Rationale, "42 anos") {
			found = true
		}
	}
	if !found {
		t.Error("expected at least one rationale to mention the investor age")
	}
}

func TestGenerateRecommendations_Deterministic(t *testing.T) {
	p := profileFor(entity.RiskProfileAggressive)

	first, err := GenerateRecommendations(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := GenerateRecommendations(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("expected identical bundles for identical profiles")
	}
}

func TestGenerateRecommendations_InvalidProfile(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(p *entity.FinancialProfile)
		wantCode domainerror.RecommendationErrorCode
	}{
		{
			name:     "unknown risk profile",
			mutate:   func(p *entity.FinancialProfile) { p.RiskProfile = "reckless" },
			wantCode: domainerror.ErrCodeInvalidRiskProfile,
		},
		{
			name:     "zero age",
			mutate:   func(p *entity.FinancialProfile) { p.Age = 0 },
			wantCode: domainerror.ErrCodeInvalidInvestorAge,
		},
		{
			name:     "negative expenses",
			mutate:   func(p *entity.FinancialProfile) { p.MonthlyEssentialExpenses = -1 },
			wantCode: domainerror.ErrCodeNegativeBudget,
		},
		{
			name:     "nothing left to invest",
			mutate:   func(p *entity.FinancialProfile) { p.MonthlyEssentialExpenses = 2500 },
			wantCode: domainerror.ErrCodeNoAvailableToInvest,
		},
		{
			name:     "expenses above income",
			mutate:   func(p *entity.FinancialProfile) { p.MonthlyDiscretionaryExpenses = 5000 },
			wantCode: domainerror.ErrCodeNoAvailableToInvest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := profileFor(entity.RiskProfileConservative)
			tt.mutate(&p)

			_, err := GenerateRecommendations(p)
			if !errors.Is(err, domainerror.ErrInvalidFinancialProfile) {
				t.Fatalf("expected ErrInvalidFinancialProfile, got %v", err)
			}

			var recErr *domainerror.RecommendationError
			if !errors.As(err, &recErr) {
				t.Fatalf("expected RecommendationError, got %T", err)
			}
			if recErr.Code != tt.wantCode {
				t.Errorf("expected code %s, got %s", tt.wantCode, recErr.Code)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		income       float64
		age          int
		wantIncome   entity.IncomeLevel
		wantCapacity entity.RiskCapacity
	}{
		{income: 2999.99, age: 34, wantIncome: entity.IncomeLevelLow, wantCapacity: entity.RiskCapacityHigh},
		{income: 3000, age: 35, wantIncome: entity.IncomeLevelMedium, wantCapacity: entity.RiskCapacityMedium},
		{income: 7999, age: 49, wantIncome: entity.IncomeLevelMedium, wantCapacity: entity.RiskCapacityMedium},
		{income: 8000, age: 50, wantIncome: entity.IncomeLevelHigh, wantCapacity: entity.RiskCapacityLow},
	}

	for _, tt := range tests {
		c := Classify(entity.FinancialProfile{MonthlyIncome: tt.income, MonthlyEssentialExpenses: 100, Age: tt.age})
		if c.IncomeLevel != tt.wantIncome {
			t.Errorf("income %v: expected %s, got %s", tt.income, tt.wantIncome, c.IncomeLevel)
		}
		if c.RiskCapacity != tt.wantCapacity {
			t.Errorf("age %d: expected %s, got %s", tt.age, tt.wantCapacity, c.RiskCapacity)
		}
		if c.AvailableToInvest != tt.income-100 {
			t.Errorf("expected available %v, got %v", tt.income-100, c.AvailableToInvest)
		}
	}
}

func TestAllocationFor(t *testing.T) {
	tests := []struct {
		profile    entity.RiskProfile
		wantReturn float64
		wantRisk   entity.RiskLevel
		wantSlices int
	}{
		{entity.RiskProfileConservative, 10, entity.RiskLevelLow, 4},
		{entity.RiskProfileModerate, 14, entity.RiskLevelMedium, 4},
		{entity.RiskProfileAggressive, 18, entity.RiskLevelHigh, 6},
	}

	for _, tt := range tests {
		t.Run(string(tt.profile), func(t *testing.T) {
			plan, err := AllocationFor(tt.profile)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if plan.ExpectedReturn != tt.wantReturn {
				t.Errorf("expected return %v, got %v", tt.wantReturn, plan.ExpectedReturn)
			}
			if plan.RiskLevel != tt.wantRisk {
				t.Errorf("expected risk %s, got %s", tt.wantRisk, plan.RiskLevel)
			}
			if len(plan.Allocation) != tt.wantSlices {
				t.Fatalf("expected %d slices, got %d", tt.wantSlices, len(plan.Allocation))
			}

			total := 0.0
			for _, s := range plan.Allocation {
				total += s.Percent
			}
			if total != 100 {
				t.Errorf("allocation sums to %v", total)
			}
		})
	}

	t.Run("returns a copy", func(t *testing.T) {
		plan, _ := AllocationFor(entity.RiskProfileModerate)
		plan.Allocation[0].Percent = 0

		again, _ := AllocationFor(entity.RiskProfileModerate)
		if again.Allocation[0].Percent != 50 {
			t.Error("template was mutated through a returned plan")
		}
	})

	t.Run("unknown profile", func(t *testing.T) {
		if _, err := AllocationFor("yolo"); !errors.Is(err, domainerror.ErrInvalidFinancialProfile) {
			t.Errorf("expected ErrInvalidFinancialProfile, got %v", err)
		}
	})
}

func TestProfiles(t *testing.T) {
	profiles := Profiles()
	if len(profiles) != 3 {
		t.Fatalf("expected 3 profiles, got %d", len(profiles))
	}
	for _, p := range profiles {
		if !p.RiskProfile.IsValid() || p.Name != p.RiskProfile.Label() {
			t.Errorf("unexpected profile %+v", p)
		}
		if len(p.Characteristics) == 0 || len(p.Investments) == 0 {
			t.Errorf("profile %s has no characteristics or investments", p.RiskProfile)
		}
	}
}
