package recommendation

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/dindin-invest/backend/internal/domain/entity"
	domainerror "github.com/dindin-invest/backend/internal/domain/error"
	"github.com/dindin-invest/backend/internal/domain/projection"
)

func TestSuggestAllocationUseCase_Execute(t *testing.T) {
	uc := NewSuggestAllocationUseCase()

	out, err := uc.Execute(context.Background(), SuggestAllocationInput{
		RiskProfile:         entity.RiskProfileModerate,
		Amount:              10000,
		Years:               5,
		MonthlyContribution: 200,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want, _ := projection.ProjectCompoundGrowth(entity.ProjectionInput{
		InitialAmount:       10000,
		MonthlyContribution: 200,
		AnnualRatePercent:   14,
		Years:               5,
	})

	plan := out.Plan
	if plan.ExpectedReturn != 14 || plan.RiskLevel != entity.RiskLevelMedium {
		t.Errorf("unexpected plan header %+v", plan)
	}
	if plan.TotalInvested != 22000 {
		t.Errorf("expected invested 22000, got %v", plan.TotalInvested)
	}
	if math.Abs(plan.ProjectedValue-want.FinalAmount) > 1e-9 {
		t.Errorf("expected projected %v, got %v", want.FinalAmount, plan.ProjectedValue)
	}
	if math.Abs(plan.TotalGains-(plan.ProjectedValue-plan.TotalInvested)) > 1e-9 {
		t.Error("gains should equal projected minus invested")
	}
}

func TestSuggestAllocationUseCase_InvalidInput(t *testing.T) {
	uc := NewSuggestAllocationUseCase()

	_, err := uc.Execute(context.Background(), SuggestAllocationInput{RiskProfile: "bold", Amount: 100, Years: 1})
	if !errors.Is(err, domainerror.ErrInvalidFinancialProfile) {
		t.Errorf("expected ErrInvalidFinancialProfile, got %v", err)
	}

	_, err = uc.Execute(context.Background(), SuggestAllocationInput{RiskProfile: entity.RiskProfileAggressive, Amount: -100, Years: 1})
	if !errors.Is(err, domainerror.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestListProfilesUseCase_Execute(t *testing.T) {
	out, err := NewListProfilesUseCase().Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Profiles) != 3 {
		t.Errorf("expected 3 profiles, got %d", len(out.Profiles))
	}
}
