package projection

import (
	"errors"
	"math"
	"testing"

	"github.com/dindin-invest/backend/internal/domain/entity"
	domainerror "github.com/dindin-invest/backend/internal/domain/error"
)

func TestProjectRetirementNeed(t *testing.T) {
	got, err := ProjectRetirementNeed(entity.RetirementInput{
		CurrentAge:           30,
		RetirementAge:        60,
		DesiredMonthlyIncome: 5000,
		CurrentSavings:       50000,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.YearsToRetirement != 30 {
		t.Errorf("YearsToRetirement = %d, want 30", got.YearsToRetirement)
	}
	if got.TotalNeeded != 1500000 {
		t.Errorf("TotalNeeded = %v, want 1500000", got.TotalNeeded)
	}

	wantFV := 50000 * math.Pow(1.10, 30)
	if !closeTo(got.FutureValueOfCurrentSavings, wantFV) {
		t.Errorf("FutureValueOfCurrentSavings = %v, want %v", got.FutureValueOfCurrentSavings, wantFV)
	}

	r := 0.10 / 12
	wantPMT := (1500000 - wantFV) * r / (math.Pow(1+r, 360) - 1)
	if !closeTo(got.MonthlyContributionNeeded, wantPMT) {
		t.Errorf("MonthlyContributionNeeded = %v, want %v", got.MonthlyContributionNeeded, wantPMT)
	}
	if !closeTo(got.MonthlyContributionNeeded, 277.6081569258074) {
		t.Errorf("MonthlyContributionNeeded = %v, want about 277.61", got.MonthlyContributionNeeded)
	}
}

func TestProjectRetirementNeed_SavingsAlreadyEnough(t *testing.T) {
	got, err := ProjectRetirementNeed(entity.RetirementInput{
		CurrentAge:           40,
		RetirementAge:        65,
		DesiredMonthlyIncome: 1000,
		CurrentSavings:       1000000,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.MonthlyContributionNeeded != 0 {
		t.Errorf("MonthlyContributionNeeded = %v, want 0", got.MonthlyContributionNeeded)
	}
}

func TestProjectRetirementNeed_Idempotent(t *testing.T) {
	in := entity.RetirementInput{CurrentAge: 25, RetirementAge: 62, DesiredMonthlyIncome: 7300, CurrentSavings: 12000}
	first, _ := ProjectRetirementNeed(in)
	second, _ := ProjectRetirementNeed(in)
	if first != second {
		t.Errorf("results differ: %+v vs %+v", first, second)
	}
}

func TestProjectRetirementNeed_PaymentClosesGap(t *testing.T) {
	in := entity.RetirementInput{CurrentAge: 25, RetirementAge: 55, DesiredMonthlyIncome: 8000, CurrentSavings: 10000}
	got, err := ProjectRetirementNeed(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	projected, err := ProjectCompoundGrowth(entity.ProjectionInput{
		MonthlyContribution: got.MonthlyContributionNeeded,
		AnnualRatePercent:   AssumedAnnualReturn * 100,
		Years:               got.YearsToRetirement,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The annuity formula deposits at the end of each month, one month less of growth.
	annuityValue := projected.FinalAmount / (1 + AssumedAnnualReturn/12)
	gap := got.TotalNeeded - got.FutureValueOfCurrentSavings
	if math.Abs(annuityValue-gap) > 0.01 {
		t.Errorf("contributions accumulate %v, gap is %v", annuityValue, gap)
	}
}

func TestProjectRetirementNeed_InvalidInput(t *testing.T) {
	tests := []struct {
		name     string
		input    entity.RetirementInput
		wantCode domainerror.ProjectionErrorCode
	}{
		{"same age", entity.RetirementInput{CurrentAge: 60, RetirementAge: 60}, domainerror.ErrCodeInvalidAges},
		{"retirement before current", entity.RetirementInput{CurrentAge: 60, RetirementAge: 50}, domainerror.ErrCodeInvalidAges},
		{"negative age", entity.RetirementInput{CurrentAge: -1, RetirementAge: 50}, domainerror.ErrCodeInvalidAges},
		{"horizon too long", entity.RetirementInput{CurrentAge: 0, RetirementAge: 101}, domainerror.ErrCodeInvalidHorizon},
		{"negative income", entity.RetirementInput{CurrentAge: 30, RetirementAge: 60, DesiredMonthlyIncome: -1}, domainerror.ErrCodeNegativeAmount},
		{"negative savings", entity.RetirementInput{CurrentAge: 30, RetirementAge: 60, CurrentSavings: -5}, domainerror.ErrCodeNegativeAmount},
		{"nan savings", entity.RetirementInput{CurrentAge: 30, RetirementAge: 60, CurrentSavings: math.NaN()}, domainerror.ErrCodeNegativeAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ProjectRetirementNeed(tt.input)
			if !errors.Is(err, domainerror.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
			var projErr *domainerror.ProjectionError
			if errors.As(err, &projErr) && projErr.Code != tt.wantCode {
				t.Errorf("code = %s, want %s", projErr.Code, tt.wantCode)
			}
		})
	}
}

func TestLevelMonthlyPayment(t *testing.T) {
	tests := []struct {
		name   string
		target float64
		rate   float64
		months int
		want   float64
	}{
		{"nothing to save", 0, 0.01, 120, 0},
		{"no months left pays everything now", 5000, 0.01, 0, 5000},
		{"zero rate splits evenly", 1200, 0, 12, 100},
		{"regular annuity", 10000, 0.01, 12, 10000 * 0.01 / (math.Pow(1.01, 12) - 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := levelMonthlyPayment(tt.target, tt.rate, tt.months)
			if !closeTo(got, tt.want) {
				t.Errorf("levelMonthlyPayment() = %v, want %v", got, tt.want)
			}
		})
	}
}
