package projection

import (
	"errors"
	"math"
	"testing"

	"github.com/dindin-invest/backend/internal/domain/entity"
	domainerror "github.com/dindin-invest/backend/internal/domain/error"
)

const tolerance = 1e-6

func closeTo(a, b float64) bool {
	return math.Abs(a-b) <= tolerance*math.Max(1, math.Abs(b))
}

func TestProjectCompoundGrowth(t *testing.T) {
	tests := []struct {
		name         string
		input        entity.ProjectionInput
		wantInvested float64
		wantFinal    float64
	}{
		{
			name:         "ten years at twelve percent",
			input:        entity.ProjectionInput{InitialAmount: 10000, MonthlyContribution: 500, AnnualRatePercent: 12, Years: 10},
			wantInvested: 70000,
			wantFinal:    149173.4071217068,
		},
		{
			name:         "zero years keeps the initial amount",
			input:        entity.ProjectionInput{InitialAmount: 2500, MonthlyContribution: 300, AnnualRatePercent: 9, Years: 0},
			wantInvested: 2500,
			wantFinal:    2500,
		},
		{
			name:         "zero rate only sums contributions",
			input:        entity.ProjectionInput{InitialAmount: 0, MonthlyContribution: 100, AnnualRatePercent: 0, Years: 1},
			wantInvested: 1200,
			wantFinal:    1200,
		},
		{
			name:         "contribution earns interest in its first month",
			input:        entity.ProjectionInput{InitialAmount: 1000, MonthlyContribution: 100, AnnualRatePercent: 12, Years: 1},
			wantInvested: 2200,
			wantFinal:    2407.7578344648637,
		},
		{
			name:         "negative rate models a loss",
			input:        entity.ProjectionInput{InitialAmount: 1000, MonthlyContribution: 0, AnnualRatePercent: -12, Years: 1},
			wantInvested: 1000,
			wantFinal:    1000 * math.Pow(0.99, 12),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ProjectCompoundGrowth(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.TotalInvested != tt.wantInvested {
				t.Errorf("TotalInvested = %v, want %v", got.TotalInvested, tt.wantInvested)
			}
			if !closeTo(got.FinalAmount, tt.wantFinal) {
				t.Errorf("FinalAmount = %v, want %v", got.FinalAmount, tt.wantFinal)
			}
			if got.FinalAmount != got.TotalInvested+got.TotalInterest {
				t.Errorf("FinalAmount %v != TotalInvested %v + TotalInterest %v",
					got.FinalAmount, got.TotalInvested, got.TotalInterest)
			}
		})
	}
}

func TestProjectCompoundGrowth_MatchesClosedForm(t *testing.T) {
	in := entity.ProjectionInput{InitialAmount: 10000, MonthlyContribution: 500, AnnualRatePercent: 12, Years: 10}
	r := in.AnnualRatePercent / 100 / 12
	n := float64(in.Years * 12)
	growth := math.Pow(1+r, n)
	want := in.InitialAmount*growth + in.MonthlyContribution*(1+r)*(growth-1)/r

	got, err := ProjectCompoundGrowth(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !closeTo(got.FinalAmount, want) {
		t.Errorf("FinalAmount = %v, closed form gives %v", got.FinalAmount, want)
	}
}

func TestProjectCompoundGrowth_ZeroYears(t *testing.T) {
	for _, initial := range []float64{0, 1, 1234.56, 1e7} {
		got, err := ProjectCompoundGrowth(entity.ProjectionInput{
			InitialAmount: initial, MonthlyContribution: 999, AnnualRatePercent: 15, Years: 0,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.FinalAmount != initial || got.TotalInvested != initial || got.TotalInterest != 0 {
			t.Errorf("initial %v: got %+v", initial, got)
		}
	}
}

func TestProjectCompoundGrowth_ZeroRate(t *testing.T) {
	for years := 0; years <= 40; years += 5 {
		got, err := ProjectCompoundGrowth(entity.ProjectionInput{
			InitialAmount: 750, MonthlyContribution: 125, AnnualRatePercent: 0, Years: years,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.FinalAmount != got.TotalInvested {
			t.Errorf("years %d: FinalAmount %v != TotalInvested %v", years, got.FinalAmount, got.TotalInvested)
		}
	}
}

func TestProjectCompoundGrowth_MonotonicInContribution(t *testing.T) {
	previous := -1.0
	for contribution := 0.0; contribution <= 5000; contribution += 250 {
		got, err := ProjectCompoundGrowth(entity.ProjectionInput{
			InitialAmount: 1000, MonthlyContribution: contribution, AnnualRatePercent: 8, Years: 15,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.FinalAmount < previous {
			t.Fatalf("contribution %v: FinalAmount %v decreased from %v", contribution, got.FinalAmount, previous)
		}
		if got.FinalAmount < got.TotalInvested {
			t.Errorf("contribution %v: FinalAmount %v below TotalInvested %v", contribution, got.FinalAmount, got.TotalInvested)
		}
		previous = got.FinalAmount
	}
}

func TestProjectCompoundGrowth_Idempotent(t *testing.T) {
	in := entity.ProjectionInput{InitialAmount: 3210.5, MonthlyContribution: 77.7, AnnualRatePercent: 11.3, Years: 23}
	first, _ := ProjectCompoundGrowth(in)
	second, _ := ProjectCompoundGrowth(in)
	if first != second {
		t.Errorf("results differ: %+v vs %+v", first, second)
	}
}

func TestProjectCompoundGrowth_InvalidInput(t *testing.T) {
	tests := []struct {
		name     string
		input    entity.ProjectionInput
		wantCode domainerror.ProjectionErrorCode
	}{
		{"negative initial", entity.ProjectionInput{InitialAmount: -1, Years: 1}, domainerror.ErrCodeNegativeAmount},
		{"negative contribution", entity.ProjectionInput{MonthlyContribution: -10, Years: 1}, domainerror.ErrCodeNegativeAmount},
		{"negative years", entity.ProjectionInput{InitialAmount: 10, Years: -1}, domainerror.ErrCodeInvalidHorizon},
		{"too many years", entity.ProjectionInput{InitialAmount: 10, Years: MaxYears + 1}, domainerror.ErrCodeInvalidHorizon},
		{"nan rate", entity.ProjectionInput{InitialAmount: 10, AnnualRatePercent: math.NaN(), Years: 1}, domainerror.ErrCodeInvalidRate},
		{"infinite rate", entity.ProjectionInput{InitialAmount: 10, AnnualRatePercent: math.Inf(1), Years: 1}, domainerror.ErrCodeInvalidRate},
		{"infinite initial", entity.ProjectionInput{InitialAmount: math.Inf(1), Years: 1}, domainerror.ErrCodeNegativeAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ProjectCompoundGrowth(tt.input)
			if !errors.Is(err, domainerror.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
			var projErr *domainerror.ProjectionError
			if !errors.As(err, &projErr) {
				t.Fatalf("expected *ProjectionError, got %T", err)
			}
			if projErr.Code != tt.wantCode {
				t.Errorf("code = %s, want %s", projErr.Code, tt.wantCode)
			}
		})
	}
}

func TestProjectGrowthSeries(t *testing.T) {
	in := entity.ProjectionInput{InitialAmount: 10000, MonthlyContribution: 500, AnnualRatePercent: 12, Years: 10}

	series, err := ProjectGrowthSeries(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(series) != in.Years+1 {
		t.Fatalf("len(series) = %d, want %d", len(series), in.Years+1)
	}
	if series[0].Year != 0 || series[0].Balance != in.InitialAmount {
		t.Errorf("first point = %+v, want year 0 with the initial amount", series[0])
	}

	result, _ := ProjectCompoundGrowth(in)
	last := series[len(series)-1]
	if last.Year != in.Years || last.Balance != result.FinalAmount {
		t.Errorf("last point = %+v, want year %d with %v", last, in.Years, result.FinalAmount)
	}

	for i := 1; i < len(series); i++ {
		if series[i].Balance <= series[i-1].Balance {
			t.Errorf("balance did not grow between year %d and %d", i-1, i)
		}
	}
}

func TestProjectGrowthSeries_InvalidInput(t *testing.T) {
	_, err := ProjectGrowthSeries(entity.ProjectionInput{Years: -3})
	if !errors.Is(err, domainerror.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}
