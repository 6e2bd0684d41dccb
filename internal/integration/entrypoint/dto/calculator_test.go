package dto

import (
	"testing"

	"github.com/dindin-invest/backend/internal/application/usecase/calculator"
	"github.com/dindin-invest/backend/internal/domain/entity"
)

func TestToCompoundInterestResponse_TotalsAddUp(t *testing.T) {
	tests := []struct {
		name   string
		result entity.ProjectionResult
		want   CompoundInterestResponse
	}{
		{
			name:   "rounding splits across both parts",
			result: entity.ProjectionResult{FinalAmount: 100.125, TotalInvested: 50.004, TotalInterest: 50.121},
			want:   CompoundInterestResponse{FinalAmount: 100.13, TotalInvested: 50, TotalInterest: 50.13},
		},
		{
			name:   "ten years at twelve percent",
			result: entity.ProjectionResult{FinalAmount: 149173.4071217068, TotalInvested: 70000, TotalInterest: 79173.4071217068},
			want:   CompoundInterestResponse{FinalAmount: 149173.41, TotalInvested: 70000, TotalInterest: 79173.41},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToCompoundInterestResponse(&calculator.CompoundInterestOutput{Result: tt.result})
			if got.FinalAmount != tt.want.FinalAmount || got.TotalInvested != tt.want.TotalInvested || got.TotalInterest != tt.want.TotalInterest {
				t.Errorf("got final=%v invested=%v interest=%v, want %v %v %v",
					got.FinalAmount, got.TotalInvested, got.TotalInterest,
					tt.want.FinalAmount, tt.want.TotalInvested, tt.want.TotalInterest)
			}
		})
	}
}

func TestRetirementRequest_ToInputKeepsZeroAge(t *testing.T) {
	in := RetirementRequest{CurrentAge: 0, RetirementAge: 65, DesiredMonthlyIncome: 3000}.ToInput()
	if in.CurrentAge != 0 || in.RetirementAge != 65 {
		t.Errorf("unexpected input %+v", in)
	}
}
