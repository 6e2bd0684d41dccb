package recommendation

import (
	"context"

	"github.com/dindin-invest/backend/internal/domain/entity"
	"github.com/dindin-invest/backend/internal/domain/projection"
	selector "github.com/dindin-invest/backend/internal/domain/recommendation"
)

// SuggestAllocationInput represents the input for a quick allocation plan.
type SuggestAllocationInput struct {
	RiskProfile         entity.RiskProfile
	Amount              float64
	Years               int
	MonthlyContribution float64
}

// SuggestAllocationOutput represents the output of a quick allocation plan.
type SuggestAllocationOutput struct {
	Plan entity.AllocationPlan
}

// SuggestAllocationUseCase returns the fixed allocation of a profile with a
// projection at the profile's expected return.
type SuggestAllocationUseCase struct{}

// NewSuggestAllocationUseCase creates a new SuggestAllocationUseCase instance.
func NewSuggestAllocationUseCase() *SuggestAllocationUseCase {
	return &SuggestAllocationUseCase{}
}

// Execute performs the allocation lookup and projection.
func (uc *SuggestAllocationUseCase) Execute(_ context.Context, input SuggestAllocationInput) (*SuggestAllocationOutput, error) {
	plan, err := selector.AllocationFor(input.RiskProfile)
	if err != nil {
		return nil, err
	}

	result, err := projection.ProjectCompoundGrowth(entity.ProjectionInput{
		InitialAmount:       input.Amount,
		MonthlyContribution: input.MonthlyContribution,
		AnnualRatePercent:   plan.ExpectedReturn,
		Years:               input.Years,
	})
	if err != nil {
		return nil, err
	}

	plan.ProjectedValue = result.FinalAmount
	plan.TotalInvested = result.TotalInvested
	plan.TotalGains = result.TotalInterest

	return &SuggestAllocationOutput{Plan: plan}, nil
}
