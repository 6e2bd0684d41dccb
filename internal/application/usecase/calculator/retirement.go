package calculator

import (
	"context"

	"github.com/dindin-invest/backend/internal/domain/entity"
	"github.com/dindin-invest/backend/internal/domain/projection"
)

// RetirementInput represents the input for a retirement plan.
type RetirementInput struct {
	CurrentAge           int
	RetirementAge        int
	DesiredMonthlyIncome float64
	CurrentSavings       float64
}

// RetirementOutput represents the output of a retirement plan.
type RetirementOutput struct {
	Result entity.RetirementResult
}

// RetirementUseCase sizes the monthly saving needed to retire with a given income.
type RetirementUseCase struct{}

// NewRetirementUseCase creates a new RetirementUseCase instance.
func NewRetirementUseCase() *RetirementUseCase {
	return &RetirementUseCase{}
}

// Execute performs the retirement projection.
func (uc *RetirementUseCase) Execute(_ context.Context, input RetirementInput) (*RetirementOutput, error) {
	result, err := projection.ProjectRetirementNeed(entity.RetirementInput{
		CurrentAge:           input.CurrentAge,
		RetirementAge:        input.RetirementAge,
		DesiredMonthlyIncome: input.DesiredMonthlyIncome,
		CurrentSavings:       input.CurrentSavings,
	})
	if err != nil {
		return nil, err
	}

	return &RetirementOutput{Result: result}, nil
}
