// Package calculator contains the projection calculator use cases.
package calculator

import (
	"context"

	"github.com/dindin-invest/backend/internal/domain/entity"
	"github.com/dindin-invest/backend/internal/domain/projection"
)

// CompoundInterestInput represents the input for a compound growth projection.
type CompoundInterestInput struct {
	InitialAmount       float64
	MonthlyContribution float64
	AnnualRatePercent   float64
	Years               int
}

// CompoundInterestOutput represents the output of a compound growth projection.
type CompoundInterestOutput struct {
	Result entity.ProjectionResult
	Series []entity.YearlyBalance
}

// CompoundInterestUseCase projects a lump sum plus monthly contributions.
type CompoundInterestUseCase struct{}

// NewCompoundInterestUseCase creates a new CompoundInterestUseCase instance.
func NewCompoundInterestUseCase() *CompoundInterestUseCase {
	return &CompoundInterestUseCase{}
}

// Execute performs the projection and builds the yearly series.
func (uc *CompoundInterestUseCase) Execute(_ context.Context, input CompoundInterestInput) (*CompoundInterestOutput, error) {
	in := entity.ProjectionInput{
		InitialAmount:       input.InitialAmount,
		MonthlyContribution: input.MonthlyContribution,
		AnnualRatePercent:   input.AnnualRatePercent,
		Years:               input.Years,
	}

	result, err := projection.ProjectCompoundGrowth(in)
	if err != nil {
		return nil, err
	}

	series, err := projection.ProjectGrowthSeries(in)
	if err != nil {
		return nil, err
	}

	return &CompoundInterestOutput{
		Result: result,
		Series: series,
	}, nil
}
