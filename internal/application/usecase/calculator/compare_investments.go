package calculator

import (
	"context"

	"github.com/dindin-invest/backend/internal/domain/entity"
	"github.com/dindin-invest/backend/internal/domain/projection"
)

// CompareInvestmentsInput represents the input for an investment comparison.
type CompareInvestmentsInput struct {
	Amount     float64
	Years      int
	ProductIDs []string
}

// CompareInvestmentsOutput represents the output of an investment comparison.
type CompareInvestmentsOutput struct {
	Results []entity.ComparisonResult
}

// CompareInvestmentsUseCase simulates an amount across several products.
type CompareInvestmentsUseCase struct{}

// NewCompareInvestmentsUseCase creates a new CompareInvestmentsUseCase instance.
func NewCompareInvestmentsUseCase() *CompareInvestmentsUseCase {
	return &CompareInvestmentsUseCase{}
}

// Execute performs the comparison. Results are sorted by net final amount.
func (uc *CompareInvestmentsUseCase) Execute(_ context.Context, input CompareInvestmentsInput) (*CompareInvestmentsOutput, error) {
	results, err := projection.CompareInvestments(input.Amount, input.Years, input.ProductIDs)
	if err != nil {
		return nil, err
	}

	return &CompareInvestmentsOutput{Results: results}, nil
}

// ListProductsOutput represents the comparator catalog.
type ListProductsOutput struct {
	Products []entity.InvestmentProduct
}

// ListProductsUseCase lists the products available to the comparator.
type ListProductsUseCase struct{}

// NewListProductsUseCase creates a new ListProductsUseCase instance.
func NewListProductsUseCase() *ListProductsUseCase {
	return &ListProductsUseCase{}
}

// Execute returns the product catalog.
func (uc *ListProductsUseCase) Execute(_ context.Context) (*ListProductsOutput, error) {
	return &ListProductsOutput{Products: projection.Products()}, nil
}
