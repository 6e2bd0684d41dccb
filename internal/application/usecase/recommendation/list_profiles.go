package recommendation

import (
	"context"

	"github.com/dindin-invest/backend/internal/domain/entity"
	selector "github.com/dindin-invest/backend/internal/domain/recommendation"
)

// ListProfilesOutput represents the investor profile descriptions.
type ListProfilesOutput struct {
	Profiles []entity.InvestorProfileDescription
}

// ListProfilesUseCase lists the investor profiles.
type ListProfilesUseCase struct{}

// NewListProfilesUseCase creates a new ListProfilesUseCase instance.
func NewListProfilesUseCase() *ListProfilesUseCase {
	return &ListProfilesUseCase{}
}

// Execute returns the static profile descriptions.
func (uc *ListProfilesUseCase) Execute(_ context.Context) (*ListProfilesOutput, error) {
	return &ListProfilesOutput{Profiles: selector.Profiles()}, nil
}
