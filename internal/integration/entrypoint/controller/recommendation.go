package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dindin-invest/backend/internal/application/usecase/recommendation"
	domainerror "github.com/dindin-invest/backend/internal/domain/error"
	"github.com/dindin-invest/backend/internal/integration/entrypoint/dto"
)

// RecommendationController handles recommendation and profile endpoints.
type RecommendationController struct {
	personalizedUseCase *recommendation.GeneratePersonalizedUseCase
	allocationUseCase   *recommendation.SuggestAllocationUseCase
	profilesUseCase     *recommendation.ListProfilesUseCase
}

// NewRecommendationController creates a new recommendation controller instance.
func NewRecommendationController(
	personalizedUseCase *recommendation.GeneratePersonalizedUseCase,
	allocationUseCase *recommendation.SuggestAllocationUseCase,
	profilesUseCase *recommendation.ListProfilesUseCase,
) *RecommendationController {
	return &RecommendationController{
		personalizedUseCase: personalizedUseCase,
		allocationUseCase:   allocationUseCase,
		profilesUseCase:     profilesUseCase,
	}
}

// Personalized handles POST /recommendations/personalized requests.
func (c *RecommendationController) Personalized(ctx *gin.Context) {
	var req dto.PersonalizedRecommendationRequest
	if !bindJSON(ctx, &req) {
		return
	}

	output, err := c.personalizedUseCase.Execute(ctx.Request.Context(), recommendation.GeneratePersonalizedInput{
		Profile: req.ToProfile(),
	})
	if err != nil {
		c.handleRecommendationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPersonalizedRecommendationResponse(output))
}

// Allocation handles POST /investment-recommendation requests.
func (c *RecommendationController) Allocation(ctx *gin.Context) {
	var req dto.InvestmentRecommendationRequest
	if !bindJSON(ctx, &req) {
		return
	}

	output, err := c.allocationUseCase.Execute(ctx.Request.Context(), req.ToInput())
	if err != nil {
		c.handleRecommendationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvestmentRecommendationResponse(output.Plan))
}

// Profiles handles GET /investment-profiles requests.
func (c *RecommendationController) Profiles(ctx *gin.Context) {
	output, err := c.profilesUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleRecommendationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvestorProfileListResponse(output.Profiles))
}

// handleRecommendationError handles recommendation errors and returns appropriate HTTP responses.
func (c *RecommendationController) handleRecommendationError(ctx *gin.Context, err error) {
	var recErr *domainerror.RecommendationError
	if errors.As(err, &recErr) {
		ctx.JSON(c.getStatusCodeForRecommendationError(recErr.Code), dto.ErrorResponse{
			Error: recErr.Message,
			Code:  string(recErr.Code),
		})
		return
	}

	// The allocation projection reuses the calculator validation.
	var projErr *domainerror.ProjectionError
	if errors.As(err, &projErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: projErr.Message,
			Code:  string(projErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForRecommendationError maps recommendation error codes to HTTP status codes.
func (c *RecommendationController) getStatusCodeForRecommendationError(code domainerror.RecommendationErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidRiskProfile,
		domainerror.ErrCodeNoAvailableToInvest,
		domainerror.ErrCodeInvalidInvestorAge,
		domainerror.ErrCodeNegativeBudget,
		domainerror.ErrCodeMissingProfileFields,
		domainerror.ErrCodeInvalidAllocationInput:
		return http.StatusBadRequest
	case domainerror.ErrCodeInvalidAdvisorOutput:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
