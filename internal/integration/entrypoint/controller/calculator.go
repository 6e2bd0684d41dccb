package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dindin-invest/backend/internal/application/usecase/calculator"
	domainerror "github.com/dindin-invest/backend/internal/domain/error"
	"github.com/dindin-invest/backend/internal/integration/entrypoint/dto"
)

// CalculatorController handles the financial calculator endpoints.
type CalculatorController struct {
	compoundUseCase   *calculator.CompoundInterestUseCase
	retirementUseCase *calculator.RetirementUseCase
	compareUseCase    *calculator.CompareInvestmentsUseCase
	productsUseCase   *calculator.ListProductsUseCase
}

// NewCalculatorController creates a new calculator controller instance.
func NewCalculatorController(
	compoundUseCase *calculator.CompoundInterestUseCase,
	retirementUseCase *calculator.RetirementUseCase,
	compareUseCase *calculator.CompareInvestmentsUseCase,
	productsUseCase *calculator.ListProductsUseCase,
) *CalculatorController {
	return &CalculatorController{
		compoundUseCase:   compoundUseCase,
		retirementUseCase: retirementUseCase,
		compareUseCase:    compareUseCase,
		productsUseCase:   productsUseCase,
	}
}

// CompoundInterest handles POST /calculate/compound-interest requests.
func (c *CalculatorController) CompoundInterest(ctx *gin.Context) {
	var req dto.CompoundInterestRequest
	if !bindJSON(ctx, &req) {
		return
	}

	output, err := c.compoundUseCase.Execute(ctx.Request.Context(), req.ToInput())
	if err != nil {
		c.handleProjectionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCompoundInterestResponse(output))
}

// Retirement handles POST /calculate/retirement requests.
func (c *CalculatorController) Retirement(ctx *gin.Context) {
	var req dto.RetirementRequest
	if !bindJSON(ctx, &req) {
		return
	}

	output, err := c.retirementUseCase.Execute(ctx.Request.Context(), req.ToInput())
	if err != nil {
		c.handleProjectionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRetirementResponse(output.Result))
}

// Compare handles POST /calculate/compare requests.
func (c *CalculatorController) Compare(ctx *gin.Context) {
	var req dto.CompareInvestmentsRequest
	if !bindJSON(ctx, &req) {
		return
	}

	output, err := c.compareUseCase.Execute(ctx.Request.Context(), req.ToInput())
	if err != nil {
		c.handleProjectionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCompareInvestmentsResponse(output.Results))
}

// Products handles GET /calculate/products requests.
func (c *CalculatorController) Products(ctx *gin.Context) {
	output, err := c.productsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleProjectionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductListResponse(output.Products))
}

// handleProjectionError handles projection errors and returns appropriate HTTP responses.
func (c *CalculatorController) handleProjectionError(ctx *gin.Context, err error) {
	var projErr *domainerror.ProjectionError
	if errors.As(err, &projErr) {
		ctx.JSON(c.getStatusCodeForProjectionError(projErr.Code), dto.ErrorResponse{
			Error: projErr.Message,
			Code:  string(projErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForProjectionError maps projection error codes to HTTP status codes.
func (c *CalculatorController) getStatusCodeForProjectionError(code domainerror.ProjectionErrorCode) int {
	switch code {
	case domainerror.ErrCodeNegativeAmount,
		domainerror.ErrCodeInvalidHorizon,
		domainerror.ErrCodeInvalidRate,
		domainerror.ErrCodeInvalidAges,
		domainerror.ErrCodeUnknownProduct,
		domainerror.ErrCodeInvalidAmount,
		domainerror.ErrCodeMissingCalcData:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// bindJSON binds the request body and writes a 400 on failure.
func bindJSON(ctx *gin.Context, req interface{}) bool {
	if err := ctx.ShouldBindJSON(req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    string(domainerror.ErrCodeInvalidRequestBody),
			Details: err.Error(),
		})
		return false
	}
	return true
}
