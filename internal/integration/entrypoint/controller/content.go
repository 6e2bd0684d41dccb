package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dindin-invest/backend/internal/application/usecase/content"
	domainerror "github.com/dindin-invest/backend/internal/domain/error"
	"github.com/dindin-invest/backend/internal/integration/entrypoint/dto"
)

// ContentController handles market data and educational content endpoints.
type ContentController struct {
	marketUseCase   *content.ListMarketDataUseCase
	articlesUseCase *content.ListArticlesUseCase
	articleUseCase  *content.GetArticleUseCase
	explainUseCase  *content.ExplainTopicUseCase
}

// NewContentController creates a new content controller instance.
func NewContentController(
	marketUseCase *content.ListMarketDataUseCase,
	articlesUseCase *content.ListArticlesUseCase,
	articleUseCase *content.GetArticleUseCase,
	explainUseCase *content.ExplainTopicUseCase,
) *ContentController {
	return &ContentController{
		marketUseCase:   marketUseCase,
		articlesUseCase: articlesUseCase,
		articleUseCase:  articleUseCase,
		explainUseCase:  explainUseCase,
	}
}

// MarketData handles GET /market-data requests.
func (c *ContentController) MarketData(ctx *gin.Context) {
	output, err := c.marketUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleContentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMarketDataListResponse(output.Indicators))
}

// ListArticles handles GET /educational-content requests.
func (c *ContentController) ListArticles(ctx *gin.Context) {
	output, err := c.articlesUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleContentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToArticleListResponse(output.Articles))
}

// GetArticle handles GET /educational-content/:id requests.
func (c *ContentController) GetArticle(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid article ID format",
			Code:  string(domainerror.ErrCodeInvalidArticleID),
		})
		return
	}

	output, err := c.articleUseCase.Execute(ctx.Request.Context(), content.GetArticleInput{ID: uint(id)})
	if err != nil {
		c.handleContentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToArticleResponse(output.Article))
}

// Explain handles POST /educational-content/explain requests.
func (c *ContentController) Explain(ctx *gin.Context) {
	var req dto.ExplainTopicRequest
	if !bindJSON(ctx, &req) {
		return
	}

	output, err := c.explainUseCase.Execute(ctx.Request.Context(), content.ExplainTopicInput{Topic: req.Topic})
	if err != nil {
		c.handleContentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExplainTopicResponse(output))
}

// handleContentError handles content errors and returns appropriate HTTP responses.
func (c *ContentController) handleContentError(ctx *gin.Context, err error) {
	var contentErr *domainerror.ContentError
	if errors.As(err, &contentErr) {
		ctx.JSON(c.getStatusCodeForContentError(contentErr.Code), dto.ErrorResponse{
			Error: contentErr.Message,
			Code:  string(contentErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForContentError maps content error codes to HTTP status codes.
func (c *ContentController) getStatusCodeForContentError(code domainerror.ContentErrorCode) int {
	switch code {
	case domainerror.ErrCodeArticleNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidArticleID, domainerror.ErrCodeInvalidTopic:
		return http.StatusBadRequest
	case domainerror.ErrCodeExplanationUnavailable, domainerror.ErrCodeContentUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
