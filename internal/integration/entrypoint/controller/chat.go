package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dindin-invest/backend/internal/application/usecase/chat"
	domainerror "github.com/dindin-invest/backend/internal/domain/error"
	"github.com/dindin-invest/backend/internal/integration/entrypoint/dto"
)

// ChatController handles the assistant chat endpoints.
type ChatController struct {
	sendUseCase    *chat.SendMessageUseCase
	historyUseCase *chat.ListHistoryUseCase
}

// NewChatController creates a new chat controller instance.
func NewChatController(sendUseCase *chat.SendMessageUseCase, historyUseCase *chat.ListHistoryUseCase) *ChatController {
	return &ChatController{
		sendUseCase:    sendUseCase,
		historyUseCase: historyUseCase,
	}
}

// Send handles POST /chat requests.
func (c *ChatController) Send(ctx *gin.Context) {
	var req dto.ChatRequest
	if !bindJSON(ctx, &req) {
		return
	}

	output, err := c.sendUseCase.Execute(ctx.Request.Context(), chat.SendMessageInput{
		UserID:  req.UserID,
		Message: req.Message,
	})
	if err != nil {
		c.handleChatError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ChatResponse{
		ChatMessageResponse: dto.ToChatMessageResponse(output.Message),
		FallbackReason:      dto.ToFallbackReasonResponse(output.FallbackReason),
	})
}

// History handles GET /chat/history requests.
func (c *ChatController) History(ctx *gin.Context) {
	input := chat.ListHistoryInput{}

	if userID := ctx.Query("user_id"); userID != "" {
		input.UserID = &userID
	}

	if raw := ctx.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "limit must be an integer",
				Code:  string(domainerror.ErrCodeInvalidLimit),
			})
			return
		}
		input.Limit = limit
	}

	output, err := c.historyUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleChatError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToChatHistoryResponse(output.Messages))
}

// handleChatError handles chat errors and returns appropriate HTTP responses.
func (c *ChatController) handleChatError(ctx *gin.Context, err error) {
	var chatErr *domainerror.ChatError
	if errors.As(err, &chatErr) {
		ctx.JSON(c.getStatusCodeForChatError(chatErr.Code), dto.ErrorResponse{
			Error: chatErr.Message,
			Code:  string(chatErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForChatError maps chat error codes to HTTP status codes.
func (c *ChatController) getStatusCodeForChatError(code domainerror.ChatErrorCode) int {
	switch code {
	case domainerror.ErrCodeEmptyMessage,
		domainerror.ErrCodeMessageTooLong,
		domainerror.ErrCodeInvalidLimit:
		return http.StatusBadRequest
	case domainerror.ErrCodeHistoryUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
