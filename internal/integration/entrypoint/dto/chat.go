package dto

import (
	"time"

	"github.com/dindin-invest/backend/internal/domain/entity"
)

// ChatRequest represents a message sent to the assistant.
type ChatRequest struct {
	Message string  `json:"message" binding:"required"`
	UserID  *string `json:"user_id,omitempty"`
}

// ChatMessageResponse represents a stored chat exchange.
type ChatMessageResponse struct {
	ID        string    `json:"id"`
	UserID    *string   `json:"user_id,omitempty"`
	Message   string    `json:"message"`
	Response  string    `json:"response"`
	Source    string    `json:"source"`
	CreatedAt time.Time `json:"created_at"`
}

// ChatResponse represents the assistant answer.
type ChatResponse struct {
	ChatMessageResponse
	FallbackReason *FallbackReasonResponse `json:"fallback_reason,omitempty"`
}

// ChatHistoryResponse lists stored exchanges.
type ChatHistoryResponse struct {
	Messages []ChatMessageResponse `json:"messages"`
}

// ToChatMessageResponse converts a chat message to the response DTO.
func ToChatMessageResponse(m *entity.ChatMessage) ChatMessageResponse {
	return ChatMessageResponse{
		ID:        m.ID.String(),
		UserID:    m.UserID,
		Message:   m.Message,
		Response:  m.Response,
		Source:    string(m.Source),
		CreatedAt: m.CreatedAt,
	}
}

// ToChatHistoryResponse converts chat messages to the response DTO.
func ToChatHistoryResponse(messages []*entity.ChatMessage) ChatHistoryResponse {
	out := make([]ChatMessageResponse, len(messages))
	for i, m := range messages {
		out[i] = ToChatMessageResponse(m)
	}
	return ChatHistoryResponse{Messages: out}
}
