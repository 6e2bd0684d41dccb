// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/dindin-invest/backend/internal/domain/entity"
)

// ChatRepository defines the interface for chat history persistence.
type ChatRepository interface {
	// Save stores a chat exchange.
	Save(ctx context.Context, message *entity.ChatMessage) error

	// FindRecent retrieves the latest exchanges, newest first.
	// A nil userID lists exchanges of every user.
	FindRecent(ctx context.Context, userID *string, limit int) ([]*entity.ChatMessage, error)
}
