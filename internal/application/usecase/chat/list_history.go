package chat

import (
	"context"
	"fmt"

	"github.com/dindin-invest/backend/internal/application/adapter"
	"github.com/dindin-invest/backend/internal/domain/entity"
	domainerror "github.com/dindin-invest/backend/internal/domain/error"
)

const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 100
)

// ListHistoryInput represents the input for listing chat history.
type ListHistoryInput struct {
	UserID *string
	Limit  int // 0 means DefaultHistoryLimit
}

// ListHistoryOutput represents the stored exchanges, newest first.
type ListHistoryOutput struct {
	Messages []*entity.ChatMessage
}

// ListHistoryUseCase lists stored chat exchanges.
type ListHistoryUseCase struct {
	chatRepo adapter.ChatRepository
}

// NewListHistoryUseCase creates a new ListHistoryUseCase instance.
func NewListHistoryUseCase(chatRepo adapter.ChatRepository) *ListHistoryUseCase {
	return &ListHistoryUseCase{chatRepo: chatRepo}
}

// Execute lists the history.
func (uc *ListHistoryUseCase) Execute(ctx context.Context, input ListHistoryInput) (*ListHistoryOutput, error) {
	limit := input.Limit
	if limit == 0 {
		limit = DefaultHistoryLimit
	}
	if limit < 0 || limit > MaxHistoryLimit {
		return nil, domainerror.NewChatError(
			domainerror.ErrCodeInvalidLimit,
			fmt.Sprintf("limit must be between 1 and %d", MaxHistoryLimit),
			nil,
		)
	}

	messages, err := uc.chatRepo.FindRecent(ctx, input.UserID, limit)
	if err != nil {
		return nil, domainerror.NewChatError(
			domainerror.ErrCodeHistoryUnavailable,
			"failed to load chat history",
			err,
		)
	}

	return &ListHistoryOutput{Messages: messages}, nil
}
