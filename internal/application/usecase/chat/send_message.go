// Package chat contains the assistant chat use cases.
package chat

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dindin-invest/backend/internal/application/adapter"
	"github.com/dindin-invest/backend/internal/application/usecase/advisor"
	"github.com/dindin-invest/backend/internal/domain/entity"
	domainerror "github.com/dindin-invest/backend/internal/domain/error"
)

const (
	// MaxMessageLength is the largest accepted message, in characters.
	MaxMessageLength = 2000

	// DefaultAdvisorTimeout bounds a single advisor call.
	DefaultAdvisorTimeout = 20 * time.Second
)

// SendMessageInput represents the input for a chat message.
type SendMessageInput struct {
	UserID  *string
	Message string
}

// SendMessageOutput represents the stored exchange.
type SendMessageOutput struct {
	Message        *entity.ChatMessage
	FallbackReason *advisor.ProcessingError
}

// SendMessageUseCase answers a chat message and stores the exchange.
type SendMessageUseCase struct {
	advisorService adapter.AdvisorService
	chatRepo       adapter.ChatRepository
	timeout        time.Duration
}

// NewSendMessageUseCase creates a new SendMessageUseCase instance.
func NewSendMessageUseCase(advisorService adapter.AdvisorService, chatRepo adapter.ChatRepository, timeout time.Duration) *SendMessageUseCase {
	if timeout <= 0 {
		timeout = DefaultAdvisorTimeout
	}
	return &SendMessageUseCase{
		advisorService: advisorService,
		chatRepo:       chatRepo,
		timeout:        timeout,
	}
}

// Execute answers the message, with the canned responder as fallback.
func (uc *SendMessageUseCase) Execute(ctx context.Context, input SendMessageInput) (*SendMessageOutput, error) {
	text := strings.TrimSpace(input.Message)
	if text == "" {
		return nil, domainerror.NewChatError(
			domainerror.ErrCodeEmptyMessage,
			"message is required",
			domainerror.ErrEmptyMessage,
		)
	}
	if utf8.RuneCountInString(text) > MaxMessageLength {
		return nil, domainerror.NewChatError(
			domainerror.ErrCodeMessageTooLong,
			fmt.Sprintf("message must have at most %d characters", MaxMessageLength),
			domainerror.ErrMessageTooLong,
		)
	}

	var reason *advisor.ProcessingError
	source := entity.ChatSourceAI

	response, err := uc.ask(ctx, text)
	if err != nil {
		reason = advisor.Classify(err)
		slog.WarnContext(ctx, "advisor chat failed, using fallback", "code", reason.Code, "error", err)
		response = FallbackResponse(text)
		source = entity.ChatSourceFallback
	}

	msg := entity.NewChatMessage(input.UserID, text, response, source)
	if err := uc.chatRepo.Save(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to save chat message: %w", err)
	}

	return &SendMessageOutput{
		Message:        msg,
		FallbackReason: reason,
	}, nil
}

func (uc *SendMessageUseCase) ask(ctx context.Context, text string) (string, error) {
	if uc.advisorService == nil || !uc.advisorService.IsAvailable() {
		return "", advisor.ErrAdvisorUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	response, err := uc.advisorService.Chat(ctx, text)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(response) == "" {
		return "", fmt.Errorf("advisor returned an empty response")
	}
	return strings.TrimSpace(response), nil
}
