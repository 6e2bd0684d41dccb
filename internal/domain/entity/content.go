package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MarketIndicator is a snapshot of a market index or asset price.
type MarketIndicator struct {
	ID            uint
	Symbol        string
	Name          string
	Price         decimal.Decimal
	Change        decimal.Decimal
	ChangePercent decimal.Decimal
	UpdatedAt     time.Time
}

// EducationalArticle is a piece of static learning content.
type EducationalArticle struct {
	ID          uint
	Title       string
	Description string
	Content     string
	Category    string
	ImageURL    string
	CreatedAt   time.Time
}

// TopicExplanation is a didactic explanation of a financial topic.
type TopicExplanation struct {
	Title            string
	Explanation      string
	PracticalExample string
	Tips             []string
	Warnings         []string
}

// ChatSource tells who produced a chat response.
type ChatSource string

const (
	ChatSourceAI       ChatSource = "ai"
	ChatSourceFallback ChatSource = "fallback"
)

// ChatMessage is a stored exchange with the assistant.
type ChatMessage struct {
	ID        uuid.UUID
	UserID    *string
	Message   string
	Response  string
	Source    ChatSource
	CreatedAt time.Time
}

// NewChatMessage creates a new ChatMessage with a fresh ID.
func NewChatMessage(userID *string, message, response string, source ChatSource) *ChatMessage {
	return &ChatMessage{
		ID:        uuid.New(),
		UserID:    userID,
		Message:   message,
		Response:  response,
		Source:    source,
		CreatedAt: time.Now().UTC(),
	}
}
