package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/dindin-invest/backend/internal/domain/entity"
)

// ChatMessageModel represents the chat_messages table in the database.
type ChatMessageModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    *string   `gorm:"type:varchar(100);index"`
	Message   string    `gorm:"type:text;not null"`
	Response  string    `gorm:"type:text;not null"`
	Source    string    `gorm:"type:varchar(20);not null"`
	CreatedAt time.Time `gorm:"not null;index"`
}

// TableName returns the table name for the ChatMessageModel.
func (ChatMessageModel) TableName() string {
	return "chat_messages"
}

// ToEntity converts a ChatMessageModel to a domain ChatMessage entity.
func (m *ChatMessageModel) ToEntity() *entity.ChatMessage {
	return &entity.ChatMessage{
		ID:        m.ID,
		UserID:    m.UserID,
		Message:   m.Message,
		Response:  m.Response,
		Source:    entity.ChatSource(m.Source),
		CreatedAt: m.CreatedAt,
	}
}

// ChatMessageFromEntity creates a ChatMessageModel from a domain ChatMessage entity.
func ChatMessageFromEntity(msg *entity.ChatMessage) *ChatMessageModel {
	return &ChatMessageModel{
		ID:        msg.ID,
		UserID:    msg.UserID,
		Message:   msg.Message,
		Response:  msg.Response,
		Source:    string(msg.Source),
		CreatedAt: msg.CreatedAt,
	}
}

// AllModels lists every model migrated at startup.
func AllModels() []interface{} {
	return []interface{}{
		&MarketDataModel{},
		&EducationalContentModel{},
		&ChatMessageModel{},
	}
}
