package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/dindin-invest/backend/internal/application/adapter"
	"github.com/dindin-invest/backend/internal/domain/entity"
	"github.com/dindin-invest/backend/internal/integration/persistence/model"
)

// chatRepository implements the adapter.ChatRepository interface.
type chatRepository struct {
	db *gorm.DB
}

// NewChatRepository creates a new chat repository instance.
func NewChatRepository(db *gorm.DB) adapter.ChatRepository {
	return &chatRepository{
		db: db,
	}
}

// Save stores a chat exchange.
func (r *chatRepository) Save(ctx context.Context, message *entity.ChatMessage) error {
	return r.db.WithContext(ctx).Create(model.ChatMessageFromEntity(message)).Error
}

// FindRecent retrieves the latest exchanges, newest first.
func (r *chatRepository) FindRecent(ctx context.Context, userID *string, limit int) ([]*entity.ChatMessage, error) {
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var models []model.ChatMessageModel
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	messages := make([]*entity.ChatMessage, len(models))
	for i, m := range models {
		messages[i] = m.ToEntity()
	}
	return messages, nil
}
