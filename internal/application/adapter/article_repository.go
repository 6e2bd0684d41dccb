// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/dindin-invest/backend/internal/domain/entity"
)

// ArticleRepository defines the interface for educational content persistence.
type ArticleRepository interface {
	// FindAll retrieves every article ordered by ID.
	FindAll(ctx context.Context) ([]*entity.EducationalArticle, error)

	// FindByID retrieves an article by its ID.
	// Returns domainerror.ErrArticleNotFound when it does not exist.
	FindByID(ctx context.Context, id uint) (*entity.EducationalArticle, error)
}
