package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/dindin-invest/backend/internal/application/adapter"
	"github.com/dindin-invest/backend/internal/domain/entity"
	domainerror "github.com/dindin-invest/backend/internal/domain/error"
	"github.com/dindin-invest/backend/internal/integration/persistence/model"
)

// articleRepository implements the adapter.ArticleRepository interface.
type articleRepository struct {
	db *gorm.DB
}

// NewArticleRepository creates a new article repository instance.
func NewArticleRepository(db *gorm.DB) adapter.ArticleRepository {
	return &articleRepository{
		db: db,
	}
}

// FindAll retrieves every article ordered by ID.
func (r *articleRepository) FindAll(ctx context.Context) ([]*entity.EducationalArticle, error) {
	var models []model.EducationalContentModel
	result := r.db.WithContext(ctx).Order("id ASC").Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	articles := make([]*entity.EducationalArticle, len(models))
	for i, m := range models {
		articles[i] = m.ToEntity()
	}
	return articles, nil
}

// FindByID retrieves an article by its ID.
func (r *articleRepository) FindByID(ctx context.Context, id uint) (*entity.EducationalArticle, error) {
	var m model.EducationalContentModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrArticleNotFound
		}
		return nil, result.Error
	}
	return m.ToEntity(), nil
}
