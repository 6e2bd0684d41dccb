package content

import (
	"context"
	"errors"

	"github.com/dindin-invest/backend/internal/application/adapter"
	"github.com/dindin-invest/backend/internal/domain/entity"
	domainerror "github.com/dindin-invest/backend/internal/domain/error"
)

// ListArticlesOutput represents the educational articles.
type ListArticlesOutput struct {
	Articles []*entity.EducationalArticle
}

// ListArticlesUseCase lists the educational articles.
type ListArticlesUseCase struct {
	articleRepo adapter.ArticleRepository
}

// NewListArticlesUseCase creates a new ListArticlesUseCase instance.
func NewListArticlesUseCase(articleRepo adapter.ArticleRepository) *ListArticlesUseCase {
	return &ListArticlesUseCase{articleRepo: articleRepo}
}

// Execute lists the articles.
func (uc *ListArticlesUseCase) Execute(ctx context.Context) (*ListArticlesOutput, error) {
	articles, err := uc.articleRepo.FindAll(ctx)
	if err != nil {
		return nil, domainerror.NewContentError(
			domainerror.ErrCodeContentUnavailable,
			"failed to load educational content",
			err,
		)
	}
	return &ListArticlesOutput{Articles: articles}, nil
}

// GetArticleInput represents the input for fetching an article.
type GetArticleInput struct {
	ID uint
}

// GetArticleOutput represents a single article.
type GetArticleOutput struct {
	Article *entity.EducationalArticle
}

// GetArticleUseCase fetches an article by ID.
type GetArticleUseCase struct {
	articleRepo adapter.ArticleRepository
}

// NewGetArticleUseCase creates a new GetArticleUseCase instance.
func NewGetArticleUseCase(articleRepo adapter.ArticleRepository) *GetArticleUseCase {
	return &GetArticleUseCase{articleRepo: articleRepo}
}

// Execute fetches the article.
func (uc *GetArticleUseCase) Execute(ctx context.Context, input GetArticleInput) (*GetArticleOutput, error) {
	if input.ID == 0 {
		return nil, domainerror.NewContentError(
			domainerror.ErrCodeInvalidArticleID,
			"article id must be a positive integer",
			nil,
		)
	}

	article, err := uc.articleRepo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, domainerror.ErrArticleNotFound) {
			return nil, domainerror.NewContentError(
				domainerror.ErrCodeArticleNotFound,
				"article not found",
				domainerror.ErrArticleNotFound,
			)
		}
		return nil, domainerror.NewContentError(
			domainerror.ErrCodeContentUnavailable,
			"failed to load article",
			err,
		)
	}

	return &GetArticleOutput{Article: article}, nil
}
