package model

import (
	"time"

	"github.com/dindin-invest/backend/internal/domain/entity"
)

// EducationalContentModel represents the educational_content table in the database.
type EducationalContentModel struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	Title       string    `gorm:"type:varchar(200);not null"`
	Description string    `gorm:"type:text;not null"`
	Content     string    `gorm:"type:text;not null"`
	Category    string    `gorm:"type:varchar(50);not null;index"`
	ImageURL    string    `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for the EducationalContentModel.
func (EducationalContentModel) TableName() string {
	return "educational_content"
}

// ToEntity converts an EducationalContentModel to a domain EducationalArticle entity.
func (m *EducationalContentModel) ToEntity() *entity.EducationalArticle {
	return &entity.EducationalArticle{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Content:     m.Content,
		Category:    m.Category,
		ImageURL:    m.ImageURL,
		CreatedAt:   m.CreatedAt,
	}
}

// EducationalContentFromEntity creates an EducationalContentModel from a domain EducationalArticle entity.
func EducationalContentFromEntity(article *entity.EducationalArticle) *EducationalContentModel {
	return &EducationalContentModel{
		ID:          article.ID,
		Title:       article.Title,
		Description: article.Description,
		Content:     article.Content,
		Category:    article.Category,
		ImageURL:    article.ImageURL,
		CreatedAt:   article.CreatedAt,
	}
}
