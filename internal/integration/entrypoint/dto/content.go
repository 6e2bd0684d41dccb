package dto

import (
	"time"

	"github.com/dindin-invest/backend/internal/application/usecase/content"
	"github.com/dindin-invest/backend/internal/domain/entity"
)

// MarketDataResponse represents a market indicator. Decimals are serialised as strings.
type MarketDataResponse struct {
	Symbol        string    `json:"symbol"`
	Name          string    `json:"name"`
	Price         string    `json:"price"`
	Change        string    `json:"change"`
	ChangePercent string    `json:"change_percent"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// MarketDataListResponse lists market indicators.
type MarketDataListResponse struct {
	Indicators []MarketDataResponse `json:"indicators"`
}

// ToMarketDataListResponse converts indicators to the response DTO.
func ToMarketDataListResponse(indicators []*entity.MarketIndicator) MarketDataListResponse {
	out := make([]MarketDataResponse, len(indicators))
	for i, ind := range indicators {
		out[i] = MarketDataResponse{
			Symbol:        ind.Symbol,
			Name:          ind.Name,
			Price:         ind.Price.String(),
			Change:        ind.Change.String(),
			ChangePercent: ind.ChangePercent.String(),
			UpdatedAt:     ind.UpdatedAt,
		}
	}
	return MarketDataListResponse{Indicators: out}
}

// ArticleResponse represents an educational article.
type ArticleResponse struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	Category    string    `json:"category"`
	ImageURL    string    `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ArticleListResponse lists educational articles.
type ArticleListResponse struct {
	Articles []ArticleResponse `json:"articles"`
}

// ToArticleResponse converts an article to the response DTO.
func ToArticleResponse(a *entity.EducationalArticle) ArticleResponse {
	return ArticleResponse{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		Content:     a.Content,
		Category:    a.Category,
		ImageURL:    a.ImageURL,
		CreatedAt:   a.CreatedAt,
	}
}

// ToArticleListResponse converts articles to the response DTO.
func ToArticleListResponse(articles []*entity.EducationalArticle) ArticleListResponse {
	out := make([]ArticleResponse, len(articles))
	for i, a := range articles {
		out[i] = ToArticleResponse(a)
	}
	return ArticleListResponse{Articles: out}
}

// ExplainTopicRequest represents a topic explanation request.
type ExplainTopicRequest struct {
	Topic string `json:"topic" binding:"required"`
}

// ExplainTopicResponse represents a topic explanation.
type ExplainTopicResponse struct {
	Title            string                  `json:"title"`
	Explanation      string                  `json:"explanation"`
	PracticalExample string                  `json:"practical_example"`
	Tips             []string                `json:"tips"`
	Warnings         []string                `json:"warnings"`
	Source           string                  `json:"source"`
	ArticleID        uint                    `json:"article_id,omitempty"`
	FallbackReason   *FallbackReasonResponse `json:"fallback_reason,omitempty"`
}

// ToExplainTopicResponse converts the use case output to the response DTO.
func ToExplainTopicResponse(out *content.ExplainTopicOutput) ExplainTopicResponse {
	e := out.Explanation
	return ExplainTopicResponse{
		Title:            e.Title,
		Explanation:      e.Explanation,
		PracticalExample: e.PracticalExample,
		Tips:             nonNil(e.Tips),
		Warnings:         nonNil(e.Warnings),
		Source:           string(out.Source),
		ArticleID:        out.ArticleID,
		FallbackReason:   ToFallbackReasonResponse(out.FallbackReason),
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
