package content

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
	"github.com/dindin-invest/backend/internal/domain/textmatch"
)

const (
	// MaxTopicLength is the largest accepted topic, in characters.
	MaxTopicLength = 200

	// DefaultAdvisorTimeout bounds a single advisor call.
	DefaultAdvisorTimeout = 20 * time.Second
)

// ExplanationSource tells who produced an explanation.
type ExplanationSource string

const (
	ExplanationSourceAI      ExplanationSource = "ai"
	ExplanationSourceArticle ExplanationSource = "article"
)

// ExplainTopicInput represents the input for a topic explanation.
type ExplainTopicInput struct {
	Topic string
}

// ExplainTopicOutput represents a topic explanation.
type ExplainTopicOutput struct {
	Explanation    *entity.TopicExplanation
	Source         ExplanationSource
	ArticleID      uint
	FallbackReason *advisor.ProcessingError
}

// ExplainTopicUseCase explains a financial topic, falling back to the closest article.
type ExplainTopicUseCase struct {
	advisorService adapter.AdvisorService
	articleRepo    adapter.ArticleRepository
	timeout        time.Duration
}

// NewExplainTopicUseCase creates a new ExplainTopicUseCase instance.
func NewExplainTopicUseCase(advisorService adapter.AdvisorService, articleRepo adapter.ArticleRepository, timeout time.Duration) *ExplainTopicUseCase {
	if timeout <= 0 {
		timeout = DefaultAdvisorTimeout
	}
	return &ExplainTopicUseCase{
		advisorService: advisorService,
		articleRepo:    articleRepo,
		timeout:        timeout,
	}
}

// Execute produces the explanation.
func (uc *ExplainTopicUseCase) Execute(ctx context.Context, input ExplainTopicInput) (*ExplainTopicOutput, error) {
	topic := strings.TrimSpace(input.Topic)
	if topic == "" || utf8.RuneCountInString(topic) > MaxTopicLength {
		return nil, domainerror.NewContentError(
			domainerror.ErrCodeInvalidTopic,
			fmt.Sprintf("topic must have between 1 and %d characters", MaxTopicLength),
			domainerror.ErrInvalidTopic,
		)
	}

	explanation, err := uc.ask(ctx, topic)
	if err == nil {
		return &ExplainTopicOutput{Explanation: explanation, Source: ExplanationSourceAI}, nil
	}

	reason := advisor.Classify(err)
	slog.WarnContext(ctx, "advisor explanation failed, looking for an article", "code", reason.Code, "error", err)

	articles, err := uc.articleRepo.FindAll(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load articles for explanation fallback", "error", err)
		return nil, unavailable(err)
	}

	article := BestMatchingArticle(topic, articles)
	if article == nil {
		return nil, unavailable(nil)
	}

	return &ExplainTopicOutput{
		Explanation:    explanationFromArticle(article),
		Source:         ExplanationSourceArticle,
		ArticleID:      article.ID,
		FallbackReason: reason,
	}, nil
}

func (uc *ExplainTopicUseCase) ask(ctx context.Context, topic string) (*entity.TopicExplanation, error) {
	if uc.advisorService == nil || !uc.advisorService.IsAvailable() {
		return nil, advisor.ErrAdvisorUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	explanation, err := uc.advisorService.ExplainTopic(ctx, topic)
	if err != nil {
		return nil, err
	}
	if explanation == nil || strings.TrimSpace(explanation.Explanation) == "" {
		return nil, fmt.Errorf("advisor returned an empty response")
	}
	if explanation.Title == "" {
		explanation.Title = topic
	}
	return explanation, nil
}

// BestMatchingArticle returns the article sharing most words with topic, or nil
// when none shares any. Ties keep the first article.
func BestMatchingArticle(topic string, articles []*entity.EducationalArticle) *entity.EducationalArticle {
	var best *entity.EducationalArticle
	bestScore := 0

	for _, a := range articles {
		score := textmatch.Score(topic, a.Title, a.Category, a.Description)
		if score > bestScore {
			best = a
			bestScore = score
		}
	}
	return best
}

func explanationFromArticle(a *entity.EducationalArticle) *entity.TopicExplanation {
	return &entity.TopicExplanation{
		Title:            a.Title,
		Explanation:      a.Content,
		PracticalExample: a.Description,
		Tips:             []string{"Use as calculadoras para simular cenários antes de investir"},
		Warnings:         []string{"Conteúdo educativo, não constitui recomendação de investimento"},
	}
}

func unavailable(err error) error {
	if err == nil {
		err = domainerror.ErrExplanationUnavailable
	}
	return domainerror.NewContentError(
		domainerror.ErrCodeExplanationUnavailable,
		"no explanation available for this topic",
		err,
	)
}
