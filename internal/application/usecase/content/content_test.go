package content

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dindin-invest/backend/internal/application/adapter"
	"github.com/dindin-invest/backend/internal/application/usecase/advisor"
	"github.com/dindin-invest/backend/internal/domain/entity"
	domainerror "github.com/dindin-invest/backend/internal/domain/error"
)

type memoryMarketRepo struct {
	indicators map[string]*entity.MarketIndicator
	updates    int
}

func newMemoryMarketRepo() *memoryMarketRepo {
	return &memoryMarketRepo{indicators: map[string]*entity.MarketIndicator{
		"CDI":   {ID: 1, Symbol: "CDI", Name: "CDI", Price: decimal.RequireFromString("13.65")},
		"SELIC": {ID: 2, Symbol: "SELIC", Name: "SELIC", Price: decimal.RequireFromString("13.25")},
		"BTC":   {ID: 3, Symbol: "BTC", Name: "Bitcoin", Price: decimal.RequireFromString("298450")},
	}}
}

func (r *memoryMarketRepo) FindAll(context.Context) ([]*entity.MarketIndicator, error) {
	out := make([]*entity.MarketIndicator, 0, len(r.indicators))
	for _, symbol := range []string{"BTC", "CDI", "SELIC"} {
		if i, ok := r.indicators[symbol]; ok {
			out = append(out, i)
		}
	}
	return out, nil
}

func (r *memoryMarketRepo) FindBySymbol(_ context.Context, symbol string) (*entity.MarketIndicator, error) {
	i, ok := r.indicators[symbol]
	if !ok {
		return nil, errors.New("record not found")
	}
	copied := *i
	return &copied, nil
}

func (r *memoryMarketRepo) Update(_ context.Context, indicator *entity.MarketIndicator) error {
	r.updates++
	r.indicators[indicator.Symbol] = indicator
	return nil
}

type fakeRateProvider struct {
	values map[int]float64
}

func (p *fakeRateProvider) Latest(_ context.Context, series int) (*adapter.RateObservation, error) {
	v, ok := p.values[series]
	if !ok {
		return nil, errors.New("HTTP 503: service unavailable")
	}
	return &adapter.RateObservation{Date: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC), Value: v}, nil
}

type memoryArticleRepo struct {
	articles []*entity.EducationalArticle
	err      error
}

func (r *memoryArticleRepo) FindAll(context.Context) ([]*entity.EducationalArticle, error) {
	return r.articles, r.err
}

func (r *memoryArticleRepo) FindByID(_ context.Context, id uint) (*entity.EducationalArticle, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, a := range r.articles {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, domainerror.ErrArticleNotFound
}

func seededArticles() *memoryArticleRepo {
	return &memoryArticleRepo{articles: []*entity.EducationalArticle{
		{ID: 1, Title: "O que são Criptomoedas?", Category: "cryptocurrency", Description: "Entenda como funcionam as moedas digitais.", Content: "Bitcoin é uma criptomoeda."},
		{ID: 2, Title: "Renda Fixa vs Variável", Category: "investments", Description: "Compare os diferentes tipos de investimentos.", Content: "Renda Fixa oferece retornos previsíveis."},
		{ID: 3, Title: "Diversificação de Carteira", Category: "portfolio", Description: "Aprenda a distribuir seus investimentos.", Content: "Diversificação é essencial."},
	}}
}

type fakeAdvisor struct {
	available   bool
	explanation *entity.TopicExplanation
	err         error
}

func (f *fakeAdvisor) RecommendPortfolio(context.Context, *adapter.PortfolioRequest) (*entity.RecommendationBundle, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeAdvisor) Chat(context.Context, string) (string, error) {
	return "", errors.New("not implemented")
}

func (f *fakeAdvisor) ExplainTopic(context.Context, string) (*entity.TopicExplanation, error) {
	return f.explanation, f.err
}

func (f *fakeAdvisor) IsAvailable() bool { return f.available }

func TestRefreshMarketDataUseCase_Execute(t *testing.T) {
	repo := newMemoryMarketRepo()
	provider := &fakeRateProvider{values: map[int]float64{SeriesSELIC: 14.25, SeriesCDI: 13.65}}
	uc := NewRefreshMarketDataUseCase(repo, provider, nil)

	out, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Updated) != 2 || repo.updates != 2 {
		t.Fatalf("expected two updates, got %d", len(out.Updated))
	}

	selic := repo.indicators["SELIC"]
	if !selic.Price.Equal(decimal.RequireFromString("14.25")) {
		t.Errorf("expected SELIC 14.25, got %s", selic.Price)
	}
	if !selic.Change.Equal(decimal.NewFromInt(1)) {
		t.Errorf("expected change 1, got %s", selic.Change)
	}
	if !selic.ChangePercent.Equal(decimal.RequireFromString("7.5472")) {
		t.Errorf("expected change percent 7.5472, got %s", selic.ChangePercent)
	}

	cdi := repo.indicators["CDI"]
	if !cdi.Change.IsZero() || !cdi.ChangePercent.IsZero() {
		t.Errorf("unchanged CDI should have zero change, got %s / %s", cdi.Change, cdi.ChangePercent)
	}
}

func TestRefreshMarketDataUseCase_PartialFailure(t *testing.T) {
	repo := newMemoryMarketRepo()
	provider := &fakeRateProvider{values: map[int]float64{SeriesCDI: 14}}
	uc := NewRefreshMarketDataUseCase(repo, provider, nil)

	out, err := uc.Execute(context.Background())
	if err == nil {
		t.Fatal("expected an error for the failing series")
	}
	if len(out.Updated) != 1 || out.Updated[0].Symbol != "CDI" {
		t.Errorf("expected CDI to be updated anyway, got %+v", out.Updated)
	}
}

func TestApplyQuote_ZeroPreviousPrice(t *testing.T) {
	i := &entity.MarketIndicator{Symbol: "NEW"}
	ApplyQuote(i, decimal.NewFromInt(10), time.Now())

	if !i.Change.Equal(decimal.NewFromInt(10)) || !i.ChangePercent.IsZero() {
		t.Errorf("unexpected change %s / %s", i.Change, i.ChangePercent)
	}
}

func TestListMarketDataUseCase_Execute(t *testing.T) {
	out, err := NewListMarketDataUseCase(newMemoryMarketRepo()).Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Indicators) != 3 {
		t.Errorf("expected 3 indicators, got %d", len(out.Indicators))
	}
}

func TestGetArticleUseCase_Execute(t *testing.T) {
	uc := NewGetArticleUseCase(seededArticles())

	out, err := uc.Execute(context.Background(), GetArticleInput{ID: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Article.Title != "Renda Fixa vs Variável" {
		t.Errorf("unexpected article %q", out.Article.Title)
	}

	tests := []struct {
		name     string
		id       uint
		wantCode domainerror.ContentErrorCode
	}{
		{"zero id", 0, domainerror.ErrCodeInvalidArticleID},
		{"missing article", 99, domainerror.ErrCodeArticleNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), GetArticleInput{ID: tt.id})
			var contentErr *domainerror.ContentError
			if !errors.As(err, &contentErr) || contentErr.Code != tt.wantCode {
				t.Errorf("expected code %s, got %v", tt.wantCode, err)
			}
		})
	}
}

func TestListArticlesUseCase_Execute(t *testing.T) {
	out, err := NewListArticlesUseCase(seededArticles()).Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Articles) != 3 {
		t.Errorf("expected 3 articles, got %d", len(out.Articles))
	}

	_, err = NewListArticlesUseCase(&memoryArticleRepo{err: errors.New("db down")}).Execute(context.Background())
	var contentErr *domainerror.ContentError
	if !errors.As(err, &contentErr) || contentErr.Code != domainerror.ErrCodeContentUnavailable {
		t.Errorf("expected content unavailable, got %v", err)
	}
}

func TestExplainTopicUseCase_Execute(t *testing.T) {
	generated := &entity.TopicExplanation{Title: "Juros compostos", Explanation: "Juros sobre juros."}

	tests := []struct {
		name        string
		advisor     *fakeAdvisor
		topic       string
		wantSource  ExplanationSource
		wantArticle uint
		wantReason  advisor.FailureCode
	}{
		{
			name:       "advisor explains",
			advisor:    &fakeAdvisor{available: true, explanation: generated},
			topic:      "juros compostos",
			wantSource: ExplanationSourceAI,
		},
		{
			name:        "advisor unavailable uses best article",
			advisor:     &fakeAdvisor{available: false},
			topic:       "diversificação da carteira",
			wantSource:  ExplanationSourceArticle,
			wantArticle: 3,
			wantReason:  advisor.ErrCodeAIServiceUnavailable,
		},
		{
			name:        "advisor error matches by category",
			advisor:     &fakeAdvisor{available: true, err: errors.New("invalid api key")},
			topic:       "cryptocurrency",
			wantSource:  ExplanationSourceArticle,
			wantArticle: 1,
			wantReason:  advisor.ErrCodeAIAuthError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewExplainTopicUseCase(tt.advisor, seededArticles(), time.Second)

			out, err := uc.Execute(context.Background(), ExplainTopicInput{Topic: tt.topic})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.Source != tt.wantSource {
				t.Errorf("expected source %s, got %s", tt.wantSource, out.Source)
			}
			if out.ArticleID != tt.wantArticle {
				t.Errorf("expected article %d, got %d", tt.wantArticle, out.ArticleID)
			}
			if out.Explanation == nil || out.Explanation.Explanation == "" {
				t.Error("expected an explanation")
			}
			if tt.wantReason != "" && (out.FallbackReason == nil || out.FallbackReason.Code != tt.wantReason) {
				t.Errorf("expected reason %s, got %+v", tt.wantReason, out.FallbackReason)
			}
		})
	}
}

func TestExplainTopicUseCase_Errors(t *testing.T) {
	uc := NewExplainTopicUseCase(&fakeAdvisor{available: false}, seededArticles(), time.Second)

	_, err := uc.Execute(context.Background(), ExplainTopicInput{Topic: "  "})
	if !errors.Is(err, domainerror.ErrInvalidTopic) {
		t.Errorf("expected ErrInvalidTopic, got %v", err)
	}

	_, err = uc.Execute(context.Background(), ExplainTopicInput{Topic: "opções binárias"})
	var contentErr *domainerror.ContentError
	if !errors.As(err, &contentErr) || contentErr.Code != domainerror.ErrCodeExplanationUnavailable {
		t.Errorf("expected explanation unavailable, got %v", err)
	}
	if !errors.Is(err, domainerror.ErrExplanationUnavailable) {
		t.Errorf("expected ErrExplanationUnavailable, got %v", err)
	}
}
