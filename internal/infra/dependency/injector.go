// Package dependency provides dependency injection for the application.
package dependency

import (
	"log/slog"
	"strings"

	"github.com/redis/go-redis/v9"
	"google.golang.org/api/option"
	"gorm.io/gorm"

	"github.com/dindin-invest/backend/config"
	"github.com/dindin-invest/backend/internal/application/adapter"
	"github.com/dindin-invest/backend/internal/application/usecase/calculator"
	"github.com/dindin-invest/backend/internal/application/usecase/chat"
	"github.com/dindin-invest/backend/internal/application/usecase/content"
	"github.com/dindin-invest/backend/internal/application/usecase/recommendation"
	"github.com/dindin-invest/backend/internal/infra/server/router"
	"github.com/dindin-invest/backend/internal/integration/adapters"
	"github.com/dindin-invest/backend/internal/integration/cache"
	"github.com/dindin-invest/backend/internal/integration/entrypoint/controller"
	"github.com/dindin-invest/backend/internal/integration/entrypoint/middleware"
	"github.com/dindin-invest/backend/internal/integration/persistence"
	"github.com/dindin-invest/backend/internal/integration/scheduler"
)

// Injector holds all application dependencies.
type Injector struct {
	Config    *config.Config
	DB        *gorm.DB
	Router    *router.Router
	Advisor   adapter.AdvisorService
	Scheduler *scheduler.Scheduler
	// RefreshJob is nil when the market refresh is disabled.
	RefreshJob *scheduler.MarketRefreshJob
}

// NewInjector creates a new dependency injector with all dependencies wired.
// A nil redisClient selects the in-process recommendation cache and a nil
// dbHealthChecker reports the database as disconnected.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, dbHealthChecker func() bool) *Injector {
	// Create repositories
	marketRepo := persistence.NewMarketDataRepository(db)
	articleRepo := persistence.NewArticleRepository(db)
	chatRepo := persistence.NewChatRepository(db)

	// Create adapters/services
	advisorService := NewAdvisor(cfg.AI)

	var recommendationCache adapter.RecommendationCache
	if redisClient != nil {
		recommendationCache = cache.NewRedisRecommendationCache(redisClient)
	} else {
		recommendationCache = cache.NewMemoryRecommendationCache(cfg.Redis.MemoryCacheSize, cfg.Redis.RecommendationCacheTTL)
	}

	// Create calculator use cases
	compoundUseCase := calculator.NewCompoundInterestUseCase()
	retirementUseCase := calculator.NewRetirementUseCase()
	compareUseCase := calculator.NewCompareInvestmentsUseCase()
	productsUseCase := calculator.NewListProductsUseCase()

	// Create recommendation use cases
	personalizedUseCase := recommendation.NewGeneratePersonalizedUseCase(
		advisorService,
		recommendationCache,
		cfg.Redis.RecommendationCacheTTL,
		cfg.AI.Timeout,
	)
	allocationUseCase := recommendation.NewSuggestAllocationUseCase()
	profilesUseCase := recommendation.NewListProfilesUseCase()

	// Create chat use cases
	sendMessageUseCase := chat.NewSendMessageUseCase(advisorService, chatRepo, cfg.AI.Timeout)
	listHistoryUseCase := chat.NewListHistoryUseCase(chatRepo)

	// Create content use cases
	listMarketDataUseCase := content.NewListMarketDataUseCase(marketRepo)
	listArticlesUseCase := content.NewListArticlesUseCase(articleRepo)
	getArticleUseCase := content.NewGetArticleUseCase(articleRepo)
	explainTopicUseCase := content.NewExplainTopicUseCase(advisorService, articleRepo, cfg.AI.Timeout)

	// Create controllers
	healthController := controller.NewHealthController(dbHealthChecker, advisorService.IsAvailable)
	calculatorController := controller.NewCalculatorController(compoundUseCase, retirementUseCase, compareUseCase, productsUseCase)
	recommendationController := controller.NewRecommendationController(personalizedUseCase, allocationUseCase, profilesUseCase)
	chatController := controller.NewChatController(sendMessageUseCase, listHistoryUseCase)
	contentController := controller.NewContentController(listMarketDataUseCase, listArticlesUseCase, getArticleUseCase, explainTopicUseCase)

	// Create middleware
	aiRateLimiter := middleware.NewRateLimiter(cfg.RateLimit.MaxRequests, cfg.RateLimit.Window, cfg.RateLimit.Enabled)

	// Create router
	r := router.NewRouter(
		healthController,
		calculatorController,
		recommendationController,
		chatController,
		contentController,
		aiRateLimiter,
	)

	// Create background jobs
	sched := scheduler.New()
	var refreshJob *scheduler.MarketRefreshJob
	if cfg.Market.RefreshEnabled {
		rateProvider := adapters.NewBCBRateProvider(cfg.Market.BCBBaseURL, cfg.Market.BCBTimeout)
		refreshUseCase := content.NewRefreshMarketDataUseCase(marketRepo, rateProvider, nil)
		refreshJob = scheduler.NewMarketRefreshJob(refreshUseCase, cfg.Market.BCBTimeout*3)
		if err := sched.AddJob(cfg.Market.RefreshSchedule, refreshJob); err != nil {
			slog.Error("Invalid market refresh schedule, job disabled",
				"schedule", cfg.Market.RefreshSchedule,
				"error", err,
			)
			refreshJob = nil
		}
	}

	return &Injector{
		Config:     cfg,
		DB:         db,
		Router:     r,
		Advisor:    advisorService,
		Scheduler:  sched,
		RefreshJob: refreshJob,
	}
}

// NewAdvisor selects the advisor implementation named by cfg.Provider.
// Unknown providers fall back to Gemini.
func NewAdvisor(cfg config.AIConfig, opts ...option.ClientOption) adapter.AdvisorService {
	temperature := float32(cfg.Temperature)

	switch strings.ToLower(cfg.Provider) {
	case config.AIProviderOpenAI:
		return adapters.NewOpenAIAdvisor(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel, temperature, cfg.Timeout)
	case config.AIProviderGemini:
	default:
		slog.Warn("Unknown AI provider, using gemini", "provider", cfg.Provider)
	}
	return adapters.NewGeminiAdvisor(cfg.GeminiAPIKey, cfg.GeminiModel, temperature, opts...)
}
