// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/dindin-invest/backend/config"
	"github.com/dindin-invest/backend/internal/infra/dependency"
	"github.com/dindin-invest/backend/internal/integration/persistence"
	"github.com/dindin-invest/backend/internal/integration/persistence/model"
	"github.com/dindin-invest/backend/test/integration/mock"
)

const openAIPath = "/v1/chat/completions"

// TestContext holds the test state for each scenario.
type TestContext struct {
	// HTTP
	server       *httptest.Server
	response     *http.Response
	responseBody []byte

	// Request building
	requestHeaders map[string]string

	// Dependencies
	cfg      *config.Config
	db       *mock.Db
	redis    *redis.Client
	injector *dependency.Injector
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// externalAPI answers the OpenAI and Banco Central calls of every scenario.
var externalAPI *mock.ApiMock

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)

		externalAPI = mock.NewApiServer()
		externalAPI.Start()
	})

	ctx.AfterSuite(func() {
		externalAPI.Close()
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc := &TestContext{
			requestHeaders: make(map[string]string),
			cfg:            testConfig(externalAPI.GetUrl()),
			db:             mock.NewDb(model.AllModels()...),
			redis:          mock.NewRedis(),
		}

		externalAPI.Reset()
		if err := tc.db.ClearDB(); err != nil {
			return ctx, fmt.Errorf("failed to clear database: %w", err)
		}
		if err := persistence.Seed(ctx, tc.db.DbConn); err != nil {
			return ctx, fmt.Errorf("failed to seed database: %w", err)
		}
		if err := mock.ClearRedis(tc.redis); err != nil {
			return ctx, fmt.Errorf("failed to clear redis: %w", err)
		}

		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc != nil && tc.server != nil {
			tc.server.Close()
		}
		return ctx, nil
	})

	registerAPISteps(ctx)
	registerResponseSteps(ctx)
	registerAdvisorSteps(ctx)
	registerMarketSteps(ctx)
	registerStorageSteps(ctx)
}

// testConfig points the advisor and the Banco Central client at the mock server.
func testConfig(mockURL string) *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Environment: "test"},
		Redis: config.RedisConfig{
			RecommendationCacheTTL: time.Hour,
		},
		AI: config.AIConfig{
			Provider:      config.AIProviderOpenAI,
			OpenAIAPIKey:  "sk-integration",
			OpenAIBaseURL: mockURL + "/v1",
			OpenAIModel:   "gpt-integration",
			Timeout:       5 * time.Second,
			Temperature:   0.7,
		},
		Market: config.MarketConfig{
			RefreshEnabled:  true,
			RefreshSchedule: "@every 1h",
			BCBBaseURL:      mockURL,
			BCBTimeout:      2 * time.Second,
		},
		RateLimit: config.RateLimitConfig{
			Enabled:     false,
			MaxRequests: 20,
			Window:      time.Minute,
		},
	}
}

// ensureServer wires the application on first use so earlier steps can change the config.
func (tc *TestContext) ensureServer() {
	if tc.server != nil {
		return
	}

	tc.injector = dependency.NewInjector(tc.cfg, tc.db.DbConn, tc.redis, func() bool { return true })
	engine := tc.injector.Router.Setup(tc.cfg.Server.Environment)
	tc.server = httptest.NewServer(engine)
}

func (tc *TestContext) configurable() error {
	if tc.server != nil {
		return fmt.Errorf("configuration steps must run before the first request")
	}
	return nil
}
