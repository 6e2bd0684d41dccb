package steps

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/cucumber/godog"

	"github.com/dindin-invest/backend/internal/integration/persistence/model"
	"github.com/dindin-invest/backend/test/integration/mock"
)

func registerAdvisorSteps(ctx *godog.ScenarioContext) {
	ctx.Given(`^the AI provider is not configured$`, theAIProviderIsNotConfigured)
	ctx.Given(`^the AI rate limit is (\d+) requests? per minute$`, theAIRateLimitIs)
	ctx.Given(`^the AI provider responds with:$`, theAIProviderRespondsWith)
	ctx.Given(`^the AI provider fails with status (\d+)$`, theAIProviderFailsWithStatus)
	ctx.Then(`^the AI provider should have received (\d+) requests?$`, theAIProviderShouldHaveReceived)
	ctx.Then(`^the last AI request should contain "([^"]*)"$`, theLastAIRequestShouldContain)
}

func registerMarketSteps(ctx *godog.ScenarioContext) {
	ctx.Given(`^the central bank reports "([^"]*)" for series (\d+)$`, theCentralBankReports)
	ctx.Given(`^the central bank fails for series (\d+)$`, theCentralBankFails)
	ctx.When(`^the market refresh job runs$`, theMarketRefreshJobRuns)
}

func registerStorageSteps(ctx *godog.ScenarioContext) {
	ctx.Then(`^(\d+) chat messages? should be stored$`, chatMessagesShouldBeStored)
	ctx.Then(`^the recommendation cache should hold (\d+) entr(?:y|ies)$`, theRecommendationCacheShouldHold)
}

func theAIProviderIsNotConfigured(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if err := tc.configurable(); err != nil {
		return err
	}
	tc.cfg.AI.OpenAIAPIKey = ""
	return nil
}

func theAIRateLimitIs(ctx context.Context, limit int) error {
	tc := GetTestContext(ctx)
	if err := tc.configurable(); err != nil {
		return err
	}
	tc.cfg.RateLimit.Enabled = true
	tc.cfg.RateLimit.MaxRequests = limit
	return nil
}

func theAIProviderRespondsWith(content *godog.DocString) error {
	externalAPI.SetResponse(-1, http.MethodPost, openAIPath, http.StatusOK, map[string]any{
		"choices": []map[string]any{
			{"message": map[string]string{"role": "assistant", "content": content.Content}},
		},
	})
	return nil
}

func theAIProviderFailsWithStatus(status int) error {
	externalAPI.SetResponse(-1, http.MethodPost, openAIPath, status, map[string]any{
		"error": map[string]string{"message": http.StatusText(status)},
	})
	return nil
}

func theAIProviderShouldHaveReceived(count int) error {
	if got := externalAPI.RequestCount(http.MethodPost, openAIPath); got != count {
		return fmt.Errorf("expected %d AI requests, got %d", count, got)
	}
	return nil
}

func theLastAIRequestShouldContain(expected string) error {
	requests := externalAPI.Requests(http.MethodPost, openAIPath)
	if len(requests) == 0 {
		return fmt.Errorf("no AI request received")
	}
	last := requests[len(requests)-1]
	if !strings.Contains(last.RawBody, expected) {
		return fmt.Errorf("AI request does not contain '%s'. Body: %s", expected, last.RawBody)
	}
	return nil
}

func seriesPath(series int) string {
	return fmt.Sprintf("/bcdata.sgs.%d/dados/ultimos/1", series)
}

func theCentralBankReports(value string, series int) error {
	body := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?><valores><valor><data>02/01/2025</data><valor>%s</valor></valor></valores>`, value)
	externalAPI.SetResponse(-1, http.MethodGet, seriesPath(series), http.StatusOK, body)
	return nil
}

func theCentralBankFails(series int) error {
	externalAPI.SetResponse(-1, http.MethodGet, seriesPath(series), http.StatusServiceUnavailable, "indisponivel")
	return nil
}

// theMarketRefreshJobRuns ignores the job error; partial failures are asserted
// through the stored market data.
func theMarketRefreshJobRuns(ctx context.Context) error {
	tc := GetTestContext(ctx)
	tc.ensureServer()
	if tc.injector.RefreshJob == nil {
		return fmt.Errorf("market refresh job is not registered")
	}
	_ = tc.injector.Scheduler.RunNow(tc.injector.RefreshJob)
	return nil
}

func chatMessagesShouldBeStored(ctx context.Context, count int) error {
	tc := GetTestContext(ctx)
	got, err := tc.db.Count(&model.ChatMessageModel{})
	if err != nil {
		return err
	}
	if got != int64(count) {
		return fmt.Errorf("expected %d chat messages, got %d", count, got)
	}
	return nil
}

func theRecommendationCacheShouldHold(count int) error {
	if got := len(mock.RedisKeys()); got != count {
		return fmt.Errorf("expected %d cached recommendations, got %d", count, got)
	}
	return nil
}
