package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/dindin-invest/backend/internal/application/usecase/content"
)

const defaultRefreshTimeout = 30 * time.Second

// MarketRefreshJob pulls the official SELIC and CDI rates into the market data table.
type MarketRefreshJob struct {
	useCase *content.RefreshMarketDataUseCase
	timeout time.Duration
}

// NewMarketRefreshJob creates a new market refresh job.
func NewMarketRefreshJob(useCase *content.RefreshMarketDataUseCase, timeout time.Duration) *MarketRefreshJob {
	if timeout <= 0 {
		timeout = defaultRefreshTimeout
	}
	return &MarketRefreshJob{useCase: useCase, timeout: timeout}
}

// Name returns the job name.
func (j *MarketRefreshJob) Name() string {
	return "market_refresh"
}

// Run refreshes the configured series.
func (j *MarketRefreshJob) Run(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()

	out, err := j.useCase.Execute(ctx)
	if out != nil && len(out.Updated) > 0 {
		symbols := make([]string, len(out.Updated))
		for i, ind := range out.Updated {
			symbols[i] = ind.Symbol
		}
		slog.InfoContext(ctx, "Market data refreshed", "symbols", symbols)
	}
	return err
}
