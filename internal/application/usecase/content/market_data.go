// Package content contains market data and educational content use cases.
package content

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dindin-invest/backend/internal/application/adapter"
	"github.com/dindin-invest/backend/internal/domain/entity"
	domainerror "github.com/dindin-invest/backend/internal/domain/error"
)

// Banco Central SGS series refreshed by RefreshMarketDataUseCase.
const (
	SeriesSELIC = 432
	SeriesCDI   = 4389
)

// DefaultRefreshSeries maps indicator symbols to their SGS series.
var DefaultRefreshSeries = map[string]int{
	"SELIC": SeriesSELIC,
	"CDI":   SeriesCDI,
}

// ListMarketDataOutput represents the stored market indicators.
type ListMarketDataOutput struct {
	Indicators []*entity.MarketIndicator
}

// ListMarketDataUseCase lists market indicators.
type ListMarketDataUseCase struct {
	marketRepo adapter.MarketDataRepository
}

// NewListMarketDataUseCase creates a new ListMarketDataUseCase instance.
func NewListMarketDataUseCase(marketRepo adapter.MarketDataRepository) *ListMarketDataUseCase {
	return &ListMarketDataUseCase{marketRepo: marketRepo}
}

// Execute lists the indicators.
func (uc *ListMarketDataUseCase) Execute(ctx context.Context) (*ListMarketDataOutput, error) {
	indicators, err := uc.marketRepo.FindAll(ctx)
	if err != nil {
		return nil, domainerror.NewContentError(
			domainerror.ErrCodeContentUnavailable,
			"failed to load market data",
			err,
		)
	}
	return &ListMarketDataOutput{Indicators: indicators}, nil
}

// RefreshMarketDataOutput represents the indicators updated by a refresh.
type RefreshMarketDataOutput struct {
	Updated []*entity.MarketIndicator
}

// RefreshMarketDataUseCase pulls official rates and updates the stored indicators.
type RefreshMarketDataUseCase struct {
	marketRepo   adapter.MarketDataRepository
	rateProvider adapter.MarketRateProvider
	series       map[string]int
}

// NewRefreshMarketDataUseCase creates a new RefreshMarketDataUseCase instance.
// A nil series map refreshes DefaultRefreshSeries.
func NewRefreshMarketDataUseCase(
	marketRepo adapter.MarketDataRepository,
	rateProvider adapter.MarketRateProvider,
	series map[string]int,
) *RefreshMarketDataUseCase {
	if series == nil {
		series = DefaultRefreshSeries
	}
	return &RefreshMarketDataUseCase{
		marketRepo:   marketRepo,
		rateProvider: rateProvider,
		series:       series,
	}
}

// Execute refreshes every configured series. A failing series does not stop the
// others; all failures are returned joined.
func (uc *RefreshMarketDataUseCase) Execute(ctx context.Context) (*RefreshMarketDataOutput, error) {
	out := &RefreshMarketDataOutput{}
	var errs []error

	for _, symbol := range sortedSymbols(uc.series) {
		indicator, err := uc.refresh(ctx, symbol, uc.series[symbol])
		if err != nil {
			slog.WarnContext(ctx, "market data refresh failed", "symbol", symbol, "error", err)
			errs = append(errs, err)
			continue
		}
		out.Updated = append(out.Updated, indicator)
	}

	return out, errors.Join(errs...)
}

func (uc *RefreshMarketDataUseCase) refresh(ctx context.Context, symbol string, seriesCode int) (*entity.MarketIndicator, error) {
	obs, err := uc.rateProvider.Latest(ctx, seriesCode)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch series %d for %s: %w", seriesCode, symbol, err)
	}

	indicator, err := uc.marketRepo.FindBySymbol(ctx, symbol)
	if err != nil {
		return nil, fmt.Errorf("failed to find indicator %s: %w", symbol, err)
	}

	ApplyQuote(indicator, decimal.NewFromFloat(obs.Value), time.Now().UTC())

	if err := uc.marketRepo.Update(ctx, indicator); err != nil {
		return nil, fmt.Errorf("failed to update indicator %s: %w", symbol, err)
	}
	return indicator, nil
}

// ApplyQuote sets a new price on the indicator and derives the change from the previous one.
func ApplyQuote(indicator *entity.MarketIndicator, price decimal.Decimal, at time.Time) {
	change := price.Sub(indicator.Price)
	percent := decimal.Zero
	if !indicator.Price.IsZero() {
		percent = change.Div(indicator.Price).Mul(decimal.NewFromInt(100)).Round(4)
	}

	indicator.Change = change
	indicator.ChangePercent = percent
	indicator.Price = price
	indicator.UpdatedAt = at
}

func sortedSymbols(series map[string]int) []string {
	symbols := make([]string, 0, len(series))
	for s := range series {
		symbols = append(symbols, s)
	}
	slices.Sort(symbols)
	return symbols
}
