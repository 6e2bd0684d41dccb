// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/dindin-invest/backend/internal/domain/entity"
)

// MarketDataRepository defines the interface for market indicator persistence.
type MarketDataRepository interface {
	// FindAll retrieves every stored indicator ordered by symbol.
	FindAll(ctx context.Context) ([]*entity.MarketIndicator, error)

	// FindBySymbol retrieves an indicator by its ticker symbol.
	FindBySymbol(ctx context.Context, symbol string) (*entity.MarketIndicator, error)

	// Update persists new price values of an existing indicator.
	Update(ctx context.Context, indicator *entity.MarketIndicator) error
}

// RateObservation is a single published value of an economic time series.
type RateObservation struct {
	Date  time.Time
	Value float64
}

// MarketRateProvider defines the interface for fetching official economic rates.
type MarketRateProvider interface {
	// Latest returns the most recent observation of a series.
	Latest(ctx context.Context, seriesCode int) (*RateObservation, error)
}
