// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/dindin-invest/backend/internal/application/adapter"
	"github.com/dindin-invest/backend/internal/domain/entity"
	domainerror "github.com/dindin-invest/backend/internal/domain/error"
	"github.com/dindin-invest/backend/internal/integration/persistence/model"
)

// marketDataRepository implements the adapter.MarketDataRepository interface.
type marketDataRepository struct {
	db *gorm.DB
}

// NewMarketDataRepository creates a new market data repository instance.
func NewMarketDataRepository(db *gorm.DB) adapter.MarketDataRepository {
	return &marketDataRepository{
		db: db,
	}
}

// FindAll retrieves every indicator ordered by symbol.
func (r *marketDataRepository) FindAll(ctx context.Context) ([]*entity.MarketIndicator, error) {
	var models []model.MarketDataModel
	result := r.db.WithContext(ctx).Order("symbol ASC").Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	indicators := make([]*entity.MarketIndicator, len(models))
	for i, m := range models {
		indicators[i] = m.ToEntity()
	}
	return indicators, nil
}

// FindBySymbol retrieves an indicator by its symbol.
func (r *marketDataRepository) FindBySymbol(ctx context.Context, symbol string) (*entity.MarketIndicator, error) {
	var m model.MarketDataModel
	result := r.db.WithContext(ctx).Where("symbol = ?", symbol).First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrMarketIndicatorNotFound
		}
		return nil, result.Error
	}
	return m.ToEntity(), nil
}

// Update persists the price fields of an existing indicator.
func (r *marketDataRepository) Update(ctx context.Context, indicator *entity.MarketIndicator) error {
	result := r.db.WithContext(ctx).
		Model(&model.MarketDataModel{}).
		Where("symbol = ?", indicator.Symbol).
		Updates(map[string]interface{}{
			"price":          indicator.Price,
			"change":         indicator.Change,
			"change_percent": indicator.ChangePercent,
			"updated_at":     indicator.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrMarketIndicatorNotFound
	}
	return nil
}
