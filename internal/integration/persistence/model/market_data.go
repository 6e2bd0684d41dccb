// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/dindin-invest/backend/internal/domain/entity"
)

// MarketDataModel represents the market_data table in the database.
type MarketDataModel struct {
	ID            uint            `gorm:"primaryKey;autoIncrement"`
	Symbol        string          `gorm:"type:varchar(20);not null;uniqueIndex"`
	Name          string          `gorm:"type:varchar(100);not null"`
	Price         decimal.Decimal `gorm:"type:decimal(20,4);not null"`
	Change        decimal.Decimal `gorm:"type:decimal(20,4);not null;default:0"`
	ChangePercent decimal.Decimal `gorm:"type:decimal(10,4);not null;default:0"`
	UpdatedAt     time.Time       `gorm:"not null"`
}

// TableName returns the table name for the MarketDataModel.
func (MarketDataModel) TableName() string {
	return "market_data"
}

// ToEntity converts a MarketDataModel to a domain MarketIndicator entity.
func (m *MarketDataModel) ToEntity() *entity.MarketIndicator {
	return &entity.MarketIndicator{
		ID:            m.ID,
		Symbol:        m.Symbol,
		Name:          m.Name,
		Price:         m.Price,
		Change:        m.Change,
		ChangePercent: m.ChangePercent,
		UpdatedAt:     m.UpdatedAt,
	}
}

// MarketDataFromEntity creates a MarketDataModel from a domain MarketIndicator entity.
func MarketDataFromEntity(indicator *entity.MarketIndicator) *MarketDataModel {
	return &MarketDataModel{
		ID:            indicator.ID,
		Symbol:        indicator.Symbol,
		Name:          indicator.Name,
		Price:         indicator.Price,
		Change:        indicator.Change,
		ChangePercent: indicator.ChangePercent,
		UpdatedAt:     indicator.UpdatedAt,
	}
}
