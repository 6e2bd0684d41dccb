package persistence

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/dindin-invest/backend/internal/integration/persistence/model"
)

func seedMarketData(now time.Time) []model.MarketDataModel {
	row := func(symbol, name, price, change, percent string) model.MarketDataModel {
		return model.MarketDataModel{
			Symbol:        symbol,
			Name:          name,
			Price:         decimal.RequireFromString(price),
			Change:        decimal.RequireFromString(change),
			ChangePercent: decimal.RequireFromString(percent),
			UpdatedAt:     now,
		}
	}
	return []model.MarketDataModel{
		row("CDI", "CDI", "13.65", "0.25", "1.87"),
		row("SELIC", "SELIC", "13.25", "0", "0"),
		row("BTC", "Bitcoin", "298450", "-6421.5", "-2.15"),
		row("IBOV", "IBOVESPA", "126842", "1553.32", "1.24"),
	}
}

func seedArticles(now time.Time) []model.EducationalContentModel {
	return []model.EducationalContentModel{
		{
			Title:       "O que são Criptomoedas?",
			Description: "Entenda como funcionam as moedas digitais e suas características.",
			Content:     "Bitcoin é uma criptomoeda descentralizada que funciona através de blockchain. É considerado um ativo de alto risco, mas com potencial de grandes retornos. Para investidores iniciantes, recomendo começar com uma pequena parcela da carteira (máximo 5%).",
			Category:    "cryptocurrency",
			ImageURL:    "https://images.unsplash.com/photo-1621761191319-c6fb62004040?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=200",
			CreatedAt:   now,
		},
		{
			Title:       "Renda Fixa vs Variável",
			Description: "Compare os diferentes tipos de investimentos e seus riscos.",
			Content:     "Renda Fixa oferece retornos previsíveis e menor risco (CDB, Tesouro Direto), enquanto Renda Variável tem potencial de maiores ganhos mas com volatilidade (ações, FIIs). A proporção ideal depende do seu perfil de risco.",
			Category:    "investments",
			ImageURL:    "https://images.unsplash.com/photo-1611974789855-9c2a0a7236a3?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=200",
			CreatedAt:   now,
		},
		{
			Title:       "Diversificação de Carteira",
			Description: "Aprenda a distribuir seus investimentos para reduzir riscos.",
			Content:     "Diversificação é essencial para reduzir riscos. Recomendo: 40% renda fixa, 40% ações nacionais, 10% ações internacionais, 10% alternativos (FIIs, crypto). Ajuste conforme seu perfil de risco.",
			Category:    "portfolio",
			ImageURL:    "https://images.unsplash.com/photo-1560472354-b33ff0c44a43?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=200",
			CreatedAt:   now,
		},
	}
}

// Seed inserts the initial market indicators and articles. Tables that already
// hold rows are left untouched.
func Seed(ctx context.Context, db *gorm.DB) error {
	now := time.Now().UTC()

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.MarketDataModel{}).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to count market data: %w", err)
		}
		if count == 0 {
			rows := seedMarketData(now)
			if err := tx.Create(&rows).Error; err != nil {
				return fmt.Errorf("failed to seed market data: %w", err)
			}
			slog.InfoContext(ctx, "Seeded market data", "rows", len(rows))
		}

		if err := tx.Model(&model.EducationalContentModel{}).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to count educational content: %w", err)
		}
		if count == 0 {
			rows := seedArticles(now)
			if err := tx.Create(&rows).Error; err != nil {
				return fmt.Errorf("failed to seed educational content: %w", err)
			}
			slog.InfoContext(ctx, "Seeded educational content", "rows", len(rows))
		}

		return nil
	})
}
