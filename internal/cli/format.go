package cli

import (
	"fmt"
	"strings"

	"github.com/dindin-invest/backend/internal/domain/money"
)

// FormatBRL formats a value as reais.
func FormatBRL(v float64) string {
	return money.FormatBRL(v)
}

// FormatPercent formats a percentage with one decimal and a comma separator,
// e.g. 13.75 -> "13,8%".
func FormatPercent(v float64) string {
	return strings.Replace(fmt.Sprintf("%.1f%%", money.Round(v, 1)), ".", ",", 1)
}

// FormatYears formats a duration in years in Portuguese.
func FormatYears(years int) string {
	if years == 1 {
		return "1 ano"
	}
	return fmt.Sprintf("%d anos", years)
}
