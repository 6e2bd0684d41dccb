// Package money holds currency helpers shared by the presentation layers.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// RoundCents rounds a currency value half away from zero to two decimal places.
func RoundCents(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// CentsDiff rounds a and b to cents and returns a - b without float drift.
func CentsDiff(a, b float64) float64 {
	ra := decimal.NewFromFloat(a).Round(2)
	rb := decimal.NewFromFloat(b).Round(2)
	return ra.Sub(rb).InexactFloat64()
}

// Round rounds v to the given number of decimal places.
func Round(v float64, places int32) float64 {
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}

// FormatBRL formats v as Brazilian reais, e.g. 1234.5 -> "R$ 1.234,50".
func FormatBRL(v float64) string {
	fixed := decimal.NewFromFloat(v).StringFixed(2)

	negative := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")
	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if negative {
		b.WriteString("-")
	}
	b.WriteString("R$ ")
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	b.WriteByte(',')
	b.WriteString(fracPart)

	return b.String()
}
