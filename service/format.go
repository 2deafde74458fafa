package service

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatRupees renders an amount as whole rupees with thousands separators.
func FormatRupees(amount float64) string {
	d := decimal.NewFromFloat(amount).Round(0)
	neg := d.IsNegative()
	digits := d.Abs().StringFixed(0)

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString("₹")
	for i, c := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	return b.String()
}

// FormatPercent renders a ratio such as 0.125 as "12.5%".
func FormatPercent(ratio float64) string {
	return decimal.NewFromFloat(ratio).Mul(decimal.NewFromInt(100)).Round(1).String() + "%"
}
