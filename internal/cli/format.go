// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// FormatAmount formats a signed amount with two decimals, thousands
// separators and a currency code prefix.
// e.g., 1200 -> "PEN 1,200.00", -3.5 -> "PEN -3.50"
func FormatAmount(amount decimal.Decimal, currency string) string {
	rounded := amount.Round(2)
	abs := rounded.Abs()
	fixed := abs.StringFixed(2)
	s := humanize.BigComma(abs.Truncate(0).BigInt()) + fixed[len(fixed)-3:]
	if rounded.IsNegative() {
		s = "-" + s
	}
	if currency == "" {
		return s
	}
	return currency + " " + s
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	return humanize.Comma(n)
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

