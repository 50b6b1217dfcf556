package ingest

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// maxAmount is the ceiling for a single transaction amount.
var maxAmount = decimal.New(99999999999999, -2) // 999,999,999,999.99

var currencySymbols = []string{"$", "€", "£"}

// ParseAmount parses a monetary value exactly. Thousands separators and a
// single leading currency symbol are tolerated; the result is an exact
// decimal, never a float, so sums round-trip without drift.
func ParseAmount(raw string) (decimal.Decimal, error) {
	clean := strings.TrimSpace(raw)
	clean = strings.ReplaceAll(clean, ",", "")

	for _, sym := range currencySymbols {
		if strings.HasPrefix(clean, sym) {
			clean = strings.TrimSpace(clean[len(sym):])
			break
		}
	}

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero, fmt.Errorf("amount is not a valid number")
	}

	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("amount must not be negative")
	}

	if d.GreaterThan(maxAmount) {
		return decimal.Zero, fmt.Errorf("amount exceeds the maximum of %s", maxAmount)
	}

	return d, nil
}
