package utils

import (
	"github.com/shopspring/decimal"
)

// DisplayPrecision is the number of decimals amounts are shown with.
const DisplayPrecision = 2

// FormatAmount formats an amount with two decimals, keeping any finer precision it carries.
// Example: 12.3 returns "12.30", -0.125 returns "-0.125"
func FormatAmount(amount decimal.Decimal) string {
	if amount.Equal(amount.Round(DisplayPrecision)) {
		return amount.StringFixed(DisplayPrecision)
	}
	return amount.String()
}
