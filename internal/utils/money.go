package utils

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"
)

// FormatCurrency renders an amount the way the result views show it:
// KRW as grouped whole won ("1,000,000원"), USD with a dollar sign and cents
// ("$1,234.50"), anything else as "<amount> <CODE>" with two decimals.
// An empty currency is treated as KRW.
func FormatCurrency(amount float64, currency string) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return "-"
	}

	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	switch code := strings.ToUpper(strings.TrimSpace(currency)); code {
	case "", "KRW":
		won := int64(math.Round(amount))
		if won == 0 {
			sign = ""
		}
		return sign + humanize.Comma(won) + "원"
	case "USD":
		return sign + "$" + humanize.FormatFloat("#,###.##", amount)
	default:
		return fmt.Sprintf("%s%s %s", sign, humanize.FormatFloat("#,###.##", amount), code)
	}
}

// FormatPercent renders a percentage with an explicit sign and two decimals
func FormatPercent(pct float64) string {
	if math.IsNaN(pct) || math.IsInf(pct, 0) {
		return "-"
	}
	if math.Abs(pct) < 0.005 {
		pct = 0
	}
	return fmt.Sprintf("%+.2f%%", pct)
}
