package formulas

import "math"

// CalculateCAGR annualizes a compounded total return over an elapsed calendar span.
//
// Formula: CAGR = (1 + totalReturn)^(1/years) - 1, years = days / 365.25
//
// Args:
//
//	totalReturn: compounded return over the whole span as decimal (0.10 = 10%)
//	days: elapsed calendar days between first and last observation
//
// Spans shorter than one day are treated as one day. A total loss (or worse)
// annualizes to -1.
func CalculateCAGR(totalReturn float64, days float64) float64 {
	if days < 1 {
		days = 1
	}

	growth := 1 + totalReturn
	if growth <= 0 {
		return -1
	}

	years := days / DaysPerYear
	return math.Pow(growth, 1/years) - 1
}

// ElapsedDays rounds a duration expressed in hours to whole calendar days, minimum 1
func ElapsedDays(hours float64) float64 {
	days := math.Round(hours / 24)
	if days < 1 {
		return 1
	}
	return days
}
