package formulas

import (
	"math"
)

// CalculateSharpeRatio calculates the Sharpe Ratio from already annualized figures,
// assuming a zero risk-free rate.
//
// Sharpe = Annualized Return / Annualized Volatility
//
// Both inputs must share a unit (both decimals or both percent). Zero volatility
// yields 0 rather than an infinite ratio.
func CalculateSharpeRatio(annualizedReturn, annualizedVolatility float64) float64 {
	if annualizedVolatility == 0 {
		return 0
	}
	return annualizedReturn / annualizedVolatility
}

// CalculateDownsideDeviation calculates the root mean square of the returns that fall
// below target. Only the below-target observations count towards the mean.
// Returns 0 when nothing falls below target.
func CalculateDownsideDeviation(returns []float64, target float64) float64 {
	var downsideSquaredSum float64
	downsideCount := 0

	for _, ret := range returns {
		if ret < target {
			deviation := ret - target
			downsideSquaredSum += deviation * deviation
			downsideCount++
		}
	}

	if downsideCount == 0 {
		return 0
	}

	return math.Sqrt(downsideSquaredSum / float64(downsideCount))
}

// CalculateSortinoRatio calculates the Sortino Ratio (downside deviation version of Sharpe)
//
// Sortino = Annualized Return / (Downside Deviation × sqrt(252))
//
// Args:
//
//	annualizedReturn: annualized return as decimal
//	dailyReturns: daily simple returns as decimals, zero target
//
// Returns 0 with fewer than two returns or when no return is negative.
func CalculateSortinoRatio(annualizedReturn float64, dailyReturns []float64) float64 {
	if len(dailyReturns) < 2 {
		return 0
	}

	downside := CalculateDownsideDeviation(dailyReturns, 0) * math.Sqrt(TradingDaysPerYear)
	if downside == 0 {
		return 0
	}

	return annualizedReturn / downside
}
