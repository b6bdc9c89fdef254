// Package formulas holds the slice-level math behind the analytics engine:
// return series, dispersion, drawdown, moving averages, oscillators and binning.
//
// Functions operate on plain []float64 in chronological order and never mutate
// their input. Returns are decimals (0.01 = 1%) unless a name says otherwise.
package formulas

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// TradingDaysPerYear is the annualization factor for daily observations
const TradingDaysPerYear = 252

// DaysPerYear is the calendar-year length used for elapsed-time annualization
const DaysPerYear = 365.25

// Mean calculates the arithmetic mean of a slice of float64 values
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	return stat.Mean(data, nil)
}

// StdDev calculates the sample standard deviation (n-1 denominator).
// Fewer than two observations yield 0.
func StdDev(data []float64) float64 {
	if len(data) < 2 {
		return 0
	}
	return math.Sqrt(math.Max(0, stat.Variance(data, nil)))
}

// PopulationStdDev calculates the population standard deviation (n denominator).
// Fewer than two observations yield 0.
func PopulationStdDev(data []float64) float64 {
	if len(data) < 2 {
		return 0
	}
	_, variance := stat.PopMeanVariance(data, nil)
	// Two-pass variance of identical values can land a hair below zero
	return math.Sqrt(math.Max(0, variance))
}

// AnnualizedVolatility calculates annualized volatility from daily returns
// Formula: sample Std Dev of Daily Returns × sqrt(252 trading days)
func AnnualizedVolatility(dailyReturns []float64) float64 {
	if len(dailyReturns) < 2 {
		return 0
	}
	return StdDev(dailyReturns) * math.Sqrt(TradingDaysPerYear)
}

// CalculateReturns converts prices to simple returns
// Returns[i] = Price[i+1] / Price[i] - 1, and 0 where Price[i] is 0
func CalculateReturns(prices []float64) []float64 {
	if len(prices) < 2 {
		return []float64{}
	}

	returns := make([]float64, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		if prices[i-1] != 0 {
			returns[i-1] = prices[i]/prices[i-1] - 1
		}
	}

	return returns
}

// CalculateCumulativeReturns compounds simple returns into a running total
// return, seeded with 0 for the day before the first return.
// The result has len(returns)+1 entries.
func CalculateCumulativeReturns(returns []float64) []float64 {
	cumulative := make([]float64, len(returns)+1)
	for i, r := range returns {
		cumulative[i+1] = (1+cumulative[i])*(1+r) - 1
	}
	return cumulative
}
