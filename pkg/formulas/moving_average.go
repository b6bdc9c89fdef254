package formulas

import (
	"github.com/markcheno/go-talib"
)

// CalculateSMASeries calculates the Simple Moving Average for every full window
//
// SMA Formula:
//
//	SMA[i] = (Close[i-period+1] + ... + Close[i]) / period
//
// Args:
//
//	closes: Array of closing prices
//	length: window length
//
// Returns:
//
//	len(closes)-length+1 averages, the first covering closes[0:length],
//	or nil if the window never fills
func CalculateSMASeries(closes []float64, length int) []float64 {
	if length < 1 || len(closes) < length {
		return nil
	}
	if length == 1 {
		return append([]float64(nil), closes...)
	}

	// go-talib pads the warm-up region, drop it
	sma := talib.Sma(closes, length)
	return append([]float64(nil), sma[length-1:]...)
}

// CalculateEMASeries calculates the Exponential Moving Average for every full window
//
// EMA Formula:
//
//	EMA_today = (Price_today × multiplier) + (EMA_yesterday × (1 - multiplier))
//	where multiplier = 2 / (period + 1), seeded with the SMA of the first window
//
// Returns len(closes)-length+1 values or nil if the window never fills.
func CalculateEMASeries(closes []float64, length int) []float64 {
	if length < 1 || len(closes) < length {
		return nil
	}
	if length == 1 {
		return append([]float64(nil), closes...)
	}

	ema := talib.Ema(closes, length)
	return append([]float64(nil), ema[length-1:]...)
}
