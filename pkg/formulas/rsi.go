package formulas

// RSIEpsilon replaces a zero average loss in the RS denominator, so a window
// without losses approaches but never reaches 100.
const RSIEpsilon = 1e-10

// CalculateRSISeries calculates the Relative Strength Index with Wilder's smoothing
//
// RSI Formula:
//
//	RSI = 100 - (100 / (1 + RS))
//	where RS = Average Gain / Average Loss
//
// The averages are seeded with the simple mean of gains and losses over the first
// length price changes; every later change updates them as
//
//	avg = (avg × (length-1) + current) / length
//
// Returns:
//
//	len(closes)-length values, the first aligned with closes[length],
//	or nil if insufficient data (fewer than length+1 closes)
func CalculateRSISeries(closes []float64, length int) []float64 {
	if length < 1 || len(closes) < length+1 {
		return nil
	}

	period := float64(length)
	rsi := make([]float64, 0, len(closes)-length)

	var avgGain, avgLoss float64
	for i := 1; i <= length; i++ {
		gain, loss := splitChange(closes[i] - closes[i-1])
		avgGain += gain
		avgLoss += loss
	}
	avgGain /= period
	avgLoss /= period
	rsi = append(rsi, relativeStrengthIndex(avgGain, avgLoss))

	for i := length + 1; i < len(closes); i++ {
		gain, loss := splitChange(closes[i] - closes[i-1])
		avgGain = (avgGain*(period-1) + gain) / period
		avgLoss = (avgLoss*(period-1) + loss) / period
		rsi = append(rsi, relativeStrengthIndex(avgGain, avgLoss))
	}

	return rsi
}

func splitChange(change float64) (gain, loss float64) {
	if change > 0 {
		return change, 0
	}
	return 0, -change
}

func relativeStrengthIndex(avgGain, avgLoss float64) float64 {
	if avgLoss == 0 {
		avgLoss = RSIEpsilon
	}
	rs := avgGain / avgLoss
	return 100 - 100/(1+rs)
}
