package formulas

// BollingerBands represents Bollinger Bands values
type BollingerBands struct {
	Upper  float64 `json:"upper"`
	Middle float64 `json:"middle"`
	Lower  float64 `json:"lower"`
}

// CalculateBollingerSeries calculates Bollinger Bands for every full window
//
// Bollinger Bands Formula:
//
//	Middle Band = SMA(length)
//	σ           = population std deviation of the same window (divide by length)
//	Upper Band  = Middle + (stdDevMultiplier × σ)
//	Lower Band  = Middle - (stdDevMultiplier × σ)
//
// Args:
//
//	closes: Array of closing prices
//	length: Period for moving average (typically 20)
//	stdDevMultiplier: Standard deviation multiplier (typically 2, non-negative)
//
// Returns:
//
//	len(closes)-length+1 bands or nil if insufficient data or invalid parameters
func CalculateBollingerSeries(closes []float64, length int, stdDevMultiplier float64) []BollingerBands {
	if length < 1 || stdDevMultiplier < 0 || len(closes) < length {
		return nil
	}

	middle := CalculateSMASeries(closes, length)
	bands := make([]BollingerBands, len(middle))

	for i := range middle {
		window := closes[i : i+length]
		width := stdDevMultiplier * PopulationStdDev(window)

		bands[i] = BollingerBands{
			Upper:  middle[i] + width,
			Middle: middle[i],
			Lower:  middle[i] - width,
		}
	}

	return bands
}

// CalculateBollingerPosition calculates where current price is within the Bollinger Bands
// Returns 0.0 if at lower band, 0.5 if at middle, 1.0 if at upper band
//
// Formula: (Price - Lower) / (Upper - Lower), clamped to [0, 1]
func CalculateBollingerPosition(price float64, bands BollingerBands) float64 {
	bandWidth := bands.Upper - bands.Lower
	if bandWidth == 0 {
		// Bands are collapsed, price is at middle
		return 0.5
	}

	position := (price - bands.Lower) / bandWidth
	if position < 0.0 {
		position = 0.0
	}
	if position > 1.0 {
		position = 1.0
	}

	return position
}
