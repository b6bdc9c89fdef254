package formulas

import "math"

// DrawdownMetrics represents drawdown analysis results
type DrawdownMetrics struct {
	Drawdowns       []float64 `json:"drawdowns"`        // Per-observation drawdown from the running peak
	MaxDrawdown     float64   `json:"max_drawdown"`     // Maximum drawdown (as positive decimal, e.g., 0.25 = 25% drawdown)
	CurrentDrawdown float64   `json:"current_drawdown"` // Drawdown of the last observation
	PeakIndex       int       `json:"peak_index"`       // Index of the most recent running peak
	DaysInDrawdown  int       `json:"days_in_drawdown"` // Observations since that peak
	PeakValue       float64   `json:"peak_value"`
	CurrentValue    float64   `json:"current_value"`
}

// CalculateDrawdowns computes the drawdown of every price from its running peak.
//
// Drawdown Formula:
//
//	Peak     = max(Peak, Price)       (inclusive of the current price)
//	Drawdown = (Peak - Price) / Peak  when Peak > 0, else 0
//
// initialPeak seeds the running peak. Seeding with math.Inf(-1) or with prices[0]
// gives identical results because the peak always includes the current price.
func CalculateDrawdowns(prices []float64, initialPeak float64) ([]float64, float64) {
	drawdowns := make([]float64, len(prices))
	maxDrawdown := 0.0
	peak := initialPeak

	for i, price := range prices {
		peak = math.Max(peak, price)

		if peak > 0 {
			drawdowns[i] = (peak - price) / peak
		}
		if drawdowns[i] > maxDrawdown {
			maxDrawdown = drawdowns[i]
		}
	}

	return drawdowns, maxDrawdown
}

// CalculateMaxDrawdown calculates the maximum drawdown from a price series
//
// Returns:
//
//	Maximum drawdown as positive decimal (0.25 = 25% loss from peak) or nil
func CalculateMaxDrawdown(prices []float64) *float64 {
	if len(prices) < 2 {
		return nil
	}

	_, maxDrawdown := CalculateDrawdowns(prices, prices[0])
	return &maxDrawdown
}

// CalculateDrawdownMetrics calculates comprehensive drawdown metrics
// including current drawdown, days in drawdown, and peak values
func CalculateDrawdownMetrics(prices []float64) *DrawdownMetrics {
	if len(prices) < 2 {
		return nil
	}

	drawdowns, maxDrawdown := CalculateDrawdowns(prices, prices[0])

	peak := prices[0]
	peakIndex := 0
	for i, price := range prices {
		if price >= peak {
			peak = price
			peakIndex = i
		}
	}

	return &DrawdownMetrics{
		Drawdowns:       drawdowns,
		MaxDrawdown:     maxDrawdown,
		CurrentDrawdown: drawdowns[len(drawdowns)-1],
		PeakIndex:       peakIndex,
		DaysInDrawdown:  len(prices) - 1 - peakIndex,
		PeakValue:       peak,
		CurrentValue:    prices[len(prices)-1],
	}
}
