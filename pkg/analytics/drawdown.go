package analytics

import "github.com/aristath/backtest/pkg/formulas"

// DrawdownPoint is the decline of a day's close from the running peak, in percent
type DrawdownPoint struct {
	Date        Date    `json:"date" msgpack:"date"`
	DrawdownPct float64 `json:"drawdown_pct" msgpack:"drawdown_pct"`
}

// DrawdownReport holds the drawdown series and its summary
type DrawdownReport struct {
	Points             []DrawdownPoint `json:"points" msgpack:"points"`
	MaxDrawdownPct     float64         `json:"max_drawdown_pct" msgpack:"max_drawdown_pct"`
	CurrentDrawdownPct float64         `json:"current_drawdown_pct" msgpack:"current_drawdown_pct"`
	PeakPrice          float64         `json:"peak_price" msgpack:"peak_price"`
	PeakDate           Date            `json:"peak_date" msgpack:"peak_date"`
	DaysInDrawdown     int             `json:"days_in_drawdown" msgpack:"days_in_drawdown"`
}

// CalculateDrawdown computes the drawdown of every day from the running peak.
// DaysInDrawdown counts observations since the most recent peak.
//
// Returns nil with fewer than two points.
func CalculateDrawdown(s Series) *DrawdownReport {
	metrics := formulas.CalculateDrawdownMetrics(s.Closes())
	if metrics == nil {
		return nil
	}

	points := make([]DrawdownPoint, len(metrics.Drawdowns))
	for i, dd := range metrics.Drawdowns {
		points[i] = DrawdownPoint{Date: s.At(i).Date, DrawdownPct: dd * 100}
	}

	return &DrawdownReport{
		Points:             points,
		MaxDrawdownPct:     metrics.MaxDrawdown * 100,
		CurrentDrawdownPct: metrics.CurrentDrawdown * 100,
		PeakPrice:          metrics.PeakValue,
		PeakDate:           s.At(metrics.PeakIndex).Date,
		DaysInDrawdown:     metrics.DaysInDrawdown,
	}
}
