package analytics

import "github.com/aristath/backtest/pkg/formulas"

// Defaults used by the indicator library
const (
	DefaultBollingerPeriod = 20
	DefaultBollingerK      = 2.0
	DefaultRSIPeriod       = 14
)

// IndicatorPoint is one value of an indicator series, dated at the last day of its window
type IndicatorPoint struct {
	Date  Date    `json:"date" msgpack:"date"`
	Value float64 `json:"value" msgpack:"value"`
}

// BollingerPoint is one set of bands. Position is where the day's close sits
// between the lower (0) and upper (1) band.
type BollingerPoint struct {
	Date     Date    `json:"date" msgpack:"date"`
	Upper    float64 `json:"upper" msgpack:"upper"`
	Middle   float64 `json:"middle" msgpack:"middle"`
	Lower    float64 `json:"lower" msgpack:"lower"`
	Position float64 `json:"position" msgpack:"position"`
}

// SMA returns the simple moving average of the trailing period closes.
// The series has Len()-period+1 points, the first dated at index period-1.
func SMA(s Series, period int) []IndicatorPoint {
	return datedValues(s, formulas.CalculateSMASeries(s.Closes(), period), period-1)
}

// EMA returns the exponential moving average seeded with the first SMA.
// Same length and dating as SMA.
func EMA(s Series, period int) []IndicatorPoint {
	return datedValues(s, formulas.CalculateEMASeries(s.Closes(), period), period-1)
}

// Bollinger returns the bands around SMA(period) at k population standard
// deviations. nil when period < 1, k < 0 or the window never fills.
func Bollinger(s Series, period int, k float64) []BollingerPoint {
	closes := s.Closes()
	bands := formulas.CalculateBollingerSeries(closes, period, k)
	if bands == nil {
		return nil
	}

	points := make([]BollingerPoint, len(bands))
	for i, b := range bands {
		idx := i + period - 1
		points[i] = BollingerPoint{
			Date:     s.At(idx).Date,
			Upper:    b.Upper,
			Middle:   b.Middle,
			Lower:    b.Lower,
			Position: formulas.CalculateBollingerPosition(closes[idx], b),
		}
	}
	return points
}

// RSI returns Wilder's relative strength index. The first value is dated at
// index period, so the series has Len()-period points.
func RSI(s Series, period int) []IndicatorPoint {
	return datedValues(s, formulas.CalculateRSISeries(s.Closes(), period), period)
}

func datedValues(s Series, values []float64, offset int) []IndicatorPoint {
	if values == nil {
		return nil
	}

	points := make([]IndicatorPoint, len(values))
	for i, v := range values {
		points[i] = IndicatorPoint{Date: s.At(i + offset).Date, Value: v}
	}
	return points
}
