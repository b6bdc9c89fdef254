package analytics

import "github.com/aristath/backtest/pkg/formulas"

// HistogramBin is one bucket of the daily return histogram
type HistogramBin = formulas.HistogramBin

// Distribution describes how daily returns (in percent) are spread
type Distribution struct {
	MeanReturnPct   float64        `json:"mean_return_pct" msgpack:"mean_return_pct"`
	BinWidth        float64        `json:"bin_width" msgpack:"bin_width"`
	Histogram       []HistogramBin `json:"histogram" msgpack:"histogram"`
	MaxBinFrequency int            `json:"max_bin_frequency" msgpack:"max_bin_frequency"`
}

// CalculateDistribution buckets daily returns into bins of binWidth
// percentage points. A non-positive binWidth uses formulas.DefaultBinWidth.
//
// Returns nil with fewer than two points.
func CalculateDistribution(s Series, binWidth float64) *Distribution {
	returns := DailyReturns(s)
	if returns == nil {
		return nil
	}
	if binWidth <= 0 {
		binWidth = formulas.DefaultBinWidth
	}

	values := make([]float64, len(returns))
	for i, r := range returns {
		values[i] = r.ReturnPct
	}

	histogram := formulas.CalculateHistogram(values, binWidth)
	return &Distribution{
		MeanReturnPct:   formulas.Mean(values),
		BinWidth:        binWidth,
		Histogram:       histogram,
		MaxBinFrequency: formulas.MaxBinCount(histogram),
	}
}
