package formulas

import (
	"math"
	"sort"
)

// DefaultBinWidth is the return-histogram bucket width, in percentage points
const DefaultBinWidth = 0.25

// HistogramBin is one fixed-width bucket of a histogram
type HistogramBin struct {
	Center float64 `json:"center" msgpack:"center"`
	Count  int     `json:"count" msgpack:"count"`
}

// BinCenter snaps a value to the center of its fixed-width bucket.
// Halves round up (towards +Inf) and a negative zero center is folded to 0.
func BinCenter(value, binWidth float64) float64 {
	center := math.Floor(value/binWidth+0.5) * binWidth
	if center == 0 {
		return 0
	}
	return center
}

// CalculateHistogram buckets values into fixed-width bins centered on multiples
// of binWidth. Only non-empty bins are returned, ordered by center.
// A non-positive binWidth falls back to DefaultBinWidth.
func CalculateHistogram(values []float64, binWidth float64) []HistogramBin {
	if len(values) == 0 {
		return nil
	}
	if binWidth <= 0 {
		binWidth = DefaultBinWidth
	}

	counts := make(map[float64]int)
	for _, v := range values {
		counts[BinCenter(v, binWidth)]++
	}

	centers := make([]float64, 0, len(counts))
	for center := range counts {
		centers = append(centers, center)
	}
	sort.Float64s(centers)

	bins := make([]HistogramBin, len(centers))
	for i, center := range centers {
		bins[i] = HistogramBin{Center: center, Count: counts[center]}
	}

	return bins
}

// MaxBinCount returns the largest bin count, or 0 for an empty histogram
func MaxBinCount(bins []HistogramBin) int {
	maxCount := 0
	for _, b := range bins {
		if b.Count > maxCount {
			maxCount = b.Count
		}
	}
	return maxCount
}
