package formulas

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sequence(from, to float64) []float64 {
	values := make([]float64, 0, int(to-from)+1)
	for v := from; v <= to; v++ {
		values = append(values, v)
	}
	return values
}

// wave builds a deterministic oscillating series with drift
func wave(n int) []float64 {
	values := make([]float64, n)
	for i := range values {
		values[i] = 100 + 10*math.Sin(float64(i)/3) + float64(i%7) - 0.2*float64(i)
	}
	return values
}

func TestCalculateSMASeries(t *testing.T) {
	closes := sequence(1, 10)

	sma := CalculateSMASeries(closes, 3)
	require.Len(t, sma, len(closes)-3+1)
	for i, v := range sma {
		assert.InDelta(t, float64(i+2), v, 1e-12, "window ending at %d", i+2)
	}

	full := CalculateSMASeries(closes, 10)
	require.Len(t, full, 1)
	assert.InDelta(t, 5.5, full[0], 1e-12)

	assert.Equal(t, closes, CalculateSMASeries(closes, 1))
	assert.Nil(t, CalculateSMASeries(closes, 11))
	assert.Nil(t, CalculateSMASeries(closes, 0))
}

func TestCalculateSMASeries_DoesNotMutateInput(t *testing.T) {
	closes := []float64{3, 1, 2, 5, 4}
	snapshot := append([]float64(nil), closes...)

	CalculateSMASeries(closes, 2)
	CalculateEMASeries(closes, 2)
	CalculateBollingerSeries(closes, 2, 2)
	CalculateRSISeries(closes, 2)

	assert.Equal(t, snapshot, closes)
}

func TestCalculateEMASeries(t *testing.T) {
	// Seed is SMA(1,2,3) = 2, multiplier 2/(3+1) = 0.5
	ema := CalculateEMASeries([]float64{1, 2, 3, 4, 5}, 3)
	require.Len(t, ema, 3)
	assert.InDelta(t, 2.0, ema[0], 1e-12)
	assert.InDelta(t, 3.0, ema[1], 1e-12)
	assert.InDelta(t, 4.0, ema[2], 1e-12)

	assert.Nil(t, CalculateEMASeries([]float64{1, 2}, 3))
}

func TestCalculateBollingerSeries(t *testing.T) {
	bands := CalculateBollingerSeries([]float64{2, 4, 4, 4, 5, 5, 7, 9}, 8, 2)
	require.Len(t, bands, 1)

	// Population sigma of the window is exactly 2
	assert.InDelta(t, 5.0, bands[0].Middle, 1e-12)
	assert.InDelta(t, 9.0, bands[0].Upper, 1e-12)
	assert.InDelta(t, 1.0, bands[0].Lower, 1e-12)
}

func TestCalculateBollingerSeries_InvalidParameters(t *testing.T) {
	closes := wave(30)

	assert.Nil(t, CalculateBollingerSeries(closes, 0, 2), "non-positive period")
	assert.Nil(t, CalculateBollingerSeries(closes, 20, -1), "negative multiplier")
	assert.Nil(t, CalculateBollingerSeries(closes[:19], 20, 2), "insufficient data")
}

func TestCalculateBollingerSeries_BandOrdering(t *testing.T) {
	closes := wave(120)

	for _, k := range []float64{0, 0.5, 1, 2, 3.5} {
		bands := CalculateBollingerSeries(closes, 20, k)
		require.Len(t, bands, len(closes)-20+1)

		for i, b := range bands {
			assert.GreaterOrEqual(t, b.Upper, b.Middle, "k=%v index %d", k, i)
			assert.GreaterOrEqual(t, b.Middle, b.Lower, "k=%v index %d", k, i)
		}
	}
}

func TestCalculateBollingerSeries_ConstantPrice(t *testing.T) {
	closes := makeReturns(100, 30)

	for _, b := range CalculateBollingerSeries(closes, 20, 2) {
		assert.Equal(t, b.Middle, b.Upper)
		assert.Equal(t, b.Middle, b.Lower)
		assert.InDelta(t, 100.0, b.Middle, 1e-12)
	}
}

func TestCalculateBollingerSeries_SingleDayWindow(t *testing.T) {
	closes := []float64{3, 1, 2}

	bands := CalculateBollingerSeries(closes, 1, 2)
	require.Len(t, bands, len(closes))
	for i, b := range bands {
		assert.Equal(t, BollingerBands{Upper: closes[i], Middle: closes[i], Lower: closes[i]}, b)
	}
}

func TestCalculateBollingerPosition(t *testing.T) {
	bands := BollingerBands{Upper: 12, Middle: 10, Lower: 8}

	assert.InDelta(t, 0.75, CalculateBollingerPosition(11, bands), 1e-12)
	assert.Equal(t, 1.0, CalculateBollingerPosition(20, bands))
	assert.Equal(t, 0.0, CalculateBollingerPosition(1, bands))
	assert.Equal(t, 0.5, CalculateBollingerPosition(10, BollingerBands{Upper: 10, Middle: 10, Lower: 10}))
}

func TestCalculateRSISeries(t *testing.T) {
	// Changes +1, -1, +2. Seed averages 0.5/0.5 -> RSI 50.
	// Then gain (0.5*1+2)/2 = 1.25, loss (0.5*1+0)/2 = 0.25 -> RS 5 -> RSI 83.33
	rsi := CalculateRSISeries([]float64{10, 11, 10, 12}, 2)
	require.Len(t, rsi, 2)
	assert.InDelta(t, 50.0, rsi[0], 1e-9)
	assert.InDelta(t, 100-100.0/6, rsi[1], 1e-9)
}

func TestCalculateRSISeries_Length(t *testing.T) {
	closes := wave(60)

	rsi := CalculateRSISeries(closes, 14)
	assert.Len(t, rsi, len(closes)-14)

	assert.Nil(t, CalculateRSISeries(closes[:14], 14), "needs period+1 closes")
	assert.Len(t, CalculateRSISeries(closes[:15], 14), 1)
	assert.Nil(t, CalculateRSISeries(closes, 0))
}

func TestCalculateRSISeries_NoLossesStaysBelow100(t *testing.T) {
	rsi := CalculateRSISeries(sequence(1, 30), 14)
	require.NotEmpty(t, rsi)

	for _, v := range rsi {
		assert.Less(t, v, 100.0)
		assert.Greater(t, v, 99.9999)
	}
}

func TestCalculateRSISeries_FlatWindow(t *testing.T) {
	// No gains and no losses: RS = 0 / epsilon
	for _, v := range CalculateRSISeries(makeReturns(50, 20), 14) {
		assert.Equal(t, 0.0, v)
	}
}

func TestCalculateRSISeries_Bounded(t *testing.T) {
	for _, n := range []int{15, 40, 250} {
		for _, v := range CalculateRSISeries(wave(n), 14) {
			assert.GreaterOrEqual(t, v, 0.0)
			assert.LessOrEqual(t, v, 100.0)
		}
	}
}

func TestCalculateRSISeries_WilderSmoothing(t *testing.T) {
	// Seed: gains (1, 0)/2 = 0.5, losses (0, 1)/2 = 0.5, RSI 50.
	// Next change +2: gain (0.5+2)/2 = 1.25, loss 0.5/2 = 0.25, RS 5.
	rsi := CalculateRSISeries([]float64{10, 11, 10, 12}, 2)
	require.Len(t, rsi, 2)
	assert.InDelta(t, 50.0, rsi[0], 1e-9)
	assert.InDelta(t, 100-100.0/6, rsi[1], 1e-9)

	assert.Nil(t, CalculateRSISeries([]float64{1, 2}, 14))
}

func TestCalculateHistogram(t *testing.T) {
	values := []float64{0.1, 0.12, -0.1, 0.3, 0.125, -0.125, 10}

	bins := CalculateHistogram(values, 0.25)

	assert.Equal(t, []HistogramBin{
		{Center: 0, Count: 4},
		{Center: 0.25, Count: 2},
		{Center: 10, Count: 1},
	}, bins)
	assert.Equal(t, 4, MaxBinCount(bins))
}

func TestCalculateHistogram_DefaultWidth(t *testing.T) {
	assert.Equal(t, CalculateHistogram([]float64{1.1, -0.4}, DefaultBinWidth), CalculateHistogram([]float64{1.1, -0.4}, 0))
	assert.Nil(t, CalculateHistogram(nil, 0.25))
	assert.Equal(t, 0, MaxBinCount(nil))
}

func TestBinCenter(t *testing.T) {
	tests := []struct {
		value float64
		width float64
		want  float64
	}{
		{0.1, 0.25, 0},
		{0.125, 0.25, 0.25}, // halves round up
		{-0.125, 0.25, 0},   // ... towards +Inf
		{-0.2, 0.25, -0.25},
		{-10.0, 0.25, -10},
		{1.0, 0.5, 1.0},
	}

	for _, tt := range tests {
		got := BinCenter(tt.value, tt.width)
		assert.Equal(t, tt.want, got, "BinCenter(%v, %v)", tt.value, tt.width)
		assert.False(t, math.Signbit(got) && got == 0, "negative zero center")
	}
}
