package formulas

import (
	"math"
	"testing"
)

func TestStdDev(t *testing.T) {
	tests := []struct {
		name      string
		data      []float64
		expected  float64
		tolerance float64
	}{
		{
			name:      "empty",
			data:      []float64{},
			expected:  0.0,
			tolerance: 0.0,
		},
		{
			name:      "single observation",
			data:      []float64{0.05},
			expected:  0.0,
			tolerance: 0.0,
		},
		{
			name:      "textbook sample",
			data:      []float64{2, 4, 4, 4, 5, 5, 7, 9},
			expected:  math.Sqrt(32.0 / 7.0), // n-1 denominator
			tolerance: 1e-12,
		},
		{
			name:      "constant values",
			data:      makeReturns(0.001, 30),
			expected:  0.0,
			tolerance: 1e-15,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := StdDev(tt.data)
			if math.Abs(result-tt.expected) > tt.tolerance {
				t.Errorf("StdDev() = %v, want %v (±%v)", result, tt.expected, tt.tolerance)
			}
		})
	}
}

func TestPopulationStdDev(t *testing.T) {
	tests := []struct {
		name      string
		data      []float64
		expected  float64
		tolerance float64
	}{
		{
			name:      "textbook population",
			data:      []float64{2, 4, 4, 4, 5, 5, 7, 9},
			expected:  2.0,
			tolerance: 1e-12,
		},
		{
			name:      "single observation",
			data:      []float64{42},
			expected:  0.0,
			tolerance: 0.0,
		},
		{
			name:      "constant non-integer values never go NaN",
			data:      makeReturns(123.45, 20),
			expected:  0.0,
			tolerance: 1e-9,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := PopulationStdDev(tt.data)
			if math.IsNaN(result) || math.Abs(result-tt.expected) > tt.tolerance {
				t.Errorf("PopulationStdDev() = %v, want %v (±%v)", result, tt.expected, tt.tolerance)
			}
		})
	}
}

func TestAnnualizedVolatility(t *testing.T) {
	tests := []struct {
		name      string
		returns   []float64
		expected  float64
		tolerance float64
	}{
		{
			name:      "empty returns",
			returns:   []float64{},
			expected:  0.0,
			tolerance: 0.0,
		},
		{
			name:      "single return has no dispersion",
			returns:   []float64{0.10},
			expected:  0.0,
			tolerance: 0.0,
		},
		{
			name:      "constant returns",
			returns:   makeReturns(0.001, 252),
			expected:  0.0, // No volatility when all returns are same
			tolerance: 1e-12,
		},
		{
			name:      "mixed returns",
			returns:   []float64{0.01, -0.01, 0.02, -0.02, 0.015, -0.015},
			expected:  0.2703, // sqrt(0.00145/5) × sqrt(252)
			tolerance: 0.001,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := AnnualizedVolatility(tt.returns)
			if math.Abs(result-tt.expected) > tt.tolerance {
				t.Errorf("AnnualizedVolatility() = %v, want %v (±%v)", result, tt.expected, tt.tolerance)
			}
		})
	}
}

func TestCalculateReturns(t *testing.T) {
	tests := []struct {
		name        string
		prices      []float64
		want        []float64
		tolerance   float64
		description string
	}{
		{
			name:        "empty prices",
			prices:      []float64{},
			want:        []float64{},
			description: "Empty prices should return empty returns",
		},
		{
			name:        "single price",
			prices:      []float64{100.0},
			want:        []float64{},
			description: "Single price cannot calculate return",
		},
		{
			name:        "up then down",
			prices:      []float64{100.0, 110.0, 99.0},
			want:        []float64{0.10, -0.10},
			tolerance:   1e-12,
			description: "10% up then 10% down",
		},
		{
			name:        "price sequence with zero",
			prices:      []float64{100.0, 0.0, 110.0},
			want:        []float64{-1.0, 0.0},
			tolerance:   1e-12,
			description: "A zero previous close yields a zero return",
		},
		{
			name:        "steady prices",
			prices:      []float64{100.0, 100.0, 100.0},
			want:        []float64{0.0, 0.0},
			description: "No change means zero returns",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CalculateReturns(tt.prices)

			if len(result) != len(tt.want) {
				t.Fatalf("CalculateReturns() length = %v, want %v", len(result), len(tt.want))
			}

			for i := range result {
				if math.Abs(result[i]-tt.want[i]) > tt.tolerance {
					t.Errorf("CalculateReturns()[%d] = %v, want %v (±%v) - %s",
						i, result[i], tt.want[i], tt.tolerance, tt.description)
				}
			}
		})
	}
}

func TestCalculateCumulativeReturns(t *testing.T) {
	cumulative := CalculateCumulativeReturns([]float64{0.10, -0.10})

	want := []float64{0, 0.10, -0.01}
	if len(cumulative) != len(want) {
		t.Fatalf("CalculateCumulativeReturns() length = %v, want %v", len(cumulative), len(want))
	}
	for i := range want {
		if math.Abs(cumulative[i]-want[i]) > 1e-12 {
			t.Errorf("CalculateCumulativeReturns()[%d] = %v, want %v", i, cumulative[i], want[i])
		}
	}

	if got := CalculateCumulativeReturns(nil); len(got) != 1 || got[0] != 0 {
		t.Errorf("CalculateCumulativeReturns(nil) = %v, want [0]", got)
	}
}

// Helper function to create a slice of identical returns
func makeReturns(value float64, count int) []float64 {
	returns := make([]float64, count)
	for i := range returns {
		returns[i] = value
	}
	return returns
}
