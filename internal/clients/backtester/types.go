package backtester

import (
	"fmt"
	"math"

	"github.com/aristath/backtest/pkg/analytics"
)

// Status values of a backend response
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// NaturalBacktestRequest is the body of POST /natural-backtest
type NaturalBacktestRequest struct {
	Prompt string `json:"prompt"`
}

// Response is the envelope the backend wraps every answer in
type Response struct {
	Status  string  `json:"status"`
	Message string  `json:"message,omitempty"`
	Result  *Result `json:"result,omitempty"`
}

// DailyPoint is one close as sent by the backend
type DailyPoint struct {
	Date  string `json:"date" msgpack:"date" validate:"required"`
	Close Number `json:"close" msgpack:"close"`
}

// Result is the backtest the backend computed for a prompt
type Result struct {
	Symbol            string       `json:"symbol"`
	Name              string       `json:"name"`
	Currency          string       `json:"currency"`
	InitialInvestment Number       `json:"initial_investment"`
	FinalValue        Number       `json:"final_value"`
	ProfitPercentage  Number       `json:"profit_percentage"`
	DailyData         []DailyPoint `json:"daily_data" validate:"required,min=1,dive"`
}

// PricePoints converts the daily data for the analytics engine.
// A missing or non-numeric close becomes NaN, which Normalize drops.
func (r *Result) PricePoints() ([]analytics.PricePoint, error) {
	return ToPricePoints(r.DailyData)
}

// ToPricePoints converts backend daily points, failing on an unparseable date
func ToPricePoints(daily []DailyPoint) ([]analytics.PricePoint, error) {
	points := make([]analytics.PricePoint, 0, len(daily))
	for i, d := range daily {
		date, err := analytics.ParseDate(d.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: daily_data[%d]: %v", ErrInvalidPayload, i, err)
		}

		price := math.NaN()
		if d.Close.Valid {
			price = d.Close.Float64()
		}
		points = append(points, analytics.PricePoint{Date: date, Close: price})
	}
	return points, nil
}
