// Package backtest runs investment scenarios through the analytics engine,
// either from a natural-language prompt resolved by the backend or from a
// caller-supplied price series.
package backtest

import (
	"errors"
	"time"

	"github.com/aristath/backtest/internal/clients/backtester"
	"github.com/aristath/backtest/pkg/analytics"
)

// ErrValidation is returned when a request fails validation
var ErrValidation = errors.New("validation failed")

// NaturalRequest asks the backend to resolve a free-text scenario
type NaturalRequest struct {
	Prompt  string             `json:"prompt" msgpack:"prompt" validate:"required,max=2000"`
	Options *analytics.Options `json:"options,omitempty" msgpack:"options,omitempty"`
}

// AnalyzeRequest analyzes a caller-supplied daily series
type AnalyzeRequest struct {
	DailyData        []backtester.DailyPoint `json:"daily_data" msgpack:"daily_data" validate:"required,min=1,dive"`
	InvestmentAmount float64                 `json:"investment_amount" msgpack:"investment_amount" validate:"gt=0"`
	Currency         string                  `json:"currency,omitempty" msgpack:"currency,omitempty" validate:"omitempty,len=3,alpha"`
	Options          *analytics.Options      `json:"options,omitempty" msgpack:"options,omitempty"`
}

// Source describes the asset the backend picked and the figures it reported
type Source struct {
	Symbol                   string  `json:"symbol" msgpack:"symbol"`
	Name                     string  `json:"name" msgpack:"name"`
	Currency                 string  `json:"currency" msgpack:"currency"`
	InitialInvestment        float64 `json:"initial_investment" msgpack:"initial_investment"`
	ReportedFinalValue       float64 `json:"reported_final_value" msgpack:"reported_final_value"`
	ReportedProfitPercentage float64 `json:"reported_profit_percentage" msgpack:"reported_profit_percentage"`
}

// Result is one analysis run
type Result struct {
	ID             string             `json:"id" msgpack:"id"`
	Prompt         string             `json:"prompt,omitempty" msgpack:"prompt,omitempty"`
	Source         *Source            `json:"source,omitempty" msgpack:"source,omitempty"`
	Analysis       analytics.Analysis `json:"analysis" msgpack:"analysis"`
	Reconciliation *Reconciliation    `json:"reconciliation,omitempty" msgpack:"reconciliation,omitempty"`
	GeneratedAt    time.Time          `json:"generated_at" msgpack:"generated_at"`
}
