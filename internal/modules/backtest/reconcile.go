package backtest

import (
	"github.com/shopspring/decimal"

	"github.com/aristath/backtest/internal/clients/backtester"
	"github.com/aristath/backtest/pkg/analytics"
)

var (
	// FinalValueTolerance is the relative final value difference still considered consistent
	FinalValueTolerance = decimal.RequireFromString("0.001")
	// ProfitPctTolerance is the profit percentage difference, in points, still considered consistent
	ProfitPctTolerance = decimal.RequireFromString("0.05")
)

// Reconciliation compares the backend's summary with the engine's own figures
type Reconciliation struct {
	ReportedFinalValue float64 `json:"reported_final_value" msgpack:"reported_final_value"`
	ComputedFinalValue float64 `json:"computed_final_value" msgpack:"computed_final_value"`
	FinalValueDelta    float64 `json:"final_value_delta" msgpack:"final_value_delta"`
	ReportedProfitPct  float64 `json:"reported_profit_pct" msgpack:"reported_profit_pct"`
	ComputedProfitPct  float64 `json:"computed_profit_pct" msgpack:"computed_profit_pct"`
	ProfitPctDelta     float64 `json:"profit_pct_delta" msgpack:"profit_pct_delta"`
	Consistent         bool    `json:"consistent" msgpack:"consistent"`
}

// Reconcile compares reported and computed figures. Only the figures the
// backend actually sent take part in the consistency check.
//
// Returns nil when there is no performance summary or nothing was reported.
func Reconcile(reported *backtester.Result, perf *analytics.Performance) *Reconciliation {
	if reported == nil || perf == nil {
		return nil
	}
	if !reported.FinalValue.Valid && !reported.ProfitPercentage.Valid {
		return nil
	}

	rec := &Reconciliation{
		ComputedFinalValue: perf.FinalValue,
		ComputedProfitPct:  perf.ProfitPct,
		Consistent:         true,
	}

	if reported.FinalValue.Valid {
		computed := decimal.NewFromFloat(perf.FinalValue)
		delta := computed.Sub(reported.FinalValue.Value)

		rec.ReportedFinalValue = reported.FinalValue.Float64()
		rec.FinalValueDelta = delta.InexactFloat64()

		allowed := computed.Abs().Mul(FinalValueTolerance)
		if delta.Abs().GreaterThan(allowed) {
			rec.Consistent = false
		}
	}

	if reported.ProfitPercentage.Valid {
		delta := decimal.NewFromFloat(perf.ProfitPct).Sub(reported.ProfitPercentage.Value)

		rec.ReportedProfitPct = reported.ProfitPercentage.Float64()
		rec.ProfitPctDelta = delta.InexactFloat64()

		if delta.Abs().GreaterThan(ProfitPctTolerance) {
			rec.Consistent = false
		}
	}

	return rec
}
