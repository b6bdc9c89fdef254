package analytics

import (
	"github.com/aristath/backtest/pkg/formulas"
)

// ReturnPoint is the simple return of one day versus the previous day, in percent
type ReturnPoint struct {
	Date      Date    `json:"date" msgpack:"date"`
	ReturnPct float64 `json:"return_pct" msgpack:"return_pct"`
}

// CumulativeReturnPoint is the compounded return since the first day, in percent
type CumulativeReturnPoint struct {
	Date                Date    `json:"date" msgpack:"date"`
	CumulativeReturnPct float64 `json:"cumulative_return_pct" msgpack:"cumulative_return_pct"`
}

// TradeKind labels an entry of the trade history
type TradeKind string

const (
	TradeBuy       TradeKind = "buy"
	TradeValuation TradeKind = "valuation"
)

// Trade is an entry of the hypothetical position's history
type Trade struct {
	Date   Date      `json:"date" msgpack:"date"`
	Kind   TradeKind `json:"kind" msgpack:"kind"`
	Price  float64   `json:"price" msgpack:"price"`
	Shares float64   `json:"shares" msgpack:"shares"`
	Value  float64   `json:"value" msgpack:"value"`
}

// Performance summarizes a buy-and-hold position over the whole series.
// Percentages are expressed in percent (10 = 10%).
type Performance struct {
	StartDate               Date    `json:"start_date" msgpack:"start_date"`
	EndDate                 Date    `json:"end_date" msgpack:"end_date"`
	Days                    float64 `json:"days" msgpack:"days"`
	InvestmentAmount        float64 `json:"investment_amount" msgpack:"investment_amount"`
	InitialPrice            float64 `json:"initial_price" msgpack:"initial_price"`
	FinalPrice              float64 `json:"final_price" msgpack:"final_price"`
	SharesBought            float64 `json:"shares_bought" msgpack:"shares_bought"`
	FinalValue              float64 `json:"final_value" msgpack:"final_value"`
	Profit                  float64 `json:"profit" msgpack:"profit"`
	ProfitPct               float64 `json:"profit_pct" msgpack:"profit_pct"`
	TotalReturnPct          float64 `json:"total_return_pct" msgpack:"total_return_pct"`
	AnnualizedReturnPct     float64 `json:"annualized_return_pct" msgpack:"annualized_return_pct"`
	AnnualizedVolatilityPct float64 `json:"annualized_volatility_pct" msgpack:"annualized_volatility_pct"`
	SharpeRatio             float64 `json:"sharpe_ratio" msgpack:"sharpe_ratio"`
	SortinoRatio            float64 `json:"sortino_ratio" msgpack:"sortino_ratio"`
	MaxDrawdownPct          float64 `json:"max_drawdown_pct" msgpack:"max_drawdown_pct"`

	Trades            []Trade                 `json:"trades" msgpack:"trades"`
	DailyReturns      []ReturnPoint           `json:"daily_returns" msgpack:"daily_returns"`
	CumulativeReturns []CumulativeReturnPoint `json:"cumulative_returns" msgpack:"cumulative_returns"`
}

// DailyReturns returns one point per day after the first.
// A zero previous close yields a 0% return. nil with fewer than two points.
func DailyReturns(s Series) []ReturnPoint {
	if s.Len() < 2 {
		return nil
	}

	return returnPoints(s, formulas.CalculateReturns(s.Closes()))
}

// CumulativeReturns returns the compounded return for every day, starting at 0%
// on the first day. nil with fewer than two points.
func CumulativeReturns(s Series) []CumulativeReturnPoint {
	if s.Len() < 2 {
		return nil
	}

	cumulative := formulas.CalculateCumulativeReturns(formulas.CalculateReturns(s.Closes()))
	return cumulativePoints(s, cumulative)
}

// returnPoints dates returns[i] with the close it ends on, s.At(i+1)
func returnPoints(s Series, returns []float64) []ReturnPoint {
	points := make([]ReturnPoint, len(returns))
	for i, r := range returns {
		points[i] = ReturnPoint{Date: s.At(i + 1).Date, ReturnPct: r * 100}
	}
	return points
}

func cumulativePoints(s Series, cumulative []float64) []CumulativeReturnPoint {
	points := make([]CumulativeReturnPoint, len(cumulative))
	for i, c := range cumulative {
		points[i] = CumulativeReturnPoint{Date: s.At(i).Date, CumulativeReturnPct: c * 100}
	}
	return points
}

// CalculatePerformance computes the buy-and-hold summary of investing
// investmentAmount at the first close and holding until the last one.
//
// Returns nil with fewer than two points or a non-positive initial price.
func CalculatePerformance(s Series, investmentAmount float64) *Performance {
	if s.Len() < 2 {
		return nil
	}

	first, _ := s.First()
	last, _ := s.Last()
	if first.Close <= 0 {
		return nil
	}

	closes := s.Closes()
	returns := formulas.CalculateReturns(closes)
	cumulative := formulas.CalculateCumulativeReturns(returns)
	totalReturn := cumulative[len(cumulative)-1]

	shares := investmentAmount / first.Close
	finalValue := shares * last.Close
	profit := finalValue - investmentAmount

	profitPct := 0.0
	if investmentAmount != 0 {
		profitPct = profit / investmentAmount * 100
	}

	days := formulas.ElapsedDays(first.Date.HoursUntil(last.Date))

	annualizedReturn := formulas.CalculateCAGR(totalReturn, days)

	// Dispersion needs at least two daily returns.
	var volatility, sharpe, sortino float64
	if len(returns) >= 2 {
		volatility = formulas.AnnualizedVolatility(returns)
		sharpe = formulas.CalculateSharpeRatio(annualizedReturn, volatility)
		sortino = formulas.CalculateSortinoRatio(annualizedReturn, returns)
	}

	maxDrawdown := *formulas.CalculateMaxDrawdown(closes)

	return &Performance{
		StartDate:               first.Date,
		EndDate:                 last.Date,
		Days:                    days,
		InvestmentAmount:        investmentAmount,
		InitialPrice:            first.Close,
		FinalPrice:              last.Close,
		SharesBought:            shares,
		FinalValue:              finalValue,
		Profit:                  profit,
		ProfitPct:               profitPct,
		TotalReturnPct:          totalReturn * 100,
		AnnualizedReturnPct:     annualizedReturn * 100,
		AnnualizedVolatilityPct: volatility * 100,
		SharpeRatio:             sharpe,
		SortinoRatio:            sortino,
		MaxDrawdownPct:          maxDrawdown * 100,
		Trades: []Trade{
			{Date: first.Date, Kind: TradeBuy, Price: first.Close, Shares: shares, Value: investmentAmount},
			{Date: last.Date, Kind: TradeValuation, Price: last.Close, Shares: shares, Value: finalValue},
		},
		DailyReturns:      returnPoints(s, returns),
		CumulativeReturns: cumulativePoints(s, cumulative),
	}
}
