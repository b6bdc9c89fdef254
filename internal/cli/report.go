package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/aristath/backtest/internal/modules/backtest"
	"github.com/aristath/backtest/internal/utils"
	"github.com/aristath/backtest/pkg/analytics"
)

// PrintReport writes a plain-text summary of one analysis run
func PrintReport(w io.Writer, result *backtest.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	a := result.Analysis
	money := func(v float64) string { return utils.FormatCurrency(v, a.Currency) }

	if src := result.Source; src != nil {
		fmt.Fprintf(tw, "%s (%s)\n", src.Name, src.Symbol)
	}
	if result.Prompt != "" {
		fmt.Fprintf(tw, "Prompt:\t%s\n", result.Prompt)
	}

	perf := a.Performance
	if perf == nil {
		fmt.Fprintf(tw, "Not enough data for performance: %d valid price(s), need at least 2\n", len(a.Prices))
		return tw.Flush()
	}

	fmt.Fprintf(tw, "Period:\t%s to %s (%.0f days)\n", perf.StartDate, perf.EndDate, perf.Days)
	fmt.Fprintf(tw, "Invested:\t%s at %s\n", money(perf.InvestmentAmount), money(perf.InitialPrice))
	fmt.Fprintf(tw, "Shares:\t%.4f\n", perf.SharesBought)
	fmt.Fprintf(tw, "Final value:\t%s at %s\n", money(perf.FinalValue), money(perf.FinalPrice))
	fmt.Fprintf(tw, "Profit:\t%s (%s)\n", money(perf.Profit), utils.FormatPercent(perf.ProfitPct))
	fmt.Fprintln(tw)

	fmt.Fprintf(tw, "Annualized return:\t%s\n", utils.FormatPercent(perf.AnnualizedReturnPct))
	fmt.Fprintf(tw, "Annualized volatility:\t%.2f%%\n", perf.AnnualizedVolatilityPct)
	fmt.Fprintf(tw, "Sharpe ratio:\t%.2f\n", perf.SharpeRatio)
	fmt.Fprintf(tw, "Sortino ratio:\t%.2f\n", perf.SortinoRatio)

	if dd := a.Drawdown; dd != nil {
		fmt.Fprintf(tw, "Max drawdown:\t%.2f%%\n", dd.MaxDrawdownPct)
		fmt.Fprintf(tw, "Current drawdown:\t%.2f%% from %s on %s (%d days)\n",
			dd.CurrentDrawdownPct, money(dd.PeakPrice), dd.PeakDate, dd.DaysInDrawdown)
	}

	if dist := a.Distribution; dist != nil {
		fmt.Fprintf(tw, "Mean daily return:\t%s (%d bins of %.2f%%)\n",
			utils.FormatPercent(dist.MeanReturnPct), len(dist.Histogram), dist.BinWidth)
	}

	printIndicators(tw, a.Indicators, money)

	if rec := result.Reconciliation; rec != nil {
		fmt.Fprintln(tw)
		status := "consistent"
		if !rec.Consistent {
			status = "MISMATCH"
		}
		fmt.Fprintf(tw, "Backend figures:\t%s\n", status)
		fmt.Fprintf(tw, "  final value:\t%s reported, %s computed\n", money(rec.ReportedFinalValue), money(rec.ComputedFinalValue))
		fmt.Fprintf(tw, "  profit:\t%s reported, %s computed\n", utils.FormatPercent(rec.ReportedProfitPct), utils.FormatPercent(rec.ComputedProfitPct))
	}

	return tw.Flush()
}

func printIndicators(w io.Writer, ind analytics.Indicators, money func(float64) string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Latest indicators:")

	for _, ma := range ind.MovingAverages {
		fmt.Fprintf(w, "  SMA %d:\t%s\n", ma.Period, lastValue(ma.Points, money))
	}
	for _, ma := range ind.EMA {
		fmt.Fprintf(w, "  EMA %d:\t%s\n", ma.Period, lastValue(ma.Points, money))
	}
	if n := len(ind.Bollinger); n > 0 {
		b := ind.Bollinger[n-1]
		fmt.Fprintf(w, "  Bollinger:\t%s / %s / %s (position %.2f)\n",
			money(b.Upper), money(b.Middle), money(b.Lower), b.Position)
	}
	if n := len(ind.RSI); n > 0 {
		fmt.Fprintf(w, "  RSI:\t%.2f\n", ind.RSI[n-1].Value)
	}
}

func lastValue(points []analytics.IndicatorPoint, format func(float64) string) string {
	if len(points) == 0 {
		return "n/a"
	}
	return format(points[len(points)-1].Value)
}
