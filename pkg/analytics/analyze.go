package analytics

// MovingAverage is one moving average series and its period
type MovingAverage struct {
	Period int              `json:"period" msgpack:"period"`
	Points []IndicatorPoint `json:"points" msgpack:"points"`
}

// Indicators holds every technical indicator selected by Options.
// A series that cannot fill its window is nil.
type Indicators struct {
	MovingAverages []MovingAverage  `json:"moving_averages" msgpack:"moving_averages"`
	EMA            []MovingAverage  `json:"ema,omitempty" msgpack:"ema,omitempty"`
	Bollinger      []BollingerPoint `json:"bollinger" msgpack:"bollinger"`
	RSI            []IndicatorPoint `json:"rsi" msgpack:"rsi"`
}

// Analysis is the complete result for one series and investment amount.
// Currency is carried through untouched.
type Analysis struct {
	Currency         string          `json:"currency,omitempty" msgpack:"currency,omitempty"`
	InvestmentAmount float64         `json:"investment_amount" msgpack:"investment_amount"`
	Prices           []PricePoint    `json:"prices" msgpack:"prices"`
	Performance      *Performance    `json:"performance" msgpack:"performance"`
	Drawdown         *DrawdownReport `json:"drawdown" msgpack:"drawdown"`
	Distribution     *Distribution   `json:"distribution" msgpack:"distribution"`
	Indicators       Indicators      `json:"indicators" msgpack:"indicators"`
}

// Analyze normalizes points and runs every calculator over the result
func Analyze(points []PricePoint, investmentAmount float64, currency string, opts Options) Analysis {
	return AnalyzeSeries(Normalize(points), investmentAmount, currency, opts)
}

// AnalyzeSeries runs every calculator over an already normalized series
func AnalyzeSeries(s Series, investmentAmount float64, currency string, opts Options) Analysis {
	return Analysis{
		Currency:         currency,
		InvestmentAmount: investmentAmount,
		Prices:           s.Points(),
		Performance:      CalculatePerformance(s, investmentAmount),
		Drawdown:         CalculateDrawdown(s),
		Distribution:     CalculateDistribution(s, opts.Distribution.BinWidth),
		Indicators:       ComputeIndicators(s, opts),
	}
}

// ComputeIndicators computes the indicators enabled in opts
func ComputeIndicators(s Series, opts Options) Indicators {
	var ind Indicators

	for _, period := range opts.MovingAverages {
		ind.MovingAverages = append(ind.MovingAverages, MovingAverage{Period: period, Points: SMA(s, period)})
	}
	for _, period := range opts.EMA {
		ind.EMA = append(ind.EMA, MovingAverage{Period: period, Points: EMA(s, period)})
	}
	if opts.Bollinger.Enabled {
		ind.Bollinger = Bollinger(s, opts.Bollinger.Period, opts.Bollinger.K)
	}
	if opts.RSI.Enabled {
		ind.RSI = RSI(s, opts.RSI.Period)
	}

	return ind
}
