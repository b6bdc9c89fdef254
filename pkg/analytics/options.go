package analytics

import "github.com/aristath/backtest/pkg/formulas"

// BollingerOptions configures the Bollinger bands indicator
type BollingerOptions struct {
	Enabled bool    `json:"enabled" yaml:"enabled" msgpack:"enabled"`
	Period  int     `json:"period" yaml:"period" msgpack:"period" validate:"required_if=Enabled true,omitempty,min=1"`
	K       float64 `json:"k" yaml:"k" msgpack:"k" validate:"gte=0"`
}

// RSIOptions configures the relative strength index
type RSIOptions struct {
	Enabled bool `json:"enabled" yaml:"enabled" msgpack:"enabled"`
	Period  int  `json:"period" yaml:"period" msgpack:"period" validate:"required_if=Enabled true,omitempty,min=1"`
}

// DistributionOptions configures the return histogram.
// A zero BinWidth uses the default width.
type DistributionOptions struct {
	BinWidth float64 `json:"bin_width" yaml:"bin_width" msgpack:"bin_width" validate:"gte=0"`
}

// Options selects which indicators Analyze computes and with which parameters
type Options struct {
	MovingAverages []int               `json:"moving_averages" yaml:"moving_averages" msgpack:"moving_averages" validate:"dive,min=1"`
	EMA            []int               `json:"ema" yaml:"ema" msgpack:"ema" validate:"dive,min=1"`
	Bollinger      BollingerOptions    `json:"bollinger" yaml:"bollinger" msgpack:"bollinger"`
	RSI            RSIOptions          `json:"rsi" yaml:"rsi" msgpack:"rsi"`
	Distribution   DistributionOptions `json:"distribution" yaml:"distribution" msgpack:"distribution"`
}

// DefaultOptions returns MA 20/50/200, Bollinger(20, 2), RSI(14) and 0.25 point bins
func DefaultOptions() Options {
	return Options{
		MovingAverages: []int{20, 50, 200},
		Bollinger: BollingerOptions{
			Enabled: true,
			Period:  DefaultBollingerPeriod,
			K:       DefaultBollingerK,
		},
		RSI: RSIOptions{
			Enabled: true,
			Period:  DefaultRSIPeriod,
		},
		Distribution: DistributionOptions{
			BinWidth: formulas.DefaultBinWidth,
		},
	}
}
