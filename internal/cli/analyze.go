package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/aristath/backtest/internal/config"
	"github.com/aristath/backtest/internal/modules/backtest"
	"github.com/aristath/backtest/internal/utils"
	"github.com/aristath/backtest/pkg/analytics"
)

// optionFlags are the analysis flags shared by analyze and ask
type optionFlags struct {
	configPath string
	ma         string
	asJSON     bool
}

func (f *optionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.configPath, "config", "", "YAML file with analysis options")
	cmd.Flags().StringVar(&f.ma, "ma", "", "moving average periods, e.g. 20,60,120")
	cmd.Flags().BoolVar(&f.asJSON, "json", false, "print the full result as JSON")
}

// resolve overlays the flags on base
func (f *optionFlags) resolve(base analytics.Options) (analytics.Options, error) {
	opts := base
	if f.configPath != "" {
		loaded, err := config.LoadAnalysisOptions(f.configPath)
		if err != nil {
			return analytics.Options{}, err
		}
		opts = loaded
	}
	if f.ma != "" {
		periods, err := utils.ParseIntCSV(f.ma)
		if err != nil {
			return analytics.Options{}, fmt.Errorf("invalid --ma: %w", err)
		}
		opts.MovingAverages = periods
	}
	return opts, nil
}

func (f *optionFlags) print(w io.Writer, result *backtest.Result) error {
	if f.asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
	return PrintReport(w, result)
}

func newAnalyzeCmd(app *App) *cobra.Command {
	var (
		file     string
		amount   float64
		currency string
		flags    optionFlags
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze a price series from a file",
		Long: `Replay a lump-sum investment over a daily price series read from a file.
The file holds either a [{"date", "close"}] array or a saved backend payload.
Amount and currency default to the payload's own figures when it has them.`,
		Example: `  backtest analyze --file samsung.json --amount 1000000
  backtest analyze --file aapl.json --amount 5000 --currency USD --ma 20,60`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			series, err := LoadSeriesFile(file)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("amount") {
				amount = series.InitialInvestment
			}
			if currency == "" {
				currency = series.Currency
			}

			opts, err := flags.resolve(analytics.DefaultOptions())
			if err != nil {
				return err
			}

			service := backtest.NewService(nil, opts, app.Log)
			result, err := service.Analyze(backtest.AnalyzeRequest{
				DailyData:        series.DailyData,
				InvestmentAmount: amount,
				Currency:         currency,
			})
			if err != nil {
				return err
			}
			result.Source = series.source()

			return flags.print(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "price series file (JSON)")
	cmd.Flags().Float64VarP(&amount, "amount", "a", 0, "amount invested on the first day")
	cmd.Flags().StringVarP(&currency, "currency", "c", "", "ISO currency code, e.g. KRW or USD")
	flags.register(cmd)
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
