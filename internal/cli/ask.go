package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/aristath/backtest/internal/clients/backtester"
	"github.com/aristath/backtest/internal/config"
	"github.com/aristath/backtest/internal/modules/backtest"
)

func newAskCmd(app *App) *cobra.Command {
	var (
		apiURL  string
		timeout time.Duration
		flags   optionFlags
	)

	cmd := &cobra.Command{
		Use:   "ask <prompt>",
		Short: "Backtest a scenario described in plain language",
		Long: `Send a natural-language scenario to the backtest backend, then analyze
the price series it resolves. The backend URL comes from --api or BACKTEST_API_URL.`,
		Example: `  backtest ask "1,000,000 won of Samsung Electronics bought on 2024-01-02"
  backtest ask "5000 dollars of Apple last year" --api http://localhost:8000/api`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if apiURL != "" {
				cfg.BacktestAPIURL = apiURL
			}
			if cmd.Flags().Changed("timeout") {
				cfg.BacktestAPITimeout = timeout
			}

			opts, err := flags.resolve(cfg.Analysis)
			if err != nil {
				return err
			}

			client := backtester.NewClient(cfg.BacktestAPIURL, cfg.BacktestAPITimeout, app.Log)
			service := backtest.NewService(client, opts, app.Log)

			result, err := service.RunNatural(cmd.Context(), backtest.NaturalRequest{Prompt: args[0]})
			if err != nil {
				return err
			}

			return flags.print(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().StringVar(&apiURL, "api", "", "backtest backend base URL")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "backend request timeout")
	flags.register(cmd)

	return cmd
}
