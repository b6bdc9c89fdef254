// Package cli provides the command-line interface for the backtest engine.
package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/aristath/backtest/pkg/logger"
)

// App holds state shared by every command
type App struct {
	Log zerolog.Logger

	logLevel string
	pretty   bool
}

// NewRootCmd builds the backtest command tree
func NewRootCmd() *cobra.Command {
	app := &App{Log: zerolog.Nop()}

	rootCmd := &cobra.Command{
		Use:   "backtest",
		Short: "Analyze historical investment scenarios",
		Long: `Replay a lump-sum investment over a daily price series and report
performance, risk, drawdown, return distribution and technical indicators.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			app.Log = logger.New(logger.Config{
				Level:  app.logLevel,
				Pretty: app.pretty,
				Output: cmd.ErrOrStderr(),
			})
		},
	}

	rootCmd.PersistentFlags().StringVar(&app.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&app.pretty, "pretty", false, "human-readable log output")

	rootCmd.AddCommand(newAnalyzeCmd(app))
	rootCmd.AddCommand(newAskCmd(app))

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
