// Package main is the entry point for the backtest command-line tool.
package main

import (
	"os"

	"github.com/aristath/backtest/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
