// Package main is the entry point for the backtest API server.
//
// The server resolves natural-language investment scenarios through the
// backtest backend, analyzes the returned price series and serves the
// results over HTTP and WebSocket.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aristath/backtest/internal/clients/backtester"
	"github.com/aristath/backtest/internal/config"
	"github.com/aristath/backtest/internal/modules/backtest"
	"github.com/aristath/backtest/internal/server"
	"github.com/aristath/backtest/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallbackLog := logger.New(logger.Config{
			Level:  "info",
			Pretty: true,
		})
		fallbackLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.LogPretty,
	})
	logger.SetGlobalLogger(log)

	log.Info().
		Str("backend", cfg.BacktestAPIURL).
		Dur("backend_timeout", cfg.BacktestAPITimeout).
		Str("analysis_config", cfg.AnalysisConfigPath).
		Msg("Starting backtest server")

	client := backtester.NewClient(cfg.BacktestAPIURL, cfg.BacktestAPITimeout, log)
	service := backtest.NewService(client, cfg.Analysis, log)

	srv := server.New(server.Config{
		Log:     log,
		Service: service,
		Port:    cfg.Port,
		DevMode: cfg.DevMode,
	})

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().Int("port", cfg.Port).Msg("Server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	service.LogMetrics()
	log.Info().Msg("Server stopped")
}
