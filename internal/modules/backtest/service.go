package backtest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/aristath/backtest/internal/clients/backtester"
	"github.com/aristath/backtest/internal/config"
	"github.com/aristath/backtest/internal/utils"
	"github.com/aristath/backtest/pkg/analytics"
)

// BackendClient resolves natural-language scenarios
type BackendClient interface {
	NaturalBacktest(ctx context.Context, prompt string) (*backtester.Result, error)
}

// Service provides backtest analysis operations
type Service struct {
	client   BackendClient
	defaults analytics.Options
	validate *validator.Validate
	metrics  *utils.PerformanceMetrics
	log      zerolog.Logger
}

// NewService creates a new backtest service.
// defaults are used whenever a request carries no options of its own.
func NewService(client BackendClient, defaults analytics.Options, log zerolog.Logger) *Service {
	return &Service{
		client:   client,
		defaults: defaults,
		validate: validator.New(),
		metrics:  utils.NewPerformanceMetrics("analysis"),
		log:      log.With().Str("service", "backtest").Logger(),
	}
}

// RunNatural resolves the prompt through the backend and analyzes the series it returns
func (s *Service) RunNatural(ctx context.Context, req NaturalRequest) (*Result, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	opts, err := s.ResolveOptions(req.Options)
	if err != nil {
		return nil, err
	}

	timer := utils.NewTimer("natural_backtest", s.log)
	reported, err := s.client.NaturalBacktest(ctx, req.Prompt)
	if err != nil {
		return nil, fmt.Errorf("natural backtest failed: %w", err)
	}
	timer.StopWithContext(map[string]interface{}{
		"symbol": reported.Symbol,
		"points": len(reported.DailyData),
	})

	points, err := reported.PricePoints()
	if err != nil {
		return nil, err
	}

	amount := reported.InitialInvestment.Float64()
	if amount <= 0 {
		s.log.Warn().Str("symbol", reported.Symbol).Msg("Backend reported no initial investment")
	}

	result := s.run(points, amount, reported.Currency, opts)
	result.Prompt = req.Prompt
	result.Source = &Source{
		Symbol:                   reported.Symbol,
		Name:                     reported.Name,
		Currency:                 reported.Currency,
		InitialInvestment:        amount,
		ReportedFinalValue:       reported.FinalValue.Float64(),
		ReportedProfitPercentage: reported.ProfitPercentage.Float64(),
	}
	result.Reconciliation = Reconcile(reported, result.Analysis.Performance)

	if rec := result.Reconciliation; rec != nil && !rec.Consistent {
		s.log.Warn().
			Str("id", result.ID).
			Str("symbol", reported.Symbol).
			Float64("final_value_delta", rec.FinalValueDelta).
			Float64("profit_pct_delta", rec.ProfitPctDelta).
			Msg("Backend figures disagree with computed performance")
	}

	return result, nil
}

// Analyze analyzes a caller-supplied series
func (s *Service) Analyze(req AnalyzeRequest) (*Result, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	opts, err := s.ResolveOptions(req.Options)
	if err != nil {
		return nil, err
	}

	points, err := backtester.ToPricePoints(req.DailyData)
	if err != nil {
		if errors.Is(err, backtester.ErrInvalidPayload) {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		return nil, err
	}

	return s.run(points, req.InvestmentAmount, req.Currency, opts), nil
}

// Indicators recomputes only the indicators of an already normalized series
func (s *Service) Indicators(series analytics.Series, override *analytics.Options) (analytics.Indicators, error) {
	opts, err := s.ResolveOptions(override)
	if err != nil {
		return analytics.Indicators{}, err
	}
	defer utils.OperationTimer("indicators", s.log)()
	return analytics.ComputeIndicators(series, opts), nil
}

// ResolveOptions returns override when set and valid, otherwise the service defaults
func (s *Service) ResolveOptions(override *analytics.Options) (analytics.Options, error) {
	if override == nil {
		return s.defaults, nil
	}
	if err := config.ValidateOptions(*override); err != nil {
		return analytics.Options{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return *override, nil
}

// Metrics returns the aggregated analysis timings
func (s *Service) Metrics() utils.MetricsSnapshot {
	return s.metrics.Snapshot()
}

// LogMetrics writes the aggregated analysis timings to the service log
func (s *Service) LogMetrics() {
	s.metrics.LogMetrics(s.log)
}

func (s *Service) run(points []analytics.PricePoint, amount float64, currency string, opts analytics.Options) *Result {
	timer := utils.NewTimer("analysis", s.log)
	series := analytics.Normalize(points)

	result := &Result{
		ID:          uuid.New().String(),
		Analysis:    analytics.AnalyzeSeries(series, amount, currency, opts),
		GeneratedAt: time.Now().UTC(),
	}

	elapsed := timer.Stop()
	s.metrics.Record(elapsed)

	if dropped := len(points) - series.Len(); dropped > 0 {
		s.log.Warn().Str("id", result.ID).Int("dropped", dropped).Msg("Dropped malformed price points")
	}
	s.log.Info().
		Str("id", result.ID).
		Int("points", series.Len()).
		Str("currency", currency).
		Bool("has_performance", result.Analysis.Performance != nil).
		Dur("duration", elapsed).
		Msg("Analysis completed")

	return result
}
