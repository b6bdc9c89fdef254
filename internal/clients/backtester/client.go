// Package backtester provides a client for the natural-language backtest API.
// The backend parses a free-text scenario and returns the daily closes of the
// asset it picked, together with its own summary figures.
package backtester

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

const defaultTimeout = 30 * time.Second

var (
	// ErrBackendRejected is returned when the backend answers with status "error"
	// or a non-2xx status code
	ErrBackendRejected = errors.New("backtest request rejected")
	// ErrInvalidPayload is returned when a response cannot be used for analysis
	ErrInvalidPayload = errors.New("invalid backtest payload")
)

var validate = validator.New()

// Client is the backtest API client.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        zerolog.Logger
}

// NewClient creates a new backtest API client.
// A non-positive timeout falls back to 30 seconds.
func NewClient(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log.With().Str("client", "backtester").Logger(),
	}
}

// NaturalBacktest sends a free-text scenario and returns the backend's result
func (c *Client) NaturalBacktest(ctx context.Context, prompt string) (*Result, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return nil, fmt.Errorf("prompt is required")
	}

	body, err := c.doRequest(ctx, "/natural-backtest", NaturalBacktestRequest{Prompt: prompt})
	if err != nil {
		return nil, err
	}

	result, err := DecodeResponse(body)
	if err != nil {
		return nil, err
	}

	c.log.Debug().
		Str("symbol", result.Symbol).
		Str("currency", result.Currency).
		Int("points", len(result.DailyData)).
		Msg("Backtest received")

	return result, nil
}

// DecodeResponse parses and validates a backend response body
func DecodeResponse(body []byte) (*Result, error) {
	var resp Response
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	if resp.Status == StatusError {
		msg := resp.Message
		if msg == "" {
			msg = "no message"
		}
		return nil, fmt.Errorf("%w: %s", ErrBackendRejected, msg)
	}
	if resp.Result == nil {
		return nil, fmt.Errorf("%w: missing result", ErrInvalidPayload)
	}
	if err := validate.Struct(resp.Result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	return resp.Result, nil
}

// doRequest performs a JSON POST against the backend and returns the raw body
func (c *Client) doRequest(ctx context.Context, path string, payload interface{}) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	c.log.Debug().
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("Backtest API request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// The backend reports failures in the usual envelope when it can
		var envelope Response
		if json.Unmarshal(respBody, &envelope) == nil && envelope.Message != "" {
			return nil, fmt.Errorf("%w: status %d: %s", ErrBackendRejected, resp.StatusCode, envelope.Message)
		}
		return nil, fmt.Errorf("%w: status %d, body: %s", ErrBackendRejected, resp.StatusCode, string(respBody))
	}

	return respBody, nil
}
