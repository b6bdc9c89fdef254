package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/aristath/backtest/internal/clients/backtester"
	"github.com/aristath/backtest/internal/modules/backtest"
)

// SeriesFile is a daily price series read from disk, with whatever the
// file said about the asset
type SeriesFile struct {
	DailyData         []backtester.DailyPoint
	Symbol            string
	Name              string
	Currency          string
	InitialInvestment float64
}

// LoadSeriesFile reads a series file. See ParseSeries for accepted layouts.
func LoadSeriesFile(path string) (*SeriesFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read series file: %w", err)
	}
	return ParseSeries(data)
}

// ParseSeries accepts a bare [{date, close}] array, a backend response
// envelope {status, result} or a bare backend result.
func ParseSeries(data []byte) (*SeriesFile, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, errors.New("series file is empty")
	}

	if data[0] == '[' {
		var daily []backtester.DailyPoint
		if err := json.Unmarshal(data, &daily); err != nil {
			return nil, fmt.Errorf("failed to parse price array: %w", err)
		}
		return &SeriesFile{DailyData: daily}, nil
	}

	var probe struct {
		Status string          `json:"status"`
		Result json.RawMessage `json:"result"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("failed to parse series file: %w", err)
	}

	var result *backtester.Result
	if probe.Status != "" || len(probe.Result) > 0 {
		decoded, err := backtester.DecodeResponse(data)
		if err != nil {
			return nil, err
		}
		result = decoded
	} else {
		result = &backtester.Result{}
		if err := json.Unmarshal(data, result); err != nil {
			return nil, fmt.Errorf("failed to parse backend result: %w", err)
		}
	}

	return &SeriesFile{
		DailyData:         result.DailyData,
		Symbol:            result.Symbol,
		Name:              result.Name,
		Currency:          result.Currency,
		InitialInvestment: result.InitialInvestment.Float64(),
	}, nil
}

// source describes the asset when the file named one
func (f *SeriesFile) source() *backtest.Source {
	if f.Symbol == "" && f.Name == "" {
		return nil
	}
	return &backtest.Source{
		Symbol:            f.Symbol,
		Name:              f.Name,
		Currency:          f.Currency,
		InitialInvestment: f.InitialInvestment,
	}
}
