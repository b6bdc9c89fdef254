package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aristath/backtest/internal/modules/backtest"
)

const samsungPayload = `{
	"status": "ok",
	"result": {
		"symbol": "005930.KS",
		"name": "Samsung Electronics",
		"currency": "KRW",
		"initial_investment": 1000000,
		"final_value": 990000,
		"profit_percentage": -1,
		"daily_data": [
			{"date": "2024-01-02", "close": 100},
			{"date": "2024-01-03", "close": 110},
			{"date": "2024-01-04", "close": 99}
		]
	}
}`

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestAnalyzeCommand_Report(t *testing.T) {
	path := writeFile(t, "prices.json", `[
		{"date": "2024-01-02", "close": 100},
		{"date": "2024-01-03", "close": 110},
		{"date": "2024-01-04", "close": 99},
		{"date": "2024-01-05", "close": 105}
	]`)

	out, err := run(t, "analyze", "--file", path, "--amount", "1000", "--currency", "USD", "--ma", "2,3")
	require.NoError(t, err)

	assert.Contains(t, out, "2024-01-02 to 2024-01-05")
	assert.Contains(t, out, "$1,000.00")
	assert.Contains(t, out, "$1,050.00")
	assert.Contains(t, out, "+5.00%")
	assert.Contains(t, out, "SMA 2:")
	assert.Contains(t, out, "SMA 3:")
	assert.NotContains(t, out, "SMA 20:")
}

func TestAnalyzeCommand_PayloadDefaults(t *testing.T) {
	path := writeFile(t, "payload.json", samsungPayload)

	out, err := run(t, "analyze", "--file", path, "--json")
	require.NoError(t, err)

	var result backtest.Result
	require.NoError(t, json.Unmarshal([]byte(out), &result))

	assert.Equal(t, "KRW", result.Analysis.Currency)
	assert.Equal(t, 1_000_000.0, result.Analysis.InvestmentAmount)
	require.NotNil(t, result.Source)
	assert.Equal(t, "005930.KS", result.Source.Symbol)
	require.NotNil(t, result.Analysis.Performance)
	assert.InDelta(t, 990_000, result.Analysis.Performance.FinalValue, 1e-6)
}

func TestAnalyzeCommand_Config(t *testing.T) {
	prices := writeFile(t, "prices.json", `[{"date": "2024-01-02", "close": 10}, {"date": "2024-01-03", "close": 11}, {"date": "2024-01-04", "close": 12}]`)
	options := writeFile(t, "options.yaml", "moving_averages: [2]\nrsi: {enabled: false}\nbollinger: {enabled: false}\n")

	out, err := run(t, "analyze", "-f", prices, "-a", "100", "--config", options, "--json")
	require.NoError(t, err)

	var result backtest.Result
	require.NoError(t, json.Unmarshal([]byte(out), &result))

	require.Len(t, result.Analysis.Indicators.MovingAverages, 1)
	assert.Equal(t, 2, result.Analysis.Indicators.MovingAverages[0].Period)
	assert.Nil(t, result.Analysis.Indicators.RSI)
	assert.Nil(t, result.Analysis.Indicators.Bollinger)
}

func TestAnalyzeCommand_InsufficientData(t *testing.T) {
	path := writeFile(t, "one.json", `[{"date": "2024-01-02", "close": 10}]`)

	out, err := run(t, "analyze", "--file", path, "--amount", "100")
	require.NoError(t, err)
	assert.Contains(t, out, "Not enough data")
}

func TestAnalyzeCommand_Errors(t *testing.T) {
	prices := writeFile(t, "prices.json", `[{"date": "2024-01-02", "close": 10}]`)

	tests := []struct {
		name string
		args []string
	}{
		{name: "missing file flag", args: []string{"analyze", "--amount", "100"}},
		{name: "no amount anywhere", args: []string{"analyze", "--file", prices}},
		{name: "bad ma list", args: []string{"analyze", "--file", prices, "--amount", "1", "--ma", "20,x"}},
		{name: "missing config", args: []string{"analyze", "--file", prices, "--amount", "1", "--config", "/nonexistent.yaml"}},
		{name: "unreadable file", args: []string{"analyze", "--file", "/nonexistent.json", "--amount", "1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestAskCommand(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/natural-backtest", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(samsungPayload))
	}))
	defer backend.Close()

	t.Setenv("ANALYSIS_CONFIG", "")

	out, err := run(t, "ask", "bought Samsung with 1,000,000 won", "--api", backend.URL)
	require.NoError(t, err)

	assert.Contains(t, out, "Samsung Electronics (005930.KS)")
	assert.Contains(t, out, "1,000,000원")
	assert.Contains(t, out, "990,000원")
	assert.Contains(t, out, "consistent")
}

func TestAskCommand_BackendError(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "error", "message": "could not parse scenario"}`))
	}))
	defer backend.Close()

	t.Setenv("BACKTEST_API_URL", backend.URL)
	t.Setenv("ANALYSIS_CONFIG", "")

	_, err := run(t, "ask", "gibberish")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "could not parse scenario")
}
