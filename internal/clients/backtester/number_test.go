package backtester

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func TestNumber_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
		valid bool
	}{
		{name: "number", input: `1234.5`, want: 1234.5, valid: true},
		{name: "exponent", input: `1e3`, want: 1000, valid: true},
		{name: "numeric string", input: `"-12.75"`, want: -12.75, valid: true},
		{name: "padded string", input: `" 42 "`, want: 42, valid: true},
		{name: "wrapped value", input: `{"_value": 990000}`, want: 990000, valid: true},
		{name: "wrapped string", input: `{"_value": "3.5"}`, want: 3.5, valid: true},
		{name: "single valued object", input: `{"amount": 7.25}`, want: 7.25, valid: true},
		{name: "first member in document order", input: `{"b": 2, "a": 1}`, want: 2, valid: true},
		{name: "object with string member", input: `{"amount": "7"}`, valid: false},
		{name: "empty object", input: `{}`, valid: false},
		{name: "non-numeric string", input: `"n/a"`, valid: false},
		{name: "null", input: `null`, valid: false},
		{name: "boolean", input: `true`, valid: false},
		{name: "array", input: `[1]`, valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n Number
			require.NoError(t, json.Unmarshal([]byte(tt.input), &n))
			assert.Equal(t, tt.valid, n.Valid)
			assert.Equal(t, tt.want, n.Float64())
		})
	}
}

func TestNumber_InStruct(t *testing.T) {
	var payload struct {
		Value Number `json:"value"`
		Other Number `json:"other"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"value": "0.1"}`), &payload))
	assert.True(t, payload.Value.Valid)
	assert.Equal(t, "0.1", payload.Value.Value.String())
	assert.False(t, payload.Other.Valid, "absent field")
}

func TestNumber_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(struct {
		A Number `json:"a"`
		B Number `json:"b"`
	}{A: NewNumber(12.5)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a": 12.5, "b": null}`, string(data))
}

func TestNumber_Msgpack(t *testing.T) {
	tests := []struct {
		name  string
		input interface{}
		want  float64
		valid bool
	}{
		{name: "float", input: 185.6, want: 185.6, valid: true},
		{name: "small int", input: 7, want: 7, valid: true},
		{name: "large uint", input: uint64(1_000_000), want: 1_000_000, valid: true},
		{name: "numeric string", input: "78500", want: 78500, valid: true},
		{name: "non-numeric string", input: "n/a", valid: false},
		{name: "nil", input: nil, valid: false},
		{name: "boolean", input: true, valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := msgpack.Marshal(tt.input)
			require.NoError(t, err)

			var n Number
			require.NoError(t, msgpack.Unmarshal(data, &n))
			assert.Equal(t, tt.valid, n.Valid)
			assert.Equal(t, tt.want, n.Float64())
		})
	}
}

func TestDailyPoint_MsgpackKeys(t *testing.T) {
	data, err := msgpack.Marshal([]DailyPoint{
		{Date: "2024-01-02", Close: NewNumber(100.5)},
		{Date: "2024-01-03"},
	})
	require.NoError(t, err)

	var raw []map[string]interface{}
	require.NoError(t, msgpack.Unmarshal(data, &raw))
	require.Len(t, raw, 2)
	assert.Equal(t, "2024-01-02", raw[0]["date"])
	assert.Equal(t, 100.5, raw[0]["close"])
	assert.Contains(t, raw[1], "close")
	assert.Nil(t, raw[1]["close"], "unset close encodes as nil")

	var points []DailyPoint
	require.NoError(t, msgpack.Unmarshal(data, &points))
	assert.Equal(t, 100.5, points[0].Close.Float64())
	assert.False(t, points[1].Close.Valid)
}
