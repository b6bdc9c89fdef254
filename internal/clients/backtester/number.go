package backtester

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vmihailenco/msgpack/v5"
)

// Number is a numeric payload field that the backend may send as a JSON
// number, a numeric string, a {"_value": x} wrapper or a single-valued object.
// Anything else decodes as an unset Number.
type Number struct {
	Value decimal.Decimal
	Valid bool
}

// NewNumber returns a set Number
func NewNumber(f float64) Number {
	return Number{Value: decimal.NewFromFloat(f), Valid: true}
}

// Float64 returns the value, or 0 when unset
func (n Number) Float64() float64 {
	if !n.Valid {
		return 0
	}
	f, _ := n.Value.Float64()
	return f
}

// MarshalJSON implements json.Marshaler
func (n Number) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return []byte(n.Value.String()), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (n *Number) UnmarshalJSON(data []byte) error {
	*n = Number{}

	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if d, err := decimal.NewFromString(strings.TrimSpace(s)); err == nil {
			*n = Number{Value: d, Valid: true}
		}
		return nil

	case '{':
		return n.unmarshalObject(data)

	case '[', 't', 'f':
		return nil

	default:
		d, err := decimal.NewFromString(string(data))
		if err != nil {
			return fmt.Errorf("invalid number %s: %w", data, err)
		}
		*n = Number{Value: d, Valid: true}
		return nil
	}
}

// unmarshalObject prefers the "_value" key and otherwise takes the first
// member in document order, if it is a plain number
func (n *Number) unmarshalObject(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	if raw, ok := fields["_value"]; ok {
		return n.UnmarshalJSON(raw)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if _, err := dec.Token(); err != nil { // {
		return err
	}
	if !dec.More() {
		return nil
	}
	if _, err := dec.Token(); err != nil { // first key
		return err
	}
	tok, err := dec.Token()
	if err != nil {
		return nil
	}
	if num, ok := tok.(json.Number); ok {
		if d, err := decimal.NewFromString(num.String()); err == nil {
			*n = Number{Value: d, Valid: true}
		}
	}
	return nil
}

// EncodeMsgpack implements msgpack.CustomEncoder, writing a float or nil
func (n Number) EncodeMsgpack(enc *msgpack.Encoder) error {
	if !n.Valid {
		return enc.EncodeNil()
	}
	return enc.EncodeFloat64(n.Float64())
}

// DecodeMsgpack implements msgpack.CustomDecoder. Integers, floats and
// numeric strings are accepted; anything else decodes as unset.
func (n *Number) DecodeMsgpack(dec *msgpack.Decoder) error {
	*n = Number{}

	v, err := dec.DecodeInterfaceLoose()
	if err != nil {
		return err
	}

	switch v := v.(type) {
	case int64:
		*n = Number{Value: decimal.NewFromInt(v), Valid: true}
	case uint64:
		*n = Number{Value: decimal.NewFromUint64(v), Valid: true}
	case float64:
		*n = NewNumber(v)
	case string:
		if d, err := decimal.NewFromString(strings.TrimSpace(v)); err == nil {
			*n = Number{Value: d, Valid: true}
		}
	}
	return nil
}
