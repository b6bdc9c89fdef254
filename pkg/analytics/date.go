package analytics

import (
	"fmt"
	"time"
)

// DateLayout is the text form of a Date
const DateLayout = "2006-01-02"

// Date is a calendar day. It is stored as midnight UTC so that day arithmetic
// is not affected by local time zones or DST.
type Date struct {
	t time.Time
}

// NewDate returns the given calendar day
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf returns the calendar day of t in t's own location
func DateOf(t time.Time) Date {
	if t.IsZero() {
		return Date{}
	}
	year, month, day := t.Date()
	return NewDate(year, month, day)
}

// ParseDate parses YYYY-MM-DD, falling back to RFC3339 timestamps
func ParseDate(s string) (Date, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return DateOf(t), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: expected %s or RFC3339", s, DateLayout)
	}
	return DateOf(t), nil
}

// Time returns the day as midnight UTC
func (d Date) Time() time.Time { return d.t }

func (d Date) IsZero() bool { return d.t.IsZero() }

func (d Date) Before(other Date) bool { return d.t.Before(other.t) }

func (d Date) Equal(other Date) bool { return d.t.Equal(other.t) }

// HoursUntil returns the elapsed hours from d to other
func (d Date) HoursUntil(other Date) float64 {
	return other.t.Sub(d.t).Hours()
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(DateLayout)
}

// MarshalText implements encoding.TextMarshaler
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. An empty value yields the zero Date.
func (d *Date) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
