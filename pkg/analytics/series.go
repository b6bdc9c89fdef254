// Package analytics turns a daily price series and an investment amount into
// performance, drawdown, distribution and indicator results.
//
// Every function is pure: results are freshly allocated, hold no reference to
// their input and are safe to compute concurrently. A calculator that does not
// have enough observations returns nil instead of an error.
package analytics

import (
	"math"
	"sort"
)

// PricePoint is one daily close
type PricePoint struct {
	Date  Date    `json:"date" msgpack:"date"`
	Close float64 `json:"close" msgpack:"close"`
}

// Series is a normalized price series, ascending by date
type Series struct {
	points []PricePoint
}

// Normalize returns a sorted copy of points. Points without a date, or with a
// NaN, infinite or negative close, are dropped. Sorting is stable, so duplicate
// dates keep their input order.
func Normalize(points []PricePoint) Series {
	valid := make([]PricePoint, 0, len(points))
	for _, p := range points {
		if p.Date.IsZero() || math.IsNaN(p.Close) || math.IsInf(p.Close, 0) || p.Close < 0 {
			continue
		}
		valid = append(valid, p)
	}

	sort.SliceStable(valid, func(i, j int) bool {
		return valid[i].Date.Before(valid[j].Date)
	})

	return Series{points: valid}
}

func (s Series) Len() int { return len(s.points) }

// Points returns a copy of the normalized points
func (s Series) Points() []PricePoint {
	return append([]PricePoint(nil), s.points...)
}

// Closes returns the closing prices in date order
func (s Series) Closes() []float64 {
	closes := make([]float64, len(s.points))
	for i, p := range s.points {
		closes[i] = p.Close
	}
	return closes
}

// At returns the i-th point
func (s Series) At(i int) PricePoint { return s.points[i] }

// First returns the earliest point. ok is false for an empty series.
func (s Series) First() (p PricePoint, ok bool) {
	if len(s.points) == 0 {
		return PricePoint{}, false
	}
	return s.points[0], true
}

// Last returns the latest point. ok is false for an empty series.
func (s Series) Last() (p PricePoint, ok bool) {
	if len(s.points) == 0 {
		return PricePoint{}, false
	}
	return s.points[len(s.points)-1], true
}
