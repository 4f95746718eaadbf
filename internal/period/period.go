// Package period resolves the date ranges offered by the dashboard filters.
package period

import (
	"errors"
	"fmt"
	"time"
)

// Kind is a named date range.
type Kind string

const (
	Today  Kind = "today"
	Week   Kind = "week"
	Month  Kind = "month"
	Last30 Kind = "last30"
	Custom Kind = "custom"
)

var (
	ErrUnknownKind   = errors.New("the date range must be one of today, week, month, last30 or custom")
	ErrInvertedRange = errors.New("the start date of a custom date range must not be after its end date")
)

// Range is an inclusive range of days. A zero From or Until leaves
// that side of the range open.
type Range struct {
	From  time.Time `json:"from" example:"2024-05-01T00:00:00Z"`  // First day of the range
	Until time.Time `json:"until" example:"2024-05-31T00:00:00Z"` // Last day of the range
}

// Resolve returns the Range for kind relative to now. from and until are
// only used for Custom ranges. An empty kind resolves to Month.
func Resolve(kind Kind, now time.Time, from, until time.Time) (Range, error) {
	today := day(now)

	switch kind {
	case Today:
		return Range{From: today, Until: today}, nil
	case Week:
		return Range{From: today.AddDate(0, 0, -int(today.Weekday())), Until: today}, nil
	case "", Month:
		first := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
		return Range{From: first, Until: first.AddDate(0, 1, -1)}, nil
	case Last30:
		return Range{From: today.AddDate(0, 0, -29), Until: today}, nil
	case Custom:
		r := Range{}
		if !from.IsZero() {
			r.From = day(from)
		}
		if !until.IsZero() {
			r.Until = day(until)
		}

		if !r.From.IsZero() && !r.Until.IsZero() && r.From.After(r.Until) {
			return Range{}, ErrInvertedRange
		}
		return r, nil
	}

	return Range{}, fmt.Errorf("%w, got '%s'", ErrUnknownKind, kind)
}

// Contains reports whether t falls on one of the days of the range.
func (r Range) Contains(t time.Time) bool {
	if !r.From.IsZero() && t.Before(r.From) {
		return false
	}

	if !r.Until.IsZero() && !t.Before(r.Until.AddDate(0, 0, 1)) {
		return false
	}

	return true
}

// End returns the first instant after the range, or the zero time
// if the range is open-ended.
func (r Range) End() time.Time {
	if r.Until.IsZero() {
		return time.Time{}
	}
	return r.Until.AddDate(0, 0, 1)
}

func day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
