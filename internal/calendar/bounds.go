package calendar

import (
	"errors"
	"fmt"
)

// ErrInvertedBounds is returned by NewBounds when min is after max.
var ErrInvertedBounds = errors.New("min date is after max date")

// Bounds is the inclusive range of dates a picker may show.
type Bounds struct {
	Min Date `json:"minDate"`
	Max Date `json:"maxDate"`
}

// DefaultBounds are used when no bounds are configured.
var DefaultBounds = Bounds{
	Min: Date{Year: 1900, Month: 1, Day: 1},
	Max: Date{Year: 2200, Month: 1, Day: 1},
}

// NewBounds returns Bounds{min, max}, or ErrInvertedBounds if min > max.
func NewBounds(min, max Date) (Bounds, error) {
	if min.After(max) {
		return Bounds{}, fmt.Errorf("%w: %s > %s", ErrInvertedBounds, min, max)
	}
	return Bounds{Min: min, Max: max}, nil
}

// ClampDate returns Min if d is before it, Max if d is after it, and d otherwise.
func (b Bounds) ClampDate(d Date) Date {
	if d.Before(b.Min) {
		return b.Min
	}
	if d.After(b.Max) {
		return b.Max
	}
	return d
}

// ClampYear is the year-only form of ClampDate.
func (b Bounds) ClampYear(year int) int {
	if year < b.Min.Year {
		return b.Min.Year
	}
	if year > b.Max.Year {
		return b.Max.Year
	}
	return year
}

// Contains reports whether d is within the bounds.
func (b Bounds) Contains(d Date) bool {
	return !d.Before(b.Min) && !d.After(b.Max)
}
