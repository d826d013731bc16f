// Package calendar computes the day grid of a month view and keeps the
// navigation and selection state of a date picker built on top of it.
//
// Dates are plain (year, month, day) triples. There is no time of day and no
// time zone; the only calendar arithmetic performed is month length and the
// weekday of the first of a month, both delegated to a System.
package calendar

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidDateFormat is returned when a date string is not of the form
// YYYY-MM-DD or YYYY/MM/DD.
var ErrInvalidDateFormat = errors.New("invalid date format")

// Date is a calendar date. Month is 1-12 and Day is 1-31; the triple itself
// is not checked against month lengths.
type Date struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// NewDate is shorthand for Date{year, month, day}.
func NewDate(year, month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// Compare orders dates by year, then month, then day. It returns -1, 0 or +1.
func (d Date) Compare(o Date) int {
	switch {
	case d.Year != o.Year:
		return sign(d.Year - o.Year)
	case d.Month != o.Month:
		return sign(d.Month - o.Month)
	default:
		return sign(d.Day - o.Day)
	}
}

func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }
func (d Date) After(o Date) bool  { return d.Compare(o) > 0 }

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool { return d == Date{} }

// SameMonth reports whether d falls in the given year and month.
func (d Date) SameMonth(year, month int) bool {
	return d.Year == year && d.Month == month
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// ParseDate parses YYYY-MM-DD or YYYY/MM/DD. Leading zeros are optional
// ("2024-2-1" is accepted). The separator must be the same throughout.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	sep := "-"
	if !strings.Contains(s, sep) {
		sep = "/"
	}
	parts := strings.Split(s, sep)
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("%w: %q (expected YYYY-MM-DD)", ErrInvalidDateFormat, s)
	}
	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return Date{}, fmt.Errorf("%w: %q (expected YYYY-MM-DD)", ErrInvalidDateFormat, s)
		}
		nums[i] = n
	}
	d := Date{Year: nums[0], Month: nums[1], Day: nums[2]}
	if d.Year < 1 || d.Month < 1 || d.Month > 12 || d.Day < 1 || d.Day > 31 {
		return Date{}, fmt.Errorf("%w: %q is out of range", ErrInvalidDateFormat, s)
	}
	return d, nil
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}
