package calendar

import (
	"fmt"
	"strings"
)

// Date fields of ParseConfig, as reported by DateFieldError.
const (
	FieldInitial = "initial"
	FieldActive  = "active"
	FieldMin     = "min"
	FieldMax     = "max"
)

// DateFieldError reports which ParseConfig input failed to parse.
type DateFieldError struct {
	Field string
	Err   error
}

func (e *DateFieldError) Error() string {
	return fmt.Sprintf("%s date: %v", e.Field, e.Err)
}

func (e *DateFieldError) Unwrap() error { return e.Err }

// ParseConfig builds a Config from date strings in YYYY-MM-DD or YYYY/MM/DD
// form. Empty min or max keep DefaultBounds and an empty active date
// defaults to initial. The remaining fields are left for the caller.
//
// Unparseable dates are reported as *DateFieldError; inverted bounds as
// ErrInvertedBounds.
func ParseConfig(initial, active, minDate, maxDate string) (Config, error) {
	var cfg Config
	fields := []struct {
		name  string
		value string
		dst   *Date
	}{
		{FieldInitial, initial, &cfg.Initial},
		{FieldActive, active, &cfg.Active},
		{FieldMin, minDate, &cfg.Bounds.Min},
		{FieldMax, maxDate, &cfg.Bounds.Max},
	}
	cfg.Bounds = DefaultBounds
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			continue
		}
		d, err := ParseDate(f.value)
		if err != nil {
			return Config{}, &DateFieldError{Field: f.name, Err: err}
		}
		*f.dst = d
	}
	if cfg.Initial.IsZero() {
		return Config{}, &DateFieldError{Field: FieldInitial, Err: fmt.Errorf("%w: empty", ErrInvalidDateFormat)}
	}
	b, err := NewBounds(cfg.Bounds.Min, cfg.Bounds.Max)
	if err != nil {
		return Config{}, err
	}
	cfg.Bounds = b
	return cfg, nil
}
