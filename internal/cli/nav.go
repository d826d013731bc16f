package cli

import (
	"fmt"
	"strconv"
	"strings"

	"calgrid/internal/calendar"
	"calgrid/internal/locale"

	"github.com/spf13/cobra"
)

func newNavCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "nav <op>...",
		Short: "Navigate from the initial month and print the resulting grid",
		Long: strings.TrimSpace(`
Apply navigation ops in order, then print the grid and every event emitted.

Ops:
  next-month, prev-month
  next-year, prev-year
  next-decade, prev-decade
  month=N        show month N (1-12) of the current year
  year=N         show year N
  jump=DATE      show the month of DATE (clamped to the bounds)
  reset          clear the selection
`),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defer app.closeLog()
			s, err := app.session(cmd)
			if err != nil {
				return writeErr(cmd, err)
			}
			var events []calendar.Event
			for _, op := range args {
				ev, err := applyNavOp(s.picker, op)
				if err != nil {
					return writeErr(cmd, err)
				}
				s.log.Debug("nav", "op", op, "events", len(ev), "onScreen", s.picker.OnScreen())
				events = append(events, ev...)
			}
			return writeOut(cmd, app, s.payload(events))
		},
	}
}

func applyNavOp(p *calendar.Picker, op string) ([]calendar.Event, error) {
	name, value, hasValue := strings.Cut(strings.TrimSpace(op), "=")
	name = strings.ToLower(name)
	if !hasValue {
		switch name {
		case "next-month":
			return p.NextMonth(), nil
		case "prev-month":
			return p.PrevMonth(), nil
		case "next-year":
			return p.NextYear(), nil
		case "prev-year":
			return p.PrevYear(), nil
		case "next-decade":
			return p.NextDecade(), nil
		case "prev-decade":
			return p.PrevDecade(), nil
		case "reset":
			return p.Reset(), nil
		}
		return nil, unknownOpError{op: op}
	}

	value = locale.NormalizeDigits(strings.TrimSpace(value))
	switch name {
	case "month":
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 || n > 12 {
			return nil, fmt.Errorf("%s: month must be 1-12", op)
		}
		return p.GoToMonth(n), nil
	case "year":
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("%s: year must be a positive number", op)
		}
		return p.GoToYear(n), nil
	case "jump":
		d, err := calendar.ParseDate(value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		return p.JumpTo(d), nil
	}
	return nil, unknownOpError{op: op}
}
