package cli

import (
	"log/slog"

	"calgrid/internal/calendar"
	"calgrid/internal/locale"

	"github.com/spf13/cobra"
)

// session bundles what the non-interactive commands share.
type session struct {
	picker *calendar.Picker
	f      *locale.Formatter
	short  bool
	log    *slog.Logger
}

func (app *App) session(cmd *cobra.Command) (*session, error) {
	logger, err := app.logger(cmd, true)
	if err != nil {
		return nil, err
	}
	p, err := app.newPicker(cmd, logger)
	if err != nil {
		return nil, err
	}
	f, err := app.formatter(cmd)
	if err != nil {
		return nil, err
	}
	return &session{picker: p, f: f, short: app.shortWeekLabels(cmd), log: logger}, nil
}

func (s *session) payload(events []calendar.Event) envelope {
	return envelope{Data: newGridPayload(s.picker, s.f, s.short, events)}
}

func newGridCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "grid",
		Short: "Print the day grid of the initial month",
		Long:  "Print the day grid of the month holding --date, with the highlight of every cell.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer app.closeLog()
			s, err := app.session(cmd)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, s.payload(nil))
		},
	}
}
