package cli

import (
	"fmt"

	"calgrid/internal/calendar"
	"calgrid/internal/locale"

	"github.com/spf13/cobra"
)

func newSelectCmd(app *App) *cobra.Command {
	var follow bool

	cmd := &cobra.Command{
		Use:   "select <date>...",
		Short: "Click dates and print the resulting selection",
		Long: "Click each date in order, as if picked on the grid. With --range two clicks " +
			"form a range and a third click clears it.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defer app.closeLog()
			s, err := app.session(cmd)
			if err != nil {
				return writeErr(cmd, err)
			}
			var events []calendar.Event
			for _, arg := range args {
				d, err := calendar.ParseDate(locale.NormalizeDigits(arg))
				if err != nil {
					return writeErr(cmd, fmt.Errorf("select %q: %w", arg, err))
				}
				if follow && !d.SameMonth(s.picker.OnScreen().Year, s.picker.OnScreen().Month) {
					events = append(events, s.picker.JumpTo(d)...)
				}
				events = append(events, s.picker.OnDayClicked(d)...)
			}
			return writeOut(cmd, app, s.payload(events))
		},
	}

	cmd.Flags().BoolVar(&follow, "follow", false, "Show the month of each clicked date before clicking it")

	return cmd
}
