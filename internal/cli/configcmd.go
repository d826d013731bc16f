package cli

import (
	"calgrid/internal/calendar"
	"calgrid/internal/config"

	"github.com/spf13/cobra"
)

type configPayload struct {
	Path   string          `json:"path"`
	File   *config.Config  `json:"file"`
	Bounds calendar.Bounds `json:"bounds"`
	Picker pickerSettings  `json:"picker"`
	Locale string          `json:"locale"`
}

type pickerSettings struct {
	RangePicker     bool                 `json:"rangePicker"`
	Grid            calendar.GridOptions `json:"grid"`
	HighlightToday  bool                 `json:"highlightToday"`
	ShortWeekLabels bool                 `json:"shortWeekLabels"`
}

func newConfigCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long:  "Show the config file in use and the settings that result from it, the environment and flags.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := app.ConfigPath
			if path == "" {
				p, err := config.Path()
				if err != nil {
					return writeErr(cmd, err)
				}
				path = p
			}
			pc, err := app.pickerConfig(cmd)
			if err != nil {
				return writeErr(cmd, err)
			}
			f, err := app.formatter(cmd)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, envelope{Data: configPayload{
				Path:   path,
				File:   app.cfg,
				Bounds: pc.Bounds,
				Picker: pickerSettings{
					RangePicker:     pc.RangePicker,
					Grid:            pc.Grid,
					HighlightToday:  pc.HighlightToday,
					ShortWeekLabels: app.shortWeekLabels(cmd),
				},
				Locale: f.Tag().String(),
			}})
		},
	}
}
