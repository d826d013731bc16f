package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"calgrid/internal/calendar"
	"calgrid/internal/locale"

	"github.com/spf13/cobra"
)

// now is replaced in tests.
var now = time.Now

func today() calendar.Date {
	t := now()
	return calendar.NewDate(t.Year(), int(t.Month()), t.Day())
}

// dateSetting is a date string and where it came from: a flag, or a config
// file key when the flag was not given.
type dateSetting struct {
	value string
	flag  string
	key   string
}

func newDateSetting(flag, flagValue, key, cfgValue string) dateSetting {
	if strings.TrimSpace(flagValue) != "" || key == "" {
		return dateSetting{value: locale.NormalizeDigits(flagValue), flag: flag}
	}
	return dateSetting{value: locale.NormalizeDigits(cfgValue), key: key}
}

func (s dateSetting) wrap(err error) error {
	if s.flag != "" {
		return flagError{flag: s.flag, err: err}
	}
	return fmt.Errorf("%s: %w", s.key, err)
}

// boolSetting returns the flag value when it was given and the config value
// otherwise.
func boolSetting(cmd *cobra.Command, name string, flag, cfg bool) bool {
	if cmd.Flags().Changed(name) {
		return flag
	}
	return cfg
}

// dates parses the initial, active and bounding dates. Flags win over the
// config file; the initial date defaults to today.
func (app *App) dates() (calendar.Config, error) {
	settings := map[string]dateSetting{
		calendar.FieldInitial: newDateSetting("date", app.Date, "", ""),
		calendar.FieldActive:  newDateSetting("active-date", app.ActiveDate, "", ""),
		calendar.FieldMin:     newDateSetting("min-date", app.MinDate, "minDate", app.cfg.MinDate),
		calendar.FieldMax:     newDateSetting("max-date", app.MaxDate, "maxDate", app.cfg.MaxDate),
	}
	initial := settings[calendar.FieldInitial].value
	if strings.TrimSpace(initial) == "" {
		initial = today().String()
	}
	cfg, err := calendar.ParseConfig(initial,
		settings[calendar.FieldActive].value,
		settings[calendar.FieldMin].value,
		settings[calendar.FieldMax].value)
	var fe *calendar.DateFieldError
	if errors.As(err, &fe) {
		return calendar.Config{}, settings[fe.Field].wrap(fe.Err)
	}
	return cfg, err
}

func (app *App) pickerConfig(cmd *cobra.Command) (calendar.Config, error) {
	cfg, err := app.dates()
	if err != nil {
		return calendar.Config{}, err
	}
	cfg.RangePicker = boolSetting(cmd, "range", app.Range, app.cfg.RangePicker)
	cfg.Grid = calendar.GridOptions{
		OnlyShowCurrentMonthDays: boolSetting(cmd, "only-current-month", app.OnlyCurrentMonth, app.cfg.OnlyShowCurrentMonthDays),
		HideLastFadedRow:         boolSetting(cmd, "hide-faded-row", app.HideFadedRow, app.cfg.HideLastFadedRow),
	}
	cfg.HighlightToday = !boolSetting(cmd, "no-highlight-today", app.NoHighlightToday, !app.cfg.Highlight())
	cfg.System = calendar.Gregorian
	return cfg, nil
}

func (app *App) newPicker(cmd *cobra.Command, logger *slog.Logger) (*calendar.Picker, error) {
	cfg, err := app.pickerConfig(cmd)
	if err != nil {
		return nil, err
	}
	cfg.Logger = logger
	return calendar.New(cfg)
}

func (app *App) formatter(cmd *cobra.Command) (*locale.Formatter, error) {
	tag := app.cfg.Locale
	if cmd.Flags().Changed("locale") || app.Locale != "" {
		tag = app.Locale
	}
	f, err := locale.New(tag)
	if err != nil {
		return nil, flagError{flag: "locale", err: err}
	}
	return f, nil
}

func (app *App) shortWeekLabels(cmd *cobra.Command) bool {
	return boolSetting(cmd, "short-week-labels", app.ShortWeekLabels, app.cfg.ShortWeekLabels)
}
