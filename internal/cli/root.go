package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"calgrid/internal/config"
	"calgrid/internal/format"
	"calgrid/internal/tui"

	"github.com/spf13/cobra"
)

type App struct {
	ConfigPath string

	Date       string
	ActiveDate string
	MinDate    string
	MaxDate    string

	Range            bool
	OnlyCurrentMonth bool
	HideFadedRow     bool
	NoHighlightToday bool
	ShortWeekLabels  bool
	Locale           string

	Format     string
	PrettyJSON bool

	LogLevel string
	LogFile  string

	cfg       *config.Config
	logCloser io.Closer
}

func NewRootCmd() *cobra.Command {
	return newRootCmd(&App{})
}

func newRootCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "calgrid",
		Short:        "Calendar grid and date-range picker (CLI + TUI)",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive picker
  calgrid

  # Pick a range, starting on March 2024
  calgrid --range --date 2024-03-01

  # Print the grid of a month
  calgrid grid --date 2024-02-01 --format text

  # Navigate without a terminal UI
  calgrid nav --date 2024-01-15 prev-month next-decade

  # Feed clicks into the range selection
  calgrid select --range 2024-05-20 2024-03-01
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, app)
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := app.loadConfig(); err != nil {
			return writeErr(cmd, err)
		}
		return nil
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&app.ConfigPath, "config", envOr("CALGRID_CONFIG", ""), "Path to config.yaml (default: ~/.calgrid/config.yaml)")
	pf.StringVar(&app.Date, "date", "", "Initial on-screen date, YYYY-MM-DD (default: today)")
	pf.StringVar(&app.ActiveDate, "active-date", "", "Date highlighted as today (default: --date)")
	pf.StringVar(&app.MinDate, "min-date", "", "Earliest date that can be shown (default: 1900-01-01)")
	pf.StringVar(&app.MaxDate, "max-date", "", "Latest date that can be shown (default: 2200-01-01)")
	pf.BoolVar(&app.Range, "range", false, "Select a date range instead of a single date")
	pf.BoolVar(&app.OnlyCurrentMonth, "only-current-month", false, "Hide bleed-in days of adjacent months")
	pf.BoolVar(&app.HideFadedRow, "hide-faded-row", false, "Drop trailing rows that only hold next-month days")
	pf.BoolVar(&app.NoHighlightToday, "no-highlight-today", false, "Do not highlight the active date")
	pf.BoolVar(&app.ShortWeekLabels, "short-week-labels", false, "Two-letter weekday labels")
	pf.StringVar(&app.Locale, "locale", envOr("CALGRID_LOCALE", ""), "Language for digits, BCP 47 (e.g. en, fa)")
	pf.StringVar(&app.Format, "format", envOr("CALGRID_FORMAT", "json"), "Output format ("+strings.Join(format.Names(), "|")+")")
	pf.BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON/EDN output")
	pf.StringVar(&app.LogLevel, "log-level", envOr("CALGRID_LOG_LEVEL", "warn"), "Log level (debug|info|warn|error)")
	pf.StringVar(&app.LogFile, "log-file", envOr("CALGRID_LOG_FILE", ""), "Append logs to this file")

	cmd.AddCommand(newGridCmd(app))
	cmd.AddCommand(newNavCmd(app))
	cmd.AddCommand(newSelectCmd(app))
	cmd.AddCommand(newDocsCmd(app))
	cmd.AddCommand(newConfigCmd(app))

	return cmd
}

func runTUI(cmd *cobra.Command, app *App) error {
	defer app.closeLog()
	// The TUI owns the terminal: never log to stderr while it runs.
	logger, err := app.logger(cmd, false)
	if err != nil {
		return writeErr(cmd, err)
	}
	p, err := app.newPicker(cmd, logger)
	if err != nil {
		return writeErr(cmd, err)
	}
	f, err := app.formatter(cmd)
	if err != nil {
		return writeErr(cmd, err)
	}
	opts := tui.Options{
		Formatter:       f,
		ShortWeekLabels: app.shortWeekLabels(cmd),
		Logger:          logger,
	}
	if app.cfg.TUI != nil {
		opts.Glyphs = app.cfg.TUI.Glyphs
		opts.Theme = app.cfg.TUI.Theme
	}
	return tui.Run(p, opts)
}

func (app *App) loadConfig() error {
	var (
		cfg *config.Config
		err error
	)
	if app.ConfigPath != "" {
		cfg, err = config.LoadFile(app.ConfigPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	app.cfg = cfg
	return nil
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
