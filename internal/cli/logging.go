package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func parseLogLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, flagError{flag: "log-level", err: err}
	}
	return lvl, nil
}

// logger builds the slog logger for a command. Logs go to --log-file when
// set; otherwise to stderr when allowed, and nowhere when not.
func (app *App) logger(cmd *cobra.Command, stderrOK bool) (*slog.Logger, error) {
	lvl, err := parseLogLevel(app.LogLevel)
	if err != nil {
		return nil, err
	}
	var w io.Writer
	switch {
	case strings.TrimSpace(app.LogFile) != "":
		f, err := os.OpenFile(app.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("log file: %w", err)
		}
		app.logCloser = f
		w = f
	case stderrOK:
		w = cmd.ErrOrStderr()
	default:
		return slog.New(slog.DiscardHandler), nil
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})).With("cmd", cmd.Name()), nil
}

func (app *App) closeLog() {
	if app.logCloser != nil {
		_ = app.logCloser.Close()
		app.logCloser = nil
	}
}
