// Package tui hosts a calendar.Picker in a Bubble Tea program.
package tui

import (
	"log/slog"

	"calgrid/internal/calendar"
	"calgrid/internal/locale"

	tea "github.com/charmbracelet/bubbletea"
)

type Options struct {
	// Formatter renders day and year numbers. Nil means English digits.
	Formatter       *locale.Formatter
	ShortWeekLabels bool
	Logger          *slog.Logger

	// Glyphs and Theme are the tui.glyphs and tui.theme config values.
	// The CALGRID_TUI_GLYPHS and CALGRID_TUI_THEME env vars win over them.
	Glyphs string
	Theme  string
}

func Run(p *calendar.Picker, opts Options) error {
	applyColorProfilePreference()
	applyThemePreference(opts.Theme)
	applyGlyphPreference(opts.Glyphs)

	m, err := newModel(p, opts)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
