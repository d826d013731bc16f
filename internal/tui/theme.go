package tui

import (
	"context"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
	"time"

	"calgrid/internal/calendar"
	"calgrid/internal/docs"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// The grid must stay readable on light and dark terminals. Colors are
// lipgloss.AdaptiveColor pairs and faint text is only used on dark
// backgrounds.

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func faintIfDark(st lipgloss.Style) lipgloss.Style {
	if lipgloss.HasDarkBackground() {
		return st.Faint(true)
	}
	return st
}

var (
	colorMuted   lipgloss.TerminalColor = ac("240", "243")
	colorChrome  lipgloss.TerminalColor = ac("240", "245")
	colorAccent  lipgloss.TerminalColor = ac("27", "62")
	colorAccentF lipgloss.TerminalColor = ac("255", "235")
	colorToday   lipgloss.TerminalColor = ac("166", "214")
	colorRangeBg lipgloss.TerminalColor = ac("#dbe7ff", "#2a3350")
	colorRangeFg lipgloss.TerminalColor = ac("235", "252")
	colorError   lipgloss.TerminalColor = ac("160", "203")
)

type styles struct {
	title   lipgloss.Style
	weekday lipgloss.Style
	status  lipgloss.Style
	err     lipgloss.Style
	cursor  lipgloss.Style
	cells   map[calendar.Highlight]lipgloss.Style
}

func newStyles() styles {
	accent := lipgloss.NewStyle().Background(colorAccent).Foreground(colorAccentF).Bold(true)
	return styles{
		title:   lipgloss.NewStyle().Bold(true),
		weekday: faintIfDark(lipgloss.NewStyle().Foreground(colorChrome)),
		status:  faintIfDark(lipgloss.NewStyle().Foreground(colorMuted)),
		err:     lipgloss.NewStyle().Foreground(colorError),
		cursor:  lipgloss.NewStyle().Underline(true).Bold(true),
		cells: map[calendar.Highlight]lipgloss.Style{
			calendar.HighlightNone:       lipgloss.NewStyle(),
			calendar.HighlightFaded:      faintIfDark(lipgloss.NewStyle().Foreground(colorMuted)),
			calendar.HighlightToday:      lipgloss.NewStyle().Foreground(colorToday).Bold(true),
			calendar.HighlightPicked:     accent,
			calendar.HighlightRangeStart: accent,
			calendar.HighlightRangeEnd:   accent,
			calendar.HighlightInRange:    lipgloss.NewStyle().Background(colorRangeBg).Foreground(colorRangeFg),
		},
	}
}

func (s styles) cell(h calendar.Highlight) lipgloss.Style {
	if st, ok := s.cells[h]; ok {
		return st
	}
	return lipgloss.NewStyle()
}

// applyColorProfilePreference sets Lip Gloss's color profile for the TUI.
//
// termenv.EnvColorProfile also honors CLICOLOR, which can disable colors in
// a TUI by accident. Only NO_COLOR is honored here.
func applyColorProfilePreference() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}

	profile := termenv.ColorProfile()

	// Trust TERM/COLORTERM when they claim more than the detector reports.
	term := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	colorterm := strings.ToLower(strings.TrimSpace(os.Getenv("COLORTERM")))
	if strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit") {
		if profile != termenv.Ascii {
			profile = termenv.TrueColor
		}
	} else if strings.Contains(term, "256color") {
		if profile == termenv.Ascii || profile == termenv.ANSI {
			profile = termenv.ANSI256
		}
	}

	lipgloss.SetColorProfile(profile)
}

// applyThemePreference configures Lip Gloss's background detection.
//
// Priority:
// 1) CALGRID_TUI_THEME=light|dark|auto
// 2) the tui.theme config value
// 3) CALGRID_TUI_DARKBG=true|false
// 4) COLORFGBG heuristic ("fg;bg")
func applyThemePreference(configured string) {
	for _, v := range []string{os.Getenv("CALGRID_TUI_THEME"), configured} {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "light":
			lipgloss.SetHasDarkBackground(false)
			return
		case "dark":
			lipgloss.SetHasDarkBackground(true)
			return
		}
	}

	if v := strings.TrimSpace(os.Getenv("CALGRID_TUI_DARKBG")); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			lipgloss.SetHasDarkBackground(b)
			return
		}
	}

	// Use the last segment of COLORFGBG as the background.
	if v := strings.TrimSpace(os.Getenv("COLORFGBG")); v != "" {
		parts := strings.Split(v, ";")
		if bg, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1])); err == nil {
			lipgloss.SetHasDarkBackground(bg < 7)
			return
		}
	}

	// Terminal.app rarely sets COLORFGBG; fall back to the OS appearance.
	if runtime.GOOS == "darwin" {
		if dark, ok := macOSHasDarkAppearance(); ok {
			lipgloss.SetHasDarkBackground(dark)
		}
	}
}

func macOSHasDarkAppearance() (dark bool, ok bool) {
	// `defaults read -g AppleInterfaceStyle` prints "Dark" in dark mode and
	// exits 1 in light mode (key missing).
	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	out, err := exec.CommandContext(ctx, "defaults", "read", "-g", "AppleInterfaceStyle").CombinedOutput()
	if ctx.Err() != nil {
		return false, false
	}
	if err == nil {
		return strings.Contains(strings.ToLower(string(out)), "dark"), true
	}
	if ee, ok := err.(*exec.ExitError); ok && ee.ExitCode() == 1 {
		return false, true
	}
	return false, false
}

// docsStyle picks the glamour style matching the current palette.
func docsStyle() string {
	switch {
	case lipgloss.ColorProfile() == termenv.Ascii:
		return docs.StyleNoTTY
	case lipgloss.HasDarkBackground():
		return docs.StyleDark
	default:
		return docs.StyleLight
	}
}
