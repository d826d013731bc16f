package cli

import (
	"fmt"
	"io"
	"strings"

	"calgrid/internal/calendar"
	"calgrid/internal/format"
	"calgrid/internal/locale"

	"github.com/charmbracelet/x/ansi"
)

const cellWidth = 4

type envelope struct {
	Data any `json:"data"`
}

func (e envelope) WriteText(w io.Writer) error {
	if t, ok := e.Data.(format.Texter); ok {
		return t.WriteText(w)
	}
	return format.WriteJSON(w, e.Data, true)
}

// gridPayload is the state of a picker after a command ran.
type gridPayload struct {
	OnScreen    calendar.Date          `json:"onScreen"`
	Active      calendar.Date          `json:"active"`
	Title       string                 `json:"title"`
	RangePicker bool                   `json:"rangePicker"`
	Weekdays    []string               `json:"weekdays"`
	Grid        calendar.Grid          `json:"grid"`
	Highlights  [][]calendar.Highlight `json:"highlights"`
	Selection   []calendar.Date        `json:"selection"`
	Picked      *calendar.Date         `json:"picked,omitempty"`
	Events      []calendar.Event       `json:"events,omitempty"`

	f         *locale.Formatter
	hideFaded bool
}

func newGridPayload(p *calendar.Picker, f *locale.Formatter, short bool, events []calendar.Event) gridPayload {
	on := p.OnScreen()
	out := gridPayload{
		OnScreen:    on,
		Active:      p.Active(),
		Title:       f.MonthTitle(p.System(), on.Year, on.Month),
		RangePicker: p.RangePicker(),
		Weekdays:    locale.WeekdayLabels(p.System(), short),
		Grid:        p.Grid(),
		Highlights:  p.Highlights(),
		Selection:   p.Selection(),
		Events:      events,
		f:           f,
		hideFaded:   p.Options().OnlyShowCurrentMonthDays,
	}
	if d, ok := p.Picked(); ok {
		out.Picked = &d
	}
	return out
}

func (g gridPayload) WriteText(w io.Writer) error {
	var b strings.Builder
	lineWidth := cellWidth * calendar.WeekLength
	b.WriteString(center(g.Title, lineWidth))
	b.WriteByte('\n')
	for _, label := range g.Weekdays {
		b.WriteString(padLeft(label, cellWidth))
	}
	b.WriteByte('\n')
	for r, row := range g.Grid {
		for c, cell := range row {
			b.WriteString(g.cellText(cell, g.Highlights[r][c]))
		}
		b.WriteByte('\n')
	}
	if len(g.Selection) > 0 {
		parts := make([]string, len(g.Selection))
		for i, d := range g.Selection {
			parts[i] = d.String()
		}
		fmt.Fprintf(&b, "selection: %s\n", strings.Join(parts, " .. "))
	}
	if g.Picked != nil {
		fmt.Fprintf(&b, "picked: %s\n", g.Picked)
	}
	for _, e := range g.Events {
		fmt.Fprintf(&b, "event: %s\n", e)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// cellText renders a cell in cellWidth columns: [dd] for picked days and
// range edges, -dd- inside a range, (dd) for today.
func (g gridPayload) cellText(cell calendar.Cell, h calendar.Highlight) string {
	if h == calendar.HighlightFaded && g.hideFaded {
		return strings.Repeat(" ", cellWidth)
	}
	day := padLeft(g.f.Int(cell.Day), 2)
	switch h {
	case calendar.HighlightPicked, calendar.HighlightRangeStart, calendar.HighlightRangeEnd:
		return "[" + day + "]"
	case calendar.HighlightInRange:
		return "-" + day + "-"
	case calendar.HighlightToday:
		return "(" + day + ")"
	default:
		return " " + day + " "
	}
}

func padLeft(s string, width int) string {
	if n := ansi.StringWidth(s); n < width {
		return strings.Repeat(" ", width-n) + s
	}
	return s
}

func center(s string, width int) string {
	n := ansi.StringWidth(s)
	if n >= width {
		return s
	}
	left := (width - n) / 2
	return strings.Repeat(" ", left) + s
}
