package tui

import (
	"strings"

	"calgrid/internal/calendar"
	"calgrid/internal/locale"

	"github.com/charmbracelet/x/ansi"
)

const cellWidth = 4

func (m model) View() string {
	if m.showHelp {
		return m.helpText + "\n\n" + m.styles.status.Render("? or esc to close")
	}
	switch m.view {
	case viewMonths, viewYears, viewDecades:
		return m.listView()
	}
	return m.calendarView()
}

func (m model) calendarView() string {
	lineWidth := cellWidth * calendar.WeekLength
	on := m.p.OnScreen()

	var b strings.Builder
	title := m.f.MonthTitle(m.p.System(), on.Year, on.Month)
	title = center(title, lineWidth-2)
	b.WriteString(glyphPrev())
	b.WriteString(m.styles.title.Render(title))
	b.WriteString(strings.Repeat(" ", max(0, lineWidth-2-ansi.StringWidth(title))))
	b.WriteString(glyphNext())
	b.WriteByte('\n')

	var head strings.Builder
	for _, label := range locale.WeekdayLabels(m.p.System(), m.opts.ShortWeekLabels) {
		head.WriteString(padLeft(label, cellWidth))
	}
	b.WriteString(m.styles.weekday.Render(head.String()))
	b.WriteByte('\n')

	grid := m.p.Grid()
	hideFaded := m.p.Options().OnlyShowCurrentMonthDays
	for r, row := range grid {
		for c, cell := range row {
			b.WriteString(m.cellView(cell, m.p.Highlight(r, c), hideFaded))
		}
		b.WriteByte('\n')
	}

	b.WriteString(m.styles.status.Render(strings.Repeat(glyphHRule(), lineWidth)))
	b.WriteByte('\n')
	b.WriteString(m.footer())
	return b.String()
}

func (m model) cellView(cell calendar.Cell, h calendar.Highlight, hideFaded bool) string {
	if h == calendar.HighlightFaded && hideFaded {
		return strings.Repeat(" ", cellWidth)
	}
	marker := " "
	day := padLeft(m.f.Int(cell.Day), 2)
	st := m.styles.cell(h)
	if cell.InMonth() && cell.Day == m.cursor {
		marker = glyphCursor()
		st = st.Inherit(m.styles.cursor)
	}
	return marker + st.Render(day) + " "
}

func (m model) footer() string {
	var lines []string
	switch {
	case m.jumping:
		lines = append(lines, m.jump.View())
	case m.err != nil:
		lines = append(lines, m.styles.err.Render(m.err.Error()))
	case m.status != "":
		lines = append(lines, m.styles.status.Render(m.status))
	}
	lines = append(lines, m.help.View(m.keys))
	return strings.Join(lines, "\n")
}

func (m model) listView() string {
	var b strings.Builder
	b.WriteString(m.styles.title.Render(m.list.Title))
	b.WriteByte('\n')
	b.WriteString(m.list.View())
	b.WriteByte('\n')
	b.WriteString(m.styles.status.Render("enter pick, esc back"))
	return b.String()
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
		return ansi.Truncate(s, width, "")
	}
	return strings.Repeat(" ", (width-n)/2) + s
}
