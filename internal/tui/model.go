package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"calgrid/internal/calendar"
	"calgrid/internal/docs"
	"calgrid/internal/locale"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type view int

const (
	viewCalendar view = iota
	viewMonths
	viewYears
	viewDecades
)

const (
	defaultWidth  = 40
	defaultHeight = 16
)

type model struct {
	p    *calendar.Picker
	f    *locale.Formatter
	log  *slog.Logger
	opts Options

	keys   keyMap
	help   help.Model
	styles styles

	view   view
	list   list.Model
	decade int // first year of the decade shown by the year list

	// cursor is the day of the on-screen month under the cursor.
	cursor int

	jumping bool
	jump    textinput.Model

	showHelp bool
	helpText string

	status string
	err    error

	width, height int
}

func newModel(p *calendar.Picker, opts Options) (model, error) {
	f := opts.Formatter
	if f == nil {
		var err error
		if f, err = locale.New(""); err != nil {
			return model{}, err
		}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	ti := textinput.New()
	ti.Prompt = "jump to: "
	ti.Placeholder = "YYYY-MM-DD"
	ti.CharLimit = 10

	m := model{
		p:      p,
		f:      f,
		log:    logger.With("ui", "tui"),
		opts:   opts,
		keys:   defaultKeyMap(),
		help:   help.New(),
		styles: newStyles(),
		jump:   ti,
		cursor: p.OnScreen().Day,
		width:  defaultWidth,
		height: defaultHeight,
	}
	m.clampCursor()
	return m, nil
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		if m.view != viewCalendar {
			m.list.SetSize(msg.Width, m.listHeight())
		}
		if m.showHelp {
			m.helpText = m.renderHelp()
		}
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch {
		case m.jumping:
			return m.updateJump(msg)
		case m.showHelp:
			switch msg.String() {
			case "?", "esc", "q":
				m.showHelp = false
			}
			return m, nil
		case m.view != viewCalendar:
			return m.updateList(msg)
		}
		return m.updateCalendar(msg)
	}
	return m, nil
}

func (m model) updateCalendar(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.err = nil
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-calendar.WeekLength)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(calendar.WeekLength)
	case key.Matches(msg, m.keys.Click):
		if row, col, ok := m.p.Grid().Find(m.cursor); ok {
			m.handle(m.p.ClickCell(row, col))
		}
	case key.Matches(msg, m.keys.PrevMonth):
		m.handle(m.p.PrevMonth())
	case key.Matches(msg, m.keys.NextMonth):
		m.handle(m.p.NextMonth())
	case key.Matches(msg, m.keys.PrevYear):
		m.handle(m.p.PrevYear())
	case key.Matches(msg, m.keys.NextYear):
		m.handle(m.p.NextYear())
	case key.Matches(msg, m.keys.PrevDecade):
		m.handle(m.p.PrevDecade())
	case key.Matches(msg, m.keys.NextDecade):
		m.handle(m.p.NextDecade())
	case key.Matches(msg, m.keys.Home):
		initial := m.p.Initial()
		m.handle(m.p.JumpTo(initial))
		m.cursor = initial.Day
		m.clampCursor()
	case key.Matches(msg, m.keys.Reset):
		m.handle(m.p.Reset())
	case key.Matches(msg, m.keys.Months):
		m.openMonths()
	case key.Matches(msg, m.keys.Years):
		m.openYears(calendar.DecadeStart(m.p.OnScreen().Year))
	case key.Matches(msg, m.keys.Decades):
		m.openDecades()
	case key.Matches(msg, m.keys.Jump):
		m.jumping = true
		m.jump.SetValue("")
		cmd := m.jump.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		m.helpText = m.renderHelp()
	}
	return m, nil
}

func (m model) updateJump(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.jumping = false
		m.jump.Blur()
		return m, nil
	case "enter":
		d, err := calendar.ParseDate(locale.NormalizeDigits(strings.TrimSpace(m.jump.Value())))
		m.jumping = false
		m.jump.Blur()
		if err != nil {
			m.err = err
			return m, nil
		}
		m.err = nil
		m.handle(m.p.JumpTo(d))
		m.cursor = m.p.OnScreen().Day
		m.clampCursor()
		if b := m.p.Bounds(); !b.Contains(d) {
			m.status = fmt.Sprintf("%s is outside %s to %s", d, b.Min, b.Max)
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.jump, cmd = m.jump.Update(msg)
	return m, cmd
}

func (m model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.view = viewCalendar
		return m, nil
	case "enter":
		it, ok := m.list.SelectedItem().(listItem)
		if !ok {
			return m, nil
		}
		switch m.view {
		case viewMonths:
			m.handle(m.p.GoToMonth(it.value))
			m.view = viewCalendar
		case viewYears:
			m.handle(m.p.GoToYear(it.value))
			m.openMonths()
		case viewDecades:
			m.openYears(it.value)
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *model) openMonths() {
	on := m.p.OnScreen()
	items := monthItems(m.p.System(), m.p.Bounds(), on.Year)
	m.showList(viewMonths, m.f.YearTitle(on.Year), items, indexOf(items, on.Month))
}

func (m *model) openYears(decade int) {
	items := yearItems(m.f, m.p.Bounds(), decade)
	m.decade = decade
	m.showList(viewYears, m.f.DecadeTitle(decade), items, indexOf(items, m.p.OnScreen().Year))
}

func (m *model) openDecades() {
	year := m.p.OnScreen().Year
	items := decadeItems(m.f, m.p.Bounds())
	m.showList(viewDecades, m.f.DecadeTitle(year), items, indexOf(items, calendar.DecadeStart(year)))
}

// showList switches to a list view. The list is sized before selecting so
// the selection lands on the right page.
func (m *model) showList(v view, title string, items []list.Item, selected int) {
	m.list = newList(title, items)
	m.list.SetSize(m.width, m.listHeight())
	m.list.Select(selected)
	m.view = v
}

func (m model) listHeight() int {
	// Header, rule and footer.
	if h := m.height - 4; h > 3 {
		return h
	}
	return 3
}

func (m *model) moveCursor(delta int) {
	m.cursor += delta
	m.clampCursor()
}

func (m *model) clampCursor() {
	n := m.p.Grid().CurrentMonthDays()
	if m.cursor > n {
		m.cursor = n
	}
	if m.cursor < 1 {
		m.cursor = 1
	}
}

// handle applies the events of a picker command to the host state.
func (m *model) handle(events []calendar.Event) {
	for _, e := range events {
		m.log.Debug("event", "kind", e.Kind.String(), "value", e.Value)
		switch e.Kind {
		case calendar.EventMonthChanged, calendar.EventYearChanged:
			m.clampCursor()
		case calendar.EventDayPicked:
			if d, ok := m.p.Picked(); ok {
				m.status = "picked " + d.String()
			}
		case calendar.EventSelectionChanged:
			m.status = m.selectionStatus()
		case calendar.EventHighlightCleared:
			m.status = "selection cleared"
		}
	}
}

func (m model) selectionStatus() string {
	sel := m.p.Selection()
	switch len(sel) {
	case 0:
		return ""
	case 1:
		return fmt.Sprintf("from %s", sel[0])
	default:
		return fmt.Sprintf("%s %s %s", sel[0], glyphRangeSep(), sel[len(sel)-1])
	}
}

func (m model) renderHelp() string {
	body, ok := docs.Get("keys")
	if !ok {
		return ""
	}
	return docs.Render(body, m.width, docsStyle())
}
