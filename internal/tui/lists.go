package tui

import (
	"calgrid/internal/calendar"
	"calgrid/internal/locale"

	"github.com/charmbracelet/bubbles/list"
)

// listItem is one entry of the month, year or decade list. value is the
// month (1-12), the year, or the first year of the decade.
type listItem struct {
	value int
	label string
}

func (i listItem) FilterValue() string { return i.label }
func (i listItem) Title() string       { return i.label }
func (i listItem) Description() string { return "" }

func newList(title string, items []list.Item) list.Model {
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	d.SetSpacing(0)

	l := list.New(items, d, 0, 0)
	l.Title = title
	// The header and footer are drawn by the model.
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	// Bubble list quits on ESC by default; here ESC goes back to the grid.
	l.KeyMap.Quit.SetKeys("q")
	l.KeyMap.CursorUp.SetKeys(append(l.KeyMap.CursorUp.Keys(), "ctrl+p")...)
	l.KeyMap.CursorDown.SetKeys(append(l.KeyMap.CursorDown.Keys(), "ctrl+n")...)
	return l
}

// monthItems lists the months of year that overlap the bounds.
func monthItems(sys calendar.System, b calendar.Bounds, year int) []list.Item {
	var items []list.Item
	for m := 1; m <= 12; m++ {
		first := calendar.NewDate(year, m, 1)
		last := calendar.NewDate(year, m, calendar.DaysInMonth(sys, year, m-1))
		if last.Before(b.Min) || first.After(b.Max) {
			continue
		}
		items = append(items, listItem{value: m, label: calendar.MonthName(sys, m)})
	}
	return items
}

// yearItems lists the years of the decade starting at decade that fall
// within the bounds.
func yearItems(f *locale.Formatter, b calendar.Bounds, decade int) []list.Item {
	var items []list.Item
	for y := decade; y < decade+10; y++ {
		if y < b.Min.Year || y > b.Max.Year {
			continue
		}
		items = append(items, listItem{value: y, label: f.YearTitle(y)})
	}
	return items
}

func decadeItems(f *locale.Formatter, b calendar.Bounds) []list.Item {
	var items []list.Item
	for d := calendar.DecadeStart(b.Min.Year); d <= b.Max.Year; d += 10 {
		items = append(items, listItem{value: d, label: f.DecadeTitle(d)})
	}
	return items
}

// indexOf returns the position of the item holding value, or 0.
func indexOf(items []list.Item, value int) int {
	for i, it := range items {
		if li, ok := it.(listItem); ok && li.value == value {
			return i
		}
	}
	return 0
}
