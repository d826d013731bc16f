package calendar

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func newTestPicker(t *testing.T, cfg Config) *Picker {
	t.Helper()
	p, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return p
}

func ym(d Date) [2]int { return [2]int{d.Year, d.Month} }

func TestNewClampsInitialDate(t *testing.T) {
	p := newTestPicker(t, Config{Initial: NewDate(1800, 5, 5)})
	if got := p.OnScreen(); got != DefaultBounds.Min {
		t.Fatalf("on-screen = %s, want %s", got, DefaultBounds.Min)
	}
	if got := p.Active(); got != DefaultBounds.Min {
		t.Fatalf("active date defaults to the initial date; got %s", got)
	}

	p = newTestPicker(t, Config{Initial: NewDate(2300, 5, 5)})
	if got := p.OnScreen(); got != DefaultBounds.Max {
		t.Fatalf("on-screen = %s, want %s", got, DefaultBounds.Max)
	}
}

func TestNewRejectsInvertedBounds(t *testing.T) {
	_, err := New(Config{
		Initial: NewDate(2024, 1, 1),
		Bounds:  Bounds{Min: NewDate(2025, 1, 1), Max: NewDate(2024, 1, 1)},
	})
	if !errors.Is(err, ErrInvertedBounds) {
		t.Fatalf("expected ErrInvertedBounds, got %v", err)
	}
}

func TestLeapFebruaryScenario(t *testing.T) {
	p := newTestPicker(t, Config{Initial: NewDate(2024, 2, 1)})
	if got := DaysInMonth(p.System(), 2024, 1); got != 29 {
		t.Fatalf("DaysInMonth = %d", got)
	}
	if got := p.Grid().CurrentMonthDays(); got != 29 {
		t.Fatalf("current-month cells = %d, want 29", got)
	}
}

func TestPrevMonthRollsYear(t *testing.T) {
	p := newTestPicker(t, Config{Initial: NewDate(2024, 1, 1)})
	events := p.PrevMonth()
	if got, want := p.OnScreen(), NewDate(2023, 12, 1); got != want {
		t.Fatalf("on-screen = %s, want %s", got, want)
	}
	want := []Event{{Kind: EventMonthChanged, Value: 12}, {Kind: EventYearChanged, Value: 2023}}
	if diff := cmp.Diff(want, events); diff != "" {
		t.Fatalf("events mismatch (-want +got):\n%s", diff)
	}
	// Grid follows the on-screen month: December 2023 starts on a Friday.
	if c, _ := p.Grid().Cell(0, 5); c != (Cell{Day: 1, Kind: CurrentMonth}) {
		t.Fatalf("first of December at (0,5) = %+v", c)
	}
}

func TestMonthRoundTrip(t *testing.T) {
	for _, start := range []Date{NewDate(2024, 5, 15), NewDate(2023, 12, 1), NewDate(2024, 1, 1), NewDate(1950, 6, 30)} {
		p := newTestPicker(t, Config{Initial: start})
		p.NextMonth()
		p.PrevMonth()
		if got := p.OnScreen(); ym(got) != ym(start) {
			t.Errorf("next+prev from %s ended at %s", start, got)
		}
		p.PrevMonth()
		p.NextMonth()
		if got := p.OnScreen(); ym(got) != ym(start) {
			t.Errorf("prev+next from %s ended at %s", start, got)
		}
	}
}

func TestMonthNavigationRespectsBounds(t *testing.T) {
	b := Bounds{Min: NewDate(2020, 3, 15), Max: NewDate(2021, 2, 10)}

	p := newTestPicker(t, Config{Initial: NewDate(2020, 6, 20), Bounds: b})
	for i := 0; i < 30; i++ {
		p.PrevMonth()
		if p.OnScreen().Before(b.Min) {
			t.Fatalf("step %d: %s is before min %s", i, p.OnScreen(), b.Min)
		}
	}
	if got := p.OnScreen(); got != b.Min {
		t.Fatalf("expected to settle on min, got %s", got)
	}

	for i := 0; i < 30; i++ {
		p.NextMonth()
		if p.OnScreen().After(b.Max) {
			t.Fatalf("step %d: %s is after max %s", i, p.OnScreen(), b.Max)
		}
	}
	if got := p.OnScreen(); got != b.Max {
		t.Fatalf("expected to settle on max, got %s", got)
	}
}

func TestYearNavigation(t *testing.T) {
	tests := []struct {
		name    string
		initial Date
		steps   func(p *Picker) []Event
		want    Date
	}{
		{"next year", NewDate(2024, 6, 10), (*Picker).NextYear, NewDate(2025, 6, 10)},
		{"next year into the max year clamps to max", NewDate(2199, 6, 10), (*Picker).NextYear, NewDate(2200, 1, 1)},
		{"next year at the max year", NewDate(2200, 1, 1), (*Picker).NextYear, NewDate(2200, 1, 1)},
		{"prev year at min", NewDate(1900, 6, 10), (*Picker).PrevYear, NewDate(1900, 6, 10)},
		{"prev year into the min year keeps later dates", NewDate(1901, 6, 10), (*Picker).PrevYear, NewDate(1900, 6, 10)},
		{"next decade into the max year clamps to max", NewDate(2195, 9, 30), (*Picker).NextDecade, NewDate(2200, 1, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPicker(t, Config{Initial: tt.initial})
			events := tt.steps(p)
			if got := p.OnScreen(); got != tt.want {
				t.Fatalf("on-screen = %s, want %s", got, tt.want)
			}
			if p.OnScreen().After(DefaultBounds.Max) {
				t.Fatalf("on-screen %s is past max %s", p.OnScreen(), DefaultBounds.Max)
			}
			if diff := cmp.Diff(onScreenChanged(tt.want), events); diff != "" {
				t.Fatalf("events (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNextDecadeClampsToMaxYear(t *testing.T) {
	p := newTestPicker(t, Config{Initial: NewDate(2195, 1, 1)})
	p.NextDecade()
	if got := p.OnScreen().Year; got != 2200 {
		t.Fatalf("first next decade: %d", got)
	}
	events := p.NextDecade()
	if got := p.OnScreen().Year; got != 2200 {
		t.Fatalf("second next decade: %d", got)
	}
	if len(events) != 2 {
		t.Fatalf("clamped next decade still recomputes and notifies, got %v", events)
	}
	p.NextDecade()
	if got := p.OnScreen().Year; got != 2200 {
		t.Fatalf("third next decade: %d", got)
	}
}

func TestDecadeSnapsToMultipleOfTen(t *testing.T) {
	p := newTestPicker(t, Config{Initial: NewDate(2024, 7, 1)})
	p.NextDecade()
	if got := p.OnScreen().Year; got != 2030 {
		t.Fatalf("next decade from 2024 = %d", got)
	}
	p.PrevDecade()
	p.PrevDecade()
	if got := p.OnScreen().Year; got != 2010 {
		t.Fatalf("two prev decades from 2030 = %d", got)
	}
}

func TestPrevDecadeBelowMinSkipsRecompute(t *testing.T) {
	p := newTestPicker(t, Config{Initial: NewDate(1905, 3, 1)})
	before := p.Grid()

	events := p.PrevDecade()
	if events != nil {
		t.Fatalf("expected no events, got %v", events)
	}
	if got := p.OnScreen().Year; got != 1900 {
		t.Fatalf("year = %d, want 1900", got)
	}
	if diff := cmp.Diff(before, p.Grid()); diff != "" {
		t.Fatalf("grid was recomputed (-before +after):\n%s", diff)
	}
}

func TestClampedPrevDecadeKeepsGridDates(t *testing.T) {
	tests := []struct {
		name        string
		day         int
		rangePicker bool
		wantDate    Date
	}{
		{"leap day", 29, false, NewDate(1904, 2, 29)},
		{"first day", 1, false, NewDate(1904, 2, 1)},
		{"leap day in range mode", 29, true, NewDate(1904, 2, 29)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPicker(t, Config{
				Initial:     NewDate(1905, 2, 1),
				Active:      NewDate(1904, 2, 10),
				RangePicker: tt.rangePicker,
			})
			p.GoToYear(1904)
			if events := p.PrevDecade(); events != nil {
				t.Fatalf("expected no events, got %v", events)
			}
			if got := p.OnScreen().Year; got != 1900 {
				t.Fatalf("year = %d, want 1900", got)
			}

			row, col, ok := p.Grid().Find(tt.day)
			if !ok {
				t.Fatalf("day %d not in grid", tt.day)
			}
			d, ok := p.DateAt(row, col)
			if !ok {
				t.Fatalf("no date at %d,%d", row, col)
			}
			if diff := cmp.Diff(tt.wantDate, d); diff != "" {
				t.Fatalf("DateAt (-want +got):\n%s", diff)
			}
			if day, ok := p.Today(); !ok || day != 10 {
				t.Fatalf("Today = %d, %v; want 10, true", day, ok)
			}

			p.ClickCell(row, col)
			if !tt.rangePicker {
				if got, ok := p.Picked(); !ok || got != tt.wantDate {
					t.Fatalf("picked = %s, %v; want %s", got, ok, tt.wantDate)
				}
				return
			}
			if diff := cmp.Diff([]int{tt.day}, p.SelectedDaysOnScreen()); diff != "" {
				t.Fatalf("selected days (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGoToMonthAndYear(t *testing.T) {
	p := newTestPicker(t, Config{Initial: NewDate(2024, 1, 15)})
	events := p.GoToMonth(2)
	if got := p.OnScreen(); got != NewDate(2024, 2, 15) {
		t.Fatalf("go to month: %s", got)
	}
	if diff := cmp.Diff([]Event{{EventMonthChanged, 2}, {EventYearChanged, 2024}}, events); diff != "" {
		t.Fatalf("events (-want +got):\n%s", diff)
	}
	p.GoToYear(2023)
	if got := p.Grid().CurrentMonthDays(); got != 28 {
		t.Fatalf("February 2023 has %d days in grid", got)
	}
}

func TestJumpToClamps(t *testing.T) {
	p := newTestPicker(t, Config{Initial: NewDate(2024, 1, 15)})
	p.JumpTo(NewDate(1066, 10, 14))
	if got := p.OnScreen(); got != DefaultBounds.Min {
		t.Fatalf("jump: %s", got)
	}
}

func TestRangeClicks(t *testing.T) {
	p := newTestPicker(t, Config{Initial: NewDate(2024, 3, 1), RangePicker: true})

	p.OnDayClicked(NewDate(2024, 5, 20))
	events := p.OnDayClicked(NewDate(2024, 3, 1))
	want := []Date{NewDate(2024, 3, 1), NewDate(2024, 5, 20)}
	if diff := cmp.Diff(want, p.Selection()); diff != "" {
		t.Fatalf("selection (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]Event{{EventSelectionChanged, 2}}, events); diff != "" {
		t.Fatalf("events (-want +got):\n%s", diff)
	}

	events = p.OnDayClicked(NewDate(2024, 4, 4))
	if got := p.Selection(); len(got) != 0 {
		t.Fatalf("third click should clear, got %v", got)
	}
	if diff := cmp.Diff([]Event{{EventSelectionChanged, 0}, {EventHighlightCleared, 0}}, events); diff != "" {
		t.Fatalf("events (-want +got):\n%s", diff)
	}
	for r, row := range p.Highlights() {
		for c, h := range row {
			if h != HighlightNone && h != HighlightFaded {
				t.Fatalf("cell (%d,%d) still highlighted: %v", r, c, h)
			}
		}
	}
}

func TestSingleModeClicks(t *testing.T) {
	p := newTestPicker(t, Config{Initial: NewDate(2024, 2, 1)})
	p.ClickCell(1, 0) // Feb 4
	p.ClickCell(2, 2) // Feb 13
	if got := p.Selection(); len(got) != 0 {
		t.Fatalf("single mode does not use the selection list: %v", got)
	}
	d, ok := p.Picked()
	if !ok || d != NewDate(2024, 2, 13) {
		t.Fatalf("picked = %s, %v", d, ok)
	}
	if got := p.Highlight(1, 0); got != HighlightNone {
		t.Fatalf("previous pick still highlighted: %v", got)
	}
	if got := p.Highlight(2, 2); got != HighlightPicked {
		t.Fatalf("picked cell highlight = %v", got)
	}
}

func TestClickOnBleedInCellIsIgnored(t *testing.T) {
	p := newTestPicker(t, Config{Initial: NewDate(2024, 2, 1), RangePicker: true})
	if events := p.ClickCell(0, 0); events != nil {
		t.Fatalf("expected no events, got %v", events)
	}
	if _, ok := p.DateAt(5, 6); ok {
		t.Fatalf("next-month cell must not have a date")
	}
}

func TestHighlights(t *testing.T) {
	p := newTestPicker(t, Config{
		Initial:        NewDate(2024, 2, 1),
		Active:         NewDate(2024, 2, 14),
		RangePicker:    true,
		HighlightToday: true,
	})
	p.OnDayClicked(NewDate(2024, 2, 20))
	if got := p.Highlight(3, 2); got != HighlightPicked {
		t.Fatalf("first range date = %v, want picked", got)
	}
	p.OnDayClicked(NewDate(2024, 2, 6))

	want := [][]Highlight{
		{HighlightFaded, HighlightFaded, HighlightFaded, HighlightFaded, HighlightNone, HighlightNone, HighlightNone},
		{HighlightNone, HighlightNone, HighlightRangeStart, HighlightInRange, HighlightInRange, HighlightInRange, HighlightInRange},
		{HighlightInRange, HighlightInRange, HighlightInRange, HighlightInRange, HighlightInRange, HighlightInRange, HighlightInRange},
		{HighlightInRange, HighlightInRange, HighlightRangeEnd, HighlightNone, HighlightNone, HighlightNone, HighlightNone},
		{HighlightNone, HighlightNone, HighlightNone, HighlightNone, HighlightNone, HighlightFaded, HighlightFaded},
		{HighlightFaded, HighlightFaded, HighlightFaded, HighlightFaded, HighlightFaded, HighlightFaded, HighlightFaded},
	}
	if diff := cmp.Diff(want, p.Highlights()); diff != "" {
		t.Fatalf("highlights (-want +got):\n%s", diff)
	}
	if !p.IsEdge(NewDate(2024, 2, 6)) || !p.IsEdge(NewDate(2024, 2, 20)) {
		t.Fatalf("expected both ends to be edges")
	}

	p.Reset()
	if got := p.Highlight(2, 3); got != HighlightToday {
		t.Fatalf("after reset the active date shows as today, got %v", got)
	}
	p.NextMonth()
	if _, ok := p.Today(); ok {
		t.Fatalf("active date is not in March")
	}
}

func TestSelectedDaysOnScreen(t *testing.T) {
	p := newTestPicker(t, Config{Initial: NewDate(2024, 2, 1), RangePicker: true})
	p.OnDayClicked(NewDate(2024, 2, 10))
	p.OnDayClicked(NewDate(2024, 3, 3))
	if diff := cmp.Diff([]int{10}, p.SelectedDaysOnScreen()); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestPickerLogsCommands(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	p := newTestPicker(t, Config{Initial: NewDate(2024, 2, 1), Logger: logger})
	p.NextMonth()
	if !strings.Contains(buf.String(), "next month") {
		t.Fatalf("expected debug log for next month, got:\n%s", buf.String())
	}
}
