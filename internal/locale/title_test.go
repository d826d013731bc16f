package locale

import (
	"testing"

	"calgrid/internal/calendar"

	"github.com/google/go-cmp/cmp"
)

func TestTitles(t *testing.T) {
	f, _ := New("en")
	if got, want := f.MonthTitle(calendar.Gregorian, 2024, 2), "February 2024"; got != want {
		t.Errorf("MonthTitle = %q, want %q", got, want)
	}
	if got, want := f.YearTitle(2024), "2024"; got != want {
		t.Errorf("YearTitle = %q, want %q", got, want)
	}
	if got, want := f.DecadeTitle(2024), "2020-2029"; got != want {
		t.Errorf("DecadeTitle = %q, want %q", got, want)
	}
}

func TestWeekdayLabels(t *testing.T) {
	if diff := cmp.Diff([]string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}, WeekdayLabels(calendar.Gregorian, true)); diff != "" {
		t.Errorf("short (-want +got):\n%s", diff)
	}
	if got := WeekdayLabels(calendar.Gregorian, false)[3]; got != "Wed" {
		t.Errorf("long label = %q", got)
	}
}
