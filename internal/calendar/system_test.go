package calendar

import "testing"

func TestIsLeap(t *testing.T) {
	tests := []struct {
		year int
		want bool
	}{
		{2000, true},
		{1900, false},
		{2024, true},
		{2023, false},
		{2100, false},
		{2400, true},
	}
	for _, tt := range tests {
		if got := IsLeap(tt.year); got != tt.want {
			t.Errorf("IsLeap(%d) = %v, want %v", tt.year, got, tt.want)
		}
		if got := Gregorian.IsLeap(tt.year); got != tt.want {
			t.Errorf("Gregorian.IsLeap(%d) = %v, want %v", tt.year, got, tt.want)
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		year, monthIndex, want int
	}{
		{2024, 1, 29},
		{2023, 1, 28},
		{1900, 1, 28},
		{2000, 1, 29},
		{2024, 0, 31},
		{2024, 3, 30},
		{2024, 11, 31},
	}
	for _, tt := range tests {
		if got := DaysInMonth(Gregorian, tt.year, tt.monthIndex); got != tt.want {
			t.Errorf("DaysInMonth(%d, %d) = %d, want %d", tt.year, tt.monthIndex, got, tt.want)
		}
	}
}

func TestGregorianTablesAreCopies(t *testing.T) {
	lengths := Gregorian.MonthLengths()
	lengths[1] = 99
	if got := DaysInMonth(Gregorian, 2023, 1); got != 28 {
		t.Fatalf("shared month table was mutated: February has %d days", got)
	}
}

func TestGregorianWeekday(t *testing.T) {
	tests := []struct {
		y, m, d, want int
	}{
		{2024, 2, 1, 4},
		{2023, 1, 1, 0},
		{1900, 1, 1, 1},
		{2200, 1, 1, 3},
	}
	for _, tt := range tests {
		if got := Gregorian.Weekday(tt.y, tt.m, tt.d); got != tt.want {
			t.Errorf("Weekday(%d-%d-%d) = %d, want %d", tt.y, tt.m, tt.d, got, tt.want)
		}
	}
}

func TestMonthName(t *testing.T) {
	if got := MonthName(Gregorian, 2); got != "February" {
		t.Errorf("got %q", got)
	}
	if got := MonthName(Gregorian, 13); got != "" {
		t.Errorf("expected empty name for month 13, got %q", got)
	}
}
