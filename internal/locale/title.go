package locale

import "calgrid/internal/calendar"

// MonthTitle is the header of the day grid, e.g. "February 2024".
func (f *Formatter) MonthTitle(sys calendar.System, year, month int) string {
	return calendar.MonthName(sys, month) + " " + f.Int(year)
}

// YearTitle is the header of the month list.
func (f *Formatter) YearTitle(year int) string {
	return f.Int(year)
}

// DecadeTitle is the header of the year and decade lists, e.g. "2020-2029".
func (f *Formatter) DecadeTitle(year int) string {
	start := calendar.DecadeStart(year)
	return f.Int(start) + "-" + f.Int(start+9)
}

// WeekdayLabels returns the column headers of the grid: three letters, or
// two when short is set.
func WeekdayLabels(sys calendar.System, short bool) []string {
	n := 3
	if short {
		n = 2
	}
	names := sys.WeekdayNames()
	out := make([]string, len(names))
	for i, name := range names {
		r := []rune(name)
		if len(r) > n {
			r = r[:n]
		}
		out[i] = string(r)
	}
	return out
}
