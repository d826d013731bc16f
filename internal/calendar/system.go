package calendar

import "time"

// System describes a calendar system: its month table, its leap rule and
// how weekdays fall. Implementations must return the same values for the
// life of the process; the arrays are returned by value so callers cannot
// mutate the shared tables.
type System interface {
	Name() string
	// MonthLengths returns the day count of each month in a common year.
	MonthLengths() [12]int
	// LeapMonthIndex is the zero-based index of the month that gains a day
	// in leap years.
	LeapMonthIndex() int
	IsLeap(year int) bool
	// Weekday returns the column of the given date in a week row,
	// 0 being the first day of the week.
	Weekday(year, month, day int) int
	MonthNames() [12]string
	WeekdayNames() [7]string
}

var (
	gregorianMonthLengths = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	gregorianMonthNames   = [12]string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	}
	gregorianWeekdayNames = [7]string{
		"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
	}
)

type gregorian struct{}

// Gregorian is the proleptic Gregorian calendar with weeks starting on Sunday.
var Gregorian System = gregorian{}

func (gregorian) Name() string            { return "gregorian" }
func (gregorian) MonthLengths() [12]int   { return gregorianMonthLengths }
func (gregorian) LeapMonthIndex() int     { return 1 }
func (gregorian) IsLeap(year int) bool    { return IsLeap(year) }
func (gregorian) MonthNames() [12]string  { return gregorianMonthNames }
func (gregorian) WeekdayNames() [7]string { return gregorianWeekdayNames }

func (gregorian) Weekday(year, month, day int) int {
	return int(time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).Weekday())
}

// IsLeap reports whether year is a Gregorian leap year.
func IsLeap(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// DaysInMonth returns the length of the month with the zero-based index
// monthIndex in the given year of sys.
func DaysInMonth(sys System, year, monthIndex int) int {
	n := sys.MonthLengths()[monthIndex]
	if monthIndex == sys.LeapMonthIndex() && sys.IsLeap(year) {
		n++
	}
	return n
}

// MonthName returns the name of month (1-12) in sys.
func MonthName(sys System, month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return sys.MonthNames()[month-1]
}
