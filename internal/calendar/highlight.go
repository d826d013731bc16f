package calendar

// Highlight is the decoration a host applies to a grid cell.
type Highlight int

const (
	HighlightNone Highlight = iota
	// HighlightFaded marks bleed-in days.
	HighlightFaded
	HighlightToday
	// HighlightPicked marks the single picked date, or the first date of an
	// incomplete range.
	HighlightPicked
	HighlightRangeStart
	HighlightRangeEnd
	HighlightInRange
)

func (h Highlight) String() string {
	switch h {
	case HighlightNone:
		return "none"
	case HighlightFaded:
		return "faded"
	case HighlightToday:
		return "today"
	case HighlightPicked:
		return "picked"
	case HighlightRangeStart:
		return "range-start"
	case HighlightRangeEnd:
		return "range-end"
	case HighlightInRange:
		return "in-range"
	default:
		return "unknown"
	}
}

func (h Highlight) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// DateAt returns the date of the cell at row, col. Only cells of the month
// the grid shows have a date.
func (p *Picker) DateAt(row, col int) (Date, bool) {
	c, ok := p.grid.Cell(row, col)
	if !ok || !c.InMonth() {
		return Date{}, false
	}
	return Date{Year: p.shown.Year, Month: p.shown.Month, Day: c.Day}, true
}

// Today returns the day of the active date when it falls in the month the
// grid shows.
func (p *Picker) Today() (int, bool) {
	if !p.active.SameMonth(p.shown.Year, p.shown.Month) {
		return 0, false
	}
	return p.active.Day, true
}

// Highlight returns the decoration of the cell at row, col. Selection
// styles win over the today marker.
func (p *Picker) Highlight(row, col int) Highlight {
	c, ok := p.grid.Cell(row, col)
	if !ok {
		return HighlightNone
	}
	if !c.InMonth() {
		return HighlightFaded
	}
	d, _ := p.DateAt(row, col)

	if p.rangePicker {
		switch {
		case p.selection.Complete():
			end, _ := p.selection.End()
			start, _ := p.selection.Start()
			switch {
			case d == end:
				return HighlightRangeEnd
			case d == start:
				return HighlightRangeStart
			case p.selection.IsInRange(d):
				return HighlightInRange
			}
		case p.selection.Len() == 1:
			if start, _ := p.selection.Start(); d == start {
				return HighlightPicked
			}
		}
	} else if p.hasPicked && d == p.picked {
		return HighlightPicked
	}

	if today, ok := p.Today(); ok && p.highlightToday && today == c.Day {
		return HighlightToday
	}
	return HighlightNone
}

// Highlights returns Highlight for every cell of the grid.
func (p *Picker) Highlights() [][]Highlight {
	out := make([][]Highlight, len(p.grid))
	for r, row := range p.grid {
		out[r] = make([]Highlight, len(row))
		for c := range row {
			out[r][c] = p.Highlight(r, c)
		}
	}
	return out
}
