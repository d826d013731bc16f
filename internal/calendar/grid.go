package calendar

import "encoding/json"

const (
	// WeekLength is the number of cells in a grid row.
	WeekLength = 7
	// MaxRows is the number of rows in an untrimmed grid.
	MaxRows = 6
)

// CellKind tells which month a grid cell belongs to.
type CellKind int

const (
	PrevMonth CellKind = iota
	CurrentMonth
	NextMonth
)

func (k CellKind) String() string {
	switch k {
	case PrevMonth:
		return "prev"
	case CurrentMonth:
		return "current"
	case NextMonth:
		return "next"
	default:
		return "unknown"
	}
}

// Cell is one day of the month grid. Day is the label shown; Kind is set
// when the grid is built and is the only source of truth for whether the
// cell is a bleed-in day.
type Cell struct {
	Day  int
	Kind CellKind
}

// InMonth reports whether the cell belongs to the displayed month.
func (c Cell) InMonth() bool { return c.Kind == CurrentMonth }

func (c Cell) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Day     int    `json:"day"`
		Kind    string `json:"kind"`
		InMonth bool   `json:"inMonth"`
	}{c.Day, c.Kind.String(), c.InMonth()})
}

// Grid is a month view: rows of WeekLength cells, at most MaxRows rows.
type Grid [][]Cell

// Cell returns the cell at row, col.
func (g Grid) Cell(row, col int) (Cell, bool) {
	if row < 0 || row >= len(g) || col < 0 || col >= len(g[row]) {
		return Cell{}, false
	}
	return g[row][col], true
}

// CurrentMonthDays counts the cells that belong to the displayed month.
func (g Grid) CurrentMonthDays() int {
	n := 0
	for _, row := range g {
		for _, c := range row {
			if c.InMonth() {
				n++
			}
		}
	}
	return n
}

// Find returns the position of day in the displayed month.
func (g Grid) Find(day int) (row, col int, ok bool) {
	for r, cells := range g {
		for c, cell := range cells {
			if cell.InMonth() && cell.Day == day {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

func (g Grid) clone() Grid {
	out := make(Grid, len(g))
	for i, row := range g {
		out[i] = append([]Cell(nil), row...)
	}
	return out
}

// GridOptions control how many rows a grid has.
type GridOptions struct {
	// OnlyShowCurrentMonthDays asks the host to hide bleed-in labels; the
	// grid also drops trailing rows that hold only next-month days.
	OnlyShowCurrentMonthDays bool `json:"onlyShowCurrentMonthDays" yaml:"onlyShowCurrentMonthDays"`
	// HideLastFadedRow drops trailing rows that hold only next-month days.
	HideLastFadedRow bool `json:"hideLastFadedRow" yaml:"hideLastFadedRow"`
}

func (o GridOptions) trimTrailingRows() bool {
	return o.OnlyShowCurrentMonthDays || o.HideLastFadedRow
}

// CalculateGrid lays out month (1-12) of year in sys. The first row starts
// with the trailing days of the previous month, the last rows end with the
// leading days of the next one. The previous month's year never goes below
// b.Min.Year.
func CalculateGrid(sys System, year, month int, b Bounds, opts GridOptions) Grid {
	start := sys.Weekday(year, month, 1)
	monthLen := DaysInMonth(sys, year, month-1)

	prevYear, prevMonth := year, month-1
	if prevMonth < 1 {
		prevMonth = 12
		prevYear--
		if prevYear < b.Min.Year {
			prevYear = b.Min.Year
		}
	}
	prevLen := DaysInMonth(sys, prevYear, prevMonth-1)

	// Cells up to and including the last day of the month.
	total := monthLen + start

	grid := make(Grid, 0, MaxRows)
	week := make([]Cell, 0, WeekLength)
	for k := 0; k < start; k++ {
		week = append(week, Cell{Day: prevLen - start + k + 1, Kind: PrevMonth})
	}
	for i := start + 1; len(grid) < MaxRows; i++ {
		cell := Cell{Day: i - start, Kind: CurrentMonth}
		if i > total {
			cell = Cell{Day: i - total, Kind: NextMonth}
		}
		week = append(week, cell)
		if i%WeekLength != 0 {
			continue
		}
		grid = append(grid, week)
		week = make([]Cell, 0, WeekLength)
		if opts.trimTrailingRows() && WeekLength*len(grid) >= total {
			break
		}
	}
	return grid
}
