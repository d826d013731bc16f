package calendar

import (
	"log/slog"
)

// Config holds the construction inputs of a Picker. Zero values select the
// defaults: today's date is not assumed, so Initial should always be set.
type Config struct {
	Initial Date
	// Active marks "today"; defaults to Initial.
	Active Date
	// Bounds defaults to DefaultBounds.
	Bounds      Bounds
	RangePicker bool
	Grid        GridOptions
	// HighlightToday enables HighlightToday for the active date's cell.
	HighlightToday bool
	// System defaults to Gregorian.
	System System
	Logger *slog.Logger
}

// Picker is the state of one calendar widget: the on-screen month, its grid
// and the current selection. A Picker is owned by a single UI controller and
// is not safe for concurrent use.
type Picker struct {
	sys            System
	bounds         Bounds
	opts           GridOptions
	rangePicker    bool
	highlightToday bool
	log            *slog.Logger

	initial  Date
	active   Date
	onScreen Date
	// shown is the first day of the month the grid was computed for. It only
	// differs from onScreen's month after a PrevDecade stopped at the min
	// year.
	shown Date
	grid  Grid

	selection Selection
	picked    Date
	hasPicked bool
}

// New returns a Picker showing cfg.Initial clamped to the bounds.
func New(cfg Config) (*Picker, error) {
	b := cfg.Bounds
	if b == (Bounds{}) {
		b = DefaultBounds
	}
	b, err := NewBounds(b.Min, b.Max)
	if err != nil {
		return nil, err
	}
	sys := cfg.System
	if sys == nil {
		sys = Gregorian
	}
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	initial := b.ClampDate(cfg.Initial)
	active := cfg.Active
	if active.IsZero() {
		active = initial
	}
	p := &Picker{
		sys:            sys,
		bounds:         b,
		opts:           cfg.Grid,
		rangePicker:    cfg.RangePicker,
		highlightToday: cfg.HighlightToday,
		log:            log.With("calendar", sys.Name()),
		initial:        initial,
		active:         active,
		onScreen:       initial,
	}
	p.calculate()
	p.log.Debug("picker created", "onScreen", p.onScreen, "bounds", b, "rangePicker", p.rangePicker)
	return p, nil
}

func (p *Picker) calculate() {
	p.shown = Date{Year: p.onScreen.Year, Month: p.onScreen.Month, Day: 1}
	p.grid = CalculateGrid(p.sys, p.shown.Year, p.shown.Month, p.bounds, p.opts)
}

// recompute rebuilds the grid for the current on-screen date.
func (p *Picker) recompute(op string) []Event {
	p.calculate()
	p.log.Debug(op, "onScreen", p.onScreen, "rows", len(p.grid))
	return onScreenChanged(p.onScreen)
}

func (p *Picker) System() System        { return p.sys }
func (p *Picker) Bounds() Bounds        { return p.bounds }
func (p *Picker) Options() GridOptions  { return p.opts }
func (p *Picker) RangePicker() bool     { return p.rangePicker }
func (p *Picker) Initial() Date         { return p.initial }
func (p *Picker) Active() Date          { return p.active }
func (p *Picker) OnScreen() Date        { return p.onScreen }
func (p *Picker) Grid() Grid            { return p.grid.clone() }
func (p *Picker) Selection() []Date     { return p.selection.Dates() }
func (p *Picker) IsEdge(d Date) bool    { return p.selection.IsEdge(d) }
func (p *Picker) IsInRange(d Date) bool { return p.selection.IsInRange(d) }

// Picked returns the date picked in single-date mode.
func (p *Picker) Picked() (Date, bool) { return p.picked, p.hasPicked }
