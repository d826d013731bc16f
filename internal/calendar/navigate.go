package calendar

// NextMonth shows the following month. Stepping past December moves to
// January of the next year; the result never goes beyond the max date.
func (p *Picker) NextMonth() []Event {
	d := p.onScreen
	if d.Month == 12 {
		d = Date{Year: d.Year + 1, Month: 1, Day: 1}
	} else {
		d.Month++
	}
	p.onScreen = p.bounds.ClampDate(d)
	return p.recompute("next month")
}

// PrevMonth shows the preceding month, never going before the min date.
func (p *Picker) PrevMonth() []Event {
	d := p.onScreen
	if d.Month == 1 {
		d = Date{Year: d.Year - 1, Month: 12, Day: 1}
	} else {
		d.Month--
	}
	p.onScreen = p.bounds.ClampDate(d)
	return p.recompute("prev month")
}

// NextYear moves the on-screen year forward by one, stopping at the max
// year. In the max year the month and day are clamped to the max date.
func (p *Picker) NextYear() []Event {
	p.setYear(p.onScreen.Year + 1)
	return p.recompute("next year")
}

// PrevYear moves the on-screen year back by one.
func (p *Picker) PrevYear() []Event {
	p.setYear(p.onScreen.Year - 1)
	return p.recompute("prev year")
}

// NextDecade snaps the year down to a multiple of ten and adds ten, stopping
// at the max year.
func (p *Picker) NextDecade() []Event {
	p.setYear(DecadeStart(p.onScreen.Year) + 10)
	return p.recompute("next decade")
}

// PrevDecade snaps the year down to a multiple of ten and subtracts ten.
// When that passes the min year, the year is set to it and nothing else
// happens: the grid is left as it was and no events are returned.
func (p *Picker) PrevDecade() []Event {
	y := DecadeStart(p.onScreen.Year) - 10
	p.setYear(y)
	if y < p.bounds.Min.Year {
		p.log.Debug("prev decade clamped", "onScreen", p.onScreen, "grid", p.shown)
		return nil
	}
	return p.recompute("prev decade")
}

// setYear moves the on-screen year within the bounds. In a bound year the
// whole triple is clamped so it never passes the bound date.
func (p *Picker) setYear(year int) {
	p.onScreen.Year = p.bounds.ClampYear(year)
	p.onScreen = p.bounds.ClampDate(p.onScreen)
}

// GoToMonth shows month (1-12) of the on-screen year. The value is not
// clamped; callers offer only months inside the bounds.
func (p *Picker) GoToMonth(month int) []Event {
	p.onScreen.Month = month
	return p.recompute("go to month")
}

// GoToYear shows year without clamping.
func (p *Picker) GoToYear(year int) []Event {
	p.onScreen.Year = year
	return p.recompute("go to year")
}

// JumpTo shows the month of d, clamped to the bounds.
func (p *Picker) JumpTo(d Date) []Event {
	p.onScreen = p.bounds.ClampDate(d)
	return p.recompute("jump")
}

// DecadeStart rounds year down to a multiple of ten.
func DecadeStart(year int) int {
	return year - year%10
}
