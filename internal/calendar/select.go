package calendar

// OnDayClicked handles a click on a day of the displayed month.
//
// In single-date mode the clicked date replaces the previously picked one.
// In range mode it is added to the selection; the second click completes
// and sorts the range and the third one empties the selection.
func (p *Picker) OnDayClicked(d Date) []Event {
	if !p.rangePicker {
		p.picked, p.hasPicked = d, true
		p.log.Debug("day picked", "date", d)
		return []Event{{Kind: EventDayPicked, Value: d.Day}}
	}
	if p.selection.Add(d) {
		p.log.Debug("selection overflow, cleared", "date", d)
		return []Event{
			{Kind: EventSelectionChanged, Value: 0},
			{Kind: EventHighlightCleared},
		}
	}
	p.log.Debug("day selected", "date", d, "selection", p.selection.Dates())
	return []Event{{Kind: EventSelectionChanged, Value: p.selection.Len()}}
}

// ClickCell clicks the cell at row, col. Bleed-in cells carry no date and
// are ignored.
func (p *Picker) ClickCell(row, col int) []Event {
	d, ok := p.DateAt(row, col)
	if !ok {
		return nil
	}
	return p.OnDayClicked(d)
}

// Reset empties the selection and forgets the picked date.
func (p *Picker) Reset() []Event {
	p.selection.Clear()
	p.picked, p.hasPicked = Date{}, false
	p.log.Debug("reset")
	return []Event{
		{Kind: EventSelectionChanged, Value: 0},
		{Kind: EventHighlightCleared},
	}
}

// SelectedDaysOnScreen returns the day numbers of the selected dates that
// fall in the month the grid shows.
func (p *Picker) SelectedDaysOnScreen() []int {
	var days []int
	for _, d := range p.selection.dates {
		if d.SameMonth(p.shown.Year, p.shown.Month) {
			days = append(days, d.Day)
		}
	}
	return days
}
