package calendar

import (
	"encoding/json"
	"fmt"
)

// EventKind identifies a notification returned by a Picker command.
type EventKind int

const (
	// EventMonthChanged carries the new on-screen month.
	EventMonthChanged EventKind = iota + 1
	// EventYearChanged carries the new on-screen year.
	EventYearChanged
	// EventSelectionChanged carries the number of selected dates.
	EventSelectionChanged
	// EventDayPicked carries the day picked in single-date mode.
	EventDayPicked
	// EventHighlightCleared tells the host to drop all cell decoration.
	EventHighlightCleared
)

func (k EventKind) String() string {
	switch k {
	case EventMonthChanged:
		return "month-changed"
	case EventYearChanged:
		return "year-changed"
	case EventSelectionChanged:
		return "selection-changed"
	case EventDayPicked:
		return "day-picked"
	case EventHighlightCleared:
		return "highlight-cleared"
	default:
		return fmt.Sprintf("event(%d)", int(k))
	}
}

// Event is a fire-and-forget notification for the host.
type Event struct {
	Kind  EventKind
	Value int
}

func (e Event) String() string {
	return fmt.Sprintf("%s=%d", e.Kind, e.Value)
}

func (e Event) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind  string `json:"kind"`
		Value int    `json:"value"`
	}{e.Kind.String(), e.Value})
}

func onScreenChanged(d Date) []Event {
	return []Event{
		{Kind: EventMonthChanged, Value: d.Month},
		{Kind: EventYearChanged, Value: d.Year},
	}
}
