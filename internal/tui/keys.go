package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Left, Right, Up, Down  key.Binding
	Click                  key.Binding
	PrevMonth, NextMonth   key.Binding
	PrevYear, NextYear     key.Binding
	PrevDecade, NextDecade key.Binding
	Months, Years, Decades key.Binding
	Home                   key.Binding
	Jump                   key.Binding
	Reset                  key.Binding
	Help                   key.Binding
	Quit                   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Left:       key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev day")),
		Right:      key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next day")),
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev week")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next week")),
		Click:      key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "pick")),
		PrevMonth:  key.NewBinding(key.WithKeys("["), key.WithHelp("[/]", "month")),
		NextMonth:  key.NewBinding(key.WithKeys("]")),
		PrevYear:   key.NewBinding(key.WithKeys("{"), key.WithHelp("{/}", "year")),
		NextYear:   key.NewBinding(key.WithKeys("}")),
		PrevDecade: key.NewBinding(key.WithKeys("<"), key.WithHelp("</>", "decade")),
		NextDecade: key.NewBinding(key.WithKeys(">")),
		Months:     key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "months")),
		Years:      key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "years")),
		Decades:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "decades")),
		Home:       key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "initial date")),
		Jump:       key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "jump")),
		Reset:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Click, k.PrevMonth, k.PrevYear, k.Months, k.Jump, k.Reset, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down, k.Click},
		{k.PrevMonth, k.PrevYear, k.PrevDecade, k.Home, k.Jump},
		{k.Months, k.Years, k.Decades, k.Reset, k.Help, k.Quit},
	}
}
