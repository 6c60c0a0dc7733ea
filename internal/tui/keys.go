package tui

import "github.com/charmbracelet/bubbles/key"

type searchKeys struct {
	Submit  key.Binding
	Focus   key.Binding
	Up      key.Binding
	Down    key.Binding
	Open    key.Binding
	Filter  key.Binding
	Layout  key.Binding
	Quit    key.Binding
	Scroll  key.Binding
	Restart key.Binding
}

type profileKeys struct {
	Tab      key.Binding
	NextTab  key.Binding
	PrevTab  key.Binding
	Template key.Binding
	Send     key.Binding
	Back     key.Binding
	Quit     key.Binding
	Scroll   key.Binding
}

func newSearchKeys() searchKeys {
	return searchKeys{
		Submit:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "search")),
		Focus:   key.NewBinding(key.WithKeys("tab", "/"), key.WithHelp("tab", "switch focus")),
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Open:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "view profile")),
		Filter:  key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6"), key.WithHelp("1-6", "filters")),
		Layout:  key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "grid/table")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Scroll:  key.NewBinding(key.WithKeys("pgup", "pgdown"), key.WithHelp("pgup/pgdn", "scroll")),
		Restart: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "edit query")),
	}
}

func newProfileKeys() profileKeys {
	return profileKeys{
		Tab:      key.NewBinding(key.WithKeys("1", "2", "3"), key.WithHelp("1-3", "tabs")),
		NextTab:  key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next tab")),
		PrevTab:  key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("shift+tab", "prev tab")),
		Template: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "template")),
		Send:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "send email")),
		Back:     key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "back")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Scroll:   key.NewBinding(key.WithKeys("pgup", "pgdown"), key.WithHelp("pgup/pgdn", "scroll")),
	}
}

func (k searchKeys) inputHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Focus, k.Scroll}
}

func (k searchKeys) resultsHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Open, k.Filter, k.Layout, k.Restart, k.Quit}
}

func (k profileKeys) help(outreach bool) []key.Binding {
	if outreach {
		return []key.Binding{k.Tab, k.NextTab, k.Template, k.Send, k.Back, k.Quit}
	}
	return []key.Binding{k.Tab, k.NextTab, k.Back, k.Scroll, k.Quit}
}
