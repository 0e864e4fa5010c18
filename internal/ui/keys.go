package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Toggle key.Binding
	Escape key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Next:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous field")),
		Up:     key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "previous suggestion")),
		Down:   key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "next suggestion")),
		Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "choose / submit")),
		Toggle: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle genre")),
		Escape: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close suggestions")),
		Help:   key.NewBinding(key.WithKeys("f1"), key.WithHelp("F1", "help")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Down, k.Select, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select, k.Escape},
		{k.Next, k.Prev, k.Toggle},
		{k.Help, k.Quit},
	}
}
