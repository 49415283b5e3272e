package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Focus  key.Binding
	Enter  key.Binding
	Remove key.Binding
	Quit   key.Binding
}

var keys = keyMap{
	Focus: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "switch pane"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "add word"),
	),
	Remove: key.NewBinding(
		key.WithKeys("x", "backspace"),
		key.WithHelp("x", "remove last word"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func (k keyMap) help() []key.Binding {
	return []key.Binding{k.Focus, k.Enter, k.Remove, k.Quit}
}
