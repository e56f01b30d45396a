package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the key bindings for the interview screens
type keyMap struct {
	Begin  key.Binding
	New    key.Binding
	Quit   key.Binding
	Submit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Begin: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "begin"),
		),
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new interview"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "submit answer"),
		),
	}
}
