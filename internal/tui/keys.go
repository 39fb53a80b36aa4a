package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the application-level key bindings. Movement inside the
// list is handled by components.ShowListKeys.
type KeyMap struct {
	// Actions
	ToggleCurrent key.Binding
	Archive       key.Binding
	Add           key.Binding
	Filter        key.Binding

	// Application
	Quit key.Binding
	Help key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		ToggleCurrent: key.NewBinding(
			key.WithKeys(" ", "c"),
			key.WithHelp("space/c", "toggle current"),
		),
		Archive: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "archive"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add show"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

// Keys is the global key map instance
var Keys = DefaultKeyMap()
