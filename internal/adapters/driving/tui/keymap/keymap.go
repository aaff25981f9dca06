// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Back returns to the browse view.
	Back key.Binding

	// Select opens the highlighted class or teacher.
	Select key.Binding

	// Tab switches between the class and teacher lists.
	Tab key.Binding

	// ToggleWeek flips between the odd and even week grids.
	ToggleWeek key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "classes/teachers"),
		),
		ToggleWeek: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "odd/even week"),
		),
	}
}
