package components

import "charm.land/bubbles/v2/key"

// Shared key bindings.
var (
	KeyUp = key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑↓", "Navigate"),
	)
	KeyDown = key.NewBinding(
		key.WithKeys("down", "j"),
	)
	KeySelect = key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "Select"),
	)
	KeyBack = key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "Back"),
	)
	KeyQuit = key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("Ctrl+C", "Quit"),
	)
)
