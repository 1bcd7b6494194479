package screen

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/key"
)

// Screen renders one router state and turns key presses into router
// action messages.
type Screen interface {
	// Update handles a message and returns the updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string

	// KeyBindings lists the bindings shown in the footer.
	KeyBindings() []key.Binding
}

// Emit wraps a message in a command.
func Emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
