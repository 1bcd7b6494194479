package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette
var (
	Primary   = lipgloss.Color("#8B5CF6") // Vivid Purple
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F97316") // Orange
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate

	Gold = lipgloss.Color("#FACC15")
	Cyan = lipgloss.Color("#22D3EE")
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Answer option states
var (
	OptionNeutral = lipgloss.NewStyle().
			Foreground(Text)

	OptionCursor = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	OptionCorrect = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	OptionWrong = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true).
			Strikethrough(true)

	OptionDimmed = lipgloss.NewStyle().
			Foreground(Border)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)

	Badge = lipgloss.NewStyle().
		Foreground(BgDark).
		Bold(true).
		Padding(0, 1)
)

// Hex parses a catalog color, falling back to Primary when empty.
func Hex(s string) color.Color {
	if s == "" {
		return Primary
	}
	return lipgloss.Color(s)
}

// DifficultyColor maps a difficulty tier (1..3) to a badge color.
func DifficultyColor(tier int) color.Color {
	switch tier {
	case 1:
		return Success
	case 2:
		return Gold
	default:
		return Error
	}
}
