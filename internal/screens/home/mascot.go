package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/infoquiz/internal/catalog"
	"github.com/abhisek/infoquiz/internal/progress"
	"github.com/abhisek/infoquiz/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota // some progress
	MascotWaving                           // nothing answered yet
	MascotCelebrating                      // every question answered
)

const mascotIdle = `┌─────┐
│ ▪ ▪ │
│  ─  │
│ 0 1 │
└─────┘`

const mascotWaving = `┌─────┐ /
│ ◉ ◉ │/
│  ◡  │
│ 1 0 │
└─────┘`

const mascotCelebrating = `\┌─────┐/
 │ ★ ★ │
 │  ▽  │
 │ 1 1 │
 └─────┘`

func mascotFor(p progress.State, cat *catalog.Catalog) MascotVariant {
	answered := p.AnsweredCount()
	switch {
	case answered == 0:
		return MascotWaving
	case answered >= cat.TotalQuestions():
		return MascotCelebrating
	default:
		return MascotIdle
	}
}

// RenderMascot returns the styled mascot art for the variant.
func RenderMascot(v MascotVariant) string {
	switch v {
	case MascotWaving:
		return lipgloss.NewStyle().Foreground(theme.Secondary).Render(mascotWaving)
	case MascotCelebrating:
		return lipgloss.NewStyle().Foreground(theme.Gold).Bold(true).Render(mascotCelebrating)
	default:
		return lipgloss.NewStyle().Foreground(theme.Primary).Render(mascotIdle)
	}
}

func renderMascot(v MascotVariant, cw int) string {
	return lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(RenderMascot(v))
}
