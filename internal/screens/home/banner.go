package home

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/infoquiz/internal/catalog"
	"github.com/abhisek/infoquiz/internal/progress"
	"github.com/abhisek/infoquiz/internal/ui/theme"
)

const bannerFull = ` ___        __        ___        _
|_ _|_ __  / _| ___  / _ \ _   _(_)____
 | || '_ \| |_ / _ \| | | | | | | |_  /
 | || | | |  _| (_) | |_| | |_| | |/ /
|___|_| |_|_|  \___/ \__\_\\__,_|_/___|`

const bannerCompact = "I · N · F · O · Q · U · I · Z"

func renderTitle(subtitle string, cw int, compact bool) string {
	style := lipgloss.NewStyle().Foreground(theme.Gold).Bold(true)
	art := bannerFull
	if compact {
		art = bannerCompact
	}

	block := style.Render(art)
	if subtitle != "" {
		block += "\n" + lipgloss.NewStyle().Foreground(theme.TextDim).Render(subtitle)
	}
	return lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(block)
}

// renderStats renders the score and answered counters in a double-bordered box.
func renderStats(p progress.State, cat *catalog.Catalog, cw int) string {
	scoreStyle := lipgloss.NewStyle().Foreground(theme.Gold).Bold(true)
	doneStyle := lipgloss.NewStyle().Foreground(theme.Cyan).Bold(true)

	stats := fmt.Sprintf("%s   %s",
		scoreStyle.Render(fmt.Sprintf("★ %d POINTS", p.TotalScore)),
		doneStyle.Render(fmt.Sprintf("✓ %d/%d ANSWERED", p.AnsweredCount(), cat.TotalQuestions())),
	)

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Cyan).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}
