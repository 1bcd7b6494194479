package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/infoquiz/internal/catalog"
	"github.com/abhisek/infoquiz/internal/ui/components"
	"github.com/abhisek/infoquiz/internal/ui/layout"
	"github.com/abhisek/infoquiz/internal/ui/theme"
)

func (s *QuizScreen) render(width, height int) string {
	q, ok := s.round.Current()
	if !ok {
		return layout.Centered(lipgloss.NewStyle().Foreground(theme.TextDim).
			Render("\n\nRound finished."), width)
	}

	cw := min(width-4, 72)
	var b strings.Builder

	// Info line.
	accent := theme.Hex(s.category.Color)
	infoLeft := lipgloss.NewStyle().Foreground(accent).Bold(true).
		Render(fmt.Sprintf("%s %s", s.category.Emoji, s.category.Title))
	infoRight := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("Question %d/%d   ", s.round.Position(), s.round.Size())) +
		lipgloss.NewStyle().Foreground(theme.Gold).Bold(true).
			Render(fmt.Sprintf("★ %d", s.round.Score()))

	gap := max(cw-lipgloss.Width(infoLeft)-lipgloss.Width(infoRight), 1)
	b.WriteString(layout.Centered(infoLeft+strings.Repeat(" ", gap)+infoRight, width))
	b.WriteString("\n")

	bar := components.ProgressBar{
		Percent: components.Ratio(s.round.Position(), s.round.Size()),
		Width:   cw,
		Fill:    accent,
	}
	b.WriteString(layout.Centered(bar.View(), width))
	b.WriteString("\n\n")

	if s.round.OnStreak() {
		b.WriteString(layout.Centered(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).
			Render(fmt.Sprintf("🔥 %d in a row!", s.round.Streak())), width))
		b.WriteString("\n\n")
	}

	// Question card.
	badge := theme.Badge.Background(theme.DifficultyColor(int(q.Difficulty))).
		Render(fmt.Sprintf("%s · %d pts", q.Difficulty.DisplayName(), q.Difficulty.Points()))
	prompt := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Width(cw - 6).
		Render(q.Prompt)
	b.WriteString(layout.Centered(components.Card(badge+"\n\n"+prompt, cw, false), width))
	b.WriteString("\n\n")

	options := lipgloss.NewStyle().Width(cw).Render(s.options.View(s.round.OptionState))
	b.WriteString(layout.Centered(options, width))
	b.WriteString("\n\n")

	if _, answered := s.round.Selected(); answered {
		b.WriteString(layout.Centered(renderFeedback(q, s.round.IsCorrect()), width))
	} else {
		b.WriteString(layout.Centered(theme.Hint.
			Render(fmt.Sprintf("Press 1-%d or use arrows + Enter", len(q.Options))), width))
	}

	return b.String()
}

func renderFeedback(q catalog.Question, correct bool) string {
	if correct {
		return lipgloss.NewStyle().Foreground(theme.Success).Bold(true).
			Render(fmt.Sprintf("🎉 Correct! +%d", q.Difficulty.Points()))
	}
	return lipgloss.NewStyle().Foreground(theme.Error).Bold(true).
		Render("Not quite! Correct answer: " + q.CorrectOption())
}
