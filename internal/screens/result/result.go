package result

import (
	"fmt"
	"math"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/key"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/infoquiz/internal/catalog"
	"github.com/abhisek/infoquiz/internal/router"
	"github.com/abhisek/infoquiz/internal/screen"
	"github.com/abhisek/infoquiz/internal/ui/components"
	"github.com/abhisek/infoquiz/internal/ui/layout"
	"github.com/abhisek/infoquiz/internal/ui/theme"
)

// Grade is the headline shown for a round's accuracy.
type Grade struct {
	Emoji    string
	Title    string
	Subtitle string
}

// Percent returns correct/total as a rounded percentage. An empty round is 0.
func Percent(correct, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}

// GradeFor maps a percentage to its grade band.
func GradeFor(pct int) Grade {
	switch {
	case pct >= 100:
		return Grade{"🏆", "Outstanding!", "Every answer right. You are a true genius!"}
	case pct >= 70:
		return Grade{"🌟", "Excellent!", "You know this topic really well!"}
	case pct >= 40:
		return Grade{"💪", "Good result!", "Keep learning and it will get even better!"}
	default:
		return Grade{"📚", "Room to grow!", "Try again. Practice makes perfect!"}
	}
}

// ResultScreen summarizes a finished round.
type ResultScreen struct {
	category catalog.Category
	result   router.Result
	menu     components.Menu
}

var _ screen.Screen = (*ResultScreen)(nil)

// New creates a ResultScreen.
func New(category catalog.Category, res router.Result) *ResultScreen {
	retryLabel := "TRY AGAIN"
	if res.Total == 0 {
		retryLabel = "START OVER"
	}
	items := []components.MenuItem{
		{Label: retryLabel, Action: func() tea.Cmd { return screen.Emit(router.RetryMsg{}) }},
		{Label: "BACK TO TOPICS", Action: func() tea.Cmd { return screen.Emit(router.BackMsg{}) }},
	}
	return &ResultScreen{
		category: category,
		result:   res,
		menu:     components.NewMenu(items),
	}
}

func (s *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && key.Matches(kmsg, components.KeyBack) {
		return s, screen.Emit(router.BackMsg{})
	}
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *ResultScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	res := s.result

	var sections []string
	if res.Total == 0 {
		sections = append(sections, renderHeadline(Grade{
			Emoji:    "🎉",
			Title:    "All questions done!",
			Subtitle: "You have answered every question in this topic.",
		}, cw))
	} else {
		pct := Percent(res.Correct, res.Total)
		if pct >= 70 {
			sections = append(sections, renderConfetti(cw))
		}
		sections = append(sections, renderHeadline(GradeFor(pct), cw))
		sections = append(sections, s.renderStats(pct, cw))
	}
	sections = append(sections, lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(s.menu.View()))

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

func (s *ResultScreen) renderStats(pct, cw int) string {
	res := s.result
	head := lipgloss.NewStyle().Foreground(theme.Hex(s.category.Color)).Bold(true).
		Render(fmt.Sprintf("%s %s", s.category.Emoji, s.category.Title))

	score := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
		Render(fmt.Sprintf("%d points", res.Score))
	accuracy := lipgloss.NewStyle().Foreground(theme.Success).Bold(true).
		Render(fmt.Sprintf("%d%% correct", pct))
	detail := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d of %d answered correctly", res.Correct, res.Total))

	return components.Card(head+"\n\n"+score+"     "+accuracy+"\n"+detail, cw, pct >= 100)
}

func renderHeadline(g Grade, cw int) string {
	title := lipgloss.NewStyle().Foreground(theme.Gold).Bold(true).Render(g.Emoji + "  " + g.Title)
	sub := lipgloss.NewStyle().Foreground(theme.TextDim).Render(g.Subtitle)
	return lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(title + "\n" + sub)
}

func renderConfetti(cw int) string {
	colors := []lipgloss.Style{
		lipgloss.NewStyle().Foreground(theme.Gold),
		lipgloss.NewStyle().Foreground(theme.Primary),
		lipgloss.NewStyle().Foreground(theme.Secondary),
		lipgloss.NewStyle().Foreground(theme.Accent),
	}
	glyphs := []string{"✦", "•", "✧", "*"}
	var b strings.Builder
	for i := 0; i < 16; i++ {
		b.WriteString(colors[i%len(colors)].Render(glyphs[(i*3)%len(glyphs)]))
		b.WriteString(" ")
	}
	return layout.Centered(b.String(), cw)
}

func (s *ResultScreen) Title() string {
	return "Result"
}

func (s *ResultScreen) KeyBindings() []key.Binding {
	return []key.Binding{components.KeyUp, components.KeySelect, components.KeyBack, components.KeyQuit}
}
