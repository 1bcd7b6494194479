package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/key"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/infoquiz/internal/catalog"
	"github.com/abhisek/infoquiz/internal/progress"
	"github.com/abhisek/infoquiz/internal/router"
	"github.com/abhisek/infoquiz/internal/screen"
	"github.com/abhisek/infoquiz/internal/ui/components"
	"github.com/abhisek/infoquiz/internal/ui/layout"
	"github.com/abhisek/infoquiz/internal/ui/theme"
)

// HomeScreen lists the categories with their progress.
type HomeScreen struct {
	catalog  *catalog.Catalog
	progress progress.State
	menu     components.Menu
	reset    key.Binding
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a HomeScreen for the given catalog and progress.
func New(cat *catalog.Catalog, p progress.State) *HomeScreen {
	h := &HomeScreen{
		catalog: cat,
		reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Reset all"),
		),
	}
	h.SetProgress(p)
	return h
}

// SetProgress refreshes the counters, keeping the cursor.
func (h *HomeScreen) SetProgress(p progress.State) {
	h.progress = p

	cats := h.catalog.Categories()
	items := make([]components.MenuItem, 0, len(cats))
	for _, c := range cats {
		id := c.ID
		items = append(items, components.MenuItem{
			Label: fmt.Sprintf("%s %s", c.Emoji, c.Title),
			Action: func() tea.Cmd {
				return screen.Emit(router.SelectCategoryMsg{CategoryID: id})
			},
		})
	}

	selected := h.menu.Selected
	h.menu = components.NewMenu(items)
	if selected < len(items) {
		h.menu.Selected = selected
	}

	h.reset.SetEnabled(h.canReset())
}

func (h *HomeScreen) canReset() bool {
	return h.progress.AnsweredCount() > 0 || h.progress.TotalScore > 0
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && key.Matches(kmsg, h.reset) {
		return h, screen.Emit(router.ResetAllMsg{})
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	compact := layout.IsCompact(width, height)
	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(h.catalog.Title(), cw, compact))

	if !compact {
		sections = append(sections, renderMascot(mascotFor(h.progress, h.catalog), cw))
	}

	sections = append(sections, renderStats(h.progress, h.catalog, cw))
	sections = append(sections, h.renderCategories(cw, compact))

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) renderCategories(cw int, compact bool) string {
	cats := h.catalog.Categories()
	var blocks []string
	for i, c := range cats {
		done := h.progress.AnsweredIn(c.ID).Len()
		ratio := components.Ratio(done, len(c.Questions))

		labelStyle := lipgloss.NewStyle().Foreground(theme.Text)
		prefix := "  "
		if i == h.menu.Selected {
			labelStyle = labelStyle.Foreground(theme.Hex(c.Color)).Bold(true)
			prefix = "▸ "
		}

		label := labelStyle.Render(fmt.Sprintf("%s%s %s", prefix, c.Emoji, c.Title))
		bar := components.ProgressBar{
			Percent:     ratio,
			ShowPercent: true,
			Width:       cw - 4,
			Fill:        theme.Hex(c.Color),
		}
		count := lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("    %d of %d questions", done, len(c.Questions)))

		block := label + "\n  " + bar.View()
		if !compact {
			desc := lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
				Render("    " + c.Description)
			block = label + "\n" + desc + "\n  " + bar.View() + "\n" + count
		}
		blocks = append(blocks, block)
	}

	sep := "\n"
	if !compact {
		sep = "\n\n"
	}
	return lipgloss.NewStyle().Width(cw).Render(strings.Join(blocks, sep))
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyBindings() []key.Binding {
	return []key.Binding{components.KeyUp, components.KeySelect, h.reset, components.KeyQuit}
}
