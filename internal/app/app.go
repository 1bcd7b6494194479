package app

import (
	"context"
	"fmt"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/key"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/infoquiz/internal/logging"
	"github.com/abhisek/infoquiz/internal/router"
	"github.com/abhisek/infoquiz/internal/screen"
	"github.com/abhisek/infoquiz/internal/screens/home"
	quizscreen "github.com/abhisek/infoquiz/internal/screens/quiz"
	"github.com/abhisek/infoquiz/internal/screens/result"
	"github.com/abhisek/infoquiz/internal/ui/components"
	"github.com/abhisek/infoquiz/internal/ui/layout"
)

const appName = "InfoQuiz"

// AppModel is the root Bubble Tea model. It applies screen actions to the
// router and rebuilds the active screen whenever the router state changes.
type AppModel struct {
	ctx    context.Context
	router *router.Router
	logger *slog.Logger

	active screen.Screen
	shown  router.State
	status string

	width  int
	height int
}

// New creates the root model for r.
func New(ctx context.Context, r *router.Router, logger *slog.Logger) *AppModel {
	if logger == nil {
		logger = logging.Discard()
	}
	m := &AppModel{ctx: ctx, router: r, logger: logger}
	m.syncScreen()
	return m
}

// Active returns the screen currently displayed.
func (m *AppModel) Active() screen.Screen {
	return m.active
}

// Status returns the last error shown in the footer, if any.
func (m *AppModel) Status() string {
	return m.status
}

func (m *AppModel) Init() tea.Cmd {
	return nil
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		if key.Matches(msg, components.KeyQuit) {
			return m, tea.Quit
		}
		m.status = ""
	}

	handled, err := m.router.Dispatch(m.ctx, msg)
	if handled {
		if err != nil {
			m.logger.Error("router action failed", "action", fmt.Sprintf("%T", msg), "error", err)
			m.status = err.Error()
		}
		m.syncScreen()
		return m, nil
	}

	var cmd tea.Cmd
	m.active, cmd = m.active.Update(msg)
	return m, cmd
}

// syncScreen builds a new screen when the router state differs from the one
// on display. Home is refreshed in place to keep its cursor.
func (m *AppModel) syncScreen() {
	st := m.router.State()
	cat := m.router.Catalog()

	switch st := st.(type) {
	case router.Home:
		if h, ok := m.active.(*home.HomeScreen); ok {
			h.SetProgress(m.router.Progress())
		} else {
			m.active = home.New(cat, m.router.Progress())
		}
	case router.Quiz:
		if q, ok := m.active.(*quizscreen.QuizScreen); ok && q.Round() == st.Round {
			break
		}
		c, _ := cat.Category(st.CategoryID)
		m.active = quizscreen.New(c, st.Round)
	case router.Result:
		if prev, ok := m.shown.(router.Result); ok && prev == st {
			break
		}
		c, _ := cat.Category(st.CategoryID)
		m.active = result.New(c, st)
	}
	m.shown = st
}

func (m *AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	p := m.router.Progress()
	header := layout.RenderHeader(appName, m.active.Title(), layout.HeaderStats{
		Score:    p.TotalScore,
		Answered: p.AnsweredCount(),
		Total:    m.router.Catalog().TotalQuestions(),
	}, m.width)
	footer := layout.RenderFooter(layout.HintsFor(m.active.KeyBindings()...), m.status, m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := m.active.View(m.width, contentHeight)

	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// Run starts the Bubble Tea program.
func Run(ctx context.Context, r *router.Router, logger *slog.Logger) error {
	p := tea.NewProgram(New(ctx, r, logger), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
