package quiz

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/key"

	"github.com/abhisek/infoquiz/internal/catalog"
	qz "github.com/abhisek/infoquiz/internal/quiz"
	"github.com/abhisek/infoquiz/internal/router"
	"github.com/abhisek/infoquiz/internal/screen"
	"github.com/abhisek/infoquiz/internal/ui/components"
)

var (
	keyAnswer = key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5", "6"),
		key.WithHelp("1-6", "Answer"),
	)
	keyNext = key.NewBinding(
		key.WithKeys("enter", "space"),
		key.WithHelp("Enter", "Next"),
	)
)

// QuizScreen shows the current question of a round. The round itself is
// owned by the router; this screen only reads it.
type QuizScreen struct {
	category catalog.Category
	round    *qz.Round
	options  components.OptionList
	position int
}

var _ screen.Screen = (*QuizScreen)(nil)

// New creates a QuizScreen for a running round.
func New(category catalog.Category, round *qz.Round) *QuizScreen {
	s := &QuizScreen{category: category, round: round}
	s.sync()
	return s
}

// Round returns the round being displayed.
func (s *QuizScreen) Round() *qz.Round {
	return s.round
}

// sync resets the option cursor when the round has moved to a new question.
func (s *QuizScreen) sync() {
	q, ok := s.round.Current()
	if !ok {
		s.options = components.OptionList{Locked: true}
		return
	}
	if s.position != s.round.Position() || len(s.options.Options) == 0 {
		s.position = s.round.Position()
		s.options = components.NewOptionList(q.Options)
	}
	_, answered := s.round.Selected()
	s.options.Locked = answered
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.sync()

	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}

	if key.Matches(kmsg, components.KeyBack) {
		return s, screen.Emit(router.BackMsg{})
	}

	if _, answered := s.round.Selected(); answered {
		if key.Matches(kmsg, keyNext) {
			return s, screen.Emit(router.NextMsg{})
		}
		return s, nil
	}

	var chosen int
	s.options, chosen = s.options.Update(kmsg)
	if chosen >= 0 {
		return s, screen.Emit(router.AnswerMsg{Option: chosen})
	}
	return s, nil
}

func (s *QuizScreen) View(width, height int) string {
	s.sync()
	return s.render(width, height)
}

func (s *QuizScreen) Title() string {
	return s.category.Title
}

func (s *QuizScreen) KeyBindings() []key.Binding {
	s.sync()
	if _, answered := s.round.Selected(); answered {
		next := keyNext
		if s.round.IsLast() {
			next.SetHelp("Enter", "Finish")
		}
		return []key.Binding{next, components.KeyBack, components.KeyQuit}
	}
	answer := keyAnswer
	if n := len(s.options.Options); n > 0 {
		answer.SetHelp(fmt.Sprintf("1-%d", n), "Answer")
	}
	return []key.Binding{components.KeyUp, answer, components.KeyBack, components.KeyQuit}
}
