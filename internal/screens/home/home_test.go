package home

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/abhisek/infoquiz/internal/catalog"
	"github.com/abhisek/infoquiz/internal/progress"
	"github.com/abhisek/infoquiz/internal/router"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func builtin(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Builtin()
	if err != nil {
		t.Fatalf("Builtin: %v", err)
	}
	return c
}

func TestHomeScreen_Title(t *testing.T) {
	h := New(builtin(t), progress.Zero())
	if h.Title() != "Home" {
		t.Errorf("Title = %q, want %q", h.Title(), "Home")
	}
}

func TestHomeScreen_SelectEmitsCategory(t *testing.T) {
	cat := builtin(t)
	h := New(cat, progress.Zero())

	h.Update(specialKey(tea.KeyDown))
	_, cmd := h.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}

	msg, ok := cmd().(router.SelectCategoryMsg)
	if !ok {
		t.Fatalf("expected SelectCategoryMsg, got %T", cmd())
	}
	if want := cat.Categories()[1].ID; msg.CategoryID != want {
		t.Errorf("CategoryID = %q, want %q", msg.CategoryID, want)
	}
}

func TestHomeScreen_ResetRequiresProgress(t *testing.T) {
	cat := builtin(t)
	h := New(cat, progress.Zero())

	if _, cmd := h.Update(keyPress('r')); cmd != nil {
		t.Error("reset should be disabled without progress")
	}

	h.SetProgress(progress.RecordAnswer(progress.Zero(), "computer", 1))
	_, cmd := h.Update(keyPress('r'))
	if cmd == nil {
		t.Fatal("expected a command on r")
	}
	if _, ok := cmd().(router.ResetAllMsg); !ok {
		t.Errorf("expected ResetAllMsg, got %T", cmd())
	}
}

func TestHomeScreen_SetProgressKeepsCursor(t *testing.T) {
	h := New(builtin(t), progress.Zero())
	h.Update(specialKey(tea.KeyDown))
	h.Update(specialKey(tea.KeyDown))

	h.SetProgress(progress.AddScore(progress.Zero(), 30))
	if h.menu.Selected != 2 {
		t.Errorf("Selected = %d, want 2", h.menu.Selected)
	}
}

func TestHomeScreen_ViewShowsProgress(t *testing.T) {
	cat := builtin(t)
	p := progress.RecordAnswer(progress.Zero(), "computer", 1)
	p = progress.AddScore(p, 10)
	h := New(cat, p)

	view := ansi.Strip(h.View(100, 40))
	for _, want := range []string{"10 POINTS", "1/36 ANSWERED", "1 of 9 questions"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestMascotFor(t *testing.T) {
	cat := builtin(t)

	if got := mascotFor(progress.Zero(), cat); got != MascotWaving {
		t.Errorf("fresh progress: got %v, want MascotWaving", got)
	}

	p := progress.RecordAnswer(progress.Zero(), "computer", 1)
	if got := mascotFor(p, cat); got != MascotIdle {
		t.Errorf("partial progress: got %v, want MascotIdle", got)
	}

	all := progress.Zero()
	for _, c := range cat.Categories() {
		for _, q := range c.Questions {
			all = progress.RecordAnswer(all, c.ID, q.ID)
		}
	}
	if got := mascotFor(all, cat); got != MascotCelebrating {
		t.Errorf("complete progress: got %v, want MascotCelebrating", got)
	}
}
