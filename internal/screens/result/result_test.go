package result

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/abhisek/infoquiz/internal/catalog"
	"github.com/abhisek/infoquiz/internal/router"
)

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testCategory() catalog.Category {
	return catalog.Category{ID: "internet", Title: "Internet", Emoji: "🌐"}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		correct, total, want int
	}{
		{0, 0, 0},
		{3, 3, 100},
		{2, 3, 67},
		{1, 3, 33},
		{5, 9, 56},
	}
	for _, tt := range tests {
		if got := Percent(tt.correct, tt.total); got != tt.want {
			t.Errorf("Percent(%d, %d) = %d, want %d", tt.correct, tt.total, got, tt.want)
		}
	}
}

func TestGradeFor(t *testing.T) {
	tests := []struct {
		pct  int
		want string
	}{
		{100, "Outstanding!"},
		{99, "Excellent!"},
		{70, "Excellent!"},
		{69, "Good result!"},
		{40, "Good result!"},
		{39, "Room to grow!"},
		{0, "Room to grow!"},
	}
	for _, tt := range tests {
		if got := GradeFor(tt.pct).Title; got != tt.want {
			t.Errorf("GradeFor(%d) = %q, want %q", tt.pct, got, tt.want)
		}
	}
}

func TestResultScreen_EnterRetries(t *testing.T) {
	s := New(testCategory(), router.Result{CategoryID: "internet", Score: 40, Total: 3, Correct: 2})

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	if _, ok := cmd().(router.RetryMsg); !ok {
		t.Errorf("expected RetryMsg, got %T", cmd())
	}
}

func TestResultScreen_BackItem(t *testing.T) {
	s := New(testCategory(), router.Result{CategoryID: "internet", Total: 1})

	s.Update(specialKey(tea.KeyDown))
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	if _, ok := cmd().(router.BackMsg); !ok {
		t.Errorf("expected BackMsg, got %T", cmd())
	}
}

func TestResultScreen_EscGoesBack(t *testing.T) {
	s := New(testCategory(), router.Result{CategoryID: "internet"})

	_, cmd := s.Update(specialKey(tea.KeyEscape))
	if cmd == nil {
		t.Fatal("expected a command on Esc")
	}
	if _, ok := cmd().(router.BackMsg); !ok {
		t.Errorf("expected BackMsg, got %T", cmd())
	}
}

func TestResultScreen_View(t *testing.T) {
	s := New(testCategory(), router.Result{CategoryID: "internet", Score: 60, Total: 3, Correct: 3})
	view := ansi.Strip(s.View(100, 40))
	for _, want := range []string{"Outstanding!", "60 points", "100% correct"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	empty := New(testCategory(), router.Result{CategoryID: "internet"})
	if !strings.Contains(ansi.Strip(empty.View(100, 40)), "All questions done!") {
		t.Error("empty round should say all questions are done")
	}
}
