package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/abhisek/infoquiz/internal/quiz"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestOptionList_Navigation(t *testing.T) {
	o := NewOptionList([]string{"a", "b", "c"})

	o, chosen := o.Update(specialKey(tea.KeyDown))
	if chosen != -1 || o.Cursor != 1 {
		t.Fatalf("after down: cursor=%d chosen=%d", o.Cursor, chosen)
	}
	o, _ = o.Update(specialKey(tea.KeyDown))
	o, _ = o.Update(specialKey(tea.KeyDown))
	if o.Cursor != 2 {
		t.Errorf("cursor should stop at last option, got %d", o.Cursor)
	}
	o, _ = o.Update(keyPress('k'))
	if o.Cursor != 1 {
		t.Errorf("k should move up, got %d", o.Cursor)
	}

	_, chosen = o.Update(specialKey(tea.KeyEnter))
	if chosen != 1 {
		t.Errorf("enter chose %d, want 1", chosen)
	}
}

func TestOptionList_DigitPicks(t *testing.T) {
	o := NewOptionList([]string{"a", "b", "c"})

	o, chosen := o.Update(keyPress('3'))
	if chosen != 2 || o.Cursor != 2 {
		t.Errorf("3 chose %d cursor %d, want 2", chosen, o.Cursor)
	}

	_, chosen = o.Update(keyPress('4'))
	if chosen != -1 {
		t.Errorf("4 is out of range, chose %d", chosen)
	}
}

func TestOptionList_LockedIgnoresKeys(t *testing.T) {
	o := NewOptionList([]string{"a", "b"})
	o.Locked = true

	o, chosen := o.Update(keyPress('2'))
	if chosen != -1 || o.Cursor != 0 {
		t.Errorf("locked list reacted: cursor=%d chosen=%d", o.Cursor, chosen)
	}
}

func TestOptionList_ViewMarksStates(t *testing.T) {
	o := NewOptionList([]string{"alpha", "beta", "gamma"})
	o.Locked = true
	states := []quiz.OptionState{quiz.OptionCorrect, quiz.OptionChosenWrong, quiz.OptionDimmed}

	view := ansi.Strip(o.View(func(i int) quiz.OptionState { return states[i] }))
	if !strings.Contains(view, "✓ 1)") {
		t.Error("correct option should be marked")
	}
	if !strings.Contains(view, "✗ 2)") {
		t.Error("wrong choice should be marked")
	}
}

func TestMenu_SkipsDisabled(t *testing.T) {
	picked := ""
	items := []MenuItem{
		{Label: "one", Disabled: true},
		{Label: "two", Action: func() tea.Cmd { picked = "two"; return nil }},
		{Label: "three", Disabled: true},
	}
	m := NewMenu(items)
	if m.Selected != 1 {
		t.Fatalf("Selected = %d, want 1", m.Selected)
	}

	m, _ = m.Update(specialKey(tea.KeyDown))
	if m.Selected != 1 {
		t.Errorf("down should skip disabled items, got %d", m.Selected)
	}

	m.Update(specialKey(tea.KeyEnter))
	if picked != "two" {
		t.Errorf("picked = %q, want two", picked)
	}
}

func TestRatio(t *testing.T) {
	tests := []struct {
		done, total int
		want        float64
	}{
		{0, 0, 0},
		{3, 9, 1.0 / 3},
		{9, 9, 1},
		{12, 9, 1},
	}
	for _, tt := range tests {
		if got := Ratio(tt.done, tt.total); got != tt.want {
			t.Errorf("Ratio(%d, %d) = %v, want %v", tt.done, tt.total, got, tt.want)
		}
	}
}
