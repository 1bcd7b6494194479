package layout

import (
	"strings"
	"testing"

	"charm.land/bubbles/v2/key"
)

func TestHintsFor_SkipsDisabled(t *testing.T) {
	on := key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "Select"))
	off := key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "Reset"))
	off.SetEnabled(false)

	hints := HintsFor(on, off)
	if len(hints) != 1 {
		t.Fatalf("len(hints) = %d, want 1", len(hints))
	}
	if hints[0] != (KeyHint{Key: "Enter", Description: "Select"}) {
		t.Errorf("hint = %+v", hints[0])
	}
}

func TestRenderHeader_ShowsStats(t *testing.T) {
	out := RenderHeader("InfoQuiz", "Home", HeaderStats{Score: 120, Answered: 7, Total: 36}, 80)
	for _, want := range []string{"InfoQuiz", "Home", "120", "7/36"} {
		if !strings.Contains(out, want) {
			t.Errorf("header missing %q", want)
		}
	}
}

func TestRenderFooter_StatusReplacesHints(t *testing.T) {
	hints := []KeyHint{{Key: "Esc", Description: "Back"}}

	out := RenderFooter(hints, "", 80)
	if !strings.Contains(out, "Back") {
		t.Error("footer should show hints")
	}

	out = RenderFooter(hints, "persist progress: disk full", 80)
	if strings.Contains(out, "Back") {
		t.Error("status should replace hints")
	}
	if !strings.Contains(out, "disk full") {
		t.Error("footer should show status")
	}
}

func TestIsTooSmall(t *testing.T) {
	if !IsTooSmall(MinWidth-1, MinHeight) {
		t.Error("narrow terminal should be too small")
	}
	if IsTooSmall(MinWidth, MinHeight) {
		t.Error("minimum size should fit")
	}
}
