package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/key"

	"github.com/abhisek/infoquiz/internal/quiz"
	"github.com/abhisek/infoquiz/internal/ui/theme"
)

// OptionList is a cursor over answer options. Picking an option is
// reported as a chosen index; the round decides what that means.
type OptionList struct {
	Options []string
	Cursor  int
	Locked  bool
}

// NewOptionList creates an option list with the cursor on the first option.
func NewOptionList(options []string) OptionList {
	return OptionList{Options: options}
}

// Update moves the cursor and reports a pick. chosen is -1 when nothing was
// picked. Digits 1..n pick directly.
func (o OptionList) Update(msg tea.Msg) (OptionList, int) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || o.Locked {
		return o, -1
	}

	switch {
	case key.Matches(kmsg, KeyUp):
		if o.Cursor > 0 {
			o.Cursor--
		}
	case key.Matches(kmsg, KeyDown):
		if o.Cursor < len(o.Options)-1 {
			o.Cursor++
		}
	case key.Matches(kmsg, KeySelect):
		if len(o.Options) > 0 {
			return o, o.Cursor
		}
	default:
		s := kmsg.String()
		if len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
			i := int(s[0] - '1')
			if i < len(o.Options) {
				o.Cursor = i
				return o, i
			}
		}
	}
	return o, -1
}

// View renders the options. stateOf gives each option's display state once
// the question is answered.
func (o OptionList) View(stateOf func(i int) quiz.OptionState) string {
	var lines []string
	for i, opt := range o.Options {
		state := stateOf(i)

		marker := "  "
		switch {
		case state == quiz.OptionCorrect:
			marker = "✓ "
		case state == quiz.OptionChosenWrong:
			marker = "✗ "
		case !o.Locked && i == o.Cursor:
			marker = "▸ "
		}
		line := fmt.Sprintf("%s%d)  %s", marker, i+1, opt)

		style := theme.OptionNeutral
		switch state {
		case quiz.OptionCorrect:
			style = theme.OptionCorrect
		case quiz.OptionChosenWrong:
			style = theme.OptionWrong
		case quiz.OptionDimmed:
			style = theme.OptionDimmed
		default:
			if !o.Locked && i == o.Cursor {
				style = theme.OptionCursor
			}
		}
		lines = append(lines, style.Render(line))
	}
	return strings.Join(lines, "\n")
}
