package cmd

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// column fits s into exactly width terminal cells, truncating with "..."
// and padding with spaces.
func column(s string, width int) string {
	s = ansi.Truncate(s, width, "...")
	if pad := width - ansi.StringWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}
