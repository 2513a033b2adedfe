package dropdown

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// truncate cuts s to a single line of at most maxLen cells, appending "…"
// when something was dropped. Wide characters count as two cells.
func truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}

	// Triggers and default rows are one line only.
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i] + "…"
	}

	if runewidth.StringWidth(s) <= maxLen {
		return s
	}

	w := 0
	for i, r := range s {
		rw := runewidth.RuneWidth(r)
		if w+rw > maxLen-1 { // -1 for ellipsis
			return s[:i] + "…"
		}
		w += rw
	}

	return s
}

// padRight fills s with spaces up to width cells.
func padRight(s string, width int) string {
	if w := runewidth.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
