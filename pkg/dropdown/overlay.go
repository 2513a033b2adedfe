package dropdown

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

const sgrReset = "\x1b[0m"

// Compose paints popup over background with its top-left corner at
// (left, top). Background styling on either side of the popup is kept.
// The background is extended with empty rows when the popup runs past it.
func Compose(background, popup string, top, left int) string {
	if popup == "" {
		return background
	}
	if top < 0 {
		top = 0
	}
	if left < 0 {
		left = 0
	}

	bg := strings.Split(background, "\n")
	fg := strings.Split(popup, "\n")
	for len(bg) < top+len(fg) {
		bg = append(bg, "")
	}

	for i, line := range fg {
		row := bg[top+i]
		if w := ansi.StringWidth(row); w < left {
			row += strings.Repeat(" ", left-w)
		}
		prefix := ansi.Truncate(row, left, "")
		suffix := ansi.TruncateLeft(row, left+ansi.StringWidth(line), "")
		bg[top+i] = prefix + sgrReset + line + sgrReset + suffix
	}

	return strings.Join(bg, "\n")
}
