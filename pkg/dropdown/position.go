package dropdown

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Rect is a cell rectangle in the caller's frame.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Position is where the popup is drawn when using overlay placement.
type Position struct {
	Top   int
	Left  int
	Width int
}

// FallbackRect is used when no measurer can locate the trigger. Its width
// is replaced by the trigger's own width.
var FallbackRect = Rect{X: 0, Y: 0, Width: DefaultWidth, Height: 3}

// Measurer reports the trigger's rectangle in the caller's frame.
type Measurer interface {
	Measure() (Rect, bool)
}

// MeasurerFunc adapts a function to the Measurer interface.
type MeasurerFunc func() (Rect, bool)

// Measure implements Measurer.
func (f MeasurerFunc) Measure() (Rect, bool) {
	return f()
}

// Bounds returns a Measurer that always reports r. Use it when the caller
// lays the trigger out itself and knows where it went.
func Bounds(r Rect) Measurer {
	return MeasurerFunc(func() (Rect, bool) {
		return r, r.Width > 0 && r.Height > 0
	})
}

// Chain returns a Measurer that tries each measurer in order.
func Chain(ms ...Measurer) Measurer {
	return MeasurerFunc(func() (Rect, bool) {
		for _, m := range ms {
			if m == nil {
				continue
			}
			if r, ok := m.Measure(); ok {
				return r, true
			}
		}
		return Rect{}, false
	})
}

// Locate returns a Measurer that finds the rendered trigger inside the
// caller's last frame. Styling is ignored; every line of the trigger must
// appear at the same column on consecutive rows. The first match wins.
func Locate(frame func() string, trigger func() string) Measurer {
	return MeasurerFunc(func() (Rect, bool) {
		if frame == nil || trigger == nil {
			return Rect{}, false
		}
		return locateBlock(frame(), trigger())
	})
}

// LocateRow is like Locate but only accepts a trigger whose top line is at
// row. Triggers that render the same text are told apart this way; chain
// it ahead of Locate when the row may be stale.
func LocateRow(frame func() string, trigger func() string, row func() int) Measurer {
	return MeasurerFunc(func() (Rect, bool) {
		if frame == nil || trigger == nil || row == nil {
			return Rect{}, false
		}
		y := row()
		return locateRows(frame(), trigger(), y, y+1)
	})
}

func locateBlock(frame, block string) (Rect, bool) {
	return locateRows(frame, block, 0, -1)
}

// locateRows searches for block with its top line in rows [from, to).
// A negative to searches to the end of the frame.
func locateRows(frame, block string, from, to int) (Rect, bool) {
	if frame == "" || block == "" || from < 0 {
		return Rect{}, false
	}
	lines := strings.Split(ansi.Strip(frame), "\n")
	want := strings.Split(ansi.Strip(block), "\n")

	width := 0
	for _, w := range want {
		if sw := ansi.StringWidth(w); sw > width {
			width = sw
		}
	}

	for y := from; y+len(want) <= len(lines) && (to < 0 || y < to); y++ {
		line := lines[y]
		start := 0
		for {
			idx := strings.Index(line[start:], want[0])
			if idx < 0 {
				break
			}
			idx += start
			col := ansi.StringWidth(line[:idx])
			if blockAt(lines[y+1:], want[1:], col) {
				return Rect{X: col, Y: y, Width: width, Height: len(want)}, true
			}
			start = idx + 1
		}
	}
	return Rect{}, false
}

func blockAt(lines, want []string, col int) bool {
	for i, w := range want {
		if !strings.HasPrefix(ansi.TruncateLeft(lines[i], col, ""), w) {
			return false
		}
	}
	return true
}
