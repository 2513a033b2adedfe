package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/omni-select/internal/logging"
	"github.com/hy4ri/omni-select/pkg/dropdown"
)

// Field is a dropdown with its item type erased, so screens can hold
// dropdowns over different types in one list. *dropdown.Model[T]
// satisfies it for every T.
type Field interface {
	ID() string
	Update(msg tea.Msg) tea.Cmd
	View() string
	TriggerView() string
	Overlay(frame string) string
	SetMeasurer(m dropdown.Measurer)
	SetWidth(width int)

	Focus()
	Blur()
	Focused() bool
	IsOpen() bool
	Close()
	Disabled() bool

	DisplayText() string
	ClearValue()
}

// Section is one example block: a title, a dropdown and the result line
// rendered below it.
type Section struct {
	Title string
	Hint  string
	Field Field

	result func() string
	labels func() []string
	apply  func(msg tea.Msg) bool

	// line is the trigger's first line in the screen's last View.
	line int
}

// NewSection binds d to a section. result renders a non-empty selection
// and may be nil, in which case the labels are listed.
func NewSection[T any](title, hint string, d *dropdown.Model[T], result func([]T) string) *Section {
	s := &Section{
		Title: title,
		Hint:  hint,
		Field: d,
	}
	s.labels = func() []string {
		out := make([]string, 0, len(d.Value()))
		for _, v := range d.Value() {
			out = append(out, d.Label(v))
		}
		return out
	}
	s.result = func() string {
		if result != nil {
			return result(d.Value())
		}
		return "Selected: " + strings.Join(s.labels(), ", ")
	}
	s.apply = func(msg tea.Msg) bool {
		change, ok := msg.(dropdown.ChangeMsg[T])
		if !ok || change.ID != d.ID() {
			return false
		}
		d.SetValue(change.Items...)
		logging.Debugf("%s: %d selected", d.ID(), len(change.Items))
		return true
	}
	return s
}

// Apply writes a ChangeMsg addressed to this section's dropdown back into
// it. It reports whether msg was consumed.
func (s *Section) Apply(msg tea.Msg) bool {
	return s.apply(msg)
}

// Result renders the current selection, or "" when nothing is selected.
func (s *Section) Result() string {
	if len(s.labels()) == 0 {
		return ""
	}
	return s.result()
}

// Labels returns the labels of the current selection in order.
func (s *Section) Labels() []string {
	return s.labels()
}

// Line returns the line of the trigger's top border in the last View of
// the screen holding the section.
func (s *Section) Line() int {
	return s.line
}
