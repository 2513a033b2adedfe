package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/omni-select/internal/tui/styles"
)

var (
	_ Component = (*Screen)(nil)
	_ Focusable = (*Screen)(nil)
	_ Component = (*HelpModel)(nil)
)

// Screen is one tab of the demo: a column of dropdown sections with a
// single focused field.
type Screen struct {
	Name        string
	Description string

	sections []*Section
	focus    int
	focused  bool

	width, height int
	focusLine     int
}

// NewScreen creates a screen over sections.
func NewScreen(name, description string, sections ...*Section) *Screen {
	return &Screen{
		Name:        name,
		Description: description,
		sections:    sections,
	}
}

// Init implements Component.
func (s *Screen) Init() tea.Cmd {
	return nil
}

// Update implements Component. Keys go to the focused field. While a list
// is open mouse events only reach it, since its popup may cover other
// triggers. Otherwise they go to every field and focus follows the one
// that opened.
func (s *Screen) Update(msg tea.Msg) (Component, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if cur := s.Current(); cur != nil {
			return s, cur.Field.Update(msg)
		}
	case tea.MouseMsg:
		for _, sec := range s.sections {
			if sec.Field.IsOpen() {
				return s, sec.Field.Update(msg)
			}
		}
		var cmds []tea.Cmd
		for _, sec := range s.sections {
			cmds = append(cmds, sec.Field.Update(msg))
		}
		for i, sec := range s.sections {
			if sec.Field.IsOpen() && i != s.focus {
				s.setFocus(i)
				break
			}
		}
		return s, tea.Batch(cmds...)
	default:
		var cmds []tea.Cmd
		for _, sec := range s.sections {
			cmds = append(cmds, sec.Field.Update(msg))
		}
		return s, tea.Batch(cmds...)
	}
	return s, nil
}

// View implements Component.
func (s *Screen) View() string {
	var b strings.Builder
	line := 0
	write := func(str string) {
		b.WriteString(str)
		b.WriteString("\n")
		line += lipgloss.Height(str)
	}

	write(styles.Title.Render(s.Name))
	if s.Description != "" {
		write(styles.Subtitle.Render(s.Description))
	}

	for i, sec := range s.sections {
		write("")
		write(styles.SectionHeader.Render(sec.Title))
		if sec.Hint != "" {
			write(styles.Subtitle.Render(sec.Hint))
		}
		sec.line = line
		if i == s.focus {
			s.focusLine = line
		}
		write(sec.Field.View())
		if res := sec.Result(); res != "" {
			write(styles.Result.Render(res))
		}
	}

	return strings.TrimSuffix(b.String(), "\n")
}

// SetSize implements Component.
func (s *Screen) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// Focus implements Focusable.
func (s *Screen) Focus() {
	s.focused = true
	if cur := s.Current(); cur != nil {
		cur.Field.Focus()
	}
}

// Blur implements Focusable. Open dropdowns are closed.
func (s *Screen) Blur() {
	s.focused = false
	for _, sec := range s.sections {
		sec.Field.Blur()
	}
}

// Focused implements Focusable.
func (s *Screen) Focused() bool {
	return s.focused
}

// Sections returns the screen's sections in display order.
func (s *Screen) Sections() []*Section {
	return s.sections
}

// Current returns the focused section.
func (s *Screen) Current() *Section {
	if s.focus < 0 || s.focus >= len(s.sections) {
		return nil
	}
	return s.sections[s.focus]
}

// FocusNext moves focus to the next section, wrapping around.
func (s *Screen) FocusNext() {
	if len(s.sections) == 0 {
		return
	}
	s.setFocus((s.focus + 1) % len(s.sections))
}

// FocusPrev moves focus to the previous section, wrapping around.
func (s *Screen) FocusPrev() {
	if len(s.sections) == 0 {
		return
	}
	s.setFocus((s.focus - 1 + len(s.sections)) % len(s.sections))
}

func (s *Screen) setFocus(i int) {
	if cur := s.Current(); cur != nil && i != s.focus {
		cur.Field.Close()
		cur.Field.Blur()
	}
	s.focus = i
	if s.focused {
		s.sections[i].Field.Focus()
	}
}

// FocusLine returns the line of the focused trigger in the last View.
func (s *Screen) FocusLine() int {
	return s.focusLine
}

// AnyOpen reports whether one of the dropdowns is open.
func (s *Screen) AnyOpen() bool {
	for _, sec := range s.sections {
		if sec.Field.IsOpen() {
			return true
		}
	}
	return false
}

// Apply routes a ChangeMsg to the section it belongs to.
func (s *Screen) Apply(msg tea.Msg) (*Section, bool) {
	for _, sec := range s.sections {
		if sec.Apply(msg) {
			return sec, true
		}
	}
	return nil, false
}

// Overlay composes every open overlay popup onto frame.
func (s *Screen) Overlay(frame string) string {
	for _, sec := range s.sections {
		frame = sec.Field.Overlay(frame)
	}
	return frame
}
