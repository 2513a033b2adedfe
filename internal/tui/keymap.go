// Package tui provides the omni-select demo application.
package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Keymap contains the application-level key bindings. Dropdown keys are
// handled by the focused dropdown itself.
type Keymap struct {
	NextField  key.Binding
	PrevField  key.Binding
	NextScreen key.Binding
	PrevScreen key.Binding
	Screen     key.Binding
	Yank       key.Binding
	Clear      key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeymap returns the default key bindings.
func DefaultKeymap() Keymap {
	return Keymap{
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next dropdown"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous dropdown"),
		),
		NextScreen: key.NewBinding(
			key.WithKeys("]", "right", "l"),
			key.WithHelp("]", "next screen"),
		),
		PrevScreen: key.NewBinding(
			key.WithKeys("[", "left", "h"),
			key.WithHelp("[", "previous screen"),
		),
		Screen: key.NewBinding(
			key.WithKeys("1", "2", "3", "4"),
			key.WithHelp("1-4", "jump to screen"),
		),
		Yank: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy selection"),
		),
		Clear: key.NewBinding(
			key.WithKeys("x", "backspace"),
			key.WithHelp("x", "clear selection"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action returns the name of the application action bound to msg, or ""
// when msg is not an application key.
func (k Keymap) Action(msg tea.KeyMsg) string {
	switch {
	case key.Matches(msg, k.Quit):
		return "quit"
	case key.Matches(msg, k.Help):
		return "help"
	case key.Matches(msg, k.NextField):
		return "next_field"
	case key.Matches(msg, k.PrevField):
		return "prev_field"
	case key.Matches(msg, k.NextScreen):
		return "next_screen"
	case key.Matches(msg, k.PrevScreen):
		return "prev_screen"
	case key.Matches(msg, k.Screen):
		return "screen"
	case key.Matches(msg, k.Yank):
		return "yank"
	case key.Matches(msg, k.Clear):
		return "clear"
	}
	return ""
}

// ShortHelp implements help.KeyMap.
func (k Keymap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextField, k.NextScreen, k.Yank, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k Keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextField, k.PrevField},
		{k.NextScreen, k.PrevScreen, k.Screen},
		{k.Yank, k.Clear, k.Help, k.Quit},
	}
}
