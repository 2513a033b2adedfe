package dropdown

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of a dropdown.
type KeyMap struct {
	// Closed trigger
	Open key.Binding

	// Open list
	Up       key.Binding
	Down     key.Binding
	VimUp    key.Binding
	VimDown  key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding
	Select   key.Binding
	Toggle   key.Binding
	Close    key.Binding
}

// DefaultKeyMap returns arrow-key bindings plus j/k. VimDown also opens a
// closed trigger. The vim keys and the space toggle are ignored while a
// search box is shown.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Open: key.NewBinding(
			key.WithKeys("enter", " ", "space", "down"),
			key.WithHelp("enter", "open"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓", "down"),
		),
		VimUp: key.NewBinding(
			key.WithKeys("k"),
			key.WithHelp("k", "up"),
		),
		VimDown: key.NewBinding(
			key.WithKeys("j"),
			key.WithHelp("j", "down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("pgdn", "page down"),
		),
		Home: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "first"),
		),
		End: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "last"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "toggle"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc", "tab"),
			key.WithHelp("esc", "close"),
		),
	}
}

// WithoutVim returns a copy of k with j/k disabled.
func (k KeyMap) WithoutVim() KeyMap {
	k.VimUp.SetEnabled(false)
	k.VimDown.SetEnabled(false)
	return k
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Toggle, k.Close}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Open, k.Select, k.Toggle, k.Close},
		{k.Up, k.Down, k.VimUp, k.VimDown},
		{k.PageUp, k.PageDown, k.Home, k.End},
	}
}
