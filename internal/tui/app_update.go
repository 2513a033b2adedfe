package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/omni-select/internal/logging"
	"github.com/hy4ri/omni-select/internal/tui/components"
)

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.footer.Width = msg.Width
		a.helpComp.SetSize(msg.Width, msg.Height)
		for _, scr := range a.screens {
			scr.SetSize(msg.Width, msg.Height)
		}
		// Open overlays are measured again against the next frame.
		_, cmd := a.screen().Update(msg)
		return a, cmd

	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case tea.MouseMsg:
		if a.showHelp {
			return a, nil
		}
		_, cmd := a.screen().Update(msg)
		return a, cmd

	case components.CloseHelpMsg:
		a.showHelp = false
		return a, nil

	case components.StatusMsg:
		a.statusMsg = msg.Text
		a.statusErr = msg.Error
		return a, nil
	}

	// Selection changes arrive as dropdown.ChangeMsg[T] for each item type.
	for _, scr := range a.screens {
		if sec, ok := scr.Apply(msg); ok {
			return a, a.onChange(sec)
		}
	}

	_, cmd := a.screen().Update(msg)
	return a, cmd
}

// handleKeyMsg processes keyboard input.
func (a *App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	if a.showHelp {
		_, cmd := a.helpComp.Update(msg)
		return a, cmd
	}

	scr := a.screen()

	// An open dropdown owns the keyboard.
	if scr.AnyOpen() {
		_, cmd := scr.Update(msg)
		return a, cmd
	}

	switch a.keymap.Action(msg) {
	case "quit":
		return a, tea.Quit
	case "help":
		a.showHelp = true
	case "next_field":
		scr.FocusNext()
	case "prev_field":
		scr.FocusPrev()
	case "next_screen":
		a.switchScreen(a.current + 1)
	case "prev_screen":
		a.switchScreen(a.current - 1)
	case "screen":
		if len(msg.Runes) == 1 {
			a.switchScreen(int(msg.Runes[0] - '1'))
		}
	case "yank":
		return a, a.handleCopy()
	case "clear":
		a.handleClear()
	default:
		_, cmd := scr.Update(msg)
		return a, cmd
	}
	return a, nil
}

// onChange reports a selection that was written back, and sends a desktop
// notification when configured.
func (a *App) onChange(sec *components.Section) tea.Cmd {
	text := sec.Title + ": " + sec.Field.DisplayText()
	if len(sec.Labels()) == 0 {
		text = sec.Title + ": cleared"
	}
	a.statusMsg = text
	a.statusErr = false

	if !a.config.UI.NotifyOnSelect || a.notify == nil {
		return nil
	}
	notify := a.notify
	return func() tea.Msg {
		if err := notify(appTitle, text); err != nil {
			logging.Debugf("notification failed: %v", err)
			return components.StatusMsg{Text: "Notification failed: " + err.Error(), Error: true}
		}
		return nil
	}
}

// handleCopy copies the focused dropdown's selection to the clipboard.
func (a *App) handleCopy() tea.Cmd {
	sec := a.screen().Current()
	if sec == nil {
		return nil
	}

	labels := sec.Labels()
	if len(labels) == 0 {
		a.statusMsg = "Nothing selected"
		a.statusErr = true
		return nil
	}

	content := strings.Join(labels, ", ")
	copyText := a.copyText
	return func() tea.Msg {
		if err := copyText(content); err != nil {
			return components.StatusMsg{Text: "Failed to copy: " + err.Error(), Error: true}
		}
		return components.StatusMsg{Text: "Copied: " + content}
	}
}

// handleClear empties the focused dropdown's selection.
func (a *App) handleClear() {
	sec := a.screen().Current()
	if sec == nil || sec.Field.Disabled() {
		return
	}
	sec.Field.ClearValue()
	a.statusMsg = sec.Title + ": cleared"
	a.statusErr = false
}
