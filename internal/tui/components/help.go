package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/omni-select/internal/tui/styles"
)

// HelpSection is a titled group of bindings.
type HelpSection struct {
	Title    string
	Bindings []key.Binding
}

// HelpModel renders the help view with keyboard shortcuts.
type HelpModel struct {
	width, height int
	left, right   []HelpSection
}

// NewHelp creates a new HelpModel. left and right are the two columns.
func NewHelp(left, right []HelpSection) *HelpModel {
	return &HelpModel{left: left, right: right}
}

// Init implements Component.
func (h *HelpModel) Init() tea.Cmd {
	return nil
}

// Update implements Component.
func (h *HelpModel) Update(msg tea.Msg) (Component, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "?", "q":
			return h, func() tea.Msg {
				return CloseHelpMsg{}
			}
		}
	}
	return h, nil
}

// View implements Component.
func (h *HelpModel) View() string {
	if len(h.left) == 0 && len(h.right) == 0 {
		return styles.Dialog.Render("No keybindings registered")
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render("Keyboard Shortcuts"))
	b.WriteString("\n")

	colWidth := h.width / 2
	if colWidth > 50 {
		colWidth = 50
	}
	if colWidth < 24 {
		colWidth = 24
	}

	columnStyle := lipgloss.NewStyle().Width(colWidth).PaddingRight(2)
	helpView := lipgloss.JoinHorizontal(lipgloss.Top,
		columnStyle.Render(renderHelpColumn(h.left)),
		columnStyle.Render(renderHelpColumn(h.right)),
	)

	b.WriteString(helpView)
	b.WriteString("\n\n")

	footer := styles.HelpDesc.Render("Press ESC or ? to close")
	b.WriteString(lipgloss.NewStyle().Width(h.width).Align(lipgloss.Center).Render(footer))

	return b.String()
}

func renderHelpColumn(sections []HelpSection) string {
	var b strings.Builder
	keyStyle := styles.HelpKey.Width(12).Align(lipgloss.Right).PaddingRight(2)
	for _, sec := range sections {
		b.WriteString("\n" + styles.SectionHeader.Render(" "+sec.Title+" ") + "\n")
		for _, binding := range sec.Bindings {
			if !binding.Enabled() {
				continue
			}
			hk := binding.Help()
			b.WriteString(keyStyle.Render(hk.Key) + styles.HelpDesc.Render(hk.Desc) + "\n")
		}
	}
	return b.String()
}

// SetSize implements Component.
func (h *HelpModel) SetSize(width, height int) {
	h.width = width
	h.height = height
}
