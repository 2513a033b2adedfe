// Package styles provides Lip Gloss styles for the demo TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/omni-select/internal/config"
	"github.com/hy4ri/omni-select/pkg/dropdown"
)

// Terminal-adaptive colors that work in both light and dark terminals.
var (
	// Subtle is a muted color for secondary text
	Subtle lipgloss.TerminalColor = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"}

	// Highlight is the accent color for focused elements
	Highlight lipgloss.TerminalColor = lipgloss.AdaptiveColor{Light: "#007AFF", Dark: "#4DA3FF"}

	// Special colors
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#FF6666"}
	SuccessColor = lipgloss.AdaptiveColor{Light: "#00AA00", Dark: "#66FF66"}
)

// Base styles
var (
	// App is the base style for the entire application
	App lipgloss.Style

	// Title is the style for the screen title
	Title lipgloss.Style

	// Subtitle is for secondary headings
	Subtitle lipgloss.Style

	// SectionHeader labels each example block
	SectionHeader lipgloss.Style

	// Result is the box showing what the user picked
	Result lipgloss.Style

	// ResultDetail is for secondary lines inside Result
	ResultDetail lipgloss.Style
)

// Tab bar styles
var (
	// TabBar is the container for the tab bar
	TabBar lipgloss.Style

	// Tab is for inactive tabs
	Tab lipgloss.Style

	// TabActive is for the active tab
	TabActive lipgloss.Style
)

// StatusBar styles
var (
	// StatusBar is the base style for the status bar
	StatusBar lipgloss.Style

	// StatusBarError is for error messages
	StatusBarError lipgloss.Style

	// StatusBarSuccess is for success messages
	StatusBarSuccess lipgloss.Style
)

// Help styles
var (
	// HelpKey is for key bindings in help
	HelpKey lipgloss.Style

	// HelpDesc is for key binding descriptions
	HelpDesc lipgloss.Style

	// Dialog is the base style for dialog boxes
	Dialog lipgloss.Style
)

// Custom item rows used by the record examples
var (
	UserName     lipgloss.Style
	UserSelected lipgloss.Style
	UserMeta     lipgloss.Style
	PriceTag     lipgloss.Style
	OutOfStock   lipgloss.Style
)

// Styled dropdown example
var (
	StyledTrigger lipgloss.Style
	StyledMenu    lipgloss.Style
	StyledItem    lipgloss.Style
)

var statusBg = lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#1F1F1F"}

func init() {
	build()
}

// ApplyTheme replaces the accent colors with the configured ones and
// rebuilds every style that uses them.
func ApplyTheme(t config.ThemeConfig) {
	if t.Highlight != "" {
		Highlight = lipgloss.Color(t.Highlight)
	}
	if t.Subtle != "" {
		Subtle = lipgloss.Color(t.Subtle)
	}
	build()
}

func build() {
	App = lipgloss.NewStyle().
		Padding(1, 2)

	// NOTE: No margins - the overlay positions depend on exact line counts
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight)

	Subtitle = lipgloss.NewStyle().
		Foreground(Subtle)

	SectionHeader = lipgloss.NewStyle().
		Bold(true).
		Underline(true)

	Result = lipgloss.NewStyle().
		Background(lipgloss.AdaptiveColor{Light: "#E8F4F8", Dark: "#1B2B30"}).
		Padding(0, 1)

	ResultDetail = lipgloss.NewStyle().
		Foreground(Subtle)

	TabBar = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(Subtle).
		PaddingLeft(1).
		PaddingRight(1)

	Tab = lipgloss.NewStyle().
		Padding(0, 2).
		Foreground(Subtle)

	TabActive = lipgloss.NewStyle().
		Padding(0, 2).
		Bold(true).
		Foreground(Highlight).
		Underline(true)

	StatusBar = lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#DDDDDD"}).
		Background(statusBg).
		Padding(0, 1)

	StatusBarError = lipgloss.NewStyle().
		Foreground(ErrorColor).
		Background(statusBg).
		Bold(true)

	StatusBarSuccess = lipgloss.NewStyle().
		Foreground(SuccessColor).
		Background(statusBg).
		Bold(true)

	HelpKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight)

	HelpDesc = lipgloss.NewStyle().
		Foreground(Subtle)

	Dialog = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Highlight).
		Padding(1, 2)

	UserName = lipgloss.NewStyle().
		Bold(true)

	UserSelected = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight)

	UserMeta = lipgloss.NewStyle().
		Foreground(Subtle)

	PriceTag = lipgloss.NewStyle().
		Foreground(SuccessColor)

	OutOfStock = lipgloss.NewStyle().
		Foreground(ErrorColor).
		Faint(true)

	StyledTrigger = lipgloss.NewStyle().
		BorderStyle(lipgloss.ThickBorder()).
		BorderForeground(lipgloss.Color("#4A90E2")).
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color("#4A90E2")).
		Padding(0, 2)

	StyledMenu = lipgloss.NewStyle().
		BorderStyle(lipgloss.DoubleBorder()).
		BorderForeground(lipgloss.Color("#4A90E2"))

	StyledItem = lipgloss.NewStyle().
		PaddingLeft(2)
}

// Dropdown returns the dropdown styles tinted with the current accent.
func Dropdown() dropdown.Styles {
	s := dropdown.DefaultStyles()
	s.TriggerFocused = s.TriggerFocused.BorderForeground(Highlight)
	s.Cursor = s.Cursor.Foreground(Highlight)
	s.SelectedText = s.SelectedText.Foreground(Highlight)
	return s
}
