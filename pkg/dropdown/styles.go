package dropdown

import "github.com/charmbracelet/lipgloss"

// Palette used by DefaultStyles.
var (
	BorderColor      = lipgloss.AdaptiveColor{Light: "#DDDDDD", Dark: "#555555"}
	FocusColor       = lipgloss.AdaptiveColor{Light: "#007AFF", Dark: "#4DA3FF"}
	TextColor        = lipgloss.AdaptiveColor{Light: "#333333", Dark: "#DDDDDD"}
	PlaceholderColor = lipgloss.AdaptiveColor{Light: "#999999", Dark: "#777777"}
	ArrowColor       = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"}
	SelectedColor    = lipgloss.AdaptiveColor{Light: "#007AFF", Dark: "#4DA3FF"}
	SelectedBgColor  = lipgloss.AdaptiveColor{Light: "#F0F8FF", Dark: "#1C2A3A"}
	SeparatorColor   = lipgloss.AdaptiveColor{Light: "#EEEEEE", Dark: "#3A3A3A"}
)

// Styles holds every style a dropdown renders with.
type Styles struct {
	Trigger         lipgloss.Style
	TriggerFocused  lipgloss.Style
	TriggerDisabled lipgloss.Style
	TriggerText     lipgloss.Style
	Placeholder     lipgloss.Style
	Arrow           lipgloss.Style

	Popup     lipgloss.Style
	Search    lipgloss.Style
	Separator lipgloss.Style

	Item         lipgloss.Style
	ItemText     lipgloss.Style
	Cursor       lipgloss.Style
	SelectedItem lipgloss.Style
	SelectedText lipgloss.Style
	Empty        lipgloss.Style
}

// DefaultStyles returns the stock look.
func DefaultStyles() Styles {
	return Styles{
		Trigger: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(0, 1),
		TriggerFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(FocusColor).
			Padding(0, 1),
		TriggerDisabled: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(0, 1).
			Faint(true),
		TriggerText: lipgloss.NewStyle().
			Foreground(TextColor),
		Placeholder: lipgloss.NewStyle().
			Foreground(PlaceholderColor),
		Arrow: lipgloss.NewStyle().
			Foreground(ArrowColor),

		Popup: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor),
		Search: lipgloss.NewStyle().
			PaddingLeft(1),
		Separator: lipgloss.NewStyle().
			Foreground(SeparatorColor),

		Item: lipgloss.NewStyle().
			PaddingLeft(1),
		ItemText: lipgloss.NewStyle().
			Foreground(TextColor),
		Cursor: lipgloss.NewStyle().
			Foreground(FocusColor).
			Bold(true),
		SelectedItem: lipgloss.NewStyle().
			Background(SelectedBgColor),
		SelectedText: lipgloss.NewStyle().
			Foreground(SelectedColor).
			Bold(true),
		Empty: lipgloss.NewStyle().
			Foreground(PlaceholderColor).
			Padding(1, 2),
	}
}

// merge lays over on top of base. Explicit values in over win.
// Inherit skips margins and padding, so those are carried by hand when
// over leaves them at zero.
func merge(base lipgloss.Style, over *lipgloss.Style) lipgloss.Style {
	if over == nil {
		return base
	}
	s := over.Inherit(base)

	t, r, b, l := over.GetPadding()
	if t == 0 && r == 0 && b == 0 && l == 0 {
		s = s.Padding(base.GetPadding())
	}
	t, r, b, l = over.GetMargin()
	if t == 0 && r == 0 && b == 0 && l == 0 {
		s = s.Margin(base.GetMargin())
	}
	return s
}
