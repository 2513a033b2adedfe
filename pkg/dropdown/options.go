package dropdown

import "github.com/charmbracelet/lipgloss"

// Defaults applied by New for zero-valued options.
const (
	DefaultPlaceholder       = "Select"
	DefaultSearchPlaceholder = "Search..."
	DefaultNoResultsText     = "No results"
	DefaultWidth             = 30
	DefaultMaxVisible        = 8

	minWidth = 8
)

// Placement decides how the open list is drawn relative to the trigger.
type Placement int

const (
	// PlacementOverlay draws the list on top of the caller's frame, below
	// the measured trigger. The caller composes it with Model.Overlay.
	PlacementOverlay Placement = iota
	// PlacementInline draws the list right under the trigger in View,
	// pushing the rest of the caller's layout down.
	PlacementInline
)

// String returns the config name of the placement.
func (p Placement) String() string {
	if p == PlacementInline {
		return "inline"
	}
	return "overlay"
}

// ParsePlacement maps a config name to a Placement. Unknown names map to
// PlacementOverlay.
func ParsePlacement(s string) Placement {
	if s == "inline" {
		return PlacementInline
	}
	return PlacementOverlay
}

// Options configures a dropdown. Zero values pick the defaults.
type Options[T any] struct {
	// ID is copied into every ChangeMsg so parents can route them.
	ID string

	// Initial selection.
	Value []T

	// Field mapping
	LabelField string
	LabelFunc  func(T) string
	ValueField string
	ValueFunc  func(T) any

	// Display
	Placeholder       string
	SearchPlaceholder string
	NoResultsText     string
	RenderItem        func(item T, selected bool) string

	// Features
	Search   bool
	Multiple bool
	Disabled bool

	// Styling overrides, merged over Styles.
	Style         *lipgloss.Style
	DropdownStyle *lipgloss.Style
	ItemStyle     *lipgloss.Style
	Styles        *Styles

	// OnChange is called with every requested change, before the
	// ChangeMsg command runs.
	OnChange func(ChangeMsg[T])

	Placement  Placement
	Width      int
	MaxVisible int
	Keys       *KeyMap
	Measurer   Measurer
}

func (o *Options[T]) setDefaults() {
	if o.Placeholder == "" {
		o.Placeholder = DefaultPlaceholder
	}
	if o.SearchPlaceholder == "" {
		o.SearchPlaceholder = DefaultSearchPlaceholder
	}
	if o.NoResultsText == "" {
		o.NoResultsText = DefaultNoResultsText
	}
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Width < minWidth {
		o.Width = minWidth
	}
	if o.MaxVisible <= 0 {
		o.MaxVisible = DefaultMaxVisible
	}
}
