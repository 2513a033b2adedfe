// Package dropdown provides a select control for Bubble Tea programs.
//
// A dropdown shows a one-line trigger. Opening it lists the items, optionally
// behind a search box, and lets the user pick one item or several. The
// dropdown is controlled: it never changes its own selection. Picks are
// reported through Options.OnChange and a ChangeMsg command, and the owner
// writes the new selection back with SetValue.
package dropdown

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Model is a dropdown over items of type T.
type Model[T any] struct {
	opts    Options[T]
	extract Extractor[T]
	styles  Styles
	keys    KeyMap

	items []T
	value []T

	open    bool
	focused bool
	search  textinput.Model
	cursor  int
	offset  int
	pos     Position

	measurer Measurer
	width    int
}

// New creates a dropdown over items.
func New[T any](items []T, opts Options[T]) *Model[T] {
	opts.setDefaults()

	styles := DefaultStyles()
	if opts.Styles != nil {
		styles = *opts.Styles
	}
	keys := DefaultKeyMap()
	if opts.Keys != nil {
		keys = *opts.Keys
	}

	ti := textinput.New()
	ti.Placeholder = opts.SearchPlaceholder
	ti.Prompt = "/ "
	ti.CharLimit = 100

	m := &Model[T]{
		opts: opts,
		extract: Extractor[T]{
			LabelField: opts.LabelField,
			LabelFunc:  opts.LabelFunc,
			ValueField: opts.ValueField,
			ValueFunc:  opts.ValueFunc,
		},
		styles:   styles,
		keys:     keys,
		items:    items,
		value:    Normalize(opts.Value),
		search:   ti,
		measurer: opts.Measurer,
	}
	m.SetWidth(opts.Width)
	return m
}

// Init implements tea.Model.
func (m *Model[T]) Init() tea.Cmd {
	return nil
}

// SetItems replaces the item list. The cursor is clamped to the new list.
func (m *Model[T]) SetItems(items []T) {
	m.items = items
	m.clampCursor()
}

// Items returns the full item list.
func (m *Model[T]) Items() []T {
	return m.items
}

// SetValue replaces the selection.
func (m *Model[T]) SetValue(items ...T) {
	m.value = Normalize(items)
}

// SetSelected sets a single-item selection.
func (m *Model[T]) SetSelected(item T) {
	m.value = []T{item}
}

// ClearValue empties the selection.
func (m *Model[T]) ClearValue() {
	m.value = nil
}

// Value returns the current selection.
func (m *Model[T]) Value() []T {
	return m.value
}

// Selected returns the first selected item.
func (m *Model[T]) Selected() (T, bool) {
	if len(m.value) == 0 {
		var zero T
		return zero, false
	}
	return m.value[0], true
}

// SetDisabled enables or disables the dropdown. Disabling closes it.
func (m *Model[T]) SetDisabled(disabled bool) {
	m.opts.Disabled = disabled
	if disabled {
		m.Close()
	}
}

// Disabled reports whether the dropdown ignores input.
func (m *Model[T]) Disabled() bool {
	return m.opts.Disabled
}

// Multiple reports whether the dropdown is multi-select.
func (m *Model[T]) Multiple() bool {
	return m.opts.Multiple
}

// ID returns the routing ID from Options.
func (m *Model[T]) ID() string {
	return m.opts.ID
}

// SetMeasurer sets the strategy used to find the trigger on screen.
func (m *Model[T]) SetMeasurer(ms Measurer) {
	m.measurer = ms
}

// SetWidth sets the trigger width in cells, borders included.
func (m *Model[T]) SetWidth(width int) {
	if width < minWidth {
		width = minWidth
	}
	m.width = width
	// border(2) + search padding(1) + prompt(2) + cursor(1)
	m.search.Width = width - 6
}

// Width returns the trigger width in cells.
func (m *Model[T]) Width() int {
	return m.width
}

// Focus gives the dropdown keyboard focus.
func (m *Model[T]) Focus() {
	m.focused = true
}

// Blur removes keyboard focus and closes the list.
func (m *Model[T]) Blur() {
	m.focused = false
	m.Close()
}

// Focused reports whether the dropdown has keyboard focus.
func (m *Model[T]) Focused() bool {
	return m.focused
}

// IsOpen reports whether the list is shown.
func (m *Model[T]) IsOpen() bool {
	return m.open
}

// SearchQuery returns the current search text.
func (m *Model[T]) SearchQuery() string {
	return m.search.Value()
}

// SetSearchQuery replaces the search text and resets the cursor.
func (m *Model[T]) SetSearchQuery(q string) {
	m.search.SetValue(q)
	m.cursor, m.offset = 0, 0
}

// Position returns where the popup was placed on the last Open.
func (m *Model[T]) Position() Position {
	return m.pos
}

// Cursor returns the highlighted row in Filtered.
func (m *Model[T]) Cursor() int {
	return m.cursor
}

// Label returns the display label of item.
func (m *Model[T]) Label(item T) string {
	return m.extract.Label(item)
}

// Filtered returns the items currently listed.
func (m *Model[T]) Filtered() []T {
	if !m.opts.Search {
		return m.items
	}
	return Filter(m.items, m.search.Value(), m.extract.Label)
}

// DisplayText returns the trigger text.
func (m *Model[T]) DisplayText() string {
	return DisplayText(m.value, m.opts.Placeholder, m.extract.Label)
}

// IsSelected reports whether item is part of the selection.
func (m *Model[T]) IsSelected(item T) bool {
	return Contains(m.value, item, m.extract.Equal)
}

// Open shows the list. With overlay placement the trigger is measured
// first and the popup is placed right below it, as wide as the trigger.
func (m *Model[T]) Open() tea.Cmd {
	if m.opts.Disabled {
		return nil
	}

	if m.opts.Placement == PlacementOverlay {
		r := m.measure()
		m.pos = Position{Top: r.Y + r.Height, Left: r.X, Width: r.Width}
	}
	m.open = true

	m.cursor, m.offset = 0, 0
	for i, item := range m.Filtered() {
		if m.IsSelected(item) {
			m.cursor = i
			break
		}
	}
	m.adjustScroll()

	if m.opts.Search {
		return m.search.Focus()
	}
	return nil
}

// Close hides the list. The search text is kept.
func (m *Model[T]) Close() {
	m.open = false
	m.search.Blur()
}

// Select requests item as the new selection. In multi-select mode the
// item's membership is toggled and the list stays open; otherwise the
// item replaces the selection and the list closes.
func (m *Model[T]) Select(item T) tea.Cmd {
	if m.opts.Disabled {
		return nil
	}

	change := ChangeMsg[T]{ID: m.opts.ID, Multiple: m.opts.Multiple}
	if m.opts.Multiple {
		change.Items = Toggle(m.value, item, m.extract.Equal)
	} else {
		change.Item = item
		change.Items = []T{item}
		m.Close()
	}
	return m.emit(change)
}

func (m *Model[T]) emit(change ChangeMsg[T]) tea.Cmd {
	if m.opts.OnChange != nil {
		m.opts.OnChange(change)
	}
	return func() tea.Msg {
		return change
	}
}

func (m *Model[T]) measure() Rect {
	if m.measurer != nil {
		if r, ok := m.measurer.Measure(); ok {
			return r
		}
	}
	r := FallbackRect
	r.Width = m.width
	return r
}

// Update handles keyboard, mouse and resize messages.
func (m *Model[T]) Update(msg tea.Msg) tea.Cmd {
	if m.opts.Disabled {
		return nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.open {
			return m.handleOpenKey(msg)
		}
		if m.focused && key.Matches(msg, m.keys.Open, m.keys.VimDown) {
			return m.Open()
		}
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.WindowSizeMsg:
		if m.open && m.opts.Placement == PlacementOverlay {
			r := m.measure()
			m.pos = Position{Top: r.Y + r.Height, Left: r.X, Width: r.Width}
		}
	default:
		// Cursor blink for the search box.
		if m.open && m.opts.Search {
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			return cmd
		}
	}
	return nil
}

func (m *Model[T]) handleOpenKey(msg tea.KeyMsg) tea.Cmd {
	searching := m.opts.Search

	switch {
	case key.Matches(msg, m.keys.Close):
		m.Close()
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case !searching && key.Matches(msg, m.keys.VimUp):
		m.moveCursor(-1)
	case !searching && key.Matches(msg, m.keys.VimDown):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.PageUp):
		m.moveCursor(-m.opts.MaxVisible)
	case key.Matches(msg, m.keys.PageDown):
		m.moveCursor(m.opts.MaxVisible)
	case key.Matches(msg, m.keys.Home):
		m.cursor = 0
		m.adjustScroll()
	case key.Matches(msg, m.keys.End):
		m.cursor = len(m.Filtered()) - 1
		m.clampCursor()
	case key.Matches(msg, m.keys.Select):
		return m.selectCursor()
	case !searching && key.Matches(msg, m.keys.Toggle):
		return m.selectCursor()
	default:
		if searching {
			prev := m.search.Value()
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			if m.search.Value() != prev {
				m.cursor, m.offset = 0, 0
			}
			return cmd
		}
	}
	return nil
}

func (m *Model[T]) selectCursor() tea.Cmd {
	items := m.Filtered()
	if m.cursor < 0 || m.cursor >= len(items) {
		return nil
	}
	return m.Select(items[m.cursor])
}

func (m *Model[T]) moveCursor(delta int) {
	m.cursor += delta
	m.clampCursor()
}

func (m *Model[T]) clampCursor() {
	n := len(m.Filtered())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.adjustScroll()
}

// adjustScroll keeps the cursor inside the visible window.
func (m *Model[T]) adjustScroll() {
	if m.cursor < m.offset {
		m.offset = m.cursor
	} else if m.cursor >= m.offset+m.opts.MaxVisible {
		m.offset = m.cursor - m.opts.MaxVisible + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// window returns the visible range of an n-item list.
func (m *Model[T]) window(n int) (start, end int) {
	start = m.offset
	if start > n-m.opts.MaxVisible {
		start = n - m.opts.MaxVisible
	}
	if start < 0 {
		start = 0
	}
	end = start + m.opts.MaxVisible
	if end > n {
		end = n
	}
	return start, end
}
