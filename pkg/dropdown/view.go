package dropdown

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const arrow = "▼"

// View renders the trigger. With inline placement an open list is drawn
// right below it.
func (m *Model[T]) View() string {
	trigger := m.TriggerView()
	if m.open && m.opts.Placement == PlacementInline {
		return lipgloss.JoinVertical(lipgloss.Left, trigger, m.Popup())
	}
	return trigger
}

// TriggerView renders only the trigger.
func (m *Model[T]) TriggerView() string {
	base := m.styles.Trigger
	switch {
	case m.opts.Disabled:
		base = m.styles.TriggerDisabled
	case m.focused || m.open:
		base = m.styles.TriggerFocused
	}
	style := merge(base, m.opts.Style)

	// Width covers padding but not the border.
	inner := m.width - style.GetHorizontalBorderSize()
	textWidth := inner - style.GetHorizontalPadding() - runewidth.StringWidth(arrow) - 1
	if textWidth < 1 {
		textWidth = 1
	}

	text := padRight(truncate(m.DisplayText(), textWidth), textWidth)
	if len(m.value) == 0 {
		text = m.styles.Placeholder.Render(text)
	} else {
		text = m.styles.TriggerText.Render(text)
	}

	return style.Width(inner).Render(text + " " + m.styles.Arrow.Render(arrow))
}

// Popup renders the open list: the search box when enabled, then the
// visible window of items, or the no-results text.
func (m *Model[T]) Popup() string {
	style := merge(m.styles.Popup, m.opts.DropdownStyle)
	width := m.popupWidth()
	inner := width - style.GetHorizontalBorderSize()
	content := inner - style.GetHorizontalPadding()
	if content < 1 {
		content = 1
	}

	var b strings.Builder
	if m.opts.Search {
		b.WriteString(m.styles.Search.Width(content).Render(m.search.View()))
		b.WriteString("\n")
		b.WriteString(m.styles.Separator.Render(strings.Repeat("─", content)))
		b.WriteString("\n")
	}

	items := m.Filtered()
	if len(items) == 0 {
		b.WriteString(m.styles.Empty.Width(content).Render(m.opts.NoResultsText))
	} else {
		start, end := m.window(len(items))
		for i := start; i < end; i++ {
			if i > start {
				b.WriteString("\n")
			}
			b.WriteString(m.renderRow(items[i], i == m.cursor, content))
		}
	}

	return style.Width(inner).Render(b.String())
}

// renderRow renders one list row. Custom renderers get the whole row and
// only the cursor marker is added in front.
func (m *Model[T]) renderRow(item T, cursor bool, width int) string {
	selected := m.IsSelected(item)

	marker := "  "
	if cursor {
		marker = m.styles.Cursor.Render("> ")
	}

	if m.opts.RenderItem != nil {
		body := m.opts.RenderItem(item, selected)
		return lipgloss.NewStyle().MaxWidth(width).Render(
			lipgloss.JoinHorizontal(lipgloss.Top, marker, body),
		)
	}

	style := merge(m.styles.Item, m.opts.ItemStyle)
	textStyle := m.styles.ItemText
	if selected {
		style = style.Inherit(m.styles.SelectedItem)
		textStyle = m.styles.SelectedText
	}

	labelWidth := width - style.GetHorizontalFrameSize() - 2
	label := truncate(m.Label(item), labelWidth)
	return style.Width(width).Render(marker + textStyle.Render(label))
}

func (m *Model[T]) popupWidth() int {
	w := m.width
	if m.opts.Placement == PlacementOverlay && m.pos.Width > 0 {
		w = m.pos.Width
	}
	if w < minWidth {
		w = minWidth
	}
	return w
}

// Overlay draws the open popup over frame at Position. Inline placement and
// closed dropdowns leave frame untouched.
func (m *Model[T]) Overlay(frame string) string {
	if !m.open || m.opts.Placement != PlacementOverlay {
		return frame
	}
	return Compose(frame, m.Popup(), m.pos.Top, m.pos.Left)
}

// PopupRect returns the area covered by the open popup in the caller's
// frame. It needs a measurer for inline placement.
func (m *Model[T]) PopupRect() (Rect, bool) {
	if !m.open {
		return Rect{}, false
	}
	popup := m.Popup()
	r := Rect{Width: lipgloss.Width(popup), Height: lipgloss.Height(popup)}
	if m.opts.Placement == PlacementOverlay {
		r.X, r.Y = m.pos.Left, m.pos.Top
		return r, true
	}
	t, ok := m.triggerRect()
	if !ok {
		return Rect{}, false
	}
	r.X, r.Y = t.X, t.Y+t.Height
	return r, true
}

func (m *Model[T]) triggerRect() (Rect, bool) {
	if m.measurer == nil {
		return Rect{}, false
	}
	return m.measurer.Measure()
}

// itemAt maps a cell to an index in Filtered.
func (m *Model[T]) itemAt(x, y int) (int, bool) {
	r, ok := m.PopupRect()
	if !ok || !r.Contains(x, y) {
		return 0, false
	}

	style := merge(m.styles.Popup, m.opts.DropdownStyle)
	content := r.Width - style.GetHorizontalFrameSize()
	row := r.Y + style.GetBorderTopSize() + style.GetPaddingTop()
	if m.opts.Search {
		row += 2
	}

	items := m.Filtered()
	start, end := m.window(len(items))
	for i := start; i < end; i++ {
		h := lipgloss.Height(m.renderRow(items[i], i == m.cursor, content))
		if y >= row && y < row+h {
			return i, true
		}
		row += h
	}
	return 0, false
}

func (m *Model[T]) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress {
		return nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if m.open {
			m.moveCursor(-1)
		}
		return nil
	case tea.MouseButtonWheelDown:
		if m.open {
			m.moveCursor(1)
		}
		return nil
	case tea.MouseButtonLeft:
	default:
		return nil
	}

	if t, ok := m.triggerRect(); ok && t.Contains(msg.X, msg.Y) {
		if m.open {
			m.Close()
			return nil
		}
		return m.Open()
	}
	if !m.open {
		return nil
	}

	if i, ok := m.itemAt(msg.X, msg.Y); ok {
		m.cursor = i
		return m.Select(m.Filtered()[i])
	}
	// A press outside the popup dismisses it.
	if r, ok := m.PopupRect(); !ok || !r.Contains(msg.X, msg.Y) {
		m.Close()
	}
	return nil
}
