package dropdown

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

type option struct {
	Label string
	Value string
}

var mockData = []option{
	{Label: "Option 1", Value: "1"},
	{Label: "Option 2", Value: "2"},
	{Label: "Option 3", Value: "3"},
}

// keyMsg builds the message Bubble Tea would deliver for a key name.
func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "end":
		return tea.KeyMsg{Type: tea.KeyEnd}
	case "home":
		return tea.KeyMsg{Type: tea.KeyHome}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

// recorder collects OnChange calls.
type recorder[T any] struct {
	calls []ChangeMsg[T]
}

func (r *recorder[T]) onChange(c ChangeMsg[T]) {
	r.calls = append(r.calls, c)
}

func (r *recorder[T]) last(t *testing.T) ChangeMsg[T] {
	t.Helper()
	if len(r.calls) == 0 {
		t.Fatal("expected OnChange to be called")
	}
	return r.calls[len(r.calls)-1]
}

func plain(s string) string {
	return ansi.Strip(s)
}

func TestDropdown_RendersPlaceholder(t *testing.T) {
	d := New(mockData, Options[option]{Placeholder: "Select an option"})

	if got := d.DisplayText(); got != "Select an option" {
		t.Errorf("expected placeholder, got %q", got)
	}
	if !strings.Contains(plain(d.View()), "Select an option") {
		t.Errorf("trigger should show placeholder, got:\n%s", d.View())
	}
	if d.IsOpen() {
		t.Error("dropdown should start closed")
	}
}

func TestDropdown_DefaultPlaceholder(t *testing.T) {
	d := New(mockData, Options[option]{})
	if got := d.DisplayText(); got != "Select" {
		t.Errorf("expected default placeholder %q, got %q", "Select", got)
	}
}

func TestDropdown_OpensWhenPressed(t *testing.T) {
	d := New(mockData, Options[option]{Placeholder: "Select an option"})
	d.Focus()

	d.Update(keyMsg("enter"))
	if !d.IsOpen() {
		t.Fatal("dropdown should be open after enter")
	}

	popup := plain(d.Popup())
	for _, o := range mockData {
		if !strings.Contains(popup, o.Label) {
			t.Errorf("expected %q in popup, got:\n%s", o.Label, popup)
		}
	}
}

func TestDropdown_OpensOnVimDown(t *testing.T) {
	d := New(mockData, Options[option]{})
	d.Focus()
	d.Update(keyMsg("j"))
	if !d.IsOpen() {
		t.Fatal("j should open a focused trigger")
	}

	keys := DefaultKeyMap().WithoutVim()
	plainKeys := New(mockData, Options[option]{Keys: &keys})
	plainKeys.Focus()
	plainKeys.Update(keyMsg("j"))
	if plainKeys.IsOpen() {
		t.Error("j should not open without vim keys")
	}
	plainKeys.Update(keyMsg("down"))
	if !plainKeys.IsOpen() {
		t.Error("down should still open without vim keys")
	}
}

func TestDropdown_IgnoresKeysWhenUnfocused(t *testing.T) {
	d := New(mockData, Options[option]{})
	d.Update(keyMsg("enter"))
	if d.IsOpen() {
		t.Error("unfocused dropdown should not open on enter")
	}
}

func TestDropdown_SingleSelection(t *testing.T) {
	rec := &recorder[option]{}
	d := New(mockData, Options[option]{
		ID:          "single",
		Placeholder: "Select an option",
		OnChange:    rec.onChange,
	})
	d.Focus()
	d.Update(keyMsg("enter"))
	d.Update(keyMsg("down"))
	cmd := d.Update(keyMsg("enter"))

	got := rec.last(t)
	if got.Item != mockData[1] {
		t.Errorf("expected %v, got %v", mockData[1], got.Item)
	}
	if got.Multiple {
		t.Error("single-select change should not be flagged multiple")
	}
	if d.IsOpen() {
		t.Error("single select should close the list")
	}

	if cmd == nil {
		t.Fatal("expected a ChangeMsg command")
	}
	msg, ok := cmd().(ChangeMsg[option])
	if !ok {
		t.Fatalf("expected ChangeMsg, got %T", cmd())
	}
	if msg.ID != "single" || msg.Item != mockData[1] {
		t.Errorf("unexpected message %+v", msg)
	}
}

func TestDropdown_IsControlled(t *testing.T) {
	d := New(mockData, Options[option]{})
	d.Select(mockData[0])

	if len(d.Value()) != 0 {
		t.Errorf("selection must only change through SetValue, got %v", d.Value())
	}
	if d.DisplayText() != DefaultPlaceholder {
		t.Errorf("expected placeholder, got %q", d.DisplayText())
	}
}

func TestDropdown_MultiSelection(t *testing.T) {
	rec := &recorder[option]{}
	d := New(mockData, Options[option]{
		Placeholder: "Select options",
		Multiple:    true,
		OnChange: func(c ChangeMsg[option]) {
			rec.onChange(c)
		},
	})
	d.Focus()
	d.Update(keyMsg("enter"))

	// Owner applies each change, as a controlled component expects.
	d.Update(keyMsg("enter"))
	if got := rec.last(t).Items; !reflect.DeepEqual(got, []option{mockData[0]}) {
		t.Errorf("expected [Option 1], got %v", got)
	}
	d.SetValue(rec.last(t).Items...)

	d.Update(keyMsg("down"))
	d.Update(keyMsg("enter"))
	want := []option{mockData[0], mockData[1]}
	if got := rec.last(t).Items; !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
	d.SetValue(rec.last(t).Items...)

	if !d.IsOpen() {
		t.Error("multi select should keep the list open")
	}
	if !rec.last(t).Multiple {
		t.Error("multi-select change should be flagged multiple")
	}

	// Selecting a member again removes it.
	d.Update(keyMsg("up"))
	d.Update(keyMsg("space"))
	if got := rec.last(t).Items; !reflect.DeepEqual(got, []option{mockData[1]}) {
		t.Errorf("expected [Option 2] after deselect, got %v", got)
	}
}

func TestDropdown_SearchFiltering(t *testing.T) {
	d := New(mockData, Options[option]{
		Placeholder:       "Select an option",
		Search:            true,
		SearchPlaceholder: "Search...",
	})
	d.Focus()
	d.Update(keyMsg("enter"))

	if !strings.Contains(plain(d.Popup()), "Search...") {
		t.Errorf("expected search placeholder in popup:\n%s", d.Popup())
	}

	d.Update(keyMsg("Option 2"))
	if d.SearchQuery() != "Option 2" {
		t.Fatalf("expected query %q, got %q", "Option 2", d.SearchQuery())
	}

	filtered := d.Filtered()
	if len(filtered) != 1 || filtered[0] != mockData[1] {
		t.Errorf("expected only Option 2, got %v", filtered)
	}

	popup := plain(d.Popup())
	if strings.Contains(popup, "Option 1") || strings.Contains(popup, "Option 3") {
		t.Errorf("filtered options should not be listed:\n%s", popup)
	}
}

func TestDropdown_SearchIsCaseInsensitive(t *testing.T) {
	d := New(mockData, Options[option]{Search: true})
	d.SetSearchQuery("OPTION 3")

	if got := d.Filtered(); len(got) != 1 || got[0] != mockData[2] {
		t.Errorf("expected Option 3, got %v", got)
	}
}

func TestDropdown_SearchOffIgnoresQuery(t *testing.T) {
	d := New(mockData, Options[option]{})
	d.SetSearchQuery("Option 2")

	if got := d.Filtered(); len(got) != len(mockData) {
		t.Errorf("without search every item is listed, got %v", got)
	}
}

func TestDropdown_SearchTypingKeepsLetters(t *testing.T) {
	d := New([]string{"jazz", "rock", "folk"}, Options[string]{Search: true})
	d.Focus()
	d.Update(keyMsg("enter"))
	d.Update(keyMsg("k"))

	if d.SearchQuery() != "k" {
		t.Errorf("k should be typed into the search box, got %q", d.SearchQuery())
	}
	if got := d.Filtered(); !reflect.DeepEqual(got, []string{"rock", "folk"}) {
		t.Errorf("expected [rock folk], got %v", got)
	}
}

func TestDropdown_NoResults(t *testing.T) {
	d := New(mockData, Options[option]{Search: true, NoResultsText: "Nothing here"})
	d.Focus()
	d.Update(keyMsg("enter"))
	d.Update(keyMsg("zzz"))

	if !strings.Contains(plain(d.Popup()), "Nothing here") {
		t.Errorf("expected no-results text:\n%s", d.Popup())
	}
	if cmd := d.Update(keyMsg("enter")); cmd != nil {
		t.Error("enter on an empty list should do nothing")
	}
}

func TestDropdown_Disabled(t *testing.T) {
	rec := &recorder[option]{}
	d := New(mockData, Options[option]{
		Placeholder: "Disabled dropdown",
		Disabled:    true,
		OnChange:    rec.onChange,
	})
	d.Focus()

	d.Update(keyMsg("enter"))
	d.Open()
	d.Select(mockData[0])
	d.SetMeasurer(Bounds(Rect{Width: 30, Height: 3}))
	d.Update(press(1, 1))

	if d.IsOpen() {
		t.Error("disabled dropdown must not open")
	}
	if len(rec.calls) != 0 {
		t.Errorf("OnChange must not be called, got %d calls", len(rec.calls))
	}
	if !strings.Contains(plain(d.View()), "Disabled dropdown") {
		t.Errorf("disabled trigger should still render, got:\n%s", d.View())
	}
}

func TestDropdown_SetDisabledCloses(t *testing.T) {
	d := New(mockData, Options[option]{})
	d.Open()
	d.SetDisabled(true)
	if d.IsOpen() {
		t.Error("disabling should close the list")
	}
}

func TestDropdown_StringArray(t *testing.T) {
	rec := &recorder[string]{}
	d := New([]string{"Apple", "Banana", "Orange"}, Options[string]{
		Placeholder: "Select fruit",
		OnChange:    rec.onChange,
	})
	d.Focus()
	d.Update(keyMsg("enter"))
	d.Update(keyMsg("j"))
	d.Update(keyMsg("enter"))

	if got := rec.last(t).Item; got != "Banana" {
		t.Errorf("expected Banana, got %q", got)
	}
}

func TestDropdown_DisplaysSelectedValue(t *testing.T) {
	d := New(mockData, Options[option]{
		Value:       []option{mockData[1]},
		Placeholder: "Select an option",
	})

	if got := d.DisplayText(); got != "Option 2" {
		t.Errorf("expected Option 2, got %q", got)
	}
	if !strings.Contains(plain(d.View()), "Option 2") {
		t.Errorf("trigger should show the label, got:\n%s", d.View())
	}
}

func TestDropdown_DisplaysCountForMultiple(t *testing.T) {
	d := New(mockData, Options[option]{
		Value:       []option{mockData[0], mockData[1]},
		Placeholder: "Select options",
		Multiple:    true,
	})

	if !strings.Contains(plain(d.View()), "2 selected") {
		t.Errorf("expected count in trigger, got:\n%s", d.View())
	}
}

func TestDropdown_OpenPlacesCursorOnSelection(t *testing.T) {
	d := New(mockData, Options[option]{Value: []option{mockData[2]}})
	d.Open()
	if d.Cursor() != 2 {
		t.Errorf("expected cursor on selected row 2, got %d", d.Cursor())
	}
}

func TestDropdown_EscClosesAndKeepsQuery(t *testing.T) {
	d := New(mockData, Options[option]{Search: true})
	d.Focus()
	d.Update(keyMsg("enter"))
	d.Update(keyMsg("opt"))
	d.Update(keyMsg("esc"))

	if d.IsOpen() {
		t.Error("esc should close the list")
	}
	if d.SearchQuery() != "opt" {
		t.Errorf("query should survive close, got %q", d.SearchQuery())
	}

	d.Update(keyMsg("enter"))
	d.Update(keyMsg("tab"))
	if d.IsOpen() {
		t.Error("tab should close the list")
	}
}

type user struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

var users = []user{
	{ID: 1, Name: "John Doe", Email: "john@example.com"},
	{ID: 2, Name: "Jane Smith", Email: "jane@example.com"},
}

func TestDropdown_CustomFields(t *testing.T) {
	d := New(users, Options[user]{LabelField: "name", ValueField: "id"})

	if got := d.Label(users[1]); got != "Jane Smith" {
		t.Errorf("expected Jane Smith, got %q", got)
	}

	// Identity follows the value field, not the whole record.
	d.SetValue(user{ID: 2, Name: "renamed"})
	if !d.IsSelected(users[1]) {
		t.Error("items with equal id should be the same member")
	}
	if d.IsSelected(users[0]) {
		t.Error("different id should not be selected")
	}
}

func TestDropdown_RenderItem(t *testing.T) {
	d := New(users, Options[user]{
		LabelField: "name",
		ValueField: "id",
		Width:      50,
		Value:      []user{users[0]},
		RenderItem: func(u user, selected bool) string {
			mark := " "
			if selected {
				mark = "*"
			}
			return fmt.Sprintf("%s %s <%s>", mark, u.Name, u.Email)
		},
	})
	d.Open()

	popup := plain(d.Popup())
	if !strings.Contains(popup, "* John Doe <john@example.com>") {
		t.Errorf("expected custom selected row:\n%s", popup)
	}
	if !strings.Contains(popup, "  Jane Smith <jane@example.com>") {
		t.Errorf("expected custom unselected row:\n%s", popup)
	}
}

func TestDropdown_ScrollWindow(t *testing.T) {
	items := make([]string, 20)
	for i := range items {
		items[i] = fmt.Sprintf("item-%02d", i)
	}
	d := New(items, Options[string]{MaxVisible: 5})
	d.Focus()
	d.Update(keyMsg("enter"))

	popup := plain(d.Popup())
	if !strings.Contains(popup, "item-04") || strings.Contains(popup, "item-05") {
		t.Errorf("expected first five items only:\n%s", popup)
	}

	d.Update(keyMsg("end"))
	if d.Cursor() != 19 {
		t.Fatalf("expected cursor 19, got %d", d.Cursor())
	}
	popup = plain(d.Popup())
	if !strings.Contains(popup, "item-19") || strings.Contains(popup, "item-14") {
		t.Errorf("expected last five items only:\n%s", popup)
	}

	d.Update(keyMsg("home"))
	if d.Cursor() != 0 {
		t.Errorf("expected cursor 0, got %d", d.Cursor())
	}
}

func TestDropdown_CursorClamps(t *testing.T) {
	d := New(mockData, Options[option]{})
	d.Open()
	d.Update(keyMsg("up"))
	if d.Cursor() != 0 {
		t.Errorf("expected cursor 0, got %d", d.Cursor())
	}
	for i := 0; i < 5; i++ {
		d.Update(keyMsg("down"))
	}
	if d.Cursor() != 2 {
		t.Errorf("expected cursor clamped to 2, got %d", d.Cursor())
	}

	d.SetItems(mockData[:1])
	if d.Cursor() != 0 {
		t.Errorf("expected cursor clamped after SetItems, got %d", d.Cursor())
	}
}

func TestDropdown_OverlayPositionFromMeasurer(t *testing.T) {
	d := New(mockData, Options[option]{
		Measurer: Bounds(Rect{X: 4, Y: 2, Width: 26, Height: 3}),
	})
	d.Open()

	want := Position{Top: 5, Left: 4, Width: 26}
	if got := d.Position(); got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestDropdown_OverlayPositionFallback(t *testing.T) {
	d := New(mockData, Options[option]{})
	d.Open()

	want := Position{Top: FallbackRect.Y + FallbackRect.Height, Left: 0, Width: d.Width()}
	if got := d.Position(); got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestDropdown_InlineRendersBelowTrigger(t *testing.T) {
	d := New(mockData, Options[option]{Placement: PlacementInline})
	d.Open()

	view := plain(d.View())
	if !strings.Contains(view, "Select") || !strings.Contains(view, "Option 3") {
		t.Errorf("inline view should hold trigger and list:\n%s", view)
	}
	frame := "line"
	if d.Overlay(frame) != frame {
		t.Error("inline placement should not touch the frame")
	}
}

func TestDropdown_OverlayComposesPopup(t *testing.T) {
	d := New(mockData, Options[option]{
		Measurer: Bounds(Rect{X: 0, Y: 0, Width: 30, Height: 3}),
	})
	frame := strings.Repeat(strings.Repeat(".", 40)+"\n", 9) + strings.Repeat(".", 40)

	if d.Overlay(frame) != frame {
		t.Error("closed dropdown should not touch the frame")
	}

	d.Open()
	lines := strings.Split(plain(d.Overlay(frame)), "\n")
	if len(lines) != 10 {
		t.Fatalf("expected 10 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[4], "Option 1") {
		t.Errorf("expected first option on row 4, got %q", lines[4])
	}
	if !strings.HasSuffix(lines[4], "..........") {
		t.Errorf("background right of the popup should survive, got %q", lines[4])
	}
	if lines[0] != strings.Repeat(".", 40) {
		t.Errorf("rows above the popup should be untouched, got %q", lines[0])
	}
}

func TestDropdown_Mouse(t *testing.T) {
	rec := &recorder[option]{}
	d := New(mockData, Options[option]{
		Measurer: Bounds(Rect{X: 2, Y: 1, Width: 30, Height: 3}),
		OnChange: rec.onChange,
	})

	d.Update(press(3, 2))
	if !d.IsOpen() {
		t.Fatal("click on trigger should open")
	}

	// Popup top border sits on row 4, first item on row 5.
	d.Update(press(6, 6))
	if got := rec.last(t).Item; got != mockData[1] {
		t.Errorf("expected Option 2 from click, got %v", got)
	}
	if d.IsOpen() {
		t.Error("single select by click should close")
	}

	d.Update(press(3, 2))
	d.Update(press(60, 30))
	if d.IsOpen() {
		t.Error("click outside should close")
	}
}

func TestDropdown_MouseWheel(t *testing.T) {
	d := New(mockData, Options[option]{})
	d.Open()
	d.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	if d.Cursor() != 1 {
		t.Errorf("expected wheel to move cursor to 1, got %d", d.Cursor())
	}
}

func TestDropdown_TriggerTruncates(t *testing.T) {
	d := New([]string{strings.Repeat("long", 20)}, Options[string]{Width: 20})
	d.SetValue(strings.Repeat("long", 20))

	for _, line := range strings.Split(plain(d.View()), "\n") {
		if w := ansi.StringWidth(line); w != 20 {
			t.Errorf("expected trigger width 20, got %d in %q", w, line)
		}
	}
	if !strings.Contains(plain(d.View()), "…") {
		t.Error("expected ellipsis in truncated trigger")
	}
}
