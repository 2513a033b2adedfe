package dropdown

// ChangeMsg is emitted when the user asks for a different selection.
// The dropdown does not apply it; the owner calls SetValue.
type ChangeMsg[T any] struct {
	ID       string
	Multiple bool

	// Item is the chosen item in single-select mode.
	Item T
	// Items is the requested selection. In single-select mode it holds
	// just Item.
	Items []T
}

// Value returns the requested selection.
func (c ChangeMsg[T]) Value() []T {
	return c.Items
}
