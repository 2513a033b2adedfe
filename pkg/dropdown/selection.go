package dropdown

import "strconv"

// Normalize returns a copy of selected, or nil when it is empty.
func Normalize[T any](selected []T) []T {
	if len(selected) == 0 {
		return nil
	}
	return append([]T(nil), selected...)
}

// DisplayText returns the trigger text for a selection.
func DisplayText[T any](selected []T, placeholder string, label func(T) string) string {
	switch len(selected) {
	case 0:
		return placeholder
	case 1:
		return label(selected[0])
	default:
		return strconv.Itoa(len(selected)) + " selected"
	}
}

// Contains reports whether item is a member of selected.
func Contains[T any](selected []T, item T, equal func(a, b T) bool) bool {
	for _, s := range selected {
		if equal(s, item) {
			return true
		}
	}
	return false
}

// Toggle returns a new selection with item removed when it is already a
// member, or appended at the end otherwise. selected is never modified.
func Toggle[T any](selected []T, item T, equal func(a, b T) bool) []T {
	if Contains(selected, item, equal) {
		out := make([]T, 0, len(selected))
		for _, s := range selected {
			if !equal(s, item) {
				out = append(out, s)
			}
		}
		return out
	}

	out := make([]T, len(selected), len(selected)+1)
	copy(out, selected)
	return append(out, item)
}
