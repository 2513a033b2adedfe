package dropdown

import (
	"strings"

	"golang.org/x/text/cases"
)

// Filter returns the items whose label contains query, ignoring case.
// Input order is kept. An empty query returns items unchanged.
func Filter[T any](items []T, query string, label func(T) string) []T {
	if query == "" {
		return items
	}

	// A Caser is stateful, so each call gets its own.
	fold := cases.Fold()
	q := fold.String(query)

	out := make([]T, 0, len(items))
	for _, item := range items {
		if strings.Contains(fold.String(label(item)), q) {
			out = append(out, item)
		}
	}
	return out
}
