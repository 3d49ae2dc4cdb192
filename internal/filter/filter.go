// Package filter derives the selectable categories of a catalog and computes
// the entries visible under a chosen category.
package filter

import "github.com/sendrec/resources/internal/catalog"

// All is the category value that disables filtering.
const All = "All"

// Categories returns All followed by each distinct category in order of first
// occurrence. A catalog label equal to All is folded into the sentinel.
func Categories(entries []catalog.Entry) []string {
	categories := []string{All}
	seen := map[string]struct{}{All: {}}
	for _, e := range entries {
		if _, ok := seen[e.Category]; ok {
			continue
		}
		seen[e.Category] = struct{}{}
		categories = append(categories, e.Category)
	}
	return categories
}

// Apply returns entries unchanged for All, otherwise the entries whose category
// equals selection exactly, in catalog order. A selection no entry carries
// yields an empty, non-nil slice.
func Apply(entries []catalog.Entry, selection string) []catalog.Entry {
	if selection == All {
		return entries
	}
	visible := make([]catalog.Entry, 0)
	for _, e := range entries {
		if Matches(e, selection) {
			visible = append(visible, e)
		}
	}
	return visible
}

// Matches reports whether e is visible under selection.
func Matches(e catalog.Entry, selection string) bool {
	return selection == All || e.Category == selection
}
