// Package filter holds the text and status filtering shared by the list
// screens. Filters are pure: same input, same output, input order kept.
package filter

import "strings"

// All is the status sentinel that lets every record through.
const All = "all"

type Query struct {
	Search string
	Status string
}

// MatchText reports whether term is a case-insensitive substring of any field.
// An empty term matches everything.
func MatchText(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

// MatchStatus compares exactly, treating All and "" as pass-through.
func MatchStatus(want, got string) bool {
	return want == "" || want == All || want == got
}

// Apply keeps the items matching both the text and the status filter.
func Apply[T any](items []T, q Query, text func(T) []string, status func(T) string) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if !MatchText(q.Search, text(it)...) {
			continue
		}
		if status != nil && !MatchStatus(q.Status, status(it)) {
			continue
		}
		out = append(out, it)
	}
	return out
}
