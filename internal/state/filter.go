package state

import (
	"strings"

	"github.com/kterry/ladle/internal/recipes"
)

// Filter returns the recipes whose title or any ingredient line contains
// the query, case-insensitively, preserving input order. An empty or
// whitespace-only query matches everything. The function is pure; it is
// recomputed on every render rather than cached.
func Filter(list []recipes.Recipe, query string) []recipes.Recipe {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return list
	}
	var out []recipes.Recipe
	for _, r := range list {
		if Matches(r, query) {
			out = append(out, r)
		}
	}
	return out
}

// Matches reports whether a single recipe matches an already-lowercased
// query string.
func Matches(r recipes.Recipe, query string) bool {
	if strings.Contains(strings.ToLower(r.Title), query) {
		return true
	}
	for _, ing := range r.Ingredients {
		if strings.Contains(strings.ToLower(ing), query) {
			return true
		}
	}
	return false
}
