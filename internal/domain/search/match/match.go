// Package match implements the subsequence matcher behind every search box.
//
// A query matches a text when all of its characters appear in the text in the
// same relative order, not necessarily adjacent. Matching is case-insensitive,
// and whitespace is dropped from the query (but not from the text). There is no
// scoring: callers get a boolean and keep their own ordering.
package match

import (
	"strings"
	"unicode"
)

// Matches reports whether query is a subsequence of text.
//
// An empty query matches everything. A non-empty query never matches an empty
// text. Lower-casing uses strings.ToLower; no diacritic or locale folding is done.
func Matches(query, text string) bool {
	if query == "" {
		return true
	}
	if text == "" {
		return false
	}

	q := []rune(normalizeQuery(query))
	cursor := 0
	for _, r := range strings.ToLower(text) {
		if cursor == len(q) {
			break
		}
		if r == q[cursor] {
			cursor++
		}
	}
	return cursor == len(q)
}

// MatchesAny reports whether query matches at least one of fields.
func MatchesAny(query string, fields ...string) bool {
	if query == "" {
		return true
	}
	for _, f := range fields {
		if Matches(query, f) {
			return true
		}
	}
	return false
}

// Filter returns the items whose fields match query, in input order.
func Filter[T any](query string, items []T, fields func(T) []string) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if MatchesAny(query, fields(item)...) {
			out = append(out, item)
		}
	}
	return out
}

func normalizeQuery(query string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, strings.ToLower(query))
}
