package services

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/custodia-labs/relay/internal/core/domain"
)

// NormalizeQuery trims and lower-cases raw input.
// The boolean is false when nothing is left, which callers must treat as
// "no query" rather than "match everything".
func NormalizeQuery(raw string) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", false
	}
	return fold(trimmed), true
}

// fold lower-cases s the same way queries are lower-cased.
// A Caser is not safe for concurrent use, so one is built per call.
func fold(s string) string {
	return cases.Lower(language.Und).String(s)
}

// matcher tests weighted fields against a normalised query.
type matcher struct {
	query string
	caser cases.Caser
}

func newMatcher(query string) *matcher {
	return &matcher{query: query, caser: cases.Lower(language.Und)}
}

// contains reports whether value contains the query, ignoring case.
// Empty values never match.
func (m *matcher) contains(value string) bool {
	if value == "" {
		return false
	}
	return strings.Contains(m.caser.String(value), m.query)
}

// score sums the weights of every matching field.
func (m *matcher) score(fields []domain.WeightedField) int {
	total := 0
	for _, f := range fields {
		if m.contains(f.Value) {
			total += f.Weight
		}
	}
	return total
}

// matches reports whether at least one field matches.
func (m *matcher) matches(fields []domain.WeightedField) bool {
	for _, f := range fields {
		if m.contains(f.Value) {
			return true
		}
	}
	return false
}
