package services

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/custodia-labs/relay/internal/core/domain"
)

// Rank orders candidates by score (descending) then title (ascending,
// case-insensitive) and keeps at most limit of them. The sort is stable,
// so candidates that tie on both keys keep their concatenation order.
// A limit <= 0 keeps everything. The input slice is not modified.
func Rank(candidates []domain.SearchResult, limit int) []domain.SearchResult {
	type keyed struct {
		result domain.SearchResult
		title  string
	}

	caser := cases.Lower(language.Und)
	items := make([]keyed, len(candidates))
	for i := range candidates {
		items[i] = keyed{result: candidates[i], title: caser.String(candidates[i].Title)}
	}

	slices.SortStableFunc(items, func(a, b keyed) int {
		if c := cmp.Compare(b.result.Score, a.result.Score); c != 0 {
			return c
		}
		return strings.Compare(a.title, b.title)
	})

	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}

	ranked := make([]domain.SearchResult, len(items))
	for i := range items {
		ranked[i] = items[i].result
	}
	return ranked
}
