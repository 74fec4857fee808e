package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/relay/internal/core/domain"
)

func page(title string, score int) domain.SearchResult {
	return domain.SearchResult{Kind: domain.KindPage, Title: title, Path: "/" + title, Score: score}
}

func TestRank_ScoreDescending(t *testing.T) {
	ranked := Rank([]domain.SearchResult{page("a", 2), page("b", 5), page("c", 3)}, 0)

	require.Len(t, ranked, 3)
	assert.Equal(t, "b", ranked[0].Title)
	assert.Equal(t, "c", ranked[1].Title)
	assert.Equal(t, "a", ranked[2].Title)
}

func TestRank_TitleTieBreakIgnoresCase(t *testing.T) {
	ranked := Rank([]domain.SearchResult{page("beta", 3), page("Alpha", 3), page("alpha2", 3)}, 0)

	require.Len(t, ranked, 3)
	assert.Equal(t, "Alpha", ranked[0].Title)
	assert.Equal(t, "alpha2", ranked[1].Title)
	assert.Equal(t, "beta", ranked[2].Title)
}

func TestRank_StableForFullTies(t *testing.T) {
	first := domain.SearchResult{Kind: domain.KindDocument, Title: "manifest.pdf", DocumentID: "d1", Score: 4}
	second := domain.SearchResult{Kind: domain.KindDocument, Title: "Manifest.pdf", DocumentID: "d2", Score: 4}

	for range 10 {
		ranked := Rank([]domain.SearchResult{first, second}, 0)
		require.Len(t, ranked, 2)
		assert.Equal(t, "d1", ranked[0].DocumentID)
		assert.Equal(t, "d2", ranked[1].DocumentID)
	}
}

func TestRank_Limit(t *testing.T) {
	candidates := []domain.SearchResult{page("a", 1), page("b", 2), page("c", 3), page("d", 4)}

	t.Run("truncates", func(t *testing.T) {
		ranked := Rank(candidates, 2)
		require.Len(t, ranked, 2)
		assert.Equal(t, "d", ranked[0].Title)
		assert.Equal(t, "c", ranked[1].Title)
	})

	t.Run("larger than input", func(t *testing.T) {
		assert.Len(t, Rank(candidates, 10), 4)
	})

	t.Run("zero keeps all", func(t *testing.T) {
		assert.Len(t, Rank(candidates, 0), 4)
	})
}

func TestRank_DoesNotModifyInput(t *testing.T) {
	candidates := []domain.SearchResult{page("a", 1), page("b", 2)}

	_ = Rank(candidates, 1)

	assert.Equal(t, "a", candidates[0].Title)
	assert.Equal(t, "b", candidates[1].Title)
}

func TestRank_Empty(t *testing.T) {
	ranked := Rank(nil, 5)
	assert.NotNil(t, ranked)
	assert.Empty(t, ranked)
}

// assertRanked checks the result ordering contract.
func assertRanked(t *testing.T, results []domain.SearchResult) {
	t.Helper()
	for i := 1; i < len(results); i++ {
		prev, cur := results[i-1], results[i]
		require.GreaterOrEqual(t, prev.Score, cur.Score, "result %d outranks %d", i, i-1)
		if prev.Score == cur.Score {
			assert.LessOrEqual(t, strings.Compare(fold(prev.Title), fold(cur.Title)), 0,
				"%q should not sort after %q", prev.Title, cur.Title)
		}
	}
}
