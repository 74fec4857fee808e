package driving

import (
	"context"

	"github.com/custodia-labs/relay/internal/core/domain"
)

// SearchService provides the global "search everything" engine.
type SearchService interface {
	// Search ranks matches from every source. It never fails: a blank query
	// or a broken source yields fewer (or zero) results.
	Search(ctx context.Context, query string, opts domain.SearchOptions) []domain.SearchResult
}
