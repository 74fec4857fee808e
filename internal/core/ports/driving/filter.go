package driving

import (
	"context"

	"github.com/custodia-labs/relay/internal/core/domain"
)

// FilterOptions selects which sidebar collection to narrow.
type FilterOptions struct {
	// DirectMessages selects direct-message threads instead of channels.
	DirectMessages bool
}

// FilterService narrows a single collection as the user types.
type FilterService interface {
	// FilterChannels returns the sidebar list (pinned first, then by name)
	// narrowed to entries matching query. A blank query returns the full list.
	// Only a failure to load the collection is returned as an error.
	FilterChannels(ctx context.Context, query string, opts FilterOptions) ([]domain.Channel, error)
}
