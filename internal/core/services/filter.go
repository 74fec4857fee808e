package services

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/custodia-labs/relay/internal/core/domain"
	"github.com/custodia-labs/relay/internal/core/ports/driven"
	"github.com/custodia-labs/relay/internal/core/ports/driving"
)

// Ensure FilterService implements the interface.
var _ driving.FilterService = (*FilterService)(nil)

// Filter keeps the items with at least one field matching query, in their
// original order. Scores and weights play no part. A blank query returns
// items unchanged.
func Filter[T any](items []T, query string, table domain.FieldTable[T]) []T {
	normalized, ok := NormalizeQuery(query)
	if !ok {
		return items
	}

	m := newMatcher(normalized)
	filtered := make([]T, 0, len(items))
	for _, item := range items {
		if m.matches(table.Fields(item)) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// FilterService narrows the sidebar's channel and thread lists.
type FilterService struct {
	channelStore driven.ChannelStore
}

// NewFilterService creates a new filter service.
func NewFilterService(channelStore driven.ChannelStore) *FilterService {
	return &FilterService{channelStore: channelStore}
}

// FilterChannels returns the sidebar list narrowed to query.
func (s *FilterService) FilterChannels(
	ctx context.Context, query string, opts driving.FilterOptions,
) ([]domain.Channel, error) {
	if s.channelStore == nil {
		return nil, fmt.Errorf("channel store: %w", domain.ErrNotFound)
	}

	channels, err := s.channelStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading channels: %w", err)
	}

	list := SidebarOrder(selectChannels(channels, opts.DirectMessages))
	table := domain.ChannelFields
	if opts.DirectMessages {
		table = domain.DirectMessageFields
	}
	return Filter(list, query, table), nil
}

// SidebarOrder sorts channels pinned-first, then by name (case-insensitive).
// The sort is stable and returns a new slice.
func SidebarOrder(channels []domain.Channel) []domain.Channel {
	sorted := slices.Clone(channels)
	slices.SortStableFunc(sorted, func(a, b domain.Channel) int {
		if a.Pinned != b.Pinned {
			if a.Pinned {
				return -1
			}
			return 1
		}
		return strings.Compare(fold(a.Name), fold(b.Name))
	})
	return sorted
}
