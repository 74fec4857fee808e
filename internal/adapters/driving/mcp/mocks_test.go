package mcp

import (
	"context"

	"github.com/custodia-labs/relay/internal/core/domain"
	"github.com/custodia-labs/relay/internal/core/ports/driving"
)

// mockSearchService is a mock implementation of driving.SearchService.
type mockSearchService struct {
	results   []domain.SearchResult
	lastQuery string
	lastOpts  domain.SearchOptions
}

func (m *mockSearchService) Search(
	_ context.Context,
	query string,
	opts domain.SearchOptions,
) []domain.SearchResult {
	m.lastQuery = query
	m.lastOpts = opts
	return m.results
}

// mockFilterService is a mock implementation of driving.FilterService.
type mockFilterService struct {
	channels []domain.Channel
	dms      []domain.Channel
	err      error
	calls    []driving.FilterOptions
}

func (m *mockFilterService) FilterChannels(
	_ context.Context,
	_ string,
	opts driving.FilterOptions,
) ([]domain.Channel, error) {
	m.calls = append(m.calls, opts)
	if m.err != nil {
		return nil, m.err
	}
	if opts.DirectMessages {
		return m.dms, nil
	}
	return m.channels, nil
}

// mockCatalog is a mock implementation of driven.PageCatalog.
type mockCatalog struct {
	pages []domain.Page
	err   error
}

func (m *mockCatalog) Pages(_ context.Context) ([]domain.Page, error) {
	return m.pages, m.err
}
