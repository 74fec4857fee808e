package services

import (
	"context"

	"github.com/custodia-labs/relay/internal/core/domain"
	"github.com/custodia-labs/relay/internal/core/ports/driven"
	"github.com/custodia-labs/relay/internal/core/ports/driving"
	"github.com/custodia-labs/relay/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// SearchService is the global "search everything" engine.
// It holds no state between calls: every search reads the stores afresh.
type SearchService struct {
	sources      []Source
	reporter     driven.DiagnosticsReporter
	defaultLimit int
}

// NewSearchService creates the engine over the standard sources.
// Any store may be nil, in which case its sources are skipped.
// The reporter is optional (can be nil).
func NewSearchService(
	channelStore driven.ChannelStore,
	docStore driven.DocumentStore,
	activityStore driven.ActivityStore,
	catalog driven.PageCatalog,
	reporter driven.DiagnosticsReporter,
) *SearchService {
	var sources []Source
	if channelStore != nil {
		sources = append(sources,
			NewChannelSource(channelStore, reporter),
			NewDirectMessageSource(channelStore, reporter),
		)
	}
	if docStore != nil {
		sources = append(sources, NewDocumentSource(docStore, reporter))
	}
	if activityStore != nil {
		sources = append(sources, NewActivitySource(activityStore, reporter))
	}
	if catalog != nil {
		sources = append(sources, NewPageSource(catalog, reporter))
	}
	return NewSearchServiceWithSources(reporter, sources...)
}

// NewSearchServiceWithSources creates the engine over arbitrary sources,
// queried in the given order.
func NewSearchServiceWithSources(reporter driven.DiagnosticsReporter, sources ...Source) *SearchService {
	return &SearchService{
		sources:      sources,
		reporter:     reporter,
		defaultLimit: domain.DefaultSearchLimit,
	}
}

// SetDefaultLimit overrides the limit used when SearchOptions.Limit is unset.
// Non-positive values restore domain.DefaultSearchLimit.
func (s *SearchService) SetDefaultLimit(limit int) {
	if limit <= 0 {
		limit = domain.DefaultSearchLimit
	}
	s.defaultLimit = limit
}

// DefaultLimit returns the limit used when SearchOptions.Limit is unset.
func (s *SearchService) DefaultLimit() int {
	return s.defaultLimit
}

// Sources returns the registered sources in query order.
func (s *SearchService) Sources() []Source {
	return s.sources
}

// Search ranks matches from every source.
func (s *SearchService) Search(
	ctx context.Context, query string, opts domain.SearchOptions,
) []domain.SearchResult {
	logger.Section("Search Execution")
	logger.Debug("Query: %q", query)

	// Return empty for empty query
	normalized, ok := NormalizeQuery(query)
	if !ok {
		logger.Debug("Empty query, returning no results")
		return []domain.SearchResult{}
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = s.defaultLimit
	}
	logger.Debug("Limit: %d, Kinds: %v", limit, opts.Kinds)

	var candidates []domain.SearchResult
	for _, src := range s.sources {
		if !opts.Includes(src.Kind()) {
			logger.Debug("Skipping %s source", src.Name())
			continue
		}
		found := isolate(ctx, src, normalized, s.reporter)
		logger.Debug("%s: %d candidates", src.Name(), len(found))
		candidates = append(candidates, found...)
	}

	logger.Debug("Raw results: %d candidates", len(candidates))

	results := Rank(candidates, limit)
	logger.Info("Final results: %d", len(results))

	return results
}
