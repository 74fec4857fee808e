package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/relay/internal/core/domain"
	"github.com/custodia-labs/relay/internal/core/ports/driven"
	"github.com/custodia-labs/relay/internal/logger"
)

// Source turns one entity family into scored search candidates.
type Source interface {
	// Name identifies the source in logs and diagnostics.
	Name() string

	// Kind is the result kind every candidate carries.
	Kind() domain.ResultKind

	// Search scores every entity against an already normalised query.
	// It never fails; a collection that cannot be loaded yields no results.
	Search(ctx context.Context, query string) []domain.SearchResult
}

// Ensure every source implements the interface.
var (
	_ Source = (*ChannelSource)(nil)
	_ Source = (*DirectMessageSource)(nil)
	_ Source = (*DocumentSource)(nil)
	_ Source = (*ActivitySource)(nil)
	_ Source = (*PageSource)(nil)
)

// scoreEntities scores each entity against the table and builds a result
// for every entity with a positive score.
func scoreEntities[T any](
	items []T,
	table domain.FieldTable[T],
	query string,
	build func(T, int) domain.SearchResult,
) []domain.SearchResult {
	m := newMatcher(query)
	results := make([]domain.SearchResult, 0)
	for _, item := range items {
		sum := m.score(table.Fields(item))
		if sum > 0 {
			results = append(results, build(item, sum+domain.BaseBonus))
		}
	}
	return results
}

// loadFailed logs and reports a collection that could not be loaded.
func loadFailed(ctx context.Context, reporter driven.DiagnosticsReporter, source string, err error) []domain.SearchResult {
	logger.Warn("%s source unavailable: %v", source, err)
	report(ctx, reporter, source, fmt.Errorf("loading %s: %w", source, err))
	return []domain.SearchResult{}
}

// ChannelSource searches regular (non direct-message) channels.
type ChannelSource struct {
	store    driven.ChannelStore
	reporter driven.DiagnosticsReporter
}

// NewChannelSource creates a channel source. reporter may be nil.
func NewChannelSource(store driven.ChannelStore, reporter driven.DiagnosticsReporter) *ChannelSource {
	return &ChannelSource{store: store, reporter: reporter}
}

// Name implements Source.
func (s *ChannelSource) Name() string { return "channels" }

// Kind implements Source.
func (s *ChannelSource) Kind() domain.ResultKind { return domain.KindChannel }

// Search implements Source.
func (s *ChannelSource) Search(ctx context.Context, query string) []domain.SearchResult {
	channels, err := s.store.List(ctx)
	if err != nil {
		return loadFailed(ctx, s.reporter, s.Name(), err)
	}
	channels = selectChannels(channels, false)
	results := scoreEntities(channels, domain.ChannelFields, query, domain.NewChannelResult)
	logger.Debug("%s: %d/%d matched", s.Name(), len(results), len(channels))
	return results
}

// DirectMessageSource searches direct-message threads.
type DirectMessageSource struct {
	store    driven.ChannelStore
	reporter driven.DiagnosticsReporter
}

// NewDirectMessageSource creates a direct-message source. reporter may be nil.
func NewDirectMessageSource(store driven.ChannelStore, reporter driven.DiagnosticsReporter) *DirectMessageSource {
	return &DirectMessageSource{store: store, reporter: reporter}
}

// Name implements Source.
func (s *DirectMessageSource) Name() string { return "direct_messages" }

// Kind implements Source.
func (s *DirectMessageSource) Kind() domain.ResultKind { return domain.KindDM }

// Search implements Source.
func (s *DirectMessageSource) Search(ctx context.Context, query string) []domain.SearchResult {
	channels, err := s.store.List(ctx)
	if err != nil {
		return loadFailed(ctx, s.reporter, s.Name(), err)
	}
	threads := selectChannels(channels, true)
	results := scoreEntities(threads, domain.DirectMessageFields, query, domain.NewDMResult)
	logger.Debug("%s: %d/%d matched", s.Name(), len(results), len(threads))
	return results
}

// DocumentSource searches channel documents.
type DocumentSource struct {
	store    driven.DocumentStore
	reporter driven.DiagnosticsReporter
}

// NewDocumentSource creates a document source. reporter may be nil.
func NewDocumentSource(store driven.DocumentStore, reporter driven.DiagnosticsReporter) *DocumentSource {
	return &DocumentSource{store: store, reporter: reporter}
}

// Name implements Source.
func (s *DocumentSource) Name() string { return "documents" }

// Kind implements Source.
func (s *DocumentSource) Kind() domain.ResultKind { return domain.KindDocument }

// Search implements Source.
func (s *DocumentSource) Search(ctx context.Context, query string) []domain.SearchResult {
	docs, err := s.store.List(ctx)
	if err != nil {
		return loadFailed(ctx, s.reporter, s.Name(), err)
	}
	results := scoreEntities(docs, domain.DocumentFields, query, domain.NewDocumentResult)
	logger.Debug("%s: %d/%d matched", s.Name(), len(results), len(docs))
	return results
}

// ActivitySource searches the activity log.
type ActivitySource struct {
	store    driven.ActivityStore
	reporter driven.DiagnosticsReporter
}

// NewActivitySource creates an activity source. reporter may be nil.
func NewActivitySource(store driven.ActivityStore, reporter driven.DiagnosticsReporter) *ActivitySource {
	return &ActivitySource{store: store, reporter: reporter}
}

// Name implements Source.
func (s *ActivitySource) Name() string { return "activity" }

// Kind implements Source.
func (s *ActivitySource) Kind() domain.ResultKind { return domain.KindActivity }

// Search implements Source.
func (s *ActivitySource) Search(ctx context.Context, query string) []domain.SearchResult {
	events, err := s.store.List(ctx)
	if err != nil {
		return loadFailed(ctx, s.reporter, s.Name(), err)
	}
	results := scoreEntities(events, domain.ActivityFields, query, domain.NewActivityResult)
	logger.Debug("%s: %d/%d matched", s.Name(), len(results), len(events))
	return results
}

// PageSource searches the destination catalogue.
type PageSource struct {
	catalog  driven.PageCatalog
	reporter driven.DiagnosticsReporter
}

// NewPageSource creates a page source. reporter may be nil.
func NewPageSource(catalog driven.PageCatalog, reporter driven.DiagnosticsReporter) *PageSource {
	return &PageSource{catalog: catalog, reporter: reporter}
}

// Name implements Source.
func (s *PageSource) Name() string { return "pages" }

// Kind implements Source.
func (s *PageSource) Kind() domain.ResultKind { return domain.KindPage }

// Search implements Source.
func (s *PageSource) Search(ctx context.Context, query string) []domain.SearchResult {
	pages, err := s.catalog.Pages(ctx)
	if err != nil {
		return loadFailed(ctx, s.reporter, s.Name(), err)
	}
	results := scoreEntities(pages, domain.PageFields, query, domain.NewPageResult)
	logger.Debug("%s: %d/%d matched", s.Name(), len(results), len(pages))
	return results
}

// selectChannels keeps either the direct-message threads or the rest.
func selectChannels(channels []domain.Channel, directMessages bool) []domain.Channel {
	selected := make([]domain.Channel, 0, len(channels))
	for i := range channels {
		if channels[i].IsDirectMessage == directMessages {
			selected = append(selected, channels[i])
		}
	}
	return selected
}
