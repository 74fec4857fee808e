package services

import (
	"context"
	"sync"

	"github.com/custodia-labs/relay/internal/core/domain"
)

// --- Mock implementations ---

// mockChannelStore implements driven.ChannelStore for testing.
type mockChannelStore struct {
	channels []domain.Channel
	listErr  error
	saveErr  error
	saved    []domain.Channel
}

func (m *mockChannelStore) Save(_ context.Context, c domain.Channel) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = append(m.saved, c)
	return nil
}

func (m *mockChannelStore) Get(_ context.Context, id string) (*domain.Channel, error) {
	for i := range m.channels {
		if m.channels[i].ID == id {
			return &m.channels[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockChannelStore) Delete(_ context.Context, _ string) error {
	return nil
}

func (m *mockChannelStore) List(_ context.Context) ([]domain.Channel, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.channels, nil
}

// mockDocumentStore implements driven.DocumentStore for testing.
type mockDocumentStore struct {
	docs    []domain.Document
	listErr error
	saveErr error
	saved   []domain.Document
}

func (m *mockDocumentStore) Save(_ context.Context, d domain.Document) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = append(m.saved, d)
	return nil
}

func (m *mockDocumentStore) Get(_ context.Context, _ string) (*domain.Document, error) {
	return nil, domain.ErrNotFound
}

func (m *mockDocumentStore) Delete(_ context.Context, _ string) error {
	return nil
}

func (m *mockDocumentStore) List(_ context.Context) ([]domain.Document, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.docs, nil
}

// mockActivityStore implements driven.ActivityStore for testing.
type mockActivityStore struct {
	events    []domain.ActivityEvent
	listErr   error
	appendErr error
	appended  []domain.ActivityEvent
}

func (m *mockActivityStore) Append(_ context.Context, e domain.ActivityEvent) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.appended = append(m.appended, e)
	return nil
}

func (m *mockActivityStore) List(_ context.Context) ([]domain.ActivityEvent, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.events, nil
}

// mockCatalog implements driven.PageCatalog for testing.
type mockCatalog struct {
	pages []domain.Page
	err   error
}

func (m *mockCatalog) Pages(_ context.Context) ([]domain.Page, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.pages, nil
}

// reportedError is one call to recordingReporter.Report.
type reportedError struct {
	source string
	err    error
}

// recordingReporter implements driven.DiagnosticsReporter for testing.
type recordingReporter struct {
	mu      sync.Mutex
	reports []reportedError
}

func (r *recordingReporter) Report(_ context.Context, source string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reports = append(r.reports, reportedError{source: source, err: err})
}

func (r *recordingReporter) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.reports)
}

// panickingReporter panics on every report.
type panickingReporter struct{}

func (panickingReporter) Report(_ context.Context, _ string, _ error) {
	panic("reporter exploded")
}

// stubSource implements Source with canned results.
type stubSource struct {
	name    string
	kind    domain.ResultKind
	results []domain.SearchResult
	panics  bool
	queries []string
}

func (s *stubSource) Name() string            { return s.name }
func (s *stubSource) Kind() domain.ResultKind { return s.kind }

func (s *stubSource) Search(_ context.Context, query string) []domain.SearchResult {
	s.queries = append(s.queries, query)
	if s.panics {
		panic("source exploded")
	}
	return s.results
}

// --- Fixtures ---

func testChannels() []domain.Channel {
	return []domain.Channel{
		{ID: "c1", Name: "TRK-001", VehicleID: "TRK-001", PONumber: "4500012", Category: "inbound", DoorID: "D4"},
		{ID: "c2", Name: "general", Description: "Company-wide announcements", Pinned: true},
		{ID: "c3", Name: "dock-ops", Category: "operations", CreatedBy: "maria"},
		{ID: "c4", Name: "maria-joe", IsDirectMessage: true, Participants: []string{"maria", "joe"}},
		{ID: "c5", Name: "yard-team", Category: "yard", DoorID: "D12"},
	}
}

func testDocuments() []domain.Document {
	return []domain.Document{
		{ID: "d1", FileName: "bol-TRK-001.pdf", ChannelName: "TRK-001", PONumber: "4500012", UploadedBy: "joe"},
		{ID: "d2", FileName: "safety-handbook.pdf", ChannelName: "general", UploadedBy: "maria"},
	}
}

func testActivity() []domain.ActivityEvent {
	return []domain.ActivityEvent{
		{ID: "a1", Kind: domain.ActivityCheckIn, Description: "TRK-001 checked in", ChannelName: "TRK-001", VehicleID: "TRK-001", Direction: domain.DirectionInbound},
		{ID: "a2", Kind: domain.ActivityNote, Description: "Forklift maintenance", ChannelName: "dock-ops", CreatedBy: "maria"},
	}
}

func testPages() []domain.Page {
	return []domain.Page{
		{Title: "General Settings", Subtitle: "Workspace preferences", Path: "/settings/general", Keywords: []string{"preferences", "workspace"}},
		{Title: "Yard Overview", Subtitle: "Doors and trailers", Path: "/yard", Keywords: []string{"doors", "trailers"}},
	}
}
