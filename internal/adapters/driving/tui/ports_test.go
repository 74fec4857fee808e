package tui

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/relay/internal/core/domain"
	"github.com/custodia-labs/relay/internal/core/ports/driving"
)

// MockSearchService answers every query with fixed results.
type MockSearchService struct {
	mu      sync.Mutex
	Results []domain.SearchResult
	Opts    domain.SearchOptions
}

func (m *MockSearchService) Search(_ context.Context, _ string, opts domain.SearchOptions) []domain.SearchResult {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Opts = opts
	return m.Results
}

// MockFilterService narrows fixed lists by substring.
type MockFilterService struct {
	Channels []domain.Channel
	DMs      []domain.Channel
}

func (m *MockFilterService) FilterChannels(
	_ context.Context,
	query string,
	opts driving.FilterOptions,
) ([]domain.Channel, error) {
	source := m.Channels
	if opts.DirectMessages {
		source = m.DMs
	}
	var out []domain.Channel
	for _, c := range source {
		if strings.Contains(c.Name, query) {
			out = append(out, c)
		}
	}
	return out, nil
}

// MockSettingsService serves fixed settings.
type MockSettingsService struct {
	Settings domain.AppSettings
}

func (m *MockSettingsService) Get() (*domain.AppSettings, error) {
	s := m.Settings
	return &s, nil
}

func (m *MockSettingsService) Save(s *domain.AppSettings) error {
	m.Settings = *s
	return nil
}

func (m *MockSettingsService) SetBackend(b domain.StorageBackend) error {
	m.Settings.Storage.Backend = b
	return nil
}

func (m *MockSettingsService) SetSearchLimit(limit int) error {
	m.Settings.Search.Limit = limit
	return nil
}

func (m *MockSettingsService) SetSearchKinds(kinds []domain.ResultKind) error {
	m.Settings.Search.Kinds = kinds
	return nil
}

func (m *MockSettingsService) Validate() error { return nil }

func TestNewPorts(t *testing.T) {
	search := &MockSearchService{}
	filter := &MockFilterService{}
	settings := &MockSettingsService{}

	ports := NewPorts(search, filter, settings)

	assert.Equal(t, search, ports.Search)
	assert.Equal(t, filter, ports.Filter)
	assert.Equal(t, settings, ports.Settings)
}

func TestPorts_Validate(t *testing.T) {
	tests := []struct {
		name  string
		ports *Ports
		err   error
	}{
		{"complete", NewPorts(&MockSearchService{}, &MockFilterService{}, nil), nil},
		{"missing search", NewPorts(nil, &MockFilterService{}, nil), ErrMissingSearchService},
		{"missing filter", NewPorts(&MockSearchService{}, nil, nil), ErrMissingFilterService},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ports.Validate()
			if tt.err == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.err)
			}
		})
	}
}
