package services

import (
	"fmt"

	"github.com/custodia-labs/relay/internal/core/domain"
	"github.com/custodia-labs/relay/internal/core/ports/driven"
	"github.com/custodia-labs/relay/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyStorageBackend = "storage.backend"
	KeyStoragePath    = "storage.path"
	KeySearchLimit    = "search.limit"
	KeySearchKinds    = "search.kinds"
	KeyLogVerbose     = "log.verbose"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
// Unknown or malformed values fall back to defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Storage: domain.StorageSettings{
			Backend: s.getBackend(defaults.Storage.Backend),
			Path:    s.configStore.GetString(KeyStoragePath),
		},
		Search: domain.SearchSettings{
			Limit: s.getInt(KeySearchLimit, defaults.Search.Limit),
			Kinds: s.getKinds(),
		},
		Log: domain.LogSettings{
			Verbose: s.getBool(KeyLogVerbose, defaults.Log.Verbose),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := s.configStore.Set(KeyStorageBackend, settings.Storage.Backend.String()); err != nil {
		return fmt.Errorf("saving storage backend: %w", err)
	}
	if err := s.configStore.Set(KeyStoragePath, settings.Storage.Path); err != nil {
		return fmt.Errorf("saving storage path: %w", err)
	}
	if err := s.configStore.Set(KeySearchLimit, settings.Search.Limit); err != nil {
		return fmt.Errorf("saving search limit: %w", err)
	}
	if err := s.configStore.Set(KeySearchKinds, kindStrings(settings.Search.Kinds)); err != nil {
		return fmt.Errorf("saving search kinds: %w", err)
	}
	if err := s.configStore.Set(KeyLogVerbose, settings.Log.Verbose); err != nil {
		return fmt.Errorf("saving log settings: %w", err)
	}
	return nil
}

// SetBackend changes the storage backend.
func (s *SettingsService) SetBackend(backend domain.StorageBackend) error {
	if !backend.IsValid() {
		return fmt.Errorf("%w: %q", domain.ErrUnsupportedBackend, backend)
	}
	return s.configStore.Set(KeyStorageBackend, backend.String())
}

// SetSearchLimit changes the default result cap.
func (s *SettingsService) SetSearchLimit(limit int) error {
	if limit <= 0 {
		return fmt.Errorf("%w: search limit must be positive, got %d", domain.ErrInvalidInput, limit)
	}
	return s.configStore.Set(KeySearchLimit, limit)
}

// SetSearchKinds restricts default searches to the given kinds.
func (s *SettingsService) SetSearchKinds(kinds []domain.ResultKind) error {
	for _, k := range kinds {
		if _, err := domain.ParseResultKind(string(k)); err != nil {
			return fmt.Errorf("%w: unknown result kind %q", domain.ErrInvalidInput, k)
		}
	}
	return s.configStore.Set(KeySearchKinds, kindStrings(kinds))
}

// Validate checks the stored settings for values Get would silently ignore.
func (s *SettingsService) Validate() error {
	if raw := s.configStore.GetString(KeyStorageBackend); raw != "" {
		if _, err := domain.ParseStorageBackend(raw); err != nil {
			return err
		}
	}
	if _, ok := s.configStore.Get(KeySearchLimit); ok && s.configStore.GetInt(KeySearchLimit) <= 0 {
		return fmt.Errorf("%w: %s must be a positive integer", domain.ErrInvalidInput, KeySearchLimit)
	}
	for _, raw := range s.configStore.GetStringSlice(KeySearchKinds) {
		if _, err := domain.ParseResultKind(raw); err != nil {
			return fmt.Errorf("%w: unknown result kind %q in %s", domain.ErrInvalidInput, raw, KeySearchKinds)
		}
	}
	return nil
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	if val := s.configStore.GetInt(key); val > 0 {
		return val
	}
	return defaultVal
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, ok := s.configStore.Get(key); !ok {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getBackend(defaultVal domain.StorageBackend) domain.StorageBackend {
	backend, err := domain.ParseStorageBackend(s.configStore.GetString(KeyStorageBackend))
	if err != nil {
		return defaultVal
	}
	return backend
}

// getKinds returns the configured kinds, skipping unknown names.
func (s *SettingsService) getKinds() []domain.ResultKind {
	var kinds []domain.ResultKind
	for _, raw := range s.configStore.GetStringSlice(KeySearchKinds) {
		if k, err := domain.ParseResultKind(raw); err == nil {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

func kindStrings(kinds []domain.ResultKind) []string {
	out := make([]string, len(kinds))
	for i, k := range kinds {
		out[i] = string(k)
	}
	return out
}
