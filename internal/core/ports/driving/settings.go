package driving

import "github.com/custodia-labs/relay/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get returns the current settings with defaults applied.
	Get() (*domain.AppSettings, error)

	// Save persists every setting.
	Save(settings *domain.AppSettings) error

	// SetBackend changes the storage backend.
	SetBackend(backend domain.StorageBackend) error

	// SetSearchLimit changes the default result cap.
	SetSearchLimit(limit int) error

	// SetSearchKinds restricts default searches to kinds. Empty clears it.
	SetSearchKinds(kinds []domain.ResultKind) error

	// Validate checks the stored settings.
	Validate() error
}
