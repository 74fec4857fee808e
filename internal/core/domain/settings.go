package domain

import "fmt"

// StorageBackend names a record store implementation.
type StorageBackend string

// Available storage backends.
const (
	// BackendMemory keeps records in process memory only.
	BackendMemory StorageBackend = "memory"

	// BackendSQLite stores records in a SQLite database file.
	BackendSQLite StorageBackend = "sqlite"

	// BackendBadger stores records in a BadgerDB directory.
	BackendBadger StorageBackend = "badger"
)

// AllBackends lists the supported backends.
var AllBackends = []StorageBackend{BackendSQLite, BackendBadger, BackendMemory}

// IsValid returns true if the backend is recognised.
func (b StorageBackend) IsValid() bool {
	switch b {
	case BackendMemory, BackendSQLite, BackendBadger:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (b StorageBackend) String() string {
	return string(b)
}

// Description returns a human-readable description of the backend.
func (b StorageBackend) Description() string {
	switch b {
	case BackendMemory:
		return "Memory (nothing persisted)"
	case BackendSQLite:
		return "SQLite (single database file)"
	case BackendBadger:
		return "Badger (embedded key-value store)"
	default:
		return "Unknown"
	}
}

// ParseStorageBackend converts a string into a StorageBackend.
func ParseStorageBackend(s string) (StorageBackend, error) {
	b := StorageBackend(s)
	if !b.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedBackend, s)
	}
	return b, nil
}

// StorageSettings selects where records live.
type StorageSettings struct {
	Backend StorageBackend

	// Path is the data directory. Empty means ~/.relay/data.
	Path string
}

// SearchSettings tunes the global engine.
type SearchSettings struct {
	// Limit is the default result cap.
	Limit int

	// Kinds restricts default searches. Empty means every kind.
	Kinds []ResultKind
}

// LogSettings controls logging.
type LogSettings struct {
	Verbose bool
}

// AppSettings is the full application configuration.
type AppSettings struct {
	Storage StorageSettings
	Search  SearchSettings
	Log     LogSettings
}

// DefaultAppSettings returns the settings used when nothing is configured.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Storage: StorageSettings{Backend: BackendSQLite},
		Search:  SearchSettings{Limit: DefaultSearchLimit},
	}
}

// SearchOptions returns the options for a search using these settings.
func (s AppSettings) SearchOptions() SearchOptions {
	return SearchOptions{
		Limit: s.Search.Limit,
		Kinds: append([]ResultKind(nil), s.Search.Kinds...),
	}
}
