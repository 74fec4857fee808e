package driven

// ConfigStore is a flat key-value view of the settings file. Keys use dot
// notation ("search.limit", "storage.backend").
//
// Typed getters return the zero value for a missing key or a value of the
// wrong type, so callers decide defaults themselves.
type ConfigStore interface {
	// Get returns the raw value and whether the key is present.
	Get(key string) (any, bool)

	GetString(key string) string
	GetInt(key string) int
	GetBool(key string) bool
	GetStringSlice(key string) []string

	// Set stores value under key and persists it before returning.
	Set(key string, value any) error
}
