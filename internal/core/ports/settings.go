package ports

// SettingsStore is the key-value settings store.
//
//go:generate mockgen -source=settings.go -destination=mocks/mock_settings.go -package=mocks
type SettingsStore interface {
	// Has reports whether key holds a stored value.
	Has(key string) bool
	// GetString returns the value of key, or def when unset.
	GetString(key, def string) string
	// GetBool returns the value of key, or def when unset.
	GetBool(key string, def bool) bool
	// Set stores value under key.
	Set(key string, value any) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(key string) error
}
