// Package configuration loads the CacheConfiguration snapshot from the settings store.
package configuration

import (
	"github.com/llegomark/better-nginx-cache/internal/core/domain"
	"github.com/llegomark/better-nginx-cache/internal/core/ports"
	"github.com/llegomark/better-nginx-cache/internal/engine/sanitizer"
)

// Loader reads settings on every call; nothing is cached between operations.
type Loader struct {
	store ports.SettingsStore
}

// NewLoader creates a Loader over store.
func NewLoader(store ports.SettingsStore) *Loader {
	return &Loader{store: store}
}

// Load returns the current configuration. A stored path that fails
// sanitization is treated as unconfigured.
func (l *Loader) Load() domain.CacheConfiguration {
	path, err := sanitizer.CachePath(l.str(domain.SettingCachePath), "")
	if err != nil {
		path = ""
	}

	return domain.CacheConfiguration{
		CachePath:            path,
		AutoPurge:            l.flag(domain.SettingAutoPurge),
		ShowStatsFooter:      l.flag(domain.SettingShowFooter),
		ExcludedContentTypes: domain.ParseContentTypes(l.str(domain.SettingExcludedContentTypes)),
		PurgePaused:          l.flag(domain.SettingPurgePaused),
	}
}

func (l *Loader) str(key string) string {
	def := ""
	if spec, ok := domain.LookupSetting(key); ok {
		def, _ = spec.Default.(string)
	}
	return l.store.GetString(key, def)
}

func (l *Loader) flag(key string) bool {
	def := false
	if spec, ok := domain.LookupSetting(key); ok {
		def, _ = spec.Default.(bool)
	}
	return l.store.GetBool(key, def)
}
