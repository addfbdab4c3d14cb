// Package domain defines the value types, events and errors of the cache purge engine.
package domain

import (
	"slices"
	"strings"
)

// Settings keys understood by the settings store.
const (
	SettingCachePath            = "cache_path"
	SettingAutoPurge            = "auto_purge"
	SettingShowFooter           = "show_footer"
	SettingExcludedContentTypes = "excluded_content_types"
	SettingPurgePaused          = "purge_paused"
)

// SettingType describes how a setting value is stored.
type SettingType uint8

const (
	// SettingString is a free form string setting.
	SettingString SettingType = iota
	// SettingBool is a boolean flag.
	SettingBool
)

// SettingSpec describes a known setting and its default value.
type SettingSpec struct {
	Key         string
	Type        SettingType
	Default     any
	Description string
}

// KnownSettings lists every setting in display order.
var KnownSettings = []SettingSpec{
	{Key: SettingCachePath, Type: SettingString, Default: "", Description: "Absolute path of the Nginx cache root"},
	{Key: SettingAutoPurge, Type: SettingBool, Default: true, Description: "Purge automatically when content changes"},
	{Key: SettingShowFooter, Type: SettingBool, Default: true, Description: "Append the diagnostic footer comment to HTML output"},
	{Key: SettingExcludedContentTypes, Type: SettingString, Default: "", Description: "Comma separated content types that never trigger a purge"},
	{Key: SettingPurgePaused, Type: SettingBool, Default: false, Description: "Decline every purge attempt"},
}

// LookupSetting returns the spec for key.
func LookupSetting(key string) (SettingSpec, bool) {
	for _, s := range KnownSettings {
		if s.Key == key {
			return s, true
		}
	}
	return SettingSpec{}, false
}

// CacheConfiguration is the settings snapshot an operation works with.
// It is loaded at the start of each operation and never cached.
type CacheConfiguration struct {
	CachePath            string
	AutoPurge            bool
	ShowStatsFooter      bool
	ExcludedContentTypes []string
	PurgePaused          bool
}

// Configured reports whether a cache path has been set.
func (c CacheConfiguration) Configured() bool {
	return c.CachePath != ""
}

// ParseContentTypes splits a comma separated list, dropping blanks and duplicates.
func ParseContentTypes(raw string) []string {
	var types []string
	for part := range strings.SplitSeq(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" || slices.Contains(types, part) {
			continue
		}
		types = append(types, part)
	}
	return types
}
