package domain

import "strings"

// CacheStatusHeader is the response header Nginx sets from $upstream_cache_status.
const CacheStatusHeader = "Fastcgi-Cache"

// CacheStatusUnknown is reported when no cache status header is present.
const CacheStatusUnknown = "UNKNOWN"

// CacheStatusFromHeaders scans raw "Name: value" header lines for the cache
// status header and returns its upper-cased value.
func CacheStatusFromHeaders(lines []string) string {
	prefix := strings.ToLower(CacheStatusHeader + ":")
	for _, line := range lines {
		if !strings.HasPrefix(strings.ToLower(line), prefix) {
			continue
		}
		_, value, _ := strings.Cut(line, ":")
		return ParseCacheStatus(value)
	}
	return CacheStatusUnknown
}

// ParseCacheStatus normalizes a header value such as " hit" to "HIT".
func ParseCacheStatus(value string) string {
	value = strings.ToUpper(strings.TrimSpace(value))
	if value == "" {
		return CacheStatusUnknown
	}
	return value
}
