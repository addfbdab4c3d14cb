// Package validator decides whether a directory tree looks like an Nginx cache.
package validator

import (
	"strings"

	"github.com/llegomark/better-nginx-cache/internal/core/domain"
)

// CacheKeyLength is the length of an MD5 cache key in hex.
const CacheKeyLength = 32

// Validate reports whether every leaf in listing is a cache key file or a
// file with an extension. An empty listing is valid. Non-file, non-directory
// entries are ignored. A truncated directory is never valid since its
// contents are unknown.
func Validate(listing domain.CacheDirectoryListing) bool {
	for _, entry := range listing {
		switch entry.Kind {
		case domain.EntryFile:
			if strings.Contains(entry.Name, ".") {
				continue
			}
			if !IsCacheKey(entry.Name) {
				return false
			}
		case domain.EntryDirectory:
			if entry.Truncated || !Validate(entry.Children) {
				return false
			}
		case domain.EntryOther:
		}
	}
	return true
}

// IsCacheKey reports whether name is exactly 32 hexadecimal digits.
func IsCacheKey(name string) bool {
	if len(name) != CacheKeyLength {
		return false
	}
	for i := range len(name) {
		if !isHex(name[i]) {
			return false
		}
	}
	return true
}

func isHex(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'f':
		return true
	case c >= 'A' && c <= 'F':
		return true
	default:
		return false
	}
}
