// Package sanitizer normalizes operator-supplied cache paths before they are stored.
package sanitizer

import (
	"strings"

	"github.com/llegomark/better-nginx-cache/internal/core/domain"
)

// CachePath normalizes raw into the stored form of a cache path.
//
// NUL bytes are stripped, whitespace runs collapse to one space, backslashes
// become forward slashes and trailing slashes are removed. If the result
// contains "..", previousValid is returned with domain.ErrPathTraversal.
// The returned string is always safe to store.
func CachePath(raw, previousValid string) (string, error) {
	p := Normalize(raw)
	if strings.Contains(p, "..") {
		return previousValid, domain.ErrPathTraversal
	}
	return p, nil
}

// Normalize applies every CachePath transformation except the traversal check.
func Normalize(raw string) string {
	p := strings.ReplaceAll(raw, "\x00", "")
	p = strings.Join(strings.Fields(p), " ")
	p = strings.ReplaceAll(p, `\`, "/")
	// Trailing spaces exposed by slash removal are trimmed too so the result is stable.
	return strings.TrimRight(p, "/ ")
}
