// Package ports defines the interfaces the purge engine depends on.
package ports

import "github.com/llegomark/better-nginx-cache/internal/core/domain"

// Filesystem is the capability the executor, validator and scanner operate through.
//
//go:generate mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks
type Filesystem interface {
	// Exists reports whether path exists.
	Exists(path string) bool
	// IsDirectory reports whether path is a directory.
	IsDirectory(path string) bool
	// IsWritable reports whether files can be created inside the directory at path.
	IsWritable(path string) bool
	// ListRecursive returns the tree under path. Unreadable subdirectories
	// appear with no children; symlinks are reported but never followed.
	ListRecursive(path string) (domain.CacheDirectoryListing, error)
	// RemoveRecursive removes path and everything below it.
	RemoveRecursive(path string) error
	// CreateDirectory creates path and any missing parents.
	CreateDirectory(path string) error
}
