// Package scanner computes file count and size statistics for a cache tree.
package scanner

import (
	"time"

	"github.com/llegomark/better-nginx-cache/internal/core/domain"
	"github.com/llegomark/better-nginx-cache/internal/core/ports"
)

// Scanner walks cache trees through the filesystem capability.
type Scanner struct {
	fs  ports.Filesystem
	now func() time.Time
}

// New creates a Scanner.
func New(fs ports.Filesystem) *Scanner {
	return &Scanner{fs: fs, now: time.Now}
}

// WithClock replaces the clock used for ComputedAt.
func (s *Scanner) WithClock(now func() time.Time) *Scanner {
	s.now = now
	return s
}

// Compute returns the statistics for path. An empty or missing path yields
// zero counts. Unreadable directories are skipped, so the result may be partial.
func (s *Scanner) Compute(path string) domain.CacheStatistics {
	stats := domain.CacheStatistics{
		CachePath:  path,
		ComputedAt: s.now(),
	}

	if path == "" || s.fs == nil || !s.fs.IsDirectory(path) {
		return stats
	}

	listing, err := s.fs.ListRecursive(path)
	if err != nil {
		return stats
	}

	accumulate(listing, &stats)
	return stats
}

func accumulate(listing domain.CacheDirectoryListing, stats *domain.CacheStatistics) {
	for _, entry := range listing {
		switch entry.Kind {
		case domain.EntryFile:
			stats.FileCount++
			stats.TotalSizeBytes += max(entry.Size, 0)
		case domain.EntryDirectory:
			accumulate(entry.Children, stats)
		case domain.EntryOther:
		}
	}
}
