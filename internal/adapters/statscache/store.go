// Package statscache stores cache statistics snapshots between invocations.
package statscache

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/llegomark/better-nginx-cache/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.StatsStore using a file per cache path.
type Store struct {
	dir string
}

// NewStore creates a Store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Get returns the snapshot for cachePath, or nil if none was stored.
func (s *Store) Get(cachePath string) (*domain.CacheStatistics, error) {
	filename := s.filename(cachePath)
	//nolint:gosec // Path is constructed from the state directory and a hashed filename
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.Wrap(err, domain.ErrStatsReadFailed.Error())
	}

	var stats domain.CacheStatistics
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, zerr.Wrap(err, domain.ErrStatsReadFailed.Error())
	}

	// Hash collisions are treated as a miss.
	if stats.CachePath != cachePath {
		return nil, nil
	}
	return &stats, nil
}

// Put stores stats under its CachePath.
func (s *Store) Put(stats domain.CacheStatistics) error {
	data, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStatsWriteFailed.Error())
	}

	if err := os.MkdirAll(s.dir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrStatsWriteFailed.Error())
	}

	//nolint:gosec // Path is constructed from the state directory and a hashed filename
	if err := os.WriteFile(s.filename(stats.CachePath), data, domain.FilePerm); err != nil {
		return zerr.Wrap(err, domain.ErrStatsWriteFailed.Error())
	}
	return nil
}

// Invalidate removes the snapshot for cachePath. A missing snapshot is not an error.
func (s *Store) Invalidate(cachePath string) error {
	err := os.Remove(s.filename(cachePath))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, domain.ErrStatsWriteFailed.Error()), "cache_path", cachePath)
	}
	return nil
}

// Clear removes every snapshot.
func (s *Store) Clear() error {
	if err := os.RemoveAll(s.dir); err != nil {
		return zerr.Wrap(err, domain.ErrStatsWriteFailed.Error())
	}
	return nil
}

func (s *Store) filename(cachePath string) string {
	sum := xxhash.Sum64String(cachePath)
	return filepath.Join(s.dir, strconv.FormatUint(sum, 16)+".json")
}
