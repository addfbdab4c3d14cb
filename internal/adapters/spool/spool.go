// Package spool reads event batches dropped into a directory by the host.
//
// A batch is a YAML or JSON file holding a list of events. Each batch is one
// unit of work. Once handled, a batch is moved to processed/ or failed/.
package spool

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/gofrs/flock"
	"github.com/llegomark/better-nginx-cache/internal/core/domain"
	"go.trai.ch/zerr"
)

const lockFileName = ".bnc-watch.lock"

// Spool manages the batch files of one directory.
type Spool struct {
	dir     string
	decoder *Decoder
	lock    *flock.Flock
}

// New creates a Spool over dir.
func New(dir string, decoder *Decoder) *Spool {
	return &Spool{
		dir:     dir,
		decoder: decoder,
		lock:    flock.New(filepath.Join(dir, lockFileName)),
	}
}

// Lock claims the directory for this process.
func (s *Spool) Lock() error {
	if err := os.MkdirAll(s.dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrSpoolReadFailed.Error()), "dir", s.dir)
	}
	locked, err := s.lock.TryLock()
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrWatchLocked.Error()), "dir", s.dir)
	}
	if !locked {
		return zerr.With(domain.ErrWatchLocked, "dir", s.dir)
	}
	return nil
}

// Unlock releases the directory.
func (s *Spool) Unlock() error {
	return s.lock.Unlock()
}

// Pending returns the batch files already waiting, oldest first.
func (s *Spool) Pending() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSpoolReadFailed.Error()), "dir", s.dir)
	}

	type pending struct {
		path    string
		modTime time.Time
	}
	var files []pending
	for _, entry := range entries {
		if !entry.Type().IsRegular() || !IsBatchFile(entry.Name()) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, pending{path: filepath.Join(s.dir, entry.Name()), modTime: info.ModTime()})
	}

	slices.SortStableFunc(files, func(a, b pending) int {
		if c := a.modTime.Compare(b.modTime); c != 0 {
			return c
		}
		return strings.Compare(a.path, b.path)
	})

	paths := make([]string, 0, len(files))
	for _, f := range files {
		paths = append(paths, f.path)
	}
	return paths, nil
}

// Read loads and decodes the batch at path. A writer may still be filling
// the file, so read and decode failures are retried with backoff.
func (s *Spool) Read(ctx context.Context, path string) ([]domain.Event, error) {
	return retry.DoWithData(
		func() ([]domain.Event, error) {
			//nolint:gosec // Path is a batch file inside the spool directory
			data, err := os.ReadFile(path)
			if err != nil {
				if errors.Is(err, os.ErrNotExist) {
					return nil, retry.Unrecoverable(zerr.With(zerr.Wrap(err, domain.ErrSpoolReadFailed.Error()), "path", path))
				}
				return nil, zerr.With(zerr.Wrap(err, domain.ErrSpoolReadFailed.Error()), "path", path)
			}
			return s.decoder.Decode(data)
		},
		retry.Attempts(3),
		retry.Delay(100*time.Millisecond),
		retry.MaxDelay(time.Second),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.Context(ctx),
	)
}

// Complete moves path into processed/ when failed is false and into failed/
// otherwise.
func (s *Spool) Complete(path string, failed bool) error {
	sub := domain.SpoolProcessedDirName
	if failed {
		sub = domain.SpoolFailedDirName
	}
	dest := filepath.Join(s.dir, sub)
	if err := os.MkdirAll(dest, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrSpoolReadFailed.Error()), "dir", dest)
	}
	if err := os.Rename(path, filepath.Join(dest, filepath.Base(path))); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrSpoolReadFailed.Error()), "path", path)
	}
	return nil
}
