// Package fs implements the filesystem capability on top of go-billy.
package fs

import (
	"os"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/google/uuid"
	"github.com/llegomark/better-nginx-cache/internal/core/domain"
	"go.trai.ch/zerr"
)

const probePrefix = ".bnc-probe-"

// Filesystem implements ports.Filesystem over a billy.Filesystem.
type Filesystem struct {
	fs billy.Filesystem
}

// New creates a Filesystem backed by fsys.
func New(fsys billy.Filesystem) *Filesystem {
	return &Filesystem{fs: fsys}
}

// NewOS creates a Filesystem over the host filesystem. Paths are used as given.
func NewOS() *Filesystem {
	return New(osfs.New(""))
}

// Exists reports whether path exists.
func (f *Filesystem) Exists(path string) bool {
	_, err := f.fs.Stat(path)
	return err == nil
}

// IsDirectory reports whether path is a directory.
func (f *Filesystem) IsDirectory(path string) bool {
	info, err := f.fs.Stat(path)
	return err == nil && info.IsDir()
}

// IsWritable creates and removes a probe file inside path. A probe that
// cannot be removed again counts as not writable.
func (f *Filesystem) IsWritable(path string) bool {
	if !f.IsDirectory(path) {
		return false
	}
	name := f.fs.Join(path, probePrefix+uuid.NewString())
	probe, err := f.fs.OpenFile(name, os.O_CREATE|os.O_EXCL|os.O_WRONLY, domain.FilePerm)
	if err != nil {
		return false
	}
	closeErr := probe.Close()
	if err := f.fs.Remove(name); err != nil {
		return false
	}
	return closeErr == nil
}

// ListRecursive lists the tree below path without following symlinks.
func (f *Filesystem) ListRecursive(path string) (domain.CacheDirectoryListing, error) {
	infos, err := f.fs.ReadDir(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to list directory"), "path", path)
	}
	return f.entries(path, infos, 1), nil
}

func (f *Filesystem) entries(dir string, infos []os.FileInfo, depth int) domain.CacheDirectoryListing {
	listing := make(domain.CacheDirectoryListing, 0, len(infos))
	for _, info := range infos {
		entry := domain.ListingEntry{Name: info.Name()}

		switch mode := info.Mode(); {
		case mode.IsRegular():
			entry.Kind = domain.EntryFile
			entry.Size = info.Size()
		case mode&os.ModeSymlink == 0 && info.IsDir():
			entry.Kind = domain.EntryDirectory
			if depth >= domain.MaxTreeDepth {
				entry.Truncated = true
				break
			}
			entry.Children = f.children(f.fs.Join(dir, info.Name()), depth)
		default:
			entry.Kind = domain.EntryOther
		}

		listing = append(listing, entry)
	}
	return listing
}

// children lists a subdirectory. Unreadable directories are reported empty.
func (f *Filesystem) children(dir string, depth int) domain.CacheDirectoryListing {
	infos, err := f.fs.ReadDir(dir)
	if err != nil {
		return nil
	}
	return f.entries(dir, infos, depth+1)
}

// RemoveRecursive removes path and everything below it.
func (f *Filesystem) RemoveRecursive(path string) error {
	if err := util.RemoveAll(f.fs, path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove tree"), "path", path)
	}
	return nil
}

// CreateDirectory creates path and any missing parents.
func (f *Filesystem) CreateDirectory(path string) error {
	if err := f.fs.MkdirAll(path, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory"), "path", path)
	}
	return nil
}
