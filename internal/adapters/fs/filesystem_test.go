package fs_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/llegomark/better-nginx-cache/internal/adapters/fs"
	"github.com/llegomark/better-nginx-cache/internal/core/domain"
	"github.com/llegomark/better-nginx-cache/internal/core/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ ports.Filesystem = (*fs.Filesystem)(nil)

const cacheKey = "0123456789abcdef0123456789abcdef"

func seedCache(t *testing.T) *fs.Filesystem {
	t.Helper()
	mem := memfs.New()
	require.NoError(t, util.WriteFile(mem, "/cache/a/1f/"+cacheKey, []byte("0123456789"), domain.FilePerm))
	require.NoError(t, util.WriteFile(mem, "/cache/b/"+cacheKey, []byte("01234"), domain.FilePerm))
	require.NoError(t, util.WriteFile(mem, "/cache/index.html", []byte("x"), domain.FilePerm))
	return fs.New(mem)
}

func TestFilesystem_Predicates(t *testing.T) {
	f := seedCache(t)

	assert.True(t, f.Exists("/cache"))
	assert.True(t, f.IsDirectory("/cache"))
	assert.True(t, f.IsWritable("/cache"))

	assert.True(t, f.Exists("/cache/index.html"))
	assert.False(t, f.IsDirectory("/cache/index.html"))
	assert.False(t, f.IsWritable("/cache/index.html"))

	assert.False(t, f.Exists("/missing"))
	assert.False(t, f.IsDirectory("/missing"))
	assert.False(t, f.IsWritable("/missing"))
}

func TestFilesystem_IsWritableLeavesNoProbe(t *testing.T) {
	mem := memfs.New()
	require.NoError(t, mem.MkdirAll("/cache", domain.DirPerm))
	f := fs.New(mem)

	require.True(t, f.IsWritable("/cache"))

	infos, err := mem.ReadDir("/cache")
	require.NoError(t, err)
	assert.Empty(t, infos)
}

func TestFilesystem_ListRecursive(t *testing.T) {
	f := seedCache(t)

	listing, err := f.ListRecursive("/cache")
	require.NoError(t, err)

	require.Len(t, listing, 3)
	assert.Equal(t, "a", listing[0].Name)
	assert.Equal(t, domain.EntryDirectory, listing[0].Kind)
	require.Len(t, listing[0].Children, 1)
	assert.Equal(t, "1f", listing[0].Children[0].Name)
	require.Len(t, listing[0].Children[0].Children, 1)
	leaf := listing[0].Children[0].Children[0]
	assert.Equal(t, cacheKey, leaf.Name)
	assert.Equal(t, domain.EntryFile, leaf.Kind)
	assert.Equal(t, int64(10), leaf.Size)

	assert.Equal(t, "index.html", listing[2].Name)
	assert.Equal(t, domain.EntryFile, listing[2].Kind)
}

func TestFilesystem_ListRecursiveMissing(t *testing.T) {
	f := fs.New(memfs.New())
	_, err := f.ListRecursive("/missing")
	require.Error(t, err)
}

func TestFilesystem_ListRecursiveEmpty(t *testing.T) {
	mem := memfs.New()
	require.NoError(t, mem.MkdirAll("/cache", domain.DirPerm))

	listing, err := fs.New(mem).ListRecursive("/cache")
	require.NoError(t, err)
	assert.Empty(t, listing)
}

func TestFilesystem_RemoveAndRecreate(t *testing.T) {
	f := seedCache(t)

	require.NoError(t, f.RemoveRecursive("/cache"))
	assert.False(t, f.Exists("/cache"))

	require.NoError(t, f.CreateDirectory("/cache"))
	assert.True(t, f.IsDirectory("/cache"))

	listing, err := f.ListRecursive("/cache")
	require.NoError(t, err)
	assert.Empty(t, listing)
}

func TestFilesystem_RemoveMissingIsNoop(t *testing.T) {
	f := fs.New(memfs.New())
	assert.NoError(t, f.RemoveRecursive("/missing"))
}

func TestFilesystem_OSDoesNotFollowSymlinks(t *testing.T) {
	root := t.TempDir()
	cache := filepath.Join(root, "cache")
	outside := filepath.Join(root, "outside")
	require.NoError(t, os.MkdirAll(cache, domain.DirPerm))
	require.NoError(t, os.MkdirAll(outside, domain.DirPerm))
	require.NoError(t, os.WriteFile(filepath.Join(outside, "secret"), []byte("s"), domain.FilePerm))
	require.NoError(t, os.Symlink(outside, filepath.Join(cache, "link")))

	f := fs.NewOS()

	listing, err := f.ListRecursive(cache)
	require.NoError(t, err)
	require.Len(t, listing, 1)
	assert.Equal(t, "link", listing[0].Name)
	assert.Equal(t, domain.EntryOther, listing[0].Kind)
	assert.Empty(t, listing[0].Children)

	require.NoError(t, f.RemoveRecursive(cache))
	assert.FileExists(t, filepath.Join(outside, "secret"))
}

func TestFilesystem_OSWritableProbe(t *testing.T) {
	dir := t.TempDir()
	f := fs.NewOS()

	assert.True(t, f.IsWritable(dir))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

// stickyFS refuses to remove anything.
type stickyFS struct {
	billy.Filesystem
}

func (stickyFS) Remove(string) error {
	return errors.New("operation not permitted")
}

func TestFilesystem_IsWritableFailsWhenProbeStays(t *testing.T) {
	mem := memfs.New()
	require.NoError(t, mem.MkdirAll("/cache", domain.DirPerm))

	assert.False(t, fs.New(stickyFS{mem}).IsWritable("/cache"))
}

func TestFilesystem_OSWritableProbeInNestedDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nginx", "cache")
	require.NoError(t, os.MkdirAll(dir, domain.DirPerm))
	f := fs.NewOS()

	for range 3 {
		require.True(t, f.IsWritable(dir))
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFilesystem_ListRecursiveStopsAtDepthLimit(t *testing.T) {
	segments := make([]string, 0, domain.MaxTreeDepth+6)
	for range domain.MaxTreeDepth + 6 {
		segments = append(segments, "d")
	}
	deep := "/cache/" + strings.Join(segments, "/")

	mem := memfs.New()
	require.NoError(t, util.WriteFile(mem, deep+"/wp-config", []byte("x"), domain.FilePerm))

	listing, err := fs.New(mem).ListRecursive("/cache")
	require.NoError(t, err)

	depth := 1
	entry := listing[0]
	for !entry.Truncated {
		require.Equal(t, domain.EntryDirectory, entry.Kind)
		require.Len(t, entry.Children, 1, "depth %d", depth)
		entry = entry.Children[0]
		depth++
	}
	assert.Equal(t, domain.MaxTreeDepth, depth)
	assert.Empty(t, entry.Children)
}

func TestFilesystem_OSUnreadableDirectoryIsEmpty(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("directory permissions are not enforced for root")
	}

	root := t.TempDir()
	locked := filepath.Join(root, "locked")
	require.NoError(t, os.MkdirAll(locked, domain.DirPerm))
	require.NoError(t, os.WriteFile(filepath.Join(locked, cacheKey), []byte("x"), domain.FilePerm))
	require.NoError(t, os.WriteFile(filepath.Join(root, cacheKey), []byte("x"), domain.FilePerm))
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() {
		_ = os.Chmod(locked, domain.DirPerm)
	})

	listing, err := fs.NewOS().ListRecursive(root)
	require.NoError(t, err)

	require.Len(t, listing, 2)
	assert.Equal(t, cacheKey, listing[0].Name)
	assert.Equal(t, "locked", listing[1].Name)
	assert.Equal(t, domain.EntryDirectory, listing[1].Kind)
	assert.Empty(t, listing[1].Children)
	assert.False(t, listing[1].Truncated)
}
