package scanner_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/llegomark/better-nginx-cache/internal/adapters/fs"
	"github.com/llegomark/better-nginx-cache/internal/core/domain"
	"github.com/llegomark/better-nginx-cache/internal/engine/scanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanner_ComputeSkipsUnreadableDirectories(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("directory permissions are not enforced for root")
	}

	root := t.TempDir()
	readable := filepath.Join(root, "a", "1f")
	locked := filepath.Join(root, "b")
	require.NoError(t, os.MkdirAll(readable, domain.DirPerm))
	require.NoError(t, os.MkdirAll(locked, domain.DirPerm))
	require.NoError(t, os.WriteFile(filepath.Join(readable, "0123456789abcdef0123456789abcdef"), []byte("0123456789"), domain.FilePerm))
	require.NoError(t, os.WriteFile(filepath.Join(root, "fedcba9876543210fedcba9876543210"), []byte("01234"), domain.FilePerm))
	require.NoError(t, os.WriteFile(filepath.Join(locked, "00000000000000000000000000000000"), []byte("hidden"), domain.FilePerm))

	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() {
		_ = os.Chmod(locked, domain.DirPerm)
	})

	got := scanner.New(fs.NewOS()).WithClock(func() time.Time { return fixedNow }).Compute(root)

	assert.Equal(t, domain.CacheStatistics{
		FileCount:      2,
		TotalSizeBytes: 15,
		CachePath:      root,
		ComputedAt:     fixedNow,
	}, got)
}
