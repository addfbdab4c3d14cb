package settings_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gofrs/flock"
	"github.com/llegomark/better-nginx-cache/internal/adapters/settings"
	"github.com/llegomark/better-nginx-cache/internal/core/domain"
	"github.com/llegomark/better-nginx-cache/internal/core/ports"
	"github.com/llegomark/better-nginx-cache/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var _ ports.SettingsStore = (*settings.FileStore)(nil)

func newStore(t *testing.T) (*settings.FileStore, string) {
	t.Helper()
	ctrl := gomock.NewController(t)
	path := filepath.Join(t.TempDir(), "bnc", "settings.yaml")
	return settings.New(path, mocks.NewMockLogger(ctrl)), path
}

func TestFileStore_DefaultsWhenMissing(t *testing.T) {
	store, path := newStore(t)

	assert.Equal(t, path, store.Path())
	assert.False(t, store.Has(domain.SettingCachePath))
	assert.Equal(t, "fallback", store.GetString(domain.SettingCachePath, "fallback"))
	assert.True(t, store.GetBool(domain.SettingAutoPurge, true))
	assert.NoFileExists(t, path)
}

func TestFileStore_SetAndGet(t *testing.T) {
	store, path := newStore(t)

	require.NoError(t, store.Set(domain.SettingCachePath, "/var/cache/nginx"))
	require.NoError(t, store.Set(domain.SettingAutoPurge, false))
	require.NoError(t, store.Set(domain.SettingShowFooter, "no"))
	require.NoError(t, store.Set(domain.SettingExcludedContentTypes, []string{"product", "event"}))

	assert.True(t, store.Has(domain.SettingCachePath))
	assert.Equal(t, "/var/cache/nginx", store.GetString(domain.SettingCachePath, ""))
	assert.False(t, store.GetBool(domain.SettingAutoPurge, true))
	assert.False(t, store.GetBool(domain.SettingShowFooter, true))
	assert.Equal(t, "product,event", store.GetString(domain.SettingExcludedContentTypes, ""))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(domain.PrivateFilePerm), info.Mode().Perm())

	reopened := settings.New(path, nil)
	assert.Equal(t, "/var/cache/nginx", reopened.GetString(domain.SettingCachePath, ""))
}

func TestFileStore_Delete(t *testing.T) {
	store, _ := newStore(t)

	require.NoError(t, store.Set(domain.SettingCachePath, "/cache"))
	require.NoError(t, store.Delete(domain.SettingCachePath))
	require.NoError(t, store.Delete(domain.SettingCachePath))

	assert.False(t, store.Has(domain.SettingCachePath))
	assert.Equal(t, "", store.GetString(domain.SettingCachePath, ""))
}

func TestFileStore_RejectsUnknownAndInvalid(t *testing.T) {
	store, path := newStore(t)

	err := store.Set("cache_ttl", "5")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrUnknownSetting.Error())

	err = store.Set(domain.SettingAutoPurge, "sometimes")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrInvalidSettingValue.Error())

	err = store.Set(domain.SettingCachePath, 42)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrInvalidSettingValue.Error())

	assert.NoFileExists(t, path)
}

func TestFileStore_ObservesExternalWrites(t *testing.T) {
	store, path := newStore(t)
	require.NoError(t, store.Set(domain.SettingCachePath, "/a"))
	assert.Equal(t, "/a", store.GetString(domain.SettingCachePath, ""))

	require.NoError(t, os.WriteFile(path, []byte("cache_path: /somewhere/else\nauto_purge: false\n"), domain.PrivateFilePerm))

	assert.Equal(t, "/somewhere/else", store.GetString(domain.SettingCachePath, ""))
	assert.False(t, store.GetBool(domain.SettingAutoPurge, true))
}

func TestFileStore_CorruptFileFallsBackToDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cache_path: [unterminated"), domain.PrivateFilePerm))

	log.EXPECT().Warn(gomock.Any()).Times(1)
	store := settings.New(path, log)

	assert.Equal(t, "", store.GetString(domain.SettingCachePath, ""))
	assert.True(t, store.GetBool(domain.SettingAutoPurge, true))

	err := store.Set(domain.SettingCachePath, "/cache")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrSettingsReadFailed.Error())
}

func TestFileStore_LockedByAnotherProcess(t *testing.T) {
	store, path := newStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))

	held := flock.New(path + domain.LockSuffix)
	locked, err := held.TryLock()
	require.NoError(t, err)
	require.True(t, locked)
	t.Cleanup(func() { _ = held.Unlock() })

	err = store.Set(domain.SettingCachePath, "/cache")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrSettingsLocked.Error())
}
