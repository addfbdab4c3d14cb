// Package settings persists the key-value settings as a YAML document.
package settings

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/gofrs/flock"
	"github.com/llegomark/better-nginx-cache/internal/core/domain"
	"github.com/llegomark/better-nginx-cache/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// FileStore implements ports.SettingsStore on a single YAML file.
//
// Reads are served from memory and reloaded whenever the file's modification
// time or size changes, so values written by another process are observed.
// Writes are read-modify-write under an exclusive lock on <path>.lock.
type FileStore struct {
	path   string
	logger ports.Logger

	mu     sync.Mutex
	values map[string]any
	stamp  stamp
}

type stamp struct {
	modTime time.Time
	size    int64
	exists  bool
}

// New creates a FileStore for path. The file is created on first write.
func New(path string, logger ports.Logger) *FileStore {
	return &FileStore{path: path, logger: logger}
}

// Path returns the location of the settings file.
func (s *FileStore) Path() string {
	return s.path
}

// Has reports whether key holds a stored value.
func (s *FileStore) Has(key string) bool {
	_, ok := s.lookup(key)
	return ok
}

// GetString returns the value of key, or def when unset.
func (s *FileStore) GetString(key, def string) string {
	v, ok := s.lookup(key)
	if !ok {
		return def
	}
	switch val := v.(type) {
	case string:
		return val
	case []any:
		parts := make([]string, 0, len(val))
		for _, p := range val {
			parts = append(parts, fmt.Sprint(p))
		}
		return strings.Join(parts, ",")
	default:
		return fmt.Sprint(val)
	}
}

// GetBool returns the value of key, or def when unset or not a boolean.
func (s *FileStore) GetBool(key string, def bool) bool {
	v, ok := s.lookup(key)
	if !ok {
		return def
	}
	switch val := v.(type) {
	case bool:
		return val
	case string:
		if b, err := parseBool(val); err == nil {
			return b
		}
	case int:
		return val != 0
	}
	return def
}

// Set stores value under key after coercing it to the key's type.
func (s *FileStore) Set(key string, value any) error {
	spec, ok := domain.LookupSetting(key)
	if !ok {
		return zerr.With(domain.ErrUnknownSetting, "key", key)
	}
	coerced, err := coerce(spec, value)
	if err != nil {
		return err
	}
	return s.update(func(values map[string]any) {
		values[key] = coerced
	})
}

// Delete removes key.
func (s *FileStore) Delete(key string) error {
	return s.update(func(values map[string]any) {
		delete(values, key)
	})
}

func coerce(spec domain.SettingSpec, value any) (any, error) {
	invalid := zerr.With(zerr.With(domain.ErrInvalidSettingValue, "key", spec.Key), "value", value)

	switch spec.Type {
	case domain.SettingBool:
		switch v := value.(type) {
		case bool:
			return v, nil
		case string:
			b, err := parseBool(v)
			if err != nil {
				return nil, invalid
			}
			return b, nil
		}
	case domain.SettingString:
		switch v := value.(type) {
		case string:
			return v, nil
		case []string:
			return strings.Join(v, ","), nil
		}
	}
	return nil, invalid
}

// parseBool accepts the strconv forms plus yes/no and on/off.
func parseBool(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "yes", "on":
		return true, nil
	case "no", "off":
		return false, nil
	}
	return strconv.ParseBool(strings.TrimSpace(raw))
}

func (s *FileStore) lookup(key string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.refresh()
	v, ok := s.values[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// refresh reloads the file when it changed since the last read. Must be
// called with s.mu held.
func (s *FileStore) refresh() {
	current := s.statFile()
	if s.values != nil && current == s.stamp {
		return
	}
	s.stamp = current

	values, err := s.read()
	if err != nil {
		s.logger.Warn(fmt.Sprintf("ignoring unreadable settings file %s: %v", s.path, err))
		values = map[string]any{}
	}
	s.values = values
}

func (s *FileStore) statFile() stamp {
	info, err := os.Stat(s.path)
	if err != nil {
		return stamp{}
	}
	return stamp{modTime: info.ModTime(), size: info.Size(), exists: true}
}

func (s *FileStore) read() (map[string]any, error) {
	//nolint:gosec // Path comes from the operator's configuration
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]any{}, nil
		}
		return nil, zerr.Wrap(err, domain.ErrSettingsReadFailed.Error())
	}

	values := map[string]any{}
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, zerr.Wrap(err, domain.ErrSettingsReadFailed.Error())
	}
	if values == nil {
		values = map[string]any{}
	}
	return values, nil
}

func (s *FileStore) update(mutate func(map[string]any)) error {
	if err := os.MkdirAll(filepath.Dir(s.path), domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrSettingsWriteFailed.Error())
	}

	lock := flock.New(s.path + domain.LockSuffix)
	if err := acquire(context.Background(), lock); err != nil {
		return err
	}
	defer func() { _ = lock.Unlock() }()

	values, err := s.read()
	if err != nil {
		return err
	}
	mutate(values)

	if err := s.write(values); err != nil {
		return err
	}

	s.mu.Lock()
	s.values = nil
	s.mu.Unlock()
	return nil
}

func (s *FileStore) write(values map[string]any) error {
	data, err := yaml.Marshal(values)
	if err != nil {
		return zerr.Wrap(err, domain.ErrSettingsWriteFailed.Error())
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), "."+filepath.Base(s.path)+".*")
	if err != nil {
		return zerr.Wrap(err, domain.ErrSettingsWriteFailed.Error())
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return zerr.Wrap(err, domain.ErrSettingsWriteFailed.Error())
	}
	if err := tmp.Chmod(domain.PrivateFilePerm); err != nil {
		_ = tmp.Close()
		return zerr.Wrap(err, domain.ErrSettingsWriteFailed.Error())
	}
	if err := tmp.Close(); err != nil {
		return zerr.Wrap(err, domain.ErrSettingsWriteFailed.Error())
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return zerr.Wrap(err, domain.ErrSettingsWriteFailed.Error())
	}
	return nil
}

// acquire takes the lock, retrying with backoff while another process holds it.
func acquire(ctx context.Context, lock *flock.Flock) error {
	return retry.Do(
		func() error {
			locked, err := lock.TryLock()
			if err != nil {
				return retry.Unrecoverable(zerr.Wrap(err, domain.ErrSettingsWriteFailed.Error()))
			}
			if !locked {
				return zerr.With(domain.ErrSettingsLocked, "lock", lock.Path())
			}
			return nil
		},
		retry.Attempts(3),
		retry.Delay(100*time.Millisecond),
		retry.MaxDelay(time.Second),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.Context(ctx),
	)
}
