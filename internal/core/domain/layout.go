package domain

import (
	"os"
	"path/filepath"
)

const (
	// AppDirName is the directory name used under the user config and cache dirs.
	AppDirName = "bnc"

	// SettingsFileName is the name of the settings document.
	SettingsFileName = "settings.yaml"

	// LockSuffix is appended to a file name to form its lock file.
	LockSuffix = ".lock"

	// StatsDirName is the name of the statistics snapshot directory.
	StatsDirName = "stats"

	// SpoolProcessedDirName is where handled event batches are moved.
	SpoolProcessedDirName = "processed"

	// SpoolFailedDirName is where event batches that could not be decoded are moved.
	SpoolFailedDirName = "failed"

	// SettingsEnv overrides the settings file location.
	SettingsEnv = "BNC_SETTINGS"

	// StateDirEnv overrides the state directory location.
	StateDirEnv = "BNC_STATE_DIR"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600

	// MaxTreeDepth bounds recursion over cache trees. Nginx uses at most three levels.
	MaxTreeDepth = 64
)

// DefaultSettingsPath returns $BNC_SETTINGS or <user config dir>/bnc/settings.yaml.
func DefaultSettingsPath() (string, error) {
	if p := os.Getenv(SettingsEnv); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AppDirName, SettingsFileName), nil
}

// DefaultStateDir returns $BNC_STATE_DIR or <user cache dir>/bnc.
func DefaultStateDir() (string, error) {
	if p := os.Getenv(StateDirEnv); p != "" {
		return p, nil
	}
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AppDirName), nil
}

// StatsDir returns the statistics snapshot directory under stateDir.
func StatsDir(stateDir string) string {
	return filepath.Join(stateDir, StatsDirName)
}
