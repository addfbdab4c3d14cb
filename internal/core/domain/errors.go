package domain

import "go.trai.ch/zerr"

var (
	// ErrUnconfigured is returned when no cache path has been configured.
	ErrUnconfigured = zerr.New("Cache path is not configured.")

	// ErrFilesystemUnavailable is returned when the filesystem capability could not be initialized.
	ErrFilesystemUnavailable = zerr.New("Could not initialize filesystem.")

	// ErrPathNotFound is returned when the configured cache path does not exist.
	ErrPathNotFound = zerr.New("Cache path does not exist.")

	// ErrNotADirectory is returned when the configured cache path is not a directory.
	ErrNotADirectory = zerr.New("Cache path is not a directory.")

	// ErrNotWritable is returned when the configured cache path cannot be written to.
	ErrNotWritable = zerr.New("Cache path is not writable.")

	// ErrNotACacheDirectory is returned when the directory contents do not look like an Nginx cache.
	ErrNotACacheDirectory = zerr.New("Path does not appear to be a valid Nginx cache directory.")

	// ErrRemoveFailed is returned when the cache tree could not be removed.
	ErrRemoveFailed = zerr.New("failed to remove cache directory")

	// ErrRecreateFailed is returned when the cache root could not be recreated after removal.
	ErrRecreateFailed = zerr.New("failed to recreate cache directory")

	// ErrPathTraversal is returned when a submitted cache path contains a traversal sequence.
	ErrPathTraversal = zerr.New("Invalid path: Directory traversal not allowed.")

	// ErrNoUnitOfWork is returned when an event handler runs outside of a unit of work.
	ErrNoUnitOfWork = zerr.New("no unit of work in context")

	// ErrUnexpectedPayload is returned when an event carries a payload of the wrong type.
	ErrUnexpectedPayload = zerr.New("unexpected event payload")

	// ErrUnknownSetting is returned when a settings key is not recognized.
	ErrUnknownSetting = zerr.New("unknown setting")

	// ErrInvalidSettingValue is returned when a settings value cannot be parsed for its key.
	ErrInvalidSettingValue = zerr.New("invalid setting value")

	// ErrSettingsReadFailed is returned when the settings file cannot be read.
	ErrSettingsReadFailed = zerr.New("failed to read settings")

	// ErrSettingsWriteFailed is returned when the settings file cannot be written.
	ErrSettingsWriteFailed = zerr.New("failed to write settings")

	// ErrSettingsLocked is returned when the settings lock could not be acquired.
	ErrSettingsLocked = zerr.New("settings file is locked by another process")

	// ErrStatsReadFailed is returned when a statistics snapshot cannot be read.
	ErrStatsReadFailed = zerr.New("failed to read statistics snapshot")

	// ErrStatsWriteFailed is returned when a statistics snapshot cannot be written.
	ErrStatsWriteFailed = zerr.New("failed to write statistics snapshot")

	// ErrSpoolReadFailed is returned when an event batch file cannot be read.
	ErrSpoolReadFailed = zerr.New("failed to read event batch")

	// ErrSpoolDecodeFailed is returned when an event batch cannot be decoded.
	ErrSpoolDecodeFailed = zerr.New("failed to decode event batch")

	// ErrInvalidEvent is returned when an event in a batch fails validation.
	ErrInvalidEvent = zerr.New("invalid event")

	// ErrWatchLocked is returned when another process is already watching the spool directory.
	ErrWatchLocked = zerr.New("spool directory is already being watched")

	// ErrMetricsWriteFailed is returned when the metrics textfile cannot be written.
	ErrMetricsWriteFailed = zerr.New("failed to write metrics textfile")

	// ErrDispatchFailed is returned when at least one event in a unit of work failed.
	ErrDispatchFailed = zerr.New("one or more events failed")
)
