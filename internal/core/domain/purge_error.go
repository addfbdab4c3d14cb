package domain

// FailureKind classifies why a purge did not complete.
type FailureKind uint8

const (
	// FailureUnconfigured means the cache path is empty.
	FailureUnconfigured FailureKind = iota + 1
	// FailureFilesystemUnavailable means no filesystem capability is available.
	FailureFilesystemUnavailable
	// FailurePathNotFound means the cache path does not exist.
	FailurePathNotFound
	// FailureNotADirectory means the cache path exists but is not a directory.
	FailureNotADirectory
	// FailureNotWritable means the cache path cannot be written to.
	FailureNotWritable
	// FailureNotACacheDirectory means the validator rejected the directory contents.
	FailureNotACacheDirectory
	// FailureRemoveFailed means the recursive removal failed part way.
	FailureRemoveFailed
	// FailureRecreateFailed means the cache root could not be recreated.
	FailureRecreateFailed
)

var failureSentinels = map[FailureKind]error{
	FailureUnconfigured:          ErrUnconfigured,
	FailureFilesystemUnavailable: ErrFilesystemUnavailable,
	FailurePathNotFound:          ErrPathNotFound,
	FailureNotADirectory:         ErrNotADirectory,
	FailureNotWritable:           ErrNotWritable,
	FailureNotACacheDirectory:    ErrNotACacheDirectory,
	FailureRemoveFailed:          ErrRemoveFailed,
	FailureRecreateFailed:        ErrRecreateFailed,
}

var failureNames = map[FailureKind]string{
	FailureUnconfigured:          "unconfigured",
	FailureFilesystemUnavailable: "filesystem-unavailable",
	FailurePathNotFound:          "path-not-found",
	FailureNotADirectory:         "not-a-directory",
	FailureNotWritable:           "not-writable",
	FailureNotACacheDirectory:    "not-a-cache-directory",
	FailureRemoveFailed:          "remove-failed",
	FailureRecreateFailed:        "recreate-failed",
}

// String returns a stable identifier suitable for logs and metric labels.
func (k FailureKind) String() string {
	if name, ok := failureNames[k]; ok {
		return name
	}
	return "unknown"
}

// Sentinel returns the zerr sentinel that describes the kind.
func (k FailureKind) Sentinel() error {
	return failureSentinels[k]
}

// Destructive reports whether the failure happened after the cache tree was touched.
func (k FailureKind) Destructive() bool {
	return k == FailureRemoveFailed || k == FailureRecreateFailed
}

// PurgeError is returned by the purge executor. It matches the kind's sentinel
// with errors.Is so callers can branch without inspecting messages.
type PurgeError struct {
	Kind FailureKind
	Path string
	Err  error
}

// NewPurgeError creates a PurgeError for the given kind and path.
func NewPurgeError(kind FailureKind, path string, cause error) *PurgeError {
	return &PurgeError{Kind: kind, Path: path, Err: cause}
}

// Message returns the operator notice without the cause chain.
func (e *PurgeError) Message() string {
	if s := e.Kind.Sentinel(); s != nil {
		return s.Error()
	}
	return "purge failed"
}

func (e *PurgeError) Error() string {
	if e.Err == nil {
		return e.Message()
	}
	return e.Message() + ": " + e.Err.Error()
}

// Unwrap returns the underlying cause.
func (e *PurgeError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel associated with the error kind.
func (e *PurgeError) Is(target error) bool {
	s := e.Kind.Sentinel()
	return s != nil && target == s
}

// Metadata exposes the cache path for structured error rendering.
func (e *PurgeError) Metadata() map[string]any {
	if e.Path == "" {
		return map[string]any{}
	}
	return map[string]any{"path": e.Path}
}
