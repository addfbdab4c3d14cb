package domain

// PurgeResult is the successful result of a purge call.
type PurgeResult uint8

const (
	// ResultPurged means the cache tree was removed and recreated.
	ResultPurged PurgeResult = iota + 1
	// ResultSkipped means no I/O was performed.
	ResultSkipped
)

func (r PurgeResult) String() string {
	switch r {
	case ResultPurged:
		return "purged"
	case ResultSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// SkipReason explains a Skipped result.
type SkipReason string

const (
	// SkipAlreadyPurged means the gate was already Done.
	SkipAlreadyPurged SkipReason = "already-purged"
	// SkipDeclined means the attempt gate declined the purge.
	SkipDeclined SkipReason = "declined"
)

// PurgeOutcome is returned by the executor when no error occurred.
type PurgeOutcome struct {
	Result PurgeResult
	Path   string
	Reason SkipReason
}

// Purged returns an outcome for a completed purge of path.
func Purged(path string) PurgeOutcome {
	return PurgeOutcome{Result: ResultPurged, Path: path}
}

// Skipped returns an outcome for a purge that performed no I/O.
func Skipped(path string, reason SkipReason) PurgeOutcome {
	return PurgeOutcome{Result: ResultSkipped, Path: path, Reason: reason}
}
