package domain

// EntryKind is the type of a node in a cache directory listing.
type EntryKind uint8

const (
	// EntryFile is a regular file.
	EntryFile EntryKind = iota
	// EntryDirectory is a directory; its Children are populated.
	EntryDirectory
	// EntryOther is anything else, such as a symlink or a device. It is never followed.
	EntryOther
)

// ListingEntry is one node of a CacheDirectoryListing.
type ListingEntry struct {
	Name     string
	Kind     EntryKind
	Size     int64
	Children CacheDirectoryListing
	// Truncated marks a directory at the depth limit whose children were not listed.
	Truncated bool
}

// CacheDirectoryListing is a recursive snapshot of a directory, built fresh per call.
type CacheDirectoryListing []ListingEntry
