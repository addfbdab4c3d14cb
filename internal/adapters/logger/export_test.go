package logger

// FormatError exposes the pretty error rendering for tests.
func FormatError(err error) string {
	return formatErrorEntries(collectErrorEntries(err))
}
