package ingest

import (
	"fmt"
	"strings"
)

// FileFormatError rejects the upload before any row is read: wrong
// extension, oversized, binary content, or an undecodable encoding.
type FileFormatError struct {
	Reason string
}

func (e *FileFormatError) Error() string {
	return "invalid file: " + e.Reason
}

// SchemaError rejects the upload when required columns are absent.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return "missing required columns: " + strings.Join(e.Missing, ", ")
}

// RowCountLimitError rejects the upload when it exceeds the row cap.
type RowCountLimitError struct {
	Count int
	Limit int
}

func (e *RowCountLimitError) Error() string {
	return fmt.Sprintf("file has %d rows, the maximum is %d", e.Count, e.Limit)
}

// maxErrorLength bounds any single stored error message.
const maxErrorLength = 500

// sensitiveMarkers flag diagnostics that must never reach an uploader:
// database driver output, file-system paths, panic traces.
var sensitiveMarkers = []string{
	"SQLSTATE",
	"pq: ",
	"pgx",
	"duplicate key value",
	"violates",
	"goroutine ",
	"panic:",
	"runtime error",
	".go:",
	"/var/",
	"/tmp/",
	"/home/",
	"C:\\",
}

// SanitizeError redacts storage-engine diagnostics, paths and stack traces
// wholesale, and truncates anything else to a fixed length. Full detail only
// ever goes to the operator log, never into a stored batch.
func SanitizeError(message string) string {
	for _, marker := range sensitiveMarkers {
		if strings.Contains(message, marker) {
			return "internal error while processing this row"
		}
	}

	if len(message) > maxErrorLength {
		return message[:maxErrorLength]
	}

	return message
}
