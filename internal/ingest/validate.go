package ingest

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/tmcampos/spendlane/internal/encoding"
)

const (
	// maxFileSize is the upload ceiling (50 MiB).
	maxFileSize = 50 << 20

	// sniffLength bounds how much of the file the pre-flight checks read.
	sniffLength = 64 << 10
)

// ValidateFile runs the pre-flight checks on an upload: extension, size,
// a binary-content sniff and a decodability check on a bounded prefix.
// The stream position is restored, so the caller can parse from the start.
// Any failure aborts the whole batch before a single row is parsed.
func ValidateFile(name string, size int64, r io.ReadSeeker) error {
	if !strings.EqualFold(filepath.Ext(name), ".csv") {
		return &FileFormatError{Reason: "only .csv files are accepted"}
	}

	if size > maxFileSize {
		return &FileFormatError{Reason: fmt.Sprintf("file exceeds the %d MiB limit", maxFileSize>>20)}
	}

	prefix := make([]byte, sniffLength)

	n, err := io.ReadFull(r, prefix)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return fmt.Errorf("reading file prefix: %w", err)
	}

	prefix = prefix[:n]

	if _, seekErr := r.Seek(0, io.SeekStart); seekErr != nil {
		return fmt.Errorf("rewinding file: %w", seekErr)
	}

	if bytes.IndexByte(prefix, 0x00) >= 0 {
		return &FileFormatError{Reason: "file appears to be binary, not CSV"}
	}

	if _, decErr := encoding.DecodePrefix(prefix); decErr != nil {
		return &FileFormatError{Reason: "file encoding is not supported"}
	}

	return nil
}
