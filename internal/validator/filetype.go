package validator

import (
	"bytes"
	"fmt"
	"io"

	"countervalidator/pkg/serrors"

	"github.com/gabriel-vasile/mimetype"
)

// File types used as keys of the size limits.
const (
	FileTypeJSON    = "json"
	FileTypeXLSX    = "xlsx"
	FileTypeCSV     = "csv"
	FileTypeDefault = "default"
)

const sniffLen = 16384

// DetectFileType guesses the report type from the beginning of a file.
func DetectFileType(head []byte) string {
	mime := mimetype.Detect(head)
	switch {
	case mime.Is("application/json"):
		return FileTypeJSON
	case mime.Is("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"):
		return FileTypeXLSX
	case mime.Is("text/csv"), mime.Is("text/tab-separated-values"):
		return FileTypeCSV
	case mime.Is("text/plain"):
		return guessPlainText(head)
	default:
		return FileTypeDefault
	}
}

// guessPlainText handles truncated JSON and CSV that the sniffer reports as plain text.
func guessPlainText(head []byte) string {
	lines := bytes.Count(head, []byte("\n")) + 1
	switch {
	case bytes.Count(head, []byte("{")) > 4:
		return FileTypeJSON
	case bytes.Count(head, []byte(",")) >= lines:
		return FileTypeCSV
	case bytes.Count(head, []byte("\t")) >= lines:
		return FileTypeCSV
	default:
		return FileTypeDefault
	}
}

// sniff reads the head of r and rewinds it.
func sniff(r io.ReadSeeker) ([]byte, error) {
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(r, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, fmt.Errorf("could not read file: %w", err)
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("could not rewind file: %w", err)
	}

	return head[:n], nil
}

func checkFileSize(limits map[string]int64, fileType string, size int64) error {
	limit, ok := limits[fileType]
	if !ok {
		limit = limits[FileTypeDefault]
	}
	if limit > 0 && size > limit {
		return serrors.NewFieldError().
			Add("file", fmt.Sprintf("Max file size for type '%s' exceeded: %d > %d bytes", fileType, size, limit)).
			Err()
	}

	return nil
}
