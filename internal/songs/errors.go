package songs

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the song file does not exist.
var ErrFileNotFound = errors.New("song file not found")

// Reasons reported by MalformedRecordError.
const (
	ReasonFieldCount       = "expected 3 fields separated by ';'"
	ReasonDuplicateComment = "duplicate comment"
)

// MalformedRecordError describes a line of the song file that could not be
// turned into a record. The line is skipped; loading continues.
type MalformedRecordError struct {
	Line   int    // 1-based line number
	Text   string // raw line content
	Reason string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Reason, e.Text)
}
