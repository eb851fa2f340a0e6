package tsv

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingHeader is returned when an export has no column header line.
	ErrMissingHeader = errors.New("no column header found (empty file?)")

	// ErrMissingMarker is returned when the second line of an export is not
	// an RPFM table marker.
	ErrMissingMarker = errors.New("missing table marker (not an RPFM tsv export?)")
)

// RowError reports a record whose field count does not match the header.
type RowError struct {
	Line    int // 1-based line number within the file
	Fields  int // fields found on the line
	Columns int // columns declared by the header
}

func (e *RowError) Error() string {
	return fmt.Sprintf("line %d has %d fields, expected %d", e.Line, e.Fields, e.Columns)
}
