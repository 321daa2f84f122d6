package models

import (
	"errors"
	"fmt"
)

// ErrNoHeaderRows indicates an empty header-row index set.
var ErrNoHeaderRows = errors.New("no header rows configured")

// ErrDuplicateHeaderRow indicates a header-row index listed more than once.
var ErrDuplicateHeaderRow = errors.New("duplicate header row index")

// ErrEmptyHeaderRow indicates the first designated header row has no cells,
// so the column count cannot be established.
var ErrEmptyHeaderRow = errors.New("header row has no cells")

// RowOutOfBoundsError indicates a requested header-row index beyond the
// worksheet's row count.
type RowOutOfBoundsError struct {
	Index    int
	RowCount int
}

func (e *RowOutOfBoundsError) Error() string {
	return fmt.Sprintf("header row index %d out of bounds: worksheet has %d rows", e.Index, e.RowCount)
}

// ShapeMismatchError indicates a data row whose width differs from the header
// width during frame assembly. Rows are normalized before assembly, so this
// signals a bug in the caller, not bad input.
type ShapeMismatchError struct {
	RowIndex int
	Want     int
	Got      int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("row %d has %d cells, frame expects %d", e.RowIndex, e.Got, e.Want)
}
