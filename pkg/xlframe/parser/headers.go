// Package parser implements the header resolution and row normalization
// engine: collapsing one or more raw header rows into a single set of
// unique column names, and aligning ragged data rows to that width.
package parser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/sheetkit/xlframe/pkg/xlframe/models"
)

// placeholderPattern matches auto-generated column names so a header row
// that already contains one (e.g. from a prior export) does not leak it
// into a merged label.
var placeholderPattern = regexp.MustCompile(`^Unnamed_[0-9]+$`)

// placeholder returns the generated name for an unnamed column.
func placeholder(col int) string {
	return fmt.Sprintf("Unnamed_%d", col)
}

// CollapseHeaders merges the designated header rows into one label per
// column. The column count is taken from the first designated row. For each
// column the contributing cells are stringified, trimmed, filtered of blanks
// and prior placeholders, and joined with a single space in header-row
// order; columns left with nothing get an Unnamed_<col> placeholder.
//
// Header rows shorter than the column count contribute empty cells for the
// missing positions. Every index must lie within the source's row count.
func CollapseHeaders(src models.RowSource, headerRows []int) ([]string, error) {
	if len(headerRows) == 0 {
		return nil, models.ErrNoHeaderRows
	}
	seen := make(map[int]bool, len(headerRows))
	for _, idx := range headerRows {
		if seen[idx] {
			return nil, fmt.Errorf("%w: %d", models.ErrDuplicateHeaderRow, idx)
		}
		seen[idx] = true
		if idx < 0 || idx >= src.RowCount() {
			return nil, &models.RowOutOfBoundsError{Index: idx, RowCount: src.RowCount()}
		}
	}

	cols := len(src.Row(headerRows[0]))
	if cols == 0 {
		return nil, fmt.Errorf("%w: row %d", models.ErrEmptyHeaderRow, headerRows[0])
	}

	labels := make([]string, cols)
	for c := 0; c < cols; c++ {
		var parts []string
		for _, idx := range headerRows {
			row := src.Row(idx)
			var cell models.Cell
			if c < len(row) {
				cell = row[c]
			}
			label := strings.TrimSpace(cell.String())
			if label == "" || placeholderPattern.MatchString(label) {
				continue
			}
			parts = append(parts, label)
		}
		if len(parts) == 0 {
			labels[c] = placeholder(c)
		} else {
			labels[c] = strings.Join(parts, " ")
		}
	}
	return labels, nil
}

// UniquifyHeaders resolves blank and duplicate labels into unique,
// non-empty column names. Order is preserved. A blank label's base name is
// Unnamed_<position>; a name already taken gets a numeric suffix starting
// at _1, checked against the names used so far, so a label colliding with a
// later auto-generated name still resolves deterministically.
func UniquifyHeaders(labels []string) []string {
	used := make(map[string]bool, len(labels))
	out := make([]string, 0, len(labels))
	for i, label := range labels {
		base := strings.TrimSpace(label)
		if base == "" {
			base = placeholder(i)
		}
		candidate := base
		for suffix := 1; used[candidate]; suffix++ {
			candidate = fmt.Sprintf("%s_%d", base, suffix)
		}
		used[candidate] = true
		out = append(out, candidate)
	}
	return out
}
