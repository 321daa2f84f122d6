package models

// RowSource provides random access to the rows of a single worksheet.
// Indices are zero-based. Rows are not guaranteed rectangular: each row may
// have a different width, and implementations may return nil for rows with
// no cells.
type RowSource interface {
	// RowCount returns the number of rows in the worksheet.
	RowCount() int
	// Row returns the cells of the row at index, left to right.
	Row(index int) []Cell
}

// SliceSource is an in-memory RowSource backed by a row-major cell slice.
type SliceSource [][]Cell

func (s SliceSource) RowCount() int { return len(s) }

func (s SliceSource) Row(index int) []Cell {
	if index < 0 || index >= len(s) {
		return nil
	}
	return s[index]
}

// StringsSource builds a SliceSource from string rows. Every value becomes a
// string cell; convenient for tests and CSV-shaped input.
func StringsSource(rows [][]string) SliceSource {
	src := make(SliceSource, len(rows))
	for i, row := range rows {
		cells := make([]Cell, len(row))
		for j, v := range row {
			cells[j] = StringCell(v)
		}
		src[i] = cells
	}
	return src
}
