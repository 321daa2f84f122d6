package models

import (
	"golang.org/x/sync/errgroup"
)

// Frame is a column-oriented table: every header names a column of equal
// length. Frames are constructed once and immutable afterwards.
type Frame struct {
	headers []string
	columns [][]string
	numRows int
}

// NewFrame assembles a Frame from unique headers and normalized row-major
// data. Every row must have exactly len(headers) cells; a shorter or longer
// row yields a ShapeMismatchError. Column projection runs on a bounded pool
// of workers when workers > 1, writing each column to its index-assigned
// slot so column order always matches header order.
func NewFrame(headers []string, rows [][]string, workers int) (*Frame, error) {
	width := len(headers)
	for i, row := range rows {
		if len(row) != width {
			return nil, &ShapeMismatchError{RowIndex: i, Want: width, Got: len(row)}
		}
	}

	columns := make([][]string, width)
	project := func(col int) {
		values := make([]string, len(rows))
		for r, row := range rows {
			values[r] = row[col]
		}
		columns[col] = values
	}

	if workers > 1 && width > 1 {
		var g errgroup.Group
		g.SetLimit(workers)
		for col := 0; col < width; col++ {
			col := col
			g.Go(func() error {
				project(col)
				return nil
			})
		}
		// No task returns an error; Wait only fences completion.
		_ = g.Wait()
	} else {
		for col := 0; col < width; col++ {
			project(col)
		}
	}

	return &Frame{
		headers: append([]string(nil), headers...),
		columns: columns,
		numRows: len(rows),
	}, nil
}

// Headers returns the column names in column order.
func (f *Frame) Headers() []string { return f.headers }

// NumRows returns the number of data rows.
func (f *Frame) NumRows() int { return f.numRows }

// NumCols returns the number of columns.
func (f *Frame) NumCols() int { return len(f.headers) }

// Column returns the values of the column at index, or nil if out of range.
func (f *Frame) Column(index int) []string {
	if index < 0 || index >= len(f.columns) {
		return nil
	}
	return f.columns[index]
}

// ColumnByName returns the values of the named column. Header names are
// unique, so at most one column matches.
func (f *Frame) ColumnByName(name string) ([]string, bool) {
	for i, h := range f.headers {
		if h == name {
			return f.columns[i], true
		}
	}
	return nil, false
}

// Cell returns the value at (row, col), or "" if out of range.
func (f *Frame) Cell(row, col int) string {
	if col < 0 || col >= len(f.columns) || row < 0 || row >= f.numRows {
		return ""
	}
	return f.columns[col][row]
}

// Row materializes the row at index in column order.
func (f *Frame) Row(index int) []string {
	if index < 0 || index >= f.numRows {
		return nil
	}
	row := make([]string, len(f.columns))
	for c := range f.columns {
		row[c] = f.columns[c][index]
	}
	return row
}
