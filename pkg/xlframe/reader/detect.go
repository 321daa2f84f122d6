package reader

import (
	"fmt"

	"github.com/sheetkit/xlframe/pkg/xlframe/models"
	"github.com/xuri/excelize/v2"
)

// DetectParams holds parameters for table-candidate detection.
type DetectParams struct {
	DensityMin       float64
	MinNonEmptyCells int
}

// DefaultDetectParams returns default detection parameters.
func DefaultDetectParams() DetectParams {
	return DetectParams{
		DensityMin:       0.04,
		MinNonEmptyCells: 3,
	}
}

// TableRange is the bounding box of a detected table candidate, zero-based
// and inclusive.
type TableRange struct {
	MinRow, MaxRow int
	MinCol, MaxCol int
	Density        float64
}

// String renders the range in A1 notation (e.g. "A1:D10").
func (t TableRange) String() string {
	start, _ := excelize.CoordinatesToCellName(t.MinCol+1, t.MinRow+1)
	end, _ := excelize.CoordinatesToCellName(t.MaxCol+1, t.MaxRow+1)
	return fmt.Sprintf("%s:%s", start, end)
}

// DetectTableRange finds the bounding box of non-empty cells in src and
// reports it as a table candidate when it is dense enough. Returns false
// when the sheet is empty or too sparse to look like a table.
func DetectTableRange(src models.RowSource, params DetectParams) (TableRange, bool) {
	minRow, maxRow, minCol, maxCol := dataBounds(src)
	if minRow < 0 {
		return TableRange{}, false
	}

	nonEmpty := countNonEmpty(src, minRow, maxRow, minCol, maxCol)
	if nonEmpty < params.MinNonEmptyCells {
		return TableRange{}, false
	}

	total := (maxRow - minRow + 1) * (maxCol - minCol + 1)
	density := float64(nonEmpty) / float64(total)
	if density < params.DensityMin {
		return TableRange{}, false
	}

	return TableRange{
		MinRow: minRow, MaxRow: maxRow,
		MinCol: minCol, MaxCol: maxCol,
		Density: density,
	}, true
}

// dataBounds finds the bounding box of non-empty cells. All coordinates are
// -1 when the sheet has no content.
func dataBounds(src models.RowSource) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for r := 0; r < src.RowCount(); r++ {
		for c, cell := range src.Row(r) {
			if cell.IsEmpty() {
				continue
			}
			if minRow < 0 || r < minRow {
				minRow = r
			}
			if r > maxRow {
				maxRow = r
			}
			if minCol < 0 || c < minCol {
				minCol = c
			}
			if c > maxCol {
				maxCol = c
			}
		}
	}
	return
}

// countNonEmpty counts non-empty cells within the bounds.
func countNonEmpty(src models.RowSource, minRow, maxRow, minCol, maxCol int) int {
	count := 0
	for r := minRow; r <= maxRow && r < src.RowCount(); r++ {
		row := src.Row(r)
		for c := minCol; c <= maxCol && c < len(row); c++ {
			if !row[c].IsEmpty() {
				count++
			}
		}
	}
	return count
}
