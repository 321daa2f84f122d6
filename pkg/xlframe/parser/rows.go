package parser

import (
	"github.com/sheetkit/xlframe/pkg/xlframe/models"
)

// NormalizeRow stringifies a data row and aligns it to exactly width cells:
// short rows are padded with empty strings, excess cells beyond width are
// dropped. Ragged rows are tolerated by design, never an error.
func NormalizeRow(cells []models.Cell, width int) []string {
	out := make([]string, width)
	for i := 0; i < width && i < len(cells); i++ {
		out[i] = cells[i].String()
	}
	return out
}
