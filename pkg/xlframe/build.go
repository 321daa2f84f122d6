package xlframe

import (
	"github.com/sheetkit/xlframe/pkg/xlframe/models"
	"github.com/sheetkit/xlframe/pkg/xlframe/parser"
)

// BuildFrame resolves the header region of src into unique column names and
// assembles every following row into a column-oriented Frame. Rows narrower
// or wider than the header are silently padded or truncated; configuration
// problems (no header rows, duplicate or out-of-range indices, an empty
// header row) are returned as typed errors from the models package.
func BuildFrame(src models.RowSource, opts Options) (*models.Frame, error) {
	labels, err := parser.CollapseHeaders(src, opts.HeaderRows)
	if err != nil {
		return nil, err
	}
	headers := parser.UniquifyHeaders(labels)

	var rows [][]string
	for i := opts.EffectiveDataStart(); i < src.RowCount(); i++ {
		rows = append(rows, parser.NormalizeRow(src.Row(i), len(headers)))
	}

	return models.NewFrame(headers, rows, opts.Workers)
}
