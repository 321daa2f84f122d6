package output

import (
	"encoding/csv"
	"io"

	"github.com/sheetkit/xlframe/pkg/xlframe/models"
)

// WriteCSV writes the frame as CSV: a header record followed by one record
// per data row.
func WriteCSV(w io.Writer, f *models.Frame) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(f.Headers()); err != nil {
		return err
	}
	for i := 0; i < f.NumRows(); i++ {
		if err := cw.Write(f.Row(i)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
