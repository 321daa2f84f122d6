// Package output serializes frames for the CLI: JSON, CSV and an aligned
// text table.
package output

import (
	"encoding/json"

	"github.com/sheetkit/xlframe/pkg/xlframe/models"
)

// frameJSON is the wire shape of a serialized frame: headers in column
// order plus row-major data, so column order survives the round trip.
type frameJSON struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// JSON serializes the frame as headers plus row-major rows.
func JSON(f *models.Frame, pretty bool) ([]byte, error) {
	doc := frameJSON{
		Headers: f.Headers(),
		Rows:    make([][]string, f.NumRows()),
	}
	for i := 0; i < f.NumRows(); i++ {
		doc.Rows[i] = f.Row(i)
	}
	if pretty {
		return json.MarshalIndent(doc, "", "  ")
	}
	return json.Marshal(doc)
}
