package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/sheetkit/xlframe/pkg/xlframe/models"
)

// WriteTable writes an aligned text rendering of the frame's first maxRows
// rows (all rows when maxRows <= 0), followed by a shape line.
func WriteTable(w io.Writer, f *models.Frame, maxRows int) error {
	shown := f.NumRows()
	if maxRows > 0 && maxRows < shown {
		shown = maxRows
	}

	widths := make([]int, f.NumCols())
	for c, h := range f.Headers() {
		widths[c] = len(h)
	}
	for r := 0; r < shown; r++ {
		for c, v := range f.Row(r) {
			if len(v) > widths[c] {
				widths[c] = len(v)
			}
		}
	}

	writeRow := func(cells []string) error {
		parts := make([]string, len(cells))
		for c, v := range cells {
			parts[c] = pad(v, widths[c])
		}
		_, err := fmt.Fprintf(w, "| %s |\n", strings.Join(parts, " | "))
		return err
	}

	if err := writeRow(f.Headers()); err != nil {
		return err
	}
	rules := make([]string, f.NumCols())
	for c := range rules {
		rules[c] = strings.Repeat("-", widths[c])
	}
	if err := writeRow(rules); err != nil {
		return err
	}
	for r := 0; r < shown; r++ {
		if err := writeRow(f.Row(r)); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "shape: (%d, %d)\n", f.NumRows(), f.NumCols())
	return err
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
