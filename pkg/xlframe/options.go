// Package xlframe builds rectangular, uniquely-named frames from worksheet
// rows: one or more header rows collapse into stable column names, and
// ragged data rows are aligned to the resulting width.
package xlframe

// Options configures frame building.
type Options struct {
	// HeaderRows lists the worksheet row indices (zero-based, in merge
	// order) that contribute to column naming.
	HeaderRows []int
	// DataStart overrides the first data row index.
	// If nil, data starts on the row after the last header row.
	DataStart *int
	// Workers bounds the column projection pool. Values below 2 keep
	// assembly sequential.
	Workers int
}

// DefaultOptions returns options for the common single-header-row layout.
func DefaultOptions() Options {
	return Options{
		HeaderRows: []int{0},
		Workers:    1,
	}
}

// EffectiveDataStart returns the first data row index: the override when
// set, otherwise the row after the highest header row.
func (o Options) EffectiveDataStart() int {
	if o.DataStart != nil {
		return *o.DataStart
	}
	start := 0
	for _, idx := range o.HeaderRows {
		if idx >= start {
			start = idx + 1
		}
	}
	return start
}
