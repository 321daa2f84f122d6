// Package models defines the data contracts shared by the frame engine:
// typed cell values, worksheet row access, frames and error kinds.
package models

import (
	"strconv"
	"time"
)

// CellKind discriminates the value held by a Cell.
type CellKind int

const (
	KindEmpty CellKind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindError
	KindDateTime
)

// Cell is an immutable tagged cell value as produced by a worksheet reader.
// Exactly one of the value fields is meaningful, selected by Kind; error
// cells carry their code (e.g. "#DIV/0!") in Str.
type Cell struct {
	Kind  CellKind
	Bool  bool
	Int   int64
	Float float64
	Str   string
	Time  time.Time
}

func EmptyCell() Cell            { return Cell{Kind: KindEmpty} }
func BoolCell(b bool) Cell       { return Cell{Kind: KindBool, Bool: b} }
func IntCell(i int64) Cell       { return Cell{Kind: KindInt, Int: i} }
func FloatCell(f float64) Cell   { return Cell{Kind: KindFloat, Float: f} }
func StringCell(s string) Cell   { return Cell{Kind: KindString, Str: s} }
func ErrorCell(code string) Cell { return Cell{Kind: KindError, Str: code} }
func TimeCell(t time.Time) Cell  { return Cell{Kind: KindDateTime, Time: t} }

// String returns the canonical textual form of the cell. It is total and
// deterministic: empty cells map to "", booleans to "true"/"false", numbers
// to their shortest round-trip decimal form, and datetimes to RFC 3339.
func (c Cell) String() string {
	switch c.Kind {
	case KindEmpty:
		return ""
	case KindBool:
		return strconv.FormatBool(c.Bool)
	case KindInt:
		return strconv.FormatInt(c.Int, 10)
	case KindFloat:
		return strconv.FormatFloat(c.Float, 'f', -1, 64)
	case KindString, KindError:
		return c.Str
	case KindDateTime:
		return c.Time.Format(time.RFC3339)
	default:
		return ""
	}
}

// IsEmpty reports whether the cell holds no value. A string cell holding ""
// counts as empty for layout purposes.
func (c Cell) IsEmpty() bool {
	return c.Kind == KindEmpty || (c.Kind == KindString && c.Str == "")
}
