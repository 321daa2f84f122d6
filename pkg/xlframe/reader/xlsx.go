// Package reader loads worksheets from xlsx workbooks and exposes them as
// typed row sources for the frame engine.
package reader

import (
	"fmt"
	"strconv"
	"time"

	"github.com/sheetkit/xlframe/pkg/xlframe/models"
	"github.com/xuri/excelize/v2"
)

// Sheet is a fully loaded worksheet. It implements models.RowSource.
type Sheet struct {
	// Name is the worksheet name the sheet was loaded from.
	Name string
	rows [][]models.Cell
}

// Open loads one worksheet from the workbook at path. An empty sheetName
// selects the workbook's first sheet.
func Open(path, sheetName string) (*Sheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	if sheetName == "" {
		list := f.GetSheetList()
		if len(list) == 0 {
			return nil, fmt.Errorf("workbook %s has no sheets", path)
		}
		sheetName = list[0]
	}

	raw, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheetName, err)
	}

	rows := make([][]models.Cell, len(raw))
	for i, r := range raw {
		cells := make([]models.Cell, len(r))
		for j, v := range r {
			cells[j] = parseCell(v)
		}
		rows[i] = cells
	}

	return &Sheet{Name: sheetName, rows: rows}, nil
}

func (s *Sheet) RowCount() int { return len(s.rows) }

func (s *Sheet) Row(index int) []models.Cell {
	if index < 0 || index >= len(s.rows) {
		return nil
	}
	return s.rows[index]
}

// SheetInfo summarizes one worksheet of a workbook.
type SheetInfo struct {
	Name string
	Rows int
}

// ListSheets returns the workbook's sheets in workbook order with their row
// counts.
func ListSheets(path string) ([]SheetInfo, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	var infos []SheetInfo
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("read sheet %q: %w", name, err)
		}
		infos = append(infos, SheetInfo{Name: name, Rows: len(rows)})
	}
	return infos, nil
}

// errorCodes are the cell error markers excelize renders as text.
var errorCodes = map[string]bool{
	"#DIV/0!": true,
	"#N/A":    true,
	"#NAME?":  true,
	"#NULL!":  true,
	"#NUM!":   true,
	"#REF!":   true,
	"#VALUE!": true,
}

// dateLayouts are tried in order when re-typing a cell string as a datetime.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01-02-06",
}

// parseCell re-types a formatted cell string from excelize as a tagged cell
// value: integer first, then float, boolean, error code, datetime, falling
// back to a plain string.
func parseCell(s string) models.Cell {
	if s == "" {
		return models.EmptyCell()
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return models.IntCell(i)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return models.FloatCell(f)
	}
	switch s {
	case "TRUE":
		return models.BoolCell(true)
	case "FALSE":
		return models.BoolCell(false)
	}
	if errorCodes[s] {
		return models.ErrorCell(s)
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return models.TimeCell(t)
		}
	}
	return models.StringCell(s)
}
