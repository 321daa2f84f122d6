package reader

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/sheetkit/xlframe/pkg/xlframe/models"
)

func writeTestWorkbook(t *testing.T) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Sheet1"
	f.SetCellValue(sheet, "A1", "Header1")
	f.SetCellValue(sheet, "B1", "Header2")
	f.SetCellValue(sheet, "A2", 100)
	f.SetCellValue(sheet, "B2", 200.5)
	f.SetCellValue(sheet, "A3", "Text")

	if _, err := f.NewSheet("Data"); err != nil {
		t.Fatalf("Failed to add sheet: %v", err)
	}
	f.SetCellValue("Data", "A1", "other")

	path := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
	return path
}

func TestOpen(t *testing.T) {
	path := writeTestWorkbook(t)

	sheet, err := Open(path, "Sheet1")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	if sheet.RowCount() != 3 {
		t.Errorf("Expected 3 rows, got %d", sheet.RowCount())
	}
	if got := sheet.Row(0)[0]; got.Kind != models.KindString || got.Str != "Header1" {
		t.Errorf("Expected string cell 'Header1', got %+v", got)
	}
	if got := sheet.Row(1)[0]; got.Kind != models.KindInt || got.Int != 100 {
		t.Errorf("Expected int cell 100, got %+v", got)
	}
	if got := sheet.Row(1)[1]; got.Kind != models.KindFloat || got.Float != 200.5 {
		t.Errorf("Expected float cell 200.5, got %+v", got)
	}
}

func TestOpenDefaultsToFirstSheet(t *testing.T) {
	path := writeTestWorkbook(t)

	sheet, err := Open(path, "")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if sheet.Name != "Sheet1" {
		t.Errorf("Expected first sheet 'Sheet1', got %q", sheet.Name)
	}
}

func TestOpenMissingSheet(t *testing.T) {
	path := writeTestWorkbook(t)

	if _, err := Open(path, "Missing"); err == nil {
		t.Error("Expected error for missing sheet")
	}
}

func TestOpenMissingFile(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "nope.xlsx"), ""); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestListSheets(t *testing.T) {
	path := writeTestWorkbook(t)

	infos, err := ListSheets(path)
	if err != nil {
		t.Fatalf("ListSheets failed: %v", err)
	}
	if len(infos) != 2 {
		t.Fatalf("Expected 2 sheets, got %d", len(infos))
	}
	if infos[0].Name != "Sheet1" || infos[0].Rows != 3 {
		t.Errorf("Expected Sheet1 with 3 rows, got %+v", infos[0])
	}
	if infos[1].Name != "Data" || infos[1].Rows != 1 {
		t.Errorf("Expected Data with 1 row, got %+v", infos[1])
	}
}

func TestParseCell(t *testing.T) {
	tests := []struct {
		input    string
		kind     models.CellKind
		expected string
	}{
		{"", models.KindEmpty, ""},
		{"123", models.KindInt, "123"},
		{"-100", models.KindInt, "-100"},
		{"123.45", models.KindFloat, "123.45"},
		{"TRUE", models.KindBool, "true"},
		{"FALSE", models.KindBool, "false"},
		{"#REF!", models.KindError, "#REF!"},
		{"#N/A", models.KindError, "#N/A"},
		{"2024-05-01", models.KindDateTime, "2024-05-01T00:00:00Z"},
		{"hello", models.KindString, "hello"},
		{"true", models.KindString, "true"},
	}

	for _, tt := range tests {
		got := parseCell(tt.input)
		if got.Kind != tt.kind {
			t.Errorf("parseCell(%q).Kind = %v, expected %v", tt.input, got.Kind, tt.kind)
		}
		if got.String() != tt.expected {
			t.Errorf("parseCell(%q).String() = %q, expected %q", tt.input, got.String(), tt.expected)
		}
	}
}
