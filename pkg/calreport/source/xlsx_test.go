package source

import (
	"bytes"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestReadXLSX(t *testing.T) {
	// Create a temporary Excel file for testing
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "Zero Cell Volume Header")
	f.SetCellValue(sheetName, "D1", "Volume Calibration Header")
	f.SetCellValue(sheetName, "A3", 1)
	f.SetCellValue(sheetName, "B3", 12.4501)
	f.SetCellValue(sheetName, "C3", "0.0012")

	tmpFile := filepath.Join(t.TempDir(), "report.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	rows, err := ReadXLSXFile(tmpFile, "")
	if err != nil {
		t.Fatalf("ReadXLSXFile failed: %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(rows))
	}

	expectedFirst := []string{"Zero Cell Volume Header", "", "", "Volume Calibration Header"}
	if !reflect.DeepEqual(rows[0].Cells, expectedFirst) {
		t.Errorf("row 1 cells = %q, expected %q", rows[0].Cells, expectedFirst)
	}
	if rows[0].Number != 1 || rows[2].Number != 3 {
		t.Errorf("row numbers = %d, %d, expected 1, 3", rows[0].Number, rows[2].Number)
	}

	if !rows[1].IsBlank() {
		t.Errorf("row 2 should be blank, got %q", rows[1].Cells)
	}

	expectedThird := []string{"1", "12.4501", "0.0012", ""}
	if !reflect.DeepEqual(rows[2].Cells, expectedThird) {
		t.Errorf("row 3 cells = %q, expected %q", rows[2].Cells, expectedThird)
	}
}

func TestReadXLSXNamedSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	if _, err := f.NewSheet("Report"); err != nil {
		t.Fatalf("NewSheet failed: %v", err)
	}
	f.SetCellValue("Report", "A1", "Chamber Insert: R1")

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	rows, err := ReadXLSXReader(&buf, "Report")
	if err != nil {
		t.Fatalf("ReadXLSXReader failed: %v", err)
	}
	if len(rows) != 1 || rows[0].Cells[0] != "Chamber Insert: R1" {
		t.Errorf("rows = %+v", rows)
	}

	f2 := excelize.NewFile()
	defer f2.Close()
	if _, err := ReadXLSX(f2, "Missing"); err == nil {
		t.Error("expected error for missing sheet")
	}
}

func TestFindDataBounds(t *testing.T) {
	tests := []struct {
		rows                           [][]string
		minRow, maxRow, minCol, maxCol int
	}{
		{nil, -1, -1, -1, -1},
		{[][]string{{"", ""}, {}}, -1, -1, -1, -1},
		{[][]string{{"a"}}, 0, 0, 0, 0},
		{[][]string{{}, {"", "b"}, {"c", "", "", "d"}}, 1, 2, 0, 3},
	}

	for _, tt := range tests {
		minRow, maxRow, minCol, maxCol := findDataBounds(tt.rows)
		if minRow != tt.minRow || maxRow != tt.maxRow || minCol != tt.minCol || maxCol != tt.maxCol {
			t.Errorf("findDataBounds(%q) = %d,%d,%d,%d, expected %d,%d,%d,%d",
				tt.rows, minRow, maxRow, minCol, maxCol, tt.minRow, tt.maxRow, tt.minCol, tt.maxCol)
		}
	}
}
