package source

import (
	"fmt"
	"io"

	"github.com/ukaji3/calreport-go/pkg/calreport/models"
	"github.com/xuri/excelize/v2"
)

// ReadXLSX reads one sheet as rows of stringified cells.
// An empty sheetName selects the first sheet. Every row is padded to the
// sheet's used column width so blank cells keep their positions.
func ReadXLSX(f *excelize.File, sheetName string) ([]models.Row, error) {
	if sheetName == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, ErrNoSheets
		}
		sheetName = sheets[0]
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheetName, err)
	}

	_, _, _, maxCol := findDataBounds(rows)
	width := maxCol + 1

	result := make([]models.Row, 0, len(rows))
	for rowIdx, row := range rows {
		cells := make([]string, width)
		copy(cells, row)
		result = append(result, models.Row{
			Number: rowIdx + 1, // 1-based row index
			Cells:  cells,
		})
	}

	return result, nil
}

// ReadXLSXFile opens an xlsx workbook and reads one sheet.
func ReadXLSXFile(path, sheetName string) ([]models.Row, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadXLSX(f, sheetName)
}

// ReadXLSXReader reads one sheet of an xlsx workbook held in r.
func ReadXLSXReader(r io.Reader, sheetName string) ([]models.Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	return ReadXLSX(f, sheetName)
}
