package output

import (
	"fmt"

	"github.com/ukaji3/calreport-go/pkg/calreport/models"
	"github.com/xuri/excelize/v2"
)

// Sheet names of the exported workbook.
const (
	ZeroCellVolumeSheet    = "Zero Cell Volume"
	VolumeCalibrationSheet = "Volume Calibration"
)

// sheetLayout is the content of one exported sheet.
type sheetLayout struct {
	name     string
	fields   []Field
	header   []string
	cycles   [][]string
	trailing []Field
}

// SaveXLSX writes report to a workbook with one sheet per report.
func SaveXLSX(path string, report *models.CalibrationReport) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create style: %w", err)
	}

	for i, layout := range layouts(report) {
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), layout.name); err != nil {
				return fmt.Errorf("failed to rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(layout.name); err != nil {
			return fmt.Errorf("failed to create sheet %s: %w", layout.name, err)
		}
		if err := writeSheet(f, layout, bold); err != nil {
			return fmt.Errorf("failed to write sheet %s: %w", layout.name, err)
		}
	}

	f.SetActiveSheet(0)
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

func layouts(report *models.CalibrationReport) []sheetLayout {
	z := &report.ZeroCellVolume
	zcv := sheetLayout{
		name:   ZeroCellVolumeSheet,
		fields: ZeroCellVolumeFields(z),
		header: []string{"Cycle#", "Cell Volume (cm³)", "Deviation (cm³)"},
	}
	for _, c := range z.Cycles {
		zcv.cycles = append(zcv.cycles, []string{c.CycleNumber, c.CellVolume, c.Deviation})
	}
	zcv.trailing = append(zcv.trailing, Field{"Average Offset", z.AverageOffset})
	zcv.trailing = append(zcv.trailing, deviationFields(z.StandardDeviations)...)
	zcv.trailing = append(zcv.trailing, Field{"Average Cell Volume", z.AverageCellVolume})

	v := &report.VolumeCalibration
	vc := sheetLayout{
		name:   VolumeCalibrationSheet,
		fields: VolumeCalibrationFields(v),
		header: []string{"Cycle#", "Cell Volume (cm³)", "Deviation (cm³)", "Expansion Volume (cm³)", "Deviation (cm³)"},
	}
	for _, c := range v.Cycles {
		vc.cycles = append(vc.cycles, []string{c.CycleNumber, c.CellVolume, c.Deviation, c.ExpansionVolume, c.ExpansionDeviation})
	}
	vc.trailing = append(vc.trailing, Field{"Average Offset", v.AverageOffset})
	vc.trailing = append(vc.trailing, deviationFields(v.StandardDeviations)...)
	vc.trailing = append(vc.trailing,
		Field{"Average Scale Factor", v.AverageScaleFactor},
		Field{"Average Cell Volume", v.AverageCellVolume},
		Field{"Average Expansion Volume", v.AverageExpansionVolume},
	)

	return []sheetLayout{zcv, vc}
}

func deviationFields(values []string) []Field {
	fields := make([]Field, 0, len(values))
	for _, v := range values {
		fields = append(fields, Field{"Standard Deviation", v})
	}
	return fields
}

// writeSheet lays out label/value rows, the cycle table and the summary rows.
// Empty values are skipped like in the CSV export.
func writeSheet(f *excelize.File, layout sheetLayout, bold int) error {
	row := 1

	put := func(values []string) error {
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		vals := make([]interface{}, len(values))
		for i, v := range values {
			vals[i] = v
		}
		row++
		return f.SetSheetRow(layout.name, cell, &vals)
	}

	putFields := func(fields []Field) error {
		for _, field := range fields {
			if field.Value == "" {
				continue
			}
			if err := put([]string{field.Label, field.Value}); err != nil {
				return err
			}
		}
		return nil
	}

	if err := putFields(layout.fields); err != nil {
		return err
	}

	if len(layout.cycles) > 0 {
		row++
		start, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		end, err := excelize.CoordinatesToCellName(len(layout.header), row)
		if err != nil {
			return err
		}
		if err := put(layout.header); err != nil {
			return err
		}
		if err := f.SetCellStyle(layout.name, start, end, bold); err != nil {
			return err
		}
		for _, c := range layout.cycles {
			if err := put(c); err != nil {
				return err
			}
		}
	}

	row++
	if err := putFields(layout.trailing); err != nil {
		return err
	}

	return f.SetColWidth(layout.name, "A", "E", 24)
}
