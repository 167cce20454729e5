// Package output writes extracted calibration reports to CSV, JSON and xlsx.
package output

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/calreport-go/pkg/calreport/models"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Section banners of the CSV report.
const (
	ZeroCellVolumeBanner    = "=== ZERO CELL VOLUME HEADER ==="
	VolumeCalibrationBanner = "=== VOLUME CALIBRATION HEADER ==="
)

const (
	zeroCellVolumeCycleHeader    = "Cycle#,Cell Volume (cm³),Deviation (cm³)"
	volumeCalibrationCycleHeader = "Cycle#,Cell Volume (cm³),Deviation (cm³),Expansion Volume (cm³),Deviation (cm³)"
)

// Field is one labelled value of a report section.
type Field struct {
	Label string
	Value string
}

// ZeroCellVolumeFields returns the header fields of a Zero Cell Volume report
// in export order.
func ZeroCellVolumeFields(z *models.ZeroCellVolume) []Field {
	return []Field{
		{"Chamber Insert", z.ChamberInsert},
		{"Analysis Start", z.AnalysisStart},
		{"Analysis End", z.AnalysisEnd},
		{"Temperature", z.Temperature},
		{"Number of Purges", z.NumberOfPurges},
		{"Purge fill pressure", z.PurgeFillPressure},
		{"Number of cycles", z.NumberOfCycles},
		{"Cycle fill pressure", z.CycleFillPressure},
		{"Equilib. Rate", z.EquilibRate},
		{"Expansion Volume", z.ExpansionVolume},
	}
}

// VolumeCalibrationFields returns the header fields of a Volume Calibration
// report in export order.
func VolumeCalibrationFields(v *models.VolumeCalibration) []Field {
	return []Field{
		{"Chamber Insert", v.ChamberInsert},
		{"Analysis Start", v.AnalysisStart},
		{"Analysis End", v.AnalysisEnd},
		{"Temperature", v.Temperature},
		{"Reported", v.Reported},
		{"Vol. of Cal. Standard", v.VolOfCalStandard},
		{"Number of Purges", v.NumberOfPurges},
		{"Purge fill pressure", v.PurgeFillPressure},
		{"Number of cycles", v.NumberOfCycles},
		{"Cycle fill pressure", v.CycleFillPressure},
		{"Equilib. Rate", v.EquilibRate},
	}
}

// WriteCSV writes report in the instrument export layout. Every value is
// written quoted; empty fields are omitted.
func WriteCSV(w io.Writer, report *models.CalibrationReport) error {
	cw := &csvWriter{w: bufio.NewWriter(w)}

	z := &report.ZeroCellVolume
	cw.line(ZeroCellVolumeBanner)
	cw.fields(ZeroCellVolumeFields(z))
	if len(z.Cycles) > 0 {
		cw.cycleHeader(zeroCellVolumeCycleHeader)
		for _, c := range z.Cycles {
			cw.record(c.CycleNumber, c.CellVolume, c.Deviation)
		}
	}
	cw.line("")
	cw.field("Average Offset", z.AverageOffset)
	cw.deviations(z.StandardDeviations)
	cw.field("Average Cell Volume", z.AverageCellVolume)

	cw.line("")
	cw.line("")

	v := &report.VolumeCalibration
	cw.line(VolumeCalibrationBanner)
	cw.fields(VolumeCalibrationFields(v))
	if len(v.Cycles) > 0 {
		cw.cycleHeader(volumeCalibrationCycleHeader)
		for _, c := range v.Cycles {
			cw.record(c.CycleNumber, c.CellVolume, c.Deviation, c.ExpansionVolume, c.ExpansionDeviation)
		}
	}
	cw.line("")
	cw.field("Average Offset", v.AverageOffset)
	cw.deviations(v.StandardDeviations)
	cw.field("Average Scale Factor", v.AverageScaleFactor)
	cw.field("Average Cell Volume", v.AverageCellVolume)
	cw.field("Average Expansion Volume", v.AverageExpansionVolume)

	if cw.err != nil {
		return cw.err
	}
	return cw.w.Flush()
}

// SaveCSV writes report to path as UTF-8 with a byte order mark, creating
// parent directories as needed.
func SaveCSV(path string, report *models.CalibrationReport) (err error) {
	if err := ensureDir(path); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()

	tw := transform.NewWriter(f, unicode.UTF8BOM.NewEncoder())
	if err := WriteCSV(tw, report); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return tw.Close()
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// csvWriter keeps the first write error so callers can check once.
type csvWriter struct {
	w   *bufio.Writer
	err error
}

func (c *csvWriter) line(s string) {
	if c.err != nil {
		return
	}
	_, c.err = c.w.WriteString(s + "\n")
}

func (c *csvWriter) record(values ...string) {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = quote(v)
	}
	c.line(strings.Join(quoted, ","))
}

func (c *csvWriter) field(label, value string) {
	if value == "" {
		return
	}
	c.record(label, value)
}

func (c *csvWriter) fields(fields []Field) {
	for _, f := range fields {
		c.field(f.Label, f.Value)
	}
}

func (c *csvWriter) deviations(values []string) {
	for _, v := range values {
		c.field("Standard Deviation", v)
	}
}

func (c *csvWriter) cycleHeader(header string) {
	c.line("")
	c.line("Cycles:")
	c.line(header)
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
