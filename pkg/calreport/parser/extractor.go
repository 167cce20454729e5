// Package parser implements the calibration report extraction engine.
package parser

import (
	"log/slog"

	"github.com/ukaji3/calreport-go/pkg/calreport/models"
	"github.com/ukaji3/calreport-go/pkg/calreport/textfix"
)

// side describes how one half of a row fills its record.
type side[T any] struct {
	name       string
	arity      int
	rules      []fieldRule[T]
	addCycle   func(*T, []string)
	deviations func(*T) *[]string
}

var zeroCellVolumeSide = side[models.ZeroCellVolume]{
	name:  "zero_cell_volume",
	arity: ZeroCellVolumeCycleArity,
	rules: zeroCellVolumeRules,
	addCycle: func(r *models.ZeroCellVolume, v []string) {
		r.Cycles = append(r.Cycles, models.CycleRow{
			CycleNumber: v[0],
			CellVolume:  v[1],
			Deviation:   v[2],
		})
	},
	deviations: func(r *models.ZeroCellVolume) *[]string { return &r.StandardDeviations },
}

var volumeCalibrationSide = side[models.VolumeCalibration]{
	name:  "volume_calibration",
	arity: VolumeCalibrationCycleArity,
	rules: volumeCalibrationRules,
	addCycle: func(r *models.VolumeCalibration, v []string) {
		r.Cycles = append(r.Cycles, models.CalibrationCycleRow{
			CycleNumber:        v[0],
			CellVolume:         v[1],
			Deviation:          v[2],
			ExpansionVolume:    v[3],
			ExpansionDeviation: v[4],
		})
	},
	deviations: func(r *models.VolumeCalibration) *[]string { return &r.StandardDeviations },
}

// extract runs one side of a row against its record.
func (s *side[T]) extract(rec *T, fields []string, inReport bool) RowKind {
	if len(fields) == 0 {
		return RowEmpty
	}

	if inReport {
		values, kind := ParseCycleRow(fields, s.arity)
		switch kind {
		case RowHeading:
			return RowHeading
		case RowCycle:
			if values != nil {
				for i := range values {
					values[i] = textfix.Normalize(values[i])
				}
				s.addCycle(rec, values)
			}
			return RowCycle
		}
	}

	devs := s.deviations(rec)
	*devs = append(*devs, CollectDeviations(fields)...)
	applyRules(fields, s.rules, rec)

	return RowLabels
}

// Extractor consumes report rows in order and accumulates both records.
// An Extractor holds the state of a single run and must not be shared
// between files.
type Extractor struct {
	state  SectionState
	report models.CalibrationReport
	logger *slog.Logger
	fed    int
	rows   int
	frozen bool
}

// NewExtractor creates an Extractor. A nil logger discards log output.
func NewExtractor(logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Extractor{logger: logger}
}

// ProcessRow feeds one row. Spreadsheet rows (non-nil Cells) are split with
// SplitCells, text rows with SplitColumns. Blank rows are skipped.
func (e *Extractor) ProcessRow(row models.Row) {
	if e.frozen || row.IsBlank() {
		return
	}

	var left, right []string
	if row.Cells != nil {
		left, right = SplitCells(row.Cells)
	} else {
		left, right = SplitColumns(row.Text)
	}
	e.process(row.Number, left, right)
}

// ProcessLine feeds one raw text line.
func (e *Extractor) ProcessLine(line string) {
	e.fed++
	e.ProcessRow(models.Row{Number: e.fed, Text: line})
}

// ProcessCells feeds one spreadsheet row.
func (e *Extractor) ProcessCells(cells []string) {
	if cells == nil {
		cells = []string{}
	}
	e.fed++
	e.ProcessRow(models.Row{Number: e.fed, Cells: cells})
}

func (e *Extractor) process(number int, left, right []string) {
	e.rows++
	before := e.state
	e.state.Observe(left, right)
	if e.state != before {
		e.logger.Debug("section state changed",
			slog.Int("row", number),
			slog.Bool("left_header_seen", e.state.LeftHeaderSeen),
			slog.Bool("left_report_seen", e.state.LeftReportSeen),
			slog.Bool("right_header_seen", e.state.RightHeaderSeen),
			slog.Bool("right_report_seen", e.state.RightReportSeen),
			slog.Bool("active_left", e.state.ActiveLeftSection),
			slog.Bool("active_right", e.state.ActiveRightSection))
	}

	if e.state.OfferLeft() {
		kind := zeroCellVolumeSide.extract(&e.report.ZeroCellVolume, left, e.state.LeftReportSeen)
		e.logRow(number, zeroCellVolumeSide.name, kind)
	}
	if e.state.OfferRight() {
		kind := volumeCalibrationSide.extract(&e.report.VolumeCalibration, right, e.state.RightReportSeen)
		e.logRow(number, volumeCalibrationSide.name, kind)
	}
}

func (e *Extractor) logRow(number int, section string, kind RowKind) {
	if kind == RowCycle || kind == RowHeading {
		e.logger.Debug("report row",
			slog.Int("row", number),
			slog.String("section", section),
			slog.String("kind", kind.String()))
	}
}

// State returns a copy of the current section state.
func (e *Extractor) State() SectionState {
	return e.state
}

// Rows returns the number of non-blank rows processed.
func (e *Extractor) Rows() int {
	return e.rows
}

// Result freezes the Extractor and returns the accumulated report.
// Later Process calls are ignored; repeated calls return the same report.
func (e *Extractor) Result() *models.CalibrationReport {
	if !e.frozen {
		e.frozen = true
		e.report.ZeroCellVolume.FillDeviationSummary()
		e.report.VolumeCalibration.FillDeviationSummary()
	}
	report := e.report
	return &report
}

// ExtractRows runs a fresh Extractor over rows and returns its report.
func ExtractRows(rows []models.Row, logger *slog.Logger) *models.CalibrationReport {
	e := NewExtractor(logger)
	for _, row := range rows {
		e.ProcessRow(row)
	}
	return e.Result()
}
