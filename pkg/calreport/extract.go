package calreport

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/ukaji3/calreport-go/pkg/calreport/models"
	"github.com/ukaji3/calreport-go/pkg/calreport/parser"
	"github.com/ukaji3/calreport-go/pkg/calreport/source"
)

// Extract reads a report export and extracts both calibration records.
func Extract(path string, opts Options) (*models.CalibrationReport, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	logger := opts.logger().With(slog.String("run_id", uuid.NewString()))
	format := opts.ResolveFormat(path)

	if strings.EqualFold(filepath.Ext(path), ".xls") && format == FormatText {
		logger.Warn("legacy .xls workbook, reading as delimited text",
			slog.String("path", path))
	}

	rows, err := readRows(path, format, opts)
	if err != nil {
		return nil, err
	}

	logger.Info("extracting report",
		slog.String("path", path),
		slog.String("format", string(format)),
		slog.Int("rows", len(rows)))

	report := parser.ExtractRows(rows, logger)
	report.SourceName = filepath.Base(path)

	logger.Info("extraction finished",
		slog.Int("zero_cell_volume_cycles", len(report.ZeroCellVolume.Cycles)),
		slog.Int("volume_calibration_cycles", len(report.VolumeCalibration.Cycles)),
		slog.Int("zero_cell_volume_deviations", len(report.ZeroCellVolume.StandardDeviations)),
		slog.Int("volume_calibration_deviations", len(report.VolumeCalibration.StandardDeviations)))

	return report, nil
}

// readRows loads the raw rows for the resolved format.
func readRows(path string, format Format, opts Options) ([]models.Row, error) {
	switch format {
	case FormatText:
		rows, err := source.ReadTextFile(path, opts.Encoding)
		if err != nil {
			return nil, NewSourceError(path, "text", err)
		}
		return rows, nil
	case FormatXLSX:
		rows, err := source.ReadXLSXFile(path, opts.Sheet)
		if err != nil {
			return nil, NewSourceError(path, "xlsx", err)
		}
		return rows, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}
