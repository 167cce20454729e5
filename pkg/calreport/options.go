// Package calreport extracts Zero Cell Volume and Volume Calibration reports
// from instrument exports.
package calreport

import (
	"log/slog"
	"path/filepath"
	"strings"
)

// Format represents the input file format.
type Format string

const (
	// FormatAuto selects the format from the file extension.
	FormatAuto Format = "auto"
	// FormatText reads a delimited text export line by line.
	FormatText Format = "text"
	// FormatXLSX reads the rows of one worksheet.
	FormatXLSX Format = "xlsx"
)

// Options configures extraction behavior.
type Options struct {
	// Format specifies the input format (auto, text, xlsx).
	Format Format
	// Sheet names the worksheet to read. Empty selects the first sheet.
	Sheet string
	// Encoding names the text encoding of delimited exports.
	// Empty or "auto" keeps UTF-8 and falls back to Windows-1252.
	Encoding string
	// Logger receives progress messages. If nil, slog.Default() is used.
	Logger *slog.Logger
}

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	return Options{
		Format:   FormatAuto,
		Encoding: "auto",
	}
}

// ResolveFormat returns the format to use for path.
// Legacy .xls workbooks are read as text, as the export tool saves them that way.
func (o Options) ResolveFormat(path string) Format {
	if o.Format != "" && o.Format != FormatAuto {
		return o.Format
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return FormatXLSX
	default:
		return FormatText
	}
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}
