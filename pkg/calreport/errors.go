package calreport

import (
	"errors"
	"fmt"

	"github.com/ukaji3/calreport-go/pkg/calreport/source"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrUnsupportedFormat indicates an unknown Options.Format value.
var ErrUnsupportedFormat = errors.New("unsupported format")

// ErrNoSheets indicates a workbook without worksheets.
var ErrNoSheets = source.ErrNoSheets

// ErrUnsupportedEncoding indicates an unknown text encoding name.
var ErrUnsupportedEncoding = source.ErrUnsupportedEncoding

// SourceError represents a failure to read the input rows.
type SourceError struct {
	Path      string
	Component string // "text", "xlsx"
	Err       error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("read error in %q (%s): %v", e.Path, e.Component, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// NewSourceError creates a new SourceError.
func NewSourceError(path, component string, err error) *SourceError {
	return &SourceError{
		Path:      path,
		Component: component,
		Err:       err,
	}
}
