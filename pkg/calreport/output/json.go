package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/ukaji3/calreport-go/pkg/calreport/models"
)

// ToJSON serializes report to JSON.
func ToJSON(report *models.CalibrationReport, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(report, "", "  ")
	}
	return json.Marshal(report)
}

// WriteJSON writes report to w followed by a newline.
func WriteJSON(w io.Writer, report *models.CalibrationReport, pretty bool) error {
	data, err := ToJSON(report, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	_, err = w.Write(append(data, '\n'))
	return err
}

// SaveJSON writes report to path, creating parent directories as needed.
func SaveJSON(path string, report *models.CalibrationReport, pretty bool) error {
	if err := ensureDir(path); err != nil {
		return err
	}
	data, err := ToJSON(report, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
