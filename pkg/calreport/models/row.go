// Package models defines data structures for calibration report extraction.
package models

// Row represents one raw input row handed to the extraction engine.
type Row struct {
	// Number is the source row number (1-based).
	Number int `json:"number"`
	// Text is the raw line for delimited-text sources.
	Text string `json:"text,omitempty"`
	// Cells holds already-stringified cells for spreadsheet sources.
	// When nil, Text is used.
	Cells []string `json:"cells,omitempty"`
}

// IsBlank reports whether the row carries no content at all.
func (r Row) IsBlank() bool {
	if r.Cells == nil {
		for _, c := range r.Text {
			if c != ' ' && c != '\t' && c != '\r' && c != '\n' && c != '\f' && c != '\v' {
				return false
			}
		}
		return true
	}
	for _, c := range r.Cells {
		if c != "" {
			return false
		}
	}
	return true
}
