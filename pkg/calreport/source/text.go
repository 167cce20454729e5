// Package source reads calibration report exports into raw rows.
package source

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/ukaji3/calreport-go/pkg/calreport/models"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrNoSheets indicates a workbook without worksheets.
var ErrNoSheets = errors.New("workbook has no sheets")

// ErrUnsupportedEncoding indicates an unknown text encoding name.
var ErrUnsupportedEncoding = errors.New("unsupported encoding")

// EncodingAuto keeps valid UTF-8 and falls back to Windows-1252.
const EncodingAuto = "auto"

// maxLineSize bounds a single line of a text export.
const maxLineSize = 1 << 20

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var encodings = map[string]encoding.Encoding{
	"utf-8":        unicode.UTF8,
	"utf8":         unicode.UTF8,
	"windows-1252": charmap.Windows1252,
	"cp1252":       charmap.Windows1252,
	"iso-8859-1":   charmap.ISO8859_1,
	"latin1":       charmap.ISO8859_1,
	"cp437":        charmap.CodePage437,
	"cp850":        charmap.CodePage850,
}

// Decode converts raw export bytes to UTF-8 text.
// A leading UTF-8 byte order mark is dropped.
func Decode(data []byte, name string) ([]byte, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || name == EncodingAuto {
		if utf8.Valid(data) {
			return data, nil
		}
		name = "windows-1252"
	}

	enc, ok := encodings[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedEncoding, name)
	}

	decoded, _, err := transform.Bytes(enc.NewDecoder(), data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return decoded, nil
}

// ReadLines reads a delimited text export as one row per line.
// Blank lines are kept so row numbers match the source.
func ReadLines(r io.Reader, encodingName string) ([]models.Row, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	text, err := Decode(data, encodingName)
	if err != nil {
		return nil, err
	}

	var rows []models.Row
	scanner := bufio.NewScanner(bytes.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		rows = append(rows, models.Row{
			Number: len(rows) + 1,
			Text:   scanner.Text(),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return rows, nil
}

// ReadTextFile reads a delimited text export from path.
func ReadTextFile(path, encodingName string) ([]models.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadLines(f, encodingName)
}
