package parser

import "strings"

// ColumnDivider separates the two side-by-side reports of a row.
const ColumnDivider = '|'

// SplitFields splits one line into comma-separated fields.
// Commas inside double quotes do not split. Each field is trimmed, and a fully
// quoted field loses its quotes with "" collapsed to ". An unbalanced quote
// makes the rest of the line part of the last field.
func SplitFields(line string) []string {
	if line == "" {
		return nil
	}

	var fields []string
	inQuotes := false
	start := 0

	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '"':
			inQuotes = !inQuotes
		case ',':
			if !inQuotes {
				fields = append(fields, cleanField(line[start:i]))
				start = i + 1
			}
		}
	}
	fields = append(fields, cleanField(line[start:]))

	return fields
}

// cleanField trims a raw field and unquotes it when it is fully quoted.
func cleanField(field string) string {
	field = strings.TrimSpace(field)
	if len(field) >= 2 && field[0] == '"' && field[len(field)-1] == '"' {
		field = field[1 : len(field)-1]
		field = strings.ReplaceAll(field, `""`, `"`)
	}
	return field
}

// SplitColumns splits a raw line at the first divider and tokenizes each half.
// The divider search is not quote-aware. Without a divider the whole line is
// the left list and right is empty.
func SplitColumns(line string) (left, right []string) {
	idx := strings.IndexByte(line, ColumnDivider)
	if idx < 0 {
		return SplitFields(line), nil
	}
	return SplitFields(line[:idx]), SplitFields(line[idx+1:])
}

// SplitCells splits a spreadsheet row at the first cell holding a divider.
// Cells before it form the left list and cells after it the right list; the
// text around the divider inside that cell joins either side when not blank.
// Cells are trimmed. Without a divider all cells are the left list.
func SplitCells(cells []string) (left, right []string) {
	trimmed := make([]string, len(cells))
	for i, c := range cells {
		trimmed[i] = strings.TrimSpace(c)
	}
	cells = trimmed

	for i, c := range cells {
		idx := strings.IndexByte(c, ColumnDivider)
		if idx < 0 {
			continue
		}

		left = append([]string{}, cells[:i]...)
		if before := strings.TrimSpace(c[:idx]); before != "" {
			left = append(left, before)
		}
		if after := strings.TrimSpace(c[idx+1:]); after != "" {
			right = append(right, after)
		}
		right = append(right, cells[i+1:]...)
		return left, right
	}
	return cells, nil
}
