package parser

import (
	"strconv"
	"strings"
)

// RowKind classifies how one side of a row was interpreted.
type RowKind int

const (
	// RowEmpty means the side had no fields or was not offered.
	RowEmpty RowKind = iota
	// RowHeading is a cycle table heading inside a report section; nothing is extracted.
	RowHeading
	// RowCycle is a numbered cycle row.
	RowCycle
	// RowLabels is scanned for labelled values and standard deviations.
	RowLabels
)

func (k RowKind) String() string {
	switch k {
	case RowEmpty:
		return "empty"
	case RowHeading:
		return "heading"
	case RowCycle:
		return "cycle"
	case RowLabels:
		return "labels"
	default:
		return "unknown"
	}
}

// Cycle row arities.
const (
	ZeroCellVolumeCycleArity    = 3
	VolumeCalibrationCycleArity = 5
)

// CycleHeaderToken is the literal first cell of a cycle table heading.
const CycleHeaderToken = "Cycle#"

// ParseCycleRow classifies a row of a report section.
// The heading check runs before the integer check. For RowCycle the returned
// values hold arity trimmed fields, or nil when the row is too short or its
// cell volume is empty; such rows are still cycle rows and carry no labels.
func ParseCycleRow(fields []string, arity int) ([]string, RowKind) {
	if len(fields) == 0 {
		return nil, RowEmpty
	}

	first := strings.TrimSpace(fields[0])
	if containsFold(first, "Cycle") || first == CycleHeaderToken {
		return nil, RowHeading
	}

	if _, err := strconv.ParseInt(first, 10, 32); err != nil {
		return nil, RowLabels
	}

	if len(fields) < arity {
		return nil, RowCycle
	}

	values := make([]string, arity)
	values[0] = first
	for i := 1; i < arity; i++ {
		values[i] = strings.TrimSpace(fields[i])
	}
	if values[1] == "" {
		return nil, RowCycle
	}
	return values, RowCycle
}
