package parser

import (
	"regexp"
	"strings"

	"github.com/ukaji3/calreport-go/pkg/calreport/textfix"
)

// StandardDeviationLabel is the repeating summary label collected per row.
const StandardDeviationLabel = "Standard Deviation:"

var whitespaceRun = regexp.MustCompile(`\s+`)

// CollectDeviations returns every standard deviation value in one row.
// Values are whitespace-collapsed, normalized and de-duplicated
// case-insensitively within the row only; callers append them without
// cross-row suppression.
func CollectDeviations(fields []string) []string {
	var values []string

	for i := 0; i < len(fields); i++ {
		field := strings.TrimSpace(fields[i])
		if field == "" {
			continue
		}

		idx := indexFold(field, StandardDeviationLabel)
		if idx < 0 {
			continue
		}

		value := strings.TrimSpace(field[idx+len(StandardDeviationLabel):])
		if value == "" && i+1 < len(fields) {
			value = strings.TrimSpace(fields[i+1])
		}
		if value == "" {
			continue
		}

		value = textfix.Normalize(strings.TrimSpace(whitespaceRun.ReplaceAllString(value, " ")))
		if !containsValueFold(values, value) {
			values = append(values, value)
		}
	}

	return values
}

func containsValueFold(values []string, v string) bool {
	for _, existing := range values {
		if strings.EqualFold(existing, v) {
			return true
		}
	}
	return false
}
