package parser

import (
	"strings"

	"github.com/ukaji3/calreport-go/pkg/calreport/models"
	"github.com/ukaji3/calreport-go/pkg/calreport/textfix"
)

// fieldRule binds a report label to the record field it fills.
type fieldRule[T any] struct {
	Label string
	Field func(*T) *string
}

var zeroCellVolumeRules = []fieldRule[models.ZeroCellVolume]{
	{"Chamber Insert:", func(r *models.ZeroCellVolume) *string { return &r.ChamberInsert }},
	{"Analysis Start:", func(r *models.ZeroCellVolume) *string { return &r.AnalysisStart }},
	{"Analysis End:", func(r *models.ZeroCellVolume) *string { return &r.AnalysisEnd }},
	{"Temperature:", func(r *models.ZeroCellVolume) *string { return &r.Temperature }},
	{"Number of Purges:", func(r *models.ZeroCellVolume) *string { return &r.NumberOfPurges }},
	{"Purge fill pressure:", func(r *models.ZeroCellVolume) *string { return &r.PurgeFillPressure }},
	{"Number of cycles:", func(r *models.ZeroCellVolume) *string { return &r.NumberOfCycles }},
	{"Cycle fill pressure:", func(r *models.ZeroCellVolume) *string { return &r.CycleFillPressure }},
	{"Equilib. Rate:", func(r *models.ZeroCellVolume) *string { return &r.EquilibRate }},
	{"Expansion Volume:", func(r *models.ZeroCellVolume) *string { return &r.ExpansionVolume }},
	{"Average Offset:", func(r *models.ZeroCellVolume) *string { return &r.AverageOffset }},
	{"Average Cell Volume:", func(r *models.ZeroCellVolume) *string { return &r.AverageCellVolume }},
}

var volumeCalibrationRules = []fieldRule[models.VolumeCalibration]{
	{"Chamber Insert:", func(r *models.VolumeCalibration) *string { return &r.ChamberInsert }},
	{"Analysis Start:", func(r *models.VolumeCalibration) *string { return &r.AnalysisStart }},
	{"Analysis End:", func(r *models.VolumeCalibration) *string { return &r.AnalysisEnd }},
	{"Temperature:", func(r *models.VolumeCalibration) *string { return &r.Temperature }},
	{"Reported:", func(r *models.VolumeCalibration) *string { return &r.Reported }},
	{"Vol. of Cal. Standard:", func(r *models.VolumeCalibration) *string { return &r.VolOfCalStandard }},
	{"Number of Purges:", func(r *models.VolumeCalibration) *string { return &r.NumberOfPurges }},
	{"Purge fill pressure:", func(r *models.VolumeCalibration) *string { return &r.PurgeFillPressure }},
	{"Number of cycles:", func(r *models.VolumeCalibration) *string { return &r.NumberOfCycles }},
	{"Cycle fill pressure:", func(r *models.VolumeCalibration) *string { return &r.CycleFillPressure }},
	{"Equilib. Rate:", func(r *models.VolumeCalibration) *string { return &r.EquilibRate }},
	{"Average Offset:", func(r *models.VolumeCalibration) *string { return &r.AverageOffset }},
	{"Average Scale Factor:", func(r *models.VolumeCalibration) *string { return &r.AverageScaleFactor }},
	{"Average Cell Volume:", func(r *models.VolumeCalibration) *string { return &r.AverageCellVolume }},
	{"Average Expansion Volume:", func(r *models.VolumeCalibration) *string { return &r.AverageExpansionVolume }},
}

// LookupField finds the first cell containing label (case-insensitive) and
// returns the trimmed text after the label, or the trimmed next cell when the
// label cell has nothing after it. Blank results never count as found.
func LookupField(fields []string, label string) (string, bool) {
	for i := 0; i < len(fields); i++ {
		field := strings.TrimSpace(fields[i])
		if field == "" {
			continue
		}

		idx := indexFold(field, label)
		if idx < 0 {
			continue
		}

		if value := strings.TrimSpace(field[idx+len(label):]); value != "" {
			return value, true
		}
		if i+1 < len(fields) {
			if next := strings.TrimSpace(fields[i+1]); next != "" {
				return next, true
			}
		}
	}
	return "", false
}

// applyRules fills every still-empty field whose label occurs in fields.
// It returns the number of fields assigned.
func applyRules[T any](fields []string, rules []fieldRule[T], rec *T) int {
	assigned := 0
	for _, rule := range rules {
		target := rule.Field(rec)
		if *target != "" {
			continue
		}
		if value, ok := LookupField(fields, rule.Label); ok {
			*target = textfix.Normalize(value)
			assigned++
		}
	}
	return assigned
}

// indexFold returns the byte index of the first case-insensitive occurrence
// of substr in s, or -1. Labels are ASCII, so offsets in s stay valid.
func indexFold(s, substr string) int {
	n := len(substr)
	for i := 0; i+n <= len(s); i++ {
		if strings.EqualFold(s[i:i+n], substr) {
			return i
		}
	}
	return -1
}

func containsFold(s, substr string) bool {
	return indexFold(s, substr) >= 0
}
