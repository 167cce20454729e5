package parser

import (
	"testing"

	"github.com/ukaji3/calreport-go/pkg/calreport/models"
)

func TestLookupField(t *testing.T) {
	tests := []struct {
		fields        []string
		label         string
		expected      string
		expectedFound bool
	}{
		{[]string{"Chamber Insert: ABC123"}, "Chamber Insert:", "ABC123", true},
		{[]string{"Chamber Insert:", "ABC123"}, "Chamber Insert:", "ABC123", true},
		{[]string{"chamber insert:   abc "}, "Chamber Insert:", "abc", true},
		{[]string{"Report - Chamber Insert: X9"}, "Chamber Insert:", "X9", true},
		{[]string{"Chamber Insert:"}, "Chamber Insert:", "", false},
		{[]string{"Chamber Insert:", "   "}, "Chamber Insert:", "", false},
		{[]string{"Chamber Insert:", "", "Chamber Insert: late"}, "Chamber Insert:", "late", true},
		{[]string{"", "  ", "Temperature:", " 25 ?C "}, "Temperature:", "25 ?C", true},
		{[]string{"Temperature 25"}, "Temperature:", "", false},
		{nil, "Temperature:", "", false},
	}

	for _, tt := range tests {
		result, found := LookupField(tt.fields, tt.label)
		if result != tt.expected || found != tt.expectedFound {
			t.Errorf("LookupField(%q, %q) = %q, %v, expected %q, %v",
				tt.fields, tt.label, result, found, tt.expected, tt.expectedFound)
		}
	}
}

func TestApplyRulesFirstMatchWins(t *testing.T) {
	var rec models.ZeroCellVolume

	n := applyRules([]string{"Chamber Insert: FIRST", "Temperature:", "25.0 ?C"}, zeroCellVolumeRules, &rec)
	if n != 2 {
		t.Errorf("first row assigned %d fields, expected 2", n)
	}

	n = applyRules([]string{"Chamber Insert: SECOND", "Number of Purges: 5"}, zeroCellVolumeRules, &rec)
	if n != 1 {
		t.Errorf("second row assigned %d fields, expected 1", n)
	}

	if rec.ChamberInsert != "FIRST" {
		t.Errorf("ChamberInsert = %q, expected %q", rec.ChamberInsert, "FIRST")
	}
	if rec.Temperature != "25.0 °C" {
		t.Errorf("Temperature = %q, expected %q", rec.Temperature, "25.0 °C")
	}
	if rec.NumberOfPurges != "5" {
		t.Errorf("NumberOfPurges = %q, expected %q", rec.NumberOfPurges, "5")
	}
}

func TestVolumeCalibrationRules(t *testing.T) {
	var rec models.VolumeCalibration
	applyRules([]string{
		"Reported: Yes",
		"Vol. of Cal. Standard:", "7.0650 cm3",
		"Average Scale Factor: 0.99",
		"Average Expansion Volume: 8.1 cm3",
	}, volumeCalibrationRules, &rec)

	if rec.Reported != "Yes" {
		t.Errorf("Reported = %q", rec.Reported)
	}
	if rec.VolOfCalStandard != "7.0650 cm³" {
		t.Errorf("VolOfCalStandard = %q", rec.VolOfCalStandard)
	}
	if rec.AverageScaleFactor != "0.99" {
		t.Errorf("AverageScaleFactor = %q", rec.AverageScaleFactor)
	}
	if rec.AverageExpansionVolume != "8.1 cm³" {
		t.Errorf("AverageExpansionVolume = %q", rec.AverageExpansionVolume)
	}
}

func TestIndexFold(t *testing.T) {
	tests := []struct {
		s        string
		substr   string
		expected int
	}{
		{"Temperature:", "temperature:", 0},
		{"x TEMPERATURE: 1", "Temperature:", 2},
		{"°C Temperature:", "Temperature:", 4},
		{"Temp", "Temperature:", -1},
		{"", "a", -1},
	}

	for _, tt := range tests {
		if result := indexFold(tt.s, tt.substr); result != tt.expected {
			t.Errorf("indexFold(%q, %q) = %d, expected %d", tt.s, tt.substr, result, tt.expected)
		}
	}
}
