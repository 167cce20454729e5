package textfix

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"12.5", "12.5"},
		{"25.3 ?C", "25.3 °C"},
		{"25.3?C", "25.3°C"},
		{"25.3 ? C", "25.3 °C"},
		{"25.3 øC", "25.3 °C"},
		{"25.3 ø C", "25.3 °C"},
		{"25.3ø  C", "25.3°C"},
		{"25.3   °  C", "25.3 °C"},
		{"25.3 °C", "25.3 °C"},
		{"25.3 Â°C", "25.3 °C"},
		{"25.3 ÂøC", "25.3 °C"},
		{"10.2 cm3", "10.2 cm³"},
		{"10.2 cm?", "10.2 cm³"},
		{"10.2 cm?3", "10.2 cm³"},
		{"10.2 cm^3", "10.2 cm³"},
		{"10.2 cmÂ³", "10.2 cm³"},
		{"10.2 cm³", "10.2 cm³"},
		{"0.0012 cm3/g at 25 ?C", "0.0012 cm³/g at 25 °C"},
		{"Why?", "Why?"},
	}

	for _, tt := range tests {
		result := Normalize(tt.input)
		if result != tt.expected {
			t.Errorf("Normalize(%q) = %q, expected %q", tt.input, result, tt.expected)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"25.3 ?C", "??C", "cm33", "cm?C", "ÂøC", "Â °C", "ø", "cm^3?3",
		"ø ø C", "\t°\tC", "cm cm3 ? C", "Temperature: 24.9 ? C",
	}

	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}
