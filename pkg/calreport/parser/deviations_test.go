package parser

import (
	"reflect"
	"testing"
)

func TestCollectDeviations(t *testing.T) {
	tests := []struct {
		fields   []string
		expected []string
	}{
		{nil, nil},
		{[]string{"Average Offset: 0.1"}, nil},
		{[]string{"Standard Deviation: 0.05"}, []string{"0.05"}},
		{[]string{"Standard Deviation: 0.05", "Standard Deviation: 0.05"}, []string{"0.05"}},
		{[]string{"Standard Deviation: 0.05 CM³", "standard deviation: 0.05 cm3"}, []string{"0.05 CM³"}},
		{[]string{"Standard Deviation:", "0.0040   cm3"}, []string{"0.0040 cm³"}},
		{[]string{"Standard Deviation:", ""}, nil},
		{[]string{"Standard Deviation:"}, nil},
		{[]string{"Standard Deviation: 0.01", "x", "Standard Deviation: 0.02"}, []string{"0.01", "0.02"}},
		{[]string{"Standard Deviation: 0.01\t\t0.02"}, []string{"0.01 0.02"}},
	}

	for _, tt := range tests {
		result := CollectDeviations(tt.fields)
		if !reflect.DeepEqual(result, tt.expected) {
			t.Errorf("CollectDeviations(%q) = %q, expected %q", tt.fields, result, tt.expected)
		}
	}
}
