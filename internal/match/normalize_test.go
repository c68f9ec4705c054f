package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeHeader(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"DataOdczytu", "dataodczytu"},
		{"data_odczytu", "dataodczytu"},
		{"Data-Odczytu", "dataodczytu"},
		{"DATA.ODCZYTU", "dataodczytu"},
		{" Data Odczytu ", "dataodczytu"},

		// diacritics
		{"Zużycie M3", "zuzyciem3"},
		{"Data końca zużycia", "datakoncazuzycia"},
		{"Współczynnik", "wspolczynnik"},
		{"ŁÓDŹ", "lodz"},

		{"", ""},
		{"POD", "pod"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeHeader(tt.input))
		})
	}
}
