package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var gasHeaders = []string{
	"POD", "Taryfa", "Nr_Gazomierza", "DataOdczytuPoprz", "Data_Odczytu",
	"WskazanieLicznika", "ZuzycieM3", "WspKonwersji", "ZuzycieKWH",
}

func TestRank(t *testing.T) {
	list := Rank("DataOdczytu", gasHeaders)
	require.NotEmpty(t, list)

	assert.Equal(t, "Data_Odczytu", list[0].Header)
	assert.InDelta(t, 1.0, list[0].Score, 1e-9)

	for i := 1; i < len(list); i++ {
		assert.GreaterOrEqual(t, list[i-1].Score, list[i].Score)
		assert.GreaterOrEqual(t, list[i].Score, MinScore)
	}
}

func TestSuggest(t *testing.T) {
	tests := []struct {
		name   string
		want   string
		wantOK bool
	}{
		{"NrGazomierza", "Nr_Gazomierza", true},
		{"ZuzycieKWh", "ZuzycieKWH", true},
		{"WspKonwersij", "WspKonwersji", true},
		{"Adres", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Suggest(tt.name, gasHeaders)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCandidateList_Best(t *testing.T) {
	_, ok := CandidateList(nil).Best()
	assert.False(t, ok)

	best, ok := CandidateList{{Header: "a", Score: 0.9}, {Header: "b", Score: 0.7}}.Best()
	require.True(t, ok)
	assert.Equal(t, "a", best.Header)
}
