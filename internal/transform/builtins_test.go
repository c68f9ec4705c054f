package transform

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripUnderscores(t *testing.T) {
	assert.Equal(t, "G11", StripUnderscores("G_11"))
	assert.Equal(t, "W5", StripUnderscores("W_5_"))
	assert.Equal(t, "", StripUnderscores("___"))
}

func TestSubtractDecimal(t *testing.T) {
	tests := []struct {
		a, b string
		want string
	}{
		{"1500", "100", "1400,0"},
		{"1500.5", "100", "1400,5"},
		{" 1500 ", "100.25", "1399,75"},
		{"100", "1500", "-1400,0"},
		{"0", "0", "0,0"},
		{"0.3", "0.1", "0,19999999999999998"},
		{"1e17", "0", "1e+17"},
	}

	for _, tt := range tests {
		t.Run(tt.a+"-"+tt.b, func(t *testing.T) {
			got, err := SubtractDecimal(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSubtractDecimal_Errors(t *testing.T) {
	_, err := SubtractDecimal("abc", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `parse "abc" as number`)

	_, err = SubtractDecimal("1", "")
	require.Error(t, err)

	_, err = SubtractDecimal("1500,5", "1")
	require.Error(t, err, "comma decimals are not accepted as input")

	_, err = SubtractDecimal("inf", "inf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a finite number")
}

func TestSubtractInteger(t *testing.T) {
	got, err := SubtractInteger("1500", "100")
	require.NoError(t, err)
	assert.Equal(t, "1400", got)

	got, err = SubtractInteger("-5", " 10 ")
	require.NoError(t, err)
	assert.Equal(t, "-15", got)

	_, err = SubtractInteger("1500.0", "100")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `parse "1500.0" as integer`)
}

func TestToday(t *testing.T) {
	clk := clockwork.NewFakeClockAt(time.Date(2024, time.March, 5, 23, 59, 0, 0, time.UTC))
	assert.Equal(t, "05.03.2024", Today(clk))

	clk.Advance(2 * time.Minute)
	assert.Equal(t, "06.03.2024", Today(clk))
}

func TestDateISO(t *testing.T) {
	for _, in := range []string{"05.03.2024", "2024-03-05", "05-03-2024", "2024.03.05", "05/03/2024", " 05.03.2024 "} {
		got, err := DateISO(in)
		require.NoError(t, err, in)
		assert.Equal(t, "2024-03-05", got, in)
	}

	_, err := DateISO("31.02.2024")
	require.Error(t, err)

	_, err = DateISO("yesterday")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unrecognized date "yesterday"`)
}

func TestBuiltins(t *testing.T) {
	clk := clockwork.NewFakeClockAt(time.Date(2025, time.January, 2, 8, 0, 0, 0, time.UTC))
	r := Builtins(clk)

	assert.Equal(t, []string{
		DateISOName,
		StripUnderscoresName,
		SubtractDecimalName,
		SubtractIntegerName,
		TodayName,
		TrimName,
	}, r.Names())

	got, err := r.Apply(TodayName)
	require.NoError(t, err)
	assert.Equal(t, "02.01.2025", got)

	got, err = r.Apply(SubtractDecimalName, "1500", "100")
	require.NoError(t, err)
	assert.Equal(t, "1400,0", got)

	got, err = r.Apply(TrimName, "  x ")
	require.NoError(t, err)
	assert.Equal(t, "x", got)

	assert.Equal(t, 0, r.Get(TodayName).Arity)
	assert.Equal(t, 2, r.Get(SubtractIntegerName).Arity)
}
