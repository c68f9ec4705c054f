package batch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePolicy(t *testing.T) {
	tests := map[string]Policy{
		"":               AllOrNothing,
		"all-or-nothing": AllOrNothing,
		"ABORT":          AllOrNothing,
		"skip-row":       SkipRow,
		" skip ":         SkipRow,
	}

	for in, want := range tests {
		got, err := ParsePolicy(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParsePolicy("retry")
	require.Error(t, err)
}

func TestPolicy_String(t *testing.T) {
	assert.Equal(t, "all-or-nothing", AllOrNothing.String())
	assert.Equal(t, "skip-row", SkipRow.String())
	assert.Equal(t, "unknown", Policy(5).String())

	for _, p := range []Policy{AllOrNothing, SkipRow} {
		parsed, err := ParsePolicy(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, parsed)
	}
}
