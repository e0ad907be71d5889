package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFloat(t *testing.T) {
	t.Parallel()

	v, err := ParseFloat("")
	require.NoError(t, err)
	assert.Zero(t, v)

	v, err = ParseFloat("0.0042")
	require.NoError(t, err)
	assert.Equal(t, 0.0042, v)

	_, err = ParseFloat("nope")
	assert.Error(t, err)
}

func TestParseFloatOrZero(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 42.5, ParseFloatOrZero("42.5"))
	assert.Zero(t, ParseFloatOrZero(""))
	assert.Zero(t, ParseFloatOrZero("garbage"))
	assert.Zero(t, ParseFloatOrZero("NaN"))
	assert.Zero(t, ParseFloatOrZero("+Inf"))
}

func TestRoundMillions(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "6", RoundMillions(6_400_000))
	assert.Equal(t, "4", RoundMillions(3_600_000))
	assert.Equal(t, "0", RoundMillions(400_000))
	assert.Equal(t, "0", RoundMillions(0))
}
