package decay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLine(t *testing.T) {
	line, err := ParseLine("eta -> pi+ pi- gamma")
	require.NoError(t, err)

	assert.Equal(t, "eta", line.Mother)
	require.Len(t, line.Daughters, 3)
	assert.Equal(t, "pi+", line.Daughters[0].Name())
	assert.Equal(t, "pi-", line.Daughters[1].Name())
	assert.Equal(t, "gamma", line.Daughters[2].Name())

	assert.Equal(t, "[eta -> ^pi+ ^pi- gamma] ", line.String())
	assert.Equal(t, "eta -> pi+ pi- gamma", line.Decay())
}

func TestParseLineWhitespace(t *testing.T) {
	line, err := ParseLine("  J/psi->e+   e-  ")
	require.NoError(t, err)
	assert.Equal(t, "J/psi", line.Mother)
	assert.Equal(t, "J/psi -> e+ e-", line.Decay())
}

func TestParseLineMalformed(t *testing.T) {
	for _, s := range []string{
		"J/psi e+ e-",
		"",
		" -> e+ e-",
		"J/psi -> ",
		"B0 J/psi -> eta",
		"B0 -> J/psi -> e+ e-",
	} {
		t.Run(s, func(t *testing.T) {
			_, err := ParseLine(s)
			assert.ErrorIs(t, err, ErrMalformedDecayLine)
		})
	}
}
