package yields

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decibelcooper/b2jpsieta/modes"
)

func TestPredict(t *testing.T) {
	r := modes.DefaultRatios()

	info, err := Predict(modes.JPsi2EEEta2GammaGamma, r, 200e6, 0.25)
	require.NoError(t, err)

	want := 200e6 * 1.08e-5 * 5.971e-2 * 39.41e-2 * 0.25
	assert.InDelta(t, want, info.Total, 1e-9)
	assert.Equal(t, 5.971e-2, info.JPsi)
	assert.Equal(t, 39.41e-2, info.Eta)
	assert.Equal(t, 0.25, info.Det)

	rel := math.Sqrt(math.Pow(0.23/1.08, 2) + math.Pow(0.032/5.971, 2) + math.Pow(0.20/39.41, 2))
	assert.InDelta(t, rel, info.RelUncertainty, 1e-12)

	assert.Equal(t, byte('$'), info.LaTeX[0])
	assert.Equal(t, byte('$'), info.LaTeX[len(info.LaTeX)-1])
}

func TestPredictAllModes(t *testing.T) {
	seen := make(map[float64]bool)
	for _, m := range modes.All() {
		info, err := Predict(m, modes.DefaultRatios(), 200e6, 0.1)
		require.NoError(t, err, m)
		assert.Greater(t, info.Total, 0.0, m)
		assert.False(t, seen[info.Total], "duplicate yield for %s", m)
		seen[info.Total] = true
	}
}

func TestPredictBadRatio(t *testing.T) {
	r := modes.DefaultRatios()
	r.Eta23Pi0 = modes.BranchingRatio{}

	_, err := Predict(modes.JPsi2MuMuEta23Pi0, r, 200e6, 0.1)
	assert.Error(t, err)
}
