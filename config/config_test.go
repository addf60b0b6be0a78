package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decibelcooper/b2jpsieta/decay"
	"github.com/decibelcooper/b2jpsieta/modes"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 10000, cfg.NGen)
	assert.Equal(t, 2e8, cfg.NumBB)
	assert.Equal(t, Locations{Merged: "merged/root_files", Tables: "tables"}, cfg.Locations)
	assert.Equal(t, "b0", cfg.Trees["B0"])
	assert.Equal(t, "electron", cfg.Trees["e+"])
	assert.Equal(t, "E < 1.0", cfg.Cuts["gamma"])
	assert.Equal(t, "iptube", cfg.Vertex.Constraint)
	assert.Equal(t, 0.001, cfg.Vertex.TagConfLevel)
	assert.Equal(t, modes.DefaultRatios(), cfg.BranchingRatios)

	for _, m := range modes.All() {
		_, err := cfg.Chain(m)
		assert.NoError(t, err, m)
	}
}

func TestParseOverrides(t *testing.T) {
	cfg, err := Parse([]byte(`
n_gen: 50000
num_bb: 5.0e+8
branching_ratios:
  eta2gammagamma:
    value: 0.4
    uncertainty: 0.01
modes:
  jpsi2mumu_eta2pipigamma:
    sub_decays:
      - "eta -> pi+ pi- gamma"
      - "B0 -> J/psi eta"
      - "J/psi -> mu+ mu-"
`))
	require.NoError(t, err)

	assert.Equal(t, 50000, cfg.NGen)
	assert.Equal(t, 5e8, cfg.NumBB)
	assert.Equal(t, modes.BranchingRatio{Value: 0.4, Uncertainty: 0.01}, cfg.BranchingRatios.Eta2GammaGamma)
	// untouched ratios keep their built-in values
	assert.Equal(t, modes.DefaultRatios().JPsi2EE, cfg.BranchingRatios.JPsi2EE)
	assert.Equal(t, "breco", cfg.Vertex.TagConstraint)

	assert.Equal(t, "eta -> pi+ pi- gamma", cfg.SubDecays(modes.JPsi2MuMuEta2PiPiGamma)[0])
	assert.Equal(t, modes.JPsi2EEEta23Pi0.SubDecays(), cfg.SubDecays(modes.JPsi2EEEta23Pi0))

	c, err := cfg.Chain(modes.JPsi2MuMuEta2PiPiGamma)
	require.NoError(t, err)
	head, err := c.Head()
	require.NoError(t, err)
	assert.Equal(t, "B0", head)
}

func TestParseInvalid(t *testing.T) {
	for _, tc := range []struct {
		name string
		yaml string
		err  error
	}{
		{name: "syntax", yaml: "n_gen: [", err: ErrInvalidConfig},
		{name: "n_gen", yaml: "n_gen: 0\nnum_bb: 1", err: ErrInvalidConfig},
		{name: "num_bb", yaml: "n_gen: 10\nnum_bb: -1", err: ErrInvalidConfig},
		{name: "mode", yaml: "n_gen: 10\nnum_bb: 1\nmodes:\n  jpsi2tautau_eta2gammagamma: {}", err: ErrInvalidConfig},
		{name: "chain", yaml: "n_gen: 10\nnum_bb: 1\nmodes:\n  jpsi2ee_eta2gammagamma:\n    sub_decays: [\"B0 -> J/psi eta\", \"K_S0 -> pi+ pi-\"]", err: ErrInvalidConfig},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestChainMalformed(t *testing.T) {
	cfg := Default()
	cfg.Modes = map[string]ModeConfig{
		string(modes.JPsi2EEEta2GammaGamma): {SubDecays: []string{"B0 J/psi eta"}},
	}
	_, err := cfg.Chain(modes.JPsi2EEEta2GammaGamma)
	assert.ErrorIs(t, err, decay.ErrMalformedDecayLine)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "reco.yaml")
	require.NoError(t, os.WriteFile(path, []byte("n_gen: 20\nnum_bb: 1e3\nlocations:\n  merged: /data/merged\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.NGen)
	assert.Equal(t, "/data/merged/jpsi2ee_eta23pi0.root", cfg.MergedFile(modes.JPsi2EEEta23Pi0))

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
