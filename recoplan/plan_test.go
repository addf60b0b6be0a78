package recoplan

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decibelcooper/b2jpsieta/config"
	"github.com/decibelcooper/b2jpsieta/decay"
	"github.com/decibelcooper/b2jpsieta/modes"
)

func build(t *testing.T, m modes.Mode) *Plan {
	t.Helper()
	cfg := config.Default()
	chain, err := cfg.Chain(m)
	require.NoError(t, err)
	p, err := Build(m, chain, cfg)
	require.NoError(t, err)
	return p
}

func TestBuildGammaGamma(t *testing.T) {
	p := build(t, modes.JPsi2EEEta2GammaGamma)

	assert.Equal(t, "B0", p.Head)
	assert.Equal(t, "B0 -> [J/psi -> ^e+ ^e-] [eta -> gamma gamma]", p.DecayString)

	var got []string
	for _, s := range p.Steps {
		got = append(got, s.Python())
	}
	want := []string{
		"ma.inputMdst('default', input_file, path=my_path)",
		"ma.fillParticleList('e+', 'electronID > 0.5 and abs(d0) < 1 and abs(z0) < 4', path=my_path)",
		"ma.fillParticleList('gamma', 'E < 1.0', path=my_path)",
		"ma.reconstructDecay('J/psi -> e+ e-', '', path=my_path)",
		"ma.reconstructDecay('eta -> gamma gamma', '', path=my_path)",
		"ma.reconstructDecay('B0 -> J/psi eta', 'isSignal and Mbc > 5.1 and Mbc < 5.4', path=my_path)",
		"ma.looseMCTruth('B0', path=my_path)",
		"ma.looseMCTruth('J/psi', path=my_path)",
		"ma.looseMCTruth('eta', path=my_path)",
		"vx.vertexRave('B0', 0, 'B0 -> [J/psi -> ^e+ ^e-] [eta -> gamma gamma]', constraint='iptube', path=my_path)",
		"ma.buildRestOfEvent('B0', path=my_path)",
		"vx.TagV('B0', 'breco', 0.001, path=my_path)",
		"ma.buildEventKinematics(path=my_path)",
		"ma.buildEventShape(path=my_path)",
		"ma.variablesToNtuple('B0', variables, filename=output_file, treename='b0', path=my_path)",
		"ma.variablesToNtuple('J/psi', variables, filename=output_file, treename='jpsi', path=my_path)",
		"ma.variablesToNtuple('eta', variables, filename=output_file, treename='eta', path=my_path)",
		"ma.variablesToNtuple('e+', variables, filename=output_file, treename='electron', path=my_path)",
		"ma.variablesToNtuple('gamma', variables, filename=output_file, treename='gamma', path=my_path)",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("steps mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildReconstructionOrder(t *testing.T) {
	p := build(t, modes.JPsi2MuMuEta2PiPiPi0)

	var decays []string
	for _, s := range p.Steps {
		if s.Func == "reconstructDecay" {
			decays = append(decays, string(s.Args[0].Value.(Str)))
		}
	}
	assert.Equal(t, []string{
		"J/psi -> mu+ mu-",
		"pi0 -> gamma gamma",
		"eta -> pi+ pi- pi0",
		"B0 -> J/psi eta",
	}, decays)
}

func TestBuildSkipsUnconfiguredTrees(t *testing.T) {
	cfg := config.Default()
	cfg.Trees = map[string]string{"B0": "b0"}

	m := modes.JPsi2EEEta23Pi0
	chain, err := cfg.Chain(m)
	require.NoError(t, err)
	p, err := Build(m, chain, cfg)
	require.NoError(t, err)

	var n int
	for _, s := range p.Steps {
		if s.Func == "variablesToNtuple" {
			n++
		}
	}
	assert.Equal(t, 1, n)
}

func TestBuildBrokenChain(t *testing.T) {
	chain, err := decay.NewChain([]string{"B0 -> J/psi eta", "B0 -> J/psi eta"})
	require.NoError(t, err)

	_, err = Build(modes.JPsi2EEEta2GammaGamma, chain, config.Default())
	assert.ErrorIs(t, err, decay.ErrNoHeadFound)
}

func TestStrQuoting(t *testing.T) {
	assert.Equal(t, `'it\'s'`, Str("it's").Python())
	assert.Equal(t, `'a\\b'`, Str(`a\b`).Python())
}

func TestWriteScript(t *testing.T) {
	p := build(t, modes.JPsi2EEEta2PiPiGamma)

	var buf bytes.Buffer
	require.NoError(t, p.WriteScript(&buf))
	script := buf.String()

	assert.True(t, strings.HasPrefix(script, "#!/usr/bin/env python3\n"))
	assert.Contains(t, script, "# Reconstruction of jpsi2ee_eta2pipigamma\n")
	assert.Contains(t, script, "\nvx.vertexRave('B0', 0, 'B0 -> [J/psi -> ^e+ ^e-] [eta -> ^pi+ ^pi- gamma]', constraint='iptube', path=my_path)\n")
	assert.Contains(t, script, "\nma.fillParticleList('pi+', 'chiProb > 0.001 and pionID > 0.1', path=my_path)\n")
	assert.True(t, strings.HasSuffix(script, "b2.process(my_path)\nprint(b2.statistics)\n"))
}
