// Package modes describes the B0 -> J/psi eta decay modes studied in the
// analysis: which sub-decays each mode contains, its LaTeX label and the
// branching ratios that enter the predicted yield.
package modes

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Mode identifies one decay mode as "<J/psi channel>_<eta channel>".
type Mode string

const (
	JPsi2EEEta2GammaGamma   Mode = "jpsi2ee_eta2gammagamma"
	JPsi2MuMuEta2GammaGamma Mode = "jpsi2mumu_eta2gammagamma"
	JPsi2EEEta2PiPiGamma    Mode = "jpsi2ee_eta2pipigamma"
	JPsi2MuMuEta2PiPiGamma  Mode = "jpsi2mumu_eta2pipigamma"
	JPsi2EEEta2PiPiPi0      Mode = "jpsi2ee_eta2pipipi0"
	JPsi2MuMuEta2PiPiPi0    Mode = "jpsi2mumu_eta2pipipi0"
	JPsi2EEEta23Pi0         Mode = "jpsi2ee_eta23pi0"
	JPsi2MuMuEta23Pi0       Mode = "jpsi2mumu_eta23pi0"
)

// Channel keys, as used in mode names and branching-ratio tables.
const (
	JPsi2EE        = "jpsi2ee"
	JPsi2MuMu      = "jpsi2mumu"
	Eta2GammaGamma = "eta2gammagamma"
	Eta2PiPiGamma  = "eta2pipigamma"
	Eta2PiPiPi0    = "eta2pipipi0"
	Eta23Pi0       = "eta23pi0"
)

var ErrUnknownMode = errors.New("modes: unknown decay mode")

var all = []Mode{
	JPsi2EEEta2GammaGamma,
	JPsi2MuMuEta2GammaGamma,
	JPsi2EEEta2PiPiGamma,
	JPsi2MuMuEta2PiPiGamma,
	JPsi2EEEta2PiPiPi0,
	JPsi2MuMuEta2PiPiPi0,
	JPsi2EEEta23Pi0,
	JPsi2MuMuEta23Pi0,
}

// All returns every mode in table order.
func All() []Mode {
	out := make([]Mode, len(all))
	copy(out, all)
	return out
}

func ParseMode(s string) (Mode, error) {
	for _, m := range all {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// FromFile extracts the mode from a file name such as
// "root_files/jpsi2ee_eta23pi0_0.root".
func FromFile(path string) (Mode, error) {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	parts := strings.Split(base, "_")
	if len(parts) < 2 {
		return "", fmt.Errorf("%w: cannot find mode in file name %q", ErrUnknownMode, path)
	}
	return ParseMode(parts[0] + "_" + parts[1])
}

func (m Mode) JPsiChannel() string {
	jpsi, _, _ := strings.Cut(string(m), "_")
	return jpsi
}

func (m Mode) EtaChannel() string {
	_, eta, _ := strings.Cut(string(m), "_")
	return eta
}

func (m Mode) Info() Info {
	return Detect(string(m))
}

// SubDecays returns the decay declarations of the mode, head first.
func (m Mode) SubDecays() []string {
	info := m.Info()
	decls := []string{"B0 -> J/psi eta"}

	switch {
	case info.HasJPsi2EE:
		decls = append(decls, "J/psi -> e+ e-")
	case info.HasJPsi2MuMu:
		decls = append(decls, "J/psi -> mu+ mu-")
	}

	switch {
	case info.HasEta2GammaGamma:
		decls = append(decls, "eta -> gamma gamma")
	case info.HasEta2PiPiGamma:
		decls = append(decls, "eta -> pi+ pi- gamma")
	case info.HasEta2PiPiPi0:
		decls = append(decls, "eta -> pi+ pi- pi0", "pi0 -> gamma gamma")
	case info.HasEta23Pi0:
		decls = append(decls, "eta -> pi0 pi0 pi0", "pi0 -> gamma gamma")
	}
	return decls
}

var latex = map[Mode]string{
	JPsi2EEEta2GammaGamma:   `B\rightarrow[ee]_{J/\psi}[\gamma\gamma]_\eta`,
	JPsi2MuMuEta2GammaGamma: `B\rightarrow[\mu\mu]_{J/\psi}[\gamma\gamma]_\eta`,
	JPsi2EEEta2PiPiGamma:    `B\rightarrow[ee]_{J/\psi}[\pi\pi\gamma]_\eta`,
	JPsi2MuMuEta2PiPiGamma:  `B\rightarrow[\mu\mu]_{J/\psi}[\pi\pi\gamma]_\eta`,
	JPsi2EEEta2PiPiPi0:      `B\rightarrow[ee]_{J/\psi}[\pi\pi\pi^0]_\eta`,
	JPsi2MuMuEta2PiPiPi0:    `B\rightarrow[\mu\mu]_{J/\psi}[\pi\pi\pi^0]_\eta`,
	JPsi2EEEta23Pi0:         `B\rightarrow[ee]_{J/\psi}[\pi^0\pi^0\pi^0]_\eta`,
	JPsi2MuMuEta23Pi0:       `B\rightarrow[\mu\mu]_{J/\psi}[\pi^0\pi^0\pi^0]_\eta`,
}

// LaTeX returns the math-mode label of the mode, without '$' delimiters.
func (m Mode) LaTeX() string {
	return latex[m]
}

func (m Mode) String() string {
	return string(m)
}

// Info records which sub-decays a mode contains.
type Info struct {
	HasJPsi2EE   bool
	HasJPsi2MuMu bool

	HasEta2GammaGamma bool
	HasEta2PiPiPi0    bool
	HasEta2PiPiGamma  bool
	HasEta23Pi0       bool
}

// Detect inspects any string naming a mode, such as a file path, and reports
// the sub-decays it mentions.
func Detect(s string) Info {
	return Info{
		HasJPsi2EE:        strings.Contains(s, JPsi2EE),
		HasJPsi2MuMu:      strings.Contains(s, JPsi2MuMu),
		HasEta2GammaGamma: strings.Contains(s, Eta2GammaGamma),
		HasEta2PiPiPi0:    strings.Contains(s, Eta2PiPiPi0),
		HasEta2PiPiGamma:  strings.Contains(s, Eta2PiPiGamma),
		HasEta23Pi0:       strings.Contains(s, Eta23Pi0),
	}
}
