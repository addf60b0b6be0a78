package modes

import "fmt"

// BranchingRatio is a measured branching fraction and its uncertainty.
type BranchingRatio struct {
	Value       float64 `yaml:"value"`
	Uncertainty float64 `yaml:"uncertainty"`
}

// Ratios holds every branching ratio entering a B0 -> J/psi eta yield.
type Ratios struct {
	B02JPsiEta BranchingRatio `yaml:"b02jpsi_eta"`

	JPsi2EE   BranchingRatio `yaml:"jpsi2ee"`
	JPsi2MuMu BranchingRatio `yaml:"jpsi2mumu"`

	Eta2GammaGamma BranchingRatio `yaml:"eta2gammagamma"`
	Eta23Pi0       BranchingRatio `yaml:"eta23pi0"`
	Eta2PiPiPi0    BranchingRatio `yaml:"eta2pipipi0"`
	Eta2PiPiGamma  BranchingRatio `yaml:"eta2pipigamma"`
}

// DefaultRatios returns the PDG values.
func DefaultRatios() Ratios {
	return Ratios{
		B02JPsiEta: BranchingRatio{1.08e-5, 0.23e-5},

		JPsi2EE:   BranchingRatio{5.971e-2, 0.032e-2},
		JPsi2MuMu: BranchingRatio{5.961e-2, 0.033e-2},

		Eta2GammaGamma: BranchingRatio{39.41e-2, 0.20e-2},
		Eta23Pi0:       BranchingRatio{32.68e-2, 0.23e-2},
		Eta2PiPiPi0:    BranchingRatio{22.92e-2, 0.28e-2},
		Eta2PiPiGamma:  BranchingRatio{4.22e-2, 0.08e-2},
	}
}

// Channel looks up a J/psi or eta channel by key, e.g. "jpsi2ee".
func (r Ratios) Channel(key string) (BranchingRatio, error) {
	switch key {
	case JPsi2EE:
		return r.JPsi2EE, nil
	case JPsi2MuMu:
		return r.JPsi2MuMu, nil
	case Eta2GammaGamma:
		return r.Eta2GammaGamma, nil
	case Eta23Pi0:
		return r.Eta23Pi0, nil
	case Eta2PiPiPi0:
		return r.Eta2PiPiPi0, nil
	case Eta2PiPiGamma:
		return r.Eta2PiPiGamma, nil
	}
	return BranchingRatio{}, fmt.Errorf("%w: no branching ratio for channel %q", ErrUnknownMode, key)
}
