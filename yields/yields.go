// Package yields predicts signal yields of B0 -> J/psi eta modes.
package yields

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/decibelcooper/b2jpsieta/modes"
)

// Info is the breakdown of a predicted signal yield.
type Info struct {
	Mode modes.Mode

	NumBB     float64 // B-Bbar pairs
	B2JPsiEta float64
	JPsi      float64
	Eta       float64
	Det       float64 // detection efficiency

	Total float64
	// RelUncertainty is the relative uncertainty on Total from the
	// branching ratios alone.
	RelUncertainty float64

	LaTeX string
}

// Predict computes the expected number of signal events of a mode given
// numBB B-Bbar pairs and a detection efficiency.
func Predict(m modes.Mode, r modes.Ratios, numBB, det float64) (Info, error) {
	jpsi, err := r.Channel(m.JPsiChannel())
	if err != nil {
		return Info{}, err
	}
	eta, err := r.Channel(m.EtaChannel())
	if err != nil {
		return Info{}, err
	}

	brs := []modes.BranchingRatio{r.B02JPsiEta, jpsi, eta}
	rel := make([]float64, len(brs))
	for i, br := range brs {
		if br.Value <= 0 {
			return Info{}, fmt.Errorf("yields: %s: non-positive branching ratio %g", m, br.Value)
		}
		rel[i] = br.Uncertainty / br.Value
	}

	return Info{
		Mode:           m,
		NumBB:          numBB,
		B2JPsiEta:      r.B02JPsiEta.Value,
		JPsi:           jpsi.Value,
		Eta:            eta.Value,
		Det:            det,
		Total:          floats.Prod([]float64{numBB, r.B02JPsiEta.Value, jpsi.Value, eta.Value, det}),
		RelUncertainty: floats.Norm(rel, 2),
		LaTeX:          "$" + m.LaTeX() + "$",
	}, nil
}
