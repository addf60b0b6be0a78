package decay

import (
	"fmt"
	"strings"
)

const arrow = "->"

// Line is one mother -> daughters declaration, e.g. "J/psi -> e+ e-".
type Line struct {
	Mother    string
	Daughters []Track
}

// ParseLine parses a declaration of the form "<mother> -> <d1> <d2> ...".
func ParseLine(s string) (Line, error) {
	if strings.Count(s, arrow) != 1 {
		return Line{}, fmt.Errorf("%w: %q: want exactly one %q", ErrMalformedDecayLine, s, arrow)
	}

	lhs, rhs, _ := strings.Cut(s, arrow)
	mother := strings.Fields(lhs)
	if len(mother) != 1 {
		return Line{}, fmt.Errorf("%w: %q: want a single mother particle", ErrMalformedDecayLine, s)
	}

	tokens := strings.Fields(rhs)
	if len(tokens) == 0 {
		return Line{}, fmt.Errorf("%w: %q: no daughters", ErrMalformedDecayLine, s)
	}

	daughters := make([]Track, len(tokens))
	for i, tok := range tokens {
		daughters[i] = NewTrack(tok)
	}

	return Line{Mother: mother[0], Daughters: daughters}, nil
}

// Decay returns the plain declaration, as passed to the framework's
// reconstructDecay call.
func (l Line) Decay() string {
	names := make([]string, len(l.Daughters))
	for i, d := range l.Daughters {
		names[i] = d.Name()
	}
	return l.Mother + " " + arrow + " " + strings.Join(names, " ")
}

// String renders the bracketed, fit-marked form "[<mother> -> ^d1 d2] ".
// The trailing space is part of the format.
func (l Line) String() string {
	marked := make([]string, len(l.Daughters))
	for i, d := range l.Daughters {
		marked[i] = d.FitMarked()
	}
	return "[" + l.Mother + " " + arrow + " " + strings.Join(marked, " ") + "] "
}

func (l Line) key() string {
	return chargeAgnostic(l.Mother)
}

func (l Line) conjugate() Line {
	daughters := make([]Track, len(l.Daughters))
	for i, d := range l.Daughters {
		daughters[i] = d.Conjugate()
	}
	return Line{Mother: conjugate(l.Mother), Daughters: daughters}
}
