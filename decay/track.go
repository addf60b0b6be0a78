package decay

import "strings"

// Track is a single particle token appearing as a daughter in a decay
// declaration, e.g. "pi+" or "gamma".
type Track struct {
	name string
}

func NewTrack(raw string) Track {
	return Track{name: strings.TrimSpace(raw)}
}

func (t Track) Name() string {
	return t.name
}

// Charged reports whether the name carries a charge sign.
func (t Track) Charged() bool {
	return strings.ContainsAny(t.name, "+-")
}

// ChargeAgnostic strips every charge sign, so that a particle and its
// charge conjugate share one name.
func (t Track) ChargeAgnostic() string {
	return chargeAgnostic(t.name)
}

// FitMarked returns the name as it appears in a vertex-fit decay string.
// Charged tracks are prefixed with '^' to include them in the fit.
func (t Track) FitMarked() string {
	if t.Charged() {
		return "^" + t.name
	}
	return t.name
}

// Canonical folds charge conjugates onto the positive form: "pi-" and "pi+"
// both become "pi+".
func (t Track) Canonical() string {
	return strings.ReplaceAll(t.name, "-", "+")
}

// Conjugate swaps the charge signs of the name.
func (t Track) Conjugate() Track {
	return Track{name: conjugate(t.name)}
}

func (t Track) String() string {
	return t.name
}

func chargeAgnostic(name string) string {
	return strings.NewReplacer("+", "", "-", "").Replace(name)
}

func conjugate(name string) string {
	return strings.NewReplacer("+", "-", "-", "+").Replace(name)
}
