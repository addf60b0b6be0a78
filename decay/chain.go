// Package decay resolves a set of decay declarations into a decay tree.
//
// A chain such as
//
//	B0 -> J/psi eta
//	J/psi -> e+ e-
//	eta -> gamma gamma
//
// yields the final-state particles {e+, gamma}, the head B0 and the
// vertex-fit decay string "B0 -> [J/psi -> ^e+ ^e-] [eta -> gamma gamma]".
package decay

import (
	"fmt"
	"sort"
	"strings"
)

// Chain is an immutable decay tree built from decay declarations.
//
// Lines are stored in an arena and linked by index: children[i][j] is the
// index of the line declaring the decay of daughter j of line i, or -1 when
// that daughter is a final-state particle.
type Chain struct {
	lines    []Line
	children [][]int
	exact    map[string]int // first line per literal mother
	agnostic map[string]int // first line per charge-agnostic mother
}

// NewChain parses every declaration and links daughters to the lines that
// declare their decays. A daughter links to the line whose mother has the
// same literal name; failing that, to a line declaring its charge conjugate.
// Structural problems other than malformed lines are reported by Head,
// Render and Validate.
func NewChain(decls []string) (*Chain, error) {
	c := &Chain{
		lines:    make([]Line, 0, len(decls)),
		exact:    make(map[string]int, len(decls)),
		agnostic: make(map[string]int, len(decls)),
	}

	for _, s := range decls {
		line, err := ParseLine(s)
		if err != nil {
			return nil, err
		}
		if _, dup := c.exact[line.Mother]; !dup {
			c.exact[line.Mother] = len(c.lines)
		}
		if _, dup := c.agnostic[line.key()]; !dup {
			c.agnostic[line.key()] = len(c.lines)
		}
		c.lines = append(c.lines, line)
	}

	c.children = make([][]int, len(c.lines))
	for i, line := range c.lines {
		c.children[i] = make([]int, len(line.Daughters))
		for j, d := range line.Daughters {
			c.children[i][j] = c.lookup(d)
		}
	}

	return c, nil
}

func (c *Chain) lookup(d Track) int {
	if k, ok := c.exact[d.Name()]; ok {
		return k
	}
	if k, ok := c.agnostic[d.ChargeAgnostic()]; ok {
		return k
	}
	return -1
}

// Lines returns the declarations in their original order.
func (c *Chain) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Mothers returns the mother of every declaration, in declaration order.
func (c *Chain) Mothers() []string {
	out := make([]string, len(c.lines))
	for i, line := range c.lines {
		out[i] = line.Mother
	}
	return out
}

// FinalStateParticles returns the sorted set of daughters that never decay
// further in the chain. Charge conjugates are folded onto the '+' form.
func (c *Chain) FinalStateParticles() []string {
	set := make(map[string]struct{})
	for i, line := range c.lines {
		for j, d := range line.Daughters {
			if c.children[i][j] < 0 {
				set[d.Canonical()] = struct{}{}
			}
		}
	}

	out := make([]string, 0, len(set))
	for name := range set {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Particles returns every mother followed by every final-state particle.
func (c *Chain) Particles() []string {
	return append(c.Mothers(), c.FinalStateParticles()...)
}

// Head returns the unique mother that is not a daughter of any line.
func (c *Chain) Head() (string, error) {
	i, err := c.head()
	if err != nil {
		return "", err
	}
	return c.lines[i].Mother, nil
}

func (c *Chain) head() (int, error) {
	daughters := make(map[string]bool)
	for _, line := range c.lines {
		for _, d := range line.Daughters {
			daughters[d.ChargeAgnostic()] = true
		}
	}

	var cands []int
	for i, line := range c.lines {
		if !daughters[line.key()] {
			cands = append(cands, i)
		}
	}

	switch len(cands) {
	case 1:
		return cands[0], nil
	case 0:
		return -1, fmt.Errorf("%w: every mother is also a daughter", ErrNoHeadFound)
	default:
		names := make([]string, len(cands))
		for i, k := range cands {
			names[i] = c.lines[k].Mother
		}
		return -1, fmt.Errorf("%w: candidates %q", ErrNoHeadFound, names)
	}
}

// Render returns the nested decay string expected by the vertex fit. The
// head is left unbracketed, every sub-decay is bracketed and charged
// final-state tracks are fit-marked.
func (c *Chain) Render() (string, error) {
	h, err := c.head()
	if err != nil {
		return "", err
	}

	var (
		b    strings.Builder
		seen = make([]bool, len(c.lines))
	)
	if err := c.render(&b, c.lines[h], h, seen, 0); err != nil {
		return "", err
	}
	if err := c.unreached(seen); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (c *Chain) render(b *strings.Builder, line Line, i int, seen []bool, depth int) error {
	if depth > len(c.lines) {
		return fmt.Errorf("%w: cycle through %q", ErrDisconnectedChain, line.Mother)
	}
	seen[i] = true

	b.WriteString(line.Mother)
	b.WriteString(" " + arrow)
	for j, d := range line.Daughters {
		b.WriteByte(' ')
		k := c.children[i][j]
		if k < 0 {
			b.WriteString(d.FitMarked())
			continue
		}

		sub := c.lines[k]
		if d.Name() != sub.Mother {
			// charge conjugate of a declared decay
			sub = sub.conjugate()
		}
		b.WriteByte('[')
		if err := c.render(b, sub, k, seen, depth+1); err != nil {
			return err
		}
		b.WriteByte(']')
	}
	return nil
}

// Ordered returns every declaration reachable from the head with daughters
// before their mothers, which is the order in which the framework must
// reconstruct them. Each declaration appears once.
func (c *Chain) Ordered() ([]Line, error) {
	h, err := c.head()
	if err != nil {
		return nil, err
	}

	var (
		out   []Line
		seen  = make([]bool, len(c.lines))
		visit func(i, depth int) error
	)
	visit = func(i, depth int) error {
		if depth > len(c.lines) {
			return fmt.Errorf("%w: cycle through %q", ErrDisconnectedChain, c.lines[i].Mother)
		}
		for _, k := range c.children[i] {
			if k >= 0 && !seen[k] {
				if err := visit(k, depth+1); err != nil {
					return err
				}
			}
		}
		if !seen[i] {
			seen[i] = true
			out = append(out, c.lines[i])
		}
		return nil
	}

	if err := visit(h, 0); err != nil {
		return nil, err
	}
	if err := c.unreached(seen); err != nil {
		return nil, err
	}
	return out, nil
}

// Validate checks that the chain has a unique head and that every
// declaration is reachable from it.
func (c *Chain) Validate() error {
	_, err := c.Render()
	return err
}

func (c *Chain) unreached(seen []bool) error {
	var lost []string
	for i, ok := range seen {
		if !ok {
			lost = append(lost, c.lines[i].Mother)
		}
	}
	if len(lost) > 0 {
		return fmt.Errorf("%w: unreachable mothers %q", ErrDisconnectedChain, lost)
	}
	return nil
}
