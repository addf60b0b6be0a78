// Package recoplan lays out the framework calls that reconstruct one decay
// mode, from loading the mDST input to writing per-particle ntuples.
//
// The plan is data; WriteScript turns it into a basf2 steering script.
package recoplan

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/decibelcooper/b2jpsieta/config"
	"github.com/decibelcooper/b2jpsieta/decay"
	"github.com/decibelcooper/b2jpsieta/modes"
)

// Framework modules the steps are called from.
const (
	Analysis = "ma"
	Vertex   = "vx"
)

// Arg is one argument of a framework call. Keyword arguments have a Name.
type Arg struct {
	Name  string
	Value Value
}

// Value is a Python literal or identifier.
type Value interface {
	Python() string
}

type Str string

func (s Str) Python() string {
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`, "\n", `\n`)
	return "'" + r.Replace(string(s)) + "'"
}

type Num float64

func (n Num) Python() string {
	return strconv.FormatFloat(float64(n), 'g', -1, 64)
}

// Ident refers to a variable defined by the steering script.
type Ident string

func (i Ident) Python() string {
	return string(i)
}

const (
	pathVar      = Ident("my_path")
	inputVar     = Ident("input_file")
	outputVar    = Ident("output_file")
	variablesVar = Ident("variables")
)

// Step is a single framework call.
type Step struct {
	Module string
	Func   string
	Args   []Arg
}

func (s Step) Python() string {
	args := make([]string, 0, len(s.Args)+1)
	for _, a := range s.Args {
		if a.Name == "" {
			args = append(args, a.Value.Python())
			continue
		}
		args = append(args, a.Name+"="+a.Value.Python())
	}
	args = append(args, "path="+pathVar.Python())
	return fmt.Sprintf("%s.%s(%s)", s.Module, s.Func, strings.Join(args, ", "))
}

// Plan is the ordered sequence of framework calls for one mode.
type Plan struct {
	Mode        modes.Mode
	Head        string
	DecayString string
	Steps       []Step
}

func pos(v Value) Arg             { return Arg{Value: v} }
func kw(name string, v Value) Arg { return Arg{Name: name, Value: v} }

func call(mod, fn string, a ...Arg) Step {
	return Step{Module: mod, Func: fn, Args: a}
}

// Build lays out the reconstruction of mode m from its decay chain.
func Build(m modes.Mode, chain *decay.Chain, cfg *config.Config) (*Plan, error) {
	head, err := chain.Head()
	if err != nil {
		return nil, err
	}
	decayString, err := chain.Render()
	if err != nil {
		return nil, err
	}
	ordered, err := chain.Ordered()
	if err != nil {
		return nil, err
	}

	p := &Plan{Mode: m, Head: head, DecayString: decayString}
	add := func(s Step) { p.Steps = append(p.Steps, s) }

	add(call(Analysis, "inputMdst", pos(Str("default")), pos(inputVar)))

	for _, fsp := range chain.FinalStateParticles() {
		add(call(Analysis, "fillParticleList", pos(Str(fsp)), pos(Str(cfg.Cuts[fsp]))))
	}

	// daughters must be reconstructed before their mothers
	for _, line := range ordered {
		add(call(Analysis, "reconstructDecay", pos(Str(line.Decay())), pos(Str(cfg.Cuts[line.Mother]))))
	}

	for _, mother := range chain.Mothers() {
		add(call(Analysis, "looseMCTruth", pos(Str(mother))))
	}

	add(call(Vertex, "vertexRave",
		pos(Str(head)),
		pos(Num(cfg.Vertex.ConfLevel)),
		pos(Str(decayString)),
		kw("constraint", Str(cfg.Vertex.Constraint)),
	))
	add(call(Analysis, "buildRestOfEvent", pos(Str(head))))
	add(call(Vertex, "TagV", pos(Str(head)), pos(Str(cfg.Vertex.TagConstraint)), pos(Num(cfg.Vertex.TagConfLevel))))
	add(call(Analysis, "buildEventKinematics"))
	add(call(Analysis, "buildEventShape"))

	for _, particle := range chain.Particles() {
		tree, ok := cfg.Trees[particle]
		if !ok {
			continue
		}
		add(call(Analysis, "variablesToNtuple",
			pos(Str(particle)),
			pos(variablesVar),
			kw("filename", outputVar),
			kw("treename", Str(tree)),
		))
	}

	return p, nil
}
