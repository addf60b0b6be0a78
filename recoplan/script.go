package recoplan

import (
	"io"
	"text/template"
)

var scriptTmpl = template.Must(template.New("steering").Parse(`#!/usr/bin/env python3
# Reconstruction of {{.Mode}}
# Vertex fit: {{.DecayString}}
#
# Usage: basf2 {{.Mode}}.py <input-mdst> <output-ntuple>

import sys

import basf2 as b2
import modularAnalysis as ma
import variables.collections as vc
import variables.utils as vu
import vertex as vx

input_file, output_file = sys.argv[1:3]
my_path = b2.create_path()

cms_kinematics = vu.create_aliases(vc.kinematics, "useCMSFrame({variable})", prefix="CMS")
variables = (
    vc.kinematics
    + cms_kinematics
    + vc.deltae_mbc
    + vc.inv_mass
    + vc.event_shape
    + vc.vertex
    + vc.mc_truth
    + vc.mc_kinematics
    + vc.mc_vertex
    + vc.mc_tag_vertex
)
{{range .Steps}}
{{.Python}}{{end}}

b2.process(my_path)
print(b2.statistics)
`))

// WriteScript writes the plan as a basf2 steering script.
func (p *Plan) WriteScript(w io.Writer) error {
	return scriptTmpl.Execute(w, p)
}
