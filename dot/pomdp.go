package dot

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/pomdp-parity/pomdp"
)

// POMDP renders env as `pomdp.dot`: solid edges for transitions, dotted
// nodes and edges for observations, following the shape of the original
// tool's pomdp.py::show.
func POMDP(env *pomdp.POMDP) string {
	var b strings.Builder
	b.WriteString("digraph pomdp {\n")
	b.WriteString("  rankdir=LR;\n")

	for s := 0; s < env.NumStates(); s++ {
		fmt.Fprintf(&b, "  s%d [label=%q];\n", s, env.StateName(s))
	}
	for o := 0; o < env.NumObs(); o++ {
		fmt.Fprintf(&b, "  z%d [label=%q, style=dotted];\n", o, env.ObsName(o))
	}

	for s := 0; s < env.NumStates(); s++ {
		for a := 0; a < env.NumActions(); a++ {
			for _, out := range env.Trans(s, a) {
				if out.Prob <= 0 {
					continue
				}
				fmt.Fprintf(&b, "  s%d -> s%d [label=%q];\n", s, out.Next, fmt.Sprintf("%s : %g", env.ActionName(a), out.Prob))
				fmt.Fprintf(&b, "  s%d -> z%d [label=%q, style=dotted];\n", out.Next, out.Obs, fmt.Sprintf("%s : %g", env.ActionName(a), out.Prob))
			}
		}
	}

	b.WriteString("}\n")
	return b.String()
}
