package dot

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/pomdp-parity/product"
)

// Product renders p as `product_pomdp.dot`: one node per (pomdp-state,
// automaton-state) pair, labelled with its priority, and one edge per
// nonzero outcome.
func Product(p *product.Product) string {
	var b strings.Builder
	b.WriteString("digraph product_pomdp {\n")
	b.WriteString("  rankdir=LR;\n")

	for idx := 0; idx < p.NumStates(); idx++ {
		fmt.Fprintf(&b, "  n%d [label=%q];\n", idx, fmt.Sprintf("%s (prio %d)", p.StateName(idx), p.Priority(idx)))
	}

	for idx := 0; idx < p.NumStates(); idx++ {
		for a := 0; a < p.NumActions(); a++ {
			for _, out := range p.Trans(idx, a) {
				if out.Prob <= 0 {
					continue
				}
				fmt.Fprintf(&b, "  n%d -> n%d [label=%q];\n", idx, out.Next, fmt.Sprintf("%s/%s : %g", p.ActionName(a), p.ObsName(out.Obs), out.Prob))
			}
		}
	}

	b.WriteString("}\n")
	return b.String()
}
