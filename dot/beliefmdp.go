package dot

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/pomdp-parity/beliefmdp"
)

// BeliefMDP renders m as `belief_support_mdp.dot`: one node per belief,
// labelled with its support pairs and priority, and one edge per action
// per successor belief (actions sharing a successor are merged onto one
// edge label).
func BeliefMDP(m *beliefmdp.BeliefMDP) string {
	var b strings.Builder
	b.WriteString("digraph belief_support_mdp {\n")
	fmt.Fprintf(&b, "  // source: %s\n", m.EnvName())
	b.WriteString("  rankdir=LR;\n")

	for i := 0; i < m.NumBeliefs(); i++ {
		attrs := "shape=box"
		if i == m.Start() {
			attrs = "shape=box, peripheries=2"
		}
		fmt.Fprintf(&b, "  b%d [%s, label=%q];\n", i, attrs, fmt.Sprintf("%s (prio %d)", beliefLabel(m.Belief(i)), m.Priority(i)))
	}

	for i := 0; i < m.NumBeliefs(); i++ {
		byDst := make(map[int][]string)
		for a := 0; a < m.NumActions(); a++ {
			for _, dst := range m.Succ(i, a) {
				byDst[dst] = append(byDst[dst], m.ActionName(a))
			}
		}
		dsts := make([]int, 0, len(byDst))
		for dst := range byDst {
			dsts = append(dsts, dst)
		}
		sort.Ints(dsts)
		for _, dst := range dsts {
			fmt.Fprintf(&b, "  b%d -> b%d [label=%q];\n", i, dst, strings.Join(byDst[dst], ","))
		}
	}

	b.WriteString("}\n")
	return b.String()
}

func beliefLabel(belief beliefmdp.Belief) string {
	parts := make([]string, len(belief))
	for i, pair := range belief {
		parts[i] = "(" + strconv.Itoa(pair.S) + "," + strconv.Itoa(pair.Q) + ")"
	}
	return strings.Join(parts, " ")
}
