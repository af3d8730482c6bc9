package dot

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/pomdp-parity/automaton"
	"github.com/katalvlaran/pomdp-parity/pomdp"
)

// Automaton renders aut as `automaton.dot`, enumerating the full 2^numAtoms
// labelling space at each state and grouping edges by destination so the
// graph stays readable even though the translator exposes no symbolic
// guard representation, only a raw Delta function.
func Automaton(aut automaton.Automaton, numAtoms int) (string, error) {
	var b strings.Builder
	b.WriteString("digraph automaton {\n")
	b.WriteString("  rankdir=LR;\n")

	for q := 0; q < aut.NumStates(); q++ {
		shape := "circle"
		if q == aut.Init() {
			shape = "doublecircle"
		}
		fmt.Fprintf(&b, "  q%d [shape=%s, label=%q];\n", q, shape, fmt.Sprintf("q%d (prio %d)", q, aut.Priority(q)))
	}

	numLabels := 1 << uint(numAtoms)
	for q := 0; q < aut.NumStates(); q++ {
		byDst := make(map[int][]string)
		for l := 0; l < numLabels; l++ {
			labels := pomdp.Labeling(l)
			dst, err := aut.Delta(q, labels)
			if err != nil {
				return "", err
			}
			byDst[dst] = append(byDst[dst], bitstring(l, numAtoms))
		}
		dsts := make([]int, 0, len(byDst))
		for d := range byDst {
			dsts = append(dsts, d)
		}
		sort.Ints(dsts)
		for _, d := range dsts {
			sort.Strings(byDst[d])
			fmt.Fprintf(&b, "  q%d -> q%d [label=%q];\n", q, d, strings.Join(byDst[d], ","))
		}
	}

	b.WriteString("}\n")
	return b.String(), nil
}

func bitstring(v, width int) string {
	if width == 0 {
		return "true"
	}
	var sb strings.Builder
	for i := width - 1; i >= 0; i-- {
		if v&(1<<uint(i)) != 0 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
