package tlsf

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var (
	inputsBlockRe = regexp.MustCompile(`(?s)INPUTS\s*\{([^}]+)\}`)
	guaranteesRe  = regexp.MustCompile(`(?s)GUARANTEES\s*\{([^}]+)\}`)
	inputAtomRe   = regexp.MustCompile(`p(\d+)\s*;`)
)

// Spec is the reduction of a TLSF file's INPUTS and GUARANTEES blocks: a
// single conjoined LTL formula string (in ltl.Parse's surface syntax) and
// the sorted atom indices the INPUTS block declared.
type Spec struct {
	Formula string
	Inputs  []int
}

// Parse reads content (the full text of a .tlsf file) and extracts its
// INPUTS and GUARANTEES sections.
func Parse(content string) (Spec, error) {
	var spec Spec

	if m := inputsBlockRe.FindStringSubmatch(content); m != nil {
		seen := make(map[int]struct{})
		for _, am := range inputAtomRe.FindAllStringSubmatch(m[1], -1) {
			n, err := strconv.Atoi(am[1])
			if err != nil {
				continue
			}
			seen[n] = struct{}{}
		}
		for n := range seen {
			spec.Inputs = append(spec.Inputs, n)
		}
		sort.Ints(spec.Inputs)
	}

	gm := guaranteesRe.FindStringSubmatch(content)
	if gm == nil {
		return Spec{}, ErrNoGuarantees
	}

	var conjuncts []string
	for _, line := range strings.Split(gm[1], "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		if !strings.HasSuffix(line, ";") {
			continue
		}
		formula := strings.TrimSpace(strings.TrimSuffix(line, ";"))
		formula = desugar(formula)
		if formula != "" {
			conjuncts = append(conjuncts, formula)
		}
	}
	if len(conjuncts) == 0 {
		return Spec{}, ErrNoGuarantees
	}

	spec.Formula = "(" + strings.Join(conjuncts, ") & (") + ")"
	return spec, nil
}

// desugar rewrites TLSF's ASCII operator spellings to the ltl package's
// surface syntax: && and || collapse to & and |, and the backslash
// escapes TLSF uses before !, &, | are stripped.
func desugar(formula string) string {
	formula = strings.ReplaceAll(formula, "&&", "&")
	formula = strings.ReplaceAll(formula, "||", "|")
	formula = strings.ReplaceAll(formula, `\!`, "!")
	formula = strings.ReplaceAll(formula, `\&`, "&")
	formula = strings.ReplaceAll(formula, `\|`, "|")
	return formula
}

// String renders the extracted spec for logging.
func (s Spec) String() string {
	return fmt.Sprintf("formula=%q inputs=%v", s.Formula, s.Inputs)
}
