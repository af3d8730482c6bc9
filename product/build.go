package product

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/pomdp-parity/automaton"
	"github.com/katalvlaran/pomdp-parity/pomdp"
)

// Build computes the synchronous product of env and aut. Every product
// state is materialized, including ones unreachable from the initial
// distribution; beliefmdp's forward exploration is what actually bounds
// the reachable fragment that matters.
func Build(env *pomdp.POMDP, aut automaton.Automaton) (*Product, error) {
	numS := env.NumStates()
	numQ := aut.NumStates()
	numA := env.NumActions()
	numO := env.NumObs()

	p := &Product{
		numPStates:   numS,
		numAutStates: numQ,
		numActions:   numA,
		numObs:       numO,
		trans:        make([][][]Outcome, numS*numQ),
		start:        make([]float64, numS*numQ),
		priority:     make([]int, numS*numQ),
		env:          env,
	}

	for q := 0; q < numQ; q++ {
		prio := aut.Priority(q)
		if aut.Acceptance() == automaton.SingleAcc && prio == 0 {
			prio = 2
		}
		for s := 0; s < numS; s++ {
			p.priority[p.Idx(s, q)] = prio
		}
	}

	for q := 0; q < numQ; q++ {
		for s := 0; s < numS; s++ {
			idx := p.Idx(s, q)
			for a := 0; a < numA; a++ {
				row := env.Trans(s, a)
				if len(row) == 0 {
					continue
				}
				outs := make([]Outcome, 0, len(row))
				for _, o := range row {
					q2, err := aut.Delta(q, env.Label(o.Obs))
					if err != nil {
						return nil, fmt.Errorf("product: state (%s,%d) action %s obs %s: %w", env.StateName(s), q, env.ActionName(a), env.ObsName(o.Obs), ErrAlphabetMismatch)
					}
					outs = append(outs, Outcome{Next: p.Idx(o.Next, q2), Obs: o.Obs, Prob: o.Prob})
				}
				sort.Slice(outs, func(i, j int) bool {
					if outs[i].Next != outs[j].Next {
						return outs[i].Next < outs[j].Next
					}
					return outs[i].Obs < outs[j].Obs
				})
				p.trans[idx][a] = outs
			}
		}
	}

	q0 := aut.Init()
	for s := 0; s < numS; s++ {
		if start := env.Start(s); start > 0 {
			p.start[p.Idx(s, q0)] = start
		}
	}

	return p, nil
}
