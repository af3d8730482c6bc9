package pomdpfile

import (
	"fmt"

	"github.com/katalvlaran/pomdp-parity/pomdp"
)

// build combines the parsed T and O tables into the joint transition
// δ(s,a)(s',o) = T(s,a,s') · O(a,s',o), matching the original's split
// trans/obsfun representation, and freezes everything into a pomdp.POMDP.
func (p *parser) build() (*pomdp.POMDP, error) {
	opts := []pomdp.Option{}
	if p.stateNames != nil {
		opts = append(opts, pomdp.WithStateNames(p.stateNames...))
	}
	if p.actionNames != nil {
		opts = append(opts, pomdp.WithActionNames(p.actionNames...))
	}
	if p.obsNames != nil {
		opts = append(opts, pomdp.WithObsNames(p.obsNames...))
	}
	if p.haveAtom {
		numAtoms := 0
		for _, ra := range p.atoms {
			if ra.val+1 > numAtoms {
				numAtoms = ra.val + 1
			}
		}
		opts = append(opts, pomdp.WithAtoms(numAtoms))
	}

	b := pomdp.NewBuilder(p.numStates, p.numActions, p.numObs, opts...)

	for s, prob := range p.start {
		if err := b.SetStart(s, prob); err != nil {
			return nil, fmt.Errorf("pomdpfile: %w", err)
		}
	}

	for s := 0; s < p.numStates; s++ {
		for a := 0; a < p.numActions; a++ {
			tRow := p.trans[[2]int{s, a}]
			if len(tRow) == 0 {
				continue
			}
			for next, tProb := range tRow {
				if tProb <= 0 {
					continue
				}
				oRow := p.obsT[[2]int{a, next}]
				for o, oProb := range oRow {
					if oProb <= 0 {
						continue
					}
					if err := b.SetTrans(s, a, next, o, tProb*oProb); err != nil {
						return nil, fmt.Errorf("pomdpfile: %w", err)
					}
				}
			}
		}
	}

	for _, ra := range p.prios {
		for _, name := range ra.names {
			idx, err := p.lookupState(name, ra.line)
			if err != nil {
				return nil, err
			}
			if err := b.SetPriority(idx, ra.val); err != nil {
				return nil, fmt.Errorf("pomdpfile: line %d: %w", ra.line, err)
			}
		}
	}
	for _, ra := range p.atoms {
		for _, name := range ra.names {
			idx, err := p.lookupObs(name, ra.line)
			if err != nil {
				return nil, err
			}
			if err := b.SetLabel(idx, ra.val, true); err != nil {
				return nil, fmt.Errorf("pomdpfile: line %d: %w", ra.line, err)
			}
		}
	}

	env, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("pomdpfile: %w", err)
	}
	return env, nil
}
