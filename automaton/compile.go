package automaton

import (
	"fmt"

	"github.com/katalvlaran/pomdp-parity/ltl"
	"github.com/katalvlaran/pomdp-parity/pomdp"
)

// propEval is a compiled propositional (non-temporal) subformula.
type propEval func(pomdp.Labeling) bool

// goal is one conjunct CompileLTL rotates through to detect infinitely
// often / eventually satisfaction. latch marks an F(prop) conjunct: once
// seen, it counts as satisfied on every subsequent round without needing
// to re-observe prop, which is how a one-shot reachability goal is folded
// into the same generalized-Büchi-to-Büchi counter as a recurring GF goal.
type goal struct {
	eval     propEval
	latch    bool
	latchBit int // index into the latch bitmask, valid only if latch
}

// compiledAutomaton implements Automaton by computing Delta, Init, and
// Priority analytically from a conjunction of safety, recurrence (GF), and
// reachability (F) conjuncts, instead of materializing a transition table.
// State ids encode (violated, counter, latchMask) bijectively; see encode
// and decode.
type compiledAutomaton struct {
	safety   []propEval
	goals    []goal
	numF     int // number of goals with latch == true
	counterN int // number of distinct counter values: len(goals)+1, or 1 if there are no goals
}

// CompileLTL translates f into a deterministic parity automaton covering
// conjunctions of:
//
//	G(prop)    - prop must hold at every step (safety)
//	G F(prop)  - prop must hold infinitely often (recurrence)
//	F(prop)    - prop must eventually hold (reachability)
//
// where prop is any Boolean combination of atoms (no nested temporal
// operators). Formulas outside this fragment - persistence (F G), any next
// (X) or until (U), or a bare top-level proposition -
// return ErrUnsupportedFormula. numAtoms bounds the atom indices f may
// reference.
func CompileLTL(f *ltl.Formula, numAtoms int) (Automaton, error) {
	if max := ltl.MaxAtom(f); max >= numAtoms {
		return nil, fmt.Errorf("automaton: formula references p%d, declared atoms=%d: %w", max, numAtoms, ErrAtomOutOfRange)
	}

	var conjuncts []*ltl.Formula
	flattenAnd(f, &conjuncts)

	ca := &compiledAutomaton{}
	for _, c := range conjuncts {
		switch {
		case c.Kind == ltl.KindAlways && isProp(c.Sub):
			ca.safety = append(ca.safety, compileProp(c.Sub))
		case c.Kind == ltl.KindAlways && c.Sub.Kind == ltl.KindEventually && isProp(c.Sub.Sub):
			ca.goals = append(ca.goals, goal{eval: compileProp(c.Sub.Sub)})
		case c.Kind == ltl.KindEventually && isProp(c.Sub):
			ca.goals = append(ca.goals, goal{eval: compileProp(c.Sub), latch: true})
		default:
			return nil, fmt.Errorf("automaton: conjunct %q: %w", c.String(), ErrUnsupportedFormula)
		}
	}

	for i := range ca.goals {
		if ca.goals[i].latch {
			ca.goals[i].latchBit = ca.numF
			ca.numF++
		}
	}
	ca.counterN = len(ca.goals) + 1
	if len(ca.goals) == 0 {
		ca.counterN = 1
	}
	return ca, nil
}

// flattenAnd collects the top-level conjunction leaves of f (f itself if
// it is not an And node).
func flattenAnd(f *ltl.Formula, out *[]*ltl.Formula) {
	if f.Kind == ltl.KindAnd {
		flattenAnd(f.Lhs, out)
		flattenAnd(f.Rhs, out)
		return
	}
	*out = append(*out, f)
}

// isProp reports whether f contains no temporal operator.
func isProp(f *ltl.Formula) bool {
	switch f.Kind {
	case ltl.KindAtom:
		return true
	case ltl.KindNot:
		return isProp(f.Sub)
	case ltl.KindAnd, ltl.KindOr:
		return isProp(f.Lhs) && isProp(f.Rhs)
	default:
		return false
	}
}

// compileProp compiles a propositional formula (isProp(f) must hold) into
// an evaluator over labels.
func compileProp(f *ltl.Formula) propEval {
	switch f.Kind {
	case ltl.KindAtom:
		i := f.AtomIndex
		return func(l pomdp.Labeling) bool { return l.Has(i) }
	case ltl.KindNot:
		sub := compileProp(f.Sub)
		return func(l pomdp.Labeling) bool { return !sub(l) }
	case ltl.KindAnd:
		lhs, rhs := compileProp(f.Lhs), compileProp(f.Rhs)
		return func(l pomdp.Labeling) bool { return lhs(l) && rhs(l) }
	case ltl.KindOr:
		lhs, rhs := compileProp(f.Lhs), compileProp(f.Rhs)
		return func(l pomdp.Labeling) bool { return lhs(l) || rhs(l) }
	default:
		panic("automaton: compileProp called on a non-propositional formula")
	}
}

// state decodes a compiledAutomaton state id.
type state struct {
	violated bool
	counter  int
	latch    int
}

func (ca *compiledAutomaton) encode(st state) int {
	if st.violated {
		return 0
	}
	return 1 + st.counter*(1<<ca.numF) + st.latch
}

func (ca *compiledAutomaton) decode(q int) state {
	if q == 0 {
		return state{violated: true}
	}
	q--
	latchSpace := 1 << ca.numF
	return state{counter: q / latchSpace, latch: q % latchSpace}
}

func (ca *compiledAutomaton) NumStates() int { return 1 + ca.counterN*(1<<ca.numF) }

func (ca *compiledAutomaton) Init() int { return ca.encode(state{}) }

func (ca *compiledAutomaton) Acceptance() ParityAcceptance { return SingleAcc }

// Priority marks a state accepting (0) when there are no recurrence/
// reachability goals to rotate through, or when the counter has just
// completed a full pass over all of them (counter == len(goals), the
// wrapped marker value); every other state, including the violated sink,
// is rejecting (1).
//
// The counter's range is 0..len(goals) inclusive rather than 0..len(goals)-1:
// without the extra marker value, "awaiting goal 0" and "just finished a
// full rotation" both encode as counter == 0 and Priority could not tell a
// run that is permanently stuck awaiting the first goal from one that keeps
// satisfying it - degenerating to always-accepting for a lone G F goal.
func (ca *compiledAutomaton) Priority(q int) int {
	st := ca.decode(q)
	if st.violated {
		return 1
	}
	if len(ca.goals) == 0 || st.counter == len(ca.goals) {
		return 0
	}
	return 1
}

func (ca *compiledAutomaton) Delta(q int, labels pomdp.Labeling) (int, error) {
	st := ca.decode(q)
	if st.violated {
		return q, nil
	}
	for _, s := range ca.safety {
		if !s(labels) {
			return ca.encode(state{violated: true}), nil
		}
	}
	if len(ca.goals) == 0 {
		return ca.encode(state{}), nil
	}
	newLatch := st.latch
	for _, g := range ca.goals {
		if g.latch && g.eval(labels) {
			newLatch |= 1 << g.latchBit
		}
	}

	counter := st.counter
	if counter == len(ca.goals) {
		counter = 0 // marker consumed, re-arm at goal 0
	}
	// Cascade through every consecutive goal (starting at the currently
	// awaited index) this step's labels already satisfy, stopping at the
	// first one that doesn't hold. A goal latched permanently true is
	// always satisfied; a recurring (G F) goal is satisfied only when this
	// step's label witnesses it. Advancing more than one index per step
	// this way is still sound: reaching the marker still requires every
	// goal to have been individually witnessed true at its own
	// examination, whether that happens on the same step or spread across
	// several - it just lets goals that share a single observation close
	// out the rotation in one round instead of one index at a time.
	for counter < len(ca.goals) {
		g := ca.goals[counter]
		var satisfied bool
		if g.latch {
			satisfied = newLatch&(1<<g.latchBit) != 0
		} else {
			satisfied = g.eval(labels)
		}
		if !satisfied {
			break
		}
		counter++
	}
	return ca.encode(state{counter: counter, latch: newLatch}), nil
}
