package automaton

import (
	"fmt"

	"github.com/katalvlaran/pomdp-parity/pomdp"
)

// Guard decides whether a transition fires for a given labelling.
type Guard func(pomdp.Labeling) bool

// Atom returns a Guard matching labellings where atom i holds.
func Atom(i int) Guard { return func(l pomdp.Labeling) bool { return l.Has(i) } }

// Not negates a Guard.
func Not(g Guard) Guard { return func(l pomdp.Labeling) bool { return !g(l) } }

// And conjoins Guards.
func And(gs ...Guard) Guard {
	return func(l pomdp.Labeling) bool {
		for _, g := range gs {
			if !g(l) {
				return false
			}
		}
		return true
	}
}

// Or disjoins Guards.
func Or(gs ...Guard) Guard {
	return func(l pomdp.Labeling) bool {
		for _, g := range gs {
			if g(l) {
				return true
			}
		}
		return false
	}
}

// True is a Guard matching every labelling; use it as a catch-all last
// transition in a state's guard list.
func True(pomdp.Labeling) bool { return true }

type transition struct {
	guard Guard
	next  int
}

// TableAutomaton is an explicit, hand-built Automaton: each state holds an
// ordered list of (guard, next) pairs, tried in order, with the first
// matching guard firing. It is meant for tests and for automata built
// directly from an external translator's output table, not for CompileLTL
// (which computes transitions analytically instead of storing a table).
type TableAutomaton struct {
	init        int
	priority    []int
	transitions [][]transition
	acceptance  ParityAcceptance
}

// TableBuilder accumulates a TableAutomaton before a validating Build call.
type TableBuilder struct {
	a TableAutomaton
}

// NewTableAutomaton starts a TableBuilder for an automaton with numStates
// states, initial state init, under the given acceptance convention.
func NewTableAutomaton(numStates, init int, acc ParityAcceptance) *TableBuilder {
	return &TableBuilder{a: TableAutomaton{
		init:        init,
		priority:    make([]int, numStates),
		transitions: make([][]transition, numStates),
		acceptance:  acc,
	}}
}

// AddTransition appends a guarded transition from q; guards on a state are
// tried in the order added.
func (b *TableBuilder) AddTransition(q int, guard Guard, next int) *TableBuilder {
	b.a.transitions[q] = append(b.a.transitions[q], transition{guard: guard, next: next})
	return b
}

// SetPriority assigns π(q).
func (b *TableBuilder) SetPriority(q, prio int) *TableBuilder {
	b.a.priority[q] = prio
	return b
}

// Build freezes the TableAutomaton. It does not check totality: an
// under-specified state surfaces ErrNoMatchingGuard from Delta instead,
// since totality can depend on which labellings are actually reachable.
func (b *TableBuilder) Build() (*TableAutomaton, error) {
	if b.a.init < 0 || b.a.init >= len(b.a.priority) {
		return nil, fmt.Errorf("automaton: init state %d: %w", b.a.init, ErrBadState)
	}
	a := b.a
	return &a, nil
}

func (a *TableAutomaton) NumStates() int { return len(a.priority) }
func (a *TableAutomaton) Init() int      { return a.init }
func (a *TableAutomaton) Priority(q int) int {
	return a.priority[q]
}
func (a *TableAutomaton) Acceptance() ParityAcceptance { return a.acceptance }

func (a *TableAutomaton) Delta(q int, labels pomdp.Labeling) (int, error) {
	for _, t := range a.transitions[q] {
		if t.guard(labels) {
			return t.next, nil
		}
	}
	return 0, fmt.Errorf("automaton: state %d: %w", q, ErrNoMatchingGuard)
}
