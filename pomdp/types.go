package pomdp

import (
	"math/bits"
	"strconv"
)

// Labeling is a bitset over atomic propositions: bit i set means p_i holds.
// 64 atoms is far beyond what any realistic LTL specification in this
// system's scope needs, so a single uint64 keeps labels comparable and
// hashable without an allocation, unlike a []bool.
type Labeling uint64

// Has reports whether atom i holds under this labeling.
func (l Labeling) Has(i int) bool { return l&(1<<uint(i)) != 0 }

// With returns a copy of l with atom i set to v.
func (l Labeling) With(i int, v bool) Labeling {
	if v {
		return l | (1 << uint(i))
	}
	return l &^ (1 << uint(i))
}

// Count returns the number of atoms set.
func (l Labeling) Count() int { return bits.OnesCount64(uint64(l)) }

// Outcome is one (next state, observation) pair with positive probability
// mass under a fixed (state, action) pair. Rows are kept sorted by
// (Next, Obs) so iteration order is reproducible across runs (§5).
type Outcome struct {
	Next int
	Obs  int
	Prob float64
}

// POMDP is the immutable value ⟨S, A, Z, δ, ι, L⟩ of spec §3. It is built
// once via a Builder and never mutated afterward: every field below is
// read-only from the perspective of product, beliefmdp, and solver.
type POMDP struct {
	numStates, numActions, numObs, numAtoms int

	stateNames  []string
	actionNames []string
	obsNames    []string

	// trans[s][a] is the sorted outcome row for (s,a); may be empty if the
	// action is disabled at s.
	trans [][][]Outcome

	// start[s] is ι(s); states outside the start support hold 0.
	start []float64

	// labels[o] is L(o).
	labels []Labeling

	// priorities[s], when hasPriorities is true, is the parity priority
	// attached directly to state s (the "ParityPOMDP" flavour of §6's
	// grammar: a file declares `prio` per state instead of `atom` labels
	// on observations, skipping the LTL/automaton/product pipeline
	// entirely). The two flavours are mutually exclusive by construction:
	// a Builder that receives any SetPriority call must not also receive
	// SetLabel calls with a true bit, and pomdpfile enforces this at parse
	// time rather than here.
	priorities    []int
	hasPriorities bool
}

// HasPriorities reports whether this POMDP carries direct per-state parity
// priorities (the ParityPOMDP flavour) rather than LTL atom labels.
func (p *POMDP) HasPriorities() bool { return p.hasPriorities }

// Priority returns the parity priority directly attached to state s. Only
// meaningful when HasPriorities is true.
func (p *POMDP) Priority(s int) int { return p.priorities[s] }

// NumStates, NumActions, NumObs, NumAtoms return the dense index ranges.
func (p *POMDP) NumStates() int  { return p.numStates }
func (p *POMDP) NumActions() int { return p.numActions }
func (p *POMDP) NumObs() int     { return p.numObs }
func (p *POMDP) NumAtoms() int   { return p.numAtoms }

// StateName, ActionName, ObsName return the human-readable identifier for
// an index, falling back to a synthetic "s3"/"a1"/"z0" form when the
// builder never assigned a name.
func (p *POMDP) StateName(s int) string  { return nameOrIndex(p.stateNames, s, "s") }
func (p *POMDP) ActionName(a int) string { return nameOrIndex(p.actionNames, a, "a") }
func (p *POMDP) ObsName(o int) string    { return nameOrIndex(p.obsNames, o, "z") }

func nameOrIndex(names []string, i int, prefix string) string {
	if i >= 0 && i < len(names) && names[i] != "" {
		return names[i]
	}
	return prefix + strconv.Itoa(i)
}

// Trans returns the sorted (Next, Obs, Prob) row for (s,a). The returned
// slice must not be mutated by callers.
func (p *POMDP) Trans(s, a int) []Outcome { return p.trans[s][a] }

// Start returns ι(s).
func (p *POMDP) Start(s int) float64 { return p.start[s] }

// Label returns L(o).
func (p *POMDP) Label(o int) Labeling { return p.labels[o] }
