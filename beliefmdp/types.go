package beliefmdp

import (
	"strconv"
	"strings"
)

// Pair is one (pomdp-state, automaton-state) element of a belief support.
// In the direct ParityPOMDP flavour, Q is always 0.
type Pair struct {
	S, Q int
}

// Belief is a non-empty belief support: a canonically sorted, duplicate
// free slice of Pairs (§4's invariant that a belief is a set, represented
// as a sorted tuple for hashing and equality).
type Belief []Pair

func (b Belief) key() string {
	var sb strings.Builder
	for _, p := range b {
		sb.WriteString(strconv.Itoa(p.S))
		sb.WriteByte(':')
		sb.WriteString(strconv.Itoa(p.Q))
		sb.WriteByte(',')
	}
	return sb.String()
}

// BeliefMDP is the immutable value ⟨B, A, T, β₀, ρ⟩ of §4.2, built once by
// Build or BuildDirect via forward exploration and never mutated
// afterward.
type BeliefMDP struct {
	beliefs    []Belief
	numActions int

	// succ[b][a] is the sorted, duplicate-free list of successor belief
	// indices reachable from belief b under action a, one per distinct
	// observation that had outgoing mass.
	succ [][][]int

	start    int
	priority []int

	actionName func(int) string
	beliefEnv  string // human label for the underlying POMDP/product, for dot output
}

// NumBeliefs returns |B|.
func (m *BeliefMDP) NumBeliefs() int { return len(m.beliefs) }

// NumActions returns |A|.
func (m *BeliefMDP) NumActions() int { return m.numActions }

// Belief returns the belief support at index b.
func (m *BeliefMDP) Belief(b int) Belief { return m.beliefs[b] }

// Start returns β₀'s index.
func (m *BeliefMDP) Start() int { return m.start }

// Priority returns ρ(B) for belief b.
func (m *BeliefMDP) Priority(b int) int { return m.priority[b] }

// Succ returns the sorted successor beliefs reachable from b under a. An
// empty (nil) result means a has no outgoing mass from any element of b.
func (m *BeliefMDP) Succ(b, a int) []int { return m.succ[b][a] }

// ActionName renders action a for display, delegating to the source
// model's own naming.
func (m *BeliefMDP) ActionName(a int) string {
	if m.actionName != nil {
		return m.actionName(a)
	}
	return "a" + strconv.Itoa(a)
}

// EnvName identifies which model flavour this belief-support MDP was built
// from ("product" or "parity-pomdp"); dot.BeliefMDP emits it as a
// `// source:` comment line.
func (m *BeliefMDP) EnvName() string { return m.beliefEnv }
