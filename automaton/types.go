package automaton

import "github.com/katalvlaran/pomdp-parity/pomdp"

// ParityAcceptance distinguishes the two conventions a translator backend
// may hand back (§9's Open Question on acceptance offsets): a translator
// may already emit states labelled with a genuine parity priority
// (Parity), or it may emit ordinary single-acceptance Büchi states, in
// which case the product construction must apply the +2 offset
// documented in DESIGN.md before combining automaton priorities with
// POMDP state priorities. Modeling this as a sum type rather than a bool
// keeps the call sites honest about which convention they are in, instead
// of a `isBuchi bool` that invites an inverted check at the call site.
type ParityAcceptance int

const (
	// Parity means Priority(q) already returns a proper parity priority;
	// no offset is applied.
	Parity ParityAcceptance = iota
	// SingleAcc means the automaton is Büchi-shaped: Priority(q) returns 0
	// for accepting states and 1 for rejecting ones, and an accepting
	// state's priority is offset by +2 once combined into a product (so
	// rejecting=1 stays odd and lower than accepting=2, preserving "accept
	// infinitely often" under the max-infinitely-often-even parity rule).
	SingleAcc
)

func (a ParityAcceptance) String() string {
	switch a {
	case Parity:
		return "parity"
	case SingleAcc:
		return "single-acceptance"
	default:
		return "unknown"
	}
}

// Automaton is a deterministic, total, complete automaton over POMDP
// observation labels: exactly one transition fires from every state for
// every labelling. Priority assigns a raw priority to each state; product
// construction combines it with SingleAcc's +2 offset when applicable.
type Automaton interface {
	// NumStates returns |Q|.
	NumStates() int
	// Init returns the initial state q0.
	Init() int
	// Delta returns the unique successor of q under labels.
	Delta(q int, labels pomdp.Labeling) (int, error)
	// Priority returns the raw priority π(q).
	Priority(q int) int
	// Acceptance reports which convention Priority uses.
	Acceptance() ParityAcceptance
}
