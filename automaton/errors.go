package automaton

import "errors"

var (
	// ErrUnsupportedFormula indicates the formula passed to CompileLTL falls
	// outside the conjunction-of-safety/recurrence/reachability fragment it
	// covers.
	ErrUnsupportedFormula = errors.New("automaton: unsupported LTL fragment")

	// ErrAtomOutOfRange indicates the formula references an atom index the
	// declared atom count does not cover.
	ErrAtomOutOfRange = errors.New("automaton: atom index out of declared range")

	// ErrNoMatchingGuard indicates a TableAutomaton transition had no guard
	// matching the labelling offered to Delta; every automaton the product
	// construction consumes must be total (§9), so this error always
	// signals a builder mistake rather than a legitimate automaton outcome.
	ErrNoMatchingGuard = errors.New("automaton: no transition guard matched")

	// ErrBadState indicates a state index outside [0, NumStates()).
	ErrBadState = errors.New("automaton: state index out of range")
)
