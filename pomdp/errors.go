package pomdp

import "errors"

// Sentinel errors for the pomdp package. Callers branch on these with
// errors.Is; they are never stringified or compared directly.
var (
	// ErrBadSize indicates a non-positive state/action/observation count.
	ErrBadSize = errors.New("pomdp: size must be > 0")

	// ErrIndexRange indicates a state/action/observation/atom index outside
	// its declared range.
	ErrIndexRange = errors.New("pomdp: index out of range")

	// ErrBadProb indicates a probability outside [0,1].
	ErrBadProb = errors.New("pomdp: probability out of [0,1]")

	// ErrBadDistribution indicates a (state,action) transition row, or the
	// initial distribution, does not sum to 1 within Epsilon.
	ErrBadDistribution = errors.New("pomdp: row does not sum to 1")

	// ErrNoStart indicates Build was called with no initial mass assigned
	// to any state.
	ErrNoStart = errors.New("pomdp: no initial distribution set")

	// ErrDuplicateOutcome indicates SetTrans was called twice for the same
	// (state, action, next, observation) quadruple.
	ErrDuplicateOutcome = errors.New("pomdp: duplicate transition outcome")
)
