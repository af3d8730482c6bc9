package solver

import "errors"

var (
	// ErrOddPriority indicates GoodMECs was called with an odd priority;
	// only even priorities are ever winning for the system.
	ErrOddPriority = errors.New("solver: priority must be even")

	// ErrNoBeliefs indicates the belief-support MDP has no states.
	ErrNoBeliefs = errors.New("solver: belief-support MDP has no states")

	// ErrCanceled wraps ctx.Err() when a refinement loop observes
	// cancellation mid-computation.
	ErrCanceled = errors.New("solver: canceled")
)
