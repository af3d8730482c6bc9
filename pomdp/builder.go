package pomdp

import (
	"fmt"
	"sort"
)

// Epsilon is the tolerance used when checking that a probability row sums
// to 1. Floating point accumulation across a handful of outcomes rarely
// drifts past 1e-9; file-parsed probabilities reach the builder as
// parsed, without rounding.
const Epsilon = 1e-6

// Option configures a Builder at construction time, mirroring the
// GraphOption pattern used throughout the teacher's core package.
type Option func(*Builder)

// WithStateNames assigns display names to state indices.
func WithStateNames(names ...string) Option {
	return func(b *Builder) { b.p.stateNames = append([]string(nil), names...) }
}

// WithActionNames assigns display names to action indices.
func WithActionNames(names ...string) Option {
	return func(b *Builder) { b.p.actionNames = append([]string(nil), names...) }
}

// WithObsNames assigns display names to observation indices.
func WithObsNames(names ...string) Option {
	return func(b *Builder) { b.p.obsNames = append([]string(nil), names...) }
}

// WithAtoms declares how many atomic propositions observation labels may
// reference; atoms default to 0 (no LTL atoms declared) if omitted.
func WithAtoms(numAtoms int) Option {
	return func(b *Builder) { b.p.numAtoms = numAtoms }
}

// Builder accumulates a POMDP's transition, observation-label, and initial
// distribution data before a single validating Build call freezes it into
// an immutable POMDP. This is the only way to construct a POMDP.
type Builder struct {
	p    POMDP
	rows []map[soKey]float64 // one accumulator per (s,a), index s*numActions+a
}

type soKey struct{ next, obs int }

// NewBuilder starts a Builder for a POMDP with the given dense index
// ranges. numStates, numActions, and numObs must each be positive.
func NewBuilder(numStates, numActions, numObs int, opts ...Option) *Builder {
	b := &Builder{
		p: POMDP{
			numStates:   numStates,
			numActions:  numActions,
			numObs:      numObs,
			stateNames:  nil,
			actionNames: nil,
			obsNames:    nil,
			start:       make([]float64, numStates),
			labels:      make([]Labeling, numObs),
		},
		rows: make([]map[soKey]float64, numStates*numActions),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// SetTrans records prob mass on (next, obs) for the (s,a) row. Calling it
// twice for the same (s,a,next,obs) quadruple is a builder error, not a
// silent overwrite — probability mass must be assigned exactly once per
// outcome so the caller cannot accidentally clobber an earlier value.
func (b *Builder) SetTrans(s, a, next, obs int, prob float64) error {
	if err := b.checkState(s); err != nil {
		return err
	}
	if err := b.checkAction(a); err != nil {
		return err
	}
	if err := b.checkState(next); err != nil {
		return err
	}
	if err := b.checkObs(obs); err != nil {
		return err
	}
	if prob < 0 || prob > 1 {
		return fmt.Errorf("pomdp: SetTrans(%d,%d,%d,%d): %w", s, a, next, obs, ErrBadProb)
	}
	idx := s*b.p.numActions + a
	if b.rows[idx] == nil {
		b.rows[idx] = make(map[soKey]float64)
	}
	key := soKey{next, obs}
	if _, dup := b.rows[idx][key]; dup {
		return fmt.Errorf("pomdp: SetTrans(%d,%d,%d,%d): %w", s, a, next, obs, ErrDuplicateOutcome)
	}
	b.rows[idx][key] = prob
	return nil
}

// SetStart assigns ι(s) = prob.
func (b *Builder) SetStart(s int, prob float64) error {
	if err := b.checkState(s); err != nil {
		return err
	}
	if prob < 0 || prob > 1 {
		return fmt.Errorf("pomdp: SetStart(%d): %w", s, ErrBadProb)
	}
	b.p.start[s] = prob
	return nil
}

// SetLabel sets whether atom i holds at observation o.
func (b *Builder) SetLabel(o, atom int, holds bool) error {
	if err := b.checkObs(o); err != nil {
		return err
	}
	if atom < 0 || atom >= b.p.numAtoms {
		return fmt.Errorf("pomdp: SetLabel(%d,%d): %w", o, atom, ErrIndexRange)
	}
	b.p.labels[o] = b.p.labels[o].With(atom, holds)
	return nil
}

// SetPriority attaches a direct parity priority to state s, marking this
// POMDP as the ParityPOMDP flavour (§6): a priority-labelled model that
// skips the LTL/automaton/product pipeline entirely. Callers (pomdpfile)
// must not mix this with SetLabel on the same POMDP.
func (b *Builder) SetPriority(s, prio int) error {
	if err := b.checkState(s); err != nil {
		return err
	}
	if prio < 0 {
		return fmt.Errorf("pomdp: SetPriority(%d,%d): %w", s, prio, ErrIndexRange)
	}
	if b.p.priorities == nil {
		b.p.priorities = make([]int, b.p.numStates)
	}
	b.p.priorities[s] = prio
	b.p.hasPriorities = true
	return nil
}

// Build validates every (s,a) row and the initial distribution sum to 1
// (within Epsilon), freezes sorted outcome slices for deterministic
// iteration (§5), and returns the immutable POMDP.
func (b *Builder) Build() (*POMDP, error) {
	if b.p.numStates <= 0 || b.p.numActions <= 0 || b.p.numObs <= 0 {
		return nil, ErrBadSize
	}
	p := b.p
	p.trans = make([][][]Outcome, p.numStates)
	for s := 0; s < p.numStates; s++ {
		p.trans[s] = make([][]Outcome, p.numActions)
		for a := 0; a < p.numActions; a++ {
			idx := s*p.numActions + a
			row := b.rows[idx]
			if len(row) == 0 {
				continue // action disabled at s: empty row is valid (§4.2 edge case)
			}
			sum := 0.0
			outs := make([]Outcome, 0, len(row))
			for k, prob := range row {
				sum += prob
				outs = append(outs, Outcome{Next: k.next, Obs: k.obs, Prob: prob})
			}
			if sum < 1-Epsilon || sum > 1+Epsilon {
				return nil, fmt.Errorf("pomdp: row (s=%d,a=%d) sums to %g: %w", s, a, sum, ErrBadDistribution)
			}
			sort.Slice(outs, func(i, j int) bool {
				if outs[i].Next != outs[j].Next {
					return outs[i].Next < outs[j].Next
				}
				return outs[i].Obs < outs[j].Obs
			})
			p.trans[s][a] = outs
		}
	}

	sum := 0.0
	for _, v := range p.start {
		sum += v
	}
	if sum < Epsilon {
		return nil, ErrNoStart
	}
	if sum < 1-Epsilon || sum > 1+Epsilon {
		return nil, fmt.Errorf("pomdp: initial distribution sums to %g: %w", sum, ErrBadDistribution)
	}

	return &p, nil
}

func (b *Builder) checkState(s int) error {
	if s < 0 || s >= b.p.numStates {
		return fmt.Errorf("pomdp: state %d: %w", s, ErrIndexRange)
	}
	return nil
}

func (b *Builder) checkAction(a int) error {
	if a < 0 || a >= b.p.numActions {
		return fmt.Errorf("pomdp: action %d: %w", a, ErrIndexRange)
	}
	return nil
}

func (b *Builder) checkObs(o int) error {
	if o < 0 || o >= b.p.numObs {
		return fmt.Errorf("pomdp: observation %d: %w", o, ErrIndexRange)
	}
	return nil
}
