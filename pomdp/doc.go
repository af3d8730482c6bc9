// Package pomdp defines the immutable POMDP value: states, actions,
// observations, a joint transition function, an initial distribution, and
// an observation-labelling function over atomic propositions.
//
// A POMDP is built once via NewBuilder and never mutated afterward — every
// downstream package (product, beliefmdp, solver) only ever reads it.
//
//	b := pomdp.NewBuilder(3, 2, 2)
//	b.SetTrans(0, 0, 1, 0, 0.9)
//	b.SetTrans(0, 0, 2, 1, 0.1)
//	b.SetStart(0, 1.0)
//	p, err := b.Build()
//
// Rows of the joint transition must sum to 1 (§3 Invariant); Build reports
// ErrBadDistribution if they do not.
package pomdp
