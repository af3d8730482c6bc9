package product_test

import (
	"testing"

	"github.com/katalvlaran/pomdp-parity/automaton"
	"github.com/katalvlaran/pomdp-parity/ltl"
	"github.com/katalvlaran/pomdp-parity/pomdp"
	"github.com/katalvlaran/pomdp-parity/product"
	"github.com/stretchr/testify/require"
)

// twoStateFlip is a deterministic two-state POMDP: one action toggles
// between states 0 and 1, one observation per state, atom0 holds at
// observation of state 1.
func twoStateFlip(t *testing.T) *pomdp.POMDP {
	t.Helper()
	b := pomdp.NewBuilder(2, 1, 2, pomdp.WithAtoms(1))
	require.NoError(t, b.SetStart(0, 1.0))
	require.NoError(t, b.SetTrans(0, 0, 1, 1, 1.0))
	require.NoError(t, b.SetTrans(1, 0, 0, 0, 1.0))
	require.NoError(t, b.SetLabel(1, 0, true))
	p, err := b.Build()
	require.NoError(t, err)
	return p
}

func TestBuildStateCountIsProductOfSizes(t *testing.T) {
	env := twoStateFlip(t)
	f, err := ltl.Parse("G F p0")
	require.NoError(t, err)
	aut, err := automaton.CompileLTL(f, env.NumAtoms())
	require.NoError(t, err)

	prod, err := product.Build(env, aut)
	require.NoError(t, err)
	require.Equal(t, env.NumStates()*aut.NumStates(), prod.NumStates())
}

func TestBuildStartsAtInitialAutomatonState(t *testing.T) {
	env := twoStateFlip(t)
	f, err := ltl.Parse("G F p0")
	require.NoError(t, err)
	aut, err := automaton.CompileLTL(f, env.NumAtoms())
	require.NoError(t, err)

	prod, err := product.Build(env, aut)
	require.NoError(t, err)
	idx := prod.Idx(0, aut.Init())
	require.Equal(t, 1.0, prod.Start(idx))
}

func TestBuildAlwaysVisitsEvenPriorityOnFlip(t *testing.T) {
	env := twoStateFlip(t)
	f, err := ltl.Parse("G F p0")
	require.NoError(t, err)
	aut, err := automaton.CompileLTL(f, env.NumAtoms())
	require.NoError(t, err)
	prod, err := product.Build(env, aut)
	require.NoError(t, err)

	// follow the deterministic chain from the start state; since state 1
	// (atom0) recurs every other step, at least one of the first six
	// product states along the run must carry an even priority.
	idx := prod.Idx(0, aut.Init())
	sawEven := false
	for i := 0; i < 6; i++ {
		row := prod.Trans(idx, 0)
		require.Len(t, row, 1)
		idx = row[0].Next
		if prod.Priority(idx)%2 == 0 {
			sawEven = true
		}
	}
	require.True(t, sawEven)
}

func TestBuildRejectsAutomatonWithNoMatchingGuard(t *testing.T) {
	env := twoStateFlip(t)
	// A TableAutomaton with no transitions at all has no guard matching any
	// observation's labelling, so product.Build reports AlphabetMismatch.
	b := automaton.NewTableAutomaton(1, 0, automaton.Parity)
	aut, err := b.Build()
	require.NoError(t, err)

	_, err = product.Build(env, aut)
	require.ErrorIs(t, err, product.ErrAlphabetMismatch)
}
