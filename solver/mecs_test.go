package solver_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/pomdp-parity/beliefmdp"
	"github.com/katalvlaran/pomdp-parity/pomdp"
	"github.com/katalvlaran/pomdp-parity/solver"
	"github.com/stretchr/testify/require"
)

func singleAcceptingLoop(t *testing.T) *beliefmdp.BeliefMDP {
	t.Helper()
	b := pomdp.NewBuilder(1, 1, 1)
	require.NoError(t, b.SetStart(0, 1.0))
	require.NoError(t, b.SetTrans(0, 0, 0, 0, 1.0))
	require.NoError(t, b.SetPriority(0, 2))
	env, err := b.Build()
	require.NoError(t, err)
	m, err := beliefmdp.BuildDirect(env)
	require.NoError(t, err)
	return m
}

func reachThenStay(t *testing.T) *beliefmdp.BeliefMDP {
	t.Helper()
	b := pomdp.NewBuilder(2, 1, 1)
	require.NoError(t, b.SetStart(0, 1.0))
	require.NoError(t, b.SetTrans(0, 0, 1, 0, 1.0))
	require.NoError(t, b.SetTrans(1, 0, 1, 0, 1.0))
	require.NoError(t, b.SetPriority(0, 1))
	require.NoError(t, b.SetPriority(1, 2))
	env, err := b.Build()
	require.NoError(t, err)
	m, err := beliefmdp.BuildDirect(env)
	require.NoError(t, err)
	return m
}

func rejectingTrap(t *testing.T) *beliefmdp.BeliefMDP {
	t.Helper()
	b := pomdp.NewBuilder(1, 1, 1)
	require.NoError(t, b.SetStart(0, 1.0))
	require.NoError(t, b.SetTrans(0, 0, 0, 0, 1.0))
	require.NoError(t, b.SetPriority(0, 1))
	env, err := b.Build()
	require.NoError(t, err)
	m, err := beliefmdp.BuildDirect(env)
	require.NoError(t, err)
	return m
}

// mixedPriorityLoop alternates between a priority-1 belief and a priority-2
// belief every step, the shape any GF objective produces once witnessing the
// recurring proposition takes a separate transition from waiting for it. The
// two-state cycle is one MEC with maximum priority 2, even though state 0
// alone only carries the odd priority 1.
func mixedPriorityLoop(t *testing.T) *beliefmdp.BeliefMDP {
	t.Helper()
	b := pomdp.NewBuilder(2, 1, 1)
	require.NoError(t, b.SetStart(0, 1.0))
	require.NoError(t, b.SetTrans(0, 0, 1, 0, 1.0))
	require.NoError(t, b.SetTrans(1, 0, 0, 0, 1.0))
	require.NoError(t, b.SetPriority(0, 1))
	require.NoError(t, b.SetPriority(1, 2))
	env, err := b.Build()
	require.NoError(t, err)
	m, err := beliefmdp.BuildDirect(env)
	require.NoError(t, err)
	return m
}

func TestGoodMECsOddPriorityErrors(t *testing.T) {
	m := singleAcceptingLoop(t)
	_, err := solver.GoodMECs(context.Background(), m, 1)
	require.ErrorIs(t, err, solver.ErrOddPriority)
}

func TestGoodMECsFindsSingleStateLoop(t *testing.T) {
	m := singleAcceptingLoop(t)
	mecs, err := solver.GoodMECs(context.Background(), m, 2)
	require.NoError(t, err)
	require.Len(t, mecs, 1)
	require.Equal(t, []int{0}, mecs[0].States)
	require.Equal(t, []int{0}, mecs[0].Strategy[0])
}

func TestGoodMECsEmptyWhenNoStateCarriesTargetPriority(t *testing.T) {
	m := singleAcceptingLoop(t)
	mecs, err := solver.GoodMECs(context.Background(), m, 4)
	require.NoError(t, err)
	require.Empty(t, mecs)
}

func TestGoodMECsExcludesLowerPriorityStates(t *testing.T) {
	m := reachThenStay(t)
	mecs, err := solver.GoodMECs(context.Background(), m, 2)
	require.NoError(t, err)
	require.Len(t, mecs, 1)
	require.Equal(t, []int{1}, mecs[0].States)
}

func TestGoodMECsOnRejectingTrapIsEmpty(t *testing.T) {
	m := rejectingTrap(t)
	mecs, err := solver.GoodMECs(context.Background(), m, 2)
	require.NoError(t, err)
	require.Empty(t, mecs)
}

func TestGoodMECsSpansIntermediateOddPriority(t *testing.T) {
	m := mixedPriorityLoop(t)
	mecs, err := solver.GoodMECs(context.Background(), m, 2)
	require.NoError(t, err)
	require.Len(t, mecs, 1)
	require.Equal(t, []int{0, 1}, mecs[0].States)
}
