package solver_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/pomdp-parity/beliefmdp"
	"github.com/katalvlaran/pomdp-parity/pomdp"
	"github.com/katalvlaran/pomdp-parity/solver"
	"github.com/stretchr/testify/require"
)

// bridgedMECs has two disjoint 2-cycles, {0,1} at minimum priority 0 and
// {2,3} at minimum priority 2, joined by a one-way bridge action at state
// 1 that never returns. The bridge keeps state 2 reachable from the start
// without making {0,1,2,3} a single component, so it tests that a good
// MEC's top-priority exactness holds even when a lower-priority state has
// an action leading into a higher-priority region: state 1 must not be
// pulled into the priority-2 MEC, and states 2,3 must not leak into the
// priority-0 one.
func bridgedMECs(t *testing.T) *beliefmdp.BeliefMDP {
	t.Helper()
	b := pomdp.NewBuilder(4, 2, 1)
	require.NoError(t, b.SetStart(0, 1.0))
	require.NoError(t, b.SetTrans(0, 0, 1, 0, 1.0))
	require.NoError(t, b.SetTrans(1, 0, 0, 0, 1.0))
	require.NoError(t, b.SetTrans(1, 1, 2, 0, 1.0))
	require.NoError(t, b.SetTrans(2, 0, 3, 0, 1.0))
	require.NoError(t, b.SetTrans(3, 0, 2, 0, 1.0))
	require.NoError(t, b.SetPriority(0, 1))
	require.NoError(t, b.SetPriority(1, 0))
	require.NoError(t, b.SetPriority(2, 3))
	require.NoError(t, b.SetPriority(3, 2))
	env, err := b.Build()
	require.NoError(t, err)
	m, err := beliefmdp.BuildDirect(env)
	require.NoError(t, err)
	return m
}

// TestGoodMECsAreExactAcrossPriorityLevels is invariant 4: a belief
// identified as good at one even priority never also shows up good at a
// different even priority, since a good MEC's minimum member priority is
// unique to that component.
func TestGoodMECsAreExactAcrossPriorityLevels(t *testing.T) {
	m := bridgedMECs(t)

	low, err := solver.GoodMECs(context.Background(), m, 0)
	require.NoError(t, err)
	require.Len(t, low, 1)
	require.Equal(t, []int{0, 1}, low[0].States)

	high, err := solver.GoodMECs(context.Background(), m, 2)
	require.NoError(t, err)
	require.Len(t, high, 1)
	require.Equal(t, []int{2, 3}, high[0].States)

	for _, s := range low[0].States {
		require.NotContains(t, high[0].States, s)
	}
}

// TestPriorityStratsStayWithinTheirMEC is invariant 5: every action
// offered by a priority level's stay-strategy is enabled at that belief
// and keeps play inside the MEC that level's GoodMECs call identified.
func TestPriorityStratsStayWithinTheirMEC(t *testing.T) {
	m := bridgedMECs(t)
	res, err := solver.AlmostSureWin(context.Background(), m, 2)
	require.NoError(t, err)
	require.Len(t, res.PriorityStrats, 2)

	for level, strat := range res.PriorityStrats {
		mecs, err := solver.GoodMECs(context.Background(), m, level*2)
		require.NoError(t, err)
		var mecStates []int
		for _, mec := range mecs {
			mecStates = append(mecStates, mec.States...)
		}
		for b, actions := range strat {
			require.Contains(t, mecStates, b)
			for _, a := range actions {
				succ := m.Succ(b, a)
				require.NotEmpty(t, succ, "action %d offered at belief %d must be enabled", a, b)
				for _, s := range succ {
					require.Contains(t, mecStates, s, "priority-%d strategy action %d at belief %d leaves the MEC", level*2, a, b)
				}
			}
		}
	}
}

// TestReachStrategyStaysWithinWinningRegion is invariant 6: every action
// the reach strategy offers is enabled, and every one of its successors
// is itself almost-surely winning.
func TestReachStrategyStaysWithinWinningRegion(t *testing.T) {
	m := bridgedMECs(t)
	res, err := solver.AlmostSureWin(context.Background(), m, 2)
	require.NoError(t, err)

	winning := make(map[int]bool, len(res.Winning))
	for _, b := range res.Winning {
		winning[b] = true
	}

	for b, actions := range res.ReachStrategy {
		require.True(t, winning[b])
		for _, a := range actions {
			succ := m.Succ(b, a)
			require.NotEmpty(t, succ, "action %d offered at belief %d must be enabled", a, b)
			for _, s := range succ {
				require.True(t, winning[s], "reach strategy action %d at belief %d leaves the winning region", a, b)
			}
		}
	}
}

// TestAlmostSureWinIsIdempotent is invariant 7: re-running the solver on
// the same belief MDP produces the same winning region and the same
// strategies.
func TestAlmostSureWinIsIdempotent(t *testing.T) {
	m := bridgedMECs(t)

	first, err := solver.AlmostSureWin(context.Background(), m, 2)
	require.NoError(t, err)
	second, err := solver.AlmostSureWin(context.Background(), m, 2)
	require.NoError(t, err)

	require.ElementsMatch(t, first.Winning, second.Winning)
	require.Equal(t, first.ReachStrategy, second.ReachStrategy)
	require.Equal(t, first.PriorityStrats, second.PriorityStrats)
}
