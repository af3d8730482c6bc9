package pomdp_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/pomdp-parity/pomdp"
	"github.com/stretchr/testify/require"
)

func threeStateTiger(t *testing.T) *pomdp.POMDP {
	t.Helper()
	b := pomdp.NewBuilder(3, 3, 2,
		pomdp.WithStateNames("tiger-left", "tiger-right", "start"),
		pomdp.WithActionNames("listen", "open-left", "open-right"),
		pomdp.WithObsNames("hear-left", "hear-right"),
		pomdp.WithAtoms(2),
	)
	require.NoError(t, b.SetStart(2, 1.0))
	// "listen" is a self-loop under both tiger states, revealing the tiger
	// with probability 0.85.
	require.NoError(t, b.SetTrans(0, 0, 0, 0, 0.85))
	require.NoError(t, b.SetTrans(0, 0, 0, 1, 0.15))
	require.NoError(t, b.SetTrans(1, 0, 1, 1, 0.85))
	require.NoError(t, b.SetTrans(1, 0, 1, 0, 0.15))
	require.NoError(t, b.SetTrans(2, 0, 0, 0, 0.5))
	require.NoError(t, b.SetTrans(2, 0, 1, 1, 0.5))
	// opening a door resets to start, deterministically, observation 0.
	for a := 1; a < 3; a++ {
		for s := 0; s < 3; s++ {
			require.NoError(t, b.SetTrans(s, a, 2, 0, 1.0))
		}
	}
	require.NoError(t, b.SetLabel(0, 0, true)) // atom0 ("reward") holds when we hear-left in start? toy.
	p, err := b.Build()
	require.NoError(t, err)
	return p
}

func TestBuilderProducesSortedRows(t *testing.T) {
	p := threeStateTiger(t)
	require.Equal(t, 3, p.NumStates())
	row := p.Trans(0, 0)
	require.Len(t, row, 2)
	// sorted by (Next, Obs): (0,0) before (0,1)
	require.Equal(t, 0, row[0].Obs)
	require.Equal(t, 1, row[1].Obs)
}

func TestBuildRejectsBadDistribution(t *testing.T) {
	b := pomdp.NewBuilder(2, 1, 1)
	require.NoError(t, b.SetStart(0, 1.0))
	require.NoError(t, b.SetTrans(0, 0, 0, 0, 0.5))
	require.NoError(t, b.SetTrans(0, 0, 1, 0, 0.2))
	_, err := b.Build()
	require.ErrorIs(t, err, pomdp.ErrBadDistribution)
}

func TestBuildRejectsMissingStart(t *testing.T) {
	b := pomdp.NewBuilder(2, 1, 1)
	require.NoError(t, b.SetTrans(0, 0, 0, 0, 1.0))
	require.NoError(t, b.SetTrans(1, 0, 1, 0, 1.0))
	_, err := b.Build()
	require.ErrorIs(t, err, pomdp.ErrNoStart)
}

func TestSetTransRejectsDuplicateOutcome(t *testing.T) {
	b := pomdp.NewBuilder(1, 1, 1)
	require.NoError(t, b.SetTrans(0, 0, 0, 0, 0.5))
	err := b.SetTrans(0, 0, 0, 0, 0.5)
	require.True(t, errors.Is(err, pomdp.ErrDuplicateOutcome))
}

func TestDisabledActionLeavesEmptyRow(t *testing.T) {
	b := pomdp.NewBuilder(2, 2, 1)
	require.NoError(t, b.SetStart(0, 1.0))
	require.NoError(t, b.SetTrans(0, 0, 1, 0, 1.0))
	require.NoError(t, b.SetTrans(1, 0, 1, 0, 1.0))
	require.NoError(t, b.SetTrans(1, 1, 1, 0, 1.0))
	p, err := b.Build()
	require.NoError(t, err)
	require.Empty(t, p.Trans(0, 1)) // action 1 never set at state 0
}

func TestLabelingBits(t *testing.T) {
	var l pomdp.Labeling
	l = l.With(0, true).With(3, true)
	require.True(t, l.Has(0))
	require.False(t, l.Has(1))
	require.True(t, l.Has(3))
	require.Equal(t, 2, l.Count())
}
