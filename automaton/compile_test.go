package automaton_test

import (
	"testing"

	"github.com/katalvlaran/pomdp-parity/automaton"
	"github.com/katalvlaran/pomdp-parity/ltl"
	"github.com/katalvlaran/pomdp-parity/pomdp"
	"github.com/stretchr/testify/require"
)

func mustCompile(t *testing.T, formula string, numAtoms int) automaton.Automaton {
	t.Helper()
	f, err := ltl.Parse(formula)
	require.NoError(t, err)
	a, err := automaton.CompileLTL(f, numAtoms)
	require.NoError(t, err)
	return a
}

func lbl(atoms ...int) pomdp.Labeling {
	var l pomdp.Labeling
	for _, a := range atoms {
		l = l.With(a, true)
	}
	return l
}

func TestCompileSafetyOnlyAcceptsWhenNeverViolated(t *testing.T) {
	a := mustCompile(t, "G !p0", 1)
	require.Equal(t, automaton.SingleAcc, a.Acceptance())
	q := a.Init()
	require.Equal(t, 0, a.Priority(q))
	var err error
	for i := 0; i < 5; i++ {
		q, err = a.Delta(q, lbl())
		require.NoError(t, err)
		require.Equal(t, 0, a.Priority(q))
	}
}

func TestCompileSafetyViolationSticks(t *testing.T) {
	a := mustCompile(t, "G !p0", 1)
	q := a.Init()
	q, err := a.Delta(q, lbl(0))
	require.NoError(t, err)
	require.Equal(t, 1, a.Priority(q))
	q2, err := a.Delta(q, lbl())
	require.NoError(t, err)
	require.Equal(t, q, q2)
	require.Equal(t, 1, a.Priority(q2))
}

func TestCompileRecurrenceAcceptsOnRepeatedVisits(t *testing.T) {
	a := mustCompile(t, "G F p0", 1)
	q := a.Init()
	visitedZero := false
	for i := 0; i < 4; i++ {
		var err error
		q, err = a.Delta(q, lbl(0))
		require.NoError(t, err)
		if a.Priority(q) == 0 {
			visitedZero = true
		}
	}
	require.True(t, visitedZero)
}

func TestCompileRecurrenceNeverSeenStaysRejecting(t *testing.T) {
	a := mustCompile(t, "G F p0", 1)
	q := a.Init()
	for i := 0; i < 4; i++ {
		var err error
		q, err = a.Delta(q, lbl())
		require.NoError(t, err)
	}
	require.Equal(t, 1, a.Priority(q))
}

func TestCompileReachabilityLatchesOnce(t *testing.T) {
	a := mustCompile(t, "F p0", 1)
	q := a.Init()
	q, err := a.Delta(q, lbl(0))
	require.NoError(t, err)
	require.Equal(t, 0, a.Priority(q))
	// p0 no longer holds; the goal must stay satisfied via the latch.
	q, err = a.Delta(q, lbl())
	require.NoError(t, err)
	require.Equal(t, 0, a.Priority(q))
}

func TestCompileConjunctionOfGoalsRotates(t *testing.T) {
	a := mustCompile(t, "G F p0 & G F p1", 2)
	q := a.Init()
	// Only p0 ever holds: goal for p1 never satisfied, rotation stalls.
	for i := 0; i < 6; i++ {
		var err error
		q, err = a.Delta(q, lbl(0))
		require.NoError(t, err)
	}
	require.Equal(t, 1, a.Priority(q))
}

func TestCompileConjunctionOfGoalsAcceptsWhenBothRecur(t *testing.T) {
	a := mustCompile(t, "G F p0 & G F p1", 2)
	q := a.Init()
	seenAccept := false
	for i := 0; i < 8; i++ {
		var err error
		// alternate which atom holds
		if i%2 == 0 {
			q, err = a.Delta(q, lbl(0))
		} else {
			q, err = a.Delta(q, lbl(1))
		}
		require.NoError(t, err)
		if a.Priority(q) == 0 {
			seenAccept = true
		}
	}
	require.True(t, seenAccept)
}

func TestCompileRejectsPersistence(t *testing.T) {
	f, err := ltl.Parse("F G p0")
	require.NoError(t, err)
	_, err = automaton.CompileLTL(f, 1)
	require.ErrorIs(t, err, automaton.ErrUnsupportedFormula)
}

func TestCompileRejectsUntil(t *testing.T) {
	f, err := ltl.Parse("p0 U p1")
	require.NoError(t, err)
	_, err = automaton.CompileLTL(f, 2)
	require.ErrorIs(t, err, automaton.ErrUnsupportedFormula)
}

func TestCompileRejectsAtomOutOfRange(t *testing.T) {
	f, err := ltl.Parse("G F p3")
	require.NoError(t, err)
	_, err = automaton.CompileLTL(f, 1)
	require.ErrorIs(t, err, automaton.ErrAtomOutOfRange)
}

func TestTableAutomatonFirstMatchingGuardWins(t *testing.T) {
	b := automaton.NewTableAutomaton(2, 0, automaton.Parity)
	b.AddTransition(0, automaton.Atom(0), 1)
	b.AddTransition(0, automaton.True, 0)
	b.AddTransition(1, automaton.True, 1)
	b.SetPriority(0, 1)
	b.SetPriority(1, 0)
	a, err := b.Build()
	require.NoError(t, err)
	next, err := a.Delta(0, lbl(0))
	require.NoError(t, err)
	require.Equal(t, 1, next)
	next, err = a.Delta(0, lbl())
	require.NoError(t, err)
	require.Equal(t, 0, next)
}

func TestTableAutomatonNoMatchingGuardErrors(t *testing.T) {
	b := automaton.NewTableAutomaton(1, 0, automaton.Parity)
	a, err := b.Build()
	require.NoError(t, err)
	_, err = a.Delta(0, lbl())
	require.ErrorIs(t, err, automaton.ErrNoMatchingGuard)
}
