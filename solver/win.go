package solver

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/pomdp-parity/beliefmdp"
	"github.com/katalvlaran/pomdp-parity/internal/set"
	"go.uber.org/zap"
)

// Result is the outcome of AlmostSureWin: the almost-sure winning beliefs,
// the memoryless strategy that reaches a good MEC from them, and, for
// each even priority level considered, the strategy for staying inside
// that level's good MECs once reached.
type Result struct {
	Winning        []int
	ReachStrategy  Strategy
	PriorityStrats []Strategy // PriorityStrats[i] is the stay-strategy for priority 2*i
}

// AlmostSureWin computes the almost-sure winning region and a memoryless
// strategy for the qualitative parity objective with priorities in
// [0, maxPriority], combining a good-MEC decomposition at every even
// priority with a single almost-sure attractor computation to their
// union, per the source's top-level almostSureWin orchestration.
func AlmostSureWin(ctx context.Context, m *beliefmdp.BeliefMDP, maxPriority int, opts ...Option) (*Result, error) {
	cfg := newConfig(opts...)
	cfg.logger.Info("computing almost-sure winning strategy", zap.Int("max_priority", maxPriority))

	var priorityStates []set.Set[int]
	var priorityStrats []Strategy
	for p := 0; p <= maxPriority; p += 2 {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCanceled, err)
		}
		mecs, err := GoodMECs(ctx, m, p, opts...)
		if err != nil {
			return nil, err
		}
		states := set.Of[int]()
		strat := make(Strategy)
		for _, mec := range mecs {
			for _, s := range mec.States {
				states.Add(s)
			}
			for s, actions := range mec.Strategy {
				strat[s] = actions
			}
		}
		cfg.logger.Debug("good MECs at priority", zap.Int("priority", p), zap.Int("mecs", len(mecs)), zap.Int("states", states.Len()))
		priorityStates = append(priorityStates, states)
		priorityStrats = append(priorityStrats, strat)
	}

	u := set.Of[int]()
	for _, s := range priorityStates {
		for _, st := range s.List() {
			u.Add(st)
		}
	}

	pre, act := buildPreAct(m)
	r, err := almostSureReach(ctx, m, pre, act, u)
	if err != nil {
		return nil, err
	}
	rSet := set.Of(r...)
	cfg.logger.Info("almost-sure winning region computed", zap.Int("winning", len(r)), zap.Int("total", m.NumBeliefs()))

	reachStrategy := make(Strategy)
	for _, p := range r {
		var allowed []int
		for a := 0; a < m.NumActions(); a++ {
			succ := m.Succ(p, a)
			if len(succ) == 0 {
				continue
			}
			ok := true
			for _, s := range succ {
				if !rSet.Contains(s) {
					ok = false
					break
				}
			}
			if ok {
				allowed = append(allowed, a)
			}
		}
		if len(allowed) > 0 {
			sort.Ints(allowed)
			reachStrategy[p] = allowed
		}
	}

	return &Result{
		Winning:        r,
		ReachStrategy:  reachStrategy,
		PriorityStrats: priorityStrats,
	}, nil
}
