package solver

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/pomdp-parity/beliefmdp"
	"github.com/katalvlaran/pomdp-parity/internal/set"
	"github.com/katalvlaran/pomdp-parity/scc"
	"go.uber.org/zap"
)

// GoodMECs computes the maximal end components whose maximum member priority
// is exactly priority, per Baier & Katoen's Algorithm 47. A component can
// freely pass through lower (odd) priorities on its way around the cycle -
// only reaching above priority would make it not good at this level - so the
// candidate set is restricted to states of priority <= priority, and a
// split-off component is kept only if some member carries priority exactly.
// If no belief carries priority exactly priority, there is nothing to find
// at this level and the result is empty.
func GoodMECs(ctx context.Context, m *beliefmdp.BeliefMDP, priority int, opts ...Option) ([]MEC, error) {
	if priority%2 != 0 {
		return nil, ErrOddPriority
	}
	if m.NumBeliefs() == 0 {
		return nil, ErrNoBeliefs
	}
	cfg := newConfig(opts...)
	cfg.logger.Debug("computing good MECs", zap.Int("priority", priority))

	pre, initAct := buildPreAct(m)

	candidate := set.Of[int]()
	hasTarget := false
	for s := 0; s < m.NumBeliefs(); s++ {
		if m.Priority(s) >= priority {
			candidate.Add(s)
			if m.Priority(s) == priority {
				hasTarget = true
			}
		}
	}
	if !hasTarget {
		return nil, nil
	}

	act := cloneActs(initAct)
	mecs := []set.Set[int]{candidate}

	for round := 0; ; round++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCanceled, err)
		}

		prevAct := cloneActs(act)
		var next []set.Set[int]

		for _, mecSet := range mecs {
			mec := mecSet.Clone()
			sccs := scc.Tarjan(mec.List(), sccSuccessors(m, act, mec))

			toRemove := set.Of[int]()
			for _, comp := range sccs {
				cset := set.Of(comp...)
				for _, s := range comp {
					var drop []int
					for _, a := range act[s].List() {
						for _, dst := range m.Succ(s, a) {
							if !cset.Contains(dst) {
								drop = append(drop, a)
								break
							}
						}
					}
					act[s].Remove(drop...)
					if act[s].Len() == 0 {
						toRemove.Add(s)
					}
				}
			}

			for toRemove.Len() > 0 {
				s := popSmallest(toRemove)
				mec.Remove(s)
				for _, p := range pre[s].List() {
					if !mec.Contains(p.State) {
						continue
					}
					act[p.State].Remove(p.Action)
					if act[p.State].Len() == 0 {
						toRemove.Add(p.State)
					}
				}
			}

			for _, comp := range sccs {
				var res []int
				hasExact := false
				for _, s := range comp {
					if mec.Contains(s) {
						res = append(res, s)
						if m.Priority(s) == priority {
							hasExact = true
						}
					}
				}
				// The candidate set already excludes priority < priority, so
				// every member's priority is >= priority; requiring one member
				// at exactly priority pins this component's minimum to
				// priority rather than some higher level, so it isn't
				// double-counted when GoodMECs is queried again there.
				if len(res) == 0 || !hasExact {
					continue
				}
				sort.Ints(res)
				next = append(next, set.Of(res...))
			}
		}

		changed := !mecsEqual(mecs, next) || !actEqual(prevAct, act)
		mecs = next
		cfg.logger.Debug("MEC refinement round", zap.Int("round", round), zap.Int("candidates", len(mecs)), zap.Bool("changed", changed))
		if !changed {
			break
		}
	}

	sort.Slice(mecs, func(i, j int) bool {
		return minOf(mecs[i]) < minOf(mecs[j])
	})

	result := make([]MEC, len(mecs))
	for i, s := range mecs {
		states := s.List()
		sort.Ints(states)
		strat := make(Strategy, len(states))
		for _, st := range states {
			actions := act[st].List()
			sort.Ints(actions)
			strat[st] = actions
		}
		result[i] = MEC{States: states, Strategy: strat}
	}
	return result, nil
}

func sccSuccessors(m *beliefmdp.BeliefMDP, act map[int]set.Set[int], mec set.Set[int]) func(int) []int {
	return func(s int) []int {
		seen := set.Of[int]()
		for _, a := range act[s].List() {
			for _, dst := range m.Succ(s, a) {
				if mec.Contains(dst) {
					seen.Add(dst)
				}
			}
		}
		out := seen.List()
		sort.Ints(out)
		return out
	}
}

func popSmallest(s set.Set[int]) int {
	xs := s.List()
	sort.Ints(xs)
	s.Remove(xs[0])
	return xs[0]
}

func minOf(s set.Set[int]) int {
	xs := s.List()
	sort.Ints(xs)
	return xs[0]
}
