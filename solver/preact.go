package solver

import (
	"github.com/katalvlaran/pomdp-parity/beliefmdp"
	"github.com/katalvlaran/pomdp-parity/internal/set"
)

// buildPreAct computes the predecessor relation and the initially enabled
// action set for every belief in m (Baier & Katoen's resetPreAct).
//
// Unlike the source this is ported from, act[s] is seeded with only the
// actions that actually have outgoing mass at s (beliefmdp.Succ(s,a)
// non-empty), not every declared action index. An action with no
// successors at all can never be part of any end-component strategy, so
// counting it as "available" would let it survive MEC refinement forever
// (it is never observed leaving the candidate, since it never goes
// anywhere) and corrupt the synthesized strategy.
func buildPreAct(m *beliefmdp.BeliefMDP) (pre map[int]set.Set[actPair], act map[int]set.Set[int]) {
	pre = make(map[int]set.Set[actPair])
	act = make(map[int]set.Set[int], m.NumBeliefs())

	for s := 0; s < m.NumBeliefs(); s++ {
		enabled := set.Of[int]()
		for a := 0; a < m.NumActions(); a++ {
			succ := m.Succ(s, a)
			if len(succ) == 0 {
				continue
			}
			enabled.Add(a)
			for _, dst := range succ {
				if pre[dst] == nil {
					pre[dst] = set.Of[actPair]()
				}
				pre[dst].Add(actPair{State: s, Action: a})
			}
		}
		act[s] = enabled
	}
	return pre, act
}
