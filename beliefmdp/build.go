package beliefmdp

import (
	"sort"

	"github.com/katalvlaran/pomdp-parity/internal/set"
	"github.com/katalvlaran/pomdp-parity/pomdp"
	"github.com/katalvlaran/pomdp-parity/product"
	"golang.org/x/exp/maps"
)

// srcOutcome is one (next pair, observation, probability) branch out of a
// single belief element under a fixed action.
type srcOutcome struct {
	next Pair
	obs  int
	prob float64
}

// source abstracts over the two model flavours forward exploration can
// consume: a product POMDP (automaton states vary) or a ParityPOMDP loaded
// directly (automaton state is always 0). Both sides of this interface
// ultimately read the same kind of (state, action) -> outcomes relation;
// source exists so the exploration loop below is written once.
type source interface {
	numActions() int
	actionName(a int) string
	initialPairs() []Pair
	outcomes(pair Pair, a int) []srcOutcome
	priority(pair Pair) int
	envName() string
}

type productSource struct{ p *product.Product }

func (s productSource) numActions() int            { return s.p.NumActions() }
func (s productSource) actionName(a int) string     { return s.p.ActionName(a) }
func (s productSource) priority(pair Pair) int      { return s.p.Priority(s.p.Idx(pair.S, pair.Q)) }
func (s productSource) envName() string             { return "product" }
func (s productSource) initialPairs() []Pair {
	var out []Pair
	for idx := 0; idx < s.p.NumStates(); idx++ {
		if s.p.Start(idx) > 0 {
			st, q := s.p.Decode(idx)
			out = append(out, Pair{S: st, Q: q})
		}
	}
	return out
}
func (s productSource) outcomes(pair Pair, a int) []srcOutcome {
	row := s.p.Trans(s.p.Idx(pair.S, pair.Q), a)
	out := make([]srcOutcome, len(row))
	for i, o := range row {
		ns, nq := s.p.Decode(o.Next)
		out[i] = srcOutcome{next: Pair{S: ns, Q: nq}, obs: o.Obs, prob: o.Prob}
	}
	return out
}

type parityDirectSource struct{ env *pomdp.POMDP }

func (s parityDirectSource) numActions() int        { return s.env.NumActions() }
func (s parityDirectSource) actionName(a int) string { return s.env.ActionName(a) }
func (s parityDirectSource) priority(pair Pair) int  { return s.env.Priority(pair.S) }
func (s parityDirectSource) envName() string         { return "parity-pomdp" }
func (s parityDirectSource) initialPairs() []Pair {
	var out []Pair
	for st := 0; st < s.env.NumStates(); st++ {
		if s.env.Start(st) > 0 {
			out = append(out, Pair{S: st, Q: 0})
		}
	}
	return out
}
func (s parityDirectSource) outcomes(pair Pair, a int) []srcOutcome {
	row := s.env.Trans(pair.S, a)
	out := make([]srcOutcome, len(row))
	for i, o := range row {
		out[i] = srcOutcome{next: Pair{S: o.Next, Q: 0}, obs: o.Obs, prob: o.Prob}
	}
	return out
}

// Build constructs the belief-support MDP by forward exploration over a
// product POMDP (the AtomicPropPOMDP flavour, §4.2).
func Build(p *product.Product) (*BeliefMDP, error) {
	return explore(productSource{p: p})
}

// BuildDirect constructs the belief-support MDP directly from a
// ParityPOMDP-flavoured env (env.HasPriorities() must be true), skipping
// the automaton and product construction entirely.
func BuildDirect(env *pomdp.POMDP) (*BeliefMDP, error) {
	return explore(parityDirectSource{env: env})
}

// explore is the forward-exploration core shared by Build and
// BuildDirect: start from the initial belief support, and for each belief
// and action, partition reachable successors by observation to form one
// successor belief per observation, enqueuing newly discovered beliefs.
func explore(src source) (*BeliefMDP, error) {
	initPairs := dedupeSortPairs(src.initialPairs())
	if len(initPairs) == 0 {
		return nil, ErrNoReachableStart
	}

	m := &BeliefMDP{numActions: src.numActions(), actionName: src.actionName, beliefEnv: src.envName()}
	index := make(map[string]int)

	intern := func(pairs []Pair) (idx int, isNew bool) {
		b := Belief(pairs)
		k := b.key()
		if existing, ok := index[k]; ok {
			return existing, false
		}
		idx = len(m.beliefs)
		index[k] = idx
		m.beliefs = append(m.beliefs, b)
		return idx, true
	}

	startIdx, _ := intern(initPairs)
	m.start = startIdx

	var queue []int
	queue = append(queue, startIdx)
	m.succ = append(m.succ, nil)

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		belief := m.beliefs[cur]

		row := make([][]int, src.numActions())
		for a := 0; a < src.numActions(); a++ {
			byObs := make(map[int]set.Set[Pair])
			for _, pair := range belief {
				for _, oc := range src.outcomes(pair, a) {
					if oc.prob <= 0 {
						continue
					}
					bucket, ok := byObs[oc.obs]
					if !ok {
						bucket = set.Of[Pair]()
						byObs[oc.obs] = bucket
					}
					bucket.Add(oc.next)
				}
			}
			if len(byObs) == 0 {
				continue
			}
			obsKeys := maps.Keys(byObs)
			sort.Ints(obsKeys)

			var succIdxs []int
			for _, o := range obsKeys {
				pairs := dedupeSortPairs(byObs[o].List())
				if len(pairs) == 0 {
					continue
				}
				idx, isNew := intern(pairs)
				if isNew {
					queue = append(queue, idx)
					m.succ = append(m.succ, nil)
				}
				succIdxs = append(succIdxs, idx)
			}
			sort.Ints(succIdxs)
			row[a] = dedupeInts(succIdxs)
		}
		m.succ[cur] = row
	}

	m.priority = make([]int, len(m.beliefs))
	for i, b := range m.beliefs {
		max := 0
		for j, pair := range b {
			pr := src.priority(pair)
			if j == 0 || pr > max {
				max = pr
			}
		}
		m.priority[i] = max
	}

	return m, nil
}

func dedupeSortPairs(pairs []Pair) []Pair {
	if len(pairs) == 0 {
		return nil
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].S != pairs[j].S {
			return pairs[i].S < pairs[j].S
		}
		return pairs[i].Q < pairs[j].Q
	})
	out := pairs[:1]
	for _, p := range pairs[1:] {
		if p != out[len(out)-1] {
			out = append(out, p)
		}
	}
	return out
}

func dedupeInts(xs []int) []int {
	if len(xs) == 0 {
		return nil
	}
	out := xs[:1]
	for _, x := range xs[1:] {
		if x != out[len(out)-1] {
			out = append(out, x)
		}
	}
	return out
}
