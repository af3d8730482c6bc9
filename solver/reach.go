package solver

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/pomdp-parity/internal/set"
)

// cannotReach returns the beliefs that cannot reach any member of targets
// without using a forbidden (state, action) edge: a reverse exploration
// from targets following only non-forbidden preimage edges.
func cannotReach(ctx context.Context, numBeliefs int, pre map[int]set.Set[actPair], targets set.Set[int], forbidden set.Set[actPair]) ([]int, error) {
	visited := set.Of[int]()
	toVisit := targets.Clone()
	for toVisit.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCanceled, err)
		}
		q := popSmallest(toVisit)
		for _, p := range pre[q].List() {
			if forbidden.Contains(p) {
				continue
			}
			if !visited.Contains(p.State) {
				toVisit.Add(p.State)
			}
		}
		visited.Add(q)
	}
	var out []int
	for s := 0; s < numBeliefs; s++ {
		if !visited.Contains(s) {
			out = append(out, s)
		}
	}
	sort.Ints(out)
	return out, nil
}

// almostSureReach computes the set of beliefs from which targets are
// almost-surely reachable, per Baier & Katoen's Algorithm 45: repeatedly
// strip actions whose every available choice has become unable to avoid
// the growing "cannot reach" frontier, until the frontier stabilizes.
func almostSureReach(ctx context.Context, m interface {
	NumBeliefs() int
}, pre map[int]set.Set[actPair], act map[int]set.Set[int], targets set.Set[int]) ([]int, error) {
	numBeliefs := m.NumBeliefs()
	cannotU, err := cannotReach(ctx, numBeliefs, pre, targets, set.Of[actPair]())
	if err != nil {
		return nil, err
	}
	u := set.Of(cannotU...)
	removed := set.Of[int]()
	removedPairs := set.Of[actPair]()

	for {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCanceled, err)
		}
		r := u.Clone()
		for r.Len() > 0 {
			uState := popSmallest(r)
			for _, p := range pre[uState].List() {
				if u.Contains(p.State) {
					continue
				}
				if !removedPairs.Contains(p) {
					act[p.State].Remove(p.Action)
					removedPairs.Add(p)
				}
				if act[p.State].Len() == 0 && !targets.Contains(p.State) {
					r.Add(p.State)
					u.Add(p.State)
				}
			}
			removed.Add(uState)
		}
		nextU, err := cannotReach(ctx, numBeliefs, pre, targets, removedPairs)
		if err != nil {
			return nil, err
		}
		fresh := set.Of[int]()
		for _, s := range nextU {
			if !u.Contains(s) {
				fresh.Add(s)
			}
		}
		if fresh.Len() == 0 {
			break
		}
		u = fresh
	}

	var out []int
	for s := 0; s < numBeliefs; s++ {
		if !removed.Contains(s) {
			out = append(out, s)
		}
	}
	sort.Ints(out)
	return out, nil
}
