// Package beliefmdp builds the belief-support MDP (§4.2) by forward
// exploration from a product POMDP's initial belief support, or directly
// from a ParityPOMDP-flavoured pomdp.POMDP that already carries per-state
// priorities and needs no automaton. Both paths share one exploration
// core parameterized over a small internal source interface, rather than
// branching on the POMDP flavour throughout (the single dispatch point
// lives in cmd/pomdp-parity, per DESIGN.md's resolution of the dynamic
// dispatch question).
//
// Belief supports are canonicalized sorted tuples of (pomdp-state,
// automaton-state) pairs (in the direct case the automaton-state
// component is always 0), interned into a dense index space so the rest of the pipeline
// (scc, solver) can address beliefs by int.
package beliefmdp
