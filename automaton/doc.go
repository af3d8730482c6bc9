// Package automaton is the parity-automaton boundary (§9 of the
// specification): the Automaton interface a product construction consumes,
// a ParityAcceptance sum type distinguishing already-parity automata from
// single-acceptance (Büchi-shaped) ones, a small explicit TableAutomaton
// for hand-built or test automata, and CompileLTL, a translator covering
// the conjunction-of-safety/recurrence/reachability fragment of LTL that
// the worked scenarios in this system need.
//
// A full LTL-to-deterministic-parity-automaton translator is an external
// collaborator this system does not implement (spec §1's "Out of scope"
// list) — real deployments plug in a production translator (e.g. Spot,
// Owl) behind the Automaton interface. CompileLTL exists so the CLI and
// examples are runnable end to end without that external dependency, at
// the cost of rejecting formulas outside its fragment with
// ErrUnsupportedFormula.
package automaton
