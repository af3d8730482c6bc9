// Package pomdpparity synthesizes almost-sure winning strategies for
// partially observable Markov decision processes against omega-regular
// (parity/LTL) objectives.
//
// The pipeline is organized under a handful of subpackages:
//
//	pomdp/      — the POMDP model: states, actions, observations, transitions
//	pomdpfile/  — the §6 POMDP file grammar's parser
//	ltl/ tlsf/  — the consumed LTL fragment and TLSF extraction
//	automaton/  — the parity-automaton interface and a bounded LTL compiler
//	product/    — the product of a POMDP and a parity automaton
//	beliefmdp/  — the belief-support MDP built by forward exploration
//	scc/        — Tarjan strongly-connected-component decomposition
//	solver/     — the almost-sure parity solver (good-MEC search + attractor)
//	dot/        — Graphviz DOT rendering of every stage above
//	cmd/pomdp-parity/ — the CLI entry point tying the stages together
//
// A POMDP carrying direct per-state parity priorities skips the LTL and
// product stages entirely; one carrying atomic-proposition-labelled
// observations is compiled against an LTL or TLSF objective first. Both
// flavours converge on the same belief-support MDP shape before the
// solver runs.
package pomdpparity
