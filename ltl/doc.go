// Package ltl parses the LTL fragment consumed by this system (§6 of the
// specification): the operators G, F, X, U, !, &, | over atoms p0, p1, ….
//
// Parse returns an AST (Formula) that automaton.CompileLTL can consume. ltl
// itself has no notion of automata or priorities — it is a pure syntax
// layer, kept separate so a future richer translator can reuse the same
// parser.
package ltl
