// Package scc computes strongly connected components of an arbitrary
// vertex subset under a caller-supplied successor function, via the
// recursive variant of Tarjan's algorithm (§4.4). The solver package uses
// it to split MEC candidates during Baier & Katoen's Algorithm 47;
// keeping it as its own package mirrors how the source material treats
// SCC decomposition as a reusable primitive of the solver, not an
// inlined detail.
//
// Only the recursive formulation is provided: an iterative rewrite was
// tried in the source material and documented as buggy, so this port
// does not carry it forward.
package scc
