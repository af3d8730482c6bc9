// Package product builds the synchronous product (§4.1) of a POMDP and a
// parity automaton: states S × Q encoded by idx(s,q) = q·|S| + s, actions
// and observations inherited unchanged from the POMDP, and a priority per
// product state derived from the automaton's own priority plus the
// single-acceptance offset documented in DESIGN.md.
package product
