// Package dot renders the four plot artifacts of §6 (`pomdp.dot`,
// `automaton.dot`, `product_pomdp.dot`, `belief_support_mdp.dot`) as
// literal Graphviz DOT text, the same way the original tool's own show()
// methods hand-assemble DOT strings rather than drive a graph library.
package dot
