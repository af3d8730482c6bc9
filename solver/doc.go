// Package solver computes almost-sure winning regions and memoryless
// strategies for qualitative parity objectives on a belief-support MDP
// (C5): maximal end component decomposition per even priority (Baier &
// Katoen Algorithm 47), the almost-sure attractor to a target set (Baier
// & Katoen Algorithm 45), and the top-level almost-sure winning
// orchestration that combines them across every even priority up to the
// automaton's maximum.
//
// Every entry point takes a context.Context and checks it cooperatively
// inside its refinement loops, the same discipline this codebase's
// traversal helpers use elsewhere, since these fixed-point computations
// can run long on large belief-support MDPs.
package solver
