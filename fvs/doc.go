// Package fvs computes a 2-approximate Feedback Vertex Set of an
// undirected simple graph using the Bafna–Berman–Fujito local-ratio
// scheme.
//
// What:
//
//   - Compute(g, opts...): the full pipeline — degree-1 cleanup, the
//     weighted reduction loop, and the backward refinement pass. Returns a
//     vertex set whose removal leaves g acyclic, at most twice the size of
//     the optimum.
//   - SemiDisjointCycle(g): the cycle detector alone — finds one simple
//     cycle of length ≥ 3 in which at most one vertex has degree > 2.
//
// How:
//
// Every vertex starts with weight 1. Each iteration finds a semi-disjoint
// cycle if one exists and subtracts the minimum cycle weight from every
// cycle vertex; otherwise it subtracts γ·(deg(v)−1) from every active
// vertex, with γ the minimum of weight/(deg−1). Vertices whose weight
// reaches zero retire into the candidate set and onto a removal stack.
// Degree ≤ 1 vertices are pruned throughout — they can lie on no cycle.
// Finally the stack is popped in reverse retirement order and every vertex
// whose removal from the candidate set still leaves a valid feedback
// vertex set is discarded, so no single redundant vertex survives.
//
// Why:
//   - Break dependency or wait-for cycles by deleting few participants
//   - Approximate an NP-hard covering problem with a proven factor-2 bound
//   - Deterministic: pinned sorted iteration order, reproducible output
//
// Key Types & Options:
//
//   - Option / Options: functional configuration for Compute
//   - WithContext(ctx): cancellation, checked once per outer iteration
//   - WithEpsilon(eps): retirement tolerance for the weight-zero test
//   - WithLogger(l): structured per-iteration trace (discarded by default)
//   - WithAdjacency(fn) / WithValidity(fn): swap the adjacency or validity
//     oracle (defaults derive from the graph itself)
//
// Complexity:
//
//   - Compute:           O(V · (V + E)) oracle work per run (each outer
//     iteration retires at least one vertex)
//   - SemiDisjointCycle: O(V + E) per invocation
//
// Errors:
//
//   - context.Canceled / context.DeadlineExceeded if canceled via WithContext
//   - nil graph is a sentinel, not an error: Compute(nil) == nil
//
// Boundaries: simple graphs only — self-loops and parallel edges are
// rejected by core at construction time, so they cannot reach this package.
package fvs
