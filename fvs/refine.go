// Package fvs backward refinement: after the reduction loop over-collects,
// this pass drops every vertex the candidate set can spare.
package fvs

import "github.com/MaximeBonnet27/feedback/core"

// refine pops the removal stack — reverse retirement order, last retired
// tested first — and evicts each vertex whose absence still leaves a valid
// feedback vertex set of the original, unreduced graph.
//
// The sweep guarantees non-redundancy (no single surviving vertex can be
// removed without reintroducing a cycle), not minimality. It mutates
// result in place; one validity-oracle call per candidate.
func refine(g *core.Graph, result map[string]struct{}, removed *stack[string], valid ValidityFunc) {
	for removed.Size() > 0 {
		v := removed.Pop()

		// Tentatively evict v and keep the eviction only if the remaining
		// set still breaks every cycle of g.
		delete(result, v)
		if !valid(g, result) {
			result[v] = struct{}{}
		}
	}
}
