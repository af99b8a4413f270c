// Package fvs implements the Bafna–Berman–Fujito 2-approximation for the
// minimum Feedback Vertex Set of an undirected simple graph: an iterative
// local-ratio weight decrement driven by semi-disjoint cycle detection,
// followed by a backward refinement pass.
package fvs

import (
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/MaximeBonnet27/feedback/acyclic"
	"github.com/MaximeBonnet27/feedback/core"
)

// loopState carries the mutable working data of the reduction loop.
//
// order is the full vertex catalog in the pinned sorted order; retired
// vertices stay in place and are skipped on iteration (liveness flags in
// active), so no scan ever mutates the collection it walks.
type loopState struct {
	adj    AdjacencyFunc
	order  []string
	active map[string]bool
	live   int // number of vertices still active

	weights map[string]float64
	removed *stack[string]      // retirement order, consumed by refine
	result  map[string]struct{} // candidate feedback vertex set
}

// newLoopState initializes the working state: every vertex active with
// weight 1.
func newLoopState(g *core.Graph, adj AdjacencyFunc) *loopState {
	order := g.Vertices()
	s := &loopState{
		adj:     adj,
		order:   order,
		active:  make(map[string]bool, len(order)),
		live:    len(order),
		weights: make(map[string]float64, len(order)),
		removed: newStack[string](),
		result:  make(map[string]struct{}),
	}
	for _, v := range order {
		s.active[v] = true
		s.weights[v] = 1.0
	}

	return s
}

// isActive is the membership predicate handed to the adjacency oracle.
func (s *loopState) isActive(id string) bool {
	return s.active[id]
}

// neighbors returns the active-set neighbors of v in the pinned order.
func (s *loopState) neighbors(v string) []string {
	return s.adj(v, s.isActive)
}

// degree returns the active-set degree of v.
func (s *loopState) degree(v string) int {
	return len(s.neighbors(v))
}

// retireDiscard removes v from the active set without recording it.
// Used by cleanup: a degree ≤ 1 vertex lies on no cycle and is never
// needed in a feedback vertex set.
func (s *loopState) retireDiscard(v string) {
	s.active[v] = false
	s.live--
}

// retireResult moves v from the active set into the candidate set and
// records its retirement order.
func (s *loopState) retireResult(v string) {
	s.active[v] = false
	s.live--
	s.weights[v] = 0 // clamp floating residue
	s.removed.Push(v)
	s.result[v] = struct{}{}
}

// cleanup prunes vertices of active-set degree ≤ 1 until a fixpoint:
// removing one such vertex can drop a neighbor to degree ≤ 1, so the scan
// repeats until a full pass removes nothing. Each pass collects its
// victims first and applies the removals afterwards.
func (s *loopState) cleanup() {
	for {
		prune := make([]string, 0)
		for _, v := range s.order {
			if !s.active[v] {
				continue
			}
			if s.degree(v) <= 1 {
				prune = append(prune, v)
			}
		}
		if len(prune) == 0 {
			return
		}
		for _, v := range prune {
			s.retireDiscard(v)
		}
	}
}

// retire moves every active vertex whose weight has fallen to eps or
// below into the candidate set, in the pinned order. Returns the number
// of vertices retired.
func (s *loopState) retire(eps float64) int {
	n := 0
	for _, v := range s.order {
		if !s.active[v] {
			continue
		}
		if s.weights[v] <= eps {
			s.retireResult(v)
			n++
		}
	}

	return n
}

// Compute returns a feedback vertex set of g at most twice the size of the
// minimum one, as a sorted slice of vertex IDs.
//
// A nil graph returns (nil, nil) — a sentinel, not an error. An empty
// graph returns an empty slice. The only error condition is cancellation
// of the context installed via WithContext.
//
// Determinism: for a fixed graph and options the result is identical
// across runs; all vertex collections are iterated in the pinned sorted
// order.
func Compute(g *core.Graph, opts ...Option) ([]string, error) {
	// 1. Nil graph sentinel.
	if g == nil {
		return nil, nil
	}

	// 2. Apply options and resolve the default oracles against g.
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.Adjacency == nil {
		o.Adjacency = g.NeighborsWithin
	}
	if o.Validity == nil {
		o.Validity = acyclic.IsAcyclic
	}

	// 3. Initialize weights and prune everything that can lie on no cycle.
	s := newLoopState(g, o.Adjacency)
	s.cleanup()

	// 4. Reduction loop: every iteration retires at least one vertex, so
	//    the active set strictly shrinks and the loop terminates.
	for iter := 1; s.live > 0; iter++ {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		cycle, found := s.semiDisjointCycle()

		var gamma float64
		if found {
			// Case A: any single vertex breaks a semi-disjoint cycle, so the
			// unit cost of breaking it is charged uniformly to every cycle
			// vertex. γ is the minimum cycle weight.
			ws := make([]float64, len(cycle))
			for i, v := range cycle {
				ws[i] = s.weights[v]
			}
			gamma = minimum(ws)
			for _, v := range cycle {
				s.weights[v] -= gamma
			}
		} else {
			// Case B: no semi-disjoint cycle exists; tighten the dual
			// constraint across all active vertices weighted by excess
			// degree. Cleanup guarantees every degree is ≥ 2 here, so
			// deg−1 ≥ 1. Degrees snapshot first: both passes must see the
			// same active set.
			degs := make(map[string]int, s.live)
			ratios := make([]float64, 0, s.live)
			for _, v := range s.order {
				if !s.active[v] {
					continue
				}
				d := s.degree(v)
				degs[v] = d
				ratios = append(ratios, s.weights[v]/float64(d-1))
			}
			gamma = minimum(ratios)
			for _, v := range s.order {
				if !s.active[v] {
					continue
				}
				s.weights[v] -= gamma * float64(degs[v]-1)
			}
		}

		// γ is an exact minimum, so at least one weight is now zero up to
		// floating residue; the ε test absorbs that residue.
		retired := s.retire(o.Epsilon)

		o.Logger.WithFields(logrus.Fields{
			"iteration": iter,
			"active":    s.live,
			"gamma":     gamma,
			"cycle":     len(cycle),
			"retired":   retired,
		}).Debug("fvs: reduction step")

		// Retirements may expose new degree ≤ 1 vertices.
		s.cleanup()
	}

	// 5. Backward refinement: drop every vertex the candidate set can
	//    spare, testing in reverse retirement order.
	refine(g, s.result, s.removed, o.Validity)

	// 6. Deterministic output order.
	out := make([]string, 0, len(s.result))
	for v := range s.result {
		out = append(out, v)
	}
	sort.Strings(out)

	return out, nil
}
