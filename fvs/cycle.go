// Package fvs semi-disjoint cycle detection: an explicit-stack depth-first
// search over the active set that returns the first simple cycle of length
// ≥ 3 in which at most one vertex has active-set degree above 2.
//
// The detector is iterative on purpose: the traversal state (current
// vertex, parent, neighbor cursor) lives in explicit frames rather than
// return addresses, so deep graphs cannot exhaust the goroutine stack and
// backtracking is visible in the code.
package fvs

import "github.com/MaximeBonnet27/feedback/core"

// maxSemiDisjointDegree is the largest degree a non-joker cycle vertex may
// have; exactly one vertex per cycle (the joker) may exceed it.
const maxSemiDisjointDegree = 2

// minCycleLen is the shortest simple cycle in a simple graph.
const minCycleLen = 3

// dfsFrame is one explicit DFS stack entry: the vertex being explored, the
// vertex it was entered from, and a cursor over its active-set neighbors.
type dfsFrame struct {
	id     string
	parent string
	nbs    []string
	next   int
}

// semiDisjointCycle searches the active set for one semi-disjoint cycle,
// covering disconnected components by restarting from every unvisited
// vertex in the pinned order. Returns the cycle as an ordered vertex
// sequence and whether one was found.
//
// First-found semantics: the first candidate that validates is returned
// immediately; any valid semi-disjoint cycle preserves the approximation
// guarantee, and taking the first keeps the output deterministic.
func (s *loopState) semiDisjointCycle() ([]string, bool) {
	visited := make(map[string]bool, s.live)
	for _, root := range s.order {
		if !s.active[root] || visited[root] {
			continue
		}
		if cyc := s.walk(root, visited); cyc != nil {
			return cyc, true
		}
	}

	return nil, false
}

// walk runs one DFS tree from root, sharing the global visited set across
// trees. The running path and its most-recent-index map shrink on
// backtrack, so a visited non-parent neighbor is always an ancestor on the
// current path (undirected DFS admits no cross edges), and the path slice
// from that ancestor through the current vertex is a cycle candidate.
func (s *loopState) walk(root string, visited map[string]bool) []string {
	frames := newStack[*dfsFrame]()
	path := make([]string, 0, s.live)
	pathIdx := make(map[string]int, s.live)

	// enter marks id visited, extends the path, and opens its frame with a
	// fresh neighbor snapshot relative to the current active set.
	enter := func(id, parent string) {
		visited[id] = true
		pathIdx[id] = len(path)
		path = append(path, id)
		frames.Push(&dfsFrame{id: id, parent: parent, nbs: s.neighbors(id)})
	}
	enter(root, "")

	for frames.Size() > 0 {
		f := frames.Peek()

		// Frame exhausted: backtrack, shrinking path and index together.
		if f.next >= len(f.nbs) {
			frames.Pop()
			delete(pathIdx, f.id)
			path = path[:len(path)-1]
			continue
		}

		nb := f.nbs[f.next]
		f.next++

		// Never reuse the traversal edge just taken. A simple graph has
		// exactly one edge to the parent, so skipping it once suffices.
		if nb == f.parent {
			continue
		}

		if visited[nb] {
			idx, onPath := pathIdx[nb]
			if !onPath {
				continue
			}
			candidate := path[idx:]
			if s.semiDisjoint(candidate) {
				// Return a copy: path keeps mutating after we unwind.
				out := make([]string, len(candidate))
				copy(out, candidate)

				return out
			}
			// An invalid candidate does not abort the search; the remaining
			// neighbors may still close a valid cycle.
			continue
		}

		enter(nb, f.id)
	}

	return nil
}

// semiDisjoint validates a cycle candidate: length ≥ 3 and at most one
// vertex (the joker) of active-set degree above 2.
func (s *loopState) semiDisjoint(cycle []string) bool {
	if len(cycle) < minCycleLen {
		return false
	}
	joker := false
	for _, v := range cycle {
		if s.degree(v) > maxSemiDisjointDegree {
			if joker {
				return false // second joker disqualifies the cycle
			}
			joker = true
		}
	}

	return true
}

// SemiDisjointCycle searches g as a whole for one semi-disjoint cycle: a
// simple cycle of length ≥ 3 in which at most one vertex has degree > 2.
// Returns the cycle as an ordered vertex sequence and whether one exists.
// A nil graph has no cycles.
//
// The search order is the pinned sorted order of g, so the result is
// deterministic.
func SemiDisjointCycle(g *core.Graph) ([]string, bool) {
	if g == nil {
		return nil, false
	}
	s := newLoopState(g, g.NeighborsWithin)

	return s.semiDisjointCycle()
}
