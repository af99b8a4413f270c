// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: Mutation and query methods on Graph.
// Policy:
//   - Snapshot accessors return freshly allocated, sorted slices; callers
//     may retain and mutate them freely.
//   - Mutations are idempotent where harmless (AddVertex) and fail with
//     sentinel errors where the simple-graph invariant would break.

package core

import "sort"

// AddVertex inserts a vertex with the given ID.
// Adding an existing vertex is a no-op.
// Complexity: O(1).
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertexLocked(id)

	return nil
}

// AddEdge inserts the undirected edge {u, v}, creating either endpoint if
// missing. Self-loops and parallel edges are rejected with sentinel errors.
// Complexity: O(1).
func (g *Graph) AddEdge(u, v string) error {
	if u == "" || v == "" {
		return ErrEmptyVertexID
	}
	if u == v {
		return ErrLoopNotAllowed
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertexLocked(u)
	g.ensureVertexLocked(v)

	if _, dup := g.adjacency[u][v]; dup {
		return ErrMultiEdgeNotAllowed
	}

	// Store both directions so either endpoint resolves the edge in O(1).
	g.adjacency[u][v] = struct{}{}
	g.adjacency[v][u] = struct{}{}
	g.edgeCount++

	return nil
}

// HasVertex reports whether the vertex exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.vertices[id]

	return ok
}

// HasEdge reports whether the undirected edge {u, v} exists.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[u][v]

	return ok
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Vertices returns all vertex IDs in ascending order.
// This is the pinned deterministic iteration order for the whole module.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Edges returns every edge once, in canonical (U < V) form, sorted by U
// then V.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edgeCount)
	for u, nbs := range g.adjacency {
		for v := range nbs {
			if u < v { // emit each undirected edge exactly once
				out = append(out, Edge{U: u, V: v})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].U != out[j].U {
			return out[i].U < out[j].U
		}

		return out[i].V < out[j].V
	})

	return out
}

// NeighborIDs returns the neighbors of id in ascending order, or
// ErrVertexNotFound if the vertex does not exist.
// Complexity: O(d log d) where d is the degree of id.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	return sortedKeys(g.adjacency[id]), nil
}

// NeighborsWithin returns the neighbors of id restricted to vertices
// accepted by the active predicate, in ascending order. Adjacency is
// evaluated relative to the active set: vertices rejected by active vanish
// from everyone's neighbor lists. Unknown IDs yield an empty slice.
//
// A nil predicate means "everything is active".
// Complexity: O(d log d).
func (g *Graph) NeighborsWithin(id string, active func(string) bool) []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbs := g.adjacency[id]
	out := make([]string, 0, len(nbs))
	for v := range nbs {
		if active == nil || active(v) {
			out = append(out, v)
		}
	}
	sort.Strings(out)

	return out
}

// Clone returns a deep copy of the graph. The copy shares no state with
// the original.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph()
	for id := range g.vertices {
		clone.vertices[id] = struct{}{}
		clone.adjacency[id] = make(map[string]struct{}, len(g.adjacency[id]))
		for v := range g.adjacency[id] {
			clone.adjacency[id][v] = struct{}{}
		}
	}
	clone.edgeCount = g.edgeCount

	return clone
}

// ensureVertexLocked inserts id into the catalogs if absent.
// Caller must hold g.mu for writing.
func (g *Graph) ensureVertexLocked(id string) {
	if _, ok := g.vertices[id]; ok {
		return
	}
	g.vertices[id] = struct{}{}
	g.adjacency[id] = make(map[string]struct{})
}

// sortedKeys returns the keys of m in ascending order.
func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
