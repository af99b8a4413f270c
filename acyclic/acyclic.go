// Package acyclic reports whether an undirected simple graph, or an
// induced subgraph of one, contains no cycle.
//
// IsAcyclic is the validity oracle used by the fvs package: given the full
// graph and a candidate removal set, it answers whether deleting the set
// leaves a forest. It uses a disjoint-set (union-find) structure with path
// compression and union by rank: an edge whose endpoints already share a
// root closes a cycle.
//
// Complexity:
//
//   - Time:   O(V + E·α(V))  (α = inverse Ackermann, effectively constant)
//   - Memory: O(V) for the parent and rank maps.
package acyclic

import "github.com/MaximeBonnet27/feedback/core"

// IsAcyclic reports whether the subgraph of g induced on V(g) \ removed
// contains no cycle. A nil graph is trivially acyclic. A nil or empty
// removed set checks the whole graph.
//
// Steps:
//  1. Initialize DSU maps parent[] and rank[] for every surviving vertex.
//  2. Loop over g.Edges(): skip edges with a removed endpoint; for each
//     survivor (u,v), if find(u) == find(v) a cycle exists, else union(u,v).
//  3. No merging conflict over all edges → forest.
func IsAcyclic(g *core.Graph, removed map[string]struct{}) bool {
	// 1. Nil graph has no vertices, hence no cycles.
	if g == nil {
		return true
	}

	// 2. Initialize disjoint-set structures over surviving vertices.
	vertices := g.Vertices()
	parent := make(map[string]string, len(vertices))
	rank := make(map[string]int, len(vertices))
	for _, vid := range vertices {
		if _, gone := removed[vid]; gone {
			continue
		}
		parent[vid] = vid
		rank[vid] = 0
	}

	// Iterative find with path compression to avoid deep recursion.
	find := func(u string) string {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	// Union by rank merges two disjoint sets.
	union := func(u, v string) {
		rootU := find(u)
		rootV := find(v)
		if rank[rootU] < rank[rootV] {
			parent[rootU] = rootV
		} else {
			parent[rootV] = rootU
			if rank[rootU] == rank[rootV] {
				rank[rootU]++
			}
		}
	}

	// 3. Scan every surviving edge; a merge conflict closes a cycle.
	for _, e := range g.Edges() {
		if _, gone := removed[e.U]; gone {
			continue
		}
		if _, gone := removed[e.V]; gone {
			continue
		}
		if find(e.U) == find(e.V) {
			return false
		}
		union(e.U, e.V)
	}

	return true
}

// IsForest reports whether g as a whole contains no cycle.
func IsForest(g *core.Graph) bool {
	return IsAcyclic(g, nil)
}
