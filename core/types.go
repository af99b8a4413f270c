// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph and Edge type declarations, sentinel errors, constructor.
// Policy:
//   - No algorithms here; pure state and invariants.
//   - Undirected simple graphs only: no loops, no parallel edges.
//   - One RWMutex guards vertices and adjacency together (mutations touch both).

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that an operation received an empty vertex ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted; simple graphs only.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted; simple graphs only.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge represents an undirected edge between two vertices.
// Invariant: U < V lexicographically, so every edge has one canonical form.
type Edge struct {
	// U is the lexicographically smaller endpoint ID.
	U string

	// V is the lexicographically larger endpoint ID.
	V string
}

// Graph is the core in-memory undirected simple graph.
//
// vertices is the vertex catalog; adjacency[u][v] exists iff edge {u,v}
// exists (stored in both directions for O(1) neighbor lookup from either
// endpoint). mu guards both maps.
type Graph struct {
	mu sync.RWMutex

	vertices  map[string]struct{}
	adjacency map[string]map[string]struct{}
	edgeCount int
}

// NewGraph creates an empty undirected simple Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		vertices:  make(map[string]struct{}),
		adjacency: make(map[string]map[string]struct{}),
	}
}
