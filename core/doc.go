// SPDX-License-Identifier: MIT
//
// Package core defines the central Graph and Edge types for undirected
// simple graphs, and provides thread-safe primitives for building and
// querying them.
//
// All core APIs use a single sync.RWMutex internally, so you can safely
// share a Graph across goroutines. Self-loops and parallel edges are
// rejected at insertion time: every algorithm in this module is specified
// for simple graphs only.
//
// Determinism:
//
// Every snapshot accessor (Vertices, NeighborIDs, NeighborsWithin, Edges)
// returns its elements in ascending lexicographic order. Algorithms built
// on core rely on this pinned order for reproducible results; callers MUST
// NOT assume any other order.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrLoopNotAllowed      - self-loop (u == v) on AddEdge.
//	ErrMultiEdgeNotAllowed - parallel edge on AddEdge.
package core
