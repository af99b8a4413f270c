// SPDX-License-Identifier: MIT
//
// File: topology.go — implementations of the topology factories.
//
// Contract (every factory):
//   - Validates its size parameter first; returns ErrTooFewVertices below
//     the documented minimum.
//   - Adds vertices in ascending index order via cfg.vertexID.
//   - Emits edges in the stable order documented per factory.
//   - Wraps core errors with the factory name for context.

package builder

import (
	"fmt"

	"github.com/MaximeBonnet27/feedback/core"
)

// File-local method tags and parameter minima (no magic numbers).
const (
	methodCycle    = "Cycle"
	methodPath     = "Path"
	methodStar     = "Star"
	methodWheel    = "Wheel"
	methodComplete = "Complete"

	minCycleNodes    = 3
	minPathNodes     = 1
	minStarNodes     = 2
	minWheelNodes    = 4
	minCompleteNodes = 1
)

// addIndexedVertices inserts vertices 0..n-1 under cfg's prefix.
func addIndexedVertices(g *core.Graph, cfg builderConfig, method string, n int) error {
	for i := 0; i < n; i++ {
		id := cfg.vertexID(i)
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
		}
	}

	return nil
}

// addEdge inserts one edge with method context on failure.
func addEdge(g *core.Graph, method, u, v string) error {
	if err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%s-%s): %w", method, u, v, err)
	}

	return nil
}

// Cycle returns a Constructor that builds the n-vertex simple cycle C_n
// (n >= 3). Edges are emitted in ring order i - (i+1) mod n.
// Complexity: O(n).
func Cycle(n int, opts ...Option) Constructor {
	cfg := newBuilderConfig(opts...)

	return func(g *core.Graph) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		if err := addIndexedVertices(g, cfg, methodCycle, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := addEdge(g, methodCycle, cfg.vertexID(i), cfg.vertexID((i+1)%n)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Path returns a Constructor that builds the simple path P_n (n >= 1).
// Edges are emitted in chain order i - (i+1).
// Complexity: O(n).
func Path(n int, opts ...Option) Constructor {
	cfg := newBuilderConfig(opts...)

	return func(g *core.Graph) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		if err := addIndexedVertices(g, cfg, methodPath, n); err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err := addEdge(g, methodPath, cfg.vertexID(i), cfg.vertexID(i+1)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star returns a Constructor that builds a star on n vertices (n >= 2):
// vertex 0 is the hub, vertices 1..n-1 are leaves. Edges are emitted in
// ascending leaf order.
// Complexity: O(n).
func Star(n int, opts ...Option) Constructor {
	cfg := newBuilderConfig(opts...)

	return func(g *core.Graph) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := addIndexedVertices(g, cfg, methodStar, n); err != nil {
			return err
		}
		hub := cfg.vertexID(0)
		for i := 1; i < n; i++ {
			if err := addEdge(g, methodStar, hub, cfg.vertexID(i)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Wheel returns a Constructor that builds the wheel W_n (n >= 4): vertex 0
// is the hub, vertices 1..n-1 form the rim cycle, and every rim vertex is
// connected to the hub. Rim edges are emitted first, then spokes, both in
// ascending order.
// Complexity: O(n).
func Wheel(n int, opts ...Option) Constructor {
	cfg := newBuilderConfig(opts...)

	return func(g *core.Graph) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		if err := addIndexedVertices(g, cfg, methodWheel, n); err != nil {
			return err
		}
		rim := n - 1
		for i := 0; i < rim; i++ {
			u := cfg.vertexID(1 + i)
			v := cfg.vertexID(1 + (i+1)%rim)
			if err := addEdge(g, methodWheel, u, v); err != nil {
				return err
			}
		}
		hub := cfg.vertexID(0)
		for i := 1; i < n; i++ {
			if err := addEdge(g, methodWheel, hub, cfg.vertexID(i)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete returns a Constructor that builds the complete simple graph K_n
// (n >= 1). Each unordered pair {i,j} with i < j is emitted exactly once in
// lexicographic index order.
// Complexity: O(n^2).
func Complete(n int, opts ...Option) Constructor {
	cfg := newBuilderConfig(opts...)

	return func(g *core.Graph) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		if err := addIndexedVertices(g, cfg, methodComplete, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(g, methodComplete, cfg.vertexID(i), cfg.vertexID(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
