package fvs_test

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MaximeBonnet27/feedback/acyclic"
	"github.com/MaximeBonnet27/feedback/builder"
	"github.com/MaximeBonnet27/feedback/core"
	"github.com/MaximeBonnet27/feedback/fvs"
)

// triangle builds the 3-cycle on A, B, C.
func triangle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("B", "C"))
	require.NoError(t, g.AddEdge("C", "A"))

	return g
}

// toSet converts a result slice into the removal-set form the validity
// oracle takes.
func toSet(ids []string) map[string]struct{} {
	out := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		out[id] = struct{}{}
	}

	return out
}

// bruteOPT returns the minimum feedback-vertex-set size by subset
// enumeration. Only for graphs of at most ~10 vertices.
func bruteOPT(t *testing.T, g *core.Graph) int {
	t.Helper()
	vertices := g.Vertices()
	require.LessOrEqual(t, len(vertices), 12, "brute force blows up beyond small graphs")

	best := len(vertices)
	for mask := 0; mask < 1<<len(vertices); mask++ {
		removed := make(map[string]struct{})
		size := 0
		for i, v := range vertices {
			if mask&(1<<i) != 0 {
				removed[v] = struct{}{}
				size++
			}
		}
		if size < best && acyclic.IsAcyclic(g, removed) {
			best = size
		}
	}

	return best
}

// TestCompute_NilGraph verifies the nil sentinel propagates, not an error.
func TestCompute_NilGraph(t *testing.T) {
	res, err := fvs.Compute(nil)
	assert.NoError(t, err)
	assert.Nil(t, res)
}

// TestCompute_EmptyGraph verifies an empty graph yields an empty result.
func TestCompute_EmptyGraph(t *testing.T) {
	res, err := fvs.Compute(core.NewGraph())
	require.NoError(t, err)
	assert.NotNil(t, res)
	assert.Empty(t, res)
}

// TestCompute_Triangle verifies the smallest cyclic graph needs one vertex.
func TestCompute_Triangle(t *testing.T) {
	g := triangle(t)

	res, err := fvs.Compute(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, res) // pinned order makes A the survivor
	assert.True(t, acyclic.IsAcyclic(g, toSet(res)))
}

// TestCompute_FiveCycle verifies a chordless 5-cycle needs one vertex.
func TestCompute_FiveCycle(t *testing.T) {
	g, err := builder.Build(builder.Cycle(5))
	require.NoError(t, err)

	res, cerr := fvs.Compute(g)
	require.NoError(t, cerr)
	assert.Len(t, res, 1)
	assert.True(t, acyclic.IsAcyclic(g, toSet(res)))
}

// TestCompute_TwoDisjointTriangles verifies one vertex per component.
func TestCompute_TwoDisjointTriangles(t *testing.T) {
	g, err := builder.Build(
		builder.Cycle(3, builder.WithPrefix("T")),
		builder.Cycle(3, builder.WithPrefix("U")),
	)
	require.NoError(t, err)

	res, cerr := fvs.Compute(g)
	require.NoError(t, cerr)
	assert.Equal(t, []string{"T0", "U0"}, res)
	assert.True(t, acyclic.IsAcyclic(g, toSet(res)))
}

// TestCompute_Trees verifies cleanup alone empties every acyclic input.
func TestCompute_Trees(t *testing.T) {
	for name, cons := range map[string]builder.Constructor{
		"path":   builder.Path(8),
		"star":   builder.Star(6),
		"single": builder.Path(1),
	} {
		t.Run(name, func(t *testing.T) {
			g, err := builder.Build(cons)
			require.NoError(t, err)

			res, cerr := fvs.Compute(g)
			require.NoError(t, cerr)
			assert.Empty(t, res)
		})
	}
}

// TestCompute_K4 verifies soundness and the factor-2 bound on K4 (OPT=2).
func TestCompute_K4(t *testing.T) {
	g, err := builder.Build(builder.Complete(4))
	require.NoError(t, err)

	res, cerr := fvs.Compute(g)
	require.NoError(t, cerr)
	assert.True(t, acyclic.IsAcyclic(g, toSet(res)))
	assert.Equal(t, 2, bruteOPT(t, g))
	assert.LessOrEqual(t, len(res), 4) // 2·OPT
}

// TestCompute_ChordedFiveCycle exercises Case B with a fractional γ:
// the chord endpoints have degree 3, so no cycle is semi-disjoint.
func TestCompute_ChordedFiveCycle(t *testing.T) {
	g := core.NewGraph()
	for _, e := range [][2]string{
		{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "E"}, {"E", "A"},
		{"A", "C"}, // chord
	} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	res, err := fvs.Compute(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, res)
	assert.True(t, acyclic.IsAcyclic(g, toSet(res)))
}

// petersen builds the Petersen graph: outer 5-cycle, inner pentagram,
// matching spokes. OPT of its feedback vertex set is 3.
func petersen(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < 5; i++ {
		o := "O" + string(rune('0'+i))
		oNext := "O" + string(rune('0'+(i+1)%5))
		in := "I" + string(rune('0'+i))
		inSkip := "I" + string(rune('0'+(i+2)%5))
		require.NoError(t, g.AddEdge(o, oNext))   // outer ring
		require.NoError(t, g.AddEdge(in, inSkip)) // inner pentagram
		require.NoError(t, g.AddEdge(o, in))      // spoke
	}

	return g
}

// TestCompute_ApproximationBound checks |result| ≤ 2·OPT against
// brute-forced optima on assorted small graphs.
func TestCompute_ApproximationBound(t *testing.T) {
	build := func(cons ...builder.Constructor) *core.Graph {
		g, err := builder.Build(cons...)
		require.NoError(t, err)

		return g
	}

	for name, g := range map[string]*core.Graph{
		"triangle": build(builder.Cycle(3)),
		"K4":       build(builder.Complete(4)),
		"K5":       build(builder.Complete(5)),
		"wheel6":   build(builder.Wheel(6)),
		"petersen": petersen(t),
	} {
		t.Run(name, func(t *testing.T) {
			res, err := fvs.Compute(g)
			require.NoError(t, err)
			assert.True(t, acyclic.IsAcyclic(g, toSet(res)), "result must be a feedback vertex set")
			opt := bruteOPT(t, g)
			assert.LessOrEqual(t, len(res), 2*opt, "factor-2 bound violated: got %d, OPT %d", len(res), opt)
		})
	}
}

// TestCompute_NonRedundancy verifies no single result vertex is spare.
func TestCompute_NonRedundancy(t *testing.T) {
	g, err := builder.Build(builder.Wheel(7))
	require.NoError(t, err)
	// Append a pendant path and a detached triangle to vary the structure.
	require.NoError(t, g.AddEdge("V1", "P0"))
	require.NoError(t, g.AddEdge("P0", "P1"))
	require.NoError(t, g.AddEdge("X0", "X1"))
	require.NoError(t, g.AddEdge("X1", "X2"))
	require.NoError(t, g.AddEdge("X2", "X0"))

	res, cerr := fvs.Compute(g)
	require.NoError(t, cerr)
	require.True(t, acyclic.IsAcyclic(g, toSet(res)))

	for _, v := range res {
		spared := toSet(res)
		delete(spared, v)
		assert.False(t, acyclic.IsAcyclic(g, spared), "vertex %s is redundant in the result", v)
	}
}

// TestCompute_ContextCanceled verifies cancellation surfaces as an error.
func TestCompute_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := fvs.Compute(triangle(t), fvs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, res)
}

// TestCompute_TraceLogging verifies the per-iteration trace reaches an
// installed logger at debug level.
func TestCompute_TraceLogging(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	_, err := fvs.Compute(triangle(t), fvs.WithLogger(logger))
	require.NoError(t, err)

	require.NotEmpty(t, hook.Entries)
	entry := hook.Entries[0]
	assert.Equal(t, "fvs: reduction step", entry.Message)
	assert.Contains(t, entry.Data, "gamma")
	assert.Contains(t, entry.Data, "active")
}

// TestCompute_OracleInjection verifies both collaborators can be swapped
// and are actually consulted.
func TestCompute_OracleInjection(t *testing.T) {
	g := triangle(t)

	adjCalls := 0
	adj := func(id string, active func(string) bool) []string {
		adjCalls++

		return g.NeighborsWithin(id, active)
	}

	validCalls := 0
	valid := func(full *core.Graph, removed map[string]struct{}) bool {
		validCalls++

		return acyclic.IsAcyclic(full, removed)
	}

	res, err := fvs.Compute(g, fvs.WithAdjacency(adj), fvs.WithValidity(valid))
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, res)
	assert.Positive(t, adjCalls)
	// One validity probe per retired vertex: the whole triangle retires.
	assert.Equal(t, 3, validCalls)
}

// TestCompute_Deterministic verifies identical inputs give identical output.
func TestCompute_Deterministic(t *testing.T) {
	g := petersen(t)

	first, err := fvs.Compute(g)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, cerr := fvs.Compute(g)
		require.NoError(t, cerr)
		assert.Equal(t, first, again)
	}
}
