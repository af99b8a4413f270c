// Package fvs defines the options and collaborator contracts for the
// feedback-vertex-set computation: cancellation, the weight-retirement
// tolerance, trace logging, and the pluggable adjacency and validity
// oracles.
package fvs

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/MaximeBonnet27/feedback/core"
)

// defaultEpsilon is the retirement tolerance for the weight-zero test.
// γ is always an exact minimum, so the mathematically-zero weight survives
// only as floating-point residue; anything at or below this bound retires.
const defaultEpsilon = 1e-9

// AdjacencyFunc is the adjacency oracle: it returns the neighbors of id
// among the vertices accepted by the active predicate, in a fixed
// deterministic order. It is invoked with high multiplicity, so
// implementations should be indexed or cached.
//
// core.Graph.NeighborsWithin satisfies this contract and is the default.
type AdjacencyFunc func(id string, active func(string) bool) []string

// ValidityFunc is the validity oracle: it reports whether removing the
// given vertex set from g leaves an acyclic graph.
//
// acyclic.IsAcyclic satisfies this contract and is the default.
type ValidityFunc func(g *core.Graph, removed map[string]struct{}) bool

// Option configures optional behavior of Compute.
type Option func(*Options)

// Options holds configurable parameters for the reduction loop.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// It is checked once per outer reduction iteration.
	Ctx context.Context

	// Epsilon is the tolerance for the weight-retirement test. A vertex
	// retires when its weight falls to Epsilon or below; the weight is then
	// clamped to exactly zero. Default 1e-9.
	Epsilon float64

	// Logger receives a structured per-iteration trace at debug level.
	// The default logger discards all output.
	Logger *logrus.Logger

	// Adjacency overrides the adjacency oracle. Nil means "derive from the
	// input graph" (core.Graph.NeighborsWithin).
	Adjacency AdjacencyFunc

	// Validity overrides the validity oracle used by the refinement pass.
	// Nil means acyclic.IsAcyclic.
	Validity ValidityFunc
}

// DefaultOptions returns an Options struct with:
//   - Background context
//   - Epsilon = 1e-9
//   - a logger that discards output
//   - oracles derived from the input graph
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Epsilon:   defaultEpsilon,
		Logger:    discardLogger(),
		Adjacency: nil,
		Validity:  nil,
	}
}

// WithContext returns an Option that sets the Context for Compute.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithEpsilon returns an Option that sets the retirement tolerance.
// Non-positive values have no effect (the default is retained).
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if eps > 0 {
			o.Epsilon = eps
		}
	}
}

// WithLogger returns an Option that installs l as the trace logger.
// Passing nil has no effect (output stays discarded).
func WithLogger(l *logrus.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithAdjacency returns an Option that installs fn as the adjacency oracle.
func WithAdjacency(fn AdjacencyFunc) Option {
	return func(o *Options) {
		o.Adjacency = fn
	}
}

// WithValidity returns an Option that installs fn as the validity oracle.
func WithValidity(fn ValidityFunc) Option {
	return func(o *Options) {
		o.Validity = fn
	}
}

// discardLogger builds the default logger with all output suppressed.
func discardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}
