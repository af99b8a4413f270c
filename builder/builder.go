// SPDX-License-Identifier: MIT
//
// File: builder.go — the Build orchestrator, Constructor type, and the
// functional options shared by every topology factory.
//
// Design:
//   - One orchestrator: Build(cons...) creates the graph and runs the
//     constructors in order; any error is wrapped and returned immediately.
//   - builderConfig is resolved per constructor from its own options, so a
//     single Build call can mix prefixes to form disjoint unions.
//   - Determinism: same constructors and options ⇒ identical graphs.

package builder

import (
	"fmt"
	"strconv"

	"github.com/MaximeBonnet27/feedback/core"
)

// defaultPrefix is the vertex ID prefix used when WithPrefix is not given.
const defaultPrefix = "V"

// Constructor applies a deterministic graph mutation. Constructors must
// validate parameters early, return sentinel errors rather than panic, and
// emit vertices and edges in a stable documented order.
type Constructor func(g *core.Graph) error

// Option configures a single topology factory.
type Option func(*builderConfig)

// builderConfig aggregates the knobs a factory resolves from its options.
// It is held by value inside the returned Constructor closure.
type builderConfig struct {
	// prefix is prepended to the decimal vertex index ("V0", "V1", ...).
	prefix string
}

// newBuilderConfig applies options in order over deterministic defaults.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{prefix: defaultPrefix}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.prefix == "" {
		cfg.prefix = defaultPrefix
	}

	return cfg
}

// WithPrefix sets the vertex ID prefix for one factory. Distinct prefixes
// keep composed topologies vertex-disjoint.
func WithPrefix(prefix string) Option {
	return func(cfg *builderConfig) { cfg.prefix = prefix }
}

// vertexID renders the ID of the i-th vertex under cfg's prefix.
func (cfg builderConfig) vertexID(i int) string {
	return cfg.prefix + strconv.Itoa(i)
}

// Build creates a new core.Graph and applies all constructors in order.
// The first constructor error aborts the build; no partial cleanup is
// attempted.
//
// Complexity: sum of the constructors' costs; wrapper overhead O(len(cons)).
func Build(cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()

	for i, fn := range cons {
		// A nil constructor is a programmer error; fail rather than panic later.
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return g, nil
}
