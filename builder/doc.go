// SPDX-License-Identifier: MIT
//
// Package builder assembles deterministic graph topologies for tests,
// examples and benchmarks.
//
// Each factory (Cycle, Path, Star, Wheel, Complete) returns a Constructor
// closure; Build applies the constructors in order to a fresh core.Graph.
// Composing several constructors with distinct ID prefixes yields disjoint
// unions:
//
//	g, err := builder.Build(
//		builder.Cycle(3),                            // T0-T1-T2-T0 with default prefix
//		builder.Cycle(3, builder.WithPrefix("U")),   // U0-U1-U2-U0
//	)
//
// Contract (strict):
//   - Same constructors, same options ⇒ identical graphs.
//   - Vertices are added in ascending index order, edges in a stable
//     documented order.
//   - Constructors validate parameters early and return sentinel errors;
//     they never panic.
package builder
