// Package feedback approximates the minimum Feedback Vertex Set of an
// undirected simple graph — the smallest vertex subset whose removal
// leaves the graph acyclic.
//
// 🚀 What is feedback?
//
//	A small, deterministic library implementing the Bafna–Berman–Fujito
//	local-ratio scheme, which guarantees a factor-2 approximation:
//		• core/    — thread-safe undirected simple graph primitives
//		• acyclic/ — union-find forest (acyclicity) check
//		• fvs/     — the 2-approximation: weighted reduction loop,
//		  semi-disjoint cycle detection, backward refinement
//		• builder/ — deterministic topology constructors for fixtures
//
// ✨ Why choose feedback?
//
//   - Deterministic – pinned sorted iteration order, reproducible results
//   - Rock-solid guarantees – sentinel errors, no panics, in-code docs
//   - Pluggable – adjacency and validity oracles swappable via options
//   - Observable – optional structured trace of every reduction step
//
// Quick ASCII example:
//
//	    A───B
//	    │ ╲ │
//	    C───D
//
//	removing the single vertex A (or D) breaks every cycle, so {A} is a
//	minimum feedback vertex set of this diamond.
//
// Dive into fvs.Compute for the entry point, or builder.Build to assemble
// reproducible test topologies.
//
//	go get github.com/MaximeBonnet27/feedback
package feedback
