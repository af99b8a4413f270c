// SPDX-License-Identifier: MIT
//
// File: errors.go — sentinel errors for the builder package.
//
// Error policy:
//   - Only package-level sentinels are exposed; branch with errors.Is.
//   - Implementations attach context with %w wrapping, never by
//     stringifying parameters into the sentinel itself.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter is smaller than the
// minimum the requested topology is defined for (e.g. Cycle needs n >= 3).
// Usage: if errors.Is(err, ErrTooFewVertices) { /* report invalid size */ }.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrConstructFailed indicates a constructor could not complete without
// breaking the simple-graph invariants of core (loops, parallel edges).
// Usage: if errors.Is(err, ErrConstructFailed) { /* inspect composition */ }.
var ErrConstructFailed = errors.New("builder: construction failed")
