// Package fvs helper types shared by the reduction loop, the cycle
// detector, and the refinement pass: a small generic LIFO stack and an
// ordered-minimum helper.
package fvs

import "golang.org/x/exp/constraints"

// stack is a minimal generic LIFO. The reduction loop records retirement
// order on a stack[string]; the cycle detector keeps its DFS frames on a
// stack[*dfsFrame].
type stack[V any] struct {
	entries []V
}

// newStack returns an empty stack.
func newStack[V any]() *stack[V] {
	return &stack[V]{entries: make([]V, 0)}
}

// Push appends v on top of the stack.
func (s *stack[V]) Push(v V) {
	s.entries = append(s.entries, v)
}

// Pop removes and returns the top element; the zero value when empty.
func (s *stack[V]) Pop() (v V) {
	n := len(s.entries)
	if n == 0 {
		return v
	}
	top := s.entries[n-1]
	s.entries = s.entries[:n-1]

	return top
}

// Peek returns the top element without removing it; the zero value when empty.
func (s *stack[V]) Peek() (v V) {
	n := len(s.entries)
	if n == 0 {
		return v
	}

	return s.entries[n-1]
}

// Size returns the number of stacked elements.
func (s *stack[V]) Size() int {
	return len(s.entries)
}

// minimum returns the smallest element of xs. xs must be non-empty; both
// call sites iterate collections the loop has just proven non-empty.
func minimum[T constraints.Ordered](xs []T) T {
	best := xs[0]
	for _, x := range xs[1:] {
		if x < best {
			best = x
		}
	}

	return best
}
