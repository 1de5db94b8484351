// Package edgelist: the EdgeList type, its constructors, accessors,
// and validation. Sentinel errors follow the library convention of
// package-prefixed errors.New values.
package edgelist

import (
	"errors"
	"fmt"
)

// Sentinel errors for edge-list construction and validation.
var (
	// ErrLengthMismatch indicates tail and head slices of differing length.
	ErrLengthMismatch = errors.New("edgelist: tail and head must have the same length")

	// ErrEdgeIDRange indicates an edge id outside the valid range 1..m.
	ErrEdgeIDRange = errors.New("edgelist: edge id out of range")

	// ErrVertexRange indicates a tail or head vertex id outside 1..n.
	ErrVertexRange = errors.New("edgelist: vertex id out of range")
)

// EdgeList stores the tails and heads of m directed edges in two parallel
// arrays of length m+1. Index 0 is a reserved dummy slot; valid edge ids
// are 1..m. Construct once, then treat as read-only.
type EdgeList struct {
	tail []int // tail[a] = source vertex of edge a, tail[0] unused
	head []int // head[a] = destination vertex of edge a, head[0] unused
}

// New returns an EdgeList with capacity for m edges, all arcs unset (0).
// Fill it with SetArc before use; an unset arc fails Validate.
// Complexity: O(m).
func New(m int) *EdgeList {
	return &EdgeList{
		tail: make([]int, m+1),
		head: make([]int, m+1),
	}
}

// SetArc assigns edge a the endpoints tail→head.
// Returns ErrEdgeIDRange if a is outside 1..m. Vertex ids are not range
// checked here; Validate performs that check once n is known.
// Complexity: O(1).
func (el *EdgeList) SetArc(a, tail, head int) error {
	if a < 1 || a >= len(el.tail) {
		return fmt.Errorf("edgelist: SetArc(%d): %w", a, ErrEdgeIDRange)
	}
	el.tail[a] = tail
	el.head[a] = head

	return nil
}

// FromArcs builds an EdgeList from natural (0-based, no dummy slot)
// tails and heads slices: tails[i]→heads[i] becomes edge i+1.
// Returns ErrLengthMismatch if the slices differ in length.
// Complexity: O(m).
func FromArcs(tails, heads []int) (*EdgeList, error) {
	if len(tails) != len(heads) {
		return nil, fmt.Errorf("edgelist: FromArcs: %d tails vs %d heads: %w",
			len(tails), len(heads), ErrLengthMismatch)
	}

	el := New(len(tails))
	for i, t := range tails {
		el.tail[i+1] = t
		el.head[i+1] = heads[i]
	}

	return el, nil
}

// FromPairs builds an EdgeList from literal (tail, head) pairs, assigning
// edge ids in argument order starting at 1. Convenient for tests and
// examples where the edge count is implicit.
// Complexity: O(m).
func FromPairs(pairs ...[2]int) *EdgeList {
	el := New(len(pairs))
	for i, p := range pairs {
		el.tail[i+1] = p[0]
		el.head[i+1] = p[1]
	}

	return el
}

// Tail returns the source vertex of edge a, or 0 if a is outside 1..m.
// Complexity: O(1).
func (el *EdgeList) Tail(a int) int {
	if a < 1 || a >= len(el.tail) {
		return 0
	}

	return el.tail[a]
}

// Head returns the destination vertex of edge a, or 0 if a is outside 1..m.
// Complexity: O(1).
func (el *EdgeList) Head(a int) int {
	if a < 1 || a >= len(el.head) {
		return 0
	}

	return el.head[a]
}

// EdgeCount returns m, the number of edges.
// Complexity: O(1).
func (el *EdgeList) EdgeCount() int {
	return len(el.tail) - 1
}

// MaxVertex returns the largest vertex id referenced by any edge,
// or 0 for an empty list. Useful as a lower bound when choosing n.
// Complexity: O(m).
func (el *EdgeList) MaxVertex() int {
	maxV := 0
	for a := 1; a < len(el.tail); a++ {
		if el.tail[a] > maxV {
			maxV = el.tail[a]
		}
		if el.head[a] > maxV {
			maxV = el.head[a]
		}
	}

	return maxV
}

// Validate checks that every tail and head vertex id lies in 1..n.
// Returns ErrVertexRange (wrapped with the offending edge id) on the
// first violation, nil otherwise. An unset arc (vertex id 0) is a
// violation: every edge id 1..m must carry real endpoints.
// Complexity: O(m).
func (el *EdgeList) Validate(n int) error {
	for a := 1; a < len(el.tail); a++ {
		if el.tail[a] < 1 || el.tail[a] > n {
			return fmt.Errorf("edgelist: edge %d tail %d not in 1..%d: %w",
				a, el.tail[a], n, ErrVertexRange)
		}
		if el.head[a] < 1 || el.head[a] > n {
			return fmt.Errorf("edgelist: edge %d head %d not in 1..%d: %w",
				a, el.head[a], n, ErrVertexRange)
		}
	}

	return nil
}
