package incidence

import (
	"fmt"

	"github.com/katalvlaran/incilist/edgelist"
)

// Build constructs the incidence-list representation of the directed
// graph described by el over vertices 1..n.
//
// Algorithm: zero-fill all four arrays (0 is the NoEdge sentinel), then
// scan edge ids from m down to 1, prepending each edge onto the forward
// chain of its tail and the reverse chain of its head — the classic
// singly-linked-list prepend, done twice per edge:
//
//	v = tail[a]
//	EdgeNext[a]  = EdgeFirst[v]  // new edge points at the old chain head
//	EdgeFirst[v] = a             // new edge becomes the chain head
//
// Prepending reverses insertion order, so the strictly descending scan is
// what makes every finished chain enumerate its edges in the original
// ascending edge-id order. Build in ascending order and every chain comes
// out reversed.
//
// Returns ErrNilEdgeList for a nil el, ErrBadVertexCount for n < 0, or a
// wrapped edgelist.ErrVertexRange if any edge references a vertex
// outside 1..n.
//
// Complexity: Time O(n+m), Memory O(n+m).
func Build(el *edgelist.EdgeList, n int) (*DirectedGraph, error) {
	// 1. Validate inputs.
	if el == nil {
		return nil, ErrNilEdgeList
	}
	if n < 0 {
		return nil, fmt.Errorf("incidence: Build(n=%d): %w", n, ErrBadVertexCount)
	}
	if err := el.Validate(n); err != nil {
		return nil, fmt.Errorf("incidence: Build: %w", err)
	}

	// 2. Allocate the four arrays, zero-filled (every chain starts empty).
	m := el.EdgeCount()
	g := &DirectedGraph{
		EdgeFirst:    make([]int, n+1),
		EdgeNext:     make([]int, m+1),
		RevEdgeFirst: make([]int, n+1),
		RevEdgeNext:  make([]int, m+1),
		n:            n,
		m:            m,
	}

	// 3. Descending scan; prepend into forward and reverse chains.
	var v, w int
	for a := m; a >= 1; a-- {
		v = el.Tail(a)
		g.EdgeNext[a] = g.EdgeFirst[v]
		g.EdgeFirst[v] = a

		w = el.Head(a)
		g.RevEdgeNext[a] = g.RevEdgeFirst[w]
		g.RevEdgeFirst[w] = a
	}

	return g, nil
}
