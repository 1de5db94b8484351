// Package incidence: the DirectedGraph type and sentinel errors.
package incidence

import "errors"

// NoEdge is the sentinel value marking the end of a chain: a vertex with
// EdgeFirst[v] == NoEdge has no out-edges, and an edge with
// EdgeNext[a] == NoEdge is the last link of its chain. The value doubles
// as the unused content of every array's dummy slot 0.
const NoEdge = 0

// Sentinel errors for incidence-list construction.
var (
	// ErrNilEdgeList indicates a nil *edgelist.EdgeList was passed to Build.
	ErrNilEdgeList = errors.New("incidence: edge list is nil")

	// ErrBadVertexCount indicates a negative vertex count was passed to Build.
	ErrBadVertexCount = errors.New("incidence: vertex count must be non-negative")
)

// DirectedGraph is the array-chained incidence list of a directed graph
// with n vertices and m edges. All four arrays are 1-based with a dummy
// slot at index 0; the value NoEdge (0) terminates every chain.
//
// Immutable once built. The arrays are exported because they ARE the
// product of this package — callers embedding the representation into
// their own algorithms index them directly — but they must be treated
// as read-only.
type DirectedGraph struct {
	// EdgeFirst[v] is the first edge of v's out-edge chain: the edge with
	// tail v that appears earliest in the input, or NoEdge. Length n+1.
	EdgeFirst []int

	// EdgeNext[a] is the next edge sharing a's tail, in input order,
	// or NoEdge if a ends its chain. Length m+1; slot a is meaningful
	// only for edge ids that exist.
	EdgeNext []int

	// RevEdgeFirst[v] is the first edge of v's in-edge chain (keyed on
	// head instead of tail). Length n+1.
	RevEdgeFirst []int

	// RevEdgeNext[a] is the next edge sharing a's head. Length m+1.
	RevEdgeNext []int

	n int // vertex count
	m int // edge count
}

// VertexCount returns n, the number of vertices.
// Complexity: O(1).
func (g *DirectedGraph) VertexCount() int { return g.n }

// EdgeCount returns m, the number of edges.
// Complexity: O(1).
func (g *DirectedGraph) EdgeCount() int { return g.m }
