package incidence

import (
	"fmt"
	"strings"
)

// WalkOut walks v's out-edge chain in input order, calling fn with each
// edge id. Return false from fn to stop early. Out-of-range v walks
// nothing. Allocation-free; the dfs package traverses through this.
// Complexity: O(out-degree of v).
func (g *DirectedGraph) WalkOut(v int, fn func(a int) bool) {
	if v < 1 || v > g.n {
		return
	}
	for a := g.EdgeFirst[v]; a != NoEdge; a = g.EdgeNext[a] {
		if !fn(a) {
			return
		}
	}
}

// WalkIn walks v's in-edge chain in input order, calling fn with each
// edge id. Return false from fn to stop early.
// Complexity: O(in-degree of v).
func (g *DirectedGraph) WalkIn(v int, fn func(a int) bool) {
	if v < 1 || v > g.n {
		return
	}
	for a := g.RevEdgeFirst[v]; a != NoEdge; a = g.RevEdgeNext[a] {
		if !fn(a) {
			return
		}
	}
}

// OutEdges returns the ids of all edges with tail v, in ascending
// edge-id (original input) order. Returns nil for a vertex with no
// out-edges or an out-of-range v.
// Complexity: O(out-degree of v).
func (g *DirectedGraph) OutEdges(v int) []int {
	var out []int
	g.WalkOut(v, func(a int) bool {
		out = append(out, a)

		return true
	})

	return out
}

// InEdges returns the ids of all edges with head v, in ascending
// edge-id order. Returns nil for a vertex with no in-edges.
// Complexity: O(in-degree of v).
func (g *DirectedGraph) InEdges(v int) []int {
	var in []int
	g.WalkIn(v, func(a int) bool {
		in = append(in, a)

		return true
	})

	return in
}

// OutDegree returns the number of edges with tail v.
// Complexity: O(out-degree of v) — chains carry no length header.
func (g *DirectedGraph) OutDegree(v int) int {
	deg := 0
	g.WalkOut(v, func(int) bool {
		deg++

		return true
	})

	return deg
}

// InDegree returns the number of edges with head v.
// Complexity: O(in-degree of v).
func (g *DirectedGraph) InDegree(v int) int {
	deg := 0
	g.WalkIn(v, func(int) bool {
		deg++

		return true
	})

	return deg
}

// String renders the four arrays as labeled integer lists, dummy slot
// included, for manual inspection. Not a stable machine-readable format.
func (g *DirectedGraph) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "edge_first: %v\n", g.EdgeFirst)
	fmt.Fprintf(&b, "edge_next: %v\n", g.EdgeNext)
	fmt.Fprintf(&b, "rev_edge_first: %v\n", g.RevEdgeFirst)
	fmt.Fprintf(&b, "rev_edge_next: %v\n", g.RevEdgeNext)

	return b.String()
}
