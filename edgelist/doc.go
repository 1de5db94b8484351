// Package edgelist defines the raw input representation for the incilist
// library: an ordered collection of directed edges, each a (tail, head)
// vertex pair addressable by a 1-based edge id.
//
// What:
//
//   - EdgeList: two parallel integer arrays, tail and head, both of
//     length m+1 with index 0 reserved as a dummy slot so that edge ids
//     run 1..m. Total storage is 2m ints.
//   - Constructors: FromArcs (natural slices), FromPairs (literal pairs),
//     New + SetArc (staged fill when m is known up front).
//   - Validate(n): checks every referenced vertex id against 1..n.
//
// Why:
//
//	Keeping the edge list as two flat arrays (rather than a slice of
//	structs or per-vertex containers) lets the incidence package chain
//	edge ids through equally flat "next" arrays with no pointers and no
//	per-vertex allocation. The 1-based convention reserves 0 as the
//	universal "no edge" sentinel shared across the whole library.
//
// Lifecycle:
//
//	An EdgeList is constructed once and read-only thereafter. It is the
//	shared input of both incidence.Build and dfs.DFS — the DirectedGraph
//	does not retain it, so callers pass both together where needed.
//
// Errors:
//
//   - ErrLengthMismatch  tail/head slices differ in length
//   - ErrEdgeIDRange     SetArc called with an edge id outside 1..m
//   - ErrVertexRange     a tail/head value falls outside 1..n
//
// Complexity: all accessors O(1); Validate and MaxVertex O(m).
package edgelist
