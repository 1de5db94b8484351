// Package incidence builds and exposes the array-chained incidence-list
// representation of a directed graph: four flat integer arrays encoding,
// for every vertex, the chain of its out-edges and the chain of its
// in-edges, with 0 as the shared "no more edges" sentinel.
//
// What:
//
//   - DirectedGraph: EdgeFirst/EdgeNext (forward, keyed on tail) and
//     RevEdgeFirst/RevEdgeNext (reverse, keyed on head).
//   - Build(el, n): the construction algorithm — iterate edge ids from m
//     down to 1 and prepend each edge onto its vertex's chain. Because
//     prepending reverses insertion order, the descending scan makes every
//     chain read back in original ascending edge-id order.
//   - Chain walkers: WalkOut/WalkIn (allocation-free), OutEdges/InEdges
//     (materialized), OutDegree/InDegree.
//   - String(): a diagnostic dump of the four arrays for manual inspection.
//
// Why:
//
//	A conventional adjacency list allocates one dynamic container per
//	vertex. Chaining edge ids through a single "next" array gives the same
//	O(n+m) space with exactly two allocations per direction, no pointers,
//	and cache-friendly traversal — the arena-plus-index pattern.
//
// The descending build order is correctness-critical, not a style choice:
// building ascending with the same prepend logic would enumerate each
// vertex's edges in reverse input order and change every downstream
// traversal. See Build for the invariant.
//
// Self-loops appear once in the forward chain and once in the reverse
// chain of the same vertex. Parallel edges keep their distinct ids and
// chain nodes; nothing is deduplicated. A vertex with no incident edges
// simply has both first-pointers at 0.
//
// Errors:
//
//   - ErrNilEdgeList      Build received a nil *edgelist.EdgeList
//   - ErrBadVertexCount   Build received a negative vertex count
//   - edgelist.ErrVertexRange  an edge references a vertex beyond n
//
// Complexity:
//
//   - Build: Time O(n+m), Memory O(n+m)
//   - Chain walks: O(deg(v)) per vertex, O(1) extra memory
package incidence
