// Package dfs implements depth-first traversal over the array-chained
// incidence list, recording 1-based pre-order (discovery) and post-order
// (finish) labels for every vertex reachable from a single start vertex.
//
// What:
//
//   - DFS(el, g, start, opts...): traverse from start, following each
//     vertex's forward chain in original input order, and return a
//     DfsTime with PreLabel/PostLabel per vertex (0 = unreached).
//   - Hooks: OnVisit (pre-order) & OnExit (post-order) with error aborts.
//   - Cancellation via context.Context.
//
// Why:
//
//	Pre/post labels are the raw material of most structural graph
//	analysis: ancestor tests (pre[v] < pre[w] && post[v] > post[w]),
//	edge classification, and reverse-post-order scheduling all read
//	straight off the two arrays.
//
// Determinism: among a vertex's out-edges, traversal follows the chain
// order established by incidence.Build — the original input order of
// that vertex's edges — so output is fully determined by the edge list
// and the start vertex.
//
// This is single-root traversal, not a forest walk: vertices unreachable
// from start keep both labels at 0, and the reached labels form a
// permutation of 1..k for k reached vertices.
//
// Complexity:
//
//   - Time:   O(V + E) reachable from start, plus hook overhead.
//   - Memory: O(V) for the label arrays and the recursion stack; the
//     recursion depth equals the longest simple path from start.
//
// Errors:
//
//   - ErrNilEdgeList            if el is nil.
//   - ErrNilGraph               if g is nil.
//   - ErrGraphMismatch          if el and g disagree on edge count.
//   - ErrStartVertexOutOfRange  if start is outside 1..n.
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit or OnExit.
package dfs
