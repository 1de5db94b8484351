// Package incilist is a compact, allocation-lean toolkit for directed
// graphs stored as array-chained incidence lists — flat integer arrays
// instead of per-vertex containers.
//
// 🚀 What is incilist?
//
//	A small, pure-Go library built around one idea: encode "which edges
//	leave (or enter) which vertex" as index chains inside two flat arrays
//	per direction, then traverse them:
//		• edgelist/  — raw 1-based tail/head edge arrays (the input)
//		• incidence/ — the chained incidence-list builder and DirectedGraph
//		• dfs/       — depth-first traversal with pre/post-order labels
//
// ✨ Why choose incilist?
//
//   - O(n+m) space, zero per-vertex allocation — two int arrays per direction
//   - Deterministic – each vertex's edges enumerate in original input order
//   - Pure Go – no cgo, no hidden deps
//   - Hookable – OnVisit/OnExit callbacks and context cancellation in dfs
//
// Quick ASCII example:
//
//	edge_first[1]
//	    ↓
//	[edge 7] → [edge 2] → [edge 5] → 0
//
//	each vertex heads a chain of edge ids linked through edge_next,
//	terminated by the sentinel 0.
//
// Everything is 1-based: valid vertex ids are 1..n, valid edge ids are
// 1..m, and index 0 of every array is a reserved dummy slot so that 0 can
// mean "no edge here". See the examples/ directory for runnable scenarios.
//
//	go get github.com/katalvlaran/incilist
package incilist
