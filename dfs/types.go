// Package dfs defines types and options for depth-first labeling:
// sentinel errors, functional options (context, pre-/post-order hooks),
// and the DfsTime result.
package dfs

import (
	"context"
	"errors"
)

var (
	// ErrNilEdgeList is returned when a nil *edgelist.EdgeList is passed to DFS.
	ErrNilEdgeList = errors.New("dfs: edge list is nil")

	// ErrNilGraph is returned when a nil *incidence.DirectedGraph is passed to DFS.
	ErrNilGraph = errors.New("dfs: graph is nil")

	// ErrGraphMismatch indicates the edge list and graph disagree on edge
	// count — the graph was built from a different edge list.
	ErrGraphMismatch = errors.New("dfs: edge list and graph edge counts differ")

	// ErrStartVertexOutOfRange indicates the start vertex is outside 1..n.
	ErrStartVertexOutOfRange = errors.New("dfs: start vertex out of range")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(el, g, start, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
// Complexity remains O(V+E) when hooks are O(1).
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancelling the context aborts DFS at the next vertex visit.
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when vertex v is discovered,
	// immediately after its pre-order label is assigned.
	// Returning an error aborts traversal with that error.
	OnVisit func(v int) error

	// OnExit, if non-nil, is invoked after all of v's out-edges have been
	// explored, immediately before its post-order label is assigned.
	// Returning an error aborts traversal with that error.
	OnExit func(v int) error
}

// DefaultOptions returns a DFSOptions struct with:
//   - Background context
//   - No pre-/post-order hooks
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:     context.Background(),
		OnVisit: nil,
		OnExit:  nil,
	}
}

// WithContext returns an Option that sets the Context for DFS traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
func WithOnVisit(fn func(v int) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithOnExit returns an Option that installs fn as a post-order hook.
func WithOnExit(fn func(v int) error) Option {
	return func(o *DFSOptions) {
		o.OnExit = fn
	}
}

// DfsTime captures the outcome of one depth-first traversal: discovery
// and finish labels for every vertex. Both arrays are 1-based with a
// dummy slot 0; label 0 means the vertex was never reached.
//
// On the reached set the labels are each a permutation of 1..k, and for
// any descendant w of v in the DFS tree, PreLabel[v] < PreLabel[w] and
// PostLabel[v] > PostLabel[w].
type DfsTime struct {
	// PreLabel[v] is the 1-based order in which v was discovered.
	PreLabel []int

	// PostLabel[v] is the 1-based order in which v's exploration
	// finished (all out-edges processed).
	PostLabel []int
}

// Reached reports whether vertex v was visited by the traversal.
// Out-of-range v is simply not reached.
// Complexity: O(1).
func (t *DfsTime) Reached(v int) bool {
	return v >= 1 && v < len(t.PreLabel) && t.PreLabel[v] != 0
}

// ReachedCount returns the number of vertices visited by the traversal.
// Complexity: O(n).
func (t *DfsTime) ReachedCount() int {
	count := 0
	for v := 1; v < len(t.PreLabel); v++ {
		if t.PreLabel[v] != 0 {
			count++
		}
	}

	return count
}

// PreOrder returns the reached vertices sorted by discovery label, i.e.
// the sequence in which the traversal first visited them.
// Complexity: O(n).
func (t *DfsTime) PreOrder() []int {
	order := make([]int, t.ReachedCount())
	for v := 1; v < len(t.PreLabel); v++ {
		if t.PreLabel[v] != 0 {
			order[t.PreLabel[v]-1] = v
		}
	}

	return order
}
