package dfs

import (
	"fmt"

	"github.com/katalvlaran/incilist/edgelist"
	"github.com/katalvlaran/incilist/incidence"
)

// dfsWalker encapsulates state during one traversal: the two inputs, the
// result under construction, and the shared label counters threaded
// through the recursion.
type dfsWalker struct {
	el   *edgelist.EdgeList       // resolves an edge id to its head vertex
	g    *incidence.DirectedGraph // forward chains to enumerate out-edges
	opts DFSOptions               // traversal options
	res  *DfsTime                 // result collector
	k    int                      // next pre-order label
	j    int                      // next post-order label
}

// DFS performs a depth-first traversal from start over the forward chains
// of g, resolving edge heads through el (g does not retain the edge list,
// so both must come from the same construction). Returns a DfsTime whose
// labels cover exactly the vertices reachable from start.
//
// The edge list and graph must match: g was built by incidence.Build from
// el. Only edge counts are cross-checked; a forged pair with equal counts
// is the caller's own foot-gun.
//
// Complexity: Time O(V+E) reachable from start, Memory O(V).
func DFS(el *edgelist.EdgeList, g *incidence.DirectedGraph, start int, opts ...Option) (*DfsTime, error) {
	// 1. Validate inputs.
	if el == nil {
		return nil, ErrNilEdgeList
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if el.EdgeCount() != g.EdgeCount() {
		return nil, fmt.Errorf("dfs: %d edges in list vs %d in graph: %w",
			el.EdgeCount(), g.EdgeCount(), ErrGraphMismatch)
	}
	if start < 1 || start > g.VertexCount() {
		return nil, fmt.Errorf("dfs: start %d not in 1..%d: %w",
			start, g.VertexCount(), ErrStartVertexOutOfRange)
	}

	// 2. Apply options.
	dopts := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&dopts)
	}

	// 3. Fresh label arrays; zero means unreached.
	n := g.VertexCount()
	res := &DfsTime{
		PreLabel:  make([]int, n+1),
		PostLabel: make([]int, n+1),
	}

	// 4. Traverse from the single root; counters start at 1.
	walker := &dfsWalker{el: el, g: g, opts: dopts, res: res, k: 1, j: 1}
	if err := walker.visit(start); err != nil {
		return res, err
	}

	return res, nil
}

// visit assigns v its pre-order label, explores v's out-edges in chain
// order, then assigns its post-order label. The PreLabel-zero check on
// each head guarantees every vertex is visited at most once, which
// bounds each edge to one examination and guarantees termination.
func (w *dfsWalker) visit(v int) error {
	// 1. Cancellation check.
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Discovery: pre-order label.
	w.res.PreLabel[v] = w.k
	w.k++

	// 3. Pre-order hook.
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %d: %w", v, err)
		}
	}

	// 4. Walk the forward chain; recurse on undiscovered heads.
	var next int
	for a := w.g.EdgeFirst[v]; a != incidence.NoEdge; a = w.g.EdgeNext[a] {
		next = w.el.Head(a)
		if w.res.PreLabel[next] == 0 {
			if err := w.visit(next); err != nil {
				return err
			}
		}
	}

	// 5. Post-order hook.
	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(v); err != nil {
			return fmt.Errorf("dfs: OnExit hook for %d: %w", v, err)
		}
	}

	// 6. Finish: post-order label.
	w.res.PostLabel[v] = w.j
	w.j++

	return nil
}
