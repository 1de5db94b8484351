package incidence_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/incilist/edgelist"
	"github.com/katalvlaran/incilist/incidence"
)

func TestWalkOut_EarlyStop(t *testing.T) {
	g, err := incidence.Build(refGraph(t), 6)
	require.NoError(t, err)

	// Vertex 1 chains edges 1→2; stop after the first.
	var seen []int
	g.WalkOut(1, func(a int) bool {
		seen = append(seen, a)

		return false
	})
	assert.Equal(t, []int{1}, seen)
}

func TestWalkOut_OutOfRangeVertexWalksNothing(t *testing.T) {
	g, err := incidence.Build(refGraph(t), 6)
	require.NoError(t, err)

	calls := 0
	g.WalkOut(0, func(int) bool { calls++; return true })
	g.WalkOut(7, func(int) bool { calls++; return true })
	g.WalkIn(-3, func(int) bool { calls++; return true })
	assert.Zero(t, calls)
}

func TestDegrees(t *testing.T) {
	g, err := incidence.Build(refGraph(t), 6)
	require.NoError(t, err)

	assert.Equal(t, 2, g.OutDegree(1)) // edges 1, 2
	assert.Equal(t, 2, g.OutDegree(4)) // edges 5, 9
	assert.Equal(t, 1, g.OutDegree(2)) // edge 8
	assert.Equal(t, 0, g.InDegree(0))  // dummy slot never holds edges
	assert.Equal(t, 2, g.InDegree(2))  // edges 1, 3
	assert.Equal(t, 2, g.InDegree(3))  // edges 8, 9
	assert.Equal(t, 1, g.InDegree(1))  // edge 5
}

func TestDegrees_SelfLoopCountsOnceEachDirection(t *testing.T) {
	g, err := incidence.Build(edgelist.FromPairs([2]int{2, 2}), 2)
	require.NoError(t, err)

	assert.Equal(t, 1, g.OutDegree(2))
	assert.Equal(t, 1, g.InDegree(2))
}

func TestString_Dump(t *testing.T) {
	g, err := incidence.Build(edgelist.FromPairs([2]int{1, 2}), 2)
	require.NoError(t, err)

	dump := g.String()
	assert.Contains(t, dump, "edge_first: [0 1 0]")
	assert.Contains(t, dump, "edge_next: [0 0]")
	assert.Contains(t, dump, "rev_edge_first: [0 0 1]")
	assert.Contains(t, dump, "rev_edge_next: [0 0]")
}
