package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/arrowmaze/core"
)

//----------------------------------------------------------------------------//
// Vertex Tests
//----------------------------------------------------------------------------//

// TestAddVertex_DenseIDs verifies IDs are allocated densely from zero.
func TestAddVertex_DenseIDs(t *testing.T) {
	g := core.NewGraph()
	for want := 0; want < 5; want++ {
		assert.Equal(t, want, g.AddVertex())
	}
	assert.Equal(t, 5, g.VertexCount())
	assert.Equal(t, []int{0, 1, 2, 3, 4}, g.Vertices())
	assert.True(t, g.HasVertex(4))
	assert.False(t, g.HasVertex(5))
	assert.False(t, g.HasVertex(-1))
}

// TestAddVertices checks bulk allocation and negative counts.
func TestAddVertices(t *testing.T) {
	g := core.NewGraph()
	g.AddVertex()

	first, err := g.AddVertices(3)
	require.NoError(t, err)
	assert.Equal(t, 1, first)
	assert.Equal(t, 4, g.VertexCount())

	next, err := g.AddVertices(0)
	require.NoError(t, err)
	assert.Equal(t, 4, next)

	_, err = g.AddVertices(-2)
	assert.ErrorIs(t, err, core.ErrBadCount)
}

//----------------------------------------------------------------------------//
// Edge Tests
//----------------------------------------------------------------------------//

// TestAddEdge_Policies covers every rejection path of AddEdge.
func TestAddEdge_Policies(t *testing.T) {
	cases := []struct {
		name     string
		opts     []core.GraphOption
		from, to int
		weight   int64
		err      error
	}{
		{"UnknownFrom", nil, 7, 0, 0, core.ErrVertexNotFound},
		{"UnknownTo", nil, 0, -1, 0, core.ErrVertexNotFound},
		{"WeightOnUnweighted", nil, 0, 1, 3, core.ErrBadWeight},
		{"LoopDisabled", nil, 1, 1, 0, core.ErrLoopNotAllowed},
		{"LoopEnabled", []core.GraphOption{core.WithLoops()}, 1, 1, 0, nil},
		{"WeightedOK", []core.GraphOption{core.WithWeighted()}, 0, 1, 3, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := core.NewGraph(tc.opts...)
			_, _ = g.AddVertices(2)
			_, err := g.AddEdge(tc.from, tc.to, tc.weight)
			if tc.err == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestAddEdge_MultiEdges verifies the duplicate check and its opt-out.
func TestAddEdge_MultiEdges(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddVertices(2)
	_, err := g.AddEdge(0, 1, 0)
	require.NoError(t, err)
	_, err = g.AddEdge(0, 1, 0)
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
	// the reverse direction is a different edge
	_, err = g.AddEdge(1, 0, 0)
	assert.NoError(t, err)

	m := core.NewGraph(core.WithMultiEdges())
	_, _ = m.AddVertices(2)
	e1, err := m.AddEdge(0, 1, 0)
	require.NoError(t, err)
	e2, err := m.AddEdge(0, 1, 0)
	require.NoError(t, err)
	assert.NotEqual(t, e1, e2)
	assert.Equal(t, 2, m.EdgeCount())
}

// TestHasEdge_Directed checks that edges are one-way.
func TestHasEdge_Directed(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddVertices(3)
	_, _ = g.AddEdge(0, 2, 0)

	assert.True(t, g.HasEdge(0, 2))
	assert.False(t, g.HasEdge(2, 0))
	assert.False(t, g.HasEdge(0, 9))
}

// TestGetEdge_AndEdges checks arena copies and IDs.
func TestGetEdge_AndEdges(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddVertices(3)
	_, _ = g.AddEdge(0, 1, 4)
	_, _ = g.AddEdge(1, 2, 5)

	e, err := g.GetEdge(1)
	require.NoError(t, err)
	assert.Equal(t, core.Edge{ID: 1, From: 1, To: 2, Weight: 5}, e)

	_, err = g.GetEdge(2)
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)

	all := g.Edges()
	require.Len(t, all, 2)
	all[0].Weight = 100
	again, _ := g.GetEdge(0)
	assert.Equal(t, int64(4), again.Weight, "Edges must return a copy")
}

//----------------------------------------------------------------------------//
// Neighborhood Tests
//----------------------------------------------------------------------------//

// TestNeighbors_InsertionOrder verifies outgoing edges keep insertion order.
func TestNeighbors_InsertionOrder(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges())
	_, _ = g.AddVertices(4)
	_, _ = g.AddEdge(0, 3, 0)
	_, _ = g.AddEdge(0, 1, 0)
	_, _ = g.AddEdge(2, 0, 0)
	_, _ = g.AddEdge(0, 3, 0)

	ids, err := g.NeighborIDs(0)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1, 3}, ids)

	edges, err := g.Neighbors(0)
	require.NoError(t, err)
	require.Len(t, edges, 3)
	assert.Equal(t, 0, edges[0].ID)
	assert.Equal(t, 3, edges[2].ID)

	deg, err := g.OutDegree(2)
	require.NoError(t, err)
	assert.Equal(t, 1, deg)

	_, err = g.Neighbors(4)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.OutDegree(-1)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

// TestAdjacencyList_DeepCopy verifies the returned lists are detached.
func TestAdjacencyList_DeepCopy(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddVertices(2)
	_, _ = g.AddEdge(0, 1, 0)

	adj := g.AdjacencyList()
	require.Equal(t, [][]int{{0}, nil}, adj)
	adj[0][0] = 42

	ids, _ := g.NeighborIDs(0)
	assert.Equal(t, []int{1}, ids)
}

// TestStats summarizes a small graph with a sink and a hub.
func TestStats(t *testing.T) {
	g := core.NewGraph(core.WithCapacity(4, 3), core.WithMultiEdges())
	_, _ = g.AddVertices(4)
	_, _ = g.AddEdge(0, 1, 0)
	_, _ = g.AddEdge(0, 2, 0)
	_, _ = g.AddEdge(1, 2, 0)

	st := g.Stats()
	assert.Equal(t, core.GraphStats{
		AllowsMulti:  true,
		VertexCount:  4,
		EdgeCount:    3,
		MaxOutDegree: 2,
		SinkCount:    2,
	}, st)
	assert.False(t, g.Weighted())
	assert.True(t, g.Multigraph())
	assert.False(t, g.Looped())
}
