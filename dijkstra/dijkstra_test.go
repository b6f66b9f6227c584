// Package dijkstra_test contains unit tests for the Dijkstra and AStar searches.
// These tests validate input checks, path correctness on weighted graphs,
// MaxDistance, InfEdgeThreshold, goal predicates and zero-cost graphs.
package dijkstra_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/arrowmaze/core"
	"github.com/katalvlaran/arrowmaze/dijkstra"
)

// weighted builds a weighted directed graph with n vertices and the given edges.
func weighted(t *testing.T, n int, edges [][3]int64) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithWeighted(), core.WithMultiEdges())
	_, err := g.AddVertices(n)
	require.NoError(t, err)
	for _, e := range edges {
		_, err = g.AddEdge(int(e[0]), int(e[1]), e[2])
		require.NoError(t, err)
	}

	return g
}

// ------------------------------------------------------------------------
// 1. Validation Tests: Ensure errors are returned for invalid inputs.
// ------------------------------------------------------------------------

func TestDijkstra_NoSource(t *testing.T) {
	g := core.NewGraph()
	g.AddVertex()
	_, _, err := dijkstra.Dijkstra(g)
	assert.ErrorIs(t, err, dijkstra.ErrNoSource)
}

func TestDijkstra_NilGraph(t *testing.T) {
	// Without a source, ErrNoSource has priority over ErrNilGraph.
	_, _, err := dijkstra.Dijkstra(nil)
	assert.ErrorIs(t, err, dijkstra.ErrNoSource)

	_, _, err = dijkstra.Dijkstra(nil, dijkstra.Source(0))
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestDijkstra_SourceNotFound(t *testing.T) {
	g := core.NewGraph()
	g.AddVertex()
	_, _, err := dijkstra.Dijkstra(g, dijkstra.Source(3))
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
}

func TestDijkstra_NegativeWeightDetectedEarly(t *testing.T) {
	g := weighted(t, 2, [][3]int64{{0, 1, -5}})
	_, _, err := dijkstra.Dijkstra(g, dijkstra.Source(0))
	assert.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
}

func TestDijkstra_BadOptions(t *testing.T) {
	g := weighted(t, 2, [][3]int64{{0, 1, 1}})
	_, _, err := dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithMaxDistance(-1))
	assert.ErrorIs(t, err, dijkstra.ErrBadMaxDistance)

	_, _, err = dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithInfEdgeThreshold(0))
	assert.ErrorIs(t, err, dijkstra.ErrBadInfThreshold)

	_, _, err = dijkstra.AStar(g, func(int) bool { return true }, dijkstra.Source(0), dijkstra.WithMaxDistance(-5))
	assert.ErrorIs(t, err, dijkstra.ErrBadMaxDistance)
}

// ------------------------------------------------------------------------
// 2. Basic Functionality
// ------------------------------------------------------------------------

func TestDijkstra_Triangle(t *testing.T) {
	// 0→1 (1), 1→2 (2), 0→2 (5)
	g := weighted(t, 3, [][3]int64{{0, 1, 1}, {1, 2, 2}, {0, 2, 5}})

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(0))
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 1, 3}, dist)
	assert.Nil(t, prev, "prev must be nil without WithReturnPath")

	dist, prev, err = dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 1, 3}, dist)
	assert.Equal(t, []int{dijkstra.NoVertex, 0, 1}, prev)
}

func TestDijkstra_DirectedUnreachable(t *testing.T) {
	// 1→0 only, so 1 is unreachable from 0.
	g := weighted(t, 2, [][3]int64{{1, 0, 4}})
	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), dist[1])
	assert.Equal(t, dijkstra.NoVertex, prev[1])
}

func TestDijkstra_MaxDistance(t *testing.T) {
	// chain 0→1→2→3 with unit weights
	g := weighted(t, 4, [][3]int64{{0, 1, 1}, {1, 2, 1}, {2, 3, 1}})
	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithMaxDistance(2))
	require.NoError(t, err)
	assert.Equal(t, int64(2), dist[2])
	assert.Equal(t, int64(math.MaxInt64), dist[3])
}

func TestDijkstra_InfEdgeThreshold(t *testing.T) {
	// direct 0→2 is a wall at weight 10; detour via 1 costs 12
	g := weighted(t, 3, [][3]int64{{0, 2, 10}, {0, 1, 6}, {1, 2, 6}})
	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithInfEdgeThreshold(10))
	require.NoError(t, err)
	assert.Equal(t, int64(12), dist[2])
}

func TestDijkstra_UnweightedCountsZero(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddVertices(3)
	_, _ = g.AddEdge(0, 1, 0)
	_, _ = g.AddEdge(1, 2, 0)
	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(0))
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 0, 0}, dist)
}

// ------------------------------------------------------------------------
// 3. AStar
// ------------------------------------------------------------------------

func TestAStar_NilGoal(t *testing.T) {
	g := core.NewGraph()
	g.AddVertex()
	_, _, err := dijkstra.AStar(g, nil, dijkstra.Source(0))
	assert.ErrorIs(t, err, dijkstra.ErrNilGoal)
}

func TestAStar_WeightedPath(t *testing.T) {
	g := weighted(t, 4, [][3]int64{{0, 1, 2}, {0, 2, 1}, {2, 1, 1}, {1, 3, 3}, {2, 3, 5}})
	path, cost, err := dijkstra.AStar(g, func(v int) bool { return v == 3 }, dijkstra.Source(0))
	require.NoError(t, err)
	assert.Equal(t, int64(5), cost)
	assert.Equal(t, 0, path[0])
	assert.Equal(t, 3, path[len(path)-1])
}

func TestAStar_AnyOfSeveralGoals(t *testing.T) {
	// Goals 3 and 4; 4 is cheaper.
	g := weighted(t, 5, [][3]int64{{0, 1, 1}, {1, 3, 5}, {0, 2, 1}, {2, 4, 1}})
	path, cost, err := dijkstra.AStar(g, func(v int) bool { return v == 3 || v == 4 }, dijkstra.Source(0))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 4}, path)
	assert.Equal(t, int64(2), cost)
}

func TestAStar_SourceIsGoal(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddVertices(2)
	_, _ = g.AddEdge(0, 1, 0)
	path, cost, err := dijkstra.AStar(g, func(v int) bool { return v == 0 }, dijkstra.Source(0))
	require.NoError(t, err)
	assert.Equal(t, []int{0}, path)
	assert.Zero(t, cost)
}

func TestAStar_Unreachable(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddVertices(3)
	_, _ = g.AddEdge(0, 1, 0)
	_, _ = g.AddEdge(2, 0, 0)
	path, cost, err := dijkstra.AStar(g, func(v int) bool { return v == 2 }, dijkstra.Source(0))
	require.NoError(t, err)
	assert.Nil(t, path)
	assert.Equal(t, int64(math.MaxInt64), cost)
}

func TestAStar_ZeroCostCycleTerminates(t *testing.T) {
	// 0→1→2→0 round trip plus 2→3
	g := core.NewGraph()
	_, _ = g.AddVertices(4)
	_, _ = g.AddEdge(0, 1, 0)
	_, _ = g.AddEdge(1, 2, 0)
	_, _ = g.AddEdge(2, 0, 0)
	_, _ = g.AddEdge(2, 3, 0)
	path, _, err := dijkstra.AStar(g, func(v int) bool { return v == 3 }, dijkstra.Source(0))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, path)
}

func TestAStar_Heuristic(t *testing.T) {
	// Grid-like: two equal-cost routes; an admissible heuristic must not change the cost.
	g := weighted(t, 4, [][3]int64{{0, 1, 1}, {0, 2, 1}, {1, 3, 1}, {2, 3, 1}})
	h := func(v int) int64 {
		if v == 3 {
			return 0
		}
		return 1
	}
	path, cost, err := dijkstra.AStar(g, func(v int) bool { return v == 3 },
		dijkstra.Source(0), dijkstra.WithHeuristic(h))
	require.NoError(t, err)
	assert.Equal(t, int64(2), cost)
	assert.Len(t, path, 3)
}
