// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs, AdjacencyList).
// Determinism:
//   - Neighbors() returns edges in insertion order (which is Edge.ID asc).
//   - NeighborIDs() keeps the same order and may repeat IDs on multigraphs.

package core

import "fmt"

// Neighbors returns the outgoing edges of id, ordered by Edge.ID.
//
// Errors:
//   - ErrVertexNotFound if id is not allocated.
//
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id int) ([]Edge, error) {
	if !g.HasVertex(id) {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, id)
	}
	bucket := g.adjacency[id]
	out := make([]Edge, len(bucket))
	for i, eid := range bucket {
		out[i] = g.edges[eid]
	}

	return out, nil
}

// NeighborIDs returns the destination vertex of every outgoing edge of id,
// in edge order. Parallel edges produce repeated IDs.
//
// Errors:
//   - ErrVertexNotFound if id is not allocated.
//
// Complexity: O(deg(id)).
func (g *Graph) NeighborIDs(id int) ([]int, error) {
	if !g.HasVertex(id) {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, id)
	}
	bucket := g.adjacency[id]
	out := make([]int, len(bucket))
	for i, eid := range bucket {
		out[i] = g.edges[eid].To
	}

	return out, nil
}

// AdjacencyList returns, for every vertex, the IDs of its outgoing edges.
// The result is a deep copy and safe to modify.
//
// Complexity: O(V+E).
func (g *Graph) AdjacencyList() [][]int {
	out := make([][]int, len(g.adjacency))
	for v, bucket := range g.adjacency {
		out[v] = append([]int(nil), bucket...)
	}

	return out
}
