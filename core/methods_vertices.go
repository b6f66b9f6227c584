// File: methods_vertices.go
// Role: Vertex allocation & queries.
//
// Determinism:
//   - Vertex IDs are allocated densely in call order starting at 0.
//   - Vertices() returns IDs ascending.

package core

import "fmt"

// AddVertex allocates a new vertex and returns its ID.
//
// Implementation:
//   - Stage 1: the new ID is the current vertex count.
//   - Stage 2: append an empty outgoing-edge bucket.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex() int {
	id := len(g.adjacency)
	g.adjacency = append(g.adjacency, nil)

	return id
}

// AddVertices allocates n consecutive vertices and returns the ID of the first.
// For n == 0 the returned ID is the one the next AddVertex would produce.
//
// Errors:
//   - ErrBadCount if n < 0.
//
// Complexity: O(n).
func (g *Graph) AddVertices(n int) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: %d", ErrBadCount, n)
	}
	first := len(g.adjacency)
	for i := 0; i < n; i++ {
		g.adjacency = append(g.adjacency, nil)
	}

	return first, nil
}

// HasVertex reports whether id names an allocated vertex.
// Complexity: O(1).
func (g *Graph) HasVertex(id int) bool {
	return id >= 0 && id < len(g.adjacency)
}

// VertexCount returns the number of allocated vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	return len(g.adjacency)
}

// Vertices returns all vertex IDs in ascending order.
// Complexity: O(V).
func (g *Graph) Vertices() []int {
	ids := make([]int, len(g.adjacency))
	for i := range ids {
		ids[i] = i
	}

	return ids
}

// OutDegree returns the number of edges leaving id.
//
// Errors:
//   - ErrVertexNotFound if id is not allocated.
//
// Complexity: O(1).
func (g *Graph) OutDegree(id int) (int, error) {
	if !g.HasVertex(id) {
		return 0, fmt.Errorf("%w: %d", ErrVertexNotFound, id)
	}

	return len(g.adjacency[id]), nil
}
