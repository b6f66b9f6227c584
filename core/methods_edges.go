// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/GetEdge/Edges/EdgeCount.
// Determinism:
//   - Edge IDs are arena indices allocated in call order.
//   - Edges() returns edges sorted by Edge.ID asc.
// Notes:
//   - Unweighted graphs MUST add edges with weight==0 (else ErrBadWeight).
//   - Without WithMultiEdges(), AddEdge scans the source bucket for duplicates.

package core

import "fmt"

// AddEdge appends a directed edge from→to with the given weight and returns its ID.
// Steps:
//  1. Validate both endpoints exist.
//  2. Enforce weight / loop policy.
//  3. Unless multi-edges are allowed, reject a second from→to edge.
//  4. Append to the edge arena and to from's outgoing bucket.
//
// Complexity: O(1) amortized with WithMultiEdges(), O(deg(from)) otherwise.
func (g *Graph) AddEdge(from, to int, weight int64) (int, error) {
	// 1) Endpoint validation
	if !g.HasVertex(from) {
		return -1, fmt.Errorf("%w: from=%d", ErrVertexNotFound, from)
	}
	if !g.HasVertex(to) {
		return -1, fmt.Errorf("%w: to=%d", ErrVertexNotFound, to)
	}

	// 2) Policy checks
	if !g.weighted && weight != 0 {
		return -1, ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return -1, ErrLoopNotAllowed
	}

	// 3) Multi-edge existence check
	if !g.allowMulti && g.HasEdge(from, to) {
		return -1, fmt.Errorf("%w: %d→%d", ErrMultiEdgeNotAllowed, from, to)
	}

	// 4) Store and link adjacency
	eid := len(g.edges)
	g.edges = append(g.edges, Edge{ID: eid, From: from, To: to, Weight: weight})
	g.adjacency[from] = append(g.adjacency[from], eid)

	return eid, nil
}

// HasEdge reports whether at least one edge from→to exists.
// Unknown vertices simply yield false.
//
// Complexity: O(deg(from)).
func (g *Graph) HasEdge(from, to int) bool {
	if !g.HasVertex(from) || !g.HasVertex(to) {
		return false
	}
	var eid int
	for _, eid = range g.adjacency[from] {
		if g.edges[eid].To == to {
			return true
		}
	}

	return false
}

// GetEdge returns a copy of the edge with the given ID.
//
// Errors:
//   - ErrEdgeNotFound if eid is out of range.
//
// Complexity: O(1).
func (g *Graph) GetEdge(eid int) (Edge, error) {
	if eid < 0 || eid >= len(g.edges) {
		return Edge{}, fmt.Errorf("%w: %d", ErrEdgeNotFound, eid)
	}

	return g.edges[eid], nil
}

// Edges returns a copy of every edge, sorted by ID.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns the number of edges in the arena.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}
