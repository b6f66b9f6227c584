package core

// Weighted reports the construction-time "weighted" capability flag.
// If false, AddEdge rejects non-zero weights with ErrBadWeight.
//
// Complexity: O(1).
func (g *Graph) Weighted() bool {
	return g.weighted
}

// Looped reports whether self-loops (from==to) are permitted by policy.
//
// Complexity: O(1).
func (g *Graph) Looped() bool {
	return g.allowLoops
}

// Multigraph reports whether parallel edges between the same endpoints are permitted.
//
// Complexity: O(1).
func (g *Graph) Multigraph() bool {
	return g.allowMulti
}

// Stats produces a read-only snapshot of configuration flags and arena sizes.
//
// Implementation:
//   - Stage 1: copy flags and arena lengths.
//   - Stage 2: scan adjacency once for the out-degree maximum and sinks.
//
// Complexity:
//   - Time O(V), Space O(1) plus the returned struct.
//
// Notes:
//   - Use it to assert graph shape in tests and to print diagnostics.
func (g *Graph) Stats() GraphStats {
	stats := GraphStats{
		Weighted:    g.weighted,
		AllowsMulti: g.allowMulti,
		AllowsLoops: g.allowLoops,
		VertexCount: len(g.adjacency),
		EdgeCount:   len(g.edges),
	}
	var out []int
	for _, out = range g.adjacency {
		if len(out) == 0 {
			stats.SinkCount++
		}
		if len(out) > stats.MaxOutDegree {
			stats.MaxOutDegree = len(out)
		}
	}

	return stats
}
