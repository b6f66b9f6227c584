// Package dijkstra provides best-first shortest-path search over a core.Graph.
//
// What
//
//   - Dijkstra: single-source minimum costs to every reachable vertex,
//     optionally with the predecessor slice for path reconstruction.
//   - AStar: single-source search that stops at the first settled vertex for
//     which a goal predicate holds, returning the path and its cost. The goal
//     is a predicate, so several vertices may be acceptable destinations.
//
// Why
//
//   - Functional options allow fine-tuning behavior without changing the API signature.
//   - MaxDistance: aborts exploration beyond a specified distance, saving work in large graphs.
//   - InfEdgeThreshold: treats any edge with weight ≥ threshold as impassable (infinite cost).
//   - Heuristic: AStar's remaining-cost estimate; zero by default.
//
// Zero-cost graphs
//
//	Unweighted core.Graph values are accepted and every edge then costs 0.
//	All keys tie, so AStar becomes a reachability search: the path it returns
//	is valid but its edge count is not minimized. Ties are broken by push
//	order, which makes the result reproducible. Use package bfs when the
//	fewest edges are required.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
//
// Error handling (sentinel errors):
//
//   - ErrNoSource:        Source option missing.
//   - ErrNilGraph:        nil *core.Graph.
//   - ErrNilGoal:         AStar called with a nil predicate.
//   - ErrVertexNotFound:  the source vertex does not exist in the graph.
//   - ErrNegativeWeight:  any edge has a negative weight (fast O(E) pre-scan).
//   - ErrBadMaxDistance:  WithMaxDistance got a negative value.
//   - ErrBadInfThreshold: WithInfEdgeThreshold got zero or a negative value.
//
// Example usage:
//
//	path, cost, err := dijkstra.AStar(
//	    g,
//	    func(v int) bool { return v == goalA || v == goalB },
//	    dijkstra.Source(start),
//	)
//
// Thread safety:
//
//   - Searches only read the graph. Do not mutate it while a search runs.
package dijkstra
