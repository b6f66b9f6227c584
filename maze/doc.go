// Package maze models the arrow-grid puzzle and solves it.
//
// A Grid holds one Arrow per cell except for a single target. Each arrow is
// Red or Blue, Plain or Circle, and points in one of 8 compass directions. A
// token starts on the top-left cell and hops from an arrow to any
// differently-colored cell on the arrow's ray. Circle arrows reverse the
// travel direction of every hop that leaves them and of every hop after
// landing on them.
//
// BuildGraph encodes that rule as a directed graph with two nodes per cell:
// a Forward node (travel follows the printed arrow) and a Backward node
// (travel opposes it). Every hop becomes a zero-cost edge, so any search
// that reaches either target node yields a legal hop sequence.
//
// Solver runs the search:
//
//   - StrategyAnyPath (default): best-first search with zero cost and zero
//     heuristic. It returns some valid path; fewest hops is not promised.
//   - StrategyMinHops: breadth-first search; the path has the fewest hops.
//
// Paths are reported in 1-based coordinates and print as "(r c) (r c) ...".
// An unreachable target is not an error: Solve returns an empty Path.
//
// Complexity:
//
//   - BuildGraph: O(R×C×max(R, C)) time and edges for an R×C grid.
//   - Solve:      O(V + E) plus the heap factor of the best-first search.
package maze
