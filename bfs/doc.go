// Package bfs walks a core.Graph breadth-first along directed edges.
//
// Vertices are dequeued in non-decreasing hop count from the start, and the
// first discovery of a vertex fixes its parent, so Result.PathTo returns a
// path with the fewest edges. Neighbors are expanded in edge insertion
// order, which makes Order and every path reproducible.
//
// Depth and Parent are dense slices indexed by vertex id, matching the
// arena layout of core.Graph; Unreached and NoVertex mark the gaps.
//
// Options:
//
//   - WithGoal(fn)           stop at the first dequeued vertex fn accepts (Result.Goal)
//   - WithMaxDepth(d)        do not discover vertices more than d hops away
//   - WithFilterNeighbor(fn) veto individual edges
//   - WithOnVisit(fn)        hook per dequeued vertex; an error aborts
//   - WithContext(ctx)       cancellation, checked once per dequeue
//
// Errors:
//
//   - ErrGraphNil, ErrStartVertexNotFound, ErrWeightedGraph, ErrOptionViolation
//   - ctx.Err() on cancellation, wrapped OnVisit errors
//   - ErrNoPath from Result.PathTo
//
// Complexity: O(V + E) time, O(V) memory.
package bfs
