package dijkstra

import (
	"math"

	"github.com/katalvlaran/arrowmaze/core"
)

// AStar searches g from Options.Source for the first vertex satisfying goal
// and returns the vertex path (source and goal inclusive) with its cost.
//
// If no goal vertex is reachable the path is nil and the cost is
// math.MaxInt64; that is a normal result, not an error. If the source itself
// satisfies goal the path is just [source] with cost 0.
//
// With a zero heuristic (the default) and zero-weight edges every vertex has
// the same key, so the search degenerates into plain reachability: the path
// returned is a valid one, not necessarily the one with the fewest edges.
//
// Errors: the same validation sequence as Dijkstra, plus ErrNilGoal.
func AStar(g *core.Graph, goal func(v int) bool, opts ...Option) ([]int, int64, error) {
	if goal == nil {
		return nil, 0, ErrNilGoal
	}
	cfg, err := prepare(g, opts)
	if err != nil {
		return nil, 0, err
	}

	r := newRunner(g, cfg)
	r.init()
	found, err := r.process(goal)
	if err != nil {
		return nil, 0, err
	}
	if found == NoVertex {
		return nil, math.MaxInt64, nil
	}

	return r.pathTo(found), r.dist[found], nil
}
