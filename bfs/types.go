package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start vertex is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrWeightedGraph is returned when BFS is run on a weighted graph.
	ErrWeightedGraph = errors.New("bfs: weighted graphs not supported")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option")

	// ErrNoPath is returned by PathTo for a vertex the walk never reached.
	ErrNoPath = errors.New("bfs: no path")
)

// NoVertex marks "none": the parent of the start, or an unmatched goal.
const NoVertex = -1

// Unreached is the Depth of a vertex the walk never discovered.
const Unreached = -1

// Option configures a walk. Invalid values are recorded and surfaced as
// ErrOptionViolation by BFS.
type Option func(*Options)

// Options holds walk parameters. The zero value of every hook means "none".
type Options struct {
	// Ctx is checked once per dequeued vertex.
	Ctx context.Context

	// OnVisit runs as each vertex is dequeued; an error aborts the walk.
	OnVisit func(id, depth int) error

	// Goal, if set, stops the walk at the first dequeued vertex it accepts.
	// In BFS order that vertex has the fewest hops among all accepted ones.
	Goal func(id int) bool

	// MaxDepth > 0 stops discovery beyond that many hops. 0 means no limit.
	MaxDepth int

	// FilterNeighbor can veto the edge curr→nbr.
	FilterNeighbor func(curr, nbr int) bool

	err error
}

// DefaultOptions returns a background context and no limits or hooks.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the cancellation context. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers the visit hook.
func WithOnVisit(fn func(id, depth int) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// WithGoal makes the walk stop at the first vertex satisfying fn.
func WithGoal(fn func(id int) bool) Option {
	return func(o *Options) { o.Goal = fn }
}

// WithMaxDepth limits discovery to d hops; d == 0 removes the limit and
// d < 0 is rejected with ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips edges for which fn returns false.
func WithFilterNeighbor(fn func(curr, nbr int) bool) Option {
	return func(o *Options) { o.FilterNeighbor = fn }
}

// Result is the outcome of a walk over a graph with V vertices.
type Result struct {
	// Order lists vertices in dequeue order.
	Order []int
	// Depth[v] is the hop count from the start, or Unreached.
	Depth []int
	// Parent[v] is v's predecessor in the BFS tree, or NoVertex.
	Parent []int
	// Goal is the vertex that stopped the walk, or NoVertex.
	Goal int
}

// Reached reports whether the walk discovered v.
func (r *Result) Reached(v int) bool {
	return v >= 0 && v < len(r.Depth) && r.Depth[v] != Unreached
}

// PathTo returns start→…→v along parent links, which is a fewest-hop path.
// Returns ErrNoPath if v was not reached.
func (r *Result) PathTo(v int) ([]int, error) {
	if !r.Reached(v) {
		return nil, fmt.Errorf("%w to %d", ErrNoPath, v)
	}
	path := make([]int, r.Depth[v]+1)
	for i, cur := len(path)-1, v; i >= 0; i, cur = i-1, r.Parent[cur] {
		path[i] = cur
	}
	return path, nil
}
