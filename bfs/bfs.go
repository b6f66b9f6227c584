package bfs

import (
	"fmt"

	"github.com/katalvlaran/arrowmaze/core"
)

// walker is the mutable state of one walk. The queue is a slice consumed
// from head; every vertex enters it at most once.
type walker struct {
	g     *core.Graph
	opts  Options
	queue []int
	head  int
	res   *Result
}

// BFS walks g breadth-first from start along directed edges.
//
// Errors: ErrGraphNil, ErrOptionViolation, ErrStartVertexNotFound,
// ErrWeightedGraph, the context's error on cancellation, or an OnVisit error
// (wrapped). On error the partial Result is still returned when one exists.
//
// Complexity: O(V + E) time, O(V) memory.
func BFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}
	if g.Weighted() {
		return nil, ErrWeightedGraph
	}

	n := g.VertexCount()
	w := &walker{
		g:     g,
		opts:  o,
		queue: make([]int, 0, n),
		res: &Result{
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
			Goal:   NoVertex,
		},
	}
	for v := 0; v < n; v++ {
		w.res.Depth[v] = Unreached
		w.res.Parent[v] = NoVertex
	}
	w.discover(start, NoVertex, 0)

	return w.res, w.run()
}

// discover records v's depth and parent and queues it.
func (w *walker) discover(v, parent, depth int) {
	w.res.Depth[v] = depth
	w.res.Parent[v] = parent
	w.queue = append(w.queue, v)
}

func (w *walker) run() error {
	for w.head < len(w.queue) {
		if err := w.opts.Ctx.Err(); err != nil {
			return err
		}
		u := w.queue[w.head]
		w.head++
		d := w.res.Depth[u]

		w.res.Order = append(w.res.Order, u)
		if w.opts.OnVisit != nil {
			if err := w.opts.OnVisit(u, d); err != nil {
				return fmt.Errorf("bfs: visit %d: %w", u, err)
			}
		}
		if w.opts.Goal != nil && w.opts.Goal(u) {
			w.res.Goal = u
			return nil
		}
		if w.opts.MaxDepth > 0 && d >= w.opts.MaxDepth {
			continue
		}

		nbrs, err := w.g.NeighborIDs(u)
		if err != nil {
			return fmt.Errorf("bfs: neighbors of %d: %w", u, err)
		}
		for _, v := range nbrs {
			if w.res.Depth[v] != Unreached {
				continue
			}
			if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(u, v) {
				continue
			}
			w.discover(v, u, d+1)
		}
	}
	return nil
}
