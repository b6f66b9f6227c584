// Package dijkstra implements best-first shortest-path search on a core.Graph.
//
// Two entry points share one runner:
//
//   - Dijkstra computes the minimum cost from a source to every reachable vertex.
//   - AStar stops as soon as a vertex satisfying a goal predicate is settled and
//     returns the path to it. With the default zero heuristic it is a
//     goal-directed Dijkstra.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex is extracted at most once: V extractions from the heap.
//   - Each edge relaxation may push a new entry into the heap: up to E pushes.
//   - Space: O(V + E)
//   - O(V) for distance and predecessor slices.
//   - O(E) worst-case for entries in the heap under “lazy-decrease-key”.
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all edges (O(E)) to detect negative weights and fail fast.
//   - We treat any edge with weight ≥ InfEdgeThreshold as an impassable “wall”.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - Heap ties are broken by push order, so results are reproducible run to run.
//     Among equal-cost paths no other preference (such as fewer edges) is promised.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/arrowmaze/core"
)

// Dijkstra computes shortest distances from the source vertex (Options.Source)
// to all other vertices in g.
//
// Returns:
//
//   - dist: dist[v] is the minimum distance from Source (math.MaxInt64 if unreachable).
//   - prev: optional predecessor slice if ReturnPath=true (nil otherwise).
//     prev[v] == u means the shortest path to v goes through u.
//     For the source and unreachable v, prev[v] == NoVertex.
//   - err:  error if inputs are invalid or if a negative weight is detected.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrBadMaxDistance, ErrBadInfThreshold).
//  2. Source must be set (ErrNoSource).
//  3. g must be non-nil (ErrNilGraph).
//  4. g must contain Source (ErrVertexNotFound).
//  5. No edge in g can have negative weight (ErrNegativeWeight).
//
// Unweighted graphs are accepted: every edge then costs 0.
func Dijkstra(g *core.Graph, opts ...Option) ([]int64, []int, error) {
	cfg, err := prepare(g, opts)
	if err != nil {
		return nil, nil, err
	}

	r := newRunner(g, cfg)
	r.init()
	if _, err = r.process(nil); err != nil {
		return nil, nil, err
	}

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// prepare applies opts and validates, in order: option values, source set,
// graph non-nil, source present, no negative weights.
func prepare(g *core.Graph, opts []Option) (Options, error) {
	cfg := DefaultOptions(NoVertex)
	for _, opt := range opts {
		opt(&cfg)
	}
	switch {
	case cfg.err != nil:
		return cfg, cfg.err
	case cfg.Source == NoVertex:
		return cfg, ErrNoSource
	case g == nil:
		return cfg, ErrNilGraph
	case !g.HasVertex(cfg.Source):
		return cfg, fmt.Errorf("%w: %d", ErrVertexNotFound, cfg.Source)
	}

	// One O(E) scan up front so relax never meets a negative edge.
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return cfg, fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}
	return cfg, nil
}

// runner holds the mutable state for a single search.
type runner struct {
	g       *core.Graph // The input graph; read-only within the search.
	options Options     // Configuration options (Source, thresholds, etc.).
	dist    []int64     // vertex → current best distance from Source.
	prev    []int       // vertex → predecessor on the best known path.
	visited []bool      // Tracks if a vertex's distance is finalized.
	pq      nodePQ      // Min-heap of *nodeItem for lazy priority queue.
	seq     uint64      // Push counter used for tie-breaking.
}

func newRunner(g *core.Graph, cfg Options) *runner {
	n := g.VertexCount()

	return &runner{
		g:       g,
		options: cfg,
		dist:    make([]int64, n),
		prev:    make([]int, n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
}

// init sets up initial distances and predecessors, and pushes Source=0 into the heap.
func (r *runner) init() {
	for v := range r.dist {
		r.dist[v] = math.MaxInt64
		r.prev[v] = NoVertex
	}
	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	r.push(r.options.Source, 0)
}

// push enqueues v with its tentative distance d; the heap key adds the heuristic.
func (r *runner) push(v int, d int64) {
	heap.Push(&r.pq, &nodeItem{
		id:       v,
		dist:     d,
		priority: d + r.options.Heuristic(v),
		seq:      r.seq,
	})
	r.seq++
}

// process is the core loop. It repeatedly extracts the vertex with the lowest
// key and relaxes its outgoing edges.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable vertices processed).
//   - The minimum distance in the heap exceeds MaxDistance.
//   - goal != nil and the extracted vertex satisfies it; that vertex is returned.
//
// Returns NoVertex when no goal vertex was settled.
func (r *runner) process(goal func(int) bool) (int, error) {
	cfg := r.options
	var u int
	var d int64
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-key item from the heap.
		item := heap.Pop(&r.pq).(*nodeItem)
		u = item.id
		d = item.dist

		// 2) Skip stale heap entries.
		if r.visited[u] {
			continue
		}

		// 3) Beyond MaxDistance nothing else is explored.
		if d > cfg.MaxDistance {
			break
		}

		// 4) u is final.
		r.visited[u] = true
		if goal != nil && goal(u) {
			return u, nil
		}

		// 5) Relax all outgoing edges from u.
		if err := r.relax(u); err != nil {
			return NoVertex, err
		}
	}

	return NoVertex, nil
}

// relax examines each edge leaving u and attempts to improve distances to its targets.
// It ignores any edge weight ≥ InfEdgeThreshold (treating them as impassable).
// Assumes r.dist[u] is finalized before calling relax(u).
func (r *runner) relax(u int) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %d: %w", u, err)
	}

	var e core.Edge
	var newDist int64
	for _, e = range neighbors {
		if e.Weight >= r.options.InfEdgeThreshold {
			continue
		}
		// Safety check: though we pre-scanned for negative weights, double-check nonetheless.
		if e.Weight < 0 {
			return fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, u, e.To, e.Weight)
		}

		newDist = r.dist[u] + e.Weight
		if newDist > r.options.MaxDistance {
			continue
		}
		// Strictly better only; the first discovery of an equal-cost path wins.
		if newDist >= r.dist[e.To] {
			continue
		}

		r.dist[e.To] = newDist
		r.prev[e.To] = u
		r.push(e.To, newDist)
	}

	return nil
}

// pathTo walks the predecessor chain back from v to the source.
func (r *runner) pathTo(v int) []int {
	var path []int
	for cur := v; cur != NoVertex; cur = r.prev[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// nodeItem represents a vertex, its distance from the source and its heap key.
type nodeItem struct {
	id       int    // vertex ID
	dist     int64  // distance from source
	priority int64  // dist + heuristic
	seq      uint64 // push order
}

// nodePQ is a min-heap of *nodeItem ordered by priority, then push order.
// Outdated entries stay in the heap and are skipped when popped.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by priority, breaking ties by push order.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].priority != pq[j].priority {
		return pq[i].priority < pq[j].priority
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element of the underlying slice.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
