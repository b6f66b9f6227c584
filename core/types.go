// Package core defines the arena Graph, its Edge type, construction options
// and sentinel errors.
//
// Vertices are dense integers 0..VertexCount()-1 handed out by AddVertex.
// Edges live in one flat slice and are addressed by their index; each
// vertex keeps the indices of its outgoing edges in insertion order.
//
// Errors:
//
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrBadWeight           - non-zero weight provided to an unweighted graph.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - attempt to add parallel edge when multi-edges disabled.
//	ErrBadCount            - negative count passed to AddVertices.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a non-zero weight provided to an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrBadCount indicates a negative vertex count.
	ErrBadCount = errors.New("core: vertex count must be non-negative")
)

// Edge is a directed connection From→To.
//
// ID is the edge's index in the graph's edge arena and never changes.
type Edge struct {
	// ID is the arena index of this edge.
	ID int

	// From is the source vertex.
	From int

	// To is the destination vertex.
	To int

	// Weight is the traversal cost of the edge.
	Weight int64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithWeighted allows non-zero edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithMultiEdges permits parallel edges between the same vertices.
// It also skips the duplicate scan in AddEdge, which makes insertion O(1).
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithCapacity pre-sizes the vertex and edge arenas.
func WithCapacity(vertices, edges int) GraphOption {
	return func(g *Graph) {
		if vertices > 0 {
			g.adjacency = make([][]int, 0, vertices)
		}
		if edges > 0 {
			g.edges = make([]Edge, 0, edges)
		}
	}
}

// Graph is a directed graph stored as an arena.
//
// The graph is not safe for concurrent mutation: it is built by one owner
// and then read. Graphs may contain cycles; nothing refers back to the
// Graph from a vertex or an edge, so there is no ownership cycle.
type Graph struct {
	// Configuration flags
	weighted   bool // allow non-zero weights
	allowMulti bool // allow parallel edges
	allowLoops bool // allow self-loops

	// Storage
	edges     []Edge  // edge ID → Edge
	adjacency [][]int // vertex → outgoing edge IDs, insertion order
}

// GraphStats is a snapshot of configuration flags and arena sizes.
type GraphStats struct {
	Weighted    bool
	AllowsMulti bool
	AllowsLoops bool
	VertexCount int
	EdgeCount   int
	// MaxOutDegree is the largest number of outgoing edges of any vertex.
	MaxOutDegree int
	// SinkCount is the number of vertices without outgoing edges.
	SinkCount int
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph is unweighted, without loops or multi-edges.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
