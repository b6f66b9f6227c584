// Package core provides a compact, index-addressed directed graph.
//
// The Graph G = (V,E) is stored as an arena:
//
//   - Vertices are dense integers handed out by AddVertex / AddVertices.
//   - Edges live in one flat slice; an Edge's ID is its index there.
//   - adjacency[v] lists the IDs of v's outgoing edges in insertion order.
//
// Because nothing points back from an edge to the graph, cyclic topologies
// (round trips, self-loops when enabled) cost nothing extra and never form
// ownership cycles.
//
// Configuration Options (GraphOption):
//
//	– WithWeighted()
//	    Permits non-zero weights globally; otherwise AddEdge(weight≠0) → ErrBadWeight.
//
//	– WithMultiEdges()
//	    Allows multiple parallel edges between the same endpoints.
//	    Otherwise a second AddEdge(from,to) → ErrMultiEdgeNotAllowed.
//
//	– WithLoops()
//	    Permits self-loops (from == to); otherwise AddEdge(v,v) → ErrLoopNotAllowed.
//
//	– WithCapacity(vertices, edges)
//	    Pre-sizes the arenas when the final size is known up front.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex() int                      // O(1)
//	AddVertices(n int) (int, error)      // O(n)
//	HasVertex(id int) bool               // O(1)
//
//	// Edge lifecycle
//	AddEdge(from, to int, weight int64) (edgeID int, err error) // O(1)†
//	HasEdge(from, to int) bool           // O(deg)
//	GetEdge(eid int) (Edge, error)       // O(1)
//
//	// Query
//	Neighbors(id int) ([]Edge, error)    // O(deg), Edge.ID order
//	NeighborIDs(id int) ([]int, error)   // O(deg), Edge.ID order
//	AdjacencyList() [][]int              // O(V+E)
//	Vertices() []int                     // O(V)
//	Edges() []Edge                       // O(E)
//	Stats() GraphStats                   // O(V)
//
// † O(deg(from)) when multi-edges are disabled (duplicate scan).
//
// Concurrency:
//
//	A Graph is built and read by a single owner. Concurrent readers are
//	fine once construction is finished; concurrent mutation is not.
package core
