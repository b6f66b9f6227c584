package maze

import (
	"fmt"

	"github.com/katalvlaran/arrowmaze/core"
)

// Orientation selects one of the two node sets of a Graph.
// A token sitting on a Backward node travels against the printed arrows.
type Orientation int

const (
	// Forward nodes follow each arrow's printed direction.
	Forward Orientation = iota
	// Backward nodes follow the reverse of each arrow's direction.
	Backward
)

func (o Orientation) String() string {
	if o == Backward {
		return "backward"
	}
	return "forward"
}

// flip returns the other orientation.
func (o Orientation) flip() Orientation {
	return 1 - o
}

// Graph is the hop graph of a Grid: two nodes per cell, one per
// orientation, joined by zero-cost directed edges.
//
// Node ids are dense arena indices of the underlying core.Graph. Forward and
// backward ids never overlap and each maps to exactly one coordinate.
type Graph struct {
	grid  *Grid
	arena *core.Graph

	// nodes[o][cell] is the node of cell (row-major index) in orientation o.
	nodes [2][]int
	// coords[o] maps a node back to its cell coordinate.
	coords [2]map[int]Coord
	// passEdges[o] counts edges added by the pass over orientation o.
	passEdges [2]int
}

// Stats summarizes the size of a built Graph.
type Stats struct {
	Rows, Cols    int
	Nodes         int
	Edges         int
	ForwardEdges  int
	BackwardEdges int
	CircleArrows  int
	// MaxOutDegree is the largest number of hops available from one node.
	MaxOutDegree int
	// Sinks counts nodes with no outgoing hop, target nodes included.
	Sinks int
}

// BuildGraph allocates the forward and backward nodes of every cell in
// row-major order (forward first), then runs the forward and the backward
// edge passes over every non-target arrow.
//
// In each pass an arrow walks its ray cell by cell until it leaves the grid
// and adds an edge to every cell whose color differs from its own. Circle
// arrows walk the opposite way and land in the opposite orientation.
//
// Errors: ErrNilGrid, ErrNoTarget, ErrMultipleTargets.
// Complexity: O(rows×cols×max(rows, cols)) time and edges.
func BuildGraph(grid *Grid) (*Graph, error) {
	if err := grid.Validate(); err != nil {
		return nil, err
	}

	n := grid.Size()
	g := &Graph{
		grid:  grid,
		arena: core.NewGraph(core.WithMultiEdges(), core.WithCapacity(2*n, 2*n)),
	}
	for o := range g.nodes {
		g.nodes[o] = make([]int, n)
		g.coords[o] = make(map[int]Coord, n)
	}

	for i := 0; i < n; i++ {
		c := grid.Coordinate(i)
		for _, o := range [...]Orientation{Forward, Backward} {
			id := g.arena.AddVertex()
			g.nodes[o][i] = id
			g.coords[o][id] = c
		}
	}

	for _, pass := range [...]Orientation{Forward, Backward} {
		if err := g.wire(pass); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// wire adds the edges of one pass.
func (g *Graph) wire(pass Orientation) error {
	for i, a := range g.grid.cells {
		if a.IsTarget() {
			continue
		}
		vel := a.Direction.Velocity()
		if pass == Backward {
			vel = vel.Neg()
		}
		dest := pass
		if a.IsCircle() {
			vel = vel.Neg()
			dest = pass.flip()
		}

		src := g.nodes[pass][i]
		for c := g.grid.Coordinate(i).Add(vel); g.grid.InBounds(c); c = c.Add(vel) {
			j := g.grid.index(c)
			if g.grid.cells[j].Color == a.Color {
				continue
			}
			if _, err := g.arena.AddEdge(src, g.nodes[dest][j], 0); err != nil {
				return fmt.Errorf("maze: %s pass at %v: %w", pass, a.Loc, err)
			}
			g.passEdges[pass]++
		}
	}

	return nil
}

// Grid returns the grid the graph was built from.
func (g *Graph) Grid() *Grid { return g.grid }

// Core exposes the underlying arena graph for searches.
func (g *Graph) Core() *core.Graph { return g.arena }

// Node returns the node of c in orientation o.
func (g *Graph) Node(o Orientation, c Coord) (int, bool) {
	if !g.grid.InBounds(c) || (o != Forward && o != Backward) {
		return 0, false
	}
	return g.nodes[o][g.grid.index(c)], true
}

// Resolve maps a node back to its coordinate, consulting the forward map
// first and the backward map second.
func (g *Graph) Resolve(node int) (Coord, bool) {
	if c, ok := g.coords[Forward][node]; ok {
		return c, true
	}
	c, ok := g.coords[Backward][node]

	return c, ok
}

// Orientation reports which node set node belongs to.
func (g *Graph) Orientation(node int) (Orientation, bool) {
	if _, ok := g.coords[Forward][node]; ok {
		return Forward, true
	}
	if _, ok := g.coords[Backward][node]; ok {
		return Backward, true
	}
	return Forward, false
}

// Stats reports node and edge counts, split by pass, plus degree figures.
func (g *Graph) Stats() Stats {
	circles := 0
	for _, a := range g.grid.cells {
		if a.IsCircle() {
			circles++
		}
	}

	as := g.arena.Stats()

	return Stats{
		Rows:          g.grid.rows,
		Cols:          g.grid.cols,
		Nodes:         as.VertexCount,
		Edges:         as.EdgeCount,
		ForwardEdges:  g.passEdges[Forward],
		BackwardEdges: g.passEdges[Backward],
		CircleArrows:  circles,
		MaxOutDegree:  as.MaxOutDegree,
		Sinks:         as.SinkCount,
	}
}
