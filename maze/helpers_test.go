package maze_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/arrowmaze/maze"
)

// arrow is a 0-based shorthand for maze.NewArrow.
func arrow(r, c int, color maze.Color, kind maze.Kind, d maze.Direction) maze.Arrow {
	return maze.NewArrow(maze.Coord{Row: r, Col: c}, color, kind, d)
}

// newGrid fills a rows×cols grid with arrows; the one cell left over is the target.
func newGrid(tb testing.TB, rows, cols int, arrows ...maze.Arrow) *maze.Grid {
	tb.Helper()
	g, err := maze.NewGrid(rows, cols)
	require.NoError(tb, err)
	for _, a := range arrows {
		require.NoError(tb, g.Set(a))
	}
	require.NoError(tb, g.Validate())
	return g
}

// circleReversal needs a circle arrow to reach the target, and it arrives on
// the target's backward node.
//
//	R/S  B/W
//	B/W* X
func circleReversal(tb testing.TB) *maze.Grid {
	return newGrid(tb, 2, 2,
		arrow(0, 0, maze.Red, maze.Plain, maze.S),
		arrow(0, 1, maze.Blue, maze.Plain, maze.W),
		arrow(1, 0, maze.Blue, maze.Circle, maze.W),
	)
}

// reversedTravel leaves a circle first, then keeps moving against the
// printed arrow of the next cell.
//
//	R/W* B/N
//	B/E  X
func reversedTravel(tb testing.TB) *maze.Grid {
	return newGrid(tb, 2, 2,
		arrow(0, 0, maze.Red, maze.Circle, maze.W),
		arrow(0, 1, maze.Blue, maze.Plain, maze.N),
		arrow(1, 0, maze.Blue, maze.Plain, maze.E),
	)
}
