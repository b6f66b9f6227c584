package maze

import (
	"fmt"
	"strings"
)

// Grid is a rows×cols board of arrows stored in row-major order.
//
// A fresh grid holds a target placeholder in every cell; callers overwrite
// all but one of them with Set. Validate checks that exactly one target is
// left.
type Grid struct {
	rows, cols int
	cells      []Arrow
}

// MaxCells bounds rows×cols. The hop graph holds two nodes per cell and up
// to rows+cols edges per node, so larger boards are refused up front.
const MaxCells = 1 << 20

// NewGrid allocates a rows×cols grid. Returns ErrEmptyGrid if either
// dimension is below 1 and ErrGridTooLarge if rows×cols exceeds MaxCells.
// Complexity: O(rows×cols) time and memory.
func NewGrid(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyGrid, rows, cols)
	}
	// Divide rather than multiply: rows*cols may overflow int.
	if rows > MaxCells/cols {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d cells", ErrGridTooLarge, rows, cols, MaxCells)
	}
	g := &Grid{rows: rows, cols: cols, cells: make([]Arrow, rows*cols)}
	for i := range g.cells {
		g.cells[i] = TargetAt(g.Coordinate(i))
	}

	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Size returns rows×cols.
func (g *Grid) Size() int { return len(g.cells) }

// InBounds reports whether c lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Set stores a at a.Loc. Returns ErrOutOfBounds if a.Loc is outside the grid.
func (g *Grid) Set(a Arrow) error {
	if !g.InBounds(a.Loc) {
		return fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, a.Loc, g.rows, g.cols)
	}
	g.cells[g.index(a.Loc)] = a

	return nil
}

// At returns the arrow at c. c must be in bounds.
func (g *Grid) At(c Coord) Arrow {
	return g.cells[g.index(c)]
}

// Start is the cell the token starts on: the top-left corner.
func (g *Grid) Start() Coord { return Coord{} }

// Target returns the location of the single target cell.
// Returns ErrNoTarget or ErrMultipleTargets if the grid is malformed.
// Complexity: O(rows×cols).
func (g *Grid) Target() (Coord, error) {
	var (
		found Coord
		n     int
	)
	for i, a := range g.cells {
		if a.IsTarget() {
			if n == 0 {
				found = g.Coordinate(i)
			}
			n++
		}
	}
	switch {
	case n == 0:
		return Coord{}, ErrNoTarget
	case n > 1:
		return Coord{}, fmt.Errorf("%w: %d targets", ErrMultipleTargets, n)
	}

	return found, nil
}

// Validate checks the single-target invariant.
func (g *Grid) Validate() error {
	if g == nil {
		return ErrNilGrid
	}
	_, err := g.Target()

	return err
}

// index maps c to its row-major slot: Row*cols + Col.
func (g *Grid) index(c Coord) int {
	return c.Row*g.cols + c.Col
}

// Coordinate converts a row-major index back to a Coord.
func (g *Grid) Coordinate(idx int) Coord {
	return Coord{Row: idx / g.cols, Col: idx % g.cols}
}

// String renders one line per row. Arrows print as color/direction with a
// trailing * for circles, e.g. "R/E" or "B/NW*"; the target prints as X.
func (g *Grid) String() string {
	var sb strings.Builder
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			a := g.cells[r*g.cols+c]
			if a.IsTarget() {
				sb.WriteByte('X')
				continue
			}
			sb.WriteString(a.Color.String()[:1])
			sb.WriteByte('/')
			sb.WriteString(a.Direction.String())
			if a.IsCircle() {
				sb.WriteByte('*')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
