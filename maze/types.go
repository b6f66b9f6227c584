package maze

import (
	"errors"
	"fmt"
)

// Sentinel errors for maze operations.
var (
	// ErrInvalidColor indicates a color token other than R or B.
	ErrInvalidColor = errors.New("maze: invalid color")
	// ErrInvalidKind indicates a circle token other than C or N.
	ErrInvalidKind = errors.New("maze: invalid circle flag")
	// ErrInvalidDirection indicates a token outside the 8 compass headings.
	ErrInvalidDirection = errors.New("maze: invalid direction")
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("maze: grid must have at least one row and one column")
	// ErrGridTooLarge indicates a grid with more than MaxCells cells.
	ErrGridTooLarge = errors.New("maze: grid too large")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("maze: coordinate out of bounds")
	// ErrNilGrid indicates a nil *Grid was passed.
	ErrNilGrid = errors.New("maze: grid is nil")
	// ErrNoTarget indicates a grid without a target cell.
	ErrNoTarget = errors.New("maze: grid has no target")
	// ErrMultipleTargets indicates a grid with more than one target cell.
	ErrMultipleTargets = errors.New("maze: grid has more than one target")
	// ErrInvalidStrategy indicates an unknown search strategy name.
	ErrInvalidStrategy = errors.New("maze: invalid strategy")
)

// Coord addresses a grid cell. It is zero-based internally and signed so
// that ray walks may step past the edges before the bounds check stops them.
type Coord struct {
	Row, Col int
}

// Add returns c+o.
func (c Coord) Add(o Coord) Coord { return Coord{Row: c.Row + o.Row, Col: c.Col + o.Col} }

// Neg returns -c.
func (c Coord) Neg() Coord { return Coord{Row: -c.Row, Col: -c.Col} }

// String renders the coordinate as "(row col)".
func (c Coord) String() string { return fmt.Sprintf("(%d %d)", c.Row, c.Col) }

// Color of an arrow. The target cell is Clear.
type Color int

const (
	// Clear is the color of the target cell only.
	Clear Color = iota
	// Red arrow.
	Red
	// Blue arrow.
	Blue
)

var colorNames = [...]string{Clear: "Clear", Red: "Red", Blue: "Blue"}

func (c Color) String() string {
	if c < Clear || c > Blue {
		return fmt.Sprintf("Color(%d)", int(c))
	}
	return colorNames[c]
}

// ParseColor maps the input tokens R and B to Red and Blue.
func ParseColor(tok string) (Color, error) {
	switch tok {
	case "R":
		return Red, nil
	case "B":
		return Blue, nil
	}
	return Clear, fmt.Errorf("%w: %q", ErrInvalidColor, tok)
}

// Kind tells a plain arrow from a circle (reflector) arrow and the target.
type Kind int

const (
	// Target marks the single destination cell; it never originates hops.
	Target Kind = iota
	// Circle arrows reverse travel for hops that land on or leave them.
	Circle
	// Plain arrows hop along their printed direction.
	Plain
)

var kindNames = [...]string{Target: "Target", Circle: "Circle", Plain: "Plain"}

func (k Kind) String() string {
	if k < Target || k > Plain {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind maps the input tokens C and N to Circle and Plain.
func ParseKind(tok string) (Kind, error) {
	switch tok {
	case "C":
		return Circle, nil
	case "N":
		return Plain, nil
	}
	return Target, fmt.Errorf("%w: %q", ErrInvalidKind, tok)
}

// Direction is one of the 8 compass headings.
type Direction int

const (
	N Direction = iota
	E
	S
	W
	NE
	SE
	SW
	NW
)

// velocities is the fixed unit step per direction, as (row, col) deltas.
var velocities = [...]Coord{
	N:  {-1, 0},
	E:  {0, 1},
	S:  {1, 0},
	W:  {0, -1},
	NE: {-1, 1},
	SE: {1, 1},
	SW: {1, -1},
	NW: {-1, -1},
}

var directionNames = [...]string{N: "N", E: "E", S: "S", W: "W", NE: "NE", SE: "SE", SW: "SW", NW: "NW"}

// Directions lists all headings in declaration order.
func Directions() []Direction {
	return []Direction{N, E, S, W, NE, SE, SW, NW}
}

// Velocity returns the unit step of d.
func (d Direction) Velocity() Coord {
	return velocities[d]
}

func (d Direction) String() string {
	if d < N || d > NW {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// ParseDirection maps N, E, S, W, NE, SE, SW and NW to their Direction.
func ParseDirection(tok string) (Direction, error) {
	for d, name := range directionNames {
		if name == tok {
			return Direction(d), nil
		}
	}
	return N, fmt.Errorf("%w: %q", ErrInvalidDirection, tok)
}

// Arrow is the content of one grid cell.
type Arrow struct {
	Loc       Coord
	Color     Color
	Kind      Kind
	Direction Direction
}

// NewArrow builds a plain or circle arrow at loc.
func NewArrow(loc Coord, color Color, kind Kind, dir Direction) Arrow {
	return Arrow{Loc: loc, Color: color, Kind: kind, Direction: dir}
}

// TargetAt builds the target cell at loc. Its direction carries no meaning.
func TargetAt(loc Coord) Arrow {
	return Arrow{Loc: loc, Color: Clear, Kind: Target}
}

// IsTarget reports whether a is the target cell.
func (a Arrow) IsTarget() bool { return a.Kind == Target }

// IsCircle reports whether a is a circle (reflector) arrow.
func (a Arrow) IsCircle() bool { return a.Kind == Circle }
