package mazeio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/arrowmaze/maze"
)

// Sentinel errors for malformed input.
var (
	// ErrBadHeader indicates a missing or malformed "rows cols" line.
	ErrBadHeader = errors.New("mazeio: bad header")
	// ErrBadRecord indicates a cell line without 5 fields or with non-integer coordinates.
	ErrBadRecord = errors.New("mazeio: bad record")
	// ErrOutOfRange indicates a 1-based coordinate outside the grid.
	ErrOutOfRange = errors.New("mazeio: coordinate out of range")
	// ErrDuplicateCell indicates a cell listed twice, or a target on an arrow cell.
	ErrDuplicateCell = errors.New("mazeio: duplicate cell")
	// ErrRecordCount indicates too few or too many cell lines.
	ErrRecordCount = errors.New("mazeio: wrong number of records")
)

// targetMarker is the field tail of the final line.
var targetMarker = []string{"X", "X", "X"}

// ParseError locates a parse failure.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("mazeio: line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// line is one non-blank input line with its 1-based number.
type line struct {
	num    int
	fields []string
}

// Parse reads a complete grid from r. Parsing stops at the first error,
// which is returned as a *ParseError when a line can be blamed.
func Parse(r io.Reader) (*maze.Grid, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, &ParseError{Line: 1, Err: fmt.Errorf("%w: empty input", ErrBadHeader)}
	}

	rows, cols, err := parseHeader(lines[0])
	if err != nil {
		return nil, err
	}
	grid, err := maze.NewGrid(rows, cols)
	if err != nil {
		return nil, &ParseError{Line: lines[0].num, Err: fmt.Errorf("%w: %w", ErrBadHeader, err)}
	}

	p := &parser{grid: grid, seen: make([]bool, rows*cols)}
	body := lines[1:]
	want := rows * cols
	if len(body) != want {
		at := lines[len(lines)-1].num
		if len(body) > want {
			at = body[want].num
		}
		return nil, &ParseError{Line: at, Err: fmt.Errorf("%w: got %d cell lines, want %d", ErrRecordCount, len(body), want)}
	}
	for _, ln := range body[:want-1] {
		if err := p.arrow(ln); err != nil {
			return nil, err
		}
	}
	if err := p.target(body[want-1]); err != nil {
		return nil, err
	}

	if err := grid.Validate(); err != nil {
		return nil, err
	}
	return grid, nil
}

func readLines(r io.Reader) ([]line, error) {
	var lines []line
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		lines = append(lines, line{num: n, fields: fields})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("mazeio: read input: %w", err)
	}
	return lines, nil
}

func parseHeader(ln line) (rows, cols int, err error) {
	if len(ln.fields) != 2 {
		return 0, 0, &ParseError{Line: ln.num, Err: fmt.Errorf("%w: want \"rows cols\", got %q", ErrBadHeader, strings.Join(ln.fields, " "))}
	}
	if rows, err = strconv.Atoi(ln.fields[0]); err != nil {
		return 0, 0, &ParseError{Line: ln.num, Err: fmt.Errorf("%w: rows: %w", ErrBadHeader, err)}
	}
	if cols, err = strconv.Atoi(ln.fields[1]); err != nil {
		return 0, 0, &ParseError{Line: ln.num, Err: fmt.Errorf("%w: cols: %w", ErrBadHeader, err)}
	}
	return rows, cols, nil
}

// parser tracks which cells have been assigned.
type parser struct {
	grid *maze.Grid
	seen []bool
}

// arrow parses "row col color circle direction".
func (p *parser) arrow(ln line) error {
	if isTargetLine(ln) {
		return &ParseError{Line: ln.num, Err: fmt.Errorf("%w: target marker before the last cell line", ErrRecordCount)}
	}
	loc, err := p.cell(ln)
	if err != nil {
		return err
	}
	color, err := maze.ParseColor(ln.fields[2])
	if err != nil {
		return &ParseError{Line: ln.num, Err: err}
	}
	kind, err := maze.ParseKind(ln.fields[3])
	if err != nil {
		return &ParseError{Line: ln.num, Err: err}
	}
	dir, err := maze.ParseDirection(ln.fields[4])
	if err != nil {
		return &ParseError{Line: ln.num, Err: err}
	}

	if err = p.grid.Set(maze.NewArrow(loc, color, kind, dir)); err != nil {
		return &ParseError{Line: ln.num, Err: err}
	}
	return nil
}

// target parses "fin_row fin_col X X X".
func (p *parser) target(ln line) error {
	if !isTargetLine(ln) {
		return &ParseError{Line: ln.num, Err: fmt.Errorf("%w: last line must be \"row col X X X\"", ErrBadRecord)}
	}
	loc, err := p.cell(ln)
	if err != nil {
		return err
	}
	if err = p.grid.Set(maze.TargetAt(loc)); err != nil {
		return &ParseError{Line: ln.num, Err: err}
	}
	return nil
}

// cell validates the leading 1-based coordinate pair, marks the cell seen
// and returns its 0-based location.
func (p *parser) cell(ln line) (maze.Coord, error) {
	if len(ln.fields) != 5 {
		return maze.Coord{}, &ParseError{Line: ln.num, Err: fmt.Errorf("%w: want 5 fields, got %d", ErrBadRecord, len(ln.fields))}
	}
	row, err := strconv.Atoi(ln.fields[0])
	if err != nil {
		return maze.Coord{}, &ParseError{Line: ln.num, Err: fmt.Errorf("%w: row: %w", ErrBadRecord, err)}
	}
	col, err := strconv.Atoi(ln.fields[1])
	if err != nil {
		return maze.Coord{}, &ParseError{Line: ln.num, Err: fmt.Errorf("%w: col: %w", ErrBadRecord, err)}
	}

	loc := maze.Coord{Row: row - 1, Col: col - 1}
	if !p.grid.InBounds(loc) {
		return maze.Coord{}, &ParseError{Line: ln.num, Err: fmt.Errorf("%w: (%d %d) outside %dx%d",
			ErrOutOfRange, row, col, p.grid.Rows(), p.grid.Cols())}
	}
	idx := loc.Row*p.grid.Cols() + loc.Col
	if p.seen[idx] {
		return maze.Coord{}, &ParseError{Line: ln.num, Err: fmt.Errorf("%w: (%d %d)", ErrDuplicateCell, row, col)}
	}
	p.seen[idx] = true

	return loc, nil
}

func isTargetLine(ln line) bool {
	if len(ln.fields) != 5 {
		return false
	}
	for i, f := range targetMarker {
		if ln.fields[2+i] != f {
			return false
		}
	}
	return true
}
