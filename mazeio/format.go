package mazeio

import (
	"fmt"
	"io"

	"github.com/katalvlaran/arrowmaze/maze"
)

// Format renders p as "(r c) (r c) ...". An empty path renders as "".
func Format(p maze.Path) string {
	return p.String()
}

// Write prints Format(p) followed by a newline, so "no path" is an empty line.
func Write(w io.Writer, p maze.Path) error {
	if _, err := fmt.Fprintln(w, Format(p)); err != nil {
		return fmt.Errorf("mazeio: write path: %w", err)
	}
	return nil
}
