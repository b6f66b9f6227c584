package maze_test

import (
	"testing"

	"github.com/katalvlaran/arrowmaze/maze"
)

// benchGrid builds an n×n checkerboard of diagonal arrows with the target
// in the bottom-right corner.
func benchGrid(b *testing.B, n int) *maze.Grid {
	b.Helper()
	g, err := maze.NewGrid(n, n)
	if err != nil {
		b.Fatal(err)
	}
	dirs := maze.Directions()
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if r == n-1 && c == n-1 {
				continue
			}
			color, kind := maze.Red, maze.Plain
			if (r+c)%2 == 1 {
				color = maze.Blue
			}
			if (r*n+c)%7 == 0 {
				kind = maze.Circle
			}
			_ = g.Set(maze.NewArrow(maze.Coord{Row: r, Col: c}, color, kind, dirs[(r+2*c)%len(dirs)]))
		}
	}
	return g
}

func BenchmarkBuildGraph_64(b *testing.B) {
	g := benchGrid(b, 64)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := maze.BuildGraph(g); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSolve_AnyPath_64(b *testing.B) {
	g := benchGrid(b, 64)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = maze.Solve(g)
	}
}

func BenchmarkSolve_MinHops_64(b *testing.B) {
	g := benchGrid(b, 64)
	s := maze.NewSolver(maze.WithStrategy(maze.StrategyMinHops))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = s.Solve(g)
	}
}
