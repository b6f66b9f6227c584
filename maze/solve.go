package maze

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/arrowmaze/bfs"
	"github.com/katalvlaran/arrowmaze/dijkstra"
)

// Strategy selects the search run over the hop graph.
type Strategy int

const (
	// StrategyAnyPath runs a zero-cost best-first search and accepts the
	// first target node it settles. The hop count is not minimized.
	StrategyAnyPath Strategy = iota
	// StrategyMinHops runs a breadth-first search and returns a path with
	// the fewest hops.
	StrategyMinHops
)

var strategyNames = [...]string{StrategyAnyPath: "any", StrategyMinHops: "min-hops"}

func (s Strategy) String() string {
	if s < StrategyAnyPath || s > StrategyMinHops {
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
	return strategyNames[s]
}

// ParseStrategy accepts "any" and "min-hops".
func ParseStrategy(name string) (Strategy, error) {
	for s, n := range strategyNames {
		if n == name {
			return Strategy(s), nil
		}
	}
	return StrategyAnyPath, fmt.Errorf("%w: %q", ErrInvalidStrategy, name)
}

// Path is a hop sequence in 1-based coordinates. An empty Path means the
// target cannot be reached.
type Path []Coord

// String joins the coordinates with single spaces: "(1 1) (1 2)".
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, c := range p {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// Solver finds a path from the start cell to the target of a Grid.
type Solver struct {
	strategy Strategy
	logger   *slog.Logger
	ctx      context.Context
}

// Option configures a Solver.
type Option func(*Solver)

// WithStrategy selects the search strategy. Default StrategyAnyPath.
func WithStrategy(s Strategy) Option {
	return func(sv *Solver) { sv.strategy = s }
}

// WithLogger attaches a logger for debug output. Default discards.
func WithLogger(l *slog.Logger) Option {
	return func(sv *Solver) {
		if l != nil {
			sv.logger = l
		}
	}
}

// WithContext sets the context checked by StrategyMinHops between
// dequeues. The default search ignores it.
func WithContext(ctx context.Context) Option {
	return func(sv *Solver) {
		if ctx != nil {
			sv.ctx = ctx
		}
	}
}

// NewSolver returns a Solver with the given options applied.
func NewSolver(opts ...Option) *Solver {
	s := &Solver{
		strategy: StrategyAnyPath,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		ctx:      context.Background(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Solve is NewSolver(opts...).Solve(grid).
func Solve(grid *Grid, opts ...Option) (Path, error) {
	return NewSolver(opts...).Solve(grid)
}

// Solve builds the hop graph of grid and searches it from the forward node
// of the start cell to either node of the target cell.
//
// The returned path is 1-based and includes both endpoints. An unreachable
// target yields an empty Path and a nil error.
//
// Errors: ErrNilGrid, ErrNoTarget, ErrMultipleTargets, ErrInvalidStrategy,
// or a cancellation error from the context under StrategyMinHops.
func (s *Solver) Solve(grid *Grid) (Path, error) {
	g, err := BuildGraph(grid)
	if err != nil {
		return nil, err
	}
	st := g.Stats()
	s.logger.Debug("graph built",
		slog.Int("rows", st.Rows), slog.Int("cols", st.Cols),
		slog.Int("nodes", st.Nodes), slog.Int("edges", st.Edges))

	nodes, err := s.search(g)
	if err != nil {
		return nil, err
	}
	path := g.pathOf(nodes)
	s.logger.Debug("search finished",
		slog.String("strategy", s.strategy.String()),
		slog.Bool("found", len(path) > 0),
		slog.Int("hops", max(len(path)-1, 0)))

	return path, nil
}

// search returns the node path from start to a target node, or nil.
func (s *Solver) search(g *Graph) ([]int, error) {
	target, err := g.grid.Target()
	if err != nil {
		return nil, err
	}
	start, okS := g.Node(Forward, g.grid.Start())
	tf, okF := g.Node(Forward, target)
	tb, okB := g.Node(Backward, target)
	if !okS || !okF || !okB {
		return nil, fmt.Errorf("maze: search: endpoint missing from %dx%d graph", g.grid.rows, g.grid.cols)
	}

	isGoal := func(v int) bool { return v == tf || v == tb }

	switch s.strategy {
	case StrategyAnyPath:
		// Every hop costs zero, so no reachable node lies beyond distance 0.
		nodes, _, err := dijkstra.AStar(g.arena, isGoal,
			dijkstra.Source(start), dijkstra.WithMaxDistance(0))
		if err != nil {
			return nil, fmt.Errorf("maze: search: %w", err)
		}
		return nodes, nil

	case StrategyMinHops:
		res, err := bfs.BFS(g.arena, start, bfs.WithGoal(isGoal), bfs.WithContext(s.ctx))
		if err != nil {
			return nil, fmt.Errorf("maze: search: %w", err)
		}
		if res.Goal == bfs.NoVertex {
			return nil, nil
		}
		return res.PathTo(res.Goal)
	}

	return nil, fmt.Errorf("%w: %v", ErrInvalidStrategy, s.strategy)
}

// pathOf resolves nodes to coordinates shifted to 1-based.
func (g *Graph) pathOf(nodes []int) Path {
	path := make(Path, 0, len(nodes))
	for _, v := range nodes {
		c, _ := g.Resolve(v)
		path = append(path, c.Add(Coord{Row: 1, Col: 1}))
	}
	return path
}
