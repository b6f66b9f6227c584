package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/arrowmaze/config"
	"github.com/katalvlaran/arrowmaze/maze"
	"github.com/katalvlaran/arrowmaze/mazeio"
)

// stdinName selects standard input for --input.
const stdinName = "-"

// options collects the persistent flags shared by all commands.
type options struct {
	input      string
	configPath string
	envFile    string
	strategy   string
	logLevel   string
	logFormat  string
}

// session is everything a command needs after flags, config and input are resolved.
type session struct {
	cfg    config.Config
	logger *slog.Logger
	grid   *maze.Grid
}

func newRootCmd(in io.Reader, out, errW io.Writer) *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "arrowmaze",
		Short: "Solve an arrow-grid puzzle",
		Long: `arrowmaze reads a puzzle grid and prints a sequence of hops from the
top-left cell to the target as 1-based "(row col)" pairs. An empty line
means the target cannot be reached.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := opts.open(cmd)
			if err != nil {
				return err
			}
			return s.solve(cmd)
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errW)

	pf := root.PersistentFlags()
	pf.StringVarP(&opts.input, "input", "i", stdinName, "puzzle file, - for stdin")
	pf.StringVarP(&opts.configPath, "config", "c", "", "YAML config file")
	pf.StringVar(&opts.envFile, "env-file", ".env", "dotenv file with ARROWMAZE_* variables (ignored if missing)")
	pf.StringVar(&opts.strategy, "strategy", "", "search strategy: any or min-hops")
	pf.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn or error")
	pf.StringVar(&opts.logFormat, "log-format", "", "log format: text or json")

	root.AddCommand(newStatsCmd(opts))
	return root
}

func newStatsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print grid and hop-graph sizes without solving",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := opts.open(cmd)
			if err != nil {
				return err
			}
			return s.stats(cmd)
		},
	}
}

// open resolves configuration (defaults, YAML, env, flags), builds the
// logger and parses the puzzle.
func (o *options) open(cmd *cobra.Command) (*session, error) {
	cfg, err := config.Sources(o.configPath, o.envFile)
	if err != nil {
		return nil, err
	}
	if o.strategy != "" {
		cfg.Strategy = o.strategy
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	if o.logFormat != "" {
		cfg.Log.Format = o.logFormat
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	logger, err := newLogger(cmd.ErrOrStderr(), cfg.Log)
	if err != nil {
		return nil, err
	}
	logger = logger.With(slog.String("run_id", uuid.NewString()))

	grid, err := o.readGrid(cmd.InOrStdin())
	if err != nil {
		return nil, err
	}
	logger.Debug("puzzle loaded",
		slog.String("input", o.input),
		slog.Int("rows", grid.Rows()), slog.Int("cols", grid.Cols()))

	return &session{cfg: cfg, logger: logger, grid: grid}, nil
}

func (o *options) readGrid(stdin io.Reader) (*maze.Grid, error) {
	if o.input == "" || o.input == stdinName {
		return mazeio.Parse(stdin)
	}
	f, err := os.Open(o.input)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	grid, err := mazeio.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", o.input, err)
	}
	return grid, nil
}

func newLogger(w io.Writer, lc config.LogConfig) (*slog.Logger, error) {
	level, err := lc.SlogLevel()
	if err != nil {
		return nil, err
	}
	ho := &slog.HandlerOptions{Level: level}
	if lc.Format == config.FormatJSON {
		return slog.New(slog.NewJSONHandler(w, ho)), nil
	}
	return slog.New(slog.NewTextHandler(w, ho)), nil
}

func (s *session) solve(cmd *cobra.Command) error {
	strategy := s.cfg.SolverStrategy()
	path, err := maze.Solve(s.grid,
		maze.WithStrategy(strategy),
		maze.WithLogger(s.logger),
		maze.WithContext(cmd.Context()),
	)
	if err != nil {
		return err
	}
	s.logger.Info("solved",
		slog.String("strategy", strategy.String()),
		slog.Bool("found", len(path) > 0),
		slog.Int("length", len(path)))

	return mazeio.Write(cmd.OutOrStdout(), path)
}

func (s *session) stats(cmd *cobra.Command) error {
	g, err := maze.BuildGraph(s.grid)
	if err != nil {
		return err
	}
	target, err := s.grid.Target()
	if err != nil {
		return err
	}
	st := g.Stats()

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "grid      %dx%d\n", st.Rows, st.Cols)
	fmt.Fprintf(w, "target    %v\n", target.Add(maze.Coord{Row: 1, Col: 1}))
	fmt.Fprintf(w, "circles   %d\n", st.CircleArrows)
	fmt.Fprintf(w, "nodes     %d\n", st.Nodes)
	fmt.Fprintf(w, "edges     %d\n", st.Edges)
	fmt.Fprintf(w, "forward   %d\n", st.ForwardEdges)
	fmt.Fprintf(w, "backward  %d\n", st.BackwardEdges)
	fmt.Fprintf(w, "max-out   %d\n", st.MaxOutDegree)
	_, err = fmt.Fprintf(w, "sinks     %d\n", st.Sinks)

	s.logger.Debug("stats printed", slog.Int("nodes", st.Nodes), slog.Int("edges", st.Edges))
	return err
}
