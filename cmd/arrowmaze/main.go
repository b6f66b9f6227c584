// Command arrowmaze reads an arrow-grid puzzle and prints a hop path from
// the top-left cell to the target, or an empty line when there is none.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
)

func main() {
	// Minimal logger until the configured one replaces it.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Stdin, os.Stdout, os.Stderr, os.Args[1:])
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "arrowmaze:", err)
		os.Exit(1)
	}
}

// run executes the command line in args against the given streams.
func run(ctx context.Context, in io.Reader, out, errW io.Writer, args []string) error {
	root := newRootCmd(in, out, errW)
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}
