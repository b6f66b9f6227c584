package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors.
var (
	ErrNoSource        = errors.New("dijkstra: source vertex not set")
	ErrNilGraph        = errors.New("dijkstra: graph is nil")
	ErrNilGoal         = errors.New("dijkstra: goal predicate is nil")
	ErrVertexNotFound  = errors.New("dijkstra: source vertex not found in graph")
	ErrNegativeWeight  = errors.New("dijkstra: negative edge weight encountered")
	ErrBadMaxDistance  = errors.New("dijkstra: MaxDistance must be non-negative")
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// NoVertex marks an unset source and an absent predecessor.
const NoVertex = -1

// Options configures Dijkstra and AStar. Build it with DefaultOptions and
// the Option constructors rather than by hand.
type Options struct {
	// Source is the start vertex. Required.
	Source int
	// ReturnPath makes Dijkstra return the predecessor slice.
	ReturnPath bool
	// MaxDistance stops the search once the cheapest frontier entry costs more.
	MaxDistance int64
	// InfEdgeThreshold marks edges with Weight >= it as impassable.
	InfEdgeThreshold int64
	// Heuristic is AStar's remaining-cost estimate; it must not overestimate.
	Heuristic func(v int) int64

	err error
}

// Option is a functional option for Dijkstra and AStar. An invalid value is
// reported by the search call, not by the constructor.
type Option func(*Options)

// Source sets the start vertex.
func Source(id int) Option {
	return func(o *Options) { o.Source = id }
}

// WithReturnPath asks Dijkstra for the predecessor slice.
func WithReturnPath() Option {
	return func(o *Options) { o.ReturnPath = true }
}

// WithMaxDistance caps explored distances. Negative values yield ErrBadMaxDistance.
func WithMaxDistance(limit int64) Option {
	return func(o *Options) {
		if limit < 0 {
			o.err = fmt.Errorf("%w: %d", ErrBadMaxDistance, limit)
			return
		}
		o.MaxDistance = limit
	}
}

// WithInfEdgeThreshold treats edges weighing threshold or more as walls.
// Values <= 0 yield ErrBadInfThreshold, since they would wall off zero-cost edges.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			o.err = fmt.Errorf("%w: %d", ErrBadInfThreshold, threshold)
			return
		}
		o.InfEdgeThreshold = threshold
	}
}

// WithHeuristic installs the AStar estimate. nil keeps the zero heuristic.
func WithHeuristic(fn func(v int) int64) Option {
	return func(o *Options) {
		if fn != nil {
			o.Heuristic = fn
		}
	}
}

// DefaultOptions returns unlimited distance, no walls, the zero heuristic
// and no predecessor slice.
func DefaultOptions(source int) Options {
	return Options{
		Source:           source,
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
		Heuristic:        func(int) int64 { return 0 },
	}
}
