package astar

import (
	"cmp"
	"context"
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel/metric"

	"github.com/katalvlaran/bestfirst/core"
)

// Sentinel errors returned by Search.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Search.
	ErrNilGraph = errors.New("astar: graph is nil")

	// ErrNilHeuristic indicates that no heuristic was supplied.
	ErrNilHeuristic = errors.New("astar: heuristic is nil")

	// ErrUnweightedGraph indicates that the graph was not marked as weighted.
	ErrUnweightedGraph = errors.New("astar: graph must be weighted")

	// ErrEmptyVertexID indicates an empty from or to argument.
	ErrEmptyVertexID = errors.New("astar: vertex ID is empty")

	// ErrVertexNotFound indicates that an endpoint does not exist in the graph.
	ErrVertexNotFound = errors.New("astar: vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("astar: negative edge weight encountered")

	// ErrNegativeHeuristic indicates that the heuristic returned a negative estimate.
	ErrNegativeHeuristic = errors.New("astar: heuristic returned a negative estimate")

	// ErrNoPath indicates that the target is unreachable from the source.
	ErrNoPath = errors.New("astar: no path to target")
)

// Heuristic estimates the remaining cost from a vertex to the target.
// It must be non-negative and consistent: h(u) ≤ w(u,v) + h(v) for every edge.
// A consistent heuristic with h(target) == 0 makes the first yield of the
// target optimal.
type Heuristic func(id string) int64

// Zero is the heuristic that estimates nothing; Search then behaves like Dijkstra.
func Zero(string) int64 { return 0 }

// Cost is the A* priority of a path: F = G + h(tip), with G the path weight.
type Cost struct {
	F int64
	G int64
}

// Compare orders costs by F, breaking ties on G. Among equal estimates the
// shorter path is preferred.
func Compare(a, b Cost) int {
	if c := cmp.Compare(a.F, b.F); c != 0 {
		return c
	}
	return cmp.Compare(a.G, b.G)
}

// Result is the route found by Search.
type Result struct {
	// Path lists the vertices from source to target inclusive.
	Path []string
	// Edges lists the traversed edges.
	Edges []*core.Edge
	// Cost is the sum of edge weights along Path.
	Cost int64
	// Expanded counts the vertices settled before the target was reached,
	// the target included and the source excluded.
	Expanded int
}

// Options configures one Search.
type Options struct {
	Context       context.Context
	Logger        *slog.Logger
	MeterProvider metric.MeterProvider
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// WithContext makes the search observe ctx; nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Context = ctx
		}
	}
}

// WithLogger routes traversal diagnostics to l; nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMeterProvider records traversal counters on mp; nil is ignored.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(o *Options) {
		if mp != nil {
			o.MeterProvider = mp
		}
	}
}

// DefaultOptions returns the Options used when no Option is given.
func DefaultOptions() Options {
	return Options{Context: context.Background()}
}
