package widest

import (
	"context"
	"errors"
	"log/slog"
	"math"

	"go.opentelemetry.io/otel/metric"

	"github.com/katalvlaran/bestfirst/core"
)

// Sentinel errors returned by Path.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Path.
	ErrNilGraph = errors.New("widest: graph is nil")

	// ErrUnweightedGraph indicates that the graph was not marked as weighted.
	ErrUnweightedGraph = errors.New("widest: graph must be weighted")

	// ErrEmptyVertexID indicates an empty from or to argument.
	ErrEmptyVertexID = errors.New("widest: vertex ID is empty")

	// ErrVertexNotFound indicates that an endpoint does not exist in the graph.
	ErrVertexNotFound = errors.New("widest: vertex not found in graph")

	// ErrNegativeCapacity indicates an edge with a negative weight.
	ErrNegativeCapacity = errors.New("widest: negative edge capacity")

	// ErrNoPath indicates that the target is unreachable from the source.
	ErrNoPath = errors.New("widest: no path to target")
)

// Unbounded is the width reported for the empty path from a vertex to itself.
const Unbounded = int64(math.MaxInt64)

// Result is the widest route found by Path.
type Result struct {
	// Path lists the vertices from source to target inclusive.
	Path []string
	// Edges lists the traversed edges.
	Edges []*core.Edge
	// Width is the smallest capacity along Path.
	Width int64
}

// Options configures one Path search.
type Options struct {
	// Context is checked between yields; cancelling it aborts the search.
	Context context.Context
	// Logger receives kernel diagnostics; nil keeps the kernel silent.
	Logger *slog.Logger
	// MeterProvider records kernel counters; nil uses the global provider.
	MeterProvider metric.MeterProvider
	// MinWidth prunes edges narrower than it while branches expand.
	MinWidth int64
}

// Option represents a functional option for configuring Path.
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

// WithMinWidth skips every edge with capacity below w.
func WithMinWidth(w int64) Option {
	return func(o *Options) { o.MinWidth = w }
}

// DefaultOptions returns the Options used when no Option is given:
// a background context and no width floor.
func DefaultOptions() Options {
	return Options{Context: context.Background()}
}
