package prim_kruskal

import (
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/metric"

	"github.com/katalvlaran/bestfirst/core"
)

var (
	// ErrInvalidGraph indicates the graph cannot have an MST: nil, directed, or unweighted.
	ErrInvalidGraph = errors.New("prim_kruskal: MST requires undirected, weighted graph")

	// ErrEmptyRoot indicates Prim was called without a root vertex.
	ErrEmptyRoot = errors.New("prim_kruskal: empty root vertex")

	// ErrDisconnected indicates that no spanning tree exists.
	ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

	// ErrUnknownMethod indicates Compute was asked for an unsupported method.
	ErrUnknownMethod = errors.New("prim_kruskal: unknown method")
)

const (
	// MethodPrim selects Prim's algorithm.
	MethodPrim = "prim"
	// MethodKruskal selects Kruskal's algorithm.
	MethodKruskal = "kruskal"
)

// Options configure Compute.
type Options struct {
	// Method is MethodPrim or MethodKruskal.
	Method string
	// Root is the start vertex for Prim; ignored by Kruskal.
	Root string

	Logger        *slog.Logger
	MeterProvider metric.MeterProvider
}

// Option mutates Options.
type Option func(*Options)

// WithMethod selects the algorithm.
func WithMethod(m string) Option {
	return func(o *Options) { o.Method = m }
}

// WithRoot sets Prim's start vertex.
func WithRoot(root string) Option {
	return func(o *Options) { o.Root = root }
}

// WithLogger routes Prim's kernel diagnostics to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMeterProvider records Prim's kernel counters through mp.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(o *Options) {
		if mp != nil {
			o.MeterProvider = mp
		}
	}
}

// DefaultOptions selects Kruskal with no root.
func DefaultOptions() Options {
	return Options{Method: MethodKruskal}
}

// Compute runs the configured MST algorithm and returns the tree edges and
// their total weight.
func Compute(graph *core.Graph, opts ...Option) ([]core.Edge, int64, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	switch o.Method {
	case MethodKruskal:
		return Kruskal(graph)
	case MethodPrim:
		return prim(graph, o)
	default:
		return nil, 0, fmt.Errorf("%w: %q", ErrUnknownMethod, o.Method)
	}
}

// validate rejects graphs an MST cannot be computed on.
func validate(graph *core.Graph) error {
	if graph == nil || !graph.Weighted() || graph.Directed() {
		return ErrInvalidGraph
	}
	for _, e := range graph.Edges() {
		if e.Directed {
			return fmt.Errorf("%w: edge %s is directed", ErrInvalidGraph, e.ID)
		}
	}
	return nil
}
