// Package widest finds maximum-bottleneck ("widest") paths on weighted core
// graphs: among all routes it picks the one whose narrowest edge is widest.
// Edge weights are read as capacities.
//
// The bestfirst kernel always yields the smallest priority, so a path's
// priority is its bottleneck negated. The start branch carries math.MinInt64,
// an unbounded capacity, and every edge tightens it to max(priority, -w).
// Priorities never decrease along a path, which is all the kernel needs.
package widest

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/bestfirst/bestfirst"
	"github.com/katalvlaran/bestfirst/core"
	"github.com/katalvlaran/bestfirst/walk"
)

// Strategy returns the bottleneck rule over negated widths.
func Strategy() bestfirst.StrategyFuncs[string, int64, int64] {
	return bestfirst.StrategyFuncs[string, int64, int64]{
		Initial: func() int64 { return math.MinInt64 },
		Incremental: func(b bestfirst.Branch[string]) int64 {
			if wb, ok := walk.Of(b); ok {
				return wb.Weight()
			}
			return Unbounded
		},
		Add: func(_ bestfirst.Branch[string], cur, w int64) int64 { return max(cur, -w) },
	}
}

// Path returns the widest route from → to.
//
// Validation (in order): ErrNilGraph, ErrUnweightedGraph, ErrEmptyVertexID,
// ErrVertexNotFound, ErrNegativeCapacity. ErrNoPath when to is unreachable.
// The empty path from → from has width Unbounded.
func Path(g *core.Graph, from, to string, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := validate(g, from, to); err != nil {
		return nil, err
	}
	if from == to {
		return &Result{Path: []string{from}, Edges: []*core.Edge{}, Width: Unbounded}, nil
	}

	f, err := bestfirst.NewOrderedFactory[string, int64, int64](Strategy(),
		bestfirst.WithName("widest"),
		bestfirst.WithLogger(cfg.Logger),
		bestfirst.WithMeterProvider(cfg.MeterProvider),
	)
	if err != nil {
		return nil, fmt.Errorf("widest: %w", err)
	}
	minWidth := cfg.MinWidth
	start, err := walk.Start(g, from, walk.WithEdgeFilter(func(e *core.Edge) bool {
		return e.Weight >= minWidth
	}))
	if err != nil {
		return nil, fmt.Errorf("widest: %w", err)
	}
	sel, err := f.Create(start)
	if err != nil {
		return nil, fmt.Errorf("widest: %w", err)
	}

	for {
		if err := cfg.Context.Err(); err != nil {
			return nil, err
		}
		b, err := sel.Advance()
		if errors.Is(err, bestfirst.ErrExhausted) {
			return nil, fmt.Errorf("%w: %s→%s", ErrNoPath, from, to)
		}
		if err != nil {
			return nil, fmt.Errorf("widest: %w", err)
		}
		if b.Node() != to {
			continue
		}
		wb, _ := walk.Of(b)

		return &Result{Path: wb.Nodes(), Edges: wb.Edges(), Width: -sel.Priority()}, nil
	}
}

func validate(g *core.Graph, from, to string) error {
	if g == nil {
		return ErrNilGraph
	}
	if !g.Weighted() {
		return ErrUnweightedGraph
	}
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	for _, id := range []string{from, to} {
		if !g.HasVertex(id) {
			return fmt.Errorf("%w: %q", ErrVertexNotFound, id)
		}
	}
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return fmt.Errorf("%w: edge %s→%s capacity=%d", ErrNegativeCapacity, e.From, e.To, e.Weight)
		}
	}

	return nil
}
