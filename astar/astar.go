// Package astar implements A* search on weighted core graphs as a client of
// the bestfirst traversal kernel.
//
// The priority of a path is a Cost{F, G}: G is the summed edge weight and
// F = G + h(tip). Costs are compared by F, then by G, so the kernel is built
// with bestfirst.NewFactory and the custom Compare. With a consistent
// heuristic the kernel's visited set never discards a better route, and the
// first time the target is yielded its path is optimal.
//
// Complexity: O((V + E) log V) time in the worst case, O(V) frontier space.
// A tighter heuristic settles fewer vertices; Result.Expanded reports how many.
package astar

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/bestfirst/bestfirst"
	"github.com/katalvlaran/bestfirst/core"
	"github.com/katalvlaran/bestfirst/walk"
)

// Strategy returns the A* rule for heuristic h: the start cost is
// {h(start), 0} and each edge adds its weight to G before F is re-estimated
// at the new tip. Sums saturate at math.MaxInt64.
func Strategy(start string, h Heuristic) bestfirst.StrategyFuncs[string, Cost, int64] {
	return bestfirst.StrategyFuncs[string, Cost, int64]{
		Initial: func() Cost { return Cost{F: h(start)} },
		Incremental: func(b bestfirst.Branch[string]) int64 {
			if wb, ok := walk.Of(b); ok {
				return wb.Weight()
			}
			return 0
		},
		Add: func(b bestfirst.Branch[string], cur Cost, w int64) Cost {
			g := add(cur.G, w)
			return Cost{F: add(g, h(b.Node())), G: g}
		},
	}
}

func add(a, b int64) int64 {
	if b > 0 && a > math.MaxInt64-b {
		return math.MaxInt64
	}
	return a + b
}

// Search finds a minimum-cost route from → to guided by h.
//
// Validation (in order): ErrNilGraph, ErrNilHeuristic, ErrUnweightedGraph,
// ErrEmptyVertexID, ErrVertexNotFound, ErrNegativeWeight, ErrNegativeHeuristic.
// The heuristic is evaluated once per vertex up front to reject negative
// estimates. ErrNoPath is returned when to is unreachable.
func Search(g *core.Graph, from, to string, h Heuristic, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := validate(g, from, to, h); err != nil {
		return nil, err
	}
	if from == to {
		return &Result{Path: []string{from}, Edges: []*core.Edge{}}, nil
	}

	f, err := bestfirst.NewFactory[string, Cost, int64](Strategy(from, h), Compare,
		bestfirst.WithName("astar"),
		bestfirst.WithLogger(cfg.Logger),
		bestfirst.WithMeterProvider(cfg.MeterProvider),
	)
	if err != nil {
		return nil, fmt.Errorf("astar: %w", err)
	}
	start, err := walk.Start(g, from)
	if err != nil {
		return nil, fmt.Errorf("astar: %w", err)
	}
	sel, err := f.Create(start)
	if err != nil {
		return nil, fmt.Errorf("astar: %w", err)
	}

	expanded := 0
	for {
		if err = cfg.Context.Err(); err != nil {
			return nil, err
		}
		b, err := sel.Advance()
		if errors.Is(err, bestfirst.ErrExhausted) {
			return nil, fmt.Errorf("%w: %s→%s", ErrNoPath, from, to)
		}
		if err != nil {
			return nil, fmt.Errorf("astar: %w", err)
		}
		// A cycle back to the source is yielded like any other vertex.
		if b.Node() == from {
			continue
		}
		expanded++
		if b.Node() != to {
			continue
		}
		wb, _ := walk.Of(b)

		return &Result{
			Path:     wb.Nodes(),
			Edges:    wb.Edges(),
			Cost:     sel.Priority().G,
			Expanded: expanded,
		}, nil
	}
}

func validate(g *core.Graph, from, to string, h Heuristic) error {
	if g == nil {
		return ErrNilGraph
	}
	if h == nil {
		return ErrNilHeuristic
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
			return fmt.Errorf("%w: edge %s→%s weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}
	for _, v := range g.Vertices() {
		if est := h(v); est < 0 {
			return fmt.Errorf("%w: h(%s)=%d", ErrNegativeHeuristic, v, est)
		}
	}

	return nil
}
