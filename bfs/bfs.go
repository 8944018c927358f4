package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/bestfirst/bestfirst"
	"github.com/katalvlaran/bestfirst/core"
	"github.com/katalvlaran/bestfirst/walk"
)

// Hops is the unit-step strategy: every edge adds one to the depth.
func Hops() bestfirst.StrategyFuncs[string, int, int] {
	return bestfirst.StrategyFuncs[string, int, int]{
		Initial:     func() int { return 0 },
		Incremental: func(bestfirst.Branch[string]) int { return 1 },
		Add:         func(_ bestfirst.Branch[string], depth, step int) int { return depth + step },
	}
}

// filtered drops the edges curr→neighbor that keep rejects.
type filtered struct {
	g    *core.Graph
	keep func(curr, neighbor string) bool
}

func (f filtered) Neighbors(id string) ([]*core.Edge, error) {
	edges, err := f.g.Neighbors(id)
	if err != nil || f.keep == nil {
		return edges, err
	}
	out := make([]*core.Edge, 0, len(edges))
	for _, e := range edges {
		if f.keep(id, e.Other(id)) {
			out = append(out, e)
		}
	}
	return out, nil
}

// BFS runs breadth-first search on g starting from startID,
// applying any number of functional Options.
//
// The partial Result is returned alongside any error raised after the
// search began (cancellation, hook error, neighbor failure).
func BFS(g *core.Graph, startID string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(startID) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, startID)
	}

	n := g.VertexCount()
	fo := []bestfirst.Option{bestfirst.WithName("bfs"), bestfirst.WithCapacity(n)}
	if o.Logger != nil {
		fo = append(fo, bestfirst.WithLogger(o.Logger))
	}
	if o.MeterProvider != nil {
		fo = append(fo, bestfirst.WithMeterProvider(o.MeterProvider))
	}
	f, err := bestfirst.NewOrderedFactory[string, int, int](Hops(), fo...)
	if err != nil {
		return nil, err
	}
	start, err := walk.Start(filtered{g: g, keep: o.FilterNeighbor}, startID)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Order:  make([]string, 0, n),
		Depth:  make(map[string]int, n),
		Parent: make(map[string]string, n),
	}
	visit := func(id string, depth int) error {
		res.Order = append(res.Order, id)
		res.Depth[id] = depth
		if err := o.OnVisit(id, depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", id, err)
		}
		return nil
	}

	if err = o.Ctx.Err(); err != nil {
		return res, err
	}
	if err = visit(startID, 0); err != nil {
		return res, err
	}
	err = f.Walk(start, func(b bestfirst.Branch[string], depth int) error {
		if err := o.Ctx.Err(); err != nil {
			return err
		}
		id := b.Node()
		if id == startID {
			return nil
		}
		if o.MaxDepth > 0 && depth > o.MaxDepth {
			return bestfirst.ErrStop
		}
		wb, _ := walk.Of(b)
		res.Parent[id] = wb.Parent().Node()
		return visit(id, depth)
	})
	if errors.Is(err, bestfirst.ErrExpand) {
		return res, fmt.Errorf("%w: %w", ErrNeighbors, err)
	}

	return res, err
}
