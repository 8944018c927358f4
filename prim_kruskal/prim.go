package prim_kruskal

import (
	"github.com/katalvlaran/bestfirst/bestfirst"
	"github.com/katalvlaran/bestfirst/core"
	"github.com/katalvlaran/bestfirst/walk"
)

// Strategy ranks a candidate by the weight of its last edge alone.
// Branches from another substrate weigh 0.
func Strategy() bestfirst.StrategyFuncs[string, int64, int64] {
	return bestfirst.StrategyFuncs[string, int64, int64]{
		Initial: func() int64 { return 0 },
		Incremental: func(b bestfirst.Branch[string]) int64 {
			if wb, ok := walk.Of(b); ok {
				return wb.Weight()
			}
			return 0
		},
		Add: func(_ bestfirst.Branch[string], _, w int64) int64 { return w },
	}
}

// Prim computes an MST by growing a tree from root.
//
// Edges are returned in the order their far endpoint joined the tree.
// Errors: ErrInvalidGraph, ErrEmptyRoot, core.ErrVertexNotFound, ErrDisconnected.
func Prim(graph *core.Graph, root string) ([]core.Edge, int64, error) {
	return prim(graph, Options{Root: root})
}

func prim(graph *core.Graph, o Options) ([]core.Edge, int64, error) {
	if err := validate(graph); err != nil {
		return nil, 0, err
	}
	n := graph.VertexCount()
	if n == 0 {
		return nil, 0, ErrDisconnected
	}
	if o.Root == "" {
		return nil, 0, ErrEmptyRoot
	}
	if !graph.HasVertex(o.Root) {
		return nil, 0, core.ErrVertexNotFound
	}

	fo := []bestfirst.Option{bestfirst.WithName("prim"), bestfirst.WithCapacity(n)}
	if o.Logger != nil {
		fo = append(fo, bestfirst.WithLogger(o.Logger))
	}
	if o.MeterProvider != nil {
		fo = append(fo, bestfirst.WithMeterProvider(o.MeterProvider))
	}
	f, err := bestfirst.NewOrderedFactory[string, int64, int64](Strategy(), fo...)
	if err != nil {
		return nil, 0, err
	}
	start, err := walk.Start(graph, o.Root)
	if err != nil {
		return nil, 0, err
	}

	mst := make([]core.Edge, 0, n-1)
	var total int64
	err = f.Walk(start, func(b bestfirst.Branch[string], w int64) error {
		// the root is in the tree from the start
		if b.Node() == o.Root {
			return nil
		}
		wb, _ := walk.Of(b)
		mst = append(mst, *wb.Edge())
		total += w
		if len(mst) == n-1 {
			return bestfirst.ErrStop
		}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, total, nil
}
