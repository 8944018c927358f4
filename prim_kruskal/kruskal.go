package prim_kruskal

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/bestfirst/core"
)

// forest is a union-find over vertex IDs with path halving and union by rank.
type forest struct {
	parent map[string]string
	rank   map[string]int
}

func newForest(ids []string) *forest {
	f := &forest{parent: make(map[string]string, len(ids)), rank: make(map[string]int, len(ids))}
	for _, id := range ids {
		f.parent[id] = id
	}
	return f
}

func (f *forest) find(u string) string {
	for f.parent[u] != u {
		f.parent[u] = f.parent[f.parent[u]]
		u = f.parent[u]
	}
	return u
}

// union merges the sets of u and v; false if they were already one.
func (f *forest) union(u, v string) bool {
	ru, rv := f.find(u), f.find(v)
	if ru == rv {
		return false
	}
	switch {
	case f.rank[ru] < f.rank[rv]:
		f.parent[ru] = rv
	case f.rank[ru] > f.rank[rv]:
		f.parent[rv] = ru
	default:
		f.parent[rv] = ru
		f.rank[ru]++
	}
	return true
}

// Kruskal computes an MST by scanning edges in ascending weight.
//
// Edges are returned in the order they were accepted.
// Errors: ErrInvalidGraph, ErrDisconnected.
func Kruskal(graph *core.Graph) ([]core.Edge, int64, error) {
	if err := validate(graph); err != nil {
		return nil, 0, err
	}
	vertices := graph.Vertices()
	switch len(vertices) {
	case 0:
		return nil, 0, ErrDisconnected
	case 1:
		return []core.Edge{}, 0, nil
	}

	edges := slices.DeleteFunc(graph.Edges(), func(e *core.Edge) bool { return e.From == e.To })
	slices.SortStableFunc(edges, func(a, b *core.Edge) int { return cmp.Compare(a.Weight, b.Weight) })

	uf := newForest(vertices)
	mst := make([]core.Edge, 0, len(vertices)-1)
	var total int64
	for _, e := range edges {
		if !uf.union(e.From, e.To) {
			continue
		}
		mst = append(mst, *e)
		total += e.Weight
		if len(mst) == len(vertices)-1 {
			break
		}
	}
	if len(mst) < len(vertices)-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, total, nil
}
