package astar_test

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bestfirst/astar"
	"github.com/katalvlaran/bestfirst/core"
	"github.com/katalvlaran/bestfirst/dijkstra"
)

func id(x, y int) string { return fmt.Sprintf("%d,%d", x, y) }

// grid builds an n×n 4-connected grid with unit weights.
func grid(t testing.TB, n int) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithWeighted())
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			if x+1 < n {
				_, err := g.AddEdge(id(x, y), id(x+1, y), 1)
				require.NoError(t, err)
			}
			if y+1 < n {
				_, err := g.AddEdge(id(x, y), id(x, y+1), 1)
				require.NoError(t, err)
			}
		}
	}
	return g
}

// manhattan is consistent on unit grids.
func manhattan(tx, ty int) astar.Heuristic {
	return func(v string) int64 {
		var x, y int
		fmt.Sscanf(v, "%d,%d", &x, &y)
		return int64(abs(x-tx) + abs(y-ty))
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func TestCompare(t *testing.T) {
	require.Negative(t, astar.Compare(astar.Cost{F: 1, G: 9}, astar.Cost{F: 2, G: 0}))
	require.Negative(t, astar.Compare(astar.Cost{F: 2, G: 1}, astar.Cost{F: 2, G: 2}))
	require.Zero(t, astar.Compare(astar.Cost{F: 2, G: 2}, astar.Cost{F: 2, G: 2}))
}

func TestSearch_Grid(t *testing.T) {
	g := grid(t, 10)
	res, err := astar.Search(g, id(0, 0), id(4, 0), manhattan(4, 0))
	require.NoError(t, err)
	require.Equal(t, int64(4), res.Cost)
	require.Equal(t, []string{"0,0", "1,0", "2,0", "3,0", "4,0"}, res.Path)
	require.Len(t, res.Edges, 4)
	require.Equal(t, 4, res.Expanded, "only the straight corridor is settled")

	blind, err := astar.Search(g, id(0, 0), id(4, 0), astar.Zero)
	require.NoError(t, err)
	require.Equal(t, res.Cost, blind.Cost)
	require.Less(t, res.Expanded, blind.Expanded, "the heuristic must prune work")
}

func TestSearch_HeuristicAvoidsDetour(t *testing.T) {
	g := core.NewGraph(core.WithWeighted(), core.WithDirected(true))
	for _, e := range []struct {
		u, v string
		w    int64
	}{{"s", "detour", 1}, {"detour", "t", 10}, {"s", "m", 2}, {"m", "t", 2}} {
		_, err := g.AddEdge(e.u, e.v, e.w)
		require.NoError(t, err)
	}
	h := map[string]int64{"s": 4, "detour": 10, "m": 2, "t": 0}
	res, err := astar.Search(g, "s", "t", func(v string) int64 { return h[v] })
	require.NoError(t, err)
	require.Equal(t, []string{"s", "m", "t"}, res.Path)
	require.Equal(t, int64(4), res.Cost)
	require.Equal(t, 2, res.Expanded, "detour is never settled")
}

func TestSearch_MatchesDijkstra(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		rng := rand.New(rand.NewSource(seed))
		g := core.NewGraph(core.WithWeighted(), core.WithMultiEdges())
		n := 8 + rng.Intn(8)
		for i := 0; i < n; i++ {
			require.NoError(t, g.AddVertex("v"+strconv.Itoa(i)))
		}
		for i := 0; i < n*2; i++ {
			u, v := rng.Intn(n), rng.Intn(n)
			if u == v {
				continue
			}
			_, err := g.AddEdge("v"+strconv.Itoa(u), "v"+strconv.Itoa(v), int64(1+rng.Intn(9)))
			require.NoError(t, err)
		}
		target := "v" + strconv.Itoa(n-1)
		want, err := dijkstra.ShortestPath(g, "v0", target)
		res, serr := astar.Search(g, "v0", target, astar.Zero)
		if err != nil {
			require.ErrorIs(t, err, dijkstra.ErrNoPath)
			require.ErrorIs(t, serr, astar.ErrNoPath, "seed %d", seed)
			continue
		}
		require.NoError(t, serr)
		require.Equal(t, want.Distance, res.Cost, "seed %d", seed)
	}
}

func TestSearch_Validation(t *testing.T) {
	g := grid(t, 2)
	cases := []struct {
		name     string
		g        *core.Graph
		from, to string
		h        astar.Heuristic
		want     error
	}{
		{"nil graph", nil, "0,0", "1,1", astar.Zero, astar.ErrNilGraph},
		{"nil heuristic", g, "0,0", "1,1", nil, astar.ErrNilHeuristic},
		{"unweighted", core.NewGraph(), "a", "b", astar.Zero, astar.ErrUnweightedGraph},
		{"empty id", g, "", "1,1", astar.Zero, astar.ErrEmptyVertexID},
		{"unknown target", g, "0,0", "9,9", astar.Zero, astar.ErrVertexNotFound},
		{"negative estimate", g, "0,0", "1,1", func(string) int64 { return -1 }, astar.ErrNegativeHeuristic},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := astar.Search(tc.g, tc.from, tc.to, tc.h)
			require.ErrorIs(t, err, tc.want)
		})
	}

	neg := core.NewGraph(core.WithWeighted())
	_, err := neg.AddEdge("a", "b", -1)
	require.NoError(t, err)
	_, err = astar.Search(neg, "a", "b", astar.Zero)
	require.ErrorIs(t, err, astar.ErrNegativeWeight)
}

func TestSearch_NoPathAndTrivial(t *testing.T) {
	g := grid(t, 2)
	require.NoError(t, g.AddVertex("island"))
	_, err := astar.Search(g, "0,0", "island", astar.Zero)
	require.ErrorIs(t, err, astar.ErrNoPath)

	res, err := astar.Search(g, "0,0", "0,0", astar.Zero)
	require.NoError(t, err)
	require.Equal(t, []string{"0,0"}, res.Path)
	require.Zero(t, res.Cost)
}

func TestSearch_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := astar.Search(grid(t, 3), "0,0", "2,2", astar.Zero, astar.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func BenchmarkSearch_Grid(b *testing.B) {
	g := grid(b, 64)
	h := manhattan(63, 63)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := astar.Search(g, id(0, 0), id(63, 63), h); err != nil {
			b.Fatal(err)
		}
	}
}
