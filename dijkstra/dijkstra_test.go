// Package dijkstra_test contains unit tests for the Dijkstra implementation.
// These tests validate behavior under various configurations, including
// basic functionality, directed graphs, mixed edges, MaxDistance, InfEdgeThreshold,
// cancellation, and edge cases such as single-vertex and self-loop graphs.
package dijkstra_test

import (
	"context"
	"math"
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bestfirst/core"
	"github.com/katalvlaran/bestfirst/dijkstra"
)

type wedge struct {
	u, v string
	w    int64
}

func build(t *testing.T, edges []wedge, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g := core.NewGraph(append([]core.GraphOption{core.WithWeighted()}, opts...)...)
	for _, e := range edges {
		_, err := g.AddEdge(e.u, e.v, e.w)
		require.NoError(t, err)
	}
	return g
}

func triangle(t *testing.T) *core.Graph {
	return build(t, []wedge{{"A", "B", 1}, {"B", "C", 2}, {"A", "C", 5}})
}

// ------------------------------------------------------------------------
// 1. Validation Tests: Ensure errors are returned for invalid inputs.
// ------------------------------------------------------------------------

func TestDijkstra_Validation(t *testing.T) {
	weighted := core.NewGraph(core.WithWeighted())
	cases := []struct {
		name string
		g    *core.Graph
		opts []dijkstra.Option
		want error
	}{
		{"empty source", weighted, nil, dijkstra.ErrEmptySource},
		{"nil graph without source", nil, nil, dijkstra.ErrEmptySource},
		{"nil graph", nil, []dijkstra.Option{dijkstra.Source("X")}, dijkstra.ErrNilGraph},
		{"unweighted", core.NewGraph(), []dijkstra.Option{dijkstra.Source("A")}, dijkstra.ErrUnweightedGraph},
		{"source not found", weighted, []dijkstra.Option{dijkstra.Source("X")}, dijkstra.ErrVertexNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := dijkstra.Dijkstra(tc.g, tc.opts...)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestDijkstra_NegativeWeightDetectedEarly(t *testing.T) {
	g := build(t, []wedge{{"A", "B", 1}, {"C", "D", -5}})
	_, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	require.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
	require.Contains(t, err.Error(), "C→D weight=-5", "the pre-scan covers edges unreachable from the source")
}

func TestOptions_PanicOnBadArguments(t *testing.T) {
	require.PanicsWithValue(t, dijkstra.ErrBadMaxDistance.Error(), func() {
		dijkstra.WithMaxDistance(-1)(&dijkstra.Options{})
	})
	require.PanicsWithValue(t, dijkstra.ErrBadInfThreshold.Error(), func() {
		dijkstra.WithInfEdgeThreshold(0)(&dijkstra.Options{})
	})
}

// ------------------------------------------------------------------------
// 2. Basic Functionality: Small graphs, path correctness without and with ReturnPath.
// ------------------------------------------------------------------------

func TestDijkstra_SimpleTriangle(t *testing.T) {
	dist, prev, err := dijkstra.Dijkstra(triangle(t), dijkstra.Source("A"))
	require.NoError(t, err)
	require.Equal(t, int64(3), dist["C"], "via A→B→C")
	require.Nil(t, prev, "prev is nil when ReturnPath=false")

	dist, prev, err = dijkstra.Dijkstra(triangle(t), dijkstra.Source("A"), dijkstra.WithReturnPath())
	require.NoError(t, err)
	require.Equal(t, map[string]int64{"A": 0, "B": 1, "C": 3}, dist)
	require.Equal(t, map[string]string{"A": "", "B": "A", "C": "B"}, prev)
}

func TestDijkstra_ChainWithPath(t *testing.T) {
	// A-B-C-D-E
	//         |
	//         F-G
	g := build(t, []wedge{
		{"A", "B", 1}, {"B", "C", 1}, {"C", "D", 1},
		{"D", "E", 1}, {"D", "F", 1}, {"F", "G", 1},
	})
	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
	require.NoError(t, err)
	require.Equal(t, map[string]int64{"A": 0, "B": 1, "C": 2, "D": 3, "E": 4, "F": 4, "G": 5}, dist)
	require.Equal(t, "A", prev["B"])
	require.Equal(t, "C", prev["D"])
	require.Equal(t, "F", prev["G"])
}

// ------------------------------------------------------------------------
// 3. Directed and mixed graphs: one-way edges are never walked backwards.
// ------------------------------------------------------------------------

func TestDijkstra_MediumDirectedGraph(t *testing.T) {
	g := build(t, []wedge{
		{"A", "B", 2}, {"A", "C", 1}, {"C", "B", 1}, {"B", "D", 3}, {"C", "D", 5},
	}, core.WithDirected(true))
	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	require.NoError(t, err)
	require.Equal(t, int64(1), dist["C"])
	require.Equal(t, int64(2), dist["B"], "via A→C→B")
	require.Equal(t, int64(5), dist["D"], "via A→C→B→D")
	require.Nil(t, prev)

	// Nothing leads back to A in a directed graph.
	dist, _, err = dijkstra.Dijkstra(g, dijkstra.Source("D"))
	require.NoError(t, err)
	require.Equal(t, int64(math.MaxInt64), dist["A"])
}

func TestDijkstra_MixedEdges(t *testing.T) {
	g := core.NewGraph(core.WithWeighted(), core.WithMixedEdges())
	_, err := g.AddEdge("A", "B", 2, core.WithEdgeDirected(true))
	require.NoError(t, err)
	_, err = g.AddEdge("B", "C", 3, core.WithEdgeDirected(false))
	require.NoError(t, err)
	_, err = g.AddEdge("C", "D", 1, core.WithEdgeDirected(true))
	require.NoError(t, err)

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
	require.NoError(t, err)
	require.Equal(t, map[string]int64{"A": 0, "B": 2, "C": 5, "D": 6}, dist)
	require.Equal(t, map[string]string{"A": "", "B": "A", "C": "B", "D": "C"}, prev)

	// From C the undirected edge reaches B, the directed A→B does not reach A.
	dist, _, err = dijkstra.Dijkstra(g, dijkstra.Source("C"))
	require.NoError(t, err)
	require.Equal(t, int64(3), dist["B"])
	require.Equal(t, int64(math.MaxInt64), dist["A"])
}

// ------------------------------------------------------------------------
// 4. MaxDistance and InfEdgeThreshold.
// ------------------------------------------------------------------------

func TestDijkstra_MaxDistanceLimits(t *testing.T) {
	g := build(t, []wedge{{"A", "B", 1}, {"B", "C", 1}, {"C", "D", 1}})
	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithMaxDistance(1))
	require.NoError(t, err)
	require.Equal(t, int64(0), dist["A"])
	require.Equal(t, int64(1), dist["B"])
	require.Equal(t, int64(math.MaxInt64), dist["C"])
	require.Equal(t, int64(math.MaxInt64), dist["D"])
}

func TestDijkstra_MaxDistanceZero(t *testing.T) {
	g := build(t, []wedge{{"A", "B", 1}, {"A", "Z", 0}})
	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithMaxDistance(0))
	require.NoError(t, err)
	require.Equal(t, int64(0), dist["A"])
	require.Equal(t, int64(0), dist["Z"], "zero-weight neighbors are within a zero cap")
	require.Equal(t, int64(math.MaxInt64), dist["B"])
}

func TestDijkstra_InfThreshold(t *testing.T) {
	g := build(t, []wedge{{"A", "B", 10}, {"B", "C", 20}})
	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	require.NoError(t, err)
	require.Equal(t, int64(30), dist["C"], "default threshold blocks nothing")

	g = build(t, []wedge{{"A", "B", 2}, {"B", "C", 4}, {"A", "C", 10}})
	dist, _, err = dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithInfEdgeThreshold(5))
	require.NoError(t, err)
	require.Equal(t, int64(6), dist["C"], "A-C(10) is a wall")
}

func TestDijkstra_InfObstacle_3x3Grid(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	for _, v := range []string{"0,0", "0,1", "0,2", "1,0", "1,1", "1,2", "2,0", "2,1", "2,2"} {
		require.NoError(t, g.AddVertex(v))
	}
	for _, e := range []wedge{
		{"0,0", "0,1", 1}, {"0,0", "1,0", 1}, {"0,1", "0,2", 1},
		{"1,0", "2,0", 1}, {"2,1", "2,2", 1},
		{"1,0", "1,1", 5}, {"1,1", "1,2", 5},
	} {
		_, err := g.AddEdge(e.u, e.v, e.w)
		require.NoError(t, err)
	}
	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("0,0"), dijkstra.WithInfEdgeThreshold(5))
	require.NoError(t, err)
	require.Equal(t, int64(math.MaxInt64), dist["1,1"], "behind the wall")
	require.Equal(t, int64(2), dist["2,0"])
	require.Equal(t, int64(math.MaxInt64), dist["2,2"], "isolated component")
}

// ------------------------------------------------------------------------
// 5. Edge Cases: Single vertex, Empty graph, Self-loop, overflow.
// ------------------------------------------------------------------------

func TestDijkstra_SingleVertex(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	require.NoError(t, g.AddVertex("Solo"))
	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("Solo"), dijkstra.WithReturnPath())
	require.NoError(t, err)
	require.Equal(t, map[string]int64{"Solo": 0}, dist)
	require.Equal(t, map[string]string{"Solo": ""}, prev)
}

func TestDijkstra_SelfLoopZeroWeight(t *testing.T) {
	g := core.NewGraph(core.WithWeighted(), core.WithLoops())
	_, err := g.AddEdge("X", "X", 0)
	require.NoError(t, err)
	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("X"), dijkstra.WithReturnPath())
	require.NoError(t, err)
	require.Equal(t, int64(0), dist["X"])
	require.Equal(t, "", prev["X"], "a loop back to the source never becomes its parent")
}

func TestDijkstra_CycleBackToSource(t *testing.T) {
	g := build(t, []wedge{{"S", "A", 1}, {"A", "S", 1}, {"A", "B", 1}}, core.WithDirected(true))
	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("S"), dijkstra.WithReturnPath())
	require.NoError(t, err)
	require.Equal(t, map[string]int64{"S": 0, "A": 1, "B": 2}, dist)
	require.Equal(t, "", prev["S"])
}

func TestDijkstra_SaturatesInsteadOfOverflowing(t *testing.T) {
	g := build(t, []wedge{{"A", "B", math.MaxInt64 - 1}, {"B", "C", 10}}, core.WithDirected(true))
	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	require.NoError(t, err)
	require.Equal(t, int64(math.MaxInt64-1), dist["B"])
	require.Equal(t, int64(math.MaxInt64), dist["C"])
}

func TestDijkstra_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := dijkstra.Dijkstra(triangle(t), dijkstra.Source("A"), dijkstra.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

// ------------------------------------------------------------------------
// 6. ShortestPath.
// ------------------------------------------------------------------------

func TestShortestPath(t *testing.T) {
	p, err := dijkstra.ShortestPath(triangle(t), "A", "C")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C"}, p.Nodes)
	require.Equal(t, int64(3), p.Distance)
	require.Len(t, p.Edges, 2)
	require.Equal(t, "e2", p.Edges[1].ID)

	p, err = dijkstra.ShortestPath(triangle(t), "B", "B")
	require.NoError(t, err)
	require.Equal(t, []string{"B"}, p.Nodes)
	require.Zero(t, p.Distance)
	require.Empty(t, p.Edges)
}

func TestShortestPath_Errors(t *testing.T) {
	_, err := dijkstra.ShortestPath(triangle(t), "A", "ghost")
	require.ErrorIs(t, err, dijkstra.ErrVertexNotFound)

	_, err = dijkstra.ShortestPath(triangle(t), "", "A")
	require.ErrorIs(t, err, dijkstra.ErrEmptySource)

	g := triangle(t)
	require.NoError(t, g.AddVertex("island"))
	_, err = dijkstra.ShortestPath(g, "A", "island")
	require.ErrorIs(t, err, dijkstra.ErrNoPath)

	_, err = dijkstra.ShortestPath(triangle(t), "A", "C", dijkstra.WithMaxDistance(2))
	require.ErrorIs(t, err, dijkstra.ErrNoPath)
}

// ------------------------------------------------------------------------
// 7. Reference check against Bellman-Ford relaxation on random graphs.
// ------------------------------------------------------------------------

func bellmanFord(g *core.Graph, src string) map[string]int64 {
	dist := make(map[string]int64)
	for _, v := range g.Vertices() {
		dist[v] = math.MaxInt64
	}
	dist[src] = 0
	for i := 0; i < g.VertexCount(); i++ {
		for _, e := range g.Edges() {
			relax := func(u, v string) {
				if dist[u] != math.MaxInt64 && dist[u]+e.Weight < dist[v] {
					dist[v] = dist[u] + e.Weight
				}
			}
			relax(e.From, e.To)
			if !e.Directed {
				relax(e.To, e.From)
			}
		}
	}
	return dist
}

func TestDijkstra_MatchesBellmanFord(t *testing.T) {
	for seed := int64(1); seed <= 15; seed++ {
		rng := rand.New(rand.NewSource(seed))
		g := core.NewGraph(core.WithWeighted(), core.WithDirected(seed%2 == 0), core.WithMultiEdges(), core.WithLoops())
		n := 5 + rng.Intn(10)
		for i := 0; i < n; i++ {
			require.NoError(t, g.AddVertex("v"+strconv.Itoa(i)))
		}
		for i := 0; i < n*3; i++ {
			u, v := "v"+strconv.Itoa(rng.Intn(n)), "v"+strconv.Itoa(rng.Intn(n))
			_, err := g.AddEdge(u, v, int64(rng.Intn(20)))
			require.NoError(t, err)
		}
		dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("v0"))
		require.NoError(t, err)
		require.Equal(t, bellmanFord(g, "v0"), dist, "seed %d", seed)
	}
}
