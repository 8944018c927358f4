package bestfirst_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/katalvlaran/bestfirst/bestfirst"
)

// arc is one weighted, directed adjacency entry of testGraph.
type arc struct {
	to string
	w  int64
}

// testGraph is a minimal substrate: adjacency lists in insertion order,
// per-node failures, and a log of which nodes were asked for children.
type testGraph struct {
	mu       sync.Mutex
	adj      map[string][]arc
	fail     map[string]error
	expanded []string
}

func newTestGraph() *testGraph {
	return &testGraph{adj: map[string][]arc{}, fail: map[string]error{}}
}

// edge adds from→to with weight w.
func (g *testGraph) edge(from, to string, w int64) *testGraph {
	g.adj[from] = append(g.adj[from], arc{to: to, w: w})
	return g
}

// undirected adds both from→to and to→from.
func (g *testGraph) undirected(from, to string, w int64) *testGraph {
	return g.edge(from, to, w).edge(to, from, w)
}

func (g *testGraph) start(id string) *testBranch {
	return &testBranch{g: g, node: id}
}

func (g *testGraph) expandedNodes() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]string(nil), g.expanded...)
}

// testBranch is a path through testGraph with a lazy child cursor.
type testBranch struct {
	g      *testGraph
	node   string
	w      int64 // weight of the arc that led here
	parent *testBranch
	loaded bool
	cursor int
}

func (b *testBranch) Node() string { return b.node }

func (b *testBranch) Next() (bestfirst.Branch[string], error) {
	if !b.loaded {
		b.loaded = true
		b.g.mu.Lock()
		b.g.expanded = append(b.g.expanded, b.node)
		err := b.g.fail[b.node]
		b.g.mu.Unlock()
		if err != nil {
			return nil, err
		}
	}
	arcs := b.g.adj[b.node]
	if b.cursor >= len(arcs) {
		return nil, nil
	}
	a := arcs[b.cursor]
	b.cursor++
	return &testBranch{g: b.g, node: a.to, w: a.w, parent: b}, nil
}

// route returns the node sequence from the start to b.
func (b *testBranch) route() []string {
	var out []string
	for cur := b; cur != nil; cur = cur.parent {
		out = append([]string{cur.node}, out...)
	}
	return out
}

// sumStrategy is the Dijkstra-style strategy: start at 0, add arc weights.
func sumStrategy() bestfirst.StrategyFuncs[string, int64, int64] {
	return bestfirst.StrategyFuncs[string, int64, int64]{
		Initial:     func() int64 { return 0 },
		Incremental: func(b bestfirst.Branch[string]) int64 { return b.(*testBranch).w },
		Add:         func(_ bestfirst.Branch[string], cur, w int64) int64 { return cur + w },
	}
}

// yield is one Advance result captured by drain.
type yield struct {
	node     string
	priority int64
}

// drain advances sel until exhaustion and returns every yield.
func drain(t *testing.T, sel *bestfirst.Selector[string, int64, int64]) []yield {
	t.Helper()
	var out []yield
	for {
		b, err := sel.Advance()
		if err == bestfirst.ErrExhausted {
			return out
		}
		require.NoError(t, err)
		out = append(out, yield{node: b.Node(), priority: sel.Priority()})
	}
}

// newSumFactory builds an ordered factory over sumStrategy or fails the test.
func newSumFactory(t testing.TB, opts ...bestfirst.Option) *bestfirst.Factory[string, int64, int64] {
	t.Helper()
	f, err := bestfirst.NewOrderedFactory[string, int64, int64](sumStrategy(), opts...)
	require.NoError(t, err)
	return f
}

// counterValue sums the data points of an int64 counter, optionally only
// those whose "outcome" attribute equals outcome.
func counterValue(t *testing.T, reader *sdkmetric.ManualReader, name, outcome string) int64 {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	var total int64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != name {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok, "metric %s is not an int64 sum", name)
			for _, dp := range sum.DataPoints {
				if outcome != "" {
					v, _ := dp.Attributes.Value(attribute.Key("outcome"))
					if v.AsString() != outcome {
						continue
					}
				}
				total += dp.Value
			}
		}
	}
	return total
}
