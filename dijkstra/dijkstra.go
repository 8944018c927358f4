package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/bestfirst/bestfirst"
	"github.com/katalvlaran/bestfirst/core"
	"github.com/katalvlaran/bestfirst/walk"
)

// Strategy returns the shortest-path rule for the bestfirst kernel: the
// priority of a path is the sum of its edge weights, saturating at
// math.MaxInt64. Branches that do not come from package walk weigh 0.
func Strategy() bestfirst.StrategyFuncs[string, int64, int64] {
	return bestfirst.StrategyFuncs[string, int64, int64]{
		Initial:     func() int64 { return 0 },
		Incremental: edgeWeight,
		Add: func(_ bestfirst.Branch[string], current, w int64) int64 {
			return addSaturating(current, w)
		},
	}
}

func edgeWeight(b bestfirst.Branch[string]) int64 {
	if wb, ok := walk.Of(b); ok {
		return wb.Weight()
	}
	return 0
}

// addSaturating adds a non-negative w to d without wrapping past MaxInt64.
func addSaturating(d, w int64) int64 {
	if w > 0 && d > math.MaxInt64-w {
		return math.MaxInt64
	}
	return d + w
}

// Dijkstra computes shortest distances from the source vertex (Options.Source)
// to all other vertices in the weighted graph g.
//
// Returns:
//
//   - dist: map from vertex ID to minimum distance (math.MaxInt64 if unreachable).
//   - prev: predecessor map if ReturnPath=true (nil otherwise).
//     prev[v] == u means the shortest path to v goes through u.
//     For the source and unreachable v, prev[v] == "".
//   - err:  error if inputs are invalid, a negative weight is detected, or
//     the context is cancelled.
//
// Preconditions and validation (in order):
//  1. Source string must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must be weighted (ErrUnweightedGraph).
//  4. g must contain Source (ErrVertexNotFound).
//  5. No edge in g can have negative weight (ErrNegativeWeight).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, opts ...Option) (map[string]int64, map[string]string, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := validate(g, cfg); err != nil {
		return nil, nil, err
	}

	r, err := newRunner(g, cfg)
	if err != nil {
		return nil, nil, err
	}
	if err = r.settleAll(); err != nil {
		return nil, nil, err
	}
	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// ShortestPath returns one minimum-cost route from → to. The search stops as
// soon as to is settled. Options are those of Dijkstra; Source is overridden
// by from and ReturnPath has no effect.
//
// Errors: the validation errors of Dijkstra, ErrVertexNotFound for an unknown
// target, ErrNoPath when to is unreachable within MaxDistance.
func ShortestPath(g *core.Graph, from, to string, opts ...Option) (*Path, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.Source = from
	if err := validate(g, cfg); err != nil {
		return nil, err
	}
	if !g.HasVertex(to) {
		return nil, fmt.Errorf("%w: target %q", ErrVertexNotFound, to)
	}
	if from == to {
		return &Path{Nodes: []string{from}, Edges: []*core.Edge{}}, nil
	}

	r, err := newRunner(g, cfg)
	if err != nil {
		return nil, err
	}
	b, d, err := r.settleUntil(to)
	if err != nil {
		return nil, err
	}

	return &Path{Nodes: b.Nodes(), Edges: b.Edges(), Distance: d}, nil
}

func validate(g *core.Graph, cfg Options) error {
	if cfg.Source == "" {
		return ErrEmptySource
	}
	if g == nil {
		return ErrNilGraph
	}
	if !g.Weighted() {
		return ErrUnweightedGraph
	}
	if !g.HasVertex(cfg.Source) {
		return ErrVertexNotFound
	}
	// Fail fast on negative weights; the kernel's order would silently break.
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return fmt.Errorf("%w: edge %s→%s weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	return nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	cfg  Options
	dist map[string]int64
	prev map[string]string
	sel  *bestfirst.Selector[string, int64, int64]
}

func newRunner(g *core.Graph, cfg Options) (*runner, error) {
	vertices := g.Vertices()
	r := &runner{
		cfg:  cfg,
		dist: make(map[string]int64, len(vertices)),
	}
	if cfg.ReturnPath {
		r.prev = make(map[string]string, len(vertices))
	}
	for _, v := range vertices {
		r.dist[v] = math.MaxInt64
		if r.prev != nil {
			r.prev[v] = ""
		}
	}
	r.dist[cfg.Source] = 0

	f, err := bestfirst.NewOrderedFactory[string, int64, int64](Strategy(),
		bestfirst.WithName("dijkstra"),
		bestfirst.WithLogger(cfg.Logger),
		bestfirst.WithMeterProvider(cfg.MeterProvider),
		bestfirst.WithCapacity(len(vertices)),
	)
	if err != nil {
		return nil, fmt.Errorf("dijkstra: %w", err)
	}
	threshold := cfg.InfEdgeThreshold
	start, err := walk.Start(g, cfg.Source, walk.WithEdgeFilter(func(e *core.Edge) bool {
		return e.Weight < threshold
	}))
	if err != nil {
		return nil, fmt.Errorf("dijkstra: %w", err)
	}
	if r.sel, err = f.Create(start); err != nil {
		return nil, fmt.Errorf("dijkstra: %w", err)
	}

	return r, nil
}

// next settles the next vertex. ok is false once the frontier is empty or
// the next distance exceeds MaxDistance.
func (r *runner) next() (b *walk.Branch, d int64, ok bool, err error) {
	for {
		if err = r.cfg.Context.Err(); err != nil {
			return nil, 0, false, err
		}
		var kb bestfirst.Branch[string]
		kb, err = r.sel.Advance()
		if errors.Is(err, bestfirst.ErrExhausted) {
			return nil, 0, false, nil
		}
		if err != nil {
			return nil, 0, false, fmt.Errorf("dijkstra: %w", err)
		}
		d = r.sel.Priority()
		if d > r.cfg.MaxDistance {
			return nil, 0, false, nil
		}
		// The source is settled at 0 up front; a cycle back to it is never shorter.
		if kb.Node() == r.cfg.Source {
			continue
		}
		b, _ = walk.Of(kb)

		return b, d, true, nil
	}
}

func (r *runner) record(b *walk.Branch, d int64) {
	v := b.Node()
	r.dist[v] = d
	if r.prev != nil {
		r.prev[v] = b.Parent().Node()
	}
}

func (r *runner) settleAll() error {
	for {
		b, d, ok, err := r.next()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		r.record(b, d)
	}
}

func (r *runner) settleUntil(target string) (*walk.Branch, int64, error) {
	for {
		b, d, ok, err := r.next()
		if err != nil {
			return nil, 0, err
		}
		if !ok {
			return nil, 0, fmt.Errorf("%w: %s→%s", ErrNoPath, r.cfg.Source, target)
		}
		r.record(b, d)
		if b.Node() == target {
			return b, d, nil
		}
	}
}
