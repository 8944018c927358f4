package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/bestfirst/astar"
	"github.com/katalvlaran/bestfirst/core"
	"github.com/katalvlaran/bestfirst/dijkstra"
	"github.com/katalvlaran/bestfirst/internal/graphfile"
	"github.com/katalvlaran/bestfirst/repr"
	"github.com/katalvlaran/bestfirst/widest"
)

var errBadAlgo = errors.New("unknown algorithm")

type pathFlags struct {
	graph    string
	from     string
	to       []string
	algo     string
	parallel int
}

func newPathCmd(a *app) *cobra.Command {
	var flags pathFlags
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Find the best route from --from to every --to",
		Long: "path runs one independent traversal per target, concurrently, and prints\n" +
			"the route found for each. Unreachable targets are reported, not fatal.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runPath(cmd, flags)
		},
	}
	f := cmd.Flags()
	f.StringVar(&flags.graph, "graph", "", "Graph file (YAML, required)")
	f.StringVar(&flags.from, "from", "", "Start vertex (required)")
	f.StringSliceVar(&flags.to, "to", nil, "Target vertices, comma separated (required)")
	f.StringVar(&flags.algo, "algo", "dijkstra", "Algorithm: dijkstra, astar or widest")
	f.IntVar(&flags.parallel, "parallel", 0, "Maximum concurrent traversals (0 = one per target)")
	_ = cmd.MarkFlagRequired("graph")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

// route is one target's outcome; metric is cost or width depending on the algorithm.
type route struct {
	target   string
	found    bool
	nodes    []string
	edges    []*core.Edge
	metric   int64
	expanded int
}

type finder func(ctx context.Context, to string) (route, error)

func (a *app) finder(file *graphfile.File, g *core.Graph, from, algo string) (finder, string, error) {
	switch algo {
	case "dijkstra":
		return func(ctx context.Context, to string) (route, error) {
			p, err := dijkstra.ShortestPath(g, from, to,
				dijkstra.WithContext(ctx), dijkstra.WithLogger(a.logger), dijkstra.WithMeterProvider(a.meter))
			if errors.Is(err, dijkstra.ErrNoPath) {
				return route{target: to}, nil
			}
			if err != nil {
				return route{}, err
			}
			return route{target: to, found: true, nodes: p.Nodes, edges: p.Edges, metric: p.Distance}, nil
		}, "cost", nil
	case "astar":
		h := file.Heuristic()
		return func(ctx context.Context, to string) (route, error) {
			res, err := astar.Search(g, from, to, h,
				astar.WithContext(ctx), astar.WithLogger(a.logger), astar.WithMeterProvider(a.meter))
			if errors.Is(err, astar.ErrNoPath) {
				return route{target: to}, nil
			}
			if err != nil {
				return route{}, err
			}
			return route{target: to, found: true, nodes: res.Path, edges: res.Edges, metric: res.Cost, expanded: res.Expanded}, nil
		}, "cost", nil
	case "widest":
		return func(ctx context.Context, to string) (route, error) {
			res, err := widest.Path(g, from, to,
				widest.WithContext(ctx), widest.WithLogger(a.logger), widest.WithMeterProvider(a.meter))
			if errors.Is(err, widest.ErrNoPath) {
				return route{target: to}, nil
			}
			if err != nil {
				return route{}, err
			}
			return route{target: to, found: true, nodes: res.Path, edges: res.Edges, metric: res.Width}, nil
		}, "width", nil
	}
	return nil, "", fmt.Errorf("%w %q", errBadAlgo, algo)
}

func (a *app) runPath(cmd *cobra.Command, flags pathFlags) error {
	file, g, err := a.loadGraph(flags.graph)
	if err != nil {
		return err
	}
	find, metricName, err := a.finder(file, g, flags.from, flags.algo)
	if err != nil {
		return err
	}

	routes := make([]route, len(flags.to))
	eg, ctx := errgroup.WithContext(cmd.Context())
	if flags.parallel > 0 {
		eg.SetLimit(flags.parallel)
	}
	for i, to := range flags.to {
		eg.Go(func() error {
			r, err := find(ctx, to)
			if err != nil {
				return fmt.Errorf("path %s→%s: %w", flags.from, to, err)
			}
			a.logger.Info("route searched", slog.String("algo", flags.algo),
				slog.String("target", to), slog.Bool("found", r.found))
			routes[i] = r
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	out := make([]repr.Representation, len(routes))
	for i, r := range routes {
		fields := map[string]any{
			"algorithm": flags.algo,
			"target":    repr.NodeID(r.target),
			"reachable": r.found,
		}
		if r.found {
			fields["path"] = repr.Path(r.nodes, r.edges)
			fields[metricName] = r.metric
			if flags.algo == "astar" {
				fields["expanded"] = r.expanded
			}
		}
		out[i] = repr.Convert(fields)
	}
	return a.emit(cmd.OutOrStdout(), repr.List(out))
}
