package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/bestfirst/bestfirst"
	"github.com/katalvlaran/bestfirst/dijkstra"
	"github.com/katalvlaran/bestfirst/repr"
	"github.com/katalvlaran/bestfirst/walk"
)

var errBadLimit = errors.New("--limit must be non-negative")

type walkFlags struct {
	graph string
	from  string
	limit int
}

func newWalkCmd(a *app) *cobra.Command {
	var flags walkFlags
	cmd := &cobra.Command{
		Use:   "walk",
		Short: "Print vertices in order of increasing distance from --from",
		Long: "walk drives the best-first kernel with the shortest-path strategy and\n" +
			"prints every reached vertex once, closest first, with its distance and route.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runWalk(cmd, flags)
		},
	}
	f := cmd.Flags()
	f.StringVar(&flags.graph, "graph", "", "Graph file (YAML, required)")
	f.StringVar(&flags.from, "from", "", "Start vertex (required)")
	f.IntVar(&flags.limit, "limit", 0, "Stop after N vertices besides the start (0 = all)")
	_ = cmd.MarkFlagRequired("graph")
	_ = cmd.MarkFlagRequired("from")
	return cmd
}

func (a *app) runWalk(cmd *cobra.Command, flags walkFlags) error {
	if flags.limit < 0 {
		return errBadLimit
	}
	_, g, err := a.loadGraph(flags.graph)
	if err != nil {
		return err
	}
	if !g.HasVertex(flags.from) {
		return fmt.Errorf("walk: start vertex %q not in %s", flags.from, flags.graph)
	}

	f, err := bestfirst.NewOrderedFactory[string, int64, int64](dijkstra.Strategy(),
		bestfirst.WithName("walk"),
		bestfirst.WithLogger(a.logger),
		bestfirst.WithMeterProvider(a.meter),
		bestfirst.WithCapacity(g.VertexCount()),
	)
	if err != nil {
		return err
	}
	start, err := walk.Start(g, flags.from)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	steps := []repr.Representation{step(start, 0)}
	err = f.Walk(start, func(b bestfirst.Branch[string], d int64) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		// The start vertex is already reported at distance 0.
		if b.Node() == flags.from {
			return nil
		}
		wb, _ := walk.Of(b)
		steps = append(steps, step(wb, d))
		if flags.limit > 0 && len(steps) > flags.limit {
			return bestfirst.ErrStop
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("walk: %w", err)
	}
	return a.emit(cmd.OutOrStdout(), repr.List(steps))
}

func step(b *walk.Branch, d int64) repr.Representation {
	return repr.Convert(map[string]any{
		"node":     repr.NodeID(b.Node()),
		"distance": d,
		"path":     b,
	})
}
